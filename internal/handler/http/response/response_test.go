package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServiceUnavailable_CarriesFallbackData(t *testing.T) {
	rec := httptest.NewRecorder()
	ServiceUnavailable(rec, CodeHeadcountUnavailable, HeadcountUnavailableMessage, map[string]any{"items": []any{}})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, map[string]any{"items": []any{}}, body["data"])
	assert.Equal(t, CodeHeadcountUnavailable, body["error"].(map[string]any)["code"])
}

func TestErrorHelpers(t *testing.T) {
	cases := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
		code   string
	}{
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "bad", nil) }, http.StatusBadRequest, "BAD_REQUEST"},
		{"validation", func(w http.ResponseWriter) { ValidationError(w, map[string]string{"page": "must be at least 1"}) }, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "missing") }, http.StatusNotFound, "NOT_FOUND"},
		{"bad gateway", func(w http.ResponseWriter) { BadGateway(w, "upstream down") }, http.StatusBadGateway, "BAD_GATEWAY"},
		{"internal", func(w http.ResponseWriter) { InternalServerError(w, "boom") }, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c.write(rec)

			assert.Equal(t, c.status, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, c.code, body["error"].(map[string]any)["code"])
			assert.NotContains(t, body, "data")
		})
	}
}
