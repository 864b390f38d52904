package http

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-recap/internal/pkg/validator"
)

type AttendanceHandler interface {
	// Summaries handles GET /attendance/summaries
	Summaries(w http.ResponseWriter, r *http.Request)
	// ByDate handles GET /attendance/date
	ByDate(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// parseIntParams reads optional integer query parameters. Missing values are 0.
func parseIntParams(r *http.Request, names ...string) (map[string]int, error) {
	values := make(map[string]int, len(names))
	var errs validator.ValidationErrors
	for _, name := range names {
		n, ok := validator.Atoi(r.URL.Query().Get(name), 0)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   name,
				Message: name + " must be a number",
			})
			continue
		}
		values[name] = n
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

// Summaries implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summaries(w http.ResponseWriter, r *http.Request) {
	params, err := parseIntParams(r, "page", "page_size", "days")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := attendance.WindowRequest{
		Page:     params["page"],
		PageSize: params["page_size"],
		Days:     params["days"],
	}
	result, err := h.attendanceService.GetWindow(r.Context(), req)
	if err != nil {
		// Clients render the empty window alongside the notice
		if errors.Is(err, attendance.ErrHeadcountFetch) {
			response.ServiceUnavailable(w, response.CodeHeadcountUnavailable, response.HeadcountUnavailableMessage, attendance.EmptyWindow())
			return
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.Page,
		Limit:      result.PageSize,
		TotalPages: result.TotalPages,
	})
}

// ByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date") // format: YYYY-MM-DD, default: today

	facts, err := h.attendanceService.GetDailyFacts(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, facts)
}
