package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", "2023-02-29", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"present", "late", "absent", "leave"}
	if !IsInSlice("late", slice) {
		t.Errorf("IsInSlice(late) = false, want true")
	}
	if IsInSlice("on_leave", slice) {
		t.Errorf("IsInSlice(on_leave) = true, want false")
	}
}

func TestAtoi(t *testing.T) {
	cases := []struct {
		input    string
		fallback int
		want     int
		ok       bool
	}{
		{"", 10, 10, true},
		{"  ", 3, 3, true},
		{"7", 10, 7, true},
		{" 12 ", 10, 12, true},
		{"-2", 10, -2, true},
		{"ten", 10, 0, false},
	}
	for _, c := range cases {
		got, ok := Atoi(c.input, c.fallback)
		if got != c.want || ok != c.ok {
			t.Errorf("Atoi(%q, %d) = (%d, %v), want (%d, %v)", c.input, c.fallback, got, ok, c.want, c.ok)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "page", Message: "page must be a positive number"},
		{Field: "days", Message: "days must be between 1 and 366"},
	}

	if got, want := errs.Error(), "page: page must be a positive number; days: days must be between 1 and 366"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["page"] != "page must be a positive number" {
		t.Errorf("ToMap() = %v", m)
	}
}
