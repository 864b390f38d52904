package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recap/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	// Get handles GET /employees/{id}
	Get(w http.ResponseWriter, r *http.Request)
	// Attendance handles GET /employees/{id}/attendance
	Attendance(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetProfile(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Attendance implements EmployeeHandler.
func (h *employeeHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.EmployeeAttendanceFilter{
		EmployeeID: chi.URLParam(r, "id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.employeeService.GetAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
