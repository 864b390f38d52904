package employee

import "github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"

// ShiftHoursResponse is the wire form of a ShiftHours variant
type ShiftHoursResponse struct {
	Kind        ShiftKind `json:"kind"`
	Display     string    `json:"display"`
	Text        *string   `json:"text,omitempty"`
	DaysPerWeek *int      `json:"days_per_week,omitempty"`
	StartTime   *string   `json:"start_time,omitempty"`
	EndTime     *string   `json:"end_time,omitempty"`
	HoursPerDay *float64  `json:"hours_per_day,omitempty"`
	ShiftType   *string   `json:"shift_type,omitempty"`
	WeekendWork *bool     `json:"weekend_work,omitempty"`
}

// NewShiftHoursResponse converts a ShiftHours variant for output
func NewShiftHoursResponse(s ShiftHours) ShiftHoursResponse {
	resp := ShiftHoursResponse{Kind: KindOf(s), Display: Describe(s)}
	switch v := s.(type) {
	case ShiftText:
		resp.Text = &v.Text
	case ShiftSchedule:
		resp.DaysPerWeek = &v.DaysPerWeek
		resp.StartTime = &v.StartTime
		resp.EndTime = &v.EndTime
		resp.HoursPerDay = &v.HoursPerDay
		resp.ShiftType = &v.ShiftType
		resp.WeekendWork = &v.WeekendWork
	}
	return resp
}

type EmployeeResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Designation string             `json:"designation"`
	DateOfBirth string             `json:"date_of_birth"`
	PhoneNumber string             `json:"phone_number"`
	Address     string             `json:"address"`
	Age         int                `json:"age"`
	BloodType   string             `json:"blood_type"`
	CTC         string             `json:"ctc"`
	ShiftHours  ShiftHoursResponse `json:"shift_hours"`
}

// AttendanceStats summarizes an employee's facts over a period
type AttendanceStats struct {
	PresentDays     int     `json:"present_days"`
	LateDays        int     `json:"late_days"`
	AbsentDays      int     `json:"absent_days"`
	LeaveDays       int     `json:"leave_days"`
	TotalDays       int     `json:"total_days"`
	AttendanceRate  float64 `json:"attendance_rate"`  // (present+late)/total, percent
	PunctualityRate float64 `json:"punctuality_rate"` // present/(present+late), percent
}

type EmployeeAttendanceResponse struct {
	Employee  EmployeeResponse  `json:"employee"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Stats     AttendanceStats   `json:"stats"`
	Records   []attendance.Fact `json:"records"`
}
