package employee

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recap/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type EmployeeServiceImpl struct {
	directory  employee.Directory
	attendance attendance.AttendanceService
}

func NewEmployeeService(directory employee.Directory, attendanceService attendance.AttendanceService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		directory:  directory,
		attendance: attendanceService,
	}
}

// Helper function to map Employee to EmployeeResponse
func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          emp.ID,
		Name:        emp.Name,
		Email:       emp.Email,
		Designation: emp.Designation,
		DateOfBirth: emp.DateOfBirth,
		PhoneNumber: emp.PhoneNumber,
		Address:     emp.Address,
		Age:         emp.Age,
		BloodType:   emp.BloodType,
		CTC:         emp.CTC,
		ShiftHours:  employee.NewShiftHoursResponse(emp.ShiftHours),
	}
}

// GetProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetProfile(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if validator.IsEmpty(id) {
		return employee.EmployeeResponse{}, validator.ValidationErrors{
			{Field: "id", Message: "employee id is required"},
		}
	}

	emp, err := s.directory.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return mapEmployeeToResponse(emp), nil
}

// GetAttendance implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetAttendance(ctx context.Context, filter attendance.EmployeeAttendanceFilter) (employee.EmployeeAttendanceResponse, error) {
	filter = s.attendance.DefaultRange(filter)
	if err := filter.Validate(); err != nil {
		return employee.EmployeeAttendanceResponse{}, err
	}

	var (
		profile employee.EmployeeResponse
		facts   []attendance.Fact
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		profile, err = s.GetProfile(gctx, filter.EmployeeID)
		return err
	})

	g.Go(func() error {
		var err error
		facts, err = s.attendance.GetEmployeeFacts(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return employee.EmployeeAttendanceResponse{}, err
	}

	if facts == nil {
		facts = []attendance.Fact{}
	}

	return employee.EmployeeAttendanceResponse{
		Employee:  profile,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Stats:     ComputeStats(facts),
		Records:   facts,
	}, nil
}
