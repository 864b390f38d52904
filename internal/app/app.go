package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-recap/internal/config"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recap/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-recap/internal/pkg/upstream"
	"github.com/cmlabs-hris/attendance-recap/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-recap/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/attendance-recap/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/attendance-recap/internal/service/employee"
)

// Sources bundles the source-of-record adapters the services read from
type Sources struct {
	Headcount attendance.HeadcountSource
	Events    attendance.EventSource
	Names     attendance.NameResolver
	Directory employee.Directory
	Close     func()
}

// Services bundles the application services shared by the API server and the CLI
type Services struct {
	Attendance attendance.AttendanceService
	Employee   employee.EmployeeService
	Dashboard  dashboard.DashboardService
	Close      func()
}

// OpenSources connects to the configured source of record
func OpenSources(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Sources, error) {
	switch cfg.Upstream.SourceType {
	case config.SourceHTTP:
		client := upstream.NewClient(cfg.Upstream, upstream.WithLogger(logger))
		return &Sources{
			Headcount: client,
			Events:    client,
			Names:     client,
			Directory: client,
			Close:     func() {},
		}, nil

	case config.SourcePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Window.WorkerLimit)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		employees := postgresql.NewEmployeeRepository(db)
		return &Sources{
			Headcount: employees,
			Events:    postgresql.NewAttendanceRepository(db, cfg.Location()),
			Names:     employees,
			Directory: employees,
			Close:     db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported source type %q", cfg.Upstream.SourceType)
	}
}

// NewServices wires the services over the given sources
func NewServices(cfg *config.Config, src *Sources, logger *slog.Logger, opts ...attendanceService.BuilderOption) *Services {
	builder := attendanceService.NewBuilder(
		src.Headcount,
		src.Events,
		attendanceService.WindowConfig{
			Days:        cfg.Window.Days,
			PageSize:    cfg.Window.PageSize,
			WorkerLimit: cfg.Window.WorkerLimit,
			Location:    cfg.Location(),
		},
		append([]attendanceService.BuilderOption{attendanceService.WithLogger(logger)}, opts...)...,
	)

	attendanceSvc := attendanceService.NewAttendanceService(builder, src.Events, src.Names)

	return &Services{
		Attendance: attendanceSvc,
		Employee:   employeeService.NewEmployeeService(src.Directory, attendanceSvc),
		Dashboard:  dashboardService.NewDashboardService(attendanceSvc),
		Close:      src.Close,
	}
}

// Open connects to the configured source and wires the services
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	src, err := OpenSources(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return NewServices(cfg, src, logger), nil
}
