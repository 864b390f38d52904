package attendance

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	*Builder
	events attendance.EventSource
	names  attendance.NameResolver
}

func NewAttendanceService(builder *Builder, events attendance.EventSource, names attendance.NameResolver) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		Builder: builder,
		events:  events,
		names:   names,
	}
}

// GetWindow implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetWindow(ctx context.Context, req attendance.WindowRequest) (attendance.WindowResult, error) {
	return s.Build(ctx, req)
}

// GetDailyFacts implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDailyFacts(ctx context.Context, date string) ([]attendance.Fact, error) {
	if date == "" {
		date = s.Today().Format(dateLayout)
	}
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, attendance.ErrInvalidDate
	}

	raws, err := s.events.DailyEvents(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %w", attendance.ErrUpstreamFetch, date, err)
	}

	ids := make([]string, 0, len(raws))
	for _, raw := range raws {
		ids = append(ids, raw.EmployeeID)
	}
	names := s.resolveNames(ctx, ids)

	return Deduplicate(NormalizeAll(raws, names)), nil
}

// GetEmployeeFacts implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeFacts(ctx context.Context, filter attendance.EmployeeAttendanceFilter) ([]attendance.Fact, error) {
	filter = s.DefaultRange(filter)
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	raws, err := s.events.EmployeeEvents(ctx, filter.EmployeeID, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w for employee %s: %w", attendance.ErrUpstreamFetch, filter.EmployeeID, err)
	}

	names := s.resolveNames(ctx, []string{filter.EmployeeID})
	return Deduplicate(NormalizeAll(raws, names)), nil
}

// DefaultRange fills an empty date range with the configured window ending today
func (s *AttendanceServiceImpl) DefaultRange(filter attendance.EmployeeAttendanceFilter) attendance.EmployeeAttendanceFilter {
	today := s.Today()
	if filter.EndDate == "" {
		filter.EndDate = today.Format(dateLayout)
	}
	if filter.StartDate == "" {
		filter.StartDate = today.AddDate(0, 0, -(s.cfg.Days - 1)).Format(dateLayout)
	}
	return filter
}

// resolveNames looks up display names for the distinct ids. Lookups that fail
// are left out so the normalizer falls back to a placeholder.
func (s *AttendanceServiceImpl) resolveNames(ctx context.Context, ids []string) map[string]string {
	if s.names == nil {
		return nil
	}

	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	resolved := make([]string, len(unique))
	var g errgroup.Group
	g.SetLimit(s.cfg.WorkerLimit)
	for i, id := range unique {
		g.Go(func() error {
			name, err := s.names.EmployeeName(ctx, id)
			if err != nil {
				s.logger.Debug("Employee name unavailable, using placeholder",
					"employee_id", id,
					"error", fmt.Errorf("%w: %w", attendance.ErrNameResolution, err),
				)
				return nil
			}
			resolved[i] = name
			return nil
		})
	}
	_ = g.Wait()

	names := make(map[string]string, len(unique))
	for i, id := range unique {
		if resolved[i] != "" {
			names[id] = resolved[i]
		}
	}
	return names
}
