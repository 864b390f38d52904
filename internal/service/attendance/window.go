package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

// WindowConfig holds the defaults applied to zero-valued window requests
type WindowConfig struct {
	Days        int
	PageSize    int
	WorkerLimit int
	Location    *time.Location
}

// Builder assembles pages of reconciled daily summaries over a rolling window
// ending today.
type Builder struct {
	headcount attendance.HeadcountSource
	events    attendance.EventSource
	cfg       WindowConfig
	now       func() time.Time
	logger    *slog.Logger
}

type BuilderOption func(*Builder)

// WithClock overrides the clock used to decide what "today" is
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = now }
}

// WithLogger sets the logger used for build diagnostics
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) { b.logger = logger }
}

func NewBuilder(headcount attendance.HeadcountSource, events attendance.EventSource, cfg WindowConfig, opts ...BuilderOption) *Builder {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.WorkerLimit < 1 {
		cfg.WorkerLimit = 1
	}
	b := &Builder{
		headcount: headcount,
		events:    events,
		cfg:       cfg,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Today returns the current date at midnight in the configured location
func (b *Builder) Today() time.Time {
	now := b.now().In(b.cfg.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, b.cfg.Location)
}

// withDefaults fills zero-valued request fields from the configuration
func (b *Builder) withDefaults(req attendance.WindowRequest) attendance.WindowRequest {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = b.cfg.PageSize
	}
	if req.Days == 0 {
		req.Days = b.cfg.Days
	}
	return req
}

// Build returns one page of the window. A failed headcount fetch fails the
// whole build with an empty result; a failed day degrades to zero counts.
// On cancellation nothing partial is returned.
func (b *Builder) Build(ctx context.Context, req attendance.WindowRequest) (attendance.WindowResult, error) {
	req = b.withDefaults(req)
	if err := req.Validate(); err != nil {
		return attendance.EmptyWindow(), err
	}

	logger := b.logger.With(
		slog.String("build_id", uuid.NewString()),
		slog.Int("page", req.Page),
		slog.Int("page_size", req.PageSize),
	)

	headcount, err := b.headcount.Headcount(ctx)
	if err != nil {
		logger.Error("Window build aborted: headcount unavailable", "error", err)
		return attendance.EmptyWindow(), fmt.Errorf("%w: %w", attendance.ErrHeadcountFetch, err)
	}

	totalPages := (req.Days + req.PageSize - 1) / req.PageSize
	start := (req.Page - 1) * req.PageSize
	end := min(start+req.PageSize, req.Days)

	result := attendance.WindowResult{
		Items:      []attendance.DailySummary{},
		TotalPages: totalPages,
		Page:       req.Page,
		PageSize:   req.PageSize,
		WindowDays: req.Days,
	}
	if start >= end {
		return result, nil
	}

	today := b.Today()
	items := make([]attendance.DailySummary, end-start)
	degraded := make([]bool, end-start)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.WorkerLimit)

	for slot := range items {
		if gCtx.Err() != nil {
			break
		}
		day := today.AddDate(0, 0, -(start + slot))
		g.Go(func() error {
			summary, err := b.summarizeDay(gCtx, day, headcount)
			if err != nil {
				if ctxErr := gCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.Warn("Attendance fetch failed, using empty summary",
					"date", day.Format(dateLayout),
					"error", err,
				)
				summary = Summarize(day, nil, headcount)
				degraded[slot] = true
			}
			items[slot] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return attendance.EmptyWindow(), err
	}
	if err := ctx.Err(); err != nil {
		return attendance.EmptyWindow(), err
	}

	result.Items = items
	for slot, failed := range degraded {
		if failed {
			result.Degraded = append(result.Degraded, items[slot].Date)
		}
	}

	logger.Debug("Window built",
		"total_employees", headcount,
		"days", len(items),
		"degraded", len(result.Degraded),
	)
	return result, nil
}

func (b *Builder) summarizeDay(ctx context.Context, day time.Time, headcount int) (attendance.DailySummary, error) {
	date := day.Format(dateLayout)
	raws, err := b.events.DailyEvents(ctx, date)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return attendance.DailySummary{}, err
		}
		return attendance.DailySummary{}, fmt.Errorf("%w for %s: %w", attendance.ErrUpstreamFetch, date, err)
	}
	return Summarize(day, raws, headcount), nil
}

// Summarize runs one day's raw events through normalization, deduplication,
// aggregation and reconciliation.
func Summarize(day time.Time, raws []attendance.RawEvent, headcount int) attendance.DailySummary {
	facts := Deduplicate(NormalizeAll(raws, nil))
	counts := Reconcile(Aggregate(facts), headcount)

	return attendance.DailySummary{
		Date:           day.Format(dateLayout),
		Day:            day.Weekday().String(),
		TotalPresent:   counts.Present,
		TotalLate:      counts.Late,
		TotalAbsent:    counts.Absent,
		TotalLeave:     counts.Leave,
		TotalEmployees: headcount,
	}
}
