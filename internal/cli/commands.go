package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/cmlabs-hris/attendance-recap/internal/app"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/spf13/cobra"
)

func newWindowCmd(opts *options, open Opener) *cobra.Command {
	var req attendance.WindowRequest

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show a page of daily summaries for the rolling window ending today.",
		Long: `Show reconciled daily summaries, most recent day first.

Examples:
  # Default window and page size
  recap window

  # Second page of a 14-day window, 7 days per page
  recap window --days 14 --page-size 7 --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, open, func(svc *app.Services, out io.Writer) error {
				result, err := svc.Attendance.GetWindow(cmd.Context(), req)
				if err != nil {
					if errors.Is(err, attendance.ErrHeadcountFetch) {
						warn(out, "Employee headcount is unavailable, no summaries can be shown")
					}
					return err
				}
				if opts.output == OutputJSON {
					return writeJSON(out, result)
				}
				return writeWindowTable(out, result)
			})
		},
	}

	cmd.Flags().IntVar(&req.Page, "page", 1, "page number, 1-indexed")
	cmd.Flags().IntVar(&req.PageSize, "page-size", 0, "days per page (default from WINDOW_PAGE_SIZE)")
	cmd.Flags().IntVar(&req.Days, "days", 0, "window length in days (default from WINDOW_DAYS)")
	return cmd
}

func newDayCmd(opts *options, open Opener) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "List the deduplicated attendance facts of one day.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, open, func(svc *app.Services, out io.Writer) error {
				facts, err := svc.Attendance.GetDailyFacts(cmd.Context(), date)
				if err != nil {
					return err
				}
				if opts.output == OutputJSON {
					return writeJSON(out, facts)
				}
				return writeFactsTable(out, facts)
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to list, YYYY-MM-DD (default today)")
	return cmd
}

func newEmployeeCmd(opts *options, open Opener) *cobra.Command {
	var filter attendance.EmployeeAttendanceFilter

	cmd := &cobra.Command{
		Use:   "employee <id>",
		Short: "Show an employee's profile, attendance history and statistics.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.EmployeeID = args[0]
			return withServices(cmd, open, func(svc *app.Services, out io.Writer) error {
				resp, err := svc.Employee.GetAttendance(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if opts.output == OutputJSON {
					return writeJSON(out, resp)
				}

				shift := resp.Employee.ShiftHours.Display
				if shift == "" {
					shift = "-"
				}
				if _, err := fmt.Fprintf(out, "%s (%s)  %s\nShift: %s\nPeriod: %s to %s\n\n",
					resp.Employee.Name, resp.Employee.ID, resp.Employee.Designation,
					shift, resp.StartDate, resp.EndDate); err != nil {
					return err
				}
				if err := writeFactsTable(out, resp.Records); err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "\nPresent %d  Late %d  Absent %d  Leave %d  |  Attendance %.2f%%  Punctuality %.2f%%\n",
					resp.Stats.PresentDays, resp.Stats.LateDays, resp.Stats.AbsentDays, resp.Stats.LeaveDays,
					resp.Stats.AttendanceRate, resp.Stats.PunctualityRate)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&filter.StartDate, "start", "", "first day, YYYY-MM-DD (default: window start)")
	cmd.Flags().StringVar(&filter.EndDate, "end", "", "last day, YYYY-MM-DD (default today)")
	return cmd
}
