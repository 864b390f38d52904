package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var (
	presentColor = color.New(color.FgGreen)
	lateColor    = color.New(color.FgYellow, color.Bold)
	absentColor  = color.New(color.FgRed, color.Bold)
	leaveColor   = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
)

func statusColor(s attendance.Status) *color.Color {
	switch s {
	case attendance.StatusLate:
		return lateColor
	case attendance.StatusAbsent:
		return absentColor
	case attendance.StatusLeave:
		return leaveColor
	default:
		return presentColor
	}
}

func warn(out io.Writer, msg string) {
	_, _ = warnColor.Fprintln(out, "Warning: "+msg)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeWindowTable(out io.Writer, result attendance.WindowResult) error {
	table := tablewriter.NewWriter(out)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Date", "Day", "Present", "Late", "Absent", "Leave", "Employees"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range result.Items {
		data = append(data, []string{
			s.Date,
			s.Day,
			presentColor.Sprint(s.TotalPresent),
			lateColor.Sprint(s.TotalLate),
			absentColor.Sprint(s.TotalAbsent),
			leaveColor.Sprint(s.TotalLeave),
			strconv.Itoa(s.TotalEmployees),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, "Page %d of %d\n", result.Page, result.TotalPages); err != nil {
		return err
	}
	for _, d := range result.Degraded {
		warn(out, "events for "+d+" could not be fetched, counts shown as zero")
	}
	return nil
}

func writeFactsTable(out io.Writer, facts []attendance.Fact) error {
	table := tablewriter.NewWriter(out)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Date", "Employee", "Name", "Clock In", "Clock Out", "Location", "Status"})

	var data [][]string
	for _, f := range facts {
		clockOut := "-"
		if f.ClockOut != nil && *f.ClockOut != "" {
			clockOut = *f.ClockOut
		}
		clockIn := f.ClockIn
		if clockIn == "" {
			clockIn = "-"
		}
		data = append(data, []string{
			f.Date,
			f.EmployeeID,
			f.EmployeeName,
			clockIn,
			clockOut,
			string(f.ClockInLocation.Type),
			statusColor(f.Status).Sprint(string(f.Status)),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
