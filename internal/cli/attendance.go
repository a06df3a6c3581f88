package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/luminahr/luminahr-go/luminahr"
)

func runCheckIn(ctx context.Context, a *App, _ []string) error {
	resp, err := a.Client.Attendance.CheckIn(ctx)
	if err != nil {
		return err
	}
	a.successf("Checked in at %s", resp.CheckInTime.Format("15:04:05"))
	return nil
}

func runCheckOut(ctx context.Context, a *App, _ []string) error {
	resp, err := a.Client.Attendance.CheckOut(ctx)
	if err != nil {
		return err
	}
	a.successf("Checked out at %s", resp.CheckOutTime.Format("15:04:05"))
	return nil
}

func runAttendance(ctx context.Context, a *App, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "", "status":
		return attendanceStatus(ctx, a)
	case "history":
		return attendanceHistory(ctx, a, rest)
	case "company":
		return attendanceCompany(ctx, a, rest)
	case "stats":
		return attendanceStats(ctx, a)
	default:
		return fmt.Errorf("attendance: unknown subcommand %q", sub)
	}
}

func attendanceStatus(ctx context.Context, a *App) error {
	status, err := a.Client.Attendance.MyStatus(ctx)
	if err != nil {
		return err
	}

	a.printf("Status: %s\n", colorAttendance(status.Status))
	if status.CheckInTime != nil {
		a.printf("  Checked in:  %s\n", status.CheckInTime.Format("15:04:05"))
	}
	if status.CheckOutTime != nil {
		a.printf("  Checked out: %s\n", status.CheckOutTime.Format("15:04:05"))
	}
	return nil
}

func attendanceHistory(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("attendance history", flag.ContinueOnError)
	limit := fs.Int("limit", 30, "maximum records")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := a.Client.Attendance.MyHistory(ctx, *limit)
	if err != nil {
		return err
	}
	for _, r := range records {
		a.printf("%s  %-14s  %s - %s\n", r.Date, r.Status,
			formatClock(r.CheckInTime), formatClock(r.CheckOutTime))
	}
	return nil
}

func attendanceCompany(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("attendance company", flag.ContinueOnError)
	date := fs.String("date", "", "filter by date (YYYY-MM-DD)")
	employee := fs.String("employee", "", "filter by employee id")
	limit := fs.Int("limit", 100, "maximum records")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.Client.Attendance.Company(ctx, luminahr.CompanyAttendanceFilter{
		Date:       *date,
		EmployeeID: *employee,
		Limit:      *limit,
	})
	if err != nil {
		return err
	}
	for _, r := range result.Records {
		a.printf("%s  %-24s %-14s %s - %s\n", r.Date, r.EmployeeName, r.Status,
			formatClock(r.CheckInTime), formatClock(r.CheckOutTime))
	}
	a.printf("Total: %d\n", result.Total)
	return nil
}

func attendanceStats(ctx context.Context, a *App) error {
	stats, err := a.Client.Attendance.Stats(ctx)
	if err != nil {
		return err
	}
	a.printf("Attendance for %s\n", stats.Date)
	a.printf("  Checked in:     %d\n", stats.CheckedIn)
	a.printf("  Completed:      %d\n", stats.Completed)
	a.printf("  Not checked in: %d\n", stats.NotCheckedIn)
	a.printf("  Rate:           %.1f%%\n", stats.AttendanceRate)
	return nil
}

func colorAttendance(status string) string {
	switch status {
	case luminahr.AttendanceCheckedIn:
		return color.GreenString(status)
	case luminahr.AttendanceCompleted:
		return color.CyanString(status)
	default:
		return color.YellowString(status)
	}
}

func formatClock(t *time.Time) string {
	if t == nil {
		return "--:--"
	}
	return t.Format("15:04")
}
