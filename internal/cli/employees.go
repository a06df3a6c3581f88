package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/luminahr/luminahr-go/luminahr"
)

func runEmployees(ctx context.Context, a *App, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "", "list":
		return employeesList(ctx, a)
	case "pending":
		return employeesPending(ctx, a)
	case "approve":
		return employeesApprove(ctx, a, rest)
	case "reject":
		return employeesReject(ctx, a, rest)
	case "update":
		return employeesUpdate(ctx, a, rest)
	case "delete":
		return employeesDelete(ctx, a, rest)
	case "terminate":
		return employeesTerminate(ctx, a, rest)
	case "terminations":
		return employeesTerminations(ctx, a)
	case "import":
		return employeesImport(ctx, a, rest)
	case "assign":
		return employeesAssign(ctx, a, rest)
	case "stats":
		return employeesStats(ctx, a)
	default:
		return fmt.Errorf("employees: unknown subcommand %q", sub)
	}
}

func employeesList(ctx context.Context, a *App) error {
	employees, err := a.Client.Employees.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range employees {
		state := color.GreenString("active")
		if !e.IsActive {
			state = color.RedString("inactive")
		}
		a.printf("%s  %-24s %-28s %-12s %-16s %s\n",
			e.ID, e.FullName, e.Email, e.Role, e.Department, state)
	}
	return nil
}

func employeesPending(ctx context.Context, a *App) error {
	pending, err := a.Client.Employees.Pending(ctx)
	if err != nil {
		return err
	}
	for _, p := range pending {
		a.printf("%s  %-24s %-28s signed up %s\n",
			p.ID, p.FullName, p.Email, p.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func employeesApprove(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("employees approve: employee id required")
	}
	if err := a.Client.Employees.Approve(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Employee approved")
	return nil
}

func employeesReject(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("employees reject: employee id required")
	}
	if err := a.Client.Employees.Reject(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Employee rejected")
	return nil
}

func employeesUpdate(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("employees update", flag.ContinueOnError)
	name := fs.String("name", "", "full name")
	department := fs.String("department", "", "department")
	title := fs.String("title", "", "job title")
	phone := fs.String("phone", "", "phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("employees update: employee id required")
	}

	upd := luminahr.ProfileUpdate{}
	if *name != "" {
		upd.FullName = name
	}
	if *department != "" {
		upd.Department = department
	}
	if *title != "" {
		upd.JobTitle = title
	}
	if *phone != "" {
		upd.Phone = phone
	}

	employee, err := a.Client.Employees.Update(ctx, fs.Arg(0), upd)
	if err != nil {
		return err
	}
	a.successf("Updated %s", employee.FullName)
	return nil
}

func employeesDelete(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("employees delete: employee id required")
	}
	if err := a.Client.Employees.Delete(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Employee deleted")
	return nil
}

func employeesTerminate(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("employees terminate", flag.ContinueOnError)
	reason := fs.String("reason", "", "termination reason (see employees terminations -reasons)")
	notes := fs.String("notes", "", "additional notes")
	effective := fs.String("effective", "", "effective date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("employees terminate: employee id required")
	}
	if *reason == "" {
		reasons, err := a.Client.Employees.TerminationReasons(ctx)
		if err != nil {
			return err
		}
		return fmt.Errorf("employees terminate: -reason is required, one of %v", reasons)
	}

	resp, err := a.Client.Employees.Terminate(ctx, fs.Arg(0), luminahr.TerminationRequest{
		Reason:        *reason,
		Notes:         *notes,
		EffectiveDate: *effective,
	})
	if err != nil {
		return err
	}
	a.successf("Terminated, effective %s", resp.EffectiveDate)
	return nil
}

func employeesTerminations(ctx context.Context, a *App) error {
	list, err := a.Client.Employees.Terminations(ctx)
	if err != nil {
		return err
	}
	for _, t := range list.Terminations {
		a.printf("%s  %-24s %-20s effective %s\n",
			t.TerminatedAt.Format("2006-01-02"), t.EmployeeName, t.Reason, t.EffectiveDate)
	}
	a.printf("Total: %d\n", list.Total)
	return nil
}

func employeesImport(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("employees import", flag.ContinueOnError)
	file := fs.String("file", "", "file of lines: full_name, email[, department[, job_title]] (- for stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("employees import: -file is required")
	}

	var (
		data []byte
		err  error
	)
	if *file == "-" {
		data, err = io.ReadAll(a.In)
	} else {
		data, err = os.ReadFile(*file)
	}
	if err != nil {
		return err
	}

	employees := luminahr.ParseBulkImport(string(data))
	if len(employees) == 0 {
		return fmt.Errorf("employees import: no valid rows found")
	}

	result, err := a.Client.Employees.BulkImport(ctx, employees)
	if err != nil {
		return err
	}

	for _, c := range result.Created {
		a.printf("%s  %-28s temp password %s\n", color.GreenString("created"), c.Email, c.TempPassword)
	}
	for _, s := range result.Skipped {
		a.printf("%s  %-28s %s\n", color.YellowString("skipped"), s.Email, s.Reason)
	}
	a.successf("Imported %d, skipped %d", len(result.Created), len(result.Skipped))
	return nil
}

func employeesAssign(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("employees assign", flag.ContinueOnError)
	department := fs.String("department", "", "department name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *department == "" {
		return fmt.Errorf("employees assign: employee id and -department are required")
	}

	if err := a.Client.Employees.AssignDepartment(ctx, fs.Arg(0), *department); err != nil {
		return err
	}
	a.successf("Assigned to %s", *department)
	return nil
}

func employeesStats(ctx context.Context, a *App) error {
	stats, err := a.Client.Employees.Stats(ctx)
	if err != nil {
		return err
	}
	a.printf("Employees: %d total, %d active, %d pending approval\n",
		stats.TotalEmployees, stats.ActiveEmployees, stats.PendingApprovals)
	a.printf("Today: %d checked in, %d pending leaves, attendance %.1f%%\n",
		stats.CheckedInToday, stats.PendingLeaves, stats.AttendanceRate)
	a.printf("New hires this month: %d\n", stats.NewHiresThisMonth)
	for _, d := range stats.Departments {
		a.printf("  %-24s %d\n", d.Name, d.Count)
	}
	return nil
}
