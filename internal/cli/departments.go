package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/luminahr/luminahr-go/luminahr"
)

func runDepartments(ctx context.Context, a *App, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "", "list":
		return departmentsList(ctx, a)
	case "create":
		return departmentsCreate(ctx, a, rest)
	case "update":
		return departmentsUpdate(ctx, a, rest)
	case "delete":
		return departmentsDelete(ctx, a, rest)
	case "employees":
		return departmentsEmployees(ctx, a, rest)
	default:
		return fmt.Errorf("departments: unknown subcommand %q", sub)
	}
}

func departmentsList(ctx context.Context, a *App) error {
	departments, err := a.Client.Departments.List(ctx)
	if err != nil {
		return err
	}
	for _, d := range departments {
		a.printf("%s  %-24s %d employees\n", d.ID, d.Name, d.EmployeeCount)
	}
	return nil
}

func departmentsCreate(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("departments create", flag.ContinueOnError)
	name := fs.String("name", "", "department name")
	description := fs.String("description", "", "department description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("departments create: -name is required")
	}

	department, err := a.Client.Departments.Create(ctx, luminahr.DepartmentCreate{
		Name:        *name,
		Description: *description,
	})
	if err != nil {
		return err
	}
	a.successf("Department %s created", department.Name)
	return nil
}

func departmentsUpdate(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("departments update", flag.ContinueOnError)
	name := fs.String("name", "", "new name")
	description := fs.String("description", "", "new description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("departments update: department id required")
	}

	upd := luminahr.DepartmentUpdate{}
	if *name != "" {
		upd.Name = name
	}
	if *description != "" {
		upd.Description = description
	}

	if err := a.Client.Departments.Update(ctx, fs.Arg(0), upd); err != nil {
		return err
	}
	a.successf("Department updated")
	return nil
}

func departmentsDelete(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("departments delete: department id required")
	}
	if err := a.Client.Departments.Delete(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Department deleted, members moved to Unassigned")
	return nil
}

func departmentsEmployees(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("departments employees: department id required")
	}
	employees, err := a.Client.Departments.Employees(ctx, args[0])
	if err != nil {
		return err
	}
	for _, e := range employees {
		a.printf("%s  %-24s %s\n", e.ID, e.FullName, e.JobTitle)
	}
	return nil
}
