package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/luminahr/luminahr-go/internal/payslip"
	"github.com/luminahr/luminahr-go/luminahr"
)

func runSalary(ctx context.Context, a *App, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "", "show":
		return salaryShow(ctx, a, rest)
	case "history":
		return salaryHistory(ctx, a)
	case "set":
		return salarySet(ctx, a, rest)
	case "list":
		return salaryList(ctx, a)
	case "delete":
		return salaryDelete(ctx, a, rest)
	case "payslip":
		return salaryPayslip(ctx, a, rest)
	default:
		return fmt.Errorf("salary: unknown subcommand %q", sub)
	}
}

func salaryShow(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("salary show", flag.ContinueOnError)
	month := fs.Int("month", 0, "month (1-12), defaults to current")
	year := fs.Int("year", 0, "year, defaults to current")
	if err := fs.Parse(args); err != nil {
		return err
	}

	salary, err := a.Client.Salary.Mine(ctx, *month, *year)
	if err != nil {
		return err
	}
	printMySalary(a, *salary)
	return nil
}

func salaryHistory(ctx context.Context, a *App) error {
	history, err := a.Client.Salary.MyHistory(ctx)
	if err != nil {
		return err
	}
	for _, s := range history {
		printMySalary(a, s)
	}
	return nil
}

func salarySet(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("salary set", flag.ContinueOnError)
	employee := fs.String("employee", "", "employee id")
	month := fs.Int("month", 0, "month (1-12)")
	year := fs.Int("year", 0, "year")
	gross := fs.Float64("gross", 0, "gross salary")
	deductions := fs.Float64("deductions", 0, "total deductions")
	currency := fs.String("currency", "USD", "currency code")
	notes := fs.String("notes", "", "payroll notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *employee == "" || *month == 0 || *year == 0 {
		return fmt.Errorf("salary set: -employee, -month and -year are required")
	}

	a.printf("Net preview: %.2f\n", luminahr.NetSalary(*gross, *deductions))
	record, err := a.Client.Salary.Create(ctx, luminahr.SalaryRecordCreate{
		EmployeeID:  *employee,
		Month:       *month,
		Year:        *year,
		GrossSalary: *gross,
		Deductions:  *deductions,
		Currency:    *currency,
		Notes:       *notes,
	})
	if err != nil {
		return err
	}
	a.successf("Salary recorded for %04d-%02d, net %.2f %s",
		record.Year, record.Month, record.NetSalary, record.Currency)
	return nil
}

func salaryList(ctx context.Context, a *App) error {
	records, err := a.Client.Salary.List(ctx)
	if err != nil {
		return err
	}
	for _, r := range records {
		a.printf("%s  %-24s %04d-%02d  gross %.2f  net %.2f %s\n",
			r.ID, r.EmployeeName, r.Year, r.Month, r.GrossSalary, r.NetSalary, r.Currency)
	}
	return nil
}

func salaryDelete(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("salary delete: record id required")
	}
	if err := a.Client.Salary.Delete(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Salary record deleted")
	return nil
}

func salaryPayslip(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("salary payslip", flag.ContinueOnError)
	month := fs.Int("month", 0, "month (1-12), defaults to current")
	year := fs.Int("year", 0, "year, defaults to current")
	if err := fs.Parse(args); err != nil {
		return err
	}

	salary, err := a.Client.Salary.Mine(ctx, *month, *year)
	if err != nil {
		return err
	}
	user := a.Client.Session().User()
	if user == nil {
		return luminahr.ErrNoSession
	}

	path, err := payslip.Render(a.PayslipDir, user.FullName, user.Email, luminahr.SalaryRecord{
		Month:       salary.Month,
		Year:        salary.Year,
		GrossSalary: salary.GrossSalary,
		Deductions:  salary.Deductions,
		NetSalary:   salary.NetSalary,
		Currency:    salary.Currency,
	})
	if err != nil {
		return err
	}
	a.successf("Payslip written to %s", path)
	return nil
}

func printMySalary(a *App, s luminahr.MySalary) {
	paid := "unpaid"
	if s.PaymentDate != nil {
		paid = "paid " + s.PaymentDate.Format("2006-01-02")
	}
	a.printf("%04d-%02d  gross %.2f  deductions %.2f  net %.2f %s  %s\n",
		s.Year, s.Month, s.GrossSalary, s.Deductions, s.NetSalary, s.Currency, paid)
}
