package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/fatih/color"

	"github.com/luminahr/luminahr-go/luminahr"
)

func runJobs(ctx context.Context, a *App, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "", "list":
		return jobsList(ctx, a, rest)
	case "create":
		return jobsCreate(ctx, a, rest)
	case "update":
		return jobsUpdate(ctx, a, rest)
	case "status":
		return jobsStatus(ctx, a, rest)
	case "delete":
		return jobsDelete(ctx, a, rest)
	case "applicants":
		return jobsApplicants(ctx, a, rest)
	case "add-applicant":
		return jobsAddApplicant(ctx, a, rest)
	case "applicant-status":
		return jobsApplicantStatus(ctx, a, rest)
	case "delete-applicant":
		return jobsDeleteApplicant(ctx, a, rest)
	case "stats":
		return jobsStats(ctx, a)
	default:
		return fmt.Errorf("jobs: unknown subcommand %q", sub)
	}
}

func jobsList(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("jobs list", flag.ContinueOnError)
	status := fs.String("status", "", "open, closed or on_hold")
	if err := fs.Parse(args); err != nil {
		return err
	}

	jobs, err := a.Client.Recruitment.Jobs(ctx, *status)
	if err != nil {
		return err
	}
	for _, j := range jobs {
		a.printf("%s  %-28s %-16s %-10s %d applicants\n",
			j.ID, j.Title, j.Department, colorJob(j.Status), j.ApplicantCount)
	}
	return nil
}

func jobsCreate(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("jobs create", flag.ContinueOnError)
	req := jobFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.Title == "" {
		return fmt.Errorf("jobs create: -title is required")
	}

	job, err := a.Client.Recruitment.CreateJob(ctx, *req)
	if err != nil {
		return err
	}
	a.successf("Job %s created (%s)", job.ID, job.Title)
	return nil
}

func jobsUpdate(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("jobs update", flag.ContinueOnError)
	req := jobFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("jobs update: job id required")
	}

	if _, err := a.Client.Recruitment.UpdateJob(ctx, fs.Arg(0), *req); err != nil {
		return err
	}
	a.successf("Job updated")
	return nil
}

func jobFlags(fs *flag.FlagSet) *luminahr.JobPostingCreate {
	req := &luminahr.JobPostingCreate{}
	fs.StringVar(&req.Title, "title", "", "job title")
	fs.StringVar(&req.Department, "department", "", "department")
	fs.StringVar(&req.Description, "description", "", "role description")
	fs.StringVar(&req.Requirements, "requirements", "", "role requirements")
	fs.StringVar(&req.SalaryRange, "salary", "", "salary range")
	fs.StringVar(&req.Location, "location", "", "location")
	fs.StringVar(&req.EmploymentType, "type", "full_time", "employment type")
	return req
}

func jobsStatus(ctx context.Context, a *App, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("jobs status: job id and new status required")
	}
	if err := a.Client.Recruitment.UpdateJobStatus(ctx, args[0], args[1]); err != nil {
		return err
	}
	a.successf("Job moved to %s", args[1])
	return nil
}

func jobsDelete(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("jobs delete: job id required")
	}
	if err := a.Client.Recruitment.DeleteJob(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Job deleted")
	return nil
}

func jobsApplicants(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("jobs applicants", flag.ContinueOnError)
	status := fs.String("status", "", "pipeline status filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("jobs applicants: job id required")
	}

	applicants, err := a.Client.Recruitment.Applicants(ctx, fs.Arg(0), *status)
	if err != nil {
		return err
	}
	for _, ap := range applicants {
		line := fmt.Sprintf("%s  %-24s %-28s %s", ap.ID, ap.Name, ap.Email, ap.Status)
		if ap.InterviewDate != nil {
			line += "  interview " + ap.InterviewDate.Format("2006-01-02")
		}
		a.printf("%s\n", line)
	}
	return nil
}

func jobsAddApplicant(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("jobs add-applicant", flag.ContinueOnError)
	req := applicantFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || req.Name == "" || req.Email == "" {
		return fmt.Errorf("jobs add-applicant: job id, -name and -email are required")
	}

	resp, err := a.Client.Recruitment.AddApplicant(ctx, fs.Arg(0), *req)
	if err != nil {
		return err
	}
	a.successf("Applicant %s added", resp.ApplicantID)
	return nil
}

func jobsApplicantStatus(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("jobs applicant-status", flag.ContinueOnError)
	notes := fs.String("notes", "", "status notes")
	interview := fs.String("interview", "", "interview date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("jobs applicant-status: applicant id and new status required")
	}

	err := a.Client.Recruitment.UpdateApplicantStatus(ctx, fs.Arg(0), fs.Arg(1), luminahr.ApplicantStatusUpdate{
		Notes:         *notes,
		InterviewDate: *interview,
	})
	if err != nil {
		return err
	}
	a.successf("Applicant moved to %s", fs.Arg(1))
	return nil
}

func jobsDeleteApplicant(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("jobs delete-applicant: applicant id required")
	}
	if err := a.Client.Recruitment.DeleteApplicant(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Applicant deleted")
	return nil
}

func jobsStats(ctx context.Context, a *App) error {
	stats, err := a.Client.Recruitment.Stats(ctx)
	if err != nil {
		return err
	}
	a.printf("Jobs: %d total, %d open, %d closed\n", stats.TotalJobs, stats.OpenJobs, stats.ClosedJobs)
	a.printf("Applicants: %d total, %d new, %d in interview, %d hired\n",
		stats.TotalApplicants, stats.NewApplicants, stats.InInterview, stats.Hired)
	return nil
}

func runCareers(ctx context.Context, a *App, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "", "list":
		return careersList(ctx, a)
	case "show":
		return careersShow(ctx, a, rest)
	case "apply":
		return careersApply(ctx, a, rest)
	default:
		return fmt.Errorf("careers: unknown subcommand %q", sub)
	}
}

func careersList(ctx context.Context, a *App) error {
	list, err := a.Client.Recruitment.PublicJobs(ctx)
	if err != nil {
		return err
	}
	for _, j := range list.Jobs {
		a.printf("%s  %-28s %-20s %-16s %s\n",
			j.ID, j.Title, j.CompanyName, j.Department, j.Location)
	}
	a.printf("Total: %d\n", list.Total)
	return nil
}

func careersShow(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("careers show: job id required")
	}
	job, err := a.Client.Recruitment.PublicJob(ctx, args[0])
	if luminahr.IsNotFound(err) {
		return fmt.Errorf("this job is no longer available")
	}
	if err != nil {
		return err
	}

	a.printf("%s at %s\n", color.CyanString(job.Title), job.CompanyName)
	a.printf("  %s, %s, %s\n", job.Department, job.Location, job.EmploymentType)
	if job.SalaryRange != "" {
		a.printf("  Salary: %s\n", job.SalaryRange)
	}
	if !job.IsOpen {
		a.printf("  %s\n", color.YellowString("No longer accepting applications"))
	}
	a.printf("\n%s\n", job.Description)
	if job.Requirements != "" {
		a.printf("\nRequirements:\n%s\n", job.Requirements)
	}
	return nil
}

func careersApply(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("careers apply", flag.ContinueOnError)
	req := applicantFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || req.Name == "" || req.Email == "" {
		return fmt.Errorf("careers apply: job id, -name and -email are required")
	}

	resp, err := a.Client.Recruitment.Apply(ctx, fs.Arg(0), *req)
	if err != nil {
		return err
	}
	a.successf("%s", resp.Message)
	return nil
}

func applicantFlags(fs *flag.FlagSet) *luminahr.ApplicantCreate {
	req := &luminahr.ApplicantCreate{}
	fs.StringVar(&req.Name, "name", "", "applicant name")
	fs.StringVar(&req.Email, "email", "", "applicant email")
	fs.StringVar(&req.Phone, "phone", "", "applicant phone")
	fs.StringVar(&req.CoverLetter, "cover", "", "cover letter")
	fs.StringVar(&req.ResumeURL, "resume", "", "resume URL")
	return req
}

func colorJob(status string) string {
	switch status {
	case luminahr.JobOpen:
		return color.GreenString(status)
	case luminahr.JobClosed:
		return color.RedString(status)
	default:
		return color.YellowString(status)
	}
}
