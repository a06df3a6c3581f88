package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/fatih/color"

	"github.com/luminahr/luminahr-go/luminahr"
)

func runLeave(ctx context.Context, a *App, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "submit":
		return leaveSubmit(ctx, a, rest)
	case "", "list":
		return leaveList(ctx, a)
	case "summary":
		return leaveSummary(ctx, a)
	case "pending":
		return leavePending(ctx, a)
	case "all":
		return leaveAll(ctx, a, rest)
	case "approve":
		return leaveApprove(ctx, a, rest)
	case "reject":
		return leaveReject(ctx, a, rest)
	default:
		return fmt.Errorf("leave: unknown subcommand %q", sub)
	}
}

func leaveSubmit(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("leave submit", flag.ContinueOnError)
	from := fs.String("from", "", "start date (YYYY-MM-DD)")
	to := fs.String("to", "", "end date (YYYY-MM-DD)")
	reason := fs.String("reason", "", "reason for the leave")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *from == "" || *to == "" || *reason == "" {
		return fmt.Errorf("leave submit: -from, -to and -reason are required")
	}

	err := a.Client.Leave.Submit(ctx, luminahr.LeaveRequestCreate{
		StartDate: *from,
		EndDate:   *to,
		Reason:    *reason,
	})
	if err != nil {
		return err
	}
	a.successf("Leave request submitted")
	return nil
}

func leaveList(ctx context.Context, a *App) error {
	requests, err := a.Client.Leave.MyRequests(ctx)
	if err != nil {
		return err
	}
	printLeaveRequests(a, requests, false)
	return nil
}

func leaveSummary(ctx context.Context, a *App) error {
	summary, err := a.Client.Leave.MySummary(ctx)
	if err != nil {
		return err
	}
	a.printf("Pending: %d  Approved: %d  Rejected: %d  Total: %d\n",
		summary.Pending, summary.Approved, summary.Rejected, summary.Total)
	return nil
}

func leavePending(ctx context.Context, a *App) error {
	requests, err := a.Client.Leave.Pending(ctx)
	if err != nil {
		return err
	}
	printLeaveRequests(a, requests, true)
	return nil
}

func leaveAll(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("leave all", flag.ContinueOnError)
	status := fs.String("status", "", "pending, approved or rejected")
	if err := fs.Parse(args); err != nil {
		return err
	}

	requests, err := a.Client.Leave.All(ctx, *status)
	if err != nil {
		return err
	}
	printLeaveRequests(a, requests, true)
	return nil
}

func leaveApprove(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("leave approve: request id required")
	}
	if err := a.Client.Leave.Approve(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Leave request approved")
	return nil
}

func leaveReject(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("leave reject", flag.ContinueOnError)
	reason := fs.String("reason", "", "rejection reason")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("leave reject: request id required")
	}
	if err := a.Client.Leave.Reject(ctx, fs.Arg(0), *reason); err != nil {
		return err
	}
	a.successf("Leave request rejected")
	return nil
}

func printLeaveRequests(a *App, requests []luminahr.LeaveRequest, withEmployee bool) {
	for _, r := range requests {
		line := fmt.Sprintf("%s  %s to %s  %s", r.ID, r.StartDate, r.EndDate, colorLeave(r.Status))
		if withEmployee {
			line += "  " + r.EmployeeName
		}
		if r.RejectionReason != nil && *r.RejectionReason != "" {
			line += "  (" + *r.RejectionReason + ")"
		}
		a.printf("%s\n", line)
	}
}

func colorLeave(status string) string {
	switch status {
	case luminahr.LeaveApproved:
		return color.GreenString(status)
	case luminahr.LeaveRejected:
		return color.RedString(status)
	default:
		return color.YellowString(status)
	}
}
