// Package cli implements the luminactl command surface over the
// luminahr client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/luminahr/luminahr-go/luminahr"
)

// App wires one CLI invocation: a configured client, the structured
// logger and the output stream commands print to.
type App struct {
	Client     *luminahr.Client
	Logger     *slog.Logger
	Out        io.Writer
	In         io.Reader
	PayslipDir string
}

type commandFunc func(ctx context.Context, a *App, args []string) error

type command struct {
	run     commandFunc
	summary string
}

var commands = map[string]command{
	"signup":        {runSignup, "Register a new account"},
	"login":         {runLogin, "Log in and persist the session"},
	"logout":        {runLogout, "Drop the persisted session"},
	"whoami":        {runWhoami, "Show the current session"},
	"profile":       {runProfile, "Update the caller's profile"},
	"passwd":        {runPasswd, "Change the caller's password"},
	"companies":     {runCompanies, "List registered companies"},
	"checkin":       {runCheckIn, "Open today's attendance record"},
	"checkout":      {runCheckOut, "Complete today's attendance record"},
	"attendance":    {runAttendance, "Attendance status, history and admin views"},
	"leave":         {runLeave, "Leave requests and the admin review flow"},
	"salary":        {runSalary, "Payroll records and payslip export"},
	"notices":       {runNotices, "Company announcements"},
	"departments":   {runDepartments, "Department directory"},
	"employees":     {runEmployees, "Employee administration"},
	"jobs":          {runJobs, "Job postings and applicants"},
	"careers":       {runCareers, "Public job listings and applications"},
	"chat":          {runChat, "Document-grounded assistant"},
	"notifications": {runNotifications, "In-app notification feed"},
	"tasks":         {runTasks, "Task assignment and tracking"},
	"reviews":       {runReviews, "Performance reviews and analytics"},
	"contact":       {runContact, "Send the contact form"},
}

// Run dispatches one command invocation.
func (a *App) Run(ctx context.Context, args []string) error {
	if a.Out == nil {
		a.Out = os.Stdout
	}
	if a.In == nil {
		a.In = os.Stdin
	}
	if len(args) == 0 || args[0] == "help" {
		a.usage()
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
	return cmd.run(ctx, a, args[1:])
}

func (a *App) usage() {
	fmt.Fprintln(a.Out, "Usage: luminactl <command> [arguments]")
	fmt.Fprintln(a.Out)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(a.Out, "  %-14s %s\n", name, commands[name].summary)
	}
}

func (a *App) successf(format string, args ...any) {
	fmt.Fprintln(a.Out, color.GreenString(format, args...))
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.Out, format, args...)
}

// readLine prompts on stdout and reads one trimmed line from stdin.
func (a *App) readLine(prompt string) (string, error) {
	fmt.Fprint(a.Out, prompt)
	reader := bufio.NewReader(a.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func subcommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}
