package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/fatih/color"

	"github.com/luminahr/luminahr-go/luminahr"
)

func runTasks(ctx context.Context, a *App, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "", "my":
		return tasksMy(ctx, a, rest)
	case "all":
		return tasksAll(ctx, a, rest)
	case "create":
		return tasksCreate(ctx, a, rest)
	case "update":
		return tasksUpdate(ctx, a, rest)
	case "done":
		return tasksDone(ctx, a, rest)
	case "delete":
		return tasksDelete(ctx, a, rest)
	default:
		return fmt.Errorf("tasks: unknown subcommand %q", sub)
	}
}

func tasksMy(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("tasks my", flag.ContinueOnError)
	status := fs.String("status", "", "status filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := a.Client.Tasks.My(ctx, *status)
	if err != nil {
		return err
	}
	printTasks(a, list.Tasks)
	printTaskCounts(a, luminahr.CountByStatus(list.Tasks))
	return nil
}

func tasksAll(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("tasks all", flag.ContinueOnError)
	status := fs.String("status", "", "status filter")
	employee := fs.String("employee", "", "assignee filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := a.Client.Tasks.All(ctx, luminahr.TaskFilter{
		EmployeeID: *employee,
		Status:     *status,
	})
	if err != nil {
		return err
	}
	printTasks(a, list.Tasks)
	printTaskCounts(a, luminahr.CountByStatus(list.Tasks))
	return nil
}

func tasksCreate(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("tasks create", flag.ContinueOnError)
	title := fs.String("title", "", "task title")
	description := fs.String("description", "", "task description")
	assignee := fs.String("assignee", "", "employee id to assign to")
	due := fs.String("due", "", "due date (YYYY-MM-DD)")
	priority := fs.String("priority", "medium", "low, medium or high")
	category := fs.String("category", "general", "task category")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" || *assignee == "" {
		return fmt.Errorf("tasks create: -title and -assignee are required")
	}

	err := a.Client.Tasks.Create(ctx, luminahr.TaskCreate{
		Title:       *title,
		Description: *description,
		AssignedTo:  *assignee,
		DueDate:     *due,
		Priority:    *priority,
		Category:    *category,
	})
	if err != nil {
		return err
	}
	a.successf("Task created")
	return nil
}

func tasksUpdate(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("tasks update", flag.ContinueOnError)
	status := fs.String("status", "", "new status")
	title := fs.String("title", "", "new title")
	priority := fs.String("priority", "", "new priority")
	due := fs.String("due", "", "new due date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("tasks update: task id required")
	}

	upd := luminahr.TaskUpdate{}
	if *status != "" {
		upd.Status = status
	}
	if *title != "" {
		upd.Title = title
	}
	if *priority != "" {
		upd.Priority = priority
	}
	if *due != "" {
		upd.DueDate = due
	}

	if err := a.Client.Tasks.Update(ctx, fs.Arg(0), upd); err != nil {
		return err
	}
	a.successf("Task updated")
	return nil
}

func tasksDone(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("tasks done: task id required")
	}
	status := luminahr.TaskCompleted
	if err := a.Client.Tasks.Update(ctx, args[0], luminahr.TaskUpdate{Status: &status}); err != nil {
		return err
	}
	a.successf("Task completed")
	return nil
}

func tasksDelete(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("tasks delete: task id required")
	}
	if err := a.Client.Tasks.Delete(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Task deleted")
	return nil
}

func printTasks(a *App, tasks []luminahr.Task) {
	for _, t := range tasks {
		line := fmt.Sprintf("%s  %-32s %-12s %-8s", t.ID, t.Title, colorTask(t.Status), t.Priority)
		if t.AssignedToName != "" {
			line += "  " + t.AssignedToName
		}
		if t.DueDate != nil && *t.DueDate != "" {
			line += "  due " + *t.DueDate
		}
		a.printf("%s\n", line)
	}
}

func printTaskCounts(a *App, counts luminahr.TaskCounts) {
	a.printf("All: %d  Pending: %d  In progress: %d  Completed: %d  Cancelled: %d\n",
		counts.All, counts.Pending, counts.InProgress, counts.Completed, counts.Cancelled)
}

func colorTask(status string) string {
	switch status {
	case luminahr.TaskCompleted:
		return color.GreenString(status)
	case luminahr.TaskInProgress:
		return color.CyanString(status)
	case luminahr.TaskCancelled:
		return color.RedString(status)
	default:
		return color.YellowString(status)
	}
}
