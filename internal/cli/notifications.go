package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/fatih/color"

	"github.com/luminahr/luminahr-go/luminahr"
)

func runNotifications(ctx context.Context, a *App, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "", "list":
		return notificationsList(ctx, a, rest)
	case "read":
		return notificationsRead(ctx, a, rest)
	case "read-all":
		return notificationsReadAll(ctx, a)
	case "delete":
		return notificationsDelete(ctx, a, rest)
	case "send":
		return notificationsSend(ctx, a, rest)
	default:
		return fmt.Errorf("notifications: unknown subcommand %q", sub)
	}
}

func notificationsList(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("notifications list", flag.ContinueOnError)
	limit := fs.Int("limit", 20, "maximum notifications")
	unread := fs.Bool("unread", false, "unread only")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := a.Client.Notifications.List(ctx, luminahr.NotificationListOptions{
		Limit:      *limit,
		UnreadOnly: *unread,
	})
	if err != nil {
		return err
	}

	for _, n := range list.Notifications {
		marker := " "
		if !n.IsRead {
			marker = color.YellowString("*")
		}
		a.printf("%s %s  %-10s %s\n", marker, n.ID, n.Type, n.Title)
		a.printf("    %s\n", n.Message)
	}
	a.printf("%d unread of %d\n", list.UnreadCount, list.Total)
	return nil
}

func notificationsRead(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("notifications read: notification id required")
	}
	if err := a.Client.Notifications.MarkRead(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Marked as read")
	return nil
}

func notificationsReadAll(ctx context.Context, a *App) error {
	if err := a.Client.Notifications.MarkAllRead(ctx); err != nil {
		return err
	}
	a.successf("All notifications marked as read")
	return nil
}

func notificationsDelete(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("notifications delete: notification id required")
	}
	if err := a.Client.Notifications.Delete(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Notification deleted")
	return nil
}

func notificationsSend(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("notifications send", flag.ContinueOnError)
	title := fs.String("title", "", "notification title")
	message := fs.String("message", "", "notification body")
	kind := fs.String("type", "announcement", "notification type")
	target := fs.String("to", "", "target user id, company-wide when omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" || *message == "" {
		return fmt.Errorf("notifications send: -title and -message are required")
	}

	req := luminahr.NotificationCreate{Title: *title, Message: *message, Type: *kind}
	if *target != "" {
		req.TargetUserID = target
	}

	if _, err := a.Client.Notifications.Create(ctx, req); err != nil {
		return err
	}
	a.successf("Notification sent")
	return nil
}
