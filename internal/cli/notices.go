package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/fatih/color"

	"github.com/luminahr/luminahr-go/luminahr"
)

func runNotices(ctx context.Context, a *App, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "", "list":
		return noticesList(ctx, a, false)
	case "all":
		return noticesList(ctx, a, true)
	case "create":
		return noticesCreate(ctx, a, rest)
	case "update":
		return noticesUpdate(ctx, a, rest)
	case "delete":
		return noticesDelete(ctx, a, rest)
	default:
		return fmt.Errorf("notices: unknown subcommand %q", sub)
	}
}

func noticesList(ctx context.Context, a *App, all bool) error {
	var (
		notices []luminahr.Notice
		err     error
	)
	if all {
		notices, err = a.Client.Notices.All(ctx)
	} else {
		notices, err = a.Client.Notices.List(ctx)
	}
	if err != nil {
		return err
	}

	for _, n := range notices {
		title := color.CyanString(n.Title)
		if !n.IsActive {
			title += " " + color.YellowString("(inactive)")
		}
		a.printf("%s  %s\n", n.ID, title)
		a.printf("  %s  by %s\n", n.CreatedAt.Format("2006-01-02"), n.PublisherName)
		a.printf("  %s\n", n.Content)
	}
	return nil
}

func noticesCreate(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("notices create", flag.ContinueOnError)
	title := fs.String("title", "", "notice title")
	content := fs.String("content", "", "notice body")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" || *content == "" {
		return fmt.Errorf("notices create: -title and -content are required")
	}

	notice, err := a.Client.Notices.Create(ctx, luminahr.NoticeCreate{Title: *title, Content: *content})
	if err != nil {
		return err
	}
	a.successf("Notice %s published", notice.ID)
	return nil
}

func noticesUpdate(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("notices update", flag.ContinueOnError)
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new body")
	deactivate := fs.Bool("deactivate", false, "hide the notice")
	activate := fs.Bool("activate", false, "reactivate the notice")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("notices update: notice id required")
	}

	upd := luminahr.NoticeUpdate{}
	if *title != "" {
		upd.Title = title
	}
	if *content != "" {
		upd.Content = content
	}
	if *deactivate || *activate {
		active := *activate
		upd.IsActive = &active
	}

	if err := a.Client.Notices.Update(ctx, fs.Arg(0), upd); err != nil {
		return err
	}
	a.successf("Notice updated")
	return nil
}

func noticesDelete(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("notices delete: notice id required")
	}
	if err := a.Client.Notices.Delete(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Notice deleted")
	return nil
}
