package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/luminahr/luminahr-go/luminahr"
)

func runChat(ctx context.Context, a *App, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "ask":
		return chatAsk(ctx, a, rest)
	case "upload":
		return chatUpload(ctx, a, rest)
	case "", "docs":
		return chatDocs(ctx, a)
	case "delete-doc":
		return chatDeleteDoc(ctx, a, rest)
	case "history":
		return chatHistory(ctx, a, rest)
	case "clear":
		return chatClear(ctx, a, rest)
	default:
		return fmt.Errorf("chat: unknown subcommand %q", sub)
	}
}

func chatAsk(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("chat ask", flag.ContinueOnError)
	session := fs.String("session", "", "conversation id, fresh one generated when omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("chat ask: message required")
	}

	sessionID := *session
	if sessionID == "" {
		sessionID = luminahr.NewSessionID()
	}

	turn, err := a.Client.Chat.Send(ctx, strings.Join(fs.Args(), " "), sessionID)
	if err != nil {
		return err
	}

	a.printf("%s\n", turn.Response)
	if len(turn.Sources) > 0 {
		names := make([]string, len(turn.Sources))
		for i, s := range turn.Sources {
			names[i] = s.Name
		}
		a.printf("%s %s\n", color.CyanString("Sources:"), strings.Join(names, ", "))
	}
	a.printf("%s %s\n", color.CyanString("Session:"), turn.SessionID)
	return nil
}

func chatUpload(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("chat upload: file path required")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	result, err := a.Client.Chat.Upload(ctx, filepath.Base(args[0]), info.Size(), file)
	if err != nil {
		return err
	}
	if result.Duplicate {
		a.printf("%s\n", color.YellowString("Document already indexed"))
		return nil
	}
	a.successf("Uploaded %s, %d chunks indexed", result.Filename, result.ChunksCreated)
	return nil
}

func chatDocs(ctx context.Context, a *App) error {
	list, err := a.Client.Chat.Documents(ctx)
	if err != nil {
		return err
	}
	for _, d := range list.Documents {
		a.printf("%s  %-32s %-6s %8d bytes  %d chunks\n",
			d.ID, d.Filename, d.FileType, d.FileSize, d.ChunkCount)
	}
	a.printf("Total: %d\n", list.Total)
	return nil
}

func chatDeleteDoc(ctx context.Context, a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("chat delete-doc: document id required")
	}
	if err := a.Client.Chat.DeleteDocument(ctx, args[0]); err != nil {
		return err
	}
	a.successf("Document deleted")
	return nil
}

func chatHistory(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("chat history", flag.ContinueOnError)
	session := fs.String("session", "", "scope to one conversation")
	limit := fs.Int("limit", 50, "maximum messages")
	if err := fs.Parse(args); err != nil {
		return err
	}

	history, err := a.Client.Chat.History(ctx, *session, *limit)
	if err != nil {
		return err
	}
	for _, m := range history.Messages {
		role := color.CyanString("%-9s", m.Role)
		a.printf("%s %s\n", role, m.Content)
	}
	return nil
}

func chatClear(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("chat clear", flag.ContinueOnError)
	session := fs.String("session", "", "scope to one conversation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.Client.Chat.ClearHistory(ctx, *session)
	if err != nil {
		return err
	}
	a.successf("Deleted %d messages", result.DeletedCount)
	return nil
}
