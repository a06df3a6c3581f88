package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/luminahr/luminahr-go/internal/cli"
	"github.com/luminahr/luminahr-go/internal/config"
	"github.com/luminahr/luminahr-go/internal/session"
	logging "github.com/luminahr/luminahr-go/internal/utils"
	"github.com/luminahr/luminahr-go/luminahr"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml")
	flag.Parse()

	logger, err := logging.SetupLogger("luminactl.log", slog.LevelInfo)
	if err != nil {
		log.Fatal("Failed to setup logger:", err)
		return
	}
	slog.SetDefault(logger)

	cfg, err := config.GetConfig(*configPath, logger)
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.Logging.File != "luminactl.log" || cfg.LogLevel() != slog.LevelInfo {
		logger, err = logging.SetupLogger(cfg.Logging.File, cfg.LogLevel())
		if err != nil {
			log.Fatal("Failed to setup logger:", err)
			return
		}
		slog.SetDefault(logger)
	}

	fileSession, err := session.Open(cfg.Session.File)
	if err != nil {
		logger.Error("Failed to open session file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client := luminahr.NewClient(cfg.Backend.BaseURL,
		luminahr.WithSession(fileSession),
		luminahr.WithLogger(logger),
		luminahr.WithTimeout(cfg.Backend.Timeout),
		luminahr.WithSessionExpiredHook(func() {
			color.New(color.FgYellow).Fprintln(os.Stderr, "Session expired, please log in again")
		}),
	)

	app := &cli.App{
		Client:     client,
		Logger:     logger,
		Out:        os.Stdout,
		In:         os.Stdin,
		PayslipDir: filepath.Join(filepath.Dir(cfg.Session.File), "payslips"),
	}

	if err := app.Run(context.Background(), flag.Args()); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}
