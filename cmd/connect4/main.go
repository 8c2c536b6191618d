package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/logging"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
	"github.com/iamasit07/4-in-a-row/engine/internal/transport/terminal"
)

func main() {
	if err := execute(os.Args); err != nil {
		log.Fatalf("[MAIN] %v", err)
	}
}

// execute owns the signal context so it is released before main exits.
func execute(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newCommand().Run(ctx, args)
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "connect4",
		Usage: "play Connect Four in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Usage: "load settings from this .env file"},
			&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "start straight into a game: singleplayer or local"},
			&cli.IntFlag{Name: "width", Usage: "board width"},
			&cli.IntFlag{Name: "height", Usage: "board height"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to this file"},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	var envFiles []string
	if f := cmd.String("env-file"); f != "" {
		envFiles = append(envFiles, f)
	}
	cfg, err := config.LoadConfig(envFiles...)
	if err != nil {
		return err
	}
	applyFlags(cfg, cmd)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ui := terminal.NewUI(screen, logger.Named("terminal"))
	engine, err := game.NewEngine(cfg.Dimensions(), game.NavigatorFunc(ui.ShowGame), logger.Named("engine"))
	if err != nil {
		return err
	}
	ui.Attach(engine)

	logger.Info("connect4 starting",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("mode", cfg.Mode),
	)

	if mode, ok := cfg.StartMode(); ok {
		engine.Start(mode)
	} else {
		ui.ShowMenu()
	}
	return ui.Run(ctx)
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(cfg *config.Config, cmd *cli.Command) {
	if cmd.IsSet("mode") {
		cfg.Mode = cmd.String("mode")
	}
	if cmd.IsSet("width") {
		cfg.Width = int(cmd.Int("width"))
	}
	if cmd.IsSet("height") {
		cfg.Height = int(cmd.Int("height"))
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-file") {
		cfg.LogFile = cmd.String("log-file")
	}
}
