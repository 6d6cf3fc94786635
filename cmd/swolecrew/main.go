package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aaronromeo/swolecrew/internal/cli"
	"github.com/aaronromeo/swolecrew/internal/client"
	"github.com/aaronromeo/swolecrew/internal/config"
	"github.com/aaronromeo/swolecrew/internal/form"
	"github.com/aaronromeo/swolecrew/internal/workout"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	local := flag.Bool("local", false, "run the form in-process instead of against a server")
	serverURL := flag.String("server", cfg.ServerURL, "swolecrew API URL")
	format := flag.String("format", cfg.PlanFormat, "plan output format: text, json or yaml")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("swolecrew", Version)
		return
	}

	programLevel := slog.LevelWarn
	if cfg.Debug {
		programLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel}))

	planFormat, err := cli.ParseFormat(*format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	// Ctrl-C kills the process; an abandoned server session expires on its own.
	ctx := context.Background()

	if *local {
		ctrl := form.NewController(workout.NewGenerator(), form.WithMaxUsers(cfg.MaxUsers))
		cli.Run(ctx, cli.NewLocalForm(ctrl), planFormat, os.Stdin)
		return
	}

	c, err := client.New(*serverURL, client.WithRetries(cfg.HTTPRetries), client.WithLogger(log))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
	remote, err := cli.NewRemoteForm(ctx, c)
	if err != nil {
		log.Error("could not reach server; try -local", "server", *serverURL, "error", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := remote.Close(closeCtx); err != nil {
			log.Debug("close session", "error", err)
		}
	}()
	cli.Run(ctx, remote, planFormat, os.Stdin)
}
