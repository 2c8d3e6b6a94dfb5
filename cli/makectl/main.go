package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"devkit/cli/makectl/internal/cmdregistry"
	benchcmd "devkit/cli/makectl/internal/commands/bench"
	buildquietcmd "devkit/cli/makectl/internal/commands/buildquiet"
	"devkit/cli/makectl/internal/config"
)

const (
	// ExitUsage is 0: a bad invocation prints usage and exits successfully.
	ExitUsage          = 0
	ExitSuccess        = 0
	ExitExecutionError = 1
)

const usageText = "blah blah"

func usage(w io.Writer) int {
	fmt.Fprintln(w, usageText)
	return ExitUsage
}

func newRegistry() *cmdregistry.Registry {
	r := cmdregistry.New()
	benchcmd.Register(r)
	buildquietcmd.Register(r)
	return r
}

func setupLogging(w io.Writer, level string) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if lvl, err := log.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(log.InfoLevel)
		log.Warnf("invalid log level %s, defaulting to info", level)
	}
}

// run dispatches args (without the program name) and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd, params, err := newRegistry().Resolve(args)
	if err != nil {
		if errors.Is(err, cmdregistry.ErrUnknownCommand) || errors.Is(err, cmdregistry.ErrArity) {
			return usage(stdout)
		}
		fmt.Fprintln(stderr, err)
		return ExitExecutionError
	}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return ExitExecutionError
	}
	setupLogging(stderr, settings.LogLevel)
	entry := log.WithField("command", cmd.Name)
	if settings.Path != "" {
		entry.WithField("config", settings.Path).Debug("config resolved")
	}

	hctx := &cmdregistry.Context{
		Ctx:    ctx,
		Args:   params,
		Stdout: stdout,
		Stderr: stderr,
		Tool:   settings.Tool,
		Log:    entry,
	}
	if err := cmd.Handler(hctx); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitExecutionError
	}
	return ExitSuccess
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
