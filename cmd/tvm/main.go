package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/meenmo/tvm/cmd/tvm/internal/command"
	"github.com/meenmo/tvm/cmd/tvm/internal/config"
	"github.com/meenmo/tvm/cmd/tvm/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tvm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML or TOML config path (TVM_* environment variables override it)")

	cdr := subcommands.NewCommander(fs, "tvm")
	cdr.Output = stdout
	cdr.Error = stderr
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	command.Register(cdr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return int(subcommands.ExitSuccess)
		}
		return int(subcommands.ExitUsageError)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "tvm: %v\n", err)
		return int(subcommands.ExitUsageError)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	}, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "tvm: invalid log level %q: %v\n", cfg.Log.Level, err)
		return int(subcommands.ExitUsageError)
	}
	defer func() { _ = logger.Sync() }()

	env := &command.Env{
		Stdin:  stdin,
		Stdout: stdout,
		Config: cfg,
		Logger: logger,
	}
	return int(cdr.Execute(context.Background(), env))
}
