package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joeycumines/nodetree/internal/command"
	"github.com/joeycumines/nodetree/internal/config"
)

const version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	// global flags precede the command name
	global := flag.NewFlagSet("nodetree", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() {}
	configPath := global.String("config", "", "Path to the configuration file (default $"+config.EnvConfigPath+" or ~/.nodetree/config)")
	showHelp := false
	if err := global.Parse(args); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			return err
		}
		showHelp = true
	}
	args = global.Args()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if cfg.HasWarnings() {
		for _, w := range cfg.Warnings {
			_, _ = fmt.Fprintf(stderr, "Warning: %s\n", w)
		}
	}

	registry := command.NewRegistry()
	helpCmd := command.NewHelpCommand(registry)
	registry.Register(helpCmd)
	registry.Register(command.NewVersionCommand(version))
	registry.Register(command.NewListCommand(cfg))
	registry.Register(command.NewRunCommand(cfg))

	if showHelp || len(args) == 0 {
		return helpCmd.Execute(nil, stdout, stderr)
	}

	cmdName := args[0]
	cmd, err := registry.Get(cmdName)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Unknown command: %s\n", cmdName)
		_, _ = fmt.Fprintln(stderr, "Use 'nodetree help' to see available commands.")
		return err
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: %s\n", cmd.Usage())
		_, _ = fmt.Fprintf(stderr, "\n%s\n\n", cmd.Description())
		_, _ = fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	cmd.SetupFlags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	return cmd.Execute(fs.Args(), stdout, stderr)
}

// loadConfig reads the file named by -config, or the default location when
// path is empty. Unlike the default location, an explicit path must exist.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	if _, err := os.Lstat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return config.LoadFromPath(path)
}
