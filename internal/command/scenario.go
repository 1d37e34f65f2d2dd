package command

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/joeycumines/nodetree/internal/btadapt"
	"github.com/joeycumines/nodetree/internal/config"
	"github.com/joeycumines/nodetree/internal/example/scenarios"
	"github.com/joeycumines/nodetree/internal/logging"
	"github.com/joeycumines/nodetree/internal/render"
)

// ListCommand prints the available scenarios.
type ListCommand struct {
	*BaseCommand
	config *config.Config
}

// NewListCommand creates a new list command.
func NewListCommand(cfg *config.Config) *ListCommand {
	return &ListCommand{
		BaseCommand: NewBaseCommand(
			"list",
			"List the demonstration scenarios",
			"list",
		),
		config: cfg,
	}
}

// Execute lists scenarios, marking the ones disabled by configuration.
func (c *ListCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected arguments: %v\n", args)
		return fmt.Errorf("unexpected arguments")
	}
	w := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	for _, s := range scenarios.All() {
		state := ""
		if !c.config.ScenarioEnabled(s.Name) {
			state = " (disabled)"
		}
		_, _ = fmt.Fprintf(w, "  %s\t%s%s\n", s.Name, s.Description, state)
	}
	return w.Flush()
}

// RunCommand builds and executes scenarios, printing each tree and result.
type RunCommand struct {
	*BaseCommand
	config *config.Config

	logLevel   string
	logFormat  string
	color      string
	outline    bool
	crossCheck bool
}

// NewRunCommand creates a new run command.
func NewRunCommand(cfg *config.Config) *RunCommand {
	return &RunCommand{
		BaseCommand: NewBaseCommand(
			"run",
			"Run demonstration scenarios",
			"run [options] [scenario...]",
		),
		config: cfg,
	}
}

// SetupFlags configures the flags for the run command. Defaults come from
// the configuration file.
func (c *RunCommand) SetupFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.logLevel, "log-level", c.config.Log.Level, "Log level: debug, info, warn, error")
	fs.StringVar(&c.logFormat, "log-format", c.config.Log.Format, "Log format: text, json")
	fs.StringVar(&c.color, "color", c.config.Color, "Color output: auto, always, never")
	fs.BoolVar(&c.outline, "outline", true, "Print the tree outline of each scenario")
	fs.BoolVar(&c.crossCheck, "crosscheck", true, "Also tick each tree as a go-behaviortree node and compare the status")
}

// Execute runs the named scenarios, or every enabled scenario when none are
// named. Logs go to stderr. An error is returned when a scenario does not
// produce its expected outcome.
func (c *RunCommand) Execute(args []string, stdout, stderr io.Writer) error {
	logger, err := logging.FromConfig(stderr, config.LogConfig{Level: c.logLevel, Format: c.logFormat})
	if err != nil {
		return err
	}
	styles, err := c.styles(stdout)
	if err != nil {
		return err
	}

	var selected []scenarios.Scenario
	if len(args) == 0 {
		for _, s := range scenarios.All() {
			if c.config.ScenarioEnabled(s.Name) {
				selected = append(selected, s)
			}
		}
	} else {
		for _, name := range args {
			s, ok := scenarios.Find(name)
			if !ok {
				return fmt.Errorf("unknown scenario: %s", name)
			}
			selected = append(selected, s)
		}
	}

	failed := 0
	for _, s := range selected {
		out := s.Run(logger.With("scenario", s.Name))
		_, _ = fmt.Fprintf(stdout, "== %s: %s\n", s.Name, s.Description)
		if c.outline && out.Tree != nil {
			_, _ = fmt.Fprintln(stdout, styles.Outline(out.Tree.Root()))
		}
		switch {
		case out.Err != nil:
			_, _ = fmt.Fprintf(stdout, "error: %v\n", out.Err)
		default:
			_, _ = fmt.Fprintf(stdout, "result: %s\n", styles.Result(out.Result))
			if c.crossCheck && !crossCheck(stdout, out) {
				out.OK = false
			}
		}
		if !out.OK {
			failed++
			_, _ = fmt.Fprintln(stdout, "unexpected outcome")
			logger.Error("[BT] scenario did not match its expectation", "scenario", s.Name)
		}
		_, _ = fmt.Fprintln(stdout, "")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenario(s) did not match expectations", failed, len(selected))
	}
	return nil
}

// crossCheck ticks the converted tree once and reports whether
// go-behaviortree reaches the same result as Execute.
func crossCheck(w io.Writer, out scenarios.Outcome) bool {
	want := btadapt.Status(out.Result)
	status, err := btadapt.TreeToBT(out.Tree).Tick()
	switch {
	case err != nil:
		_, _ = fmt.Fprintf(w, "go-behaviortree: error: %v\n", err)
		return false
	case status != want:
		_, _ = fmt.Fprintf(w, "go-behaviortree: %s, expected %s\n", status, want)
		return false
	default:
		_, _ = fmt.Fprintf(w, "go-behaviortree: %s\n", status)
		return true
	}
}

func (c *RunCommand) styles(stdout io.Writer) (render.Styles, error) {
	switch c.color {
	case config.ColorAlways:
		return render.Colored(), nil
	case config.ColorNever:
		return render.Plain(), nil
	case config.ColorAuto, "":
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return render.Colored(), nil
		}
		return render.Plain(), nil
	default:
		return render.Styles{}, fmt.Errorf("invalid color mode: %s", c.color)
	}
}
