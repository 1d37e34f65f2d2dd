package command

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeycumines/nodetree/internal/behavior"
	"github.com/joeycumines/nodetree/internal/config"
	"github.com/joeycumines/nodetree/internal/example/scenarios"
	"github.com/joeycumines/nodetree/internal/leaf"
)

func newRun(t *testing.T, cfg *config.Config, args ...string) (*RunCommand, []string) {
	t.Helper()
	cmd := NewRunCommand(cfg)
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetupFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cmd, fs.Args()
}

func TestHelpCommandListsCommands(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	helper := NewHelpCommand(registry)
	registry.Register(helper)
	registry.Register(NewVersionCommand("1.2.3"))
	registry.Register(NewRunCommand(config.NewConfig()))

	var stdout, stderr bytes.Buffer
	require.NoError(t, helper.Execute(nil, &stdout, &stderr))
	out := stdout.String()
	require.Contains(t, out, "Available commands")
	require.Contains(t, out, "version")
	require.Contains(t, out, "run")
	require.Empty(t, stderr.String())
}

func TestHelpCommandSpecificCommand(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	helper := NewHelpCommand(registry)
	registry.Register(helper)
	registry.Register(NewRunCommand(config.NewConfig()))

	var stdout, stderr bytes.Buffer
	require.NoError(t, helper.Execute([]string{"run"}, &stdout, &stderr))
	out := stdout.String()
	require.Contains(t, out, "Command: run")
	require.Contains(t, out, "Flags:")
	require.Contains(t, out, "-log-level")

	err := helper.Execute([]string{"missing"}, &stdout, &stderr)
	require.Error(t, err)
	require.Contains(t, stderr.String(), "Unknown command: missing")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	cmd := NewVersionCommand("9.9.9")
	require.NoError(t, cmd.Execute(nil, &stdout, &stderr))
	require.Equal(t, "nodetree version 9.9.9\n", stdout.String())
	require.Error(t, cmd.Execute([]string{"x"}, &stdout, &stderr))
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Register(NewVersionCommand("1"))
	r.Register(NewListCommand(config.NewConfig()))
	require.Equal(t, []string{"list", "version"}, r.List())
	_, err := r.Get("nope")
	require.EqualError(t, err, "command not found: nope")
}

func TestListCommand(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFromReader(strings.NewReader("[parity-odd]\nenabled false\n"))
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	require.NoError(t, NewListCommand(cfg).Execute(nil, &stdout, &stderr))
	out := stdout.String()
	for _, s := range scenarios.All() {
		require.Contains(t, out, s.Name)
	}
	require.Contains(t, out, "3 is odd (disabled)")
}

func TestRunCommand_AllScenarios(t *testing.T) {
	t.Parallel()
	cmd, args := newRun(t, config.NewConfig(), "-color", "never", "-log-level", "error")
	var stdout, stderr bytes.Buffer
	require.NoError(t, cmd.Execute(args, &stdout, &stderr))
	out := stdout.String()
	require.Equal(t, len(scenarios.All()), strings.Count(out, "== "))
	require.NotContains(t, out, "unexpected outcome")
	require.Contains(t, out, "result: SUCCESS")
	require.Contains(t, out, "result: FAILURE")
	require.Contains(t, out, "error: behavior: a behavior tree requires a root node")
	require.Empty(t, stderr.String())
}

func TestRunCommand_NamedScenarios(t *testing.T) {
	t.Parallel()
	cmd, args := newRun(t, config.NewConfig(), "-color", "never", "tree-empty-root", "selector-first-success")
	var stdout, stderr bytes.Buffer
	require.NoError(t, cmd.Execute(args, &stdout, &stderr))
	out := stdout.String()
	require.Equal(t, 2, strings.Count(out, "== "))
	require.Contains(t, out, "(empty)")
	require.Contains(t, out, "distance 3 <= 5")
}

func TestRunCommand_DisabledScenariosAreSkipped(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFromReader(strings.NewReader("color never\n[distance-near]\nenabled false\n"))
	require.NoError(t, err)
	cmd, args := newRun(t, cfg, "-outline=false")
	var stdout, stderr bytes.Buffer
	require.NoError(t, cmd.Execute(args, &stdout, &stderr))
	require.NotContains(t, stdout.String(), "== distance-near")
	require.Contains(t, stdout.String(), "== distance-far")
	require.NotContains(t, stdout.String(), "Root")
}

func TestRunCommand_Errors(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer

	cmd, args := newRun(t, config.NewConfig(), "nope")
	require.EqualError(t, cmd.Execute(args, &stdout, &stderr), "unknown scenario: nope")

	cmd, args = newRun(t, config.NewConfig(), "-color", "purple")
	require.Error(t, cmd.Execute(args, &stdout, &stderr))

	cmd, args = newRun(t, config.NewConfig(), "-log-format", "xml")
	require.Error(t, cmd.Execute(args, &stdout, &stderr))
}

func TestRunCommand_DebugLogsRuns(t *testing.T) {
	t.Parallel()
	cmd, args := newRun(t, config.NewConfig(), "-color", "never", "-log-level", "debug", "-log-format", "json", "parity-even")
	var stdout, stderr bytes.Buffer
	require.NoError(t, cmd.Execute(args, &stdout, &stderr))
	require.Contains(t, stderr.String(), `"scenario":"parity-even"`)
	require.Contains(t, stderr.String(), "tree run finished")
}

func TestRunCommand_CrossCheck(t *testing.T) {
	t.Parallel()
	built := 0
	for _, s := range scenarios.All() {
		if s.WantErr == nil {
			built++
		}
	}

	cmd, args := newRun(t, config.NewConfig(), "-color", "never", "-log-level", "error", "-outline=false")
	var stdout, stderr bytes.Buffer
	require.NoError(t, cmd.Execute(args, &stdout, &stderr))
	out := stdout.String()
	require.Equal(t, built, strings.Count(out, "go-behaviortree: "))
	require.NotContains(t, out, ", expected ")

	cmd, args = newRun(t, config.NewConfig(), "-color", "never", "-crosscheck=false", "parity-even")
	stdout.Reset()
	require.NoError(t, cmd.Execute(args, &stdout, &stderr))
	require.NotContains(t, stdout.String(), "go-behaviortree")
}

func TestCrossCheck_Mismatch(t *testing.T) {
	t.Parallel()
	root, err := behavior.NewRoot(leaf.NewParity(2))
	require.NoError(t, err)
	tree, err := behavior.NewTree(root)
	require.NoError(t, err)

	var out bytes.Buffer
	require.True(t, crossCheck(&out, scenarios.Outcome{Tree: tree, Result: true, OK: true}))
	require.Equal(t, "go-behaviortree: success\n", out.String())

	out.Reset()
	require.False(t, crossCheck(&out, scenarios.Outcome{Tree: tree, Result: false, OK: true}))
	require.Equal(t, "go-behaviortree: success, expected failure\n", out.String())
}
