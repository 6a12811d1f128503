package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stylefix/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2026-01-01",
	}
}

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	require.NotNil(t, cmd)

	assert.Equal(t, "stylefix", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"check", "fix", "rules", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if !assert.NoError(t, err, "subcommand %q", name) {
			continue
		}
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"debug", "quiet", "config", "no-config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "global flag %q", name)
	}
}

func TestSharedFlags(t *testing.T) {
	t.Parallel()

	shared := []string{"kind", "enable", "disable", "line-length", "format", "max-issues", "ignore", "rule-format"}

	cmd := cli.NewRootCommand(testInfo())
	for _, sub := range []string{"check", "fix"} {
		subCmd, _, err := cmd.Find([]string{sub})
		require.NoError(t, err)

		for _, name := range shared {
			assert.NotNil(t, subCmd.Flags().Lookup(name), "%s --%s", sub, name)
		}
	}

	fixCmd, _, err := cmd.Find([]string{"fix"})
	require.NoError(t, err)
	for _, name := range []string{"dry-run", "backup", "backup-suffix", "backup-compress"} {
		assert.NotNil(t, fixCmd.Flags().Lookup(name), "fix --%s", name)
	}

	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)
	assert.Nil(t, checkCmd.Flags().Lookup("dry-run"))
}

func TestCheckAcceptsArbitraryArgs(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)

	assert.NoError(t, checkCmd.Args(checkCmd, []string{"README.md", "roles/", "site.yml"}))
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "stylefix 1.2.3 (commit abc123, built 2026-01-01)\n", out)
}

func TestHelpIsPlainWhenColorDisabled(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--color", "never", "check", "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--line-length")
	assert.Contains(t, out, "Global Flags:")
	assert.NotContains(t, out, "\x1b[")
}
