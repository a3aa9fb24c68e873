package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discord-account-support-corp/answers-indexer/internal/core/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun_MissingTokenFailsBeforeAnyNetworkCall(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	_, err := execute(t)
	require.ErrorIs(t, err, domain.ErrMissingToken)
}

func TestRun_BadConfigFile(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_test")

	_, err := execute(t, "--config", "/nonexistent/indexer.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config file")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "answers-indexer")
}
