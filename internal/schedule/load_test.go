package schedule

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Sample(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "sample.toml"))
	require.NoError(t, err)

	require.Equal(t, []string{"team_a", "team_b"}, cfg.GroupNames())
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, cfg.Members("team_a"))
	assert.Equal(t, []string{"charlie@example.com", "david@example.com"}, cfg.Members("team_b"))
	assert.Len(t, cfg.Windows("team_a"), 2)
	assert.Len(t, cfg.Windows("team_b"), 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does-not-exist.toml"))
	require.Error(t, err)
}

func TestParse_PreservesDeclarationOrder(t *testing.T) {
	cfg, err := Parse([]byte(`
[groups]
zeta = ["z@example.com"]
alpha = ["a@example.com"]

[schedule]
zeta = [ { from = "2023-01-01", to = "2023-06-30" } ]
alpha = [ { from = "2023-07-01", to = "2023-12-31" } ]
`))
	require.NoError(t, err)
	// declaration order, not lexical order
	assert.Equal(t, []string{"zeta", "alpha"}, cfg.GroupNames())
}

func TestParse_MissingTables(t *testing.T) {
	_, err := Parse([]byte(`[groups]` + "\n" + `team_a = ["a@example.com"]`))
	require.ErrorContains(t, err, "missing [schedule]")

	_, err = Parse([]byte(`[schedule]` + "\n" + `team_a = []`))
	require.ErrorContains(t, err, "missing [groups]")
}

func TestParse_BadSyntax(t *testing.T) {
	_, err := Parse([]byte(`[groups` + "\n"))
	require.ErrorContains(t, err, "decode schedule file")
}

func TestParse_BuildErrorsPropagate(t *testing.T) {
	_, err := Parse([]byte(`
[groups]
team_a = ["alice@example.com"]

[schedule]
team_a = [ { from = "2023-12-31", to = "2023-01-01" } ]
`))
	require.True(t, errors.Is(err, ErrInvalidWindow), "got %v", err)
}
