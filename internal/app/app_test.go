package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/laperlej/galaxy-training/internal/config"
	"github.com/laperlej/galaxy-training/internal/galaxy"
	"github.com/laperlej/galaxy-training/internal/schedule"
)

const validSchedule = `
[groups]
team_a = ["alice@example.com", "bob@example.com"]

[schedule]
team_a = [
    { from = "2023-01-01", to = "2023-06-30" },
    { from = "2023-07-01", to = "2023-12-31" }
]
`

const overlappingSchedule = `
[groups]
team_a = ["alice@example.com"]
team_b = ["charlie@example.com"]

[schedule]
team_a = [
    { from = "2023-01-01", to = "2023-06-30" },
    { from = "2023-07-01", to = "2023-12-31" }
]
team_b = [
    { from = "2023-01-01", to = "2023-12-31" }
]
`

func writeSchedule(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "training.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func runApp(t *testing.T, contents string, opts Options, api galaxy.API) (schedule.Assignment, error) {
	t.Helper()
	opts.ConfigPath = writeSchedule(t, contents)

	a := New(config.Config{TrainingRole: "training"}, zap.NewNop(), opts)
	var buf bytes.Buffer
	a.out = &buf
	a.api = api

	err := a.Run(context.Background())
	var assignment schedule.Assignment
	if err == nil {
		require.NoError(t, json.Unmarshal(buf.Bytes(), &assignment))
	}
	return assignment, err
}

func TestRun_DryRunResolves(t *testing.T) {
	assignment, err := runApp(t, validSchedule, Options{Date: "2023-03-15", DryRun: true}, nil)
	require.NoError(t, err)
	assert.True(t, assignment.Active)
	assert.Equal(t, "team_a", assignment.Group)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, assignment.Members)
}

func TestRun_DryRunNobodyOnDuty(t *testing.T) {
	assignment, err := runApp(t, validSchedule, Options{Date: "2024-01-01", DryRun: true}, nil)
	require.NoError(t, err)
	assert.False(t, assignment.Active)
	assert.Empty(t, assignment.Group)
	assert.Empty(t, assignment.Members)
}

func TestRun_OverlapBlocks(t *testing.T) {
	_, err := runApp(t, overlappingSchedule, Options{Date: "2023-03-15", DryRun: true}, nil)
	require.ErrorIs(t, err, schedule.ErrOverlap)
}

func TestRun_FirstMatchDowngradesOverlap(t *testing.T) {
	assignment, err := runApp(t, overlappingSchedule, Options{Date: "2023-03-15", DryRun: true, FirstMatch: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, "team_a", assignment.Group)
	assert.Equal(t, []string{"team_b"}, assignment.Conflicts)
}

func TestRun_BadDateFlag(t *testing.T) {
	_, err := runApp(t, validSchedule, Options{Date: "15/03/2023", DryRun: true}, nil)
	require.ErrorIs(t, err, schedule.ErrMalformedDate)
}

func TestRun_SyncsGalaxy(t *testing.T) {
	mock := galaxy.NewMock()
	mock.SeedUser("alice@example.com")
	mock.SeedUser("bob@example.com")
	groupID := mock.SeedGroup("team_a")
	roleID := mock.SeedRole("training")

	_, err := runApp(t, validSchedule, Options{Date: "2023-03-15"}, mock)
	require.NoError(t, err)

	updates := mock.Updates[groupID]
	require.NotEmpty(t, updates)
	last := updates[len(updates)-1]
	require.NotNil(t, last.RoleIDs)
	assert.Equal(t, []string{roleID}, *last.RoleIDs)
}
