package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-tuxsplit/internal/config"
	"github.com/penwyp/go-tuxsplit/internal/testing/fixtures"
)

// editFixture writes a complete run document at the default run file
// location inside an isolated data directory.
func editFixture(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	t.Setenv(config.DataDirEnv, dataDir)

	path, err := fixtures.NewTestRunGenerator(dataDir).GenerateVerifiedRun("run.json")
	require.NoError(t, err)
	return path
}

// parseEditFlags parses args against the edit command and restores the
// defaults when the test ends.
func parseEditFlags(t *testing.T, args ...string) {
	t.Helper()
	require.NoError(t, editCmd.ParseFlags(args))
	t.Cleanup(func() {
		restoreFlagDefaults(editCmd,
			"segment", "split-time", "attempt", "gold",
			"clear-split", "clear-attempt", "clear-gold", "comparison")
	})
}

func TestEditCommandFlags(t *testing.T) {
	tests := []struct {
		flag         string
		defaultValue string
	}{
		{"segment", "0"},
		{"split-time", ""},
		{"attempt", ""},
		{"gold", ""},
		{"clear-split", "false"},
		{"clear-attempt", "false"},
		{"clear-gold", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			flag := editCmd.Flags().Lookup(tt.flag)
			assert.NotNil(t, flag)
			assert.Equal(t, tt.defaultValue, flag.DefValue)
		})
	}
}

func TestRunEditSetsGoldAndSavesTheDocument(t *testing.T) {
	path := editFixture(t)

	parseEditFlags(t, "--segment", "1", "--gold", "1:51.000")
	require.NoError(t, runEdit(editCmd, nil))

	doc, err := fixtures.ReadRunDocument(path)
	require.NoError(t, err)
	require.NotNil(t, doc.Segments[1].Best)
	assert.Equal(t, int64(111000), *doc.Segments[1].Best.Real)

	// Neighbors stay untouched.
	assert.Equal(t, int64(93200), *doc.Segments[0].Best.Real)
	assert.Equal(t, int64(128500), *doc.Segments[2].Best.Real)
}

func TestRunEditSetsSplitTimeOfTheConfiguredComparison(t *testing.T) {
	path := editFixture(t)

	parseEditFlags(t, "--segment", "0", "--split-time", "1:34.000")
	require.NoError(t, runEdit(editCmd, nil))

	doc, err := fixtures.ReadRunDocument(path)
	require.NoError(t, err)
	assert.Equal(t, int64(94000), *doc.Segments[0].Comparisons["Personal Best"].Real)
	assert.Equal(t, int64(93200), *doc.Segments[0].Comparisons["Best Segments"].Real)
}

func TestRunEditTargetsTheNamedComparison(t *testing.T) {
	path := editFixture(t)

	parseEditFlags(t, "--segment", "0",
		"--split-time", "1:40.000", "--comparison", "Best Segments")
	require.NoError(t, runEdit(editCmd, nil))

	doc, err := fixtures.ReadRunDocument(path)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), *doc.Segments[0].Comparisons["Best Segments"].Real)
	assert.Equal(t, int64(95500), *doc.Segments[0].Comparisons["Personal Best"].Real)
}

func TestRunEditClearsAGold(t *testing.T) {
	path := editFixture(t)

	parseEditFlags(t, "--segment", "2", "--clear-gold")
	require.NoError(t, runEdit(editCmd, nil))

	doc, err := fixtures.ReadRunDocument(path)
	require.NoError(t, err)
	assert.Nil(t, doc.Segments[2].Best)
}

func TestRunEditRejectsMalformedTime(t *testing.T) {
	path := editFixture(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	parseEditFlags(t, "--segment", "0", "--split-time", "not a time")
	assert.Error(t, runEdit(editCmd, nil))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "a rejected edit must not rewrite the document")
}

func TestRunEditIgnoresOutOfRangeSegment(t *testing.T) {
	path := editFixture(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	parseEditFlags(t, "--segment", "99", "--gold", "1:00.000")
	require.NoError(t, runEdit(editCmd, nil), "out-of-range edits are dropped, not failed")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRunEditSetsTheAttemptSplit(t *testing.T) {
	path := editFixture(t)

	parseEditFlags(t, "--segment", "1", "--attempt", "3:29.500")
	require.NoError(t, runEdit(editCmd, nil))

	doc, err := fixtures.ReadRunDocument(path)
	require.NoError(t, err)
	require.NotNil(t, doc.Segments[1].Split)
	assert.Equal(t, int64(209500), *doc.Segments[1].Split.Real)

	// Comparison entries are a different axis and stay untouched.
	assert.Equal(t, int64(210030), *doc.Segments[1].Comparisons["Personal Best"].Real)
}

func TestRunEditClearsTheAttemptSplit(t *testing.T) {
	path := editFixture(t)

	parseEditFlags(t, "--segment", "0", "--clear-attempt")
	require.NoError(t, runEdit(editCmd, nil))

	doc, err := fixtures.ReadRunDocument(path)
	require.NoError(t, err)
	assert.Nil(t, doc.Segments[0].Split)
}
