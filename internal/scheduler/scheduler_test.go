package scheduler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ResearchDigest/internal/collector"
	"ResearchDigest/internal/generator"
	"ResearchDigest/internal/parser"
)

func newTestScheduler(t *testing.T, stocks []string) (*Scheduler, string) {
	t.Helper()
	stocksDir := t.TempDir()
	for _, code := range []string{"2330", "AAPL"} {
		dir := filepath.Join(stocksDir, code, "research")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "v1_2024-01-01.md"), []byte("## 定價預測\n目標價格：100 USD\n"), 0o644))
	}
	col := collector.NewCollector(collector.NewFSSource(), parser.NewExtractor(parser.DefaultRules()), "")
	return NewScheduler(generator.NewGenerator(col, stocksDir, ""), stocks), stocksDir
}

func TestRunNow_AllStocks(t *testing.T) {
	s, stocksDir := newTestScheduler(t, nil)

	stats := s.RunNow()
	assert.NotEmpty(t, stats.RunID)
	assert.Equal(t, 2, stats.Generated)
	assert.Zero(t, stats.Failed)
	assert.Equal(t, stats, s.LastRun())

	assert.FileExists(t, filepath.Join(stocksDir, "2330", "summary.md"))
	assert.FileExists(t, filepath.Join(stocksDir, "AAPL", "summary.md"))
}

func TestRunNow_ConfiguredStocks(t *testing.T) {
	s, stocksDir := newTestScheduler(t, []string{"AAPL", "MISSING"})

	stats := s.RunNow()
	assert.Equal(t, 1, stats.Generated)
	assert.Equal(t, 1, stats.Failed)
	assert.NoFileExists(t, filepath.Join(stocksDir, "2330", "summary.md"))
}

func TestRunNow_DistinctRunIDs(t *testing.T) {
	s, _ := newTestScheduler(t, []string{"AAPL"})
	assert.NotEqual(t, s.RunNow().RunID, s.RunNow().RunID)
}

func TestRegister(t *testing.T) {
	s, _ := newTestScheduler(t, nil)

	require.NoError(t, s.Register("0 0 18 * * *"))
	assert.Len(t, s.Cron.Entries(), 1)
	assert.Error(t, s.Register("not a cron"))

	s.Start()
	s.Stop()
}
