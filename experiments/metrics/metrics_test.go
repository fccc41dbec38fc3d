package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("completing a round", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.SetGraph(10, 8, 1)
		c.SetSearch(6, 2, 1)
		c.AddExamples(5)
		c.AddAugmented(0)

		m := c.Complete()
		require.NotEqual(t, uuid.Nil, m.ID)
		require.Equal(t, 3, m.Round)
		require.Equal(t, 10, m.Nodes)
		require.Equal(t, 8, m.Reachable)
		require.Equal(t, 6, m.Resolved)
		require.Equal(t, 5, m.Examples)
	})

	t.Run("resetting on start", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddExamples(4)
		first := c.Complete()
		c.Start(2)

		second := c.Complete()
		require.Zero(t, second.Examples)
		require.NotEqual(t, first.ID, second.ID, "Every round should get a fresh id")
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(1)
		c.AddExamples(4)
		require.Equal(t, RoundMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	t.Run("appending rounds under a single header", func(t *testing.T) {
		require.NoError(t, w.WriteRound(RoundMetric{ID: uuid.New(), Round: 1, Nodes: 4}))
		require.NoError(t, w.WriteRound(RoundMetric{ID: uuid.New(), Round: 2, Nodes: 7}))

		rows := readCSV(t, filepath.Join(w.Dir(), RoundsFile))
		require.Len(t, rows, 3)
		require.Equal(t, roundHeader, rows[0])
		require.Equal(t, "2", rows[2][1])
		require.Equal(t, "7", rows[2][4])
	})

	t.Run("writing diagnostics", func(t *testing.T) {
		require.NoError(t, w.WriteDiagnostic(DiagnosticMetric{Round: 100, Samples: 10, WinningMean: 0.5, MSE: 4, RMSE: 2}))

		rows := readCSV(t, filepath.Join(w.Dir(), DiagnosticsFile))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"100", "10", "0.5000", "0.0000", "0", "4.0000", "2.0000"}, rows[1])
	})
}
