package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	RoundsFile      = "rounds.csv"
	DiagnosticsFile = "diagnostics.csv"
)

var (
	roundHeader      = []string{"id", "round", "start_time", "duration_ms", "nodes", "reachable", "dangling", "resolved", "frontier", "dead_ends", "examples", "augmented"}
	diagnosticHeader = []string{"round", "samples", "winning_mean", "non_winning_mean", "holdout", "mse", "rmse"}
)

// Writer appends metric rows to CSV files under one run directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a run directory named by the current timestamp under dir.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRound(m RoundMetric) error {
	row := []string{
		m.ID.String(),
		strconv.Itoa(m.Round),
		m.StartTime.Format(time.RFC3339),
		strconv.FormatInt(m.Duration.Milliseconds(), 10),
		strconv.Itoa(m.Nodes),
		strconv.Itoa(m.Reachable),
		strconv.Itoa(m.Dangling),
		strconv.Itoa(m.Resolved),
		strconv.Itoa(m.Frontier),
		strconv.Itoa(m.DeadEnds),
		strconv.Itoa(m.Examples),
		strconv.Itoa(m.Augmented),
	}
	if err := w.appendRow(RoundsFile, roundHeader, row); err != nil {
		return fmt.Errorf("failed to write round row: %w", err)
	}
	return nil
}

func (w *Writer) WriteDiagnostic(m DiagnosticMetric) error {
	row := []string{
		strconv.Itoa(m.Round),
		strconv.Itoa(m.Samples),
		strconv.FormatFloat(m.WinningMean, 'f', 4, 64),
		strconv.FormatFloat(m.NonWinningMean, 'f', 4, 64),
		strconv.Itoa(m.Holdout),
		strconv.FormatFloat(float64(m.MSE), 'f', 4, 32),
		strconv.FormatFloat(float64(m.RMSE), 'f', 4, 32),
	}
	if err := w.appendRow(DiagnosticsFile, diagnosticHeader, row); err != nil {
		return fmt.Errorf("failed to write diagnostic row: %w", err)
	}
	return nil
}

// appendRow writes the header first when the file does not exist yet.
func (w *Writer) appendRow(name string, header, row []string) error {
	path := filepath.Join(w.baseDir, name)
	_, err := os.Stat(path)
	isNew := os.IsNotExist(err)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if isNew {
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write %s header: %w", name, err)
		}
	}
	if err := writer.Write(row); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
