package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"blokus/game"

	"github.com/samber/lo"
)

type AgentConfig struct {
	ID            int
	Kind          string // "master" or "random"
	Evaluate      string
	MaxCandidates int
}

type GameRecord struct {
	Seats []int // AgentConfig.ID per seat, in turn order
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes every record file
// into it.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
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

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "evaluate", "max_candidates"}
	rows := lo.Map(configs, func(config AgentConfig, _ int) []string {
		return []string{
			strconv.Itoa(config.ID),
			config.Kind,
			config.Evaluate,
			strconv.Itoa(config.MaxCandidates),
		}
	})
	if err := w.write("agent_configs.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "seats", "winners", "red", "blue", "green", "yellow", "start_time", "end_time", "duration", "total_moves"}
	rows := lo.Map(records, func(record GameRecord, _ int) []string {
		row := []string{
			record.ID.String(),
			joinInts(record.Seats),
			joinPlayers(record.Winners),
		}
		for _, p := range game.Players {
			row = append(row, strconv.Itoa(record.Scores[p]))
		}
		return append(row,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		)
	})
	if err := w.write("game_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "piece", "passed", "duration", "first_ply", "second_ply", "score"}
	rows := lo.Map(records, func(record MoveRecord, _ int) []string {
		return []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Player.String(),
			string(record.Piece),
			strconv.FormatBool(record.Passed),
			record.Duration.String(),
			strconv.Itoa(record.FirstPly),
			strconv.Itoa(record.SecondPly),
			strconv.Itoa(record.Score),
		}
	})
	if err := w.write("move_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, file))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

func joinInts(values []int) string {
	return strings.Join(lo.Map(values, func(v int, _ int) string { return strconv.Itoa(v) }), ";")
}

func joinPlayers(players []game.Player) string {
	return strings.Join(lo.Map(players, func(p game.Player, _ int) string { return p.String() }), ";")
}
