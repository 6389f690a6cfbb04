package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"conquest/game"
)

type GameRecord struct {
	ID   int
	Seed uint64
	GameMetric
}

type TurnRecord struct {
	Game int // GameRecord.ID
	TurnMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates baseDir/name/<timestamp> and writes records into it.
func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	dir := filepath.Join(baseDir, name, timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

// Dir returns the directory the records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSettings(settings game.Settings) error {
	header := []string{
		"grid_width", "grid_height", "human_players", "ai_players", "initial_money",
		"initial_troops", "troops_per_turn", "money_per_capital", "capital_cost", "troop_cost",
	}
	row := []string{
		strconv.Itoa(settings.GridWidth),
		strconv.Itoa(settings.GridHeight),
		strconv.Itoa(settings.HumanPlayers),
		strconv.Itoa(settings.AIPlayers),
		strconv.Itoa(settings.InitialMoney),
		strconv.Itoa(settings.InitialTroops),
		strconv.Itoa(settings.TroopsPerTurn),
		strconv.Itoa(settings.MoneyPerCapital),
		strconv.Itoa(settings.CapitalCost),
		strconv.Itoa(settings.TroopCost),
	}
	return w.write("settings.csv", header, [][]string{row})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "seed", "players", "starting_player", "winner", "start_time", "end_time",
		"duration", "turns", "attacks", "captures", "eliminations",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Players),
			strconv.Itoa(record.StartingPlayer),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalTurns),
			strconv.Itoa(record.Attacks),
			strconv.Itoa(record.Captures),
			strconv.Itoa(record.Eliminations),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	header := []string{"game", "turn", "player", "attacks", "captures", "purchases", "upgrades"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Attacks),
			strconv.Itoa(record.Captures),
			strconv.Itoa(record.Purchases),
			strconv.Itoa(record.Upgrades),
		})
	}
	return w.write("turn_records.csv", header, rows)
}

func (w *Writer) write(filename string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", filename, cerr)
		}
	}()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", filename, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", filename, err)
	}
	return nil
}
