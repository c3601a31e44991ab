package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/vancomm/minesweeper-annotator/internal/config"
	"github.com/vancomm/minesweeper-annotator/internal/mines"
)

func readRows(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read minefield: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	var rows []string
	for _, row := range byPiece(text, "\n") {
		rows = append(rows, row)
	}
	return rows, nil
}

func main() {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)

	in := os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			logger.Error("failed to open minefield file", slog.Any("error", err))
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	rows, err := readRows(in)
	if err != nil {
		logger.Error("failed to read minefield", slog.Any("error", err))
		os.Exit(1)
	}

	annotated, err := mines.Annotate(rows)
	if err != nil {
		logger.Error("failed to annotate minefield", slog.Any("error", err))
		os.Exit(1)
	}

	for _, row := range annotated {
		fmt.Println(row)
	}
}
