package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jonfriesen/elementify"
	"github.com/jonfriesen/elementify/internal/config"
	"github.com/jonfriesen/elementify/internal/normalize"
)

func main() {
	dictPath := flag.String("dict", "", "path to a JSON dictionary (default: the periodic table)")
	word := flag.String("word", "", "print the solutions for word and exit")
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath, *dictPath, *word); err != nil {
		fmt.Fprintf(os.Stderr, "elementify: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, dictPath, word string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// The terminal belongs to the UI, so only file logging is allowed.
	cfg.Log.Stdout = false
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if dictPath == "" {
		dictPath = cfg.Dictionary.Path
	}
	dict := elementify.PeriodicTable()
	if dictPath != "" {
		if dict, err = elementify.LoadDictionaryFile(dictPath); err != nil {
			return err
		}
	}
	segmenter := elementify.NewSegmenter(dict, elementify.WithMaxPartials(cfg.Server.MaxPartials))

	if word != "" {
		return printSolutions(os.Stdout, segmenter, word)
	}

	logger.Info("starting", zap.Int("tokens", dict.Len()))
	m := newModel(segmenter, NewWordGenerator(dict, time.Now().UnixNano()), logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// printSolutions writes the summary line and one line per segmentation.
func printSolutions(w io.Writer, s *elementify.Segmenter, raw string) error {
	word, err := normalize.Input(raw)
	if err != nil {
		return err
	}
	res, err := s.Elementify(word)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, res.Summary())
	for _, seg := range res.Segmentations {
		names := make([]string, len(seg))
		for i, tok := range seg {
			names[i] = tok.Name
		}
		fmt.Fprintf(w, "  %s  (%s)\n", strings.Join(seg.Symbols(), " "), strings.Join(names, ", "))
	}
	return nil
}
