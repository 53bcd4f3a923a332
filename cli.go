package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog/log"
	"github.com/scotus-oa/transcripts/dataset"
	"github.com/scotus-oa/transcripts/models"
	"github.com/spf13/viper"
)

const usage = `Usage:
  oa-transcripts                             run the HTTP service
  oa-transcripts clean <input.json> <output.json>
  oa-transcripts validate <dir>
`

var errNoTranscript = errors.New("document has no transcript")

func runCommand(args []string, out io.Writer) int {
	switch {
	case len(args) == 3 && args[0] == "clean":
		stats, err := cleanFile(args[1], args[2])
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
			return 1
		}
		fmt.Fprintf(out, "Cleaned transcript saved to %s\n", args[2])
		fmt.Fprintf(out, "Original turn count: %d\n", stats.OriginalTurns)
		fmt.Fprintf(out, "Cleaned turn count: %d\n", stats.CleanedTurns)
		return 0

	case len(args) == 2 && args[0] == "validate":
		entries, err := dataset.EntriesFromDir(args[1])
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
			return 1
		}
		report := dataset.Validate(entries, viper.GetInt("min_term"))
		for _, v := range report.Violations {
			fmt.Fprintf(out, "%s: %s: %s\n", v.ID, v.Rule, v.Message)
		}
		fmt.Fprintf(out, "Checked %d cases, %d violations\n", report.Checked, len(report.Violations))
		if !report.Valid {
			return 1
		}
		return 0
	}

	fmt.Fprint(out, usage)
	return 2
}

func cleanFile(inPath, outPath string) (models.CleaningStats, error) {
	doc, err := dataset.LoadDocument(inPath)
	if err != nil {
		return models.CleaningStats{}, err
	}
	if doc.Transcript == nil {
		return models.CleaningStats{}, fmt.Errorf("%s: %w", inPath, errNoTranscript)
	}

	stats := transcriptCleaner.CleanDocument(doc)

	pending, err := renameio.NewPendingFile(outPath, renameio.WithPermissions(0o644))
	if err != nil {
		return models.CleaningStats{}, fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			log.Debug().Err(err).Str("path", outPath).Msg("cleanup pending output")
		}
	}()

	enc := json.NewEncoder(pending)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return models.CleaningStats{}, fmt.Errorf("writing output: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return models.CleaningStats{}, fmt.Errorf("replacing output: %w", err)
	}
	return stats, nil
}
