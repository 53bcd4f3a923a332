// Package dataset checks the curation rules every published case must satisfy.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/scotus-oa/transcripts/models"
)

// DefaultMinTerm is the earliest term included in the dataset
const DefaultMinTerm = 1991

// Validate checks entries against the dataset rules and reports every violation
func Validate(entries []models.Entry, minTerm int) models.Report {
	report := models.Report{Checked: len(entries), Violations: []models.Violation{}}
	seen := make(map[models.CaseID]bool, len(entries))

	for _, e := range entries {
		id, err := models.ParseCaseID(e.ID)
		if err != nil {
			report.Violations = append(report.Violations, models.Violation{
				ID: e.ID, Rule: models.RuleInvalidID, Message: err.Error(),
			})
			continue
		}
		if seen[id] {
			report.Violations = append(report.Violations, models.Violation{
				ID: e.ID, Rule: models.RuleDuplicateID, Message: "case appears more than once",
			})
		}
		seen[id] = true

		if e.Error != "" {
			report.Violations = append(report.Violations, models.Violation{
				ID: e.ID, Rule: models.RuleUnreadable, Message: e.Error,
			})
			continue
		}
		if id.Year < minTerm {
			report.Violations = append(report.Violations, models.Violation{
				ID: e.ID, Rule: models.RuleBeforeMinTerm, Message: fmt.Sprintf("term %d is before %d", id.Year, minTerm),
			})
		}
		if e.TurnCount <= 0 {
			report.Violations = append(report.Violations, models.Violation{
				ID: e.ID, Rule: models.RuleEmptyTranscript, Message: "case has no transcript turns",
			})
		}
	}

	report.Valid = len(report.Violations) == 0
	return report
}

// EntriesFromDir reads a directory of <year>.<docket>-tNN.json transcripts and returns one entry per case,
// with turns summed over the case's transcripts. Files whose names don't parse come back as entries
// carrying the bare file name so Validate reports them, and files that can't be decoded mark their case
// with an error rather than failing the whole scan.
func EntriesFromDir(dir string) ([]models.Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading dataset directory: %w", err)
	}

	turns := map[string]int{}
	failed := map[string]string{}
	var order []string
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}
		id, _, err := models.ParseTranscriptFileName(f.Name())
		key := id.String()
		if err != nil {
			key = f.Name()
		}
		if _, ok := turns[key]; !ok {
			order = append(order, key)
			turns[key] = 0
		}
		if err != nil {
			continue
		}

		doc, err := LoadDocument(filepath.Join(dir, f.Name()))
		if err != nil {
			if failed[key] == "" {
				failed[key] = err.Error()
			}
			continue
		}
		turns[key] += doc.Turns()
	}

	sort.Strings(order)
	entries := make([]models.Entry, 0, len(order))
	for _, k := range order {
		entries = append(entries, models.Entry{ID: k, TurnCount: turns[k], Error: failed[k]})
	}
	return entries, nil
}

// LoadDocument reads a transcript document from disk
func LoadDocument(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding transcript %s: %w", filepath.Base(path), err)
	}
	return &doc, nil
}
