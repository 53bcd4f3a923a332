// Package cleaner strips conversational artifacts from oral argument transcripts:
// floor management, interrupted false starts and listener interjections.
package cleaner

import (
	"strings"

	"github.com/scotus-oa/transcripts/models"
)

const laughter = "(laughter.)"

// Options controls which turns the cleaner treats as noise
type Options struct {
	// TrafficPhrases are removed when they make up a whole turn
	TrafficPhrases []string
	// Interjections are removed when the same speaker talks either side of them
	Interjections []string
	// FalseStartMaxDuration is the length in seconds below which a turn ending in "--" is a false start
	FalseStartMaxDuration float64
}

// DefaultOptions returns the phrase lists used to build the dataset
func DefaultOptions() Options {
	return Options{
		TrafficPhrases: []string{
			"i'm sorry.", "go ahead.", "no, please.", "thank you.", "yes.",
			"okay.", "all right.", "thank you, counsel.", "please.",
		},
		Interjections: []string{
			"yeah.", "right.", "mm-hmm.", "sure.", "no.", "correct.", "yes.",
		},
		FalseStartMaxDuration: 3.0,
	}
}

// Cleaner applies Options to transcripts. It is safe for concurrent use.
type Cleaner struct {
	traffic       map[string]struct{}
	interjections map[string]struct{}
	maxFalseStart float64
}

// New returns a Cleaner for the given options
func New(opts Options) *Cleaner {
	return &Cleaner{
		traffic:       toSet(opts.TrafficPhrases),
		interjections: toSet(opts.Interjections),
		maxFalseStart: opts.FalseStartMaxDuration,
	}
}

func toSet(phrases []string) map[string]struct{} {
	set := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		set[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	return set
}

// pass tracks the turns of one section and which of them are flagged for removal
type pass struct {
	turns   []models.Turn
	texts   []string
	deleted []bool
}

func (p *pass) nextKept(i int) int {
	for j := i + 1; j < len(p.turns); j++ {
		if !p.deleted[j] {
			return j
		}
	}
	return -1
}

func (p *pass) prevKept(i int) int {
	for j := i - 1; j >= 0; j-- {
		if !p.deleted[j] {
			return j
		}
	}
	return -1
}

// Clean returns a cleaned copy of one section's turns. The input is not modified.
func (c *Cleaner) Clean(turns []models.Turn) []models.Turn {
	cleaned, _ := c.clean(turns)
	return cleaned
}

func (c *Cleaner) clean(turns []models.Turn) ([]models.Turn, models.CleaningStats) {
	stats := models.CleaningStats{OriginalTurns: len(turns)}
	if len(turns) == 0 {
		return []models.Turn{}, stats
	}

	p := &pass{
		turns:   turns,
		texts:   make([]string, len(turns)),
		deleted: make([]bool, len(turns)),
	}
	for i, t := range turns {
		p.texts[i] = t.Text()
	}

	stats.Traffic = c.flagTraffic(p)
	stats.FalseStarts = c.flagFalseStarts(p)
	stats.Interjections = c.flagInterjections(p)

	kept := make([]models.Turn, 0, len(turns))
	for i, t := range turns {
		if !p.deleted[i] {
			kept = append(kept, t)
		}
	}

	merged := mergeSameSpeaker(kept)
	stats.Merged = len(kept) - len(merged)
	stats.CleanedTurns = len(merged)
	return merged, stats
}

func (c *Cleaner) flagTraffic(p *pass) int {
	n := 0
	for i, text := range p.texts {
		if _, ok := c.traffic[text]; ok || text == laughter {
			p.deleted[i] = true
			n++
		}
	}
	return n
}

// A short turn cut off with "--" is dropped only when someone else takes the floor.
func (c *Cleaner) flagFalseStarts(p *pass) int {
	n := 0
	for i, text := range p.texts {
		if p.deleted[i] {
			continue
		}
		if p.turns[i].Duration() >= c.maxFalseStart || !strings.HasSuffix(text, "--") {
			continue
		}
		next := p.nextKept(i)
		if next != -1 && p.turns[i].SpeakerName() != p.turns[next].SpeakerName() {
			p.deleted[i] = true
			n++
		}
	}
	return n
}

func (c *Cleaner) flagInterjections(p *pass) int {
	n := 0
	for i, text := range p.texts {
		if p.deleted[i] {
			continue
		}
		if _, ok := c.interjections[text]; !ok {
			continue
		}
		prev, next := p.prevKept(i), p.nextKept(i)
		if prev != -1 && next != -1 && p.turns[prev].SpeakerName() == p.turns[next].SpeakerName() {
			p.deleted[i] = true
			n++
		}
	}
	return n
}

func mergeSameSpeaker(turns []models.Turn) []models.Turn {
	merged := make([]models.Turn, 0, len(turns))
	for _, t := range turns {
		last := len(merged) - 1
		if last >= 0 && merged[last].SpeakerName() == t.SpeakerName() {
			merged[last].Extend(t)
			continue
		}
		merged = append(merged, t)
	}
	return merged
}

// CleanDocument cleans every section of doc in place and reports what changed
func (c *Cleaner) CleanDocument(doc *models.Document) models.CleaningStats {
	var total models.CleaningStats
	if doc == nil || doc.Transcript == nil {
		return total
	}
	for i := range doc.Transcript.Sections {
		section := &doc.Transcript.Sections[i]
		cleaned, stats := c.clean(section.Turns)
		section.Turns = cleaned

		total.Sections++
		total.OriginalTurns += stats.OriginalTurns
		total.CleanedTurns += stats.CleanedTurns
		total.Traffic += stats.Traffic
		total.FalseStarts += stats.FalseStarts
		total.Interjections += stats.Interjections
		total.Merged += stats.Merged
	}
	return total
}
