package cleaner

import (
	"encoding/json"
	"testing"

	"github.com/scotus-oa/transcripts/models"
	"github.com/stretchr/testify/assert"
)

func turn(speaker string, start, stop float64, text ...string) models.Turn {
	t := models.Turn{Start: start, Stop: stop, Speaker: &models.Speaker{Name: speaker}}
	for _, s := range text {
		t.TextBlocks = append(t.TextBlocks, models.TextBlock{Text: s})
	}
	return t
}

func speakers(turns []models.Turn) []string {
	out := make([]string, len(turns))
	for i, t := range turns {
		out[i] = t.SpeakerName()
	}
	return out
}

func TestCleanEmpty(t *testing.T) {
	c := New(DefaultOptions())
	assert.Empty(t, c.Clean(nil))
	assert.Empty(t, c.Clean([]models.Turn{}))
}

func TestCleanRemovesLaughterAndTraffic(t *testing.T) {
	c := New(DefaultOptions())
	turns := []models.Turn{
		turn("Roberts", 0, 10, "Mr. Smith."),
		turn("Smith", 10, 20, "Mr. Chief Justice, and may it please the Court."),
		turn("Alito", 20, 21, "(Laughter.)"),
		turn("Kagan", 21, 22, "Thank you, Counsel."),
		turn("Thomas", 22, 30, "Counsel, the statute says otherwise."),
	}

	cleaned := c.Clean(turns)

	assert.Equal(t, []string{"Roberts", "Smith", "Thomas"}, speakers(cleaned))
}

func TestCleanRemovesInterruptedFalseStart(t *testing.T) {
	c := New(DefaultOptions())
	turns := []models.Turn{
		turn("Smith", 0, 10, "The question presented is narrow."),
		turn("Gorsuch", 10, 11.5, "But isn't --"),
		turn("Smith", 11.5, 20, "If I may finish the point."),
	}

	cleaned := c.Clean(turns)

	// The false start goes and the two Smith turns merge around it.
	assert.Len(t, cleaned, 1)
	assert.Equal(t, "Smith", cleaned[0].SpeakerName())
	assert.Equal(t, 0.0, cleaned[0].Start)
	assert.Equal(t, 20.0, cleaned[0].Stop)
	assert.Len(t, cleaned[0].TextBlocks, 2)
}

func TestCleanKeepsFalseStartWhenSpeakerContinues(t *testing.T) {
	c := New(DefaultOptions())
	turns := []models.Turn{
		turn("Gorsuch", 0, 1, "Well --"),
		turn("Gorsuch", 1, 8, "let me put it another way."),
		turn("Smith", 8, 12, "Of course."),
	}

	cleaned := c.Clean(turns)

	assert.Equal(t, []string{"Gorsuch", "Smith"}, speakers(cleaned))
	assert.Len(t, cleaned[0].TextBlocks, 2)
}

func TestCleanKeepsLongTurnEndingInDash(t *testing.T) {
	c := New(DefaultOptions())
	turns := []models.Turn{
		turn("Gorsuch", 0, 3, "But isn't --"),
		turn("Smith", 3, 10, "No."),
	}

	cleaned := c.Clean(turns)

	assert.Equal(t, []string{"Gorsuch", "Smith"}, speakers(cleaned))
}

func TestCleanKeepsTrailingFalseStart(t *testing.T) {
	c := New(DefaultOptions())
	turns := []models.Turn{
		turn("Smith", 0, 10, "Thank you for the question."),
		turn("Gorsuch", 10, 11, "But --"),
	}

	assert.Len(t, c.Clean(turns), 2)
}

func TestCleanRemovesInterjectionBetweenSameSpeaker(t *testing.T) {
	c := New(DefaultOptions())
	turns := []models.Turn{
		turn("Smith", 0, 10, "The first reason is text."),
		turn("Kagan", 10, 11, "Mm-hmm."),
		turn("Smith", 11, 20, "The second is history."),
		turn("Kagan", 20, 21, "Right."),
		turn("Barrett", 21, 30, "What about structure?"),
	}

	cleaned := c.Clean(turns)

	// The second interjection sits between different speakers so it stays.
	assert.Equal(t, []string{"Smith", "Kagan", "Barrett"}, speakers(cleaned))
	assert.Equal(t, 20.0, cleaned[0].Stop)
}

func TestCleanInterjectionSkipsRemovedTraffic(t *testing.T) {
	c := New(DefaultOptions())
	turns := []models.Turn{
		turn("Smith", 0, 10, "The record is clear."),
		turn("Kagan", 10, 11, "Go ahead."),
		turn("Alito", 11, 12, "Correct."),
		turn("Smith", 12, 20, "And the courts below agreed."),
	}

	cleaned := c.Clean(turns)

	assert.Equal(t, []string{"Smith"}, speakers(cleaned))
}

func TestCleanInterjectionSeesFlagsFromSamePass(t *testing.T) {
	c := New(DefaultOptions())
	turns := []models.Turn{
		turn("A", 0, 10, "Point one."),
		turn("B", 10, 11, "Yeah."),
		turn("A", 11, 12, "Right."),
		turn("A", 12, 20, "Point two."),
	}

	cleaned := c.Clean(turns)

	// Once "Yeah." is gone, "Right." sits between two A turns and goes too.
	assert.Equal(t, []string{"A"}, speakers(cleaned))
	assert.Len(t, cleaned[0].TextBlocks, 2)
	assert.Equal(t, 20.0, cleaned[0].Stop)
}

func TestCleanFalseStartLooksPastRemovedTraffic(t *testing.T) {
	c := New(DefaultOptions())
	turns := []models.Turn{
		turn("C", 0, 10, "Argument."),
		turn("B", 10, 11, "But --"),
		turn("A", 11, 12, "Go ahead."),
		turn("B", 12, 20, "the real question is remedy."),
	}

	cleaned := c.Clean(turns)

	// B keeps the floor once the traffic turn is dropped, so the false start stays.
	assert.Equal(t, []string{"C", "B"}, speakers(cleaned))
	assert.Len(t, cleaned[1].TextBlocks, 2)
	assert.Equal(t, 10.0, cleaned[1].Start)
}

func TestCleanMergesNullSpeakers(t *testing.T) {
	c := New(DefaultOptions())
	turns := []models.Turn{
		{Start: 0, Stop: 5, TextBlocks: []models.TextBlock{{Text: "Recording begins."}}},
		{Start: 5, Stop: 6, TextBlocks: []models.TextBlock{{Text: "Testing."}}},
	}

	cleaned := c.Clean(turns)

	assert.Len(t, cleaned, 1)
	assert.Nil(t, cleaned[0].Speaker)
}

func TestCleanDoesNotModifyInput(t *testing.T) {
	c := New(DefaultOptions())
	turns := []models.Turn{
		turn("Smith", 0, 10, "One."),
		turn("Smith", 10, 20, "Two."),
	}

	c.Clean(turns)

	assert.Len(t, turns, 2)
	assert.Len(t, turns[0].TextBlocks, 1)
	assert.Equal(t, 10.0, turns[0].Stop)
}

func TestCustomOptions(t *testing.T) {
	c := New(Options{TrafficPhrases: []string{"Pardon."}, FalseStartMaxDuration: 1})
	turns := []models.Turn{
		turn("Smith", 0, 10, "Argument."),
		turn("Kagan", 10, 11, "pardon."),
		turn("Gorsuch", 11, 12.5, "I --"),
		turn("Smith", 12.5, 20, "Continuing."),
	}

	cleaned := c.Clean(turns)

	assert.Equal(t, []string{"Smith", "Gorsuch", "Smith"}, speakers(cleaned))
}

const documentJSON = `{
  "transcript": {
    "title": "Oral Argument",
    "sections": [
      {"turns": [
        {"start": 0, "stop": 10, "speaker": {"name": "Roberts"}, "text_blocks": [{"text": "Argument first."}]},
        {"start": 10, "stop": 11, "speaker": {"name": "Smith"}, "text_blocks": [{"text": "Thank you."}]},
        {"start": 11, "stop": 12, "speaker": {"name": "Roberts"}, "text_blocks": [{"text": "Proceed."}]}
      ]},
      {"turns": [
        {"start": 100, "stop": 110, "speaker": {"name": "Jones"}, "text_blocks": [{"text": "Rebuttal."}]},
        {"start": 110, "stop": 111, "speaker": {"name": "Thomas"}, "text_blocks": [{"text": "Yeah."}]},
        {"start": 111, "stop": 120, "speaker": {"name": "Jones"}, "text_blocks": [{"text": "Finally."}]}
      ]}
    ]
  }
}`

func TestCleanDocument(t *testing.T) {
	var doc models.Document
	assert.NoError(t, json.Unmarshal([]byte(documentJSON), &doc))

	stats := New(DefaultOptions()).CleanDocument(&doc)

	assert.Equal(t, models.CleaningStats{
		Sections:      2,
		OriginalTurns: 6,
		CleanedTurns:  2,
		Traffic:       1,
		Interjections: 1,
		Merged:        2,
	}, stats)
	assert.Equal(t, 2, doc.Turns())
	assert.Equal(t, 12.0, doc.Transcript.Sections[0].Turns[0].Stop)
	assert.Equal(t, 120.0, doc.Transcript.Sections[1].Turns[0].Stop)
}

func TestCleanDocumentWithoutTranscript(t *testing.T) {
	c := New(DefaultOptions())
	assert.Equal(t, models.CleaningStats{}, c.CleanDocument(&models.Document{}))
	assert.Equal(t, models.CleaningStats{}, c.CleanDocument(nil))
}
