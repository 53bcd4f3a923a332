package models

import (
	"time"

	"github.com/google/uuid"
)

type (
	// CleaningStats counts what the cleaner did to a document
	CleaningStats struct {
		Sections      int `json:"sections"`
		OriginalTurns int `json:"originalTurns"`
		CleanedTurns  int `json:"cleanedTurns"`
		Traffic       int `json:"traffic"`
		FalseStarts   int `json:"falseStarts"`
		Interjections int `json:"interjections"`
		Merged        int `json:"merged"`
	}

	// CleaningRun is a recorded clean of one transcript of a case
	CleaningRun struct {
		ID            uuid.UUID `json:"id"`
		CaseID        string    `json:"caseId"`
		Transcript    int       `json:"transcript"`
		Sections      int       `json:"sections"`
		OriginalTurns int       `json:"originalTurns"`
		CleanedTurns  int       `json:"cleanedTurns"`
		CreatedAt     time.Time `json:"createdAt"`
	}

	// CleanedTranscript is one cleaned oral argument transcript
	CleanedTranscript struct {
		Title    string        `json:"title"`
		FileName string        `json:"fileName"`
		Stats    CleaningStats `json:"stats"`
		Document *Document     `json:"document"`
	}

	// CleanedCase represents the response from 'POST /cases/{term}/{docket}/clean'
	CleanedCase struct {
		ID          string              `json:"id"`
		Name        string              `json:"name"`
		Transcripts []CleanedTranscript `json:"transcripts"`
	}
)
