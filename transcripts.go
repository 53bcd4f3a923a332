package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
	"github.com/scotus-oa/transcripts/cleaner"
	"github.com/scotus-oa/transcripts/models"
	"github.com/scotus-oa/transcripts/oyez"
	"github.com/spf13/viper"
)

var transcriptCleaner = cleaner.New(cleaner.DefaultOptions())

var newOyezClient = func() *oyez.Client {
	return oyez.NewClient(viper.GetString("oyez_path"), viper.GetDuration("oyez_timeout"))
}

func cleanTranscript(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !flags.IsEnabled(featureCleanTranscript) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if doc.Transcript == nil {
		writeError(w, http.StatusUnprocessableEntity, "Document has no transcript")
		return
	}

	stats := transcriptCleaner.CleanDocument(&doc)
	log.Info().
		Int("original_turns", stats.OriginalTurns).
		Int("cleaned_turns", stats.CleanedTurns).
		Msg("cleaned transcript")

	w.Header().Set("X-Original-Turns", strconv.Itoa(stats.OriginalTurns))
	w.Header().Set("X-Cleaned-Turns", strconv.Itoa(stats.CleanedTurns))
	writeJSON(w, http.StatusOK, doc)
}

func caseIDFromParams(w http.ResponseWriter, ps httprouter.Params) (models.CaseID, bool) {
	id, err := models.NewCaseID(ps.ByName("term"), ps.ByName("docket"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return models.CaseID{}, false
	}
	return id, true
}

func cleanCase(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !flags.IsEnabled(featureCleanCase) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, ok := caseIDFromParams(w, ps)
	if !ok {
		return
	}
	if minTerm := viper.GetInt("min_term"); id.Year < minTerm {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Case term %d is before %d", id.Year, minTerm))
		return
	}
	if db == nil {
		writeError(w, http.StatusInternalServerError, "Database connection could not be found")
		return
	}

	logger := log.With().Str("case", id.String()).Logger()

	summary, docs, err := newOyezClient().Transcripts(r.Context(), id)
	switch {
	case errors.Is(err, oyez.ErrNotFound):
		writeError(w, http.StatusNotFound, "Case not found on Oyez")
		return
	case errors.Is(err, oyez.ErrNoTranscript):
		writeError(w, http.StatusUnprocessableEntity, "Case has no transcript")
		return
	case err != nil:
		logger.Error().Err(err).Msg("fetching case from oyez")
		writeError(w, http.StatusBadGateway, "Error fetching from Oyez: "+err.Error())
		return
	}

	result := models.CleanedCase{ID: id.String(), Name: summary.Name, Transcripts: []models.CleanedTranscript{}}
	var runs []models.CleaningRun
	for _, doc := range docs {
		stats := transcriptCleaner.CleanDocument(doc)
		if stats.CleanedTurns == 0 {
			logger.Warn().Str("title", doc.Title()).Msg("transcript empty after cleaning, skipping")
			continue
		}
		seq := len(result.Transcripts) + 1
		result.Transcripts = append(result.Transcripts, models.CleanedTranscript{
			Title:    doc.Title(),
			FileName: id.TranscriptFileName(seq),
			Stats:    stats,
			Document: doc,
		})
		runs = append(runs, models.CleaningRun{
			CaseID:        id.String(),
			Transcript:    seq,
			Sections:      stats.Sections,
			OriginalTurns: stats.OriginalTurns,
			CleanedTurns:  stats.CleanedTurns,
		})
	}

	if len(result.Transcripts) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "Case has no transcript")
		return
	}

	if err := recordCleaningRuns(r.Context(), runs); err != nil {
		logger.Error().Err(err).Msg("recording cleaning runs")
		writeError(w, http.StatusInternalServerError, "Error recording cleaning runs: "+err.Error())
		return
	}

	logger.Info().Int("transcripts", len(result.Transcripts)).Msg("cleaned case")
	writeJSON(w, http.StatusOK, result)
}

func listRuns(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !flags.IsEnabled(featureListRuns) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, ok := caseIDFromParams(w, ps)
	if !ok {
		return
	}

	runs, err := listCleaningRuns(r.Context(), id)
	switch {
	case errors.Is(err, errNoDB):
		writeError(w, http.StatusInternalServerError, "Database connection could not be found")
		return
	case err != nil:
		log.Error().Err(err).Str("case", id.String()).Msg("listing cleaning runs")
		writeError(w, http.StatusInternalServerError, "Error querying DB: "+err.Error())
		return
	}

	if len(runs) == 0 {
		writeError(w, http.StatusNotFound, "No cleaning runs found")
		return
	}
	writeJSON(w, http.StatusOK, runs)
}
