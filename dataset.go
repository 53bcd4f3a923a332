package main

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
	"github.com/scotus-oa/transcripts/dataset"
	"github.com/scotus-oa/transcripts/models"
	"github.com/spf13/viper"
)

func validateDataset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !flags.IsEnabled(featureValidate) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var entries []models.Entry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	report := dataset.Validate(entries, viper.GetInt("min_term"))
	log.Info().Int("checked", report.Checked).Int("violations", len(report.Violations)).Msg("validated dataset")
	writeJSON(w, http.StatusOK, report)
}
