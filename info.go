package main

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/scotus-oa/transcripts/models"
	"github.com/spf13/viper"
)

func info(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	info := models.Info{
		Name:    viper.GetString("service_name"),
		Version: viper.GetString("app_version"),
		MinTerm: viper.GetInt("min_term"),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}
