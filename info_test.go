package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/scotus-oa/transcripts/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	setup()

	req := httptest.NewRequest("GET", "/v1/info", nil)
	router.ServeHTTP(resp, req)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.Code)

	var infoResp models.Info
	err := json.Unmarshal(body, &infoResp)
	if err != nil {
		t.Fatal("Error decoding JSON response from 'GET /info', ", err.Error())
	}

	assert.Equal(t, viper.GetString("service_name"), infoResp.Name)
	assert.Equal(t, 1991, infoResp.MinTerm)
}
