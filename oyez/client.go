// Package oyez fetches case metadata and oral argument transcripts from the Oyez API.
package oyez

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/scotus-oa/transcripts/models"
)

var (
	// ErrNotFound is returned when Oyez has no record at the requested URL
	ErrNotFound = errors.New("not found on oyez")
	// ErrNoTranscript is returned when a case has no oral argument with a transcript
	ErrNoTranscript = errors.New("case has no transcript")
)

// StatusError is returned for any other non-2xx response
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("oyez returned %d for %s", e.Code, e.URL)
}

// Client talks to the Oyez API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the API rooted at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Case fetches the summary of a single case
func (c *Client) Case(ctx context.Context, id models.CaseID) (*models.CaseSummary, error) {
	u := c.baseURL + "/cases/" + strconv.Itoa(id.Year) + "/" + url.PathEscape(id.Docket)
	var summary models.CaseSummary
	if err := c.get(ctx, u, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Transcript fetches one oral argument media record, transcript included
func (c *Client) Transcript(ctx context.Context, href string) (*models.Document, error) {
	var doc models.Document
	if err := c.get(ctx, href, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Transcripts fetches the case and every oral argument transcript it links to.
// Arguments Oyez holds no transcript for are skipped.
func (c *Client) Transcripts(ctx context.Context, id models.CaseID) (*models.CaseSummary, []*models.Document, error) {
	summary, err := c.Case(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var docs []*models.Document
	for _, media := range summary.OralArgumentAudio {
		if media.Href == "" {
			continue
		}
		doc, err := c.Transcript(ctx, media.Href)
		if err != nil {
			return nil, nil, err
		}
		if doc.Transcript == nil {
			log.Debug().Str("case", id.String()).Str("href", media.Href).Msg("oral argument has no transcript")
			continue
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return summary, nil, fmt.Errorf("%s: %w", id, ErrNoTranscript)
	}
	return summary, docs, nil
}

func (c *Client) get(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", u, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", u, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{Code: resp.StatusCode, URL: u}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", u, err)
	}
	return nil
}
