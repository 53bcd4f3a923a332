package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCaseID is returned when a case or transcript identifier can't be parsed
var ErrInvalidCaseID = errors.New("invalid case id")

type (
	// CaseID identifies a case by term year and docket. Dockets are reused across years,
	// so the docket on its own is not a key.
	CaseID struct {
		Year   int    `json:"year"`
		Docket string `json:"docket"`
	}

	// MediaRef is a pointer to a piece of case media on the Oyez API
	MediaRef struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
		Href  string `json:"href"`
	}

	// CaseSummary represents the response from Oyez's GET /cases/{term}/{docket}
	// It does not represent the full response, just what we end up using
	CaseSummary struct {
		ID                int        `json:"ID"`
		Name              string     `json:"name"`
		Term              string     `json:"term"`
		Docket            string     `json:"docket_number"`
		OralArgumentAudio []MediaRef `json:"oral_argument_audio"`
	}
)

func (c CaseID) String() string {
	return strconv.Itoa(c.Year) + "." + c.Docket
}

// TranscriptFileName returns the file name for the seq'th transcript of a case, e.g. 2024.24-316-t01.json
func (c CaseID) TranscriptFileName(seq int) string {
	return fmt.Sprintf("%s-t%02d.json", c, seq)
}

// NewCaseID builds a CaseID from a term and docket as they appear in request paths
func NewCaseID(term, docket string) (CaseID, error) {
	return ParseCaseID(term + "." + docket)
}

// ParseCaseID parses the <year>.<docket> form
func ParseCaseID(s string) (CaseID, error) {
	year, docket, ok := strings.Cut(s, ".")
	if !ok {
		return CaseID{}, fmt.Errorf("%w %q: missing '.' separator", ErrInvalidCaseID, s)
	}
	if len(year) != 4 {
		return CaseID{}, fmt.Errorf("%w %q: year must be four digits", ErrInvalidCaseID, s)
	}
	for _, r := range year {
		if r < '0' || r > '9' {
			return CaseID{}, fmt.Errorf("%w %q: year must be four digits", ErrInvalidCaseID, s)
		}
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return CaseID{}, fmt.Errorf("%w %q: year must be four digits", ErrInvalidCaseID, s)
	}
	if docket == "" || strings.ContainsAny(docket, "./ ") {
		return CaseID{}, fmt.Errorf("%w %q: bad docket", ErrInvalidCaseID, s)
	}
	return CaseID{Year: y, Docket: docket}, nil
}

// ParseTranscriptFileName splits a transcript file name into its case and sequence number
func ParseTranscriptFileName(name string) (CaseID, int, error) {
	base := strings.TrimSuffix(name, ".json")
	if base == name {
		return CaseID{}, 0, fmt.Errorf("%w %q: not a .json file", ErrInvalidCaseID, name)
	}
	i := strings.LastIndex(base, "-t")
	if i < 0 {
		return CaseID{}, 0, fmt.Errorf("%w %q: missing -tNN suffix", ErrInvalidCaseID, name)
	}
	seq, err := strconv.Atoi(base[i+2:])
	if err != nil || seq < 1 {
		return CaseID{}, 0, fmt.Errorf("%w %q: bad transcript sequence", ErrInvalidCaseID, name)
	}
	id, err := ParseCaseID(base[:i])
	if err != nil {
		return CaseID{}, 0, err
	}
	return id, seq, nil
}
