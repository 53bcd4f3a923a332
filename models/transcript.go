package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// extra holds JSON keys a type doesn't model so they survive a round-trip
type extra map[string]json.RawMessage

// keys records which modelled keys were present when a value was decoded. nil means it was built in code.
type keys map[string]bool

func (k keys) absent(key string) bool {
	return k != nil && !k[key]
}

type (
	// Document represents the response from Oyez's case_media/oral_argument_audio/{id}
	Document struct {
		Transcript *Transcript
		extra      extra
	}

	// Transcript is the written record of an oral argument
	Transcript struct {
		Title    string
		Sections []Section
		extra    extra
		seen     keys
	}

	// Section is one part of an argument, e.g. petitioner, respondent or rebuttal
	Section struct {
		Turns []Turn
		extra extra
	}

	// Turn is an uninterrupted stretch of speech from one speaker
	Turn struct {
		Start      float64
		Stop       float64
		Speaker    *Speaker
		TextBlocks []TextBlock
		extra      extra
		seen       keys
		rawStart   json.RawMessage
		rawStop    json.RawMessage
	}

	// Speaker is the justice or advocate speaking in a turn
	Speaker struct {
		Name  string
		extra extra
	}

	// TextBlock is a timed fragment of a turn's text
	TextBlock struct {
		Text  string
		extra extra
	}
)

// Text returns the turn's text blocks joined, trimmed and lower-cased
func (t Turn) Text() string {
	parts := make([]string, len(t.TextBlocks))
	for i, b := range t.TextBlocks {
		parts[i] = b.Text
	}
	return strings.ToLower(strings.TrimSpace(strings.Join(parts, " ")))
}

// SpeakerName returns the speaker's name, or "" for turns with no speaker
func (t Turn) SpeakerName() string {
	if t.Speaker == nil {
		return ""
	}
	return t.Speaker.Name
}

// Duration is the turn's length in seconds
func (t Turn) Duration() float64 {
	return t.Stop - t.Start
}

// Extend appends next's text to t and takes over its stop time
func (t *Turn) Extend(next Turn) {
	blocks := make([]TextBlock, 0, len(t.TextBlocks)+len(next.TextBlocks))
	blocks = append(blocks, t.TextBlocks...)
	blocks = append(blocks, next.TextBlocks...)
	t.TextBlocks = blocks
	t.Stop = next.Stop
	t.rawStop = next.rawStop
}

// Turns counts turns across every section
func (d *Document) Turns() int {
	if d == nil || d.Transcript == nil {
		return 0
	}
	n := 0
	for _, s := range d.Transcript.Sections {
		n += len(s.Turns)
	}
	return n
}

// Title returns the transcript title, if there is one
func (d *Document) Title() string {
	if d == nil || d.Transcript == nil {
		return ""
	}
	return d.Transcript.Title
}

func decodeWithExtra(data []byte, known map[string]interface{}) (extra, keys, error) {
	var raw extra
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}
	seen := keys{}
	for k, dst := range known {
		v, ok := raw[k]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return nil, nil, err
		}
		seen[k] = true
		delete(raw, k)
	}
	return raw, seen, nil
}

// number keeps the number's original spelling while its value is unchanged
func number(raw json.RawMessage, v float64) interface{} {
	if raw != nil {
		var f float64
		if json.Unmarshal(raw, &f) == nil && f == v {
			return raw
		}
	}
	return v
}

func encodeWithExtra(ex extra, known map[string]interface{}) ([]byte, error) {
	out := make(map[string]interface{}, len(ex)+len(known))
	for k, v := range ex {
		out[k] = v
	}
	for k, v := range known {
		out[k] = v
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (d *Document) UnmarshalJSON(data []byte) (err error) {
	d.extra, _, err = decodeWithExtra(data, map[string]interface{}{"transcript": &d.Transcript})
	return err
}

func (d Document) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(d.extra, map[string]interface{}{"transcript": d.Transcript})
}

func (t *Transcript) UnmarshalJSON(data []byte) (err error) {
	t.extra, t.seen, err = decodeWithExtra(data, map[string]interface{}{"title": &t.Title, "sections": &t.Sections})
	return err
}

func (t Transcript) MarshalJSON() ([]byte, error) {
	known := map[string]interface{}{"sections": t.Sections}
	if t.Title != "" || !t.seen.absent("title") {
		known["title"] = t.Title
	}
	return encodeWithExtra(t.extra, known)
}

func (s *Section) UnmarshalJSON(data []byte) (err error) {
	s.extra, _, err = decodeWithExtra(data, map[string]interface{}{"turns": &s.Turns})
	return err
}

func (s Section) MarshalJSON() ([]byte, error) {
	turns := s.Turns
	if turns == nil {
		turns = []Turn{}
	}
	return encodeWithExtra(s.extra, map[string]interface{}{"turns": turns})
}

func (t *Turn) UnmarshalJSON(data []byte) (err error) {
	t.extra, t.seen, err = decodeWithExtra(data, map[string]interface{}{
		"start":       &t.rawStart,
		"stop":        &t.rawStop,
		"speaker":     &t.Speaker,
		"text_blocks": &t.TextBlocks,
	})
	if err != nil {
		return err
	}
	if t.rawStart != nil {
		if err := json.Unmarshal(t.rawStart, &t.Start); err != nil {
			return err
		}
	}
	if t.rawStop != nil {
		if err := json.Unmarshal(t.rawStop, &t.Stop); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON writes back only the keys the input had, unless the value has since been set
func (t Turn) MarshalJSON() ([]byte, error) {
	known := map[string]interface{}{}
	if t.Start != 0 || !t.seen.absent("start") {
		known["start"] = number(t.rawStart, t.Start)
	}
	if t.Stop != 0 || !t.seen.absent("stop") {
		known["stop"] = number(t.rawStop, t.Stop)
	}
	if t.Speaker != nil || !t.seen.absent("speaker") {
		known["speaker"] = t.Speaker
	}
	if t.TextBlocks != nil || t.seen["text_blocks"] {
		known["text_blocks"] = t.TextBlocks
	}
	return encodeWithExtra(t.extra, known)
}

func (s *Speaker) UnmarshalJSON(data []byte) (err error) {
	s.extra, _, err = decodeWithExtra(data, map[string]interface{}{"name": &s.Name})
	return err
}

func (s Speaker) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(s.extra, map[string]interface{}{"name": s.Name})
}

func (b *TextBlock) UnmarshalJSON(data []byte) (err error) {
	b.extra, _, err = decodeWithExtra(data, map[string]interface{}{"text": &b.Text})
	return err
}

func (b TextBlock) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(b.extra, map[string]interface{}{"text": b.Text})
}
