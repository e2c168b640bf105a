package models

import (
	"bytes"
	"encoding/json"
)

// ToolEntry is one recommended tool.
// A nil list means its bullet never appeared and is left out of the JSON;
// a matched list is always written, even when empty.
type ToolEntry struct {
	Name         string   `json:"name"`
	Date         string   `json:"date"`
	Recommenders []string `json:"recommenders"`
	Description  string   `json:"description"`
	URLs         []string `json:"urls"`
}

// ExperienceEntry is one shared usage experience. Sharers follows the same
// nil-versus-empty rule as ToolEntry.
type ExperienceEntry struct {
	Name    string   `json:"name"`
	Date    string   `json:"date"`
	Sharers []string `json:"sharers"`
	Content string   `json:"content"`
}

// Contributors returns the entry's recommenders.
func (t ToolEntry) Contributors() []string {
	return t.Recommenders
}

// Contributors returns the entry's sharers.
func (e ExperienceEntry) Contributors() []string {
	return e.Sharers
}

func (t ToolEntry) MarshalJSON() ([]byte, error) {
	return marshalLiteral(struct {
		Name         string    `json:"name"`
		Date         string    `json:"date"`
		Recommenders *[]string `json:"recommenders,omitempty"`
		Description  string    `json:"description"`
		URLs         *[]string `json:"urls,omitempty"`
	}{t.Name, t.Date, matched(t.Recommenders), t.Description, matched(t.URLs)})
}

func (e ExperienceEntry) MarshalJSON() ([]byte, error) {
	return marshalLiteral(struct {
		Name    string    `json:"name"`
		Date    string    `json:"date"`
		Sharers *[]string `json:"sharers,omitempty"`
		Content string    `json:"content"`
	}{e.Name, e.Date, matched(e.Sharers), e.Content})
}

// matched returns nil for a list that was never captured.
func matched(list []string) *[]string {
	if list == nil {
		return nil
	}
	return &list
}

// marshalLiteral encodes v without escaping <, > and &, so the caller's
// encoder settings decide how those characters end up.
func marshalLiteral(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
