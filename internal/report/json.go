package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/skyedex/internal/dex"
	"github.com/nao1215/skyedex/internal/model"
)

// JSONWriter outputs results in JSON format.
// Names are kept as PokeAPI returns them (lower case) so the output can be
// fed back into other tools.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// PokemonDocument is the JSON shape of a Pokemon lookup.
// Sections not selected by the request are omitted.
type PokemonDocument struct {
	Name      string           `json:"name"`
	Types     []string         `json:"types,omitempty"`
	Abilities []string         `json:"abilities,omitempty"`
	Stats     *model.BaseStats `json:"stats,omitempty"`
	Total     int              `json:"base_stat_total,omitempty"`
}

// TypeDocument is the JSON shape of a type lookup.
type TypeDocument struct {
	Name     string        `json:"name"`
	Sections []SectionJSON `json:"sections"`
}

// SectionJSON is one damage relation section.
type SectionJSON struct {
	Title   string   `json:"title"`
	Members []string `json:"members"`
}

// MatchupDocument is the JSON shape of a matchup.
type MatchupDocument struct {
	Move                   string  `json:"move"`
	Primary                string  `json:"primary"`
	PrimaryEffectiveness   string  `json:"primary_effectiveness"`
	Secondary              string  `json:"secondary,omitempty"`
	SecondaryEffectiveness string  `json:"secondary_effectiveness,omitempty"`
	Multiplier             float64 `json:"multiplier"`
}

// NatureDocument is the JSON shape of a nature lookup.
// A neutral side is null.
type NatureDocument struct {
	Name          string  `json:"name"`
	DecreasedStat *string `json:"decreased_stat"`
	IncreasedStat *string `json:"increased_stat"`
}

// WritePokemon implements Writer.
func (w *JSONWriter) WritePokemon(p *model.Pokemon, req model.PokemonRequest) (int, error) {
	req = req.Normalize()

	doc := PokemonDocument{Name: p.Name}
	if req.ShowBasic {
		doc.Types = p.Types
	}
	if req.ShowAbility {
		doc.Abilities = p.Abilities
	}
	if req.ShowStats {
		stats := p.Stats
		doc.Stats = &stats
		doc.Total = stats.Total()
	}
	return w.writeJSON(doc)
}

// WriteType implements Writer.
func (w *JSONWriter) WriteType(t *model.Type, sections []dex.Section) (int, error) {
	doc := TypeDocument{Name: t.Name, Sections: make([]SectionJSON, len(sections))}
	for i, s := range sections {
		members := s.Members
		if members == nil {
			members = []string{}
		}
		doc.Sections[i] = SectionJSON{Title: s.Title(), Members: members}
	}
	return w.writeJSON(doc)
}

// WriteMatchup implements Writer.
func (w *JSONWriter) WriteMatchup(m *dex.MatchupResult) (int, error) {
	doc := MatchupDocument{
		Move:                 m.MoveName,
		Primary:              m.Primary,
		PrimaryEffectiveness: m.PrimaryEffectiveness.String(),
		Multiplier:           m.Multiplier,
	}
	if m.Secondary != "" {
		doc.Secondary = m.Secondary
		doc.SecondaryEffectiveness = m.SecondaryEffectiveness.String()
	}
	return w.writeJSON(doc)
}

// WriteNature implements Writer.
func (w *JSONWriter) WriteNature(n *model.Nature) (int, error) {
	doc := NatureDocument{Name: n.Name}
	if n.DecreasedStat != "" {
		doc.DecreasedStat = &n.DecreasedStat
	}
	if n.IncreasedStat != "" {
		doc.IncreasedStat = &n.IncreasedStat
	}
	return w.writeJSON(doc)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
