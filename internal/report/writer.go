package report

import (
	"io"

	"github.com/nao1215/skyedex/internal/dex"
	"github.com/nao1215/skyedex/internal/model"
)

// Writer defines the interface for lookup output.
// Each method writes one complete result and returns the number of bytes
// written and any error encountered.
type Writer interface {
	// WritePokemon outputs a Pokemon. req selects the sections to show.
	WritePokemon(p *model.Pokemon, req model.PokemonRequest) (int, error)

	// WriteType outputs a type and its selected damage relation sections.
	WriteType(t *model.Type, sections []dex.Section) (int, error)

	// WriteMatchup outputs the damage multiplier of a move type.
	WriteMatchup(m *dex.MatchupResult) (int, error)

	// WriteNature outputs the stats a nature lowers and raises.
	WriteNature(n *model.Nature) (int, error)
}

// MultiWriter writes to multiple Writers in order.
// Stops on the first error encountered.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WritePokemon implements Writer.
func (m *MultiWriter) WritePokemon(p *model.Pokemon, req model.PokemonRequest) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WritePokemon(p, req) })
}

// WriteType implements Writer.
func (m *MultiWriter) WriteType(t *model.Type, sections []dex.Section) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteType(t, sections) })
}

// WriteMatchup implements Writer.
func (m *MultiWriter) WriteMatchup(res *dex.MatchupResult) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteMatchup(res) })
}

// WriteNature implements Writer.
func (m *MultiWriter) WriteNature(n *model.Nature) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteNature(n) })
}

func (m *MultiWriter) each(write func(Writer) (int, error)) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := write(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// statOrNone returns the titlecased stat name, or "None" when absent.
func statOrNone(stat string) string {
	if stat == "" {
		return "None"
	}
	return model.Titlecase(stat)
}
