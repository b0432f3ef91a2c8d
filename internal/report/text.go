package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/skyedex/internal/dex"
	"github.com/nao1215/skyedex/internal/model"
)

// TextWriter outputs results as plain text, one fact per line.
// Names are titlecased; stats are right-aligned to three columns.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// WritePokemon writes the basic line, abilities and base stats,
// in that order, as selected by req. ShowAll forces stats and abilities.
//
//	Pikachu	(Electric)
//	Abilities: Static, Lightning-rod
//	 HP:  35
//	Atk:  55	Def:  40
//	SpA:  50	SpD:  50
//	Spe:  90
func (w *TextWriter) WritePokemon(p *model.Pokemon, req model.PokemonRequest) (int, error) {
	req = req.Normalize()

	var sb strings.Builder
	if req.ShowBasic {
		fmt.Fprintf(&sb, "%s\t(%s)\n", model.Titlecase(p.Name), strings.Join(model.TitlecaseAll(p.Types), ", "))
	}
	if req.ShowAbility {
		fmt.Fprintf(&sb, "Abilities: %s\n", strings.Join(model.TitlecaseAll(p.Abilities), ", "))
	}
	if req.ShowStats {
		s := p.Stats
		fmt.Fprintf(&sb, " HP: %3d\n", s.HP)
		fmt.Fprintf(&sb, "Atk: %3d\tDef: %3d\n", s.Attack, s.Defense)
		fmt.Fprintf(&sb, "SpA: %3d\tSpD: %3d\n", s.SpecialAttack, s.SpecialDefense)
		fmt.Fprintf(&sb, "Spe: %3d\n", s.Speed)
	}
	return io.WriteString(w.output, sb.String())
}

// WriteType writes the titlecased type name followed by each section:
// its header line, the space-separated members when there are any,
// and a blank line.
func (w *TextWriter) WriteType(t *model.Type, sections []dex.Section) (int, error) {
	var sb strings.Builder
	sb.WriteString(model.Titlecase(t.Name))
	sb.WriteString("\n")
	for _, s := range sections {
		sb.WriteString(s.Header)
		if len(s.Members) > 0 {
			sb.WriteString(strings.Join(s.TitledMembers(), " "))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return io.WriteString(w.output, sb.String())
}

// WriteMatchup writes "A <move>-type move will do <n>x damage."
func (w *TextWriter) WriteMatchup(m *dex.MatchupResult) (int, error) {
	return fmt.Fprintf(w.output, "A %s-type move will do %sx damage.\n",
		m.MoveName, model.FormatMultiplier(m.Multiplier))
}

// WriteNature writes "-<decreased>, +<increased>", using None for a
// neutral side.
func (w *TextWriter) WriteNature(n *model.Nature) (int, error) {
	return fmt.Fprintf(w.output, "-%s, +%s\n", statOrNone(n.DecreasedStat), statOrNone(n.IncreasedStat))
}
