package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/skyedex/internal/dex"
	"github.com/nao1215/skyedex/internal/model"
)

// MarkdownWriter outputs results in GitHub Flavored Markdown, built with
// the nao1215/markdown library. Base stats come with a mermaid pie chart
// and matchups with an alert describing the result.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// WritePokemon implements Writer.
func (w *MarkdownWriter) WritePokemon(p *model.Pokemon, req model.PokemonRequest) (int, error) {
	req = req.Normalize()
	md := markdown.NewMarkdown(w.output)

	md.H1(model.Titlecase(p.Name))
	md.PlainText("")

	if req.ShowBasic {
		md.Table(markdown.TableSet{
			Header: []string{"Property", "Value"},
			Rows: [][]string{
				{"Type", strings.Join(model.TitlecaseAll(p.Types), " / ")},
			},
		})
		md.PlainText("")
	}

	if req.ShowAbility {
		md.H2("Abilities")
		md.PlainText("")
		md.BulletList(model.TitlecaseAll(p.Abilities)...)
		md.PlainText("")
	}

	if req.ShowStats {
		w.writeStats(md, p.Stats)
	}

	return len(md.String()), md.Build()
}

// writeStats writes the base stat table and its distribution chart.
func (w *MarkdownWriter) writeStats(md *markdown.Markdown, s model.BaseStats) {
	md.H2("Base Stats")
	md.PlainText("")

	rows := [][]string{
		{"HP", strconv.Itoa(s.HP)},
		{"Attack", strconv.Itoa(s.Attack)},
		{"Defense", strconv.Itoa(s.Defense)},
		{"Sp. Atk", strconv.Itoa(s.SpecialAttack)},
		{"Sp. Def", strconv.Itoa(s.SpecialDefense)},
		{"Speed", strconv.Itoa(s.Speed)},
	}
	md.Table(markdown.TableSet{
		Header: []string{"Stat", "Base"},
		Rows:   append(rows, []string{"**Total**", "**" + strconv.Itoa(s.Total()) + "**"}),
	})
	md.PlainText("")

	if s.Total() == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Base Stat Distribution"),
		piechart.WithShowData(true),
	)
	for _, row := range rows {
		v, _ := strconv.ParseUint(row[1], 10, 64)
		chart.LabelAndIntValue(row[0], v)
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// WriteType implements Writer.
func (w *MarkdownWriter) WriteType(t *model.Type, sections []dex.Section) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(model.Titlecase(t.Name) + " Type")
	md.PlainText("")

	for _, s := range sections {
		md.H2(strings.TrimSuffix(s.Title(), ":"))
		md.PlainText("")
		if len(s.Members) == 0 {
			md.PlainText("*None*")
		} else {
			md.BulletList(s.TitledMembers()...)
		}
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// WriteMatchup implements Writer.
func (w *MarkdownWriter) WriteMatchup(m *dex.MatchupResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	defenders := model.Titlecase(m.Primary)
	if m.Secondary != "" {
		defenders += " / " + model.Titlecase(m.Secondary)
	}
	md.H1(fmt.Sprintf("%s vs %s", model.Titlecase(m.MoveName), defenders))
	md.PlainText("")

	rows := [][]string{
		{model.Titlecase(m.Primary), m.PrimaryEffectiveness.String(), model.FormatMultiplier(m.PrimaryEffectiveness.Multiplier()) + "x"},
	}
	if m.Secondary != "" {
		rows = append(rows, []string{
			model.Titlecase(m.Secondary), m.SecondaryEffectiveness.String(),
			model.FormatMultiplier(m.SecondaryEffectiveness.Multiplier()) + "x",
		})
	}
	rows = append(rows, []string{"**Total**", "", "**" + model.FormatMultiplier(m.Multiplier) + "x**"})
	md.Table(markdown.TableSet{
		Header: []string{"Defending Type", "Effectiveness", "Multiplier"},
		Rows:   rows,
	})
	md.PlainText("")

	switch {
	case m.Multiplier == 0:
		md.Cautionf("%s-type moves have no effect.", model.Titlecase(m.MoveName))
	case m.Multiplier > 1:
		md.Tip("It's super effective!")
	case m.Multiplier < 1:
		md.Note("It's not very effective...")
	}

	return len(md.String()), md.Build()
}

// WriteNature implements Writer.
func (w *MarkdownWriter) WriteNature(n *model.Nature) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(model.Titlecase(n.Name) + " Nature")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Decreased", "Increased"},
		Rows: [][]string{
			{statOrNone(n.DecreasedStat), statOrNone(n.IncreasedStat)},
		},
	})
	if n.IsNeutral() {
		md.PlainText("")
		md.Note("This nature does not change any stat.")
	}

	return len(md.String()), md.Build()
}
