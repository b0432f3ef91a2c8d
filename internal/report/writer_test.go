package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/skyedex/internal/dex"
	"github.com/nao1215/skyedex/internal/model"
)

func pikachu() *model.Pokemon {
	return &model.Pokemon{
		Name:  "pikachu",
		Types: []string{"electric"},
		Stats: model.BaseStats{
			HP: 35, Attack: 55, Defense: 40,
			SpecialAttack: 50, SpecialDefense: 50, Speed: 90,
		},
		Abilities: []string{"static", "lightning-rod"},
	}
}

func bulbasaur() *model.Pokemon {
	return &model.Pokemon{
		Name:  "bulbasaur",
		Types: []string{"grass", "poison"},
		Stats: model.BaseStats{
			HP: 45, Attack: 49, Defense: 49,
			SpecialAttack: 65, SpecialDefense: 65, Speed: 45,
		},
		Abilities: []string{"overgrow", "chlorophyll"},
	}
}

func fireType() *model.Type {
	return &model.Type{
		Name: "fire",
		Relations: model.DamageRelations{
			HalfDamageFrom:   []string{"fire", "grass"},
			DoubleDamageFrom: []string{"water", "ground"},
			HalfDamageTo:     []string{"fire", "water"},
			DoubleDamageTo:   []string{"grass", "ice"},
		},
	}
}

// TestTextWriter_WritePokemon tests the plain text Pokemon format.
func TestTextWriter_WritePokemon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    *model.Pokemon
		req  model.PokemonRequest
		want string
	}{
		{
			name: "basic line for a single type",
			p:    pikachu(),
			req:  model.PokemonRequest{Name: "pikachu", ShowBasic: true},
			want: "Pikachu\t(Electric)\n",
		},
		{
			name: "basic line for a dual type",
			p:    bulbasaur(),
			req:  model.PokemonRequest{Name: "bulbasaur", ShowBasic: true},
			want: "Bulbasaur\t(Grass, Poison)\n",
		},
		{
			name: "all forces abilities and stats",
			p:    pikachu(),
			req:  model.PokemonRequest{Name: "pikachu", ShowBasic: true, ShowAll: true},
			want: "Pikachu\t(Electric)\n" +
				"Abilities: Static, Lightning-rod\n" +
				" HP:  35\n" +
				"Atk:  55\tDef:  40\n" +
				"SpA:  50\tSpD:  50\n" +
				"Spe:  90\n",
		},
		{
			name: "no basic with stats only",
			p:    pikachu(),
			req:  model.PokemonRequest{Name: "pikachu", ShowStats: true},
			want: " HP:  35\n" +
				"Atk:  55\tDef:  40\n" +
				"SpA:  50\tSpD:  50\n" +
				"Spe:  90\n",
		},
		{
			name: "nothing selected prints nothing",
			p:    pikachu(),
			req:  model.PokemonRequest{Name: "pikachu"},
			want: "",
		},
		{
			name: "three digit stats are not padded",
			p: &model.Pokemon{
				Name:      "blissey",
				Types:     []string{"normal"},
				Stats:     model.BaseStats{HP: 255, Attack: 10, Defense: 10, SpecialAttack: 75, SpecialDefense: 135, Speed: 55},
				Abilities: []string{"natural-cure"},
			},
			req: model.PokemonRequest{Name: "blissey", ShowStats: true},
			want: " HP: 255\n" +
				"Atk:  10\tDef:  10\n" +
				"SpA:  75\tSpD: 135\n" +
				"Spe:  55\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			n, err := NewTextWriter(&buf).WritePokemon(tt.p, tt.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != buf.Len() {
				t.Errorf("returned %d bytes, wrote %d", n, buf.Len())
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestTextWriter_WriteType tests the section layout of a type.
func TestTextWriter_WriteType(t *testing.T) {
	t.Parallel()

	t.Run("both blocks with empty immune section", func(t *testing.T) {
		t.Parallel()

		fire := fireType()
		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).WriteType(fire, dex.TypeSections(fire, false, false)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "Fire\n" +
			"Immune To:\n" +
			"\n" +
			"Resistant To:\n" +
			"Fire Grass\n" +
			"\n" +
			"Weakness To:\n" +
			"Water Ground\n" +
			"\n" +
			"Ineffective Against:\n" +
			"\n" +
			"Not Very Effective Against:\n" +
			"Fire Water\n" +
			"\n" +
			"Very Effective Against:\n" +
			"Grass Ice\n" +
			"\n"
		if diff := cmp.Diff(want, buf.String()); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("offense only uses offense headers", func(t *testing.T) {
		t.Parallel()

		fire := fireType()
		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).WriteType(fire, dex.TypeSections(fire, false, true)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "Fire\n" +
			"Ineffective Against:\n" +
			"\n" +
			"Not Very Effective Against:\n" +
			"Fire Water\n" +
			"\n" +
			"Very Effective Against:\n" +
			"Grass Ice\n" +
			"\n"
		if diff := cmp.Diff(want, buf.String()); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})
}

// TestTextWriter_WriteMatchup tests multiplier formatting.
func TestTextWriter_WriteMatchup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		move       string
		multiplier float64
		want       string
	}{
		{name: "neutral", move: "fire", multiplier: 1, want: "A fire-type move will do 1x damage.\n"},
		{name: "half", move: "fire", multiplier: 0.5, want: "A fire-type move will do 0.5x damage.\n"},
		{name: "quadruple", move: "water", multiplier: 4, want: "A water-type move will do 4x damage.\n"},
		{name: "quarter", move: "grass", multiplier: 0.25, want: "A grass-type move will do 0.25x damage.\n"},
		{name: "immune", move: "ghost", multiplier: 0, want: "A ghost-type move will do 0x damage.\n"},
		{name: "move name is printed as typed", move: "FIRE", multiplier: 2, want: "A FIRE-type move will do 2x damage.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			res := &dex.MatchupResult{MoveName: tt.move, Primary: "grass", Multiplier: tt.multiplier}
			if _, err := NewTextWriter(&buf).WriteMatchup(res); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestTextWriter_WriteNature tests nature formatting.
func TestTextWriter_WriteNature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		nature *model.Nature
		want   string
	}{
		{
			name:   "adamant lowers special attack and raises attack",
			nature: &model.Nature{Name: "adamant", DecreasedStat: "special-attack", IncreasedStat: "attack"},
			want:   "-Special-attack, +Attack\n",
		},
		{
			name:   "neutral nature prints None twice",
			nature: &model.Nature{Name: "hardy"},
			want:   "-None, +None\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if _, err := NewTextWriter(&buf).WriteNature(tt.nature); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestJSONWriter tests the JSON documents.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("pokemon omits unselected sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := NewJSONWriter(&buf).WritePokemon(pikachu(), model.PokemonRequest{Name: "pikachu", ShowBasic: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"name":"pikachu","types":["electric"]}` + "\n"
		if got := buf.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("pokemon with all includes stats and total", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := NewJSONWriter(&buf, WithPrettyPrint()).WritePokemon(bulbasaur(), model.PokemonRequest{ShowBasic: true, ShowAll: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got PokemonDocument
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		stats := bulbasaur().Stats
		want := PokemonDocument{
			Name:      "bulbasaur",
			Types:     []string{"grass", "poison"},
			Abilities: []string{"overgrow", "chlorophyll"},
			Stats:     &stats,
			Total:     318,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("document mismatch (-want +got):\n%s", diff)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
	})

	t.Run("type sections use titles and empty arrays", func(t *testing.T) {
		t.Parallel()

		fire := fireType()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteType(fire, dex.TypeSections(fire, true, false)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got TypeDocument
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		want := TypeDocument{
			Name: "fire",
			Sections: []SectionJSON{
				{Title: "Immune To:", Members: []string{}},
				{Title: "Resistant To:", Members: []string{"fire", "grass"}},
				{Title: "Weakness To:", Members: []string{"water", "ground"}},
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("document mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("matchup names effectiveness classes", func(t *testing.T) {
		t.Parallel()

		res := &dex.MatchupResult{
			MoveName: "water", Primary: "fire", Secondary: "ground",
			PrimaryEffectiveness: model.Weak, SecondaryEffectiveness: model.Weak,
			Multiplier: 4,
		}
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteMatchup(res); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"move":"water","primary":"fire","primary_effectiveness":"weak","secondary":"ground","secondary_effectiveness":"weak","multiplier":4}` + "\n"
		if got := buf.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("neutral nature has null stats", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteNature(&model.Nature{Name: "serious"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"name":"serious","decreased_stat":null,"increased_stat":null}` + "\n"
		if got := buf.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

// TestMarkdownWriter tests the markdown output.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("pokemon with all has stat table and chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := NewMarkdownWriter(&buf).WritePokemon(bulbasaur(), model.PokemonRequest{ShowBasic: true, ShowAll: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{"# Bulbasaur", "Grass / Poison", "## Abilities", "- Overgrow", "## Base Stats", "**318**", "```mermaid", "Base Stat Distribution"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q\n%s", want, out)
			}
		}
	})

	t.Run("type lists sections with None for empty ones", func(t *testing.T) {
		t.Parallel()

		fire := fireType()
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteType(fire, dex.TypeSections(fire, true, false)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{"# Fire Type", "## Immune To", "*None*", "## Weakness To", "- Water"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q\n%s", want, out)
			}
		}
	})

	t.Run("super effective matchup has a tip", func(t *testing.T) {
		t.Parallel()

		res := &dex.MatchupResult{MoveName: "water", Primary: "fire", PrimaryEffectiveness: model.Weak, Multiplier: 2}
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteMatchup(res); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{"# Water vs Fire", "**2x**", "[!TIP]"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q\n%s", want, out)
			}
		}
	})

	t.Run("neutral nature has a note", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteNature(&model.Nature{Name: "hardy"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{"# Hardy Nature", "None", "[!NOTE]"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q\n%s", want, out)
			}
		}
	})
}

// failWriter is a Writer that always fails.
type failWriter struct{ calls int }

var errWrite = errors.New("write failed")

func (f *failWriter) WritePokemon(*model.Pokemon, model.PokemonRequest) (int, error) {
	f.calls++
	return 0, errWrite
}
func (f *failWriter) WriteType(*model.Type, []dex.Section) (int, error) { f.calls++; return 0, errWrite }
func (f *failWriter) WriteMatchup(*dex.MatchupResult) (int, error)      { f.calls++; return 0, errWrite }
func (f *failWriter) WriteNature(*model.Nature) (int, error)            { f.calls++; return 0, errWrite }

// TestMultiWriter tests writing to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		mw := NewMultiWriter(NewTextWriter(&a), NewJSONWriter(&b))
		n, err := mw.WriteNature(&model.Nature{Name: "bold", DecreasedStat: "attack", IncreasedStat: "defense"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != a.Len()+b.Len() {
			t.Errorf("returned %d bytes, wrote %d", n, a.Len()+b.Len())
		}
		if a.String() != "-Attack, +Defense\n" {
			t.Errorf("text output = %q", a.String())
		}
		if !strings.Contains(b.String(), `"increased_stat":"defense"`) {
			t.Errorf("json output = %q", b.String())
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		first, second := &failWriter{}, &failWriter{}
		_, err := NewMultiWriter(first, second).WriteType(fireType(), nil)
		if !errors.Is(err, errWrite) {
			t.Errorf("expected errWrite, got %v", err)
		}
		if first.calls != 1 || second.calls != 0 {
			t.Errorf("calls = %d, %d", first.calls, second.calls)
		}
	})
}
