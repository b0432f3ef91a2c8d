package dex

import "github.com/nao1215/skyedex/internal/model"

// Section headers, defense block first. The trailing newline is part of
// each header and is written by the text report.
var sectionHeaders = [6]string{
	"Immune To:\n",
	"Resistant To:\n",
	"Weakness To:\n",
	"Ineffective Against:\n",
	"Not Very Effective Against:\n",
	"Very Effective Against:\n",
}

// offenseHeaderShift is added to the header index when only offense
// categories are requested.
const offenseHeaderShift = 3

// Section is one damage relation category of a type.
type Section struct {
	// Header is the label, including its trailing newline.
	Header string `json:"header"`
	// Members are the related type names as stored in the relation set.
	Members []string `json:"members"`
}

// Title returns the header without its trailing newline.
func (s Section) Title() string {
	return s.Header[:len(s.Header)-1]
}

// TypeSections selects the relation categories of t to display.
//
// Defense categories (damage received) are included when showDefense is
// set or showOffense is not; offense categories (damage dealt) when
// showOffense is set or showDefense is not. With neither flag both blocks
// are included, defense first.
//
// The header of the i-th included category is sectionHeaders[i], shifted
// by three when showOffense is set without showDefense. Defense-only mode
// is not shifted.
func TypeSections(t *model.Type, showDefense, showOffense bool) []Section {
	rel := t.Relations

	var sets [][]string
	if showDefense || !showOffense {
		sets = append(sets, rel.NoDamageFrom, rel.HalfDamageFrom, rel.DoubleDamageFrom)
	}
	if showOffense || !showDefense {
		sets = append(sets, rel.NoDamageTo, rel.HalfDamageTo, rel.DoubleDamageTo)
	}

	shift := 0
	if showOffense && !showDefense {
		shift = offenseHeaderShift
	}

	sections := make([]Section, len(sets))
	for i, members := range sets {
		sections[i] = Section{
			Header:  sectionHeaders[i+shift],
			Members: members,
		}
	}
	return sections
}

// Headers returns a copy of the six section headers in display order.
func Headers() []string {
	return append([]string(nil), sectionHeaders[:]...)
}

// TitledMembers returns the section members with Titlecase applied.
func (s Section) TitledMembers() []string {
	return model.TitlecaseAll(s.Members)
}
