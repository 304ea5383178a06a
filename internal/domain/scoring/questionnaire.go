package scoring

import (
	"fmt"
	"strings"
)

// Questionnaire identifies one screening instrument of the pre-assessment.
// Two vocabularies exist for the same instruments: the display name used by
// the batch scorer and the clinical scale abbreviation used by disorder
// predictions. Both are projections of this type.
type Questionnaire int

const (
	Depression Questionnaire = iota + 1
	ADHD
	AlcoholUse
	BingeEating
	DrugIssues
	Anxiety
	Insomnia
	Burnout
	Bipolar
	OCD
	PTSD
	Panic
	DepressionSecondary
	Stress
	SocialAnxiety
	Phobia
)

type questionnaireNames struct {
	display string
	scale   string
	aliases []string
}

var names = map[Questionnaire]questionnaireNames{
	Depression:          {display: "Depression", scale: "PHQ-9"},
	ADHD:                {display: "ADD / ADHD", scale: "ASRS", aliases: []string{"ADHD", "ADD"}},
	AlcoholUse:          {display: "Substance or Alcohol Use Issues", scale: "AUDIT", aliases: []string{"Alcohol Use", "Substance Use"}},
	BingeEating:         {display: "Binge eating / Eating disorders", scale: "BES", aliases: []string{"Binge Eating", "Eating Disorders"}},
	DrugIssues:          {display: "Drug Issues", scale: "DAST-10", aliases: []string{"Drug Abuse"}},
	Anxiety:             {display: "Anxiety", scale: "GAD-7"},
	Insomnia:            {display: "Insomnia", scale: "ISI"},
	Burnout:             {display: "Burnout", scale: "MBI"},
	Bipolar:             {display: "Bipolar disorder (BD)", scale: "MDQ", aliases: []string{"Bipolar", "Bipolar Disorder"}},
	OCD:                 {display: "Obsessive compulsive disorder (OCD)", scale: "OCI-R", aliases: []string{"OCD"}},
	PTSD:                {display: "Post-traumatic stress disorder (PTSD)", scale: "PCL-5", aliases: []string{"PTSD"}},
	Panic:               {display: "Panic", scale: "PDSS"},
	DepressionSecondary: {display: "Depression Secondary", scale: "PHQ-9 (secondary)"},
	Stress:              {display: "Stress", scale: "PSS"},
	SocialAnxiety:       {display: "Social anxiety", scale: "SPIN"},
	Phobia:              {display: "Phobia", scale: "Phobia"},
}

// Lookup maps derived from names. Display names and aliases are keyed in
// lower case.
var byDisplayName, byScale = func() (map[string]Questionnaire, map[string]Questionnaire) {
	display := make(map[string]Questionnaire, 2*len(names))
	scale := make(map[string]Questionnaire, len(names))
	for q, n := range names {
		display[strings.ToLower(n.display)] = q
		for _, a := range n.aliases {
			display[strings.ToLower(a)] = q
		}
		scale[n.scale] = q
	}
	return display, scale
}()

// All returns every known questionnaire in declaration order.
func All() []Questionnaire {
	out := make([]Questionnaire, 0, len(names))
	for q := Depression; q <= Phobia; q++ {
		out = append(out, q)
	}
	return out
}

// Valid reports whether q is a known questionnaire.
func (q Questionnaire) Valid() bool {
	_, ok := names[q]
	return ok
}

// DisplayName is the label used in score maps and clinical profiles.
func (q Questionnaire) DisplayName() string {
	if n, ok := names[q]; ok {
		return n.display
	}
	return ""
}

// ScaleAbbreviation is the instrument abbreviation used by disorder predictions.
func (q Questionnaire) ScaleAbbreviation() string {
	if n, ok := names[q]; ok {
		return n.scale
	}
	return ""
}

func (q Questionnaire) String() string {
	if n := q.DisplayName(); n != "" {
		return n
	}
	return fmt.Sprintf("Questionnaire(%d)", int(q))
}

// MarshalText makes score maps encode with display names as keys.
func (q Questionnaire) MarshalText() ([]byte, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("unknown questionnaire %d", int(q))
	}
	return []byte(q.DisplayName()), nil
}

func (q *Questionnaire) UnmarshalText(text []byte) error {
	parsed, ok := ParseDisplayName(string(text))
	if !ok {
		return fmt.Errorf("unknown questionnaire %q", string(text))
	}
	*q = parsed
	return nil
}

// ParseDisplayName resolves a display name or alias, ignoring case.
func ParseDisplayName(name string) (Questionnaire, bool) {
	q, ok := byDisplayName[strings.ToLower(name)]
	return q, ok
}

// ParseScaleAbbreviation resolves an instrument abbreviation such as "GAD-7".
func ParseScaleAbbreviation(abbrev string) (Questionnaire, bool) {
	q, ok := byScale[abbrev]
	return q, ok
}
