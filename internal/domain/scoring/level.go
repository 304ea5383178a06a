package scoring

import "strings"

// ClinicalLevel is the coarse severity vocabulary shared by clinical profiles,
// disorder predictions and treatment plans.
type ClinicalLevel string

const (
	LevelSubclinical ClinicalLevel = "subclinical"
	LevelMild        ClinicalLevel = "mild"
	LevelModerate    ClinicalLevel = "moderate"
	LevelSevere      ClinicalLevel = "severe"
	LevelExtreme     ClinicalLevel = "extreme"
)

// ClinicalLevelOf reduces a questionnaire severity label to a ClinicalLevel.
// The most severe keyword found in the label wins, so "Mild-Moderate
// Depression" is moderate and "Moderate-Severe Depression" is severe.
func ClinicalLevelOf(label string) ClinicalLevel {
	l := strings.ToLower(label)
	switch {
	case l == "":
		return LevelSubclinical
	case strings.Contains(l, "extreme"), strings.Contains(l, "very severe"):
		return LevelExtreme
	case strings.Contains(l, "severe"):
		return LevelSevere
	case strings.Contains(l, "moderate"):
		return LevelModerate
	case strings.Contains(l, "mild"):
		return LevelMild
	default:
		return LevelSubclinical
	}
}

// instrumentLevels covers severity labels produced by instrument scorers
// outside their band tables.
var instrumentLevels = map[Questionnaire]map[string]ClinicalLevel{
	ADHD: {
		asrsScreenPositive: LevelSevere,
		asrsBelowThreshold: LevelSubclinical,
	},
	Bipolar: {
		mdqPositive: LevelSevere,
		mdqNegative: LevelSubclinical,
	},
}

// LevelFor resolves a severity label produced for q to its ClinicalLevel.
// Band and instrument labels are looked up exactly. Labels the tables do not
// know fall back to ClinicalLevelOf.
func LevelFor(q Questionnaire, label string) ClinicalLevel {
	if q == Burnout {
		if lvl, ok := mbiLevel(label); ok {
			return lvl
		}
	}
	if lvl, ok := instrumentLevels[q][label]; ok {
		return lvl
	}
	for _, b := range scoringTable[q].Bands {
		if b.Label == label {
			return b.Level
		}
	}
	return ClinicalLevelOf(label)
}

// mbiLevel grades an "EE: x, DP: y, PA: z" burnout label. High exhaustion or
// depersonalization is severe, moderate on either is moderate, and low
// accomplishment alone is mild.
func mbiLevel(label string) (ClinicalLevel, bool) {
	var ee, dp, pa string
	for _, part := range strings.Split(label, ", ") {
		k, v, ok := strings.Cut(part, ": ")
		if !ok {
			return "", false
		}
		switch k {
		case "EE":
			ee = v
		case "DP":
			dp = v
		case "PA":
			pa = v
		default:
			return "", false
		}
	}
	if ee == "" || dp == "" || pa == "" {
		return "", false
	}
	switch {
	case ee == "High" || dp == "High":
		return LevelSevere, true
	case ee == "Moderate" || dp == "Moderate":
		return LevelModerate, true
	case pa == "Low Accomplishment":
		return LevelMild, true
	default:
		return LevelSubclinical, true
	}
}
