package scoring

import "fmt"

// instrumentScorer implements a published scoring rule that is not a plain
// sum of mapped points.
type instrumentScorer func(cfg Config, answers []int) (QuestionnaireScore, []Issue)

const (
	asrsScreenPositive = "Highly Consistent with Adult ADHD (Screen Positive)"
	asrsBelowThreshold = "Below Clinical Screening Threshold"

	mdqPositive = "Positive Bipolar Screen (All 3 Criteria Met)"
	mdqNegative = "Negative Screen"
)

// asrsLowShadedItems are the ASRS items whose shaded region starts at
// "Sometimes" (2) instead of "Often" (3).
var asrsLowShadedItems = map[int]bool{0: true, 1: true, 2: true, 8: true, 11: true, 15: true, 17: true}

func asrsShaded(item, code int) bool {
	if asrsLowShadedItems[item] {
		return code >= 2 && code <= 4
	}
	return code == 3 || code == 4
}

// scoreASRS applies the ASRS v1.1 Part A screen: four or more shaded answers
// among the first six items is a positive screen. Otherwise the total is
// banded like any other questionnaire.
func scoreASRS(cfg Config, answers []int) (QuestionnaireScore, []Issue) {
	pts, issues := cfg.points(answers)
	total := 0
	for _, p := range pts {
		if p != Unanswered {
			total += p
		}
	}

	shaded := 0
	for i := 0; i < 6 && i < len(answers); i++ {
		if answers[i] != Unanswered && asrsShaded(i, answers[i]) {
			shaded++
		}
	}
	if shaded >= 4 {
		return QuestionnaireScore{Score: total, Severity: asrsScreenPositive}, issues
	}

	for _, b := range cfg.Bands {
		if b.contains(total) {
			return QuestionnaireScore{Score: total, Severity: b.Label}, issues
		}
	}
	return QuestionnaireScore{Score: total, Severity: asrsBelowThreshold}, issues
}

// scoreMBI splits the Maslach Burnout Inventory into its emotional
// exhaustion, depersonalization and personal accomplishment subscales.
func scoreMBI(cfg Config, answers []int) (QuestionnaireScore, []Issue) {
	pts, issues := cfg.points(answers)
	var ee, dp, pa int
	for i, p := range pts {
		if p == Unanswered {
			continue
		}
		switch {
		case i < 7:
			ee += p
		case i < 14:
			dp += p
		default:
			pa += p
		}
	}

	eeLevel := "High"
	if ee <= 16 {
		eeLevel = "Low"
	} else if ee <= 26 {
		eeLevel = "Moderate"
	}
	dpLevel := "High"
	if dp <= 6 {
		dpLevel = "Low"
	} else if dp <= 12 {
		dpLevel = "Moderate"
	}
	paLevel := "Low Accomplishment"
	if pa >= 39 {
		paLevel = "High Accomplishment"
	} else if pa >= 32 {
		paLevel = "Moderate"
	}

	return QuestionnaireScore{
		Score:     ee + dp + pa,
		Severity:  fmt.Sprintf("EE: %s, DP: %s, PA: %s", eeLevel, dpLevel, paLevel),
		Subscales: map[string]int{"EE": ee, "DP": dp, "PA": pa},
	}, issues
}

// scoreMDQ is positive when at least seven of the thirteen symptom items are
// answered yes, the symptoms clustered in time (item 13) and caused at least
// moderate problems (item 14, coded 0-3).
func scoreMDQ(_ Config, answers []int) (QuestionnaireScore, []Issue) {
	var issues []Issue
	symptoms := 0
	for i := 0; i < 13 && i < len(answers); i++ {
		switch answers[i] {
		case 1:
			symptoms++
		case 0, Unanswered:
		default:
			issues = append(issues, unmappedIssue(i, answers[i]))
		}
	}

	clustered := len(answers) > 13 && answers[13] == 1
	impaired := len(answers) > 14 && answers[14] >= 2
	if len(answers) > 14 && answers[14] > 3 {
		issues = append(issues, unmappedIssue(14, answers[14]))
	}

	if symptoms >= 7 && clustered && impaired {
		return QuestionnaireScore{Score: 1, Severity: mdqPositive}, issues
	}
	return QuestionnaireScore{Score: 0, Severity: mdqNegative}, issues
}

func unmappedIssue(i, code int) Issue {
	return Issue{
		Kind:    IssueUnmappedAnswer,
		Index:   i,
		Code:    code,
		Message: fmt.Sprintf("answer code %d at item %d has no point value", code, i),
	}
}
