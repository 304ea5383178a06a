package scoring

import "fmt"

// CalculateQuestionnaireScore scores answers against the questionnaire with
// the given display name. An unknown name is not an error: it yields a zero
// score with the SeverityUnknownQuestionnaire label.
func CalculateQuestionnaireScore(name string, answers []int) QuestionnaireScore {
	q, ok := ParseDisplayName(name)
	if !ok {
		return QuestionnaireScore{Score: 0, Severity: SeverityUnknownQuestionnaire}
	}
	return Score(q, answers)
}

// Score sums the points of answers for q and resolves the severity band.
// Unanswered items are skipped and unmapped answer codes contribute 0.
func Score(q Questionnaire, answers []int) QuestionnaireScore {
	score, _ := score(q, answers)
	return score
}

// ScoreStrict scores like Score and additionally reports every input it had
// to tolerate. The returned score never differs from Score.
func ScoreStrict(q Questionnaire, answers []int) Result {
	score, issues := score(q, answers)
	status := StatusOK
	if len(issues) > 0 {
		status = StatusWarning
	}
	return Result{Status: status, Score: score, Issues: issues}
}

func score(q Questionnaire, answers []int) (QuestionnaireScore, []Issue) {
	cfg, ok := scoringTable[q]
	if !ok {
		return QuestionnaireScore{Score: 0, Severity: SeverityUnknownQuestionnaire}, []Issue{{
			Kind:    IssueUnknownQuestionnaire,
			Index:   -1,
			Message: fmt.Sprintf("no scoring configuration for %s", q),
		}}
	}
	if cfg.instrument != nil {
		return cfg.instrument(cfg, answers)
	}

	pts, issues := cfg.points(answers)
	total := 0
	for i, p := range pts {
		if p == Unanswered {
			continue
		}
		if cfg.isReversed(i) {
			p = reverseCeiling - p
		}
		total += p
	}

	severity, issue := cfg.severity(total)
	if issue != nil {
		issues = append(issues, *issue)
	}
	return QuestionnaireScore{Score: total, Severity: severity}, issues
}

// points maps raw answer codes to point values. Unanswered items stay
// Unanswered so callers can tell them apart from a zero.
func (c Config) points(answers []int) ([]int, []Issue) {
	var issues []Issue
	out := make([]int, len(answers))
	for i, code := range answers {
		if code == Unanswered {
			out[i] = Unanswered
			continue
		}
		p, ok := c.ScoreMapping[code]
		if !ok {
			issues = append(issues, unmappedIssue(i, code))
		}
		out[i] = p
	}
	return out, issues
}

// severity returns the label of the first band containing total.
func (c Config) severity(total int) (string, *Issue) {
	for _, b := range c.Bands {
		if b.contains(total) {
			return b.Label, nil
		}
	}
	return SeverityUnknown, &Issue{
		Kind:    IssueNoSeverityBand,
		Index:   -1,
		Code:    total,
		Message: fmt.Sprintf("score %d matches no severity band", total),
	}
}
