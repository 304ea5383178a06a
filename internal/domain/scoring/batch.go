package scoring

import "fmt"

// CalculateAllScoresFromFlatArray scores every questionnaire laid out in the
// answer vector. flat must hold exactly TotalItems answers.
//
// A questionnaire whose slice is shorter than its item count is left out of
// the result, so callers must not assume every questionnaire is present.
func CalculateAllScoresFromFlatArray(flat []int) (Scores, error) {
	if len(flat) != TotalItems {
		return nil, fmt.Errorf("%w: expected %d responses, got %d", ErrInvalidInput, TotalItems, len(flat))
	}

	scores := make(Scores, len(indexMap))
	for _, e := range indexMap {
		end := e.rng.End + 1
		if end > len(flat) {
			end = len(flat)
		}
		slice := flat[e.rng.Start:end]
		if len(slice) != e.rng.ItemCount {
			continue
		}
		scores[e.questionnaire] = Score(e.questionnaire, slice)
	}
	return scores, nil
}

// ProcessPreAssessmentAnswers scores flat and splits the result into score and
// severity maps.
func ProcessPreAssessmentAnswers(flat []int) (Summary, error) {
	scores, err := CalculateAllScoresFromFlatArray(flat)
	if err != nil {
		return Summary{}, err
	}
	return scores.Summary(), nil
}

func (s Scores) Summary() Summary {
	out := Summary{
		Scores:         make(map[Questionnaire]int, len(s)),
		SeverityLevels: make(map[Questionnaire]string, len(s)),
	}
	for q, qs := range s {
		out.Scores[q] = qs.Score
		out.SeverityLevels[q] = qs.Severity
	}
	return out
}

// Ordered returns the questionnaires in s in answer-vector order, followed by
// any questionnaire that has no index range.
func (s Scores) Ordered() []Questionnaire {
	out := make([]Questionnaire, 0, len(s))
	seen := make(map[Questionnaire]bool, len(s))
	for _, e := range indexMap {
		if _, ok := s[e.questionnaire]; ok {
			out = append(out, e.questionnaire)
			seen[e.questionnaire] = true
		}
	}
	for _, q := range All() {
		if _, ok := s[q]; ok && !seen[q] {
			out = append(out, q)
		}
	}
	return out
}
