package insights

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mentara/mentara/internal/domain/scoring"
)

// ErrNoScores is returned when there is nothing to build a profile from.
var ErrNoScores = errors.New("no questionnaire scores")

// GenerateClinicalProfile interprets batch scores, optionally cross-checked
// against boolean AI estimates keyed like "Has_Depression".
func GenerateClinicalProfile(scores scoring.Scores, aiPredictions map[string]bool) (*ClinicalProfile, error) {
	if len(scores) == 0 {
		return nil, ErrNoScores
	}

	all := make([]ClinicalInsight, 0, len(scores))
	for _, q := range scores.Ordered() {
		all = append(all, conditionInsight(q, scores[q], aiPredictions))
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Priority > all[j].Priority })

	var primary, secondary []ClinicalInsight
	for _, ci := range all {
		if isPrimary(ci) {
			primary = append(primary, ci)
		} else {
			secondary = append(secondary, ci)
		}
	}

	risks := assessRiskFactors(all)
	overall := overallRiskLevel(risks, primary)

	return &ClinicalProfile{
		PrimaryConditions:        primary,
		SecondaryConditions:      secondary,
		RiskFactors:              risks,
		OverallRiskLevel:         overall,
		TherapeuticPriorities:    therapeuticPriorities(primary),
		TreatmentRecommendations: treatmentRecommendations(primary, risks),
		Summary:                  summary(primary, secondary, overall),
	}, nil
}

func conditionInsight(q scoring.Questionnaire, qs scoring.QuestionnaireScore, ai map[string]bool) ClinicalInsight {
	level := scoring.LevelFor(q, qs.Severity)
	risk := conditionRisk(q, level)
	severity := qs.Severity
	if severity == "" {
		severity = "Unknown"
	}

	recs := make([]string, 0, 5)
	if risk == RiskCritical || level == scoring.LevelExtreme {
		recs = append(recs, "Immediate psychiatric evaluation recommended", "Consider crisis intervention services")
	}
	recs = append(recs, lookup(conditionRecommendations, q, defaultRecommendations)...)

	return ClinicalInsight{
		Condition:        q,
		Severity:         severity,
		Score:            qs.Score,
		ClinicalLevel:    level,
		Confidence:       confidence(q, qs.Score, ai),
		RiskLevel:        risk,
		Priority:         priority(q, level, risk),
		KeyIndicators:    keyIndicators(q, level),
		TherapeuticFocus: lookup(focusAreas, q, defaultFocus),
		Recommendations:  recs,
	}
}

// confidence starts at 70, moves with score magnitude and with agreement
// between the score and the AI estimate, and is clamped to 10..100.
func confidence(q scoring.Questionnaire, score int, ai map[string]bool) int {
	c := 70
	switch {
	case score > 20:
		c += 20
	case score > 10:
		c += 10
	case score < 5:
		c -= 20
	}

	if key, ok := aiKeys[q]; ok {
		if aiPositive, ok := ai[key]; ok {
			if aiPositive == (score > 10) {
				c += 15
			} else {
				c -= 10
			}
		}
	}
	return clamp(c, 10, 100)
}

func conditionRisk(q scoring.Questionnaire, level scoring.ClinicalLevel) RiskLevel {
	switch level {
	case scoring.LevelExtreme:
		return RiskCritical
	case scoring.LevelSevere:
		if highRiskConditions[q] {
			return RiskCritical
		}
		return RiskHigh
	case scoring.LevelModerate:
		return RiskModerate
	}
	return RiskLow
}

func priority(q scoring.Questionnaire, level scoring.ClinicalLevel, risk RiskLevel) int {
	p, ok := levelPriority[level]
	if !ok {
		p = 1
	}
	if highRiskConditions[q] {
		p++
	}
	switch risk {
	case RiskCritical:
		p = 10
	case RiskHigh:
		p = max(p, 8)
	}
	return clamp(p, 1, 10)
}

func isPrimary(ci ClinicalInsight) bool {
	return ci.Priority >= 7 || ci.RiskLevel == RiskCritical || ci.RiskLevel == RiskHigh
}

func severeOrWorse(l scoring.ClinicalLevel) bool {
	return l == scoring.LevelSevere || l == scoring.LevelExtreme
}

// assessRiskFactors looks at insights ordered by priority, so the most
// urgent substance questionnaire decides the substance risk.
func assessRiskFactors(all []ClinicalInsight) []RiskFactor {
	var risks []RiskFactor

	if dep, ok := find(all, scoring.Depression); ok && severeOrWorse(dep.ClinicalLevel) {
		rf := RiskFactor{
			Type:       RiskSuicide,
			Level:      RiskHigh,
			Indicators: []string{"Severe depression symptoms", "High risk for suicidal ideation"},
			Urgency:    UrgencyWithinWeek,
		}
		if dep.ClinicalLevel == scoring.LevelExtreme {
			rf.Level = RiskCritical
			rf.Urgency = UrgencyImmediate
		}
		risks = append(risks, rf)
	}

	for _, ci := range all {
		if ci.Condition != scoring.AlcoholUse && ci.Condition != scoring.DrugIssues {
			continue
		}
		if ci.ClinicalLevel != scoring.LevelSubclinical {
			urgency := UrgencyWithinMonth
			if ci.RiskLevel == RiskCritical {
				urgency = UrgencyImmediate
			}
			risks = append(risks, RiskFactor{
				Type:       RiskSubstanceAbuse,
				Level:      ci.RiskLevel,
				Indicators: []string{"Problematic substance use patterns", "Risk for dependence"},
				Urgency:    urgency,
			})
		}
		break
	}

	if bp, ok := find(all, scoring.Bipolar); ok && severeOrWorse(bp.ClinicalLevel) {
		risks = append(risks, RiskFactor{
			Type:       RiskMania,
			Level:      RiskHigh,
			Indicators: []string{"Manic episode indicators", "Mood instability"},
			Urgency:    UrgencyWithinWeek,
		})
	}
	return risks
}

func overallRiskLevel(risks []RiskFactor, primary []ClinicalInsight) RiskLevel {
	has := func(level RiskLevel, includeFactors bool) bool {
		if includeFactors {
			for _, rf := range risks {
				if rf.Level == level {
					return true
				}
			}
		}
		for _, ci := range primary {
			if ci.RiskLevel == level {
				return true
			}
		}
		return false
	}
	switch {
	case has(RiskCritical, true):
		return RiskCritical
	case has(RiskHigh, true):
		return RiskHigh
	case has(RiskModerate, false):
		return RiskModerate
	}
	return RiskLow
}

func therapeuticPriorities(primary []ClinicalInsight) []string {
	var out []string
	for _, ci := range primary {
		if ci.RiskLevel == RiskCritical {
			out = append(out, "Crisis intervention and safety planning")
			break
		}
	}
	for _, ci := range primary {
		out = append(out, ci.Condition.DisplayName()+" management and treatment")
	}
	out = append(out, "Functional capacity and quality of life improvement", "Long-term relapse prevention")
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func treatmentRecommendations(primary []ClinicalInsight, risks []RiskFactor) []TreatmentRecommendation {
	var out []TreatmentRecommendation
	for _, rf := range risks {
		if rf.Urgency != UrgencyImmediate {
			continue
		}
		out = append(out, TreatmentRecommendation{
			Priority:          0,
			Condition:         strings.ReplaceAll(string(rf.Type), "_", " "),
			Approach:          []string{"Crisis Intervention", "Safety Planning"},
			Specialization:    []string{"Crisis Intervention", "Emergency Psychology"},
			Urgency:           UrgencyImmediate,
			EstimatedDuration: "Immediate assessment",
			Goals:             []string{"Ensure safety", "Stabilize acute symptoms"},
		})
	}

	for i, ci := range primary {
		duration, ok := estimatedDurations[ci.ClinicalLevel]
		if !ok {
			duration = "3-6 months therapy"
		}
		out = append(out, TreatmentRecommendation{
			Priority:          i + 1,
			Condition:         ci.Condition.DisplayName(),
			Approach:          lookup(approaches, ci.Condition, defaultApproaches),
			Specialization:    []string{ci.Condition.DisplayName(), "Clinical Psychology"},
			Urgency:           UrgencyForRisk(ci.RiskLevel),
			EstimatedDuration: duration,
			Goals:             lookup(goals, ci.Condition, defaultGoals),
		})
	}
	return out
}

func summary(primary, secondary []ClinicalInsight, overall RiskLevel) string {
	var b strings.Builder
	b.WriteString("Clinical assessment reveals ")
	if len(primary) > 0 {
		names := make([]string, len(primary))
		for i, ci := range primary {
			names[i] = ci.Condition.DisplayName()
		}
		fmt.Fprintf(&b, "%d primary condition(s) requiring immediate attention: %s. ", len(primary), strings.Join(names, ", "))
	}
	if len(secondary) > 0 {
		fmt.Fprintf(&b, "%d secondary condition(s) identified for ongoing monitoring. ", len(secondary))
	}
	fmt.Fprintf(&b, "Overall risk level: %s. ", overall)

	switch overall {
	case RiskCritical, RiskHigh:
		b.WriteString("Immediate professional intervention recommended.")
	case RiskModerate:
		b.WriteString("Regular therapeutic support recommended.")
	default:
		b.WriteString("Preventive intervention and monitoring recommended.")
	}
	return b.String()
}

func find(all []ClinicalInsight, q scoring.Questionnaire) (ClinicalInsight, bool) {
	for _, ci := range all {
		if ci.Condition == q {
			return ci, true
		}
	}
	return ClinicalInsight{}, false
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
