package treatment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mentara/mentara/internal/domain/insights"
	"github.com/mentara/mentara/internal/domain/scoring"
)

const defaultCoreDuration = "12-16 weeks"

var coreDurations = map[scoring.ClinicalLevel]string{
	scoring.LevelExtreme:     "20-24 weeks",
	scoring.LevelSevere:      "16-20 weeks",
	scoring.LevelModerate:    "12-16 weeks",
	scoring.LevelMild:        "8-12 weeks",
	scoring.LevelSubclinical: "6-8 weeks",
}

// medicationIndicated conditions warrant a psychiatric evaluation once severe.
var medicationIndicated = map[scoring.Questionnaire]bool{
	scoring.Depression: true,
	scoring.Bipolar:    true,
	scoring.Anxiety:    true,
	scoring.PTSD:       true,
}

type therapistProfile struct {
	expertise, specialization, area string
}

var therapistProfiles = map[scoring.Questionnaire]therapistProfile{
	scoring.Depression: {"Depression", "Major Depressive Disorder", "Mood Disorders"},
	scoring.Anxiety:    {"Anxiety", "Generalized Anxiety Disorder", "Anxiety Disorders"},
	scoring.PTSD:       {"Trauma", "PTSD", "Trauma and Stressor-Related Disorders"},
	scoring.Bipolar:    {"Bipolar", "Bipolar Disorder", "Mood Disorders"},
	scoring.OCD:        {"OCD", "Obsessive-Compulsive Disorder", "Anxiety Disorders"},
	scoring.ADHD:       {"ADHD", "ADHD", "Neurodevelopmental Disorders"},
}

var universalSelfCare = []SelfCareRecommendation{
	{
		Category:       CategoryLifestyle,
		Priority:       "high",
		Recommendation: "Maintain regular sleep schedule (7-9 hours per night)",
		Frequency:      "Daily",
		Rationale:      "Sleep regulation is crucial for mental health and symptom management",
	},
	{
		Category:       CategoryPhysical,
		Priority:       "high",
		Recommendation: "Regular physical exercise (30 minutes, 3-5 times per week)",
		Frequency:      "3-5 times per week",
		Rationale:      "Exercise has proven benefits for mood regulation and anxiety reduction",
	},
	{
		Category:       CategoryMindfulness,
		Priority:       "medium",
		Recommendation: "Daily mindfulness or meditation practice",
		Frequency:      "Daily (10-20 minutes)",
		Rationale:      "Mindfulness improves emotional regulation and reduces stress",
	},
}

var conditionSelfCare = map[scoring.Questionnaire][]SelfCareRecommendation{
	scoring.Depression: {
		{
			Category:       CategorySocial,
			Priority:       "high",
			Recommendation: "Maintain social connections and engage in meaningful activities",
			Frequency:      "Weekly",
			Rationale:      "Social support and behavioral activation are key for depression recovery",
		},
		{
			Category:       CategoryLifestyle,
			Priority:       "medium",
			Recommendation: "Exposure to natural light, especially in the morning",
			Frequency:      "Daily",
			Rationale:      "Light exposure helps regulate mood and circadian rhythms",
		},
	},
	scoring.Anxiety: {
		{
			Category:       CategoryEmotional,
			Priority:       "high",
			Recommendation: "Practice deep breathing and progressive muscle relaxation",
			Frequency:      "Daily",
			Rationale:      "Relaxation techniques help manage anxiety symptoms and prevent escalation",
		},
		{
			Category:       CategoryLifestyle,
			Priority:       "medium",
			Recommendation: "Limit caffeine and alcohol intake",
			Frequency:      "Daily",
			Rationale:      "These substances can exacerbate anxiety symptoms",
		},
	},
}

var warningSigns = map[scoring.Questionnaire][]string{
	scoring.Depression: {"Increased hopelessness or suicidal thoughts", "Significant mood deterioration", "Social withdrawal"},
	scoring.Anxiety:    {"Increased panic attacks", "Avoidance behaviors increasing"},
	scoring.Bipolar:    {"Mood episode onset", "Sleep pattern changes"},
}

var conditionMetrics = map[scoring.Questionnaire][]SuccessMetric{
	scoring.Depression: {{
		Metric:            "PHQ-9 score improvement",
		TargetImprovement: "Score reduction to below 10 (mild range)",
		Timeframe:         "8-12 weeks",
		MeasurementMethod: "PHQ-9 questionnaire administered biweekly",
	}},
	scoring.Anxiety: {{
		Metric:            "GAD-7 score improvement",
		TargetImprovement: "Score reduction to below 8 (mild range)",
		Timeframe:         "6-10 weeks",
		MeasurementMethod: "GAD-7 questionnaire administered biweekly",
	}},
}

func topCondition(p *insights.ClinicalProfile) *insights.ClinicalInsight {
	if len(p.PrimaryConditions) == 0 {
		return nil
	}
	return &p.PrimaryConditions[0]
}

func lowerName(ci *insights.ClinicalInsight) string {
	return strings.ToLower(ci.Condition.DisplayName())
}

// DetermineOverallStrategy picks the first matching strategy: critical risk,
// high risk, several primary conditions, a single primary condition, then
// preventive care.
func DetermineOverallStrategy(p *insights.ClinicalProfile) string {
	switch {
	case p.OverallRiskLevel == insights.RiskCritical:
		return "Crisis stabilization followed by intensive therapeutic intervention with coordinated care team approach"
	case p.OverallRiskLevel == insights.RiskHigh:
		return "Immediate therapeutic intervention with frequent monitoring and structured treatment approach"
	case len(p.PrimaryConditions) > 2:
		return "Integrated treatment approach addressing multiple conditions with prioritized intervention sequence"
	case len(p.PrimaryConditions) == 1:
		return fmt.Sprintf("Focused %s treatment using evidence-based approaches with gradual skill building", lowerName(&p.PrimaryConditions[0]))
	}
	return "Preventive intervention with skill-building and monitoring approach"
}

// CreatePhaseBasedPlan returns the treatment phases numbered from 1. A crisis
// phase leads when overall risk is high or critical.
func CreatePhaseBasedPlan(p *insights.ClinicalProfile) []Phase {
	var phases []Phase
	if p.OverallRiskLevel == insights.RiskCritical || p.OverallRiskLevel == insights.RiskHigh {
		phases = append(phases, Phase{
			Name:            "Crisis Stabilization and Safety",
			Duration:        "2-4 weeks",
			Goals:           []string{"Ensure immediate safety", "Stabilize acute symptoms", "Establish therapeutic rapport", "Create safety plan"},
			Approaches:      []string{"Crisis Intervention", "Safety Planning", "Supportive Therapy"},
			Focus:           []string{"Safety", "Symptom stabilization", "Crisis management"},
			SuccessCriteria: []string{"No safety concerns", "Reduced acute distress", "Engagement in treatment", "Functioning safety plan"},
		})
	}

	phases = append(phases, corePhase(topCondition(p)))

	phases = append(phases, Phase{
		Name:            "Integration and Relapse Prevention",
		Duration:        "4-8 weeks",
		Goals:           []string{"Consolidate therapeutic gains", "Develop long-term coping strategies", "Plan for maintenance and follow-up", "Address remaining secondary issues"},
		Approaches:      []string{"Relapse Prevention", "Maintenance Therapy", "Skill Consolidation"},
		Focus:           []string{"Skill integration", "Long-term planning", "Maintenance strategies"},
		SuccessCriteria: []string{"Sustained symptom improvement", "Independent coping skills", "Functional improvement maintained", "Comprehensive relapse prevention plan"},
	})

	for i := range phases {
		phases[i].Phase = i + 1
	}
	return phases
}

func corePhase(ci *insights.ClinicalInsight) Phase {
	if ci == nil {
		return Phase{
			Name:            "Core Therapeutic Treatment",
			Duration:        defaultCoreDuration,
			Goals:           []string{"Symptom reduction", "Skill development"},
			Approaches:      []string{"Cognitive Behavioral Therapy (CBT)"},
			Focus:           []string{"Symptom management"},
			SuccessCriteria: []string{"Reduced symptoms"},
		}
	}
	focus := ci.TherapeuticFocus
	if len(focus) > 3 {
		focus = focus[:3]
	}
	return Phase{
		Name:     fmt.Sprintf("Core %s Treatment", ci.Condition.DisplayName()),
		Duration: coreDuration(ci),
		Goals: []string{
			fmt.Sprintf("Reduce %s symptoms", lowerName(ci)),
			"Develop effective coping strategies",
			"Improve daily functioning",
			"Build therapeutic skills",
		},
		Approaches: append([]string(nil), focus...),
		Focus: []string{
			"Symptom identification and management",
			"Skill building and practice",
			"Functional improvement",
			"Therapeutic relationship building",
		},
		SuccessCriteria: []string{
			"Significant symptom reduction",
			"Improved coping skills",
			"Enhanced daily functioning",
			"Strong therapeutic alliance",
		},
	}
}

func coreDuration(ci *insights.ClinicalInsight) string {
	if ci == nil {
		return defaultCoreDuration
	}
	if d, ok := coreDurations[ci.ClinicalLevel]; ok {
		return d
	}
	return defaultCoreDuration
}

// orderedSet collects strings once each in insertion order.
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func (s *orderedSet) add(v string) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[v] {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}

func (s *orderedSet) list() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items
}

func GenerateTherapistCriteria(p *insights.ClinicalProfile) TherapistCriteria {
	var expertise, specializations, areas orderedSet
	for _, ci := range p.PrimaryConditions {
		tp, ok := therapistProfiles[ci.Condition]
		if !ok {
			expertise.add("General Therapy")
			areas.add("General Mental Health")
			continue
		}
		expertise.add(tp.expertise)
		specializations.add(tp.specialization)
		areas.add(tp.area)
	}
	return TherapistCriteria{
		Expertise:              expertise.list(),
		IllnessSpecializations: specializations.list(),
		AreasOfExpertise:       areas.list(),
	}
}

func sessionFrequency(p *insights.ClinicalProfile) SessionFrequency {
	switch p.OverallRiskLevel {
	case insights.RiskCritical:
		return FrequencyMultipleWeekly
	case insights.RiskHigh:
		return FrequencyWeekly
	}
	for _, ci := range p.PrimaryConditions {
		if ci.ClinicalLevel == scoring.LevelSevere || ci.ClinicalLevel == scoring.LevelModerate {
			return FrequencyWeekly
		}
	}
	return FrequencyBiweekly
}

func requiresPsychiatricEvaluation(p *insights.ClinicalProfile) bool {
	if p.OverallRiskLevel == insights.RiskCritical || p.OverallRiskLevel == insights.RiskHigh {
		return true
	}
	for _, ci := range p.PrimaryConditions {
		if medicationIndicated[ci.Condition] && (ci.ClinicalLevel == scoring.LevelSevere || ci.ClinicalLevel == scoring.LevelExtreme) {
			return true
		}
	}
	return false
}

// GenerateInterventionRecommendations returns interventions sorted by
// ascending priority: crisis intervention (1), therapy for the top condition
// (2) and psychiatric evaluation (3), each only when indicated.
func GenerateInterventionRecommendations(p *insights.ClinicalProfile) []InterventionRecommendation {
	var out []InterventionRecommendation

	if p.OverallRiskLevel == insights.RiskCritical {
		out = append(out, InterventionRecommendation{
			Type:        InterventionCrisis,
			Priority:    1,
			Urgency:     insights.UrgencyImmediate,
			Description: "Immediate crisis intervention and safety assessment",
			Provider:    "Crisis intervention specialist or emergency services",
			Duration:    "Immediate",
			Frequency:   "As needed",
			Goals:       []string{"Ensure safety", "Stabilize crisis", "Connect to ongoing care"},
		})
	}

	if top := topCondition(p); top != nil {
		out = append(out, InterventionRecommendation{
			Type:        InterventionTherapy,
			Priority:    2,
			Urgency:     insights.UrgencyForRisk(top.RiskLevel),
			Description: fmt.Sprintf("Individual therapy for %s", lowerName(top)),
			Provider:    "Licensed mental health professional",
			Duration:    coreDuration(top),
			Frequency:   string(sessionFrequency(p)),
			Goals:       append([]string(nil), top.TherapeuticFocus...),
		})
	}

	if requiresPsychiatricEvaluation(p) {
		urgency := insights.UrgencyHigh
		if p.OverallRiskLevel == insights.RiskCritical {
			urgency = insights.UrgencyImmediate
		}
		out = append(out, InterventionRecommendation{
			Type:        InterventionPsychiatricEval,
			Priority:    3,
			Urgency:     urgency,
			Description: "Psychiatric evaluation for medication management",
			Provider:    "Psychiatrist",
			Duration:    "1-2 sessions",
			Frequency:   "Initial evaluation, then as needed",
			Goals:       []string{"Medication assessment", "Symptom management", "Treatment coordination"},
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

func GenerateSelfCareRecommendations(p *insights.ClinicalProfile) []SelfCareRecommendation {
	out := append([]SelfCareRecommendation(nil), universalSelfCare...)
	for _, ci := range p.PrimaryConditions {
		out = append(out, conditionSelfCare[ci.Condition]...)
	}
	return out
}

func CreateMonitoringPlan(p *insights.ClinicalProfile) MonitoringPlan {
	schedule := "Monthly for first 3 months, then quarterly"
	switch p.OverallRiskLevel {
	case insights.RiskCritical:
		schedule = "Weekly for first month, then biweekly"
	case insights.RiskHigh:
		schedule = "Biweekly for first 6 weeks, then monthly"
	}

	var signs orderedSet
	for _, ci := range p.PrimaryConditions {
		for _, s := range warningSigns[ci.Condition] {
			signs.add(s)
		}
	}

	return MonitoringPlan{
		AssessmentSchedule: schedule,
		KeyMetrics: []string{
			"Symptom severity scores",
			"Functional improvement measures",
			"Quality of life indicators",
			"Treatment adherence",
			"Safety concerns",
		},
		WarningSigns: signs.list(),
		ReviewPoints: []string{
			"After 4 weeks of treatment",
			"At 8-week mark",
			"At 3-month mark",
			"Every 6 months thereafter",
		},
	}
}

// CreateContingencyPlan is the same for every profile.
func CreateContingencyPlan(_ *insights.ClinicalProfile) ContingencyPlan {
	return ContingencyPlan{
		CrisisContacts: []string{
			"Assigned therapist",
			"Crisis hotline: 988 (Suicide & Crisis Lifeline)",
			"Emergency services: 911",
			"Crisis text line: Text HOME to 741741",
		},
		EmergencySteps: []string{
			"Recognize warning signs early",
			"Use learned coping strategies",
			"Contact support person or therapist",
			"If immediate danger, call 911 or go to emergency room",
			"Follow up with treatment team within 24 hours",
		},
		EscalationTriggers: []string{
			"Suicidal or self-harm thoughts",
			"Substance use relapse",
			"Severe symptom deterioration",
			"Loss of functioning",
			"Treatment non-adherence",
			"Social support breakdown",
		},
		SafetyResources: []string{
			"Personal safety plan",
			"Crisis intervention services",
			"Mobile crisis teams",
			"Peer support networks",
			"Online mental health resources",
		},
	}
}

func DefineSuccessMetrics(p *insights.ClinicalProfile) []SuccessMetric {
	out := []SuccessMetric{
		{
			Metric:            "Overall symptom severity reduction",
			TargetImprovement: "50% reduction in primary symptoms",
			Timeframe:         "12 weeks",
			MeasurementMethod: "Standardized assessment tools and clinical interviews",
		},
		{
			Metric:            "Functional improvement",
			TargetImprovement: "Return to baseline functioning in work/school and relationships",
			Timeframe:         "16 weeks",
			MeasurementMethod: "Functional assessment scales and self-report",
		},
	}
	for _, ci := range p.PrimaryConditions {
		out = append(out, conditionMetrics[ci.Condition]...)
	}
	return out
}
