package treatment

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mentara/mentara/internal/domain/insights"
	"github.com/mentara/mentara/internal/domain/scoring"
)

func insight(q scoring.Questionnaire, level scoring.ClinicalLevel, risk insights.RiskLevel) insights.ClinicalInsight {
	return insights.ClinicalInsight{
		Condition:        q,
		ClinicalLevel:    level,
		RiskLevel:        risk,
		TherapeuticFocus: []string{"focus a", "focus b", "focus c", "focus d"},
	}
}

func criticalProfile() *insights.ClinicalProfile {
	return &insights.ClinicalProfile{
		OverallRiskLevel: insights.RiskCritical,
		PrimaryConditions: []insights.ClinicalInsight{
			insight(scoring.Depression, scoring.LevelExtreme, insights.RiskCritical),
			insight(scoring.Anxiety, scoring.LevelSevere, insights.RiskHigh),
		},
	}
}

func lowProfile() *insights.ClinicalProfile {
	return &insights.ClinicalProfile{
		OverallRiskLevel: insights.RiskLow,
		PrimaryConditions: []insights.ClinicalInsight{
			insight(scoring.Insomnia, scoring.LevelMild, insights.RiskLow),
		},
	}
}

func TestCreatePhaseBasedPlan_Critical(t *testing.T) {
	phases := CreatePhaseBasedPlan(criticalProfile())
	if len(phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(phases))
	}
	if phases[0].Name != "Crisis Stabilization and Safety" {
		t.Errorf("expected crisis phase first, got %q", phases[0].Name)
	}
	for i, p := range phases {
		if p.Phase != i+1 {
			t.Errorf("phase %d numbered %d", i, p.Phase)
		}
	}
	core := phases[1]
	if core.Name != "Core Depression Treatment" || core.Duration != "20-24 weeks" {
		t.Errorf("unexpected core phase: %+v", core)
	}
	if len(core.Approaches) != 3 {
		t.Errorf("expected 3 approaches from therapeutic focus, got %v", core.Approaches)
	}
	if phases[2].Name != "Integration and Relapse Prevention" {
		t.Errorf("unexpected last phase %q", phases[2].Name)
	}
}

func TestCreatePhaseBasedPlan_Low(t *testing.T) {
	phases := CreatePhaseBasedPlan(lowProfile())
	if len(phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(phases))
	}
	if phases[0].Phase != 1 || phases[0].Name != "Core Insomnia Treatment" {
		t.Errorf("expected core phase first, got %+v", phases[0])
	}
	if phases[0].Duration != "8-12 weeks" {
		t.Errorf("expected mild duration, got %q", phases[0].Duration)
	}
}

func TestCreatePhaseBasedPlan_NoPrimary(t *testing.T) {
	phases := CreatePhaseBasedPlan(&insights.ClinicalProfile{OverallRiskLevel: insights.RiskLow})
	if phases[0].Name != "Core Therapeutic Treatment" || phases[0].Duration != "12-16 weeks" {
		t.Errorf("unexpected default core phase: %+v", phases[0])
	}
}

func TestDetermineOverallStrategy(t *testing.T) {
	three := &insights.ClinicalProfile{
		OverallRiskLevel: insights.RiskModerate,
		PrimaryConditions: []insights.ClinicalInsight{
			insight(scoring.OCD, scoring.LevelModerate, insights.RiskModerate),
			insight(scoring.Panic, scoring.LevelModerate, insights.RiskModerate),
			insight(scoring.Insomnia, scoring.LevelModerate, insights.RiskModerate),
		},
	}
	tests := []struct {
		name    string
		profile *insights.ClinicalProfile
		prefix  string
	}{
		{"critical", criticalProfile(), "Crisis stabilization"},
		{"high", &insights.ClinicalProfile{OverallRiskLevel: insights.RiskHigh, PrimaryConditions: three.PrimaryConditions}, "Immediate therapeutic intervention"},
		{"multiple", three, "Integrated treatment approach"},
		{"single", lowProfile(), "Focused insomnia treatment"},
		{"none", &insights.ClinicalProfile{OverallRiskLevel: insights.RiskLow}, "Preventive intervention"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineOverallStrategy(tt.profile)
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("got %q, want prefix %q", got, tt.prefix)
			}
		})
	}
}

func TestGenerateInterventionRecommendations_Critical(t *testing.T) {
	recs := GenerateInterventionRecommendations(criticalProfile())
	if len(recs) != 3 {
		t.Fatalf("expected 3 interventions, got %d", len(recs))
	}
	if recs[0].Type != InterventionCrisis {
		t.Errorf("expected crisis intervention first, got %s", recs[0].Type)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Priority > recs[i].Priority {
			t.Errorf("interventions not sorted by priority: %d before %d", recs[i-1].Priority, recs[i].Priority)
		}
	}
	therapy := recs[1]
	if therapy.Frequency != string(FrequencyMultipleWeekly) || therapy.Urgency != insights.UrgencyImmediate {
		t.Errorf("unexpected therapy entry: %+v", therapy)
	}
	if therapy.Description != "Individual therapy for depression" {
		t.Errorf("unexpected description %q", therapy.Description)
	}
	if recs[2].Urgency != insights.UrgencyImmediate {
		t.Errorf("expected immediate psychiatric evaluation, got %s", recs[2].Urgency)
	}
}

func TestGenerateInterventionRecommendations_Low(t *testing.T) {
	recs := GenerateInterventionRecommendations(lowProfile())
	if len(recs) != 1 {
		t.Fatalf("expected therapy only, got %+v", recs)
	}
	if recs[0].Type != InterventionTherapy || recs[0].Frequency != string(FrequencyBiweekly) || recs[0].Urgency != insights.UrgencyRoutine {
		t.Errorf("unexpected therapy entry: %+v", recs[0])
	}

	severe := &insights.ClinicalProfile{
		OverallRiskLevel:  insights.RiskModerate,
		PrimaryConditions: []insights.ClinicalInsight{insight(scoring.Anxiety, scoring.LevelSevere, insights.RiskModerate)},
	}
	recs = GenerateInterventionRecommendations(severe)
	if len(recs) != 2 || recs[1].Type != InterventionPsychiatricEval || recs[1].Urgency != insights.UrgencyHigh {
		t.Errorf("expected psychiatric evaluation for severe anxiety, got %+v", recs)
	}
}

func TestGenerateTherapistCriteria(t *testing.T) {
	p := &insights.ClinicalProfile{PrimaryConditions: []insights.ClinicalInsight{
		insight(scoring.Depression, scoring.LevelSevere, insights.RiskCritical),
		insight(scoring.Bipolar, scoring.LevelSevere, insights.RiskCritical),
		insight(scoring.Insomnia, scoring.LevelSevere, insights.RiskHigh),
		insight(scoring.Burnout, scoring.LevelSevere, insights.RiskHigh),
	}}
	c := GenerateTherapistCriteria(p)
	wantExpertise := []string{"Depression", "Bipolar", "General Therapy"}
	if strings.Join(c.Expertise, "|") != strings.Join(wantExpertise, "|") {
		t.Errorf("expertise = %v, want %v", c.Expertise, wantExpertise)
	}
	wantAreas := []string{"Mood Disorders", "General Mental Health"}
	if strings.Join(c.AreasOfExpertise, "|") != strings.Join(wantAreas, "|") {
		t.Errorf("areas = %v, want %v", c.AreasOfExpertise, wantAreas)
	}
	if len(c.IllnessSpecializations) != 2 {
		t.Errorf("expected 2 specializations, got %v", c.IllnessSpecializations)
	}
}

func TestGenerateSelfCareAndMetrics(t *testing.T) {
	p := criticalProfile()
	if got := len(GenerateSelfCareRecommendations(p)); got != 7 {
		t.Errorf("expected 3 universal plus 4 condition self-care items, got %d", got)
	}
	if got := len(DefineSuccessMetrics(p)); got != 4 {
		t.Errorf("expected 4 success metrics, got %d", got)
	}
	if got := len(GenerateSelfCareRecommendations(lowProfile())); got != 3 {
		t.Errorf("expected universal self-care only, got %d", got)
	}
}

func TestCreateMonitoringPlan(t *testing.T) {
	m := CreateMonitoringPlan(criticalProfile())
	if m.AssessmentSchedule != "Weekly for first month, then biweekly" {
		t.Errorf("unexpected schedule %q", m.AssessmentSchedule)
	}
	if len(m.WarningSigns) != 5 || len(m.KeyMetrics) != 5 || len(m.ReviewPoints) != 4 {
		t.Errorf("unexpected monitoring plan: %+v", m)
	}
	if got := CreateMonitoringPlan(lowProfile()).WarningSigns; len(got) != 0 {
		t.Errorf("expected no warning signs for insomnia, got %v", got)
	}
}

func TestGeneratePersonalizedTreatmentPlan(t *testing.T) {
	s := NewSynthesizer(zerolog.Nop())
	plan, err := s.GeneratePersonalizedTreatmentPlan(context.Background(), criticalProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.PhaseBasedPlan[0].Name != "Crisis Stabilization and Safety" {
		t.Errorf("unexpected first phase %q", plan.PhaseBasedPlan[0].Name)
	}
	if len(plan.ContingencyPlan.CrisisContacts) != 4 {
		t.Errorf("expected 4 crisis contacts, got %d", len(plan.ContingencyPlan.CrisisContacts))
	}
}

func TestGeneratePersonalizedTreatmentPlan_Failure(t *testing.T) {
	var buf bytes.Buffer
	s := NewSynthesizer(zerolog.New(&buf))

	_, err := s.GeneratePersonalizedTreatmentPlan(context.Background(), nil)
	if !errors.Is(err, ErrPlanGeneration) {
		t.Fatalf("expected ErrPlanGeneration, got %v", err)
	}
	if err.Error() != "failed to generate personalized treatment plan" {
		t.Errorf("cause leaked into error: %v", err)
	}
	if !strings.Contains(buf.String(), "nil clinical profile") {
		t.Errorf("expected cause in log, got %s", buf.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.GeneratePersonalizedTreatmentPlan(ctx, lowProfile()); !errors.Is(err, ErrPlanGeneration) {
		t.Errorf("expected ErrPlanGeneration for cancelled context, got %v", err)
	}
}
