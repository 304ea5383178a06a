package treatment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mentara/mentara/internal/domain/insights"
)

// ErrPlanGeneration hides the cause of a failed synthesis from callers. The
// cause is logged.
var ErrPlanGeneration = errors.New("failed to generate personalized treatment plan")

// Synthesizer assembles treatment plans from clinical profiles.
type Synthesizer struct {
	logger zerolog.Logger
}

func NewSynthesizer(logger zerolog.Logger) *Synthesizer {
	return &Synthesizer{logger: logger.With().Str("component", "treatment").Logger()}
}

// GeneratePersonalizedTreatmentPlan runs every plan section against profile.
// Any failure, including a panic in a section, is returned as ErrPlanGeneration.
func (s *Synthesizer) GeneratePersonalizedTreatmentPlan(ctx context.Context, profile *insights.ClinicalProfile) (plan *Plan, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(fmt.Errorf("panic: %v", r))
			plan, err = nil, ErrPlanGeneration
		}
	}()

	if profile == nil {
		s.fail(errors.New("nil clinical profile"))
		return nil, ErrPlanGeneration
	}
	if err := ctx.Err(); err != nil {
		s.fail(err)
		return nil, ErrPlanGeneration
	}

	return &Plan{
		OverallStrategy:             DetermineOverallStrategy(profile),
		PhaseBasedPlan:              CreatePhaseBasedPlan(profile),
		TherapistCriteria:           GenerateTherapistCriteria(profile),
		InterventionRecommendations: GenerateInterventionRecommendations(profile),
		SelfCareRecommendations:     GenerateSelfCareRecommendations(profile),
		MonitoringPlan:              CreateMonitoringPlan(profile),
		ContingencyPlan:             CreateContingencyPlan(profile),
		SuccessMetrics:              DefineSuccessMetrics(profile),
	}, nil
}

func (s *Synthesizer) fail(cause error) {
	s.logger.Error().Err(cause).Msg("treatment plan generation failed")
}
