package preassessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mentara/mentara/internal/domain/insights"
	"github.com/mentara/mentara/internal/domain/scoring"
	"github.com/mentara/mentara/internal/domain/treatment"
	"github.com/mentara/mentara/internal/platform/messaging"
)

// PlanCache stores generated treatment plans. A miss is (false, nil).
type PlanCache interface {
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, evt messaging.Event) error
}

type Service struct {
	repo    Repository
	synth   *treatment.Synthesizer
	plans   PlanCache
	planTTL time.Duration
	events  EventPublisher
	logger  zerolog.Logger
}

func NewService(repo Repository, synth *treatment.Synthesizer, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		synth:  synth,
		logger: logger.With().Str("component", "preassessment").Logger(),
	}
}

// SetPlanCache enables caching of TreatmentPlan results for ttl.
func (s *Service) SetPlanCache(c PlanCache, ttl time.Duration) {
	s.plans = c
	s.planTTL = ttl
}

// SetPublisher enables the pre_assessment.scored event.
func (s *Service) SetPublisher(p EventPublisher) {
	s.events = p
}

// Evaluate scores a complete answer vector and derives predictions and a
// clinical profile without storing anything.
func Evaluate(answers []int, aiEstimate map[string]bool) (*PreAssessment, error) {
	scores, err := scoring.CalculateAllScoresFromFlatArray(answers)
	if err != nil {
		return nil, err
	}
	summary := scores.Summary()
	profile, err := insights.GenerateClinicalProfile(scores, aiEstimate)
	if err != nil {
		return nil, err
	}
	return &PreAssessment{
		Answers:        append([]int(nil), answers...),
		Scores:         scores,
		SeverityLevels: summary.SeverityLevels,
		Predictions:    scoring.CreateDisorderPredictionsFromSeverity(scoring.SeverityByScale(summary.SeverityLevels)),
		AIEstimate:     aiEstimate,
		Profile:        profile,
	}, nil
}

// Submit scores, stores and announces a client's pre-assessment.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*PreAssessment, error) {
	if in.ClientID == "" {
		return nil, fmt.Errorf("%w: client id is required", scoring.ErrInvalidInput)
	}
	p, err := Evaluate(in.Answers, in.AIEstimate)
	if err != nil {
		return nil, err
	}
	p.ClientID = in.ClientID
	p.Method = in.Method
	if p.Method == "" {
		p.Method = MethodChecklist
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("store pre-assessment: %w", err)
	}
	s.logger.Info().
		Str("pre_assessment_id", p.ID.String()).
		Str("client_id", p.ClientID).
		Str("overall_risk", string(p.Profile.OverallRiskLevel)).
		Int("primary_conditions", len(p.Profile.PrimaryConditions)).
		Msg("pre-assessment scored")

	s.publishScored(ctx, p)
	return p, nil
}

// SubmitChat assembles the answer vector from a chatbot conversation.
func (s *Service) SubmitChat(ctx context.Context, in ChatInput) (*PreAssessment, error) {
	return s.Submit(ctx, SubmitInput{
		ClientID:   in.ClientID,
		Answers:    scoring.BuildAnswerVector(in.Collected, in.Structured),
		AIEstimate: in.AIEstimate,
		Method:     MethodChatbot,
	})
}

// publishScored never fails the submission; the stored row is the source of truth.
func (s *Service) publishScored(ctx context.Context, p *PreAssessment) {
	if s.events == nil {
		return
	}
	evt, err := messaging.NewEvent(EventScored, ScoredEvent{
		PreAssessmentID:  p.ID,
		ClientID:         p.ClientID,
		Method:           p.Method,
		SeverityByScale:  scoring.SeverityByScale(p.SeverityLevels),
		Predictions:      p.Predictions,
		OverallRiskLevel: p.Profile.OverallRiskLevel,
	})
	if err == nil {
		err = s.events.Publish(ctx, evt)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("pre_assessment_id", p.ID.String()).Msg("publish scored event")
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*PreAssessment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*PreAssessment, int, error) {
	return s.repo.ListByClient(ctx, clientID, limit, offset)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.plans != nil {
		if err := s.plans.Delete(ctx, planKey(id)); err != nil {
			s.logger.Warn().Err(err).Str("pre_assessment_id", id.String()).Msg("evict cached plan")
		}
	}
	return nil
}

// Score runs the batch scorer over a complete answer vector.
func (s *Service) Score(ctx context.Context, answers []int) (scoring.Scores, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scoring.CalculateAllScoresFromFlatArray(answers)
}

// ScoreQuestionnaire scores one questionnaire by display name. In strict
// mode the result lists every tolerated input; otherwise Issues is empty.
func (s *Service) ScoreQuestionnaire(ctx context.Context, name string, answers []int, strict bool) (scoring.Result, error) {
	if err := ctx.Err(); err != nil {
		return scoring.Result{}, err
	}
	q, ok := scoring.ParseDisplayName(name)
	if !ok {
		res := scoring.Result{Status: scoring.StatusOK, Score: scoring.CalculateQuestionnaireScore(name, answers)}
		if strict {
			res.Status = scoring.StatusWarning
			res.Issues = []scoring.Issue{{
				Kind:    scoring.IssueUnknownQuestionnaire,
				Index:   -1,
				Message: fmt.Sprintf("unknown questionnaire %q", name),
			}}
		}
		return res, nil
	}
	if strict {
		return scoring.ScoreStrict(q, answers), nil
	}
	return scoring.Result{Status: scoring.StatusOK, Score: scoring.Score(q, answers)}, nil
}

// Predict maps severities keyed by scale abbreviation to disorder predictions.
func (s *Service) Predict(ctx context.Context, severityByScale map[string]string) (map[scoring.Disorder]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scoring.CreateDisorderPredictionsFromSeverity(severityByScale), nil
}

// Questionnaires lists every questionnaire with its layout and bands.
func (s *Service) Questionnaires() []QuestionnaireInfo {
	out := make([]QuestionnaireInfo, 0, len(scoring.All()))
	for _, q := range scoring.All() {
		info := QuestionnaireInfo{Name: q.DisplayName(), ScaleAbbreviation: q.ScaleAbbreviation()}
		if rng, ok := scoring.IndexRangeFor(q); ok {
			info.Range = &rng
		}
		if cfg, ok := scoring.ConfigFor(q); ok {
			info.Bands = cfg.Bands
		}
		out = append(out, info)
	}
	return out
}

func planKey(id uuid.UUID) string {
	return "treatment-plan:" + id.String()
}

// TreatmentPlan returns the plan for a stored pre-assessment, serving it
// from the plan cache when one is configured.
func (s *Service) TreatmentPlan(ctx context.Context, id uuid.UUID) (*treatment.Plan, error) {
	key := planKey(id)
	if s.plans != nil {
		var cached treatment.Plan
		hit, err := s.plans.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("plan cache read")
		}
		if hit {
			return &cached, nil
		}
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile := p.Profile
	if profile == nil {
		if profile, err = insights.GenerateClinicalProfile(p.Scores, p.AIEstimate); err != nil {
			return nil, err
		}
	}

	plan, err := s.synth.GeneratePersonalizedTreatmentPlan(ctx, profile)
	if err != nil {
		return nil, err
	}
	if s.plans != nil {
		if err := s.plans.Set(ctx, key, plan, s.planTTL); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("plan cache write")
		}
	}
	return plan, nil
}

// PlanFromProfile synthesizes a plan for a caller-supplied profile.
func (s *Service) PlanFromProfile(ctx context.Context, profile *insights.ClinicalProfile) (*treatment.Plan, error) {
	return s.synth.GeneratePersonalizedTreatmentPlan(ctx, profile)
}
