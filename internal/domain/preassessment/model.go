package preassessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/mentara/mentara/internal/domain/insights"
	"github.com/mentara/mentara/internal/domain/scoring"
)

// Method records how the answer vector was collected.
type Method string

const (
	MethodChecklist Method = "CHECKLIST"
	MethodChatbot   Method = "CHATBOT"
)

// PreAssessment is a scored intake questionnaire for one client.
type PreAssessment struct {
	ID             uuid.UUID                        `json:"id"`
	ClientID       string                           `json:"clientId"`
	Method         Method                           `json:"method"`
	Answers        []int                            `json:"answers"`
	Scores         scoring.Scores                   `json:"scores"`
	SeverityLevels map[scoring.Questionnaire]string `json:"severityLevels"`
	Predictions    map[scoring.Disorder]bool        `json:"predictions"`
	AIEstimate     map[string]bool                  `json:"aiEstimate,omitempty"`
	Profile        *insights.ClinicalProfile        `json:"clinicalProfile,omitempty"`
	CreatedAt      time.Time                        `json:"createdAt"`
	UpdatedAt      time.Time                        `json:"updatedAt"`
}

// SubmitInput is a complete answer vector for a client.
type SubmitInput struct {
	ClientID   string
	Answers    []int
	AIEstimate map[string]bool
	Method     Method
}

// ChatInput carries answers gathered by the conversational intake, keyed by
// questionnaire display name, plus structured "<topic>_q<N>" answers.
type ChatInput struct {
	ClientID   string
	Collected  map[string][]int
	Structured map[string]int
	AIEstimate map[string]bool
}

// ScoredEvent is published after a pre-assessment is stored.
type ScoredEvent struct {
	PreAssessmentID  uuid.UUID                 `json:"preAssessmentId"`
	ClientID         string                    `json:"clientId"`
	Method           Method                    `json:"method"`
	SeverityByScale  map[string]string         `json:"severityByScale"`
	Predictions      map[scoring.Disorder]bool `json:"predictions"`
	OverallRiskLevel insights.RiskLevel        `json:"overallRiskLevel"`
}

const EventScored = "pre_assessment.scored"

// QuestionnaireInfo describes one questionnaire for catalogue listings.
type QuestionnaireInfo struct {
	Name              string                 `json:"name"`
	ScaleAbbreviation string                 `json:"scaleAbbreviation"`
	Range             *scoring.IndexRange    `json:"range,omitempty"`
	Bands             []scoring.SeverityBand `json:"bands"`
}
