package insights

import "github.com/mentara/mentara/internal/domain/scoring"

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

type Urgency string

const (
	UrgencyImmediate   Urgency = "immediate"
	UrgencyWithinWeek  Urgency = "within_week"
	UrgencyWithinMonth Urgency = "within_month"
	UrgencyHigh        Urgency = "high"
	UrgencyModerate    Urgency = "moderate"
	UrgencyRoutine     Urgency = "routine"
)

type RiskFactorType string

const (
	RiskSuicide        RiskFactorType = "suicide"
	RiskSubstanceAbuse RiskFactorType = "substance_abuse"
	RiskMania          RiskFactorType = "mania"
)

// ClinicalInsight is the interpretation of one scored questionnaire.
type ClinicalInsight struct {
	Condition        scoring.Questionnaire `json:"condition"`
	Severity         string                `json:"severity"`
	Score            int                   `json:"score"`
	ClinicalLevel    scoring.ClinicalLevel `json:"clinicalLevel"`
	Confidence       int                   `json:"confidence"`
	RiskLevel        RiskLevel             `json:"riskLevel"`
	Priority         int                   `json:"priority"`
	KeyIndicators    []string              `json:"keyIndicators"`
	TherapeuticFocus []string              `json:"therapeuticFocus"`
	Recommendations  []string              `json:"recommendations"`
}

type RiskFactor struct {
	Type       RiskFactorType `json:"type"`
	Level      RiskLevel      `json:"level"`
	Indicators []string       `json:"indicators"`
	Urgency    Urgency        `json:"urgency"`
}

type TreatmentRecommendation struct {
	Priority          int      `json:"priority"`
	Condition         string   `json:"condition"`
	Approach          []string `json:"approach"`
	Specialization    []string `json:"specialization"`
	Urgency           Urgency  `json:"urgency"`
	EstimatedDuration string   `json:"estimatedDuration"`
	Goals             []string `json:"goals"`
}

// ClinicalProfile ranks the conditions found in a pre-assessment and
// summarises the risk they carry.
type ClinicalProfile struct {
	PrimaryConditions        []ClinicalInsight         `json:"primaryConditions"`
	SecondaryConditions      []ClinicalInsight         `json:"secondaryConditions"`
	RiskFactors              []RiskFactor              `json:"riskFactors"`
	OverallRiskLevel         RiskLevel                 `json:"overallRiskLevel"`
	TherapeuticPriorities    []string                  `json:"therapeuticPriorities"`
	TreatmentRecommendations []TreatmentRecommendation `json:"treatmentRecommendations"`
	Summary                  string                    `json:"summary"`
}
