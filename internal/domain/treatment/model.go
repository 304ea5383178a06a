package treatment

import "github.com/mentara/mentara/internal/domain/insights"

// Plan is a personalized treatment plan derived from a clinical profile.
type Plan struct {
	OverallStrategy             string                       `json:"overallStrategy"`
	PhaseBasedPlan              []Phase                      `json:"phaseBasedPlan"`
	TherapistCriteria           TherapistCriteria            `json:"therapistCriteria"`
	InterventionRecommendations []InterventionRecommendation `json:"interventionRecommendations"`
	SelfCareRecommendations     []SelfCareRecommendation     `json:"selfCareRecommendations"`
	MonitoringPlan              MonitoringPlan               `json:"monitoringPlan"`
	ContingencyPlan             ContingencyPlan              `json:"contingencyPlan"`
	SuccessMetrics              []SuccessMetric              `json:"successMetrics"`
}

type Phase struct {
	Phase           int      `json:"phase"`
	Name            string   `json:"name"`
	Duration        string   `json:"duration"`
	Goals           []string `json:"goals"`
	Approaches      []string `json:"approaches"`
	Focus           []string `json:"focus"`
	SuccessCriteria []string `json:"successCriteria"`
}

// TherapistCriteria is used to match a client with therapists. Each list is
// deduplicated and keeps first-insertion order.
type TherapistCriteria struct {
	Expertise              []string `json:"expertise"`
	IllnessSpecializations []string `json:"illnessSpecializations"`
	AreasOfExpertise       []string `json:"areasOfExpertise"`
}

type InterventionType string

const (
	InterventionTherapy         InterventionType = "therapy"
	InterventionPsychiatricEval InterventionType = "psychiatric_eval"
	InterventionCrisis          InterventionType = "crisis_intervention"
)

type SessionFrequency string

const (
	FrequencyMultipleWeekly SessionFrequency = "multiple_weekly"
	FrequencyWeekly         SessionFrequency = "weekly"
	FrequencyBiweekly       SessionFrequency = "biweekly"
)

type InterventionRecommendation struct {
	Type        InterventionType `json:"type"`
	Priority    int              `json:"priority"`
	Urgency     insights.Urgency `json:"urgency"`
	Description string           `json:"description"`
	Provider    string           `json:"provider"`
	Duration    string           `json:"duration"`
	Frequency   string           `json:"frequency"`
	Goals       []string         `json:"goals"`
}

type SelfCareCategory string

const (
	CategoryLifestyle   SelfCareCategory = "lifestyle"
	CategoryMindfulness SelfCareCategory = "mindfulness"
	CategorySocial      SelfCareCategory = "social"
	CategoryPhysical    SelfCareCategory = "physical"
	CategoryEmotional   SelfCareCategory = "emotional"
)

type SelfCareRecommendation struct {
	Category       SelfCareCategory `json:"category"`
	Priority       string           `json:"priority"`
	Recommendation string           `json:"recommendation"`
	Frequency      string           `json:"frequency"`
	Rationale      string           `json:"rationale"`
}

type MonitoringPlan struct {
	AssessmentSchedule string   `json:"assessmentSchedule"`
	KeyMetrics         []string `json:"keyMetrics"`
	WarningSigns       []string `json:"warningSigns"`
	ReviewPoints       []string `json:"reviewPoints"`
}

type ContingencyPlan struct {
	CrisisContacts     []string `json:"crisisContacts"`
	EmergencySteps     []string `json:"emergencySteps"`
	EscalationTriggers []string `json:"escalationTriggers"`
	SafetyResources    []string `json:"safetyResources"`
}

type SuccessMetric struct {
	Metric            string `json:"metric"`
	TargetImprovement string `json:"targetImprovement"`
	Timeframe         string `json:"timeframe"`
	MeasurementMethod string `json:"measurementMethod"`
}
