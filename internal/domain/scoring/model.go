package scoring

import "errors"

const (
	// TotalItems is the length of the canonical pre-assessment answer vector.
	TotalItems = 201
	// Unanswered marks an item the client skipped.
	Unanswered = -1

	SeverityUnknownQuestionnaire = "Unknown questionnaire"
	SeverityUnknown              = "Unknown severity"
)

// ErrInvalidInput is returned when an answer vector violates a precondition.
var ErrInvalidInput = errors.New("invalid input")

// QuestionnaireScore is the total score of one questionnaire and the label
// of the severity band it falls into.
type QuestionnaireScore struct {
	Score     int            `json:"score"`
	Severity  string         `json:"severity"`
	Subscales map[string]int `json:"subscales,omitempty"`
}

// Scores maps each scored questionnaire to its result. Encoded as JSON the
// keys are display names.
type Scores map[Questionnaire]QuestionnaireScore

// Summary flattens Scores into two parallel maps.
type Summary struct {
	Scores         map[Questionnaire]int    `json:"scores"`
	SeverityLevels map[Questionnaire]string `json:"severityLevels"`
}

// SeverityBand is an inclusive score range with its label and the
// ClinicalLevel the label stands for.
type SeverityBand struct {
	Key   string        `json:"key"`
	Min   int           `json:"min"`
	Max   int           `json:"max"`
	Label string        `json:"label"`
	Level ClinicalLevel `json:"level"`
}

func (b SeverityBand) contains(score int) bool {
	return score >= b.Min && score <= b.Max
}

// IndexRange locates a questionnaire inside the flat answer vector.
// Start and End are both inclusive.
type IndexRange struct {
	Start     int `json:"startIndex"`
	End       int `json:"endIndex"`
	ItemCount int `json:"itemCount"`
}

type ResultStatus string

const (
	StatusOK      ResultStatus = "ok"
	StatusWarning ResultStatus = "warning"
)

type IssueKind string

const (
	IssueUnknownQuestionnaire IssueKind = "unknown_questionnaire"
	IssueUnmappedAnswer       IssueKind = "unmapped_answer"
	IssueNoSeverityBand       IssueKind = "no_severity_band"
)

// Issue describes input that the default scorer silently tolerated.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Index   int       `json:"index"`
	Code    int       `json:"code"`
	Message string    `json:"message"`
}

// Result is the strict-mode outcome of scoring a questionnaire. Score is
// always identical to what the default scorer returns.
type Result struct {
	Status ResultStatus       `json:"status"`
	Score  QuestionnaireScore `json:"score"`
	Issues []Issue            `json:"issues,omitempty"`
}
