package model

type ReadinessLevel string

const (
	ReadinessHigh   ReadinessLevel = "High"
	ReadinessMedium ReadinessLevel = "Medium"
	ReadinessLow    ReadinessLevel = "Low"
)

// InterviewType labels the style of generated questions. Any non-empty label
// is accepted by the API; these are the ones the terminal client offers.
type InterviewType string

const (
	InterviewTechnical   InterviewType = "technical"
	InterviewBehavioral  InterviewType = "behavioral"
	InterviewSituational InterviewType = "situational"
)

var InterviewTypes = []InterviewType{InterviewTechnical, InterviewBehavioral, InterviewSituational}

// ReadinessAssessment aggregates every answered question of a session.
type ReadinessAssessment struct {
	OverallScore     float64        `json:"overallScore"`
	CategoryScores   RubricScores   `json:"categoryScores"`
	Strengths        []string       `json:"strengths"`
	ImprovementAreas []string       `json:"improvementAreas"`
	Recommendations  []string       `json:"recommendations"`
	ReadinessLevel   ReadinessLevel `json:"readinessLevel"`
	ConfidenceScore  float64        `json:"confidenceScore"`
	NextSteps        []string       `json:"nextSteps"`
}

type AssessReadinessReq struct {
	Questions   []Question   `json:"questions"`
	Answers     []string     `json:"answers"`
	Evaluations []Evaluation `json:"evaluations"`
}

type AssessReadinessRes struct {
	Assessment ReadinessAssessment `json:"assessment"`
}
