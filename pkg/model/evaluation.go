package model

// RubricScores holds the four 0-25 rubric sub-scores.
type RubricScores struct {
	Relevance    float64 `json:"relevance"`
	Completeness float64 `json:"completeness"`
	Clarity      float64 `json:"clarity"`
	Specificity  float64 `json:"specificity"`
}

// Sum returns the total of the four sub-scores.
func (s RubricScores) Sum() float64 {
	return s.Relevance + s.Completeness + s.Clarity + s.Specificity
}

type Feedback struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// Evaluation is the model's judgement of a single candidate answer.
type Evaluation struct {
	Scores       RubricScores `json:"scores"`
	Feedback     Feedback     `json:"feedback"`
	OverallScore float64      `json:"overallScore"`
	Suggestions  string       `json:"suggestions"`
}

type CheckAnswerReq struct {
	Question    string `json:"question"`
	ModelAnswer string `json:"modelAnswer"`
	UserAnswer  string `json:"userAnswer"`
}

type CheckAnswerRes struct {
	Evaluation Evaluation `json:"evaluation"`
}
