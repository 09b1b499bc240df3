package model

// Question is one generated interview question with its reference answer.
type Question struct {
	Question string `json:"question"`
	Hint     string `json:"hint,omitempty"`
	Answer   string `json:"answer"`
}

type GenerateQuestionsReq struct {
	JobData string `json:"jobData"`
	Type    string `json:"type"`
}

type GenerateQuestionsRes struct {
	Questions []Question `json:"questions"`
}
