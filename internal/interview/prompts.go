package interview

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhishek622/interviewPrep/pkg/model"
)

// QuestionCount is how many questions a generation request asks for.
const QuestionCount = 5

const questionSystemPrompt = `You are a professional interviewer. Generate interview questions in JSON format.
Each question must be an object with a "question" property, an optional "hint" property and an "answer" property.
The "answer" must be a comprehensive example answer a strong candidate would give.`

func buildQuestionPrompt(jobData, interviewType string) (system, user string) {
	user = fmt.Sprintf(`Generate %d %s interview questions based on this job description: "%s".
Include hints for technical questions and model answers for all questions.
Format the response as a JSON array.`, QuestionCount, interviewType, jobData)
	return questionSystemPrompt, user
}

const evaluationSystemPrompt = `You are an interview expert who evaluates answers. Analyze the response based on the following criteria:
1. Relevance (0-25): How well the answer addresses the question
2. Completeness (0-25): Whether all aspects are covered
3. Clarity (0-25): How clearly ideas are expressed
4. Specificity (0-25): Level of detail and examples

Provide feedback in JSON format with the following structure:
{
  "scores": {
    "relevance": number,
    "completeness": number,
    "clarity": number,
    "specificity": number
  },
  "feedback": {
    "strengths": string[],
    "improvements": string[]
  },
  "overallScore": number,
  "suggestions": string
}`

func buildEvaluationPrompt(question, modelAnswer, userAnswer string) (system, user string) {
	user = fmt.Sprintf("Question: %s\n\nModel Answer: %s\n\nUser Answer: %s\n\nProvide a detailed evaluation of the answer.",
		question, modelAnswer, userAnswer)
	return evaluationSystemPrompt, user
}

const readinessSystemPrompt = `You are an expert interview coach who assesses candidates' interview readiness.
Analyze their performance across all questions and provide a comprehensive assessment in JSON format:
{
  "overallScore": number,
  "categoryScores": {
    "relevance": number,
    "completeness": number,
    "clarity": number,
    "specificity": number
  },
  "strengths": string[],
  "improvementAreas": string[],
  "recommendations": string[],
  "readinessLevel": "High" | "Medium" | "Low",
  "confidenceScore": number,
  "nextSteps": string[]
}`

// buildReadinessPrompt fails only when an evaluation cannot be encoded as
// JSON, e.g. a NaN score supplied by a Go caller.
func buildReadinessPrompt(questions []model.Question, answers []string, evaluations []model.Evaluation) (system, user string, err error) {
	var b strings.Builder
	b.WriteString("Please assess the candidate's interview readiness based on these Q&A pairs and their evaluations:\n\n")
	for i, q := range questions {
		eval, err := json.Marshal(evaluations[i])
		if err != nil {
			return "", "", fmt.Errorf("evaluation %d: %w", i+1, err)
		}
		fmt.Fprintf(&b, "Question %d: %s\n", i+1, q.Question)
		fmt.Fprintf(&b, "Model Answer: %s\n", q.Answer)
		fmt.Fprintf(&b, "Candidate's Answer: %s\n", answers[i])
		fmt.Fprintf(&b, "Evaluation: %s\n\n", eval)
	}
	return readinessSystemPrompt, b.String(), nil
}
