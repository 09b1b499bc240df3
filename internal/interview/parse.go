package interview

import (
	"fmt"
	"strings"

	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/tidwall/gjson"
)

// Shape tells how the model laid out a generated question list.
type Shape int

const (
	ShapeUnrecognized Shape = iota
	// ShapeArray is a bare JSON array of questions.
	ShapeArray
	// ShapeWrapped is an object whose "questions" field is the array.
	ShapeWrapped
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeWrapped:
		return "wrapped"
	default:
		return "unrecognized"
	}
}

// QuestionsOutput is the classified model output for question generation.
// Items is only meaningful when Shape is not ShapeUnrecognized.
type QuestionsOutput struct {
	Shape Shape
	Items gjson.Result
}

// ClassifyQuestions recognizes the two layouts models use when asked for a
// JSON array in JSON-object mode.
func ClassifyQuestions(raw string) QuestionsOutput {
	raw = cleanJSON(raw)
	if !gjson.Valid(raw) {
		return QuestionsOutput{Shape: ShapeUnrecognized}
	}
	root := gjson.Parse(raw)
	if root.IsArray() {
		return QuestionsOutput{Shape: ShapeArray, Items: root}
	}
	if root.IsObject() {
		if inner := root.Get("questions"); inner.IsArray() {
			return QuestionsOutput{Shape: ShapeWrapped, Items: inner}
		}
	}
	return QuestionsOutput{Shape: ShapeUnrecognized}
}

func parseQuestions(raw string) ([]model.Question, Shape, error) {
	out := ClassifyQuestions(raw)
	if out.Shape == ShapeUnrecognized {
		return nil, out.Shape, malformed(opGenerate, "expected a JSON array or an object with a questions array", nil)
	}

	items := out.Items.Array()
	if len(items) == 0 {
		return nil, out.Shape, malformed(opGenerate, "no questions returned", nil)
	}

	questions := make([]model.Question, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, out.Shape, malformed(opGenerate, fmt.Sprintf("question %d is not an object", i+1), nil)
		}
		question, answer, hint := item.Get("question"), item.Get("answer"), item.Get("hint")
		if question.Type != gjson.String || answer.Type != gjson.String {
			return nil, out.Shape, malformed(opGenerate, fmt.Sprintf("question %d must have string question and answer", i+1), nil)
		}
		if hint.Exists() && hint.Type != gjson.Null && hint.Type != gjson.String {
			return nil, out.Shape, malformed(opGenerate, fmt.Sprintf("question %d hint must be a string", i+1), nil)
		}
		q := model.Question{
			Question: strings.TrimSpace(question.String()),
			Hint:     strings.TrimSpace(hint.String()),
			Answer:   strings.TrimSpace(answer.String()),
		}
		if q.Question == "" || q.Answer == "" {
			return nil, out.Shape, malformed(opGenerate, fmt.Sprintf("question %d is missing question or answer text", i+1), nil)
		}
		questions = append(questions, q)
	}
	return questions, out.Shape, nil
}

func parseEvaluation(raw string) (model.Evaluation, error) {
	root, err := parseObject(opCheck, raw)
	if err != nil {
		return model.Evaluation{}, err
	}

	scores, err := parseRubric(root.Get("scores"), "scores")
	if err != nil {
		return model.Evaluation{}, malformed(opCheck, err.Error(), nil)
	}
	overall, err := number(root, "overallScore")
	if err != nil {
		return model.Evaluation{}, malformed(opCheck, err.Error(), nil)
	}

	return model.Evaluation{
		Scores: scores,
		Feedback: model.Feedback{
			Strengths:    stringList(root.Get("feedback.strengths")),
			Improvements: stringList(root.Get("feedback.improvements")),
		},
		OverallScore: clamp(overall, 0, MaxOverallScore),
		Suggestions:  strings.TrimSpace(root.Get("suggestions").String()),
	}, nil
}

func parseAssessment(raw string) (model.ReadinessAssessment, error) {
	root, err := parseObject(opAssess, raw)
	if err != nil {
		return model.ReadinessAssessment{}, err
	}

	overall, err := number(root, "overallScore")
	if err != nil {
		return model.ReadinessAssessment{}, malformed(opAssess, err.Error(), nil)
	}
	categories, err := parseRubric(root.Get("categoryScores"), "categoryScores")
	if err != nil {
		return model.ReadinessAssessment{}, malformed(opAssess, err.Error(), nil)
	}
	level, ok := readinessLevel(root.Get("readinessLevel").String())
	if !ok {
		return model.ReadinessAssessment{}, malformed(opAssess,
			fmt.Sprintf("readinessLevel %q is not High, Medium or Low", root.Get("readinessLevel").String()), nil)
	}
	confidence := 0.0
	if c := root.Get("confidenceScore"); c.Type == gjson.Number {
		confidence = clamp(c.Float(), 0, MaxOverallScore)
	}

	return model.ReadinessAssessment{
		OverallScore:     clamp(overall, 0, MaxOverallScore),
		CategoryScores:   categories,
		Strengths:        stringList(root.Get("strengths")),
		ImprovementAreas: stringList(root.Get("improvementAreas")),
		Recommendations:  stringList(root.Get("recommendations")),
		ReadinessLevel:   level,
		ConfidenceScore:  confidence,
		NextSteps:        stringList(root.Get("nextSteps")),
	}, nil
}

const (
	MaxRubricScore  = 25
	MaxOverallScore = 100
)

func parseObject(op, raw string) (gjson.Result, error) {
	raw = cleanJSON(raw)
	if !gjson.Valid(raw) {
		return gjson.Result{}, malformed(op, "response is not valid JSON", nil)
	}
	root := gjson.Parse(raw)
	if !root.IsObject() {
		return gjson.Result{}, malformed(op, "response is not a JSON object", nil)
	}
	return root, nil
}

func parseRubric(r gjson.Result, field string) (model.RubricScores, error) {
	if !r.IsObject() {
		return model.RubricScores{}, fmt.Errorf("%s must be an object", field)
	}
	var scores model.RubricScores
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"relevance", &scores.Relevance},
		{"completeness", &scores.Completeness},
		{"clarity", &scores.Clarity},
		{"specificity", &scores.Specificity},
	} {
		v, err := number(r, f.name)
		if err != nil {
			return model.RubricScores{}, fmt.Errorf("%s.%w", field, err)
		}
		*f.dst = clamp(v, 0, MaxRubricScore)
	}
	return scores, nil
}

func number(r gjson.Result, path string) (float64, error) {
	v := r.Get(path)
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%s must be a number", path)
	}
	return v.Float(), nil
}

// stringList accepts an array of strings or a single string and always
// returns a non-nil slice.
func stringList(r gjson.Result) []string {
	out := []string{}
	if r.Type == gjson.String {
		if s := strings.TrimSpace(r.String()); s != "" {
			out = append(out, s)
		}
		return out
	}
	if !r.IsArray() {
		return out
	}
	for _, v := range r.Array() {
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func readinessLevel(s string) (model.ReadinessLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return model.ReadinessHigh, true
	case "medium":
		return model.ReadinessMedium, true
	case "low":
		return model.ReadinessLow, true
	}
	return "", false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cleanJSON strips a surrounding markdown code fence.
func cleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
