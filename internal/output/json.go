package output

import (
	"encoding/json"
	"io"

	"github.com/eshatrova/textgrade/internal/analyze"
)

// JSONFormatter renders results as pretty-printed JSON.
type JSONFormatter struct{}

type jsonMetrics struct {
	FleschReadingEase         float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade        float64 `json:"flesch_kincaid_grade"`
	ColemanLiauIndex          float64 `json:"coleman_liau_index"`
	AutomatedReadabilityIndex float64 `json:"automated_readability_index"`
	SMOGIndex                 float64 `json:"smog_index"`
}

type jsonResult struct {
	Name              string      `json:"name,omitempty"`
	TextLength        int         `json:"text_length"`
	WordCount         int         `json:"word_count"`
	SentenceCount     int         `json:"sentence_count"`
	AvgWordLength     float64     `json:"avg_word_length"`
	AvgSentenceLength float64     `json:"avg_sentence_length"`
	Metrics           jsonMetrics `json:"metrics"`
	DifficultyLevel   string      `json:"difficulty_level"`
	TargetAudience    string      `json:"target_audience"`
	Recommendations   []string    `json:"recommendations"`
}

type jsonComparison struct {
	Name    string      `json:"name"`
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Result  *jsonResult `json:"result,omitempty"`
}

func toJSONResult(name string, res *analyze.Result) *jsonResult {
	return &jsonResult{
		Name:              name,
		TextLength:        res.TextLength,
		WordCount:         res.WordCount,
		SentenceCount:     res.SentenceCount,
		AvgWordLength:     res.AvgWordLength,
		AvgSentenceLength: res.AvgSentenceLength,
		Metrics: jsonMetrics{
			FleschReadingEase:         res.Flesch,
			FleschKincaidGrade:        res.FleschKincaid,
			ColemanLiauIndex:          res.ColemanLiau,
			AutomatedReadabilityIndex: res.ARI,
			SMOGIndex:                 res.SMOG,
		},
		DifficultyLevel: res.Difficulty,
		TargetAudience:  res.Audience,
		Recommendations: res.Recommendations,
	}
}

// FormatResult writes one result as a JSON object.
func (f *JSONFormatter) FormatResult(w io.Writer, name string, res *analyze.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSONResult(name, res))
}

// FormatComparison writes a JSON array with one element per item; an
// empty batch produces []. Failed items carry success=false and the
// error message instead of a result.
func (f *JSONFormatter) FormatComparison(w io.Writer, items []analyze.Comparison) error {
	out := make([]jsonComparison, 0, len(items))
	for _, item := range items {
		jc := jsonComparison{Name: item.Name, Success: item.Err == nil}
		if item.Err != nil {
			jc.Error = item.Err.Error()
		} else {
			jc.Result = toJSONResult("", item.Result)
		}
		out = append(out, jc)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
