package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

const (
	MinScore = 0
	MaxScore = 5
)

// Score is a per-question grade. 0 means the answer could not be assessed.
//
// Models are not consistent about number formatting, so decoding accepts
// integers, floats and numeric strings, rounds to the nearest integer and
// clamps into [MinScore, MaxScore].
type Score int

func (s *Score) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(bytes.Trim(bytes.TrimSpace(data), `"`))
	if len(raw) == 0 || string(raw) == "null" {
		*s = 0
		return nil
	}

	value, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid score %q: %w", string(raw), err)
	}

	if math.IsNaN(value) {
		return fmt.Errorf("invalid score %q", string(raw))
	}

	value = math.Max(MinScore, math.Min(MaxScore, math.Round(value)))
	*s = Score(value)
	return nil
}

func ClampScore(v int) Score {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return Score(v)
}

type QuestionAssessment struct {
	Question   string `json:"question"`
	Score      Score  `json:"score"`
	Summary    string `json:"summary"`
	Assessment string `json:"assessment"`
	Quote      string `json:"quote"`
}

// AnalysisResult is the structured scoring of one interview transcript.
type AnalysisResult struct {
	OverallAssessment    string               `json:"overall_assessment"`
	SummarizedTranscript string               `json:"summarized_transcript"`
	Questions            []QuestionAssessment `json:"questions"`
}

// TotalScore sums the per-question scores without normalization.
func (a *AnalysisResult) TotalScore() int {
	if a == nil {
		return 0
	}
	total := 0
	for _, q := range a.Questions {
		total += int(q.Score)
	}
	return total
}
