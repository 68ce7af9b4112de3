package models

import (
	"encoding/json"
	"testing"
)

func TestScoreUnmarshalNormalizes(t *testing.T) {
	cases := []struct {
		raw  string
		want Score
	}{
		{`4`, 4},
		{`4.6`, 5},
		{`2.4`, 2},
		{`"3"`, 3},
		{`" 5 "`, 5},
		{`9`, 5},
		{`-2`, 0},
		{`null`, 0},
		{`""`, 0},
		{`1e20`, 5},
		{`1e300`, 5},
		{`-1e300`, 0},
		{`"Infinity"`, 5},
		{`"-Inf"`, 0},
	}

	for _, tc := range cases {
		var s Score
		if err := json.Unmarshal([]byte(tc.raw), &s); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if s != tc.want {
			t.Errorf("unmarshal %s: expected %d, got %d", tc.raw, tc.want, s)
		}
	}
}

func TestScoreUnmarshalRejectsText(t *testing.T) {
	var s Score
	for _, raw := range []string{`"excellent"`, `"NaN"`} {
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			t.Errorf("expected error for score %s", raw)
		}
	}
}

func TestMissingScoreCountsAsZero(t *testing.T) {
	raw := `{"questions":[{"question":"a","score":4},{"question":"b"},{"question":"c","score":"2"}]}`

	var result AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := result.TotalScore(); got != 6 {
		t.Errorf("expected total 6, got %d", got)
	}
}

func TestTotalScoreNilAnalysis(t *testing.T) {
	var result *AnalysisResult
	if got := result.TotalScore(); got != 0 {
		t.Errorf("expected 0 for nil analysis, got %d", got)
	}
}
