package models

import "testing"

func TestCandidateStatus(t *testing.T) {
	transcript := "hello"
	empty := ""

	cases := []struct {
		name      string
		candidate Candidate
		want      CandidateStatus
	}{
		{"new", Candidate{}, StatusCreated},
		{"with cv", Candidate{CVText: "cv"}, StatusPrepared},
		{"with personal questions", Candidate{PersonalQuestions: []Question{{Category: "Personal", Question: "Why?"}}}, StatusPrepared},
		{"empty transcript", Candidate{CVText: "cv", Transcript: &empty}, StatusPrepared},
		{"transcribed", Candidate{CVText: "cv", Transcript: &transcript}, StatusTranscribed},
		{"analyzed", Candidate{Transcript: &transcript, Analysis: &AnalysisResult{}}, StatusAnalyzed},
	}

	for _, tc := range cases {
		if got := tc.candidate.Status(); got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestConcatQuestionsKeepsOrder(t *testing.T) {
	role := []Question{{Category: "A", Question: "1"}, {Category: "B", Question: "2"}}
	personal := []Question{{Category: "Personal", Question: "3"}}

	all := ConcatQuestions(role, personal)
	if len(all) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(all))
	}
	for i, want := range []string{"1", "2", "3"} {
		if all[i].Question != want {
			t.Errorf("position %d: expected %s, got %s", i, want, all[i].Question)
		}
	}

	all[0].Question = "changed"
	if role[0].Question != "1" {
		t.Error("ConcatQuestions must not alias the role slice")
	}
}
