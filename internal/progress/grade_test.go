package progress

import (
	"context"
	"testing"

	"github.com/abhisek/studium/internal/gateway"
	"github.com/abhisek/studium/internal/store"
)

func intp(v int) *int { return &v }

func sampleQuiz() *gateway.Quiz {
	return &gateway.Quiz{
		Title:      "Equilibrium Quiz",
		Difficulty: "intermediate",
		Questions: []gateway.QuizQuestion{
			{Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 1, ConceptTested: "supply", QuestionType: "conceptual"},
			{Question: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 2, ConceptTested: "demand", QuestionType: "conceptual"},
			{Question: "Q3", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 1, ConceptTested: "elasticity", QuestionType: "application"},
			{Question: "Q4", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 3, ConceptTested: "supply", QuestionType: "application"},
		},
	}
}

func TestGrade(t *testing.T) {
	result := Grade(sampleQuiz(), []*int{intp(1), intp(2), intp(0), intp(3)})

	if result.Score != 3 {
		t.Errorf("expected score 3, got %d", result.Score)
	}
	if result.Total != 4 {
		t.Errorf("expected total 4, got %d", result.Total)
	}
	if result.Percentage != 75 {
		t.Errorf("expected 75%%, got %v", result.Percentage)
	}

	elasticity := result.ConceptPerformance["elasticity"]
	if elasticity.Correct != 0 || elasticity.Total != 1 {
		t.Errorf("expected elasticity 0/1, got %d/%d", elasticity.Correct, elasticity.Total)
	}
	supply := result.ConceptPerformance["supply"]
	if supply.Correct != 2 || supply.Total != 2 {
		t.Errorf("expected supply 2/2, got %d/%d", supply.Correct, supply.Total)
	}

	if len(result.WeakConcepts) != 1 || result.WeakConcepts[0] != "elasticity" {
		t.Errorf("expected weak concepts [elasticity], got %v", result.WeakConcepts)
	}

	third := result.Answers["2"]
	if third.IsCorrect || third.UserAnswer == nil || *third.UserAnswer != 0 {
		t.Errorf("unexpected graded answer %+v", third)
	}
}

func TestGradeUnansweredAndEmpty(t *testing.T) {
	result := Grade(sampleQuiz(), []*int{intp(1), nil})
	if result.Score != 1 {
		t.Errorf("expected score 1, got %d", result.Score)
	}
	second := result.Answers["1"]
	if second.UserAnswer != nil || second.IsCorrect {
		t.Errorf("unanswered question should grade incorrect: %+v", second)
	}

	empty := Grade(&gateway.Quiz{}, nil)
	if empty.Percentage != 0 || empty.Total != 0 {
		t.Errorf("empty quiz should grade 0, got %+v", empty)
	}
}

func TestRollAverage(t *testing.T) {
	if got := RollAverage(0, 80); got != 80 {
		t.Errorf("first score should replace zero prior, got %v", got)
	}
	if got := RollAverage(80, 60); got != 70 {
		t.Errorf("expected 70, got %v", got)
	}
	// Older attempts decay: three scores are not an arithmetic mean.
	avg := RollAverage(RollAverage(100, 50), 50)
	if avg != 62.5 {
		t.Errorf("expected 62.5, got %v", avg)
	}
}

func TestMasteryLevel(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "expert"},
		{90, "expert"},
		{85, "proficient"},
		{80, "proficient"},
		{75, "developing"},
		{70, "developing"},
		{69.9, "novice"},
		{0, "novice"},
	}
	for _, c := range cases {
		if got := MasteryLevel(c.score); got != c.want {
			t.Errorf("MasteryLevel(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestMergeStruggleAreas(t *testing.T) {
	merged := MergeStruggleAreas([]string{"supply", "elasticity"}, []string{"elasticity", "demand", ""})
	want := []string{"demand", "elasticity", "supply"}
	if len(merged) != len(want) {
		t.Fatalf("expected %v, got %v", want, merged)
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Errorf("expected %v, got %v", want, merged)
			break
		}
	}
}

func TestApplyQuizResult(t *testing.T) {
	st, _, _, _, _, progressRepo, _ := newFakeStores()
	svc := NewService(st, nil)

	entry := &store.ProgressEntry{
		ID:            7,
		AvgQuizScore:  80,
		StruggleAreas: []string{"supply"},
	}
	result := Grade(sampleQuiz(), []*int{intp(1), intp(2), intp(0), intp(3)})

	if err := svc.ApplyQuizResult(context.Background(), entry, result); err != nil {
		t.Fatal(err)
	}

	if len(progressRepo.applied) != 1 {
		t.Fatal("expected one persisted outcome")
	}
	out := progressRepo.applied[0]
	if out.avgScore != 77.5 {
		t.Errorf("expected rolled average 77.5, got %v", out.avgScore)
	}
	if out.mastery != "developing" {
		t.Errorf("expected developing, got %q", out.mastery)
	}
	if len(out.struggles) != 2 {
		t.Errorf("expected union of struggle areas, got %v", out.struggles)
	}
	if entry.QuizzesTaken != 1 || entry.AvgQuizScore != 77.5 {
		t.Errorf("entry not updated in place: %+v", entry)
	}
}
