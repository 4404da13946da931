package progress

import (
	"sort"
	"strconv"

	"github.com/abhisek/studium/internal/gateway"
	"github.com/abhisek/studium/internal/store"
)

// GradeResult is the outcome of grading one quiz attempt.
type GradeResult struct {
	Score              int
	Total              int
	Percentage         float64
	ConceptPerformance map[string]store.ConceptScore
	WeakConcepts       []string
	Answers            map[string]store.AnsweredQuestion
}

// weakThreshold is the per-concept accuracy below which a concept is
// flagged for review.
const weakThreshold = 0.7

// Grade scores submitted answers against a quiz. answers holds the
// selected option index per question position; nil marks an unanswered
// question, which always grades incorrect.
func Grade(quiz *gateway.Quiz, answers []*int) GradeResult {
	result := GradeResult{
		Total:              len(quiz.Questions),
		ConceptPerformance: make(map[string]store.ConceptScore),
		Answers:            make(map[string]store.AnsweredQuestion, len(quiz.Questions)),
	}

	for i, q := range quiz.Questions {
		var answer *int
		if i < len(answers) {
			answer = answers[i]
		}
		correct := answer != nil && *answer == q.CorrectAnswerIndex

		questionType := q.QuestionType
		if questionType == "" {
			questionType = "multiple_choice"
		}
		concept := q.ConceptTested
		if concept == "" {
			concept = "general"
		}

		result.Answers[strconv.Itoa(i)] = store.AnsweredQuestion{
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswerIndex,
			IsCorrect:     correct,
			QuestionType:  questionType,
			ConceptTested: concept,
		}

		perf := result.ConceptPerformance[concept]
		perf.Total++
		if correct {
			perf.Correct++
			result.Score++
		}
		result.ConceptPerformance[concept] = perf
	}

	if result.Total > 0 {
		result.Percentage = float64(result.Score) / float64(result.Total) * 100
	}

	for concept, perf := range result.ConceptPerformance {
		if float64(perf.Correct)/float64(perf.Total) < weakThreshold {
			result.WeakConcepts = append(result.WeakConcepts, concept)
		}
	}
	sort.Strings(result.WeakConcepts)

	return result
}

// RollAverage folds a new quiz percentage into the running average.
// A zero prior average is treated as "no history" and replaced outright;
// otherwise the prior and new scores are averaged pairwise, so older
// attempts decay geometrically.
func RollAverage(prior, latest float64) float64 {
	if prior == 0 {
		return latest
	}
	return (prior + latest) / 2
}

// MasteryLevel maps a running quiz average to a mastery label.
func MasteryLevel(avgScore float64) string {
	switch {
	case avgScore >= 90:
		return "expert"
	case avgScore >= 80:
		return "proficient"
	case avgScore >= 70:
		return "developing"
	default:
		return "novice"
	}
}

// MergeStruggleAreas unions existing struggle areas with newly weak
// concepts, deduplicated and sorted.
func MergeStruggleAreas(existing, weak []string) []string {
	seen := make(map[string]bool, len(existing)+len(weak))
	merged := make([]string, 0, len(existing)+len(weak))
	for _, s := range existing {
		if s != "" && !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	for _, s := range weak {
		if s != "" && !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	sort.Strings(merged)
	return merged
}
