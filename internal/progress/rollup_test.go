package progress

import (
	"context"
	"testing"

	"github.com/abhisek/studium/internal/store"
)

func block(t string) map[string]any { return map[string]any{"type": t} }

func TestCountBlocks(t *testing.T) {
	blocks := []map[string]any{
		block("concept_explanation"),
		block("interactive_visualization"),
		block("problem_solving"),
		block("case_study"),
		block("concept_explanation"),
		{"title": "untyped block"},
	}

	counts := CountBlocks(blocks)
	if counts.Blocks != 6 {
		t.Errorf("expected 6 blocks, got %d", counts.Blocks)
	}
	if counts.Concepts != 2 || counts.Visualizations != 1 || counts.Exercises != 1 || counts.CaseStudies != 1 {
		t.Errorf("unexpected counts %+v", counts)
	}

	// Counts are invariant under reordering.
	reversed := make([]map[string]any, len(blocks))
	for i, b := range blocks {
		reversed[len(blocks)-1-i] = b
	}
	if CountBlocks(reversed) != counts {
		t.Error("reordering blocks changed counts")
	}
}

func TestRollupChain(t *testing.T) {
	st, courses, subjects, chapters, _, _, _ := newFakeStores()
	svc := NewService(st, nil)

	subjects.subjects = []*store.Subject{{ID: 10, CourseID: 1, Name: "Micro"}}
	chapters.chapters = []*store.Chapter{
		{
			ID: 100, SubjectID: 10, EstimatedStudyTime: 60,
			ContentBlocks: []map[string]any{
				block("concept_explanation"),
				block("interactive_visualization"),
				block("problem_solving"),
			},
		},
		{
			ID: 101, SubjectID: 10, EstimatedStudyTime: 0, // defaults to 30
			ContentBlocks: []map[string]any{
				block("interactive_visualization"),
			},
		},
	}

	for _, id := range []int{100, 101} {
		if err := svc.UpdateChapterStats(context.Background(), id); err != nil {
			t.Fatal(err)
		}
	}

	if got := chapters.counts[100]; got.Blocks != 3 || got.Visualizations != 1 || got.Exercises != 1 {
		t.Errorf("chapter 100 counts %+v", got)
	}

	subjStats, ok := subjects.stats[10]
	if !ok {
		t.Fatal("subject stats never updated")
	}
	if subjStats[0] != 2 {
		t.Errorf("expected 2 chapters, got %d", subjStats[0])
	}
	if subjStats[1] != 90 {
		t.Errorf("expected 90 minutes read time, got %d", subjStats[1])
	}
	if subjStats[2] != 3 {
		t.Errorf("expected 3 interactive elements, got %d", subjStats[2])
	}

	courseStats, ok := courses.stats[1]
	if !ok {
		t.Fatal("course stats never updated")
	}
	if courseStats[0] != 1 || courseStats[1] != 2 {
		t.Errorf("expected 1 subject / 2 chapters, got %v", courseStats)
	}
	if courseStats[2] != 1 {
		t.Errorf("expected 1 study hour (90/60), got %d", courseStats[2])
	}
}
