package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/studium/internal/gateway"
	"github.com/abhisek/studium/internal/progress"
	"github.com/abhisek/studium/internal/store"
)

func (s *Server) generateQuiz(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	chapterID, err := paramInt(c, "chapter_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid chapter id")
		return
	}

	chapter, err := s.repos.Chapters.Get(ctx, chapterID)
	if err != nil {
		respondError(c, http.StatusNotFound, "chapter not found")
		return
	}
	subject, err := s.repos.Subjects.Get(ctx, chapter.SubjectID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load subject failed")
		return
	}

	difficulty := "intermediate"
	if entry, _, err := s.repos.Progress.GetOrCreate(ctx, uid, chapter.SubjectID, &chapterID, "in_progress"); err == nil && entry.DifficultyPreference != "" {
		difficulty = entry.DifficultyPreference
	}

	quiz, err := s.ai.GenerateQuiz(ctx, mustJSON(chapter.IntroSummary), subject.Domain, difficulty)
	if err != nil {
		respondError(c, http.StatusBadGateway, "could not generate quiz: "+err.Error())
		return
	}

	s.track.LogActivity(ctx, uid, "quiz_started", map[string]any{
		"subject_domain": subject.Domain,
		"difficulty":     difficulty,
		"question_count": len(quiz.Questions),
	})

	respondOK(c, gin.H{
		"chapter_id": chapterID,
		"difficulty": difficulty,
		"quiz":       quiz,
	})
}

type submitQuizRequest struct {
	Quiz      gateway.Quiz `json:"quiz"`
	Answers   []*int       `json:"answers"`
	StartTime string       `json:"start_time"`
}

func (s *Server) submitQuiz(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	chapterID, err := paramInt(c, "chapter_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid chapter id")
		return
	}

	chapter, err := s.repos.Chapters.Get(ctx, chapterID)
	if err != nil {
		respondError(c, http.StatusNotFound, "chapter not found")
		return
	}
	subject, err := s.repos.Subjects.Get(ctx, chapter.SubjectID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load subject failed")
		return
	}

	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid quiz submission")
		return
	}

	result := progress.Grade(&req.Quiz, req.Answers)

	var timeTaken *int
	if req.StartTime != "" {
		if started, err := time.Parse(time.RFC3339, req.StartTime); err == nil {
			secs := int(time.Since(started).Seconds())
			timeTaken = &secs
		}
	}

	title := req.Quiz.Title
	if title == "" {
		title = chapter.Title + " Quiz"
	}
	difficulty := req.Quiz.Difficulty
	if difficulty == "" {
		difficulty = "intermediate"
	}

	if _, err := s.repos.Quizzes.Create(ctx, store.QuizInput{
		UserID:           uid,
		ChapterID:        chapterID,
		Title:            title,
		QuizType:         "practice",
		SubjectDomain:    subject.Domain,
		Score:            result.Score,
		TotalQuestions:   result.Total,
		Percentage:       result.Percentage,
		DifficultyLevel:  difficulty,
		TimeTakenSeconds: timeTaken,
		ConceptMastery:   result.ConceptPerformance,
		WeakConcepts:     result.WeakConcepts,
		Questions:        questionMaps(req.Quiz.Questions),
		UserAnswers:      result.Answers,
	}); err != nil {
		respondError(c, http.StatusInternalServerError, "save quiz result failed")
		return
	}

	entry, _, err := s.repos.Progress.GetOrCreate(ctx, uid, chapter.SubjectID, &chapterID, "in_progress")
	if err == nil {
		if err := s.learn.ApplyQuizResult(ctx, entry, result); err != nil {
			s.log.Warn("apply quiz outcome failed", "progress_id", entry.ID, "error", err)
		}
	}

	s.track.LogActivity(ctx, uid, "quiz_completed", map[string]any{
		"subject_domain": subject.Domain,
		"score":          result.Score,
		"total":          result.Total,
		"percentage":     result.Percentage,
		"weak_concepts":  result.WeakConcepts,
	})

	respondOK(c, gin.H{
		"chapter_id":          chapterID,
		"score":               result.Score,
		"total":               result.Total,
		"percentage":          result.Percentage,
		"concept_performance": result.ConceptPerformance,
		"weak_concepts":       result.WeakConcepts,
		"user_answers":        result.Answers,
		"time_taken":          timeTaken,
	})
}

// questionMaps converts typed questions into the free-form shape the
// quiz log stores.
func questionMaps(questions []gateway.QuizQuestion) []map[string]any {
	out := make([]map[string]any, 0, len(questions))
	for _, q := range questions {
		b, err := json.Marshal(q)
		if err != nil {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}
