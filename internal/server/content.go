package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/studium/internal/store"
)

func (s *Server) viewSubject(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	courseID, err := paramInt(c, "course_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid course id")
		return
	}
	subjectID, err := paramInt(c, "subject_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid subject id")
		return
	}

	subject, err := s.repos.Subjects.Get(ctx, subjectID)
	if err != nil || subject.CourseID != courseID {
		respondError(c, http.StatusNotFound, "subject not found")
		return
	}

	chapters, err := s.repos.Chapters.ListBySubject(ctx, subjectID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load chapters failed")
		return
	}

	entries, err := s.repos.Progress.ForUserSubject(ctx, uid, subjectID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load progress failed")
		return
	}
	chapterProgress := make(map[string]gin.H)
	for _, p := range entries {
		if p.ChapterID != nil {
			chapterProgress[strconv.Itoa(*p.ChapterID)] = progressJSON(p)
		}
	}

	subjectProgress, _, err := s.repos.Progress.GetOrCreate(ctx, uid, subjectID, nil, "in_progress")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "track subject progress failed")
		return
	}

	if _, err := s.track.Start(ctx, store.SessionStartInput{
		UserID:    uid,
		CourseID:  &courseID,
		SubjectID: &subjectID,
	}); err != nil {
		s.log.Warn("start study session failed", "subject_id", subjectID, "error", err)
	}
	s.track.LogActivity(ctx, uid, "subject_access", map[string]any{"subject_name": subject.Name})

	chaptersJSON := make([]gin.H, 0, len(chapters))
	for _, ch := range chapters {
		chaptersJSON = append(chaptersJSON, chapterSummaryJSON(ch))
	}

	respondOK(c, gin.H{
		"subject":          subjectJSON(subject),
		"subject_analysis": subject.Analysis,
		"chapters":         chaptersJSON,
		"subject_progress": progressJSON(subjectProgress),
		"chapter_progress": chapterProgress,
	})
}

func (s *Server) viewChapter(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	courseID, err := paramInt(c, "course_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid course id")
		return
	}
	subjectID, err := paramInt(c, "subject_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid subject id")
		return
	}
	chapterID, err := paramInt(c, "chapter_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid chapter id")
		return
	}

	chapter, err := s.repos.Chapters.Get(ctx, chapterID)
	if err != nil || chapter.SubjectID != subjectID {
		respondError(c, http.StatusNotFound, "chapter not found")
		return
	}
	subject, err := s.repos.Subjects.Get(ctx, subjectID)
	if err != nil || subject.CourseID != courseID {
		respondError(c, http.StatusNotFound, "chapter not found")
		return
	}

	bookmarks, err := s.repos.Bookmarks.ListByUserChapter(ctx, uid, chapterID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load bookmarks failed")
		return
	}
	bookmarkIndices := make([]int, 0, len(bookmarks))
	for _, b := range bookmarks {
		bookmarkIndices = append(bookmarkIndices, b.ContentBlockIndex)
	}

	entry, created, err := s.repos.Progress.GetOrCreate(ctx, uid, subjectID, &chapterID, "in_progress")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "track chapter progress failed")
		return
	}
	if !created {
		if err := s.repos.Progress.Touch(ctx, entry.ID); err != nil {
			s.log.Warn("touch chapter progress failed", "progress_id", entry.ID, "error", err)
		}
	}

	if _, err := s.track.Start(ctx, store.SessionStartInput{
		UserID:    uid,
		CourseID:  &courseID,
		SubjectID: &subjectID,
		ChapterID: &chapterID,
	}); err != nil {
		s.log.Warn("start study session failed", "chapter_id", chapterID, "error", err)
	}
	s.track.LogActivity(ctx, uid, "chapter_access", map[string]any{
		"chapter_title":  chapter.Title,
		"subject_domain": subject.Domain,
	})

	respondOK(c, gin.H{
		"course_id":        courseID,
		"subject":          subjectJSON(subject),
		"chapter":          chapterJSON(chapter),
		"bookmark_indices": bookmarkIndices,
		"chapter_progress": progressJSON(entry),
	})
}

type askRequest struct {
	Question string `json:"question"`
}

func (s *Server) askQuestion(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	chapterID, err := paramInt(c, "chapter_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid chapter id")
		return
	}

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		respondError(c, http.StatusBadRequest, "please enter a question")
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

	answer, err := s.ai.AnswerQuestion(ctx, req.Question, mustJSON(chapter.IntroSummary), subject.Domain)
	if err != nil {
		respondError(c, http.StatusBadGateway, "answering failed: "+err.Error())
		return
	}

	entry, _, err := s.repos.Progress.GetOrCreate(ctx, uid, chapter.SubjectID, &chapterID, "in_progress")
	if err == nil {
		if err := s.repos.Progress.IncQuestionsAsked(ctx, entry.ID); err != nil {
			s.log.Warn("count question failed", "progress_id", entry.ID, "error", err)
		}
	}

	s.track.LogActivity(ctx, uid, "question_asked", map[string]any{
		"subject_domain":  subject.Domain,
		"question_length": len(req.Question),
	})

	respondOK(c, gin.H{
		"chapter_id": chapterID,
		"question":   req.Question,
		"answer":     answer,
	})
}

type simplifyRequest struct {
	ConceptText     string `json:"concept_text"`
	DifficultyLevel string `json:"difficulty_level"`
	SubjectDomain   string `json:"subject_domain"`
	LearningStyle   string `json:"learning_style"`
}

func (s *Server) simplifyConcept(c *gin.Context) {
	ctx := c.Request.Context()

	var req simplifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ConceptText == "" {
		respondError(c, http.StatusBadRequest, "no concept text provided")
		return
	}
	if req.DifficultyLevel == "" {
		req.DifficultyLevel = "beginner"
	}
	if req.SubjectDomain == "" {
		req.SubjectDomain = "general"
	}
	if req.LearningStyle == "" {
		req.LearningStyle = "mixed"
	}

	simplified, err := s.ai.SimplifyConcept(ctx, req.ConceptText, req.DifficultyLevel, req.SubjectDomain, req.LearningStyle)
	if err != nil {
		respondError(c, http.StatusBadGateway, "simplification failed: "+err.Error())
		return
	}

	s.track.LogActivity(ctx, userID(c), "concept_simplification", map[string]any{
		"difficulty_level": req.DifficultyLevel,
		"subject_domain":   req.SubjectDomain,
	})

	respondOK(c, gin.H{"simplified_text": simplified})
}

type visualizationRequest struct {
	Description   string `json:"description"`
	DataContext   string `json:"data_context"`
	SubjectDomain string `json:"subject_domain"`
}

func (s *Server) generateVisualization(c *gin.Context) {
	ctx := c.Request.Context()

	var req visualizationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Description == "" {
		respondError(c, http.StatusBadRequest, "no description provided")
		return
	}
	if req.SubjectDomain == "" {
		req.SubjectDomain = "general"
	}

	viz, err := s.ai.GenerateVisualization(ctx, req.Description, req.DataContext, req.SubjectDomain)
	if err != nil {
		respondError(c, http.StatusBadGateway, "visualization generation failed: "+err.Error())
		return
	}

	s.track.LogActivity(ctx, userID(c), "visualization_generation", map[string]any{
		"subject_domain":     req.SubjectDomain,
		"visualization_type": viz.VisualizationType,
	})

	respondOK(c, viz)
}

// mustJSON renders structured content for prompt context. Encoding of
// map values never fails.
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
