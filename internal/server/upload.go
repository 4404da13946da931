package server

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/studium/internal/domain"
	"github.com/abhisek/studium/internal/gateway"
	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/progress"
	"github.com/abhisek/studium/internal/store"
)

func (s *Server) uploadPDF(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	courseID, err := paramInt(c, "course_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid course id")
		return
	}
	course, err := s.repos.Courses.Get(ctx, courseID)
	if err != nil {
		respondError(c, http.StatusNotFound, "course not found")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes)

	subjectName := c.PostForm("subject_name")
	courseDescription := c.DefaultPostForm("course_description", course.Description)
	header, err := c.FormFile("pdf_file")
	if subjectName == "" || err != nil {
		respondError(c, http.StatusBadRequest, "missing subject name or file")
		return
	}

	filename := filepath.Base(header.Filename)
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		respondError(c, http.StatusBadRequest, "please upload a PDF file")
		return
	}

	src, err := header.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "read upload failed")
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		respondError(c, http.StatusBadRequest, "read upload failed")
		return
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err == nil {
		path := filepath.Join(s.cfg.UploadDir, filename)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			s.log.Warn("persist upload failed", "path", path, "error", err)
		}
	}

	existingSubjects, err := s.repos.Subjects.ListByCourse(ctx, courseID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load course subjects failed")
		return
	}
	existingBooks := make([]domain.BookContext, 0, len(existingSubjects))
	for _, sub := range existingSubjects {
		existingBooks = append(existingBooks, domain.BookContext{
			Name:    sub.Name,
			Domain:  sub.Domain,
			Summary: mustJSON(sub.OverallSummary),
		})
	}

	file := llm.FilePart{Name: filename, MIMEType: "application/pdf", Data: data}
	start := time.Now()

	result, err := s.extractWithIntelligence(ctx, course, subjectName, file)
	if err != nil {
		s.log.Warn("enhanced processing failed, falling back to basic", "error", err)
		result, err = s.ai.ExtractChapters(ctx, file, subjectName, courseDescription, existingBooks)
	}
	if err != nil {
		respondError(c, http.StatusBadGateway, "document processing failed: "+err.Error())
		return
	}

	processingTime := int(time.Since(start).Seconds())
	fileSizeMB := float64(int(float64(len(data))/(1024*1024)*100+0.5)) / 100

	profile := result.Profile
	if profile == nil {
		profile = &gateway.SubjectProfile{
			SubjectDomain:   "general",
			LearningStyle:   "mixed",
			ComplexityLevel: "intermediate",
		}
	}

	subjectInput := store.SubjectInput{
		CourseID:              courseID,
		Name:                  orText(result.SubjectName, subjectName),
		Preface:               result.Preface,
		OverallSummary:        result.OverallSummary,
		Analysis:              profileMap(profile),
		Domain:                profile.SubjectDomain,
		LearningStyle:         profile.LearningStyle,
		ComplexityLevel:       profile.ComplexityLevel,
		OriginalFilename:      filename,
		FileSizeMB:            fileSizeMB,
		ProcessingTimeSeconds: processingTime,
	}

	chapters := make([]store.ChapterInput, 0, len(result.Chapters))
	for i, ch := range result.Chapters {
		chapters = append(chapters, store.ChapterInput{
			ChapterNumber:      i + 1,
			Title:              ch.Title,
			IntroSummary:       ch.IntroSummary,
			ContentBlocks:      ch.ContentBlocks,
			Metadata:           ch.Metadata,
			DifficultyLevel:    metaString(ch.Metadata, "difficulty_level", "intermediate"),
			EstimatedStudyTime: metaInt(ch.Metadata, "estimated_study_time", 30),
			Counts:             progress.CountBlocks(ch.ContentBlocks),
		})
	}

	subject, err := s.repos.Subjects.CreateWithChapters(ctx, subjectInput, chapters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "save subject failed")
		return
	}

	if err := s.learn.UpdateSubjectStats(ctx, subject.ID); err != nil {
		s.log.Warn("roll up subject stats failed", "subject_id", subject.ID, "error", err)
	}

	s.track.LogActivity(ctx, uid, "subject_uploaded", map[string]any{
		"subject_name":   subject.Name,
		"subject_domain": subject.Domain,
		"chapter_count":  len(chapters),
	})

	c.JSON(http.StatusCreated, gin.H{
		"subject":             subjectJSON(subject),
		"chapter_count":       len(chapters),
		"subject_domain":      subject.Domain,
		"processing_metadata": result.Metadata,
	})
}

// extractWithIntelligence runs the enhanced pipeline: course context
// research first, then document extraction steered by it.
func (s *Server) extractWithIntelligence(ctx context.Context, course *store.Course, subjectName string, file llm.FilePart) (*gateway.ExtractionResult, error) {
	studentInput := map[string]any{
		"course_name":         course.Name,
		"university":          course.Institution,
		"academic_level":      course.AcademicLevel,
		"career_goals":        []string{},
		"learning_objectives": []string{},
	}

	enhanced, err := s.ai.EnhanceCourse(ctx, course.Name, course.Institution, studentInput)
	if err != nil {
		return nil, err
	}
	return s.ai.ExtractWithIntelligence(ctx, file, subjectName, enhanced)
}

func profileMap(p *gateway.SubjectProfile) map[string]any {
	return map[string]any{
		"subject_domain":         p.SubjectDomain,
		"learning_style":         p.LearningStyle,
		"complexity_level":       p.ComplexityLevel,
		"key_characteristics":    p.KeyCharacteristics,
		"content_types":          p.ContentTypes,
		"career_applications":    p.CareerApplications,
		"visualization_types":    p.VisualizationTypes,
		"assessment_methods":     p.AssessmentMethods,
		"real_world_connections": p.RealWorldConnections,
		"difficulty_factors":     p.DifficultyFactors,
	}
}

func metaString(m map[string]any, key, fallback string) string {
	if m != nil {
		if v, ok := m[key].(string); ok && v != "" {
			return v
		}
	}
	return fallback
}

func metaInt(m map[string]any, key string, fallback int) int {
	if m != nil {
		switch v := m[key].(type) {
		case float64:
			if v > 0 {
				return int(v)
			}
		case int:
			if v > 0 {
				return v
			}
		}
	}
	return fallback
}

func orText(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
