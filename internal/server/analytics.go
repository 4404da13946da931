package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/studium/internal/sessions"
)

func (s *Server) analytics(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	enrollments, err := s.repos.Enrollments.ListByUser(ctx, uid)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load enrollments failed")
		return
	}

	courses := make([]gin.H, 0, len(enrollments))
	for _, e := range enrollments {
		course, err := s.repos.Courses.Get(ctx, e.CourseID)
		if err != nil {
			continue
		}
		summary, err := s.learn.CourseProgress(ctx, uid, e.CourseID)
		if err != nil {
			continue
		}
		recs, err := s.learn.Recommendations(ctx, uid, e.CourseID)
		if err != nil {
			continue
		}
		courses = append(courses, gin.H{
			"course":          courseJSON(course),
			"progress":        summary,
			"recommendations": recs,
		})
	}

	recent, err := s.track.Recent(ctx, uid, 10)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load sessions failed")
		return
	}

	totalStudyMinutes := 0
	ended := make([]gin.H, 0, len(recent))
	for _, sess := range recent {
		if sess.SessionEnd == nil {
			continue
		}
		if sess.DurationMinutes != nil {
			totalStudyMinutes += *sess.DurationMinutes
		}
		ended = append(ended, sessionJSON(sess))
	}
	avgSessionLength := 0.0
	if len(ended) > 0 {
		avgSessionLength = float64(totalStudyMinutes) / float64(len(ended))
	}

	domains, err := s.learn.DomainPerformance(ctx, uid)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "compute domain performance failed")
		return
	}

	respondOK(c, gin.H{
		"courses":            courses,
		"recent_sessions":    ended,
		"total_study_time":   totalStudyMinutes,
		"avg_session_length": avgSessionLength,
		"domain_performance": domains,
	})
}

func (s *Server) markChapterComplete(c *gin.Context) {
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

	entry, _, err := s.repos.Progress.GetOrCreate(ctx, uid, chapter.SubjectID, &chapterID, "completed")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "track chapter progress failed")
		return
	}
	if err := s.repos.Progress.MarkCompleted(ctx, entry.ID, 100); err != nil {
		respondError(c, http.StatusInternalServerError, "mark chapter complete failed")
		return
	}

	respondOK(c, gin.H{
		"message":    "chapter marked as completed",
		"chapter_id": chapterID,
		"title":      chapter.Title,
	})
}

func (s *Server) chapterStats(c *gin.Context) {
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

	stats, err := s.learn.ChapterStats(ctx, uid, chapterID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "compute chapter stats failed")
		return
	}

	respondOK(c, gin.H{
		"chapter":  chapterJSON(chapter),
		"progress": stats,
	})
}

func (s *Server) detailedProgress(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	courseID, err := paramInt(c, "course_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid course id")
		return
	}
	if _, err := s.repos.Courses.Get(ctx, courseID); err != nil {
		respondError(c, http.StatusNotFound, "course not found")
		return
	}

	detailed, err := s.learn.DetailedProgress(ctx, uid, courseID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "compute detailed progress failed")
		return
	}
	respondOK(c, detailed)
}

func (s *Server) endStudySession(c *gin.Context) {
	closed, err := s.track.End(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, sessions.ErrNoActiveSession) {
			respondMessage(c, "no active session")
			return
		}
		respondError(c, http.StatusInternalServerError, "end study session failed")
		return
	}
	respondOK(c, gin.H{
		"message": "study session ended successfully",
		"session": sessionJSON(closed),
	})
}
