package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/studium/internal/store"
)

func (s *Server) index(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	enrollments, err := s.repos.Enrollments.ListByUser(ctx, uid)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load enrollments failed")
		return
	}

	enrolled := make([]gin.H, 0, len(enrollments))
	var latest *store.Enrollment
	for _, e := range enrollments {
		course, err := s.repos.Courses.Get(ctx, e.CourseID)
		if err != nil {
			continue
		}
		enrolled = append(enrolled, gin.H{
			"course":           courseJSON(course),
			"overall_progress": e.OverallProgress,
			"last_activity":    e.LastActivity,
		})
		if latest == nil || e.LastActivity.After(latest.LastActivity) {
			latest = e
		}
	}

	all, err := s.repos.Courses.List(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load courses failed")
		return
	}
	allJSON := make([]gin.H, 0, len(all))
	for _, course := range all {
		allJSON = append(allJSON, courseJSON(course))
	}

	recent, err := s.track.Recent(ctx, uid, 5)
	if err != nil {
		s.log.Warn("load recent sessions failed", "error", err)
	}
	recentJSON := make([]gin.H, 0, len(recent))
	for _, sess := range recent {
		recentJSON = append(recentJSON, sessionJSON(sess))
	}

	var recommendations any = gin.H{}
	if latest != nil {
		if recs, err := s.learn.Recommendations(ctx, uid, latest.CourseID); err == nil {
			recommendations = recs
		}
	}

	respondOK(c, gin.H{
		"enrolled_courses": enrolled,
		"all_courses":      allJSON,
		"recent_sessions":  recentJSON,
		"recommendations":  recommendations,
	})
}

type createCourseRequest struct {
	CourseName         string   `json:"course_name"`
	Description        string   `json:"description"`
	AcademicLevel      string   `json:"academic_level"`
	Institution        string   `json:"institution"`
	CourseCode         string   `json:"course_code"`
	CareerGoals        []string `json:"career_goals"`
	LearningObjectives []string `json:"learning_objectives"`
}

func (s *Server) createCourse(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.CourseName = strings.TrimSpace(req.CourseName)
	if req.CourseName == "" {
		respondError(c, http.StatusBadRequest, "course name is required")
		return
	}
	if req.AcademicLevel == "" {
		req.AcademicLevel = "masters"
	}

	if _, err := s.repos.Courses.GetByName(ctx, req.CourseName); err == nil {
		respondError(c, http.StatusConflict, "a course with this name already exists")
		return
	}

	studentInput := map[string]any{
		"course_name":         req.CourseName,
		"university":          req.Institution,
		"course_code":         req.CourseCode,
		"learning_objectives": req.LearningObjectives,
		"career_goals":        req.CareerGoals,
		"academic_level":      req.AcademicLevel,
	}

	estimatedHours := 80
	var intelligence any
	enhanced, err := s.ai.EnhanceCourse(ctx, req.CourseName, req.Institution, studentInput)
	if err != nil {
		s.log.Warn("course intelligence gathering failed", "course", req.CourseName, "error", err)
		intelligence = gin.H{"error": err.Error(), "fallback": true}
	} else {
		intelligence = enhanced
		estimatedHours = estimateHours(enhanced.Synthesis.DifficultyLevel)
	}

	course, err := s.repos.Courses.Create(ctx, store.CourseInput{
		Name:          req.CourseName,
		Description:   req.Description,
		AcademicLevel: req.AcademicLevel,
		Institution:   req.Institution,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(c, http.StatusConflict, "a course with this name already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "create course failed")
		return
	}

	if err := s.repos.Courses.UpdateStats(ctx, course.ID, 0, 0, estimatedHours); err != nil {
		s.log.Warn("write course estimate failed", "course_id", course.ID, "error", err)
	}
	course.EstimatedStudyHours = estimatedHours

	if _, err := s.repos.Enrollments.Create(ctx, store.EnrollmentInput{
		UserID:              uid,
		CourseID:            course.ID,
		PreferredDifficulty: req.AcademicLevel,
	}); err != nil {
		s.log.Warn("enroll course creator failed", "course_id", course.ID, "error", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"course":       courseJSON(course),
		"intelligence": intelligence,
	})
}

// estimateHours maps a synthesized difficulty label to study hours.
func estimateHours(difficulty string) int {
	d := strings.ToLower(difficulty)
	switch {
	case strings.Contains(d, "advanced"):
		return 120
	case strings.Contains(d, "beginner"):
		return 60
	default:
		return 90
	}
}

func (s *Server) viewCourse(c *gin.Context) {
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

	enrollment, err := s.repos.Enrollments.Get(ctx, uid, courseID)
	if errors.Is(err, store.ErrNotFound) {
		enrollment, err = s.repos.Enrollments.Create(ctx, store.EnrollmentInput{
			UserID:   uid,
			CourseID: courseID,
		})
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load enrollment failed")
		return
	}
	if err := s.repos.Enrollments.TouchActivity(ctx, enrollment.ID); err != nil {
		s.log.Warn("touch enrollment failed", "enrollment_id", enrollment.ID, "error", err)
	}

	subjects, err := s.repos.Subjects.ListByCourse(ctx, courseID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load subjects failed")
		return
	}

	subjectsJSON := make([]gin.H, 0, len(subjects))
	for _, subject := range subjects {
		entries, err := s.repos.Progress.ForUserSubject(ctx, uid, subject.ID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "load progress failed")
			return
		}

		var overall gin.H
		chapterProgress := make(map[string]gin.H)
		for _, p := range entries {
			if p.ChapterID == nil {
				overall = progressJSON(p)
			} else {
				chapterProgress[strconv.Itoa(*p.ChapterID)] = progressJSON(p)
			}
		}

		subjectsJSON = append(subjectsJSON, gin.H{
			"subject":          subjectJSON(subject),
			"overall_progress": overall,
			"chapter_progress": chapterProgress,
		})
	}

	summary, err := s.learn.CourseProgress(ctx, uid, courseID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "compute progress failed")
		return
	}
	recommendations, err := s.learn.Recommendations(ctx, uid, courseID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "compute recommendations failed")
		return
	}

	if _, err := s.track.Start(ctx, store.SessionStartInput{UserID: uid, CourseID: &courseID}); err != nil {
		s.log.Warn("start study session failed", "course_id", courseID, "error", err)
	}

	respondOK(c, gin.H{
		"course":           courseJSON(course),
		"subjects":         subjectsJSON,
		"progress_summary": summary,
		"recommendations":  recommendations,
	})
}

func paramInt(c *gin.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}
