package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) testAIService(c *gin.Context) {
	respondOK(c, s.ai.TestConnection(c.Request.Context()))
}

func (s *Server) aiServiceStats(c *gin.Context) {
	respondOK(c, s.ai.Stats())
}

func (s *Server) courseIntelligence(c *gin.Context) {
	courseName := c.Param("course_name")
	university := c.Query("university")
	courseCode := c.Query("course_code")

	intelligence, err := s.ai.GatherCourseIntelligence(c.Request.Context(), courseName, university, courseCode)
	if err != nil {
		respondError(c, http.StatusBadGateway, "intelligence gathering failed: "+err.Error())
		return
	}
	respondOK(c, intelligence)
}

func (s *Server) health(c *gin.Context) {
	aiStatus := "configured"
	if s.ai == nil {
		aiStatus = "not_configured"
	}
	respondOK(c, gin.H{
		"status":     "healthy",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"database":   "connected",
		"ai_service": aiStatus,
	})
}
