package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(s.ginMode())

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())
	r.MaxMultipartMemory = s.cfg.MaxUploadBytes

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", s.health)

	app := r.Group("/", s.identify())
	{
		app.GET("/", s.index)

		app.POST("/course/create", s.createCourse)
		app.GET("/course/:course_id", s.viewCourse)
		app.GET("/course/:course_id/subject/:subject_id", s.viewSubject)
		app.GET("/course/:course_id/subject/:subject_id/chapter/:chapter_id", s.viewChapter)
		app.POST("/course/:course_id/upload", s.uploadPDF)

		app.POST("/ask/:chapter_id", s.askQuestion)
		app.GET("/generate-quiz/:chapter_id", s.generateQuiz)
		app.POST("/submit-quiz/:chapter_id", s.submitQuiz)
		app.POST("/mark-chapter-complete/:chapter_id", s.markChapterComplete)

		app.GET("/bookmarks", s.listBookmarks)
		app.DELETE("/bookmark/remove/:bookmark_id", s.removeBookmark)

		app.GET("/analytics", s.analytics)

		api := app.Group("/api")
		{
			api.POST("/simplify-concept", s.simplifyConcept)
			api.POST("/generate-visualization", s.generateVisualization)

			api.POST("/bookmark/add", s.addBookmark)
			api.GET("/bookmark/count", s.bookmarkCount)

			api.GET("/chapter/:chapter_id/stats", s.chapterStats)
			api.GET("/course/:course_id/detailed-progress", s.detailedProgress)
			api.POST("/end-study-session", s.endStudySession)

			api.GET("/ai-service/test", s.testAIService)
			api.GET("/ai-service/stats", s.aiServiceStats)
			api.GET("/course-intelligence/:course_name", s.courseIntelligence)
		}
	}

	return r
}
