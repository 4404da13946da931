package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/studium/internal/store"
)

type addBookmarkRequest struct {
	ChapterID         int    `json:"chapter_id"`
	ContentBlockIndex int    `json:"content_block_index"`
	ContentBlockType  string `json:"content_block_type"`
	Title             string `json:"title"`
	Note              string `json:"note"`
	Reason            string `json:"reason"`
}

func (s *Server) addBookmark(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	var req addBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ChapterID == 0 || req.Title == "" {
		respondError(c, http.StatusBadRequest, "missing required fields")
		return
	}
	if req.ContentBlockType == "" {
		req.ContentBlockType = "concept"
	}
	if req.Reason == "" {
		req.Reason = "important"
	}

	chapter, err := s.repos.Chapters.Get(ctx, req.ChapterID)
	if err != nil {
		respondError(c, http.StatusNotFound, "chapter not found")
		return
	}

	difficulty := "intermediate"
	entry, _, err := s.repos.Progress.GetOrCreate(ctx, uid, chapter.SubjectID, &req.ChapterID, "in_progress")
	if err == nil && entry.DifficultyPreference != "" {
		difficulty = entry.DifficultyPreference
	}

	bookmark, err := s.repos.Bookmarks.Create(ctx, store.BookmarkInput{
		UserID:                   uid,
		ChapterID:                req.ChapterID,
		ContentBlockIndex:        req.ContentBlockIndex,
		ContentBlockType:         req.ContentBlockType,
		Title:                    req.Title,
		Note:                     req.Note,
		Reason:                   req.Reason,
		DifficultyWhenBookmarked: difficulty,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(c, http.StatusBadRequest, "bookmark already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "save bookmark failed")
		return
	}

	if entry != nil {
		if err := s.repos.Progress.IncConceptsBookmarked(ctx, entry.ID); err != nil {
			s.log.Warn("count bookmark failed", "progress_id", entry.ID, "error", err)
		}
	}

	s.track.LogActivity(ctx, uid, "bookmark_created", map[string]any{
		"content_type": req.ContentBlockType,
		"reason":       req.Reason,
	})

	respondOK(c, gin.H{
		"message":     "bookmark added successfully",
		"bookmark_id": bookmark.ID,
	})
}

func (s *Server) removeBookmark(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	bookmarkID, err := paramInt(c, "bookmark_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid bookmark id")
		return
	}

	if err := s.repos.Bookmarks.Delete(ctx, bookmarkID, uid); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "bookmark not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "remove bookmark failed")
		return
	}

	respondMessage(c, "bookmark removed successfully")
}

// listBookmarks groups the user's bookmarks by course then subject,
// newest first within each group.
func (s *Server) listBookmarks(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	views, err := s.repos.Bookmarks.ListByUser(ctx, uid)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load bookmarks failed")
		return
	}

	type subjectGroup struct {
		Domain    string  `json:"domain"`
		Bookmarks []gin.H `json:"bookmarks"`
	}

	organized := make(map[string]map[string]*subjectGroup)
	for _, v := range views {
		course, ok := organized[v.CourseName]
		if !ok {
			course = make(map[string]*subjectGroup)
			organized[v.CourseName] = course
		}
		group, ok := course[v.SubjectName]
		if !ok {
			group = &subjectGroup{Domain: v.SubjectDomain}
			course[v.SubjectName] = group
		}

		entry := bookmarkJSON(&v.Bookmark)
		entry["chapter_title"] = v.ChapterTitle
		entry["chapter_number"] = v.ChapterNumber
		group.Bookmarks = append(group.Bookmarks, entry)
	}

	respondOK(c, gin.H{"bookmarks": organized, "total": len(views)})
}

func (s *Server) bookmarkCount(c *gin.Context) {
	views, err := s.repos.Bookmarks.ListByUser(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load bookmarks failed")
		return
	}
	respondOK(c, gin.H{"count": len(views)})
}
