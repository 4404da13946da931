package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studium/ent"
	"github.com/abhisek/studium/ent/bookmark"
)

// bookmarkRepo implements BookmarkRepo backed by ent.
type bookmarkRepo struct {
	client *ent.Client
}

func (r *bookmarkRepo) Create(ctx context.Context, in BookmarkInput) (*Bookmark, error) {
	b := r.client.Bookmark.Create().
		SetUserID(in.UserID).
		SetChapterID(in.ChapterID).
		SetContentBlockIndex(in.ContentBlockIndex).
		SetContentBlockType(in.ContentBlockType).
		SetTitle(in.Title).
		SetNote(in.Note).
		SetTags(in.Tags).
		SetDifficultyWhenBookmarked(in.DifficultyWhenBookmarked)
	if in.Reason != "" {
		b = b.SetReasonForBookmark(in.Reason)
	}
	bm, err := b.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("bookmark chapter %d block %d: %w", in.ChapterID, in.ContentBlockIndex, ErrDuplicate)
		}
		return nil, fmt.Errorf("create bookmark: %w", err)
	}
	return bookmarkFromEnt(bm), nil
}

func (r *bookmarkRepo) Delete(ctx context.Context, id int, userID string) error {
	n, err := r.client.Bookmark.Delete().
		Where(
			bookmark.ID(id),
			bookmark.UserID(userID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("bookmark %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *bookmarkRepo) ListByUser(ctx context.Context, userID string) ([]*BookmarkView, error) {
	rows, err := r.client.Bookmark.Query().
		Where(bookmark.UserID(userID)).
		WithChapter(func(q *ent.ChapterQuery) {
			q.WithSubject(func(q *ent.SubjectQuery) {
				q.WithCourse()
			})
		}).
		Order(ent.Desc(bookmark.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	out := make([]*BookmarkView, len(rows))
	for i, bm := range rows {
		v := &BookmarkView{Bookmark: *bookmarkFromEnt(bm)}
		if ch := bm.Edges.Chapter; ch != nil {
			v.ChapterTitle = ch.Title
			v.ChapterNumber = ch.ChapterNumber
			if s := ch.Edges.Subject; s != nil {
				v.SubjectName = s.Name
				v.SubjectDomain = s.SubjectDomain
				v.CourseID = s.CourseID
				if c := s.Edges.Course; c != nil {
					v.CourseName = c.Name
				}
			}
		}
		out[i] = v
	}
	return out, nil
}

func (r *bookmarkRepo) ListByUserChapter(ctx context.Context, userID string, chapterID int) ([]*Bookmark, error) {
	rows, err := r.client.Bookmark.Query().
		Where(
			bookmark.UserID(userID),
			bookmark.ChapterID(chapterID),
		).
		Order(ent.Asc(bookmark.FieldContentBlockIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("bookmarks for chapter: %w", err)
	}
	out := make([]*Bookmark, len(rows))
	for i, bm := range rows {
		out[i] = bookmarkFromEnt(bm)
	}
	return out, nil
}

func bookmarkFromEnt(b *ent.Bookmark) *Bookmark {
	return &Bookmark{
		ID:                       b.ID,
		UserID:                   b.UserID,
		ChapterID:                b.ChapterID,
		ContentBlockIndex:        b.ContentBlockIndex,
		ContentBlockType:         b.ContentBlockType,
		Title:                    b.Title,
		Note:                     b.Note,
		Tags:                     b.Tags,
		Reason:                   b.ReasonForBookmark,
		DifficultyWhenBookmarked: b.DifficultyWhenBookmarked,
		CreatedAt:                b.CreatedAt,
	}
}
