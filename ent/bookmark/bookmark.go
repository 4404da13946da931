// Code generated by ent, DO NOT EDIT.

package bookmark

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the bookmark type in the database.
	Label = "bookmark"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldContentBlockIndex holds the string denoting the content_block_index field in the database.
	FieldContentBlockIndex = "content_block_index"
	// FieldContentBlockType holds the string denoting the content_block_type field in the database.
	FieldContentBlockType = "content_block_type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldDifficultyWhenBookmarked holds the string denoting the difficulty_when_bookmarked field in the database.
	FieldDifficultyWhenBookmarked = "difficulty_when_bookmarked"
	// FieldReasonForBookmark holds the string denoting the reason_for_bookmark field in the database.
	FieldReasonForBookmark = "reason_for_bookmark"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastReviewed holds the string denoting the last_reviewed field in the database.
	FieldLastReviewed = "last_reviewed"
	// FieldChapterID holds the string denoting the chapter_id field in the database.
	FieldChapterID = "chapter_id"
	// EdgeChapter holds the string denoting the chapter edge name in mutations.
	EdgeChapter = "chapter"
	// Table holds the table name of the bookmark in the database.
	Table = "bookmarks"
	// ChapterTable is the table that holds the chapter relation/edge.
	ChapterTable = "bookmarks"
	// ChapterInverseTable is the table name for the Chapter entity.
	// It exists in this package in order to avoid circular dependency with the "chapter" package.
	ChapterInverseTable = "chapters"
	// ChapterColumn is the table column denoting the chapter relation/edge.
	ChapterColumn = "chapter_id"
)

// Columns holds all SQL columns for bookmark fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldContentBlockIndex,
	FieldContentBlockType,
	FieldTitle,
	FieldNote,
	FieldTags,
	FieldDifficultyWhenBookmarked,
	FieldReasonForBookmark,
	FieldCreatedAt,
	FieldLastReviewed,
	FieldChapterID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultContentBlockIndex holds the default value on creation for the "content_block_index" field.
	DefaultContentBlockIndex int
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultReasonForBookmark holds the default value on creation for the "reason_for_bookmark" field.
	DefaultReasonForBookmark string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Bookmark queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByContentBlockIndex orders the results by the content_block_index field.
func ByContentBlockIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentBlockIndex, opts...).ToFunc()
}

// ByContentBlockType orders the results by the content_block_type field.
func ByContentBlockType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentBlockType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByDifficultyWhenBookmarked orders the results by the difficulty_when_bookmarked field.
func ByDifficultyWhenBookmarked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyWhenBookmarked, opts...).ToFunc()
}

// ByReasonForBookmark orders the results by the reason_for_bookmark field.
func ByReasonForBookmark(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasonForBookmark, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastReviewed orders the results by the last_reviewed field.
func ByLastReviewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewed, opts...).ToFunc()
}

// ByChapterID orders the results by the chapter_id field.
func ByChapterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterID, opts...).ToFunc()
}

// ByChapterField orders the results by chapter field.
func ByChapterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChapterStep(), sql.OrderByField(field, opts...))
	}
}
func newChapterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChapterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChapterTable, ChapterColumn),
	)
}
