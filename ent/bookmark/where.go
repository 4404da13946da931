// Code generated by ent, DO NOT EDIT.

package bookmark

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/studium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldUserID, v))
}

// ContentBlockIndex applies equality check predicate on the "content_block_index" field. It's identical to ContentBlockIndexEQ.
func ContentBlockIndex(v int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldContentBlockIndex, v))
}

// ContentBlockType applies equality check predicate on the "content_block_type" field. It's identical to ContentBlockTypeEQ.
func ContentBlockType(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldContentBlockType, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldTitle, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldNote, v))
}

// DifficultyWhenBookmarked applies equality check predicate on the "difficulty_when_bookmarked" field. It's identical to DifficultyWhenBookmarkedEQ.
func DifficultyWhenBookmarked(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldDifficultyWhenBookmarked, v))
}

// ReasonForBookmark applies equality check predicate on the "reason_for_bookmark" field. It's identical to ReasonForBookmarkEQ.
func ReasonForBookmark(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldReasonForBookmark, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldCreatedAt, v))
}

// LastReviewed applies equality check predicate on the "last_reviewed" field. It's identical to LastReviewedEQ.
func LastReviewed(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldLastReviewed, v))
}

// ChapterID applies equality check predicate on the "chapter_id" field. It's identical to ChapterIDEQ.
func ChapterID(v int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldChapterID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldContainsFold(FieldUserID, v))
}

// ContentBlockIndexEQ applies the EQ predicate on the "content_block_index" field.
func ContentBlockIndexEQ(v int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldContentBlockIndex, v))
}

// ContentBlockIndexNEQ applies the NEQ predicate on the "content_block_index" field.
func ContentBlockIndexNEQ(v int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNEQ(FieldContentBlockIndex, v))
}

// ContentBlockIndexIn applies the In predicate on the "content_block_index" field.
func ContentBlockIndexIn(vs ...int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIn(FieldContentBlockIndex, vs...))
}

// ContentBlockIndexNotIn applies the NotIn predicate on the "content_block_index" field.
func ContentBlockIndexNotIn(vs ...int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotIn(FieldContentBlockIndex, vs...))
}

// ContentBlockIndexGT applies the GT predicate on the "content_block_index" field.
func ContentBlockIndexGT(v int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGT(FieldContentBlockIndex, v))
}

// ContentBlockIndexGTE applies the GTE predicate on the "content_block_index" field.
func ContentBlockIndexGTE(v int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGTE(FieldContentBlockIndex, v))
}

// ContentBlockIndexLT applies the LT predicate on the "content_block_index" field.
func ContentBlockIndexLT(v int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLT(FieldContentBlockIndex, v))
}

// ContentBlockIndexLTE applies the LTE predicate on the "content_block_index" field.
func ContentBlockIndexLTE(v int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLTE(FieldContentBlockIndex, v))
}

// ContentBlockTypeEQ applies the EQ predicate on the "content_block_type" field.
func ContentBlockTypeEQ(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldContentBlockType, v))
}

// ContentBlockTypeNEQ applies the NEQ predicate on the "content_block_type" field.
func ContentBlockTypeNEQ(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNEQ(FieldContentBlockType, v))
}

// ContentBlockTypeIn applies the In predicate on the "content_block_type" field.
func ContentBlockTypeIn(vs ...string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIn(FieldContentBlockType, vs...))
}

// ContentBlockTypeNotIn applies the NotIn predicate on the "content_block_type" field.
func ContentBlockTypeNotIn(vs ...string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotIn(FieldContentBlockType, vs...))
}

// ContentBlockTypeGT applies the GT predicate on the "content_block_type" field.
func ContentBlockTypeGT(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGT(FieldContentBlockType, v))
}

// ContentBlockTypeGTE applies the GTE predicate on the "content_block_type" field.
func ContentBlockTypeGTE(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGTE(FieldContentBlockType, v))
}

// ContentBlockTypeLT applies the LT predicate on the "content_block_type" field.
func ContentBlockTypeLT(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLT(FieldContentBlockType, v))
}

// ContentBlockTypeLTE applies the LTE predicate on the "content_block_type" field.
func ContentBlockTypeLTE(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLTE(FieldContentBlockType, v))
}

// ContentBlockTypeContains applies the Contains predicate on the "content_block_type" field.
func ContentBlockTypeContains(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldContains(FieldContentBlockType, v))
}

// ContentBlockTypeHasPrefix applies the HasPrefix predicate on the "content_block_type" field.
func ContentBlockTypeHasPrefix(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldHasPrefix(FieldContentBlockType, v))
}

// ContentBlockTypeHasSuffix applies the HasSuffix predicate on the "content_block_type" field.
func ContentBlockTypeHasSuffix(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldHasSuffix(FieldContentBlockType, v))
}

// ContentBlockTypeIsNil applies the IsNil predicate on the "content_block_type" field.
func ContentBlockTypeIsNil() predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIsNull(FieldContentBlockType))
}

// ContentBlockTypeNotNil applies the NotNil predicate on the "content_block_type" field.
func ContentBlockTypeNotNil() predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotNull(FieldContentBlockType))
}

// ContentBlockTypeEqualFold applies the EqualFold predicate on the "content_block_type" field.
func ContentBlockTypeEqualFold(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEqualFold(FieldContentBlockType, v))
}

// ContentBlockTypeContainsFold applies the ContainsFold predicate on the "content_block_type" field.
func ContentBlockTypeContainsFold(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldContainsFold(FieldContentBlockType, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldContainsFold(FieldTitle, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldContainsFold(FieldNote, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotNull(FieldTags))
}

// DifficultyWhenBookmarkedEQ applies the EQ predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedEQ(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldDifficultyWhenBookmarked, v))
}

// DifficultyWhenBookmarkedNEQ applies the NEQ predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedNEQ(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNEQ(FieldDifficultyWhenBookmarked, v))
}

// DifficultyWhenBookmarkedIn applies the In predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedIn(vs ...string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIn(FieldDifficultyWhenBookmarked, vs...))
}

// DifficultyWhenBookmarkedNotIn applies the NotIn predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedNotIn(vs ...string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotIn(FieldDifficultyWhenBookmarked, vs...))
}

// DifficultyWhenBookmarkedGT applies the GT predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedGT(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGT(FieldDifficultyWhenBookmarked, v))
}

// DifficultyWhenBookmarkedGTE applies the GTE predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedGTE(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGTE(FieldDifficultyWhenBookmarked, v))
}

// DifficultyWhenBookmarkedLT applies the LT predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedLT(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLT(FieldDifficultyWhenBookmarked, v))
}

// DifficultyWhenBookmarkedLTE applies the LTE predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedLTE(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLTE(FieldDifficultyWhenBookmarked, v))
}

// DifficultyWhenBookmarkedContains applies the Contains predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedContains(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldContains(FieldDifficultyWhenBookmarked, v))
}

// DifficultyWhenBookmarkedHasPrefix applies the HasPrefix predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedHasPrefix(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldHasPrefix(FieldDifficultyWhenBookmarked, v))
}

// DifficultyWhenBookmarkedHasSuffix applies the HasSuffix predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedHasSuffix(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldHasSuffix(FieldDifficultyWhenBookmarked, v))
}

// DifficultyWhenBookmarkedIsNil applies the IsNil predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedIsNil() predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIsNull(FieldDifficultyWhenBookmarked))
}

// DifficultyWhenBookmarkedNotNil applies the NotNil predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedNotNil() predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotNull(FieldDifficultyWhenBookmarked))
}

// DifficultyWhenBookmarkedEqualFold applies the EqualFold predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedEqualFold(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEqualFold(FieldDifficultyWhenBookmarked, v))
}

// DifficultyWhenBookmarkedContainsFold applies the ContainsFold predicate on the "difficulty_when_bookmarked" field.
func DifficultyWhenBookmarkedContainsFold(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldContainsFold(FieldDifficultyWhenBookmarked, v))
}

// ReasonForBookmarkEQ applies the EQ predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkEQ(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldReasonForBookmark, v))
}

// ReasonForBookmarkNEQ applies the NEQ predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkNEQ(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNEQ(FieldReasonForBookmark, v))
}

// ReasonForBookmarkIn applies the In predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkIn(vs ...string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIn(FieldReasonForBookmark, vs...))
}

// ReasonForBookmarkNotIn applies the NotIn predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkNotIn(vs ...string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotIn(FieldReasonForBookmark, vs...))
}

// ReasonForBookmarkGT applies the GT predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkGT(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGT(FieldReasonForBookmark, v))
}

// ReasonForBookmarkGTE applies the GTE predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkGTE(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGTE(FieldReasonForBookmark, v))
}

// ReasonForBookmarkLT applies the LT predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkLT(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLT(FieldReasonForBookmark, v))
}

// ReasonForBookmarkLTE applies the LTE predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkLTE(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLTE(FieldReasonForBookmark, v))
}

// ReasonForBookmarkContains applies the Contains predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkContains(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldContains(FieldReasonForBookmark, v))
}

// ReasonForBookmarkHasPrefix applies the HasPrefix predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkHasPrefix(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldHasPrefix(FieldReasonForBookmark, v))
}

// ReasonForBookmarkHasSuffix applies the HasSuffix predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkHasSuffix(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldHasSuffix(FieldReasonForBookmark, v))
}

// ReasonForBookmarkEqualFold applies the EqualFold predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkEqualFold(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEqualFold(FieldReasonForBookmark, v))
}

// ReasonForBookmarkContainsFold applies the ContainsFold predicate on the "reason_for_bookmark" field.
func ReasonForBookmarkContainsFold(v string) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldContainsFold(FieldReasonForBookmark, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLTE(FieldCreatedAt, v))
}

// LastReviewedEQ applies the EQ predicate on the "last_reviewed" field.
func LastReviewedEQ(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldLastReviewed, v))
}

// LastReviewedNEQ applies the NEQ predicate on the "last_reviewed" field.
func LastReviewedNEQ(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNEQ(FieldLastReviewed, v))
}

// LastReviewedIn applies the In predicate on the "last_reviewed" field.
func LastReviewedIn(vs ...time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIn(FieldLastReviewed, vs...))
}

// LastReviewedNotIn applies the NotIn predicate on the "last_reviewed" field.
func LastReviewedNotIn(vs ...time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotIn(FieldLastReviewed, vs...))
}

// LastReviewedGT applies the GT predicate on the "last_reviewed" field.
func LastReviewedGT(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGT(FieldLastReviewed, v))
}

// LastReviewedGTE applies the GTE predicate on the "last_reviewed" field.
func LastReviewedGTE(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldGTE(FieldLastReviewed, v))
}

// LastReviewedLT applies the LT predicate on the "last_reviewed" field.
func LastReviewedLT(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLT(FieldLastReviewed, v))
}

// LastReviewedLTE applies the LTE predicate on the "last_reviewed" field.
func LastReviewedLTE(v time.Time) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldLTE(FieldLastReviewed, v))
}

// LastReviewedIsNil applies the IsNil predicate on the "last_reviewed" field.
func LastReviewedIsNil() predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIsNull(FieldLastReviewed))
}

// LastReviewedNotNil applies the NotNil predicate on the "last_reviewed" field.
func LastReviewedNotNil() predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotNull(FieldLastReviewed))
}

// ChapterIDEQ applies the EQ predicate on the "chapter_id" field.
func ChapterIDEQ(v int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldEQ(FieldChapterID, v))
}

// ChapterIDNEQ applies the NEQ predicate on the "chapter_id" field.
func ChapterIDNEQ(v int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNEQ(FieldChapterID, v))
}

// ChapterIDIn applies the In predicate on the "chapter_id" field.
func ChapterIDIn(vs ...int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldIn(FieldChapterID, vs...))
}

// ChapterIDNotIn applies the NotIn predicate on the "chapter_id" field.
func ChapterIDNotIn(vs ...int) predicate.Bookmark {
	return predicate.Bookmark(sql.FieldNotIn(FieldChapterID, vs...))
}

// HasChapter applies the HasEdge predicate on the "chapter" edge.
func HasChapter() predicate.Bookmark {
	return predicate.Bookmark(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChapterTable, ChapterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChapterWith applies the HasEdge predicate on the "chapter" edge with a given conditions (other predicates).
func HasChapterWith(preds ...predicate.Chapter) predicate.Bookmark {
	return predicate.Bookmark(func(s *sql.Selector) {
		step := newChapterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bookmark) predicate.Bookmark {
	return predicate.Bookmark(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bookmark) predicate.Bookmark {
	return predicate.Bookmark(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bookmark) predicate.Bookmark {
	return predicate.Bookmark(sql.NotPredicates(p))
}
