// Code generated by ent, DO NOT EDIT.

package userprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/studium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldUserID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldStatus, v))
}

// CompletionPercentage applies equality check predicate on the "completion_percentage" field. It's identical to CompletionPercentageEQ.
func CompletionPercentage(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCompletionPercentage, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldMasteryLevel, v))
}

// TimeSpentMinutes applies equality check predicate on the "time_spent_minutes" field. It's identical to TimeSpentMinutesEQ.
func TimeSpentMinutes(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// SessionsCount applies equality check predicate on the "sessions_count" field. It's identical to SessionsCountEQ.
func SessionsCount(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldSessionsCount, v))
}

// LastAccessed applies equality check predicate on the "last_accessed" field. It's identical to LastAccessedEQ.
func LastAccessed(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldLastAccessed, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// QuestionsAsked applies equality check predicate on the "questions_asked" field. It's identical to QuestionsAskedEQ.
func QuestionsAsked(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldQuestionsAsked, v))
}

// ConceptsBookmarked applies equality check predicate on the "concepts_bookmarked" field. It's identical to ConceptsBookmarkedEQ.
func ConceptsBookmarked(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldConceptsBookmarked, v))
}

// QuizzesTaken applies equality check predicate on the "quizzes_taken" field. It's identical to QuizzesTakenEQ.
func QuizzesTaken(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldQuizzesTaken, v))
}

// AvgQuizScore applies equality check predicate on the "avg_quiz_score" field. It's identical to AvgQuizScoreEQ.
func AvgQuizScore(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldAvgQuizScore, v))
}

// DifficultyPreference applies equality check predicate on the "difficulty_preference" field. It's identical to DifficultyPreferenceEQ.
func DifficultyPreference(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldDifficultyPreference, v))
}

// LearningVelocity applies equality check predicate on the "learning_velocity" field. It's identical to LearningVelocityEQ.
func LearningVelocity(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldLearningVelocity, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldSubjectID, v))
}

// ChapterID applies equality check predicate on the "chapter_id" field. It's identical to ChapterIDEQ.
func ChapterID(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldChapterID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContainsFold(FieldStatus, v))
}

// CompletionPercentageEQ applies the EQ predicate on the "completion_percentage" field.
func CompletionPercentageEQ(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCompletionPercentage, v))
}

// CompletionPercentageNEQ applies the NEQ predicate on the "completion_percentage" field.
func CompletionPercentageNEQ(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldCompletionPercentage, v))
}

// CompletionPercentageIn applies the In predicate on the "completion_percentage" field.
func CompletionPercentageIn(vs ...float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldCompletionPercentage, vs...))
}

// CompletionPercentageNotIn applies the NotIn predicate on the "completion_percentage" field.
func CompletionPercentageNotIn(vs ...float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldCompletionPercentage, vs...))
}

// CompletionPercentageGT applies the GT predicate on the "completion_percentage" field.
func CompletionPercentageGT(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldCompletionPercentage, v))
}

// CompletionPercentageGTE applies the GTE predicate on the "completion_percentage" field.
func CompletionPercentageGTE(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldCompletionPercentage, v))
}

// CompletionPercentageLT applies the LT predicate on the "completion_percentage" field.
func CompletionPercentageLT(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldCompletionPercentage, v))
}

// CompletionPercentageLTE applies the LTE predicate on the "completion_percentage" field.
func CompletionPercentageLTE(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldCompletionPercentage, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldMasteryLevel, v))
}

// MasteryLevelContains applies the Contains predicate on the "mastery_level" field.
func MasteryLevelContains(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContains(FieldMasteryLevel, v))
}

// MasteryLevelHasPrefix applies the HasPrefix predicate on the "mastery_level" field.
func MasteryLevelHasPrefix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasPrefix(FieldMasteryLevel, v))
}

// MasteryLevelHasSuffix applies the HasSuffix predicate on the "mastery_level" field.
func MasteryLevelHasSuffix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasSuffix(FieldMasteryLevel, v))
}

// MasteryLevelEqualFold applies the EqualFold predicate on the "mastery_level" field.
func MasteryLevelEqualFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEqualFold(FieldMasteryLevel, v))
}

// MasteryLevelContainsFold applies the ContainsFold predicate on the "mastery_level" field.
func MasteryLevelContainsFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContainsFold(FieldMasteryLevel, v))
}

// TimeSpentMinutesEQ applies the EQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesNEQ applies the NEQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesIn applies the In predicate on the "time_spent_minutes" field.
func TimeSpentMinutesIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesNotIn applies the NotIn predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesGT applies the GT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesGTE applies the GTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLT applies the LT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLTE applies the LTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldTimeSpentMinutes, v))
}

// SessionsCountEQ applies the EQ predicate on the "sessions_count" field.
func SessionsCountEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldSessionsCount, v))
}

// SessionsCountNEQ applies the NEQ predicate on the "sessions_count" field.
func SessionsCountNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldSessionsCount, v))
}

// SessionsCountIn applies the In predicate on the "sessions_count" field.
func SessionsCountIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldSessionsCount, vs...))
}

// SessionsCountNotIn applies the NotIn predicate on the "sessions_count" field.
func SessionsCountNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldSessionsCount, vs...))
}

// SessionsCountGT applies the GT predicate on the "sessions_count" field.
func SessionsCountGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldSessionsCount, v))
}

// SessionsCountGTE applies the GTE predicate on the "sessions_count" field.
func SessionsCountGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldSessionsCount, v))
}

// SessionsCountLT applies the LT predicate on the "sessions_count" field.
func SessionsCountLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldSessionsCount, v))
}

// SessionsCountLTE applies the LTE predicate on the "sessions_count" field.
func SessionsCountLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldSessionsCount, v))
}

// LastAccessedEQ applies the EQ predicate on the "last_accessed" field.
func LastAccessedEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldLastAccessed, v))
}

// LastAccessedNEQ applies the NEQ predicate on the "last_accessed" field.
func LastAccessedNEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldLastAccessed, v))
}

// LastAccessedIn applies the In predicate on the "last_accessed" field.
func LastAccessedIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldLastAccessed, vs...))
}

// LastAccessedNotIn applies the NotIn predicate on the "last_accessed" field.
func LastAccessedNotIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldLastAccessed, vs...))
}

// LastAccessedGT applies the GT predicate on the "last_accessed" field.
func LastAccessedGT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldLastAccessed, v))
}

// LastAccessedGTE applies the GTE predicate on the "last_accessed" field.
func LastAccessedGTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldLastAccessed, v))
}

// LastAccessedLT applies the LT predicate on the "last_accessed" field.
func LastAccessedLT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldLastAccessed, v))
}

// LastAccessedLTE applies the LTE predicate on the "last_accessed" field.
func LastAccessedLTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldLastAccessed, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotNull(FieldCompletedAt))
}

// QuestionsAskedEQ applies the EQ predicate on the "questions_asked" field.
func QuestionsAskedEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldQuestionsAsked, v))
}

// QuestionsAskedNEQ applies the NEQ predicate on the "questions_asked" field.
func QuestionsAskedNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldQuestionsAsked, v))
}

// QuestionsAskedIn applies the In predicate on the "questions_asked" field.
func QuestionsAskedIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldQuestionsAsked, vs...))
}

// QuestionsAskedNotIn applies the NotIn predicate on the "questions_asked" field.
func QuestionsAskedNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldQuestionsAsked, vs...))
}

// QuestionsAskedGT applies the GT predicate on the "questions_asked" field.
func QuestionsAskedGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldQuestionsAsked, v))
}

// QuestionsAskedGTE applies the GTE predicate on the "questions_asked" field.
func QuestionsAskedGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldQuestionsAsked, v))
}

// QuestionsAskedLT applies the LT predicate on the "questions_asked" field.
func QuestionsAskedLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldQuestionsAsked, v))
}

// QuestionsAskedLTE applies the LTE predicate on the "questions_asked" field.
func QuestionsAskedLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldQuestionsAsked, v))
}

// ConceptsBookmarkedEQ applies the EQ predicate on the "concepts_bookmarked" field.
func ConceptsBookmarkedEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldConceptsBookmarked, v))
}

// ConceptsBookmarkedNEQ applies the NEQ predicate on the "concepts_bookmarked" field.
func ConceptsBookmarkedNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldConceptsBookmarked, v))
}

// ConceptsBookmarkedIn applies the In predicate on the "concepts_bookmarked" field.
func ConceptsBookmarkedIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldConceptsBookmarked, vs...))
}

// ConceptsBookmarkedNotIn applies the NotIn predicate on the "concepts_bookmarked" field.
func ConceptsBookmarkedNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldConceptsBookmarked, vs...))
}

// ConceptsBookmarkedGT applies the GT predicate on the "concepts_bookmarked" field.
func ConceptsBookmarkedGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldConceptsBookmarked, v))
}

// ConceptsBookmarkedGTE applies the GTE predicate on the "concepts_bookmarked" field.
func ConceptsBookmarkedGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldConceptsBookmarked, v))
}

// ConceptsBookmarkedLT applies the LT predicate on the "concepts_bookmarked" field.
func ConceptsBookmarkedLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldConceptsBookmarked, v))
}

// ConceptsBookmarkedLTE applies the LTE predicate on the "concepts_bookmarked" field.
func ConceptsBookmarkedLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldConceptsBookmarked, v))
}

// QuizzesTakenEQ applies the EQ predicate on the "quizzes_taken" field.
func QuizzesTakenEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldQuizzesTaken, v))
}

// QuizzesTakenNEQ applies the NEQ predicate on the "quizzes_taken" field.
func QuizzesTakenNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldQuizzesTaken, v))
}

// QuizzesTakenIn applies the In predicate on the "quizzes_taken" field.
func QuizzesTakenIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldQuizzesTaken, vs...))
}

// QuizzesTakenNotIn applies the NotIn predicate on the "quizzes_taken" field.
func QuizzesTakenNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldQuizzesTaken, vs...))
}

// QuizzesTakenGT applies the GT predicate on the "quizzes_taken" field.
func QuizzesTakenGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldQuizzesTaken, v))
}

// QuizzesTakenGTE applies the GTE predicate on the "quizzes_taken" field.
func QuizzesTakenGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldQuizzesTaken, v))
}

// QuizzesTakenLT applies the LT predicate on the "quizzes_taken" field.
func QuizzesTakenLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldQuizzesTaken, v))
}

// QuizzesTakenLTE applies the LTE predicate on the "quizzes_taken" field.
func QuizzesTakenLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldQuizzesTaken, v))
}

// AvgQuizScoreEQ applies the EQ predicate on the "avg_quiz_score" field.
func AvgQuizScoreEQ(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldAvgQuizScore, v))
}

// AvgQuizScoreNEQ applies the NEQ predicate on the "avg_quiz_score" field.
func AvgQuizScoreNEQ(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldAvgQuizScore, v))
}

// AvgQuizScoreIn applies the In predicate on the "avg_quiz_score" field.
func AvgQuizScoreIn(vs ...float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldAvgQuizScore, vs...))
}

// AvgQuizScoreNotIn applies the NotIn predicate on the "avg_quiz_score" field.
func AvgQuizScoreNotIn(vs ...float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldAvgQuizScore, vs...))
}

// AvgQuizScoreGT applies the GT predicate on the "avg_quiz_score" field.
func AvgQuizScoreGT(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldAvgQuizScore, v))
}

// AvgQuizScoreGTE applies the GTE predicate on the "avg_quiz_score" field.
func AvgQuizScoreGTE(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldAvgQuizScore, v))
}

// AvgQuizScoreLT applies the LT predicate on the "avg_quiz_score" field.
func AvgQuizScoreLT(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldAvgQuizScore, v))
}

// AvgQuizScoreLTE applies the LTE predicate on the "avg_quiz_score" field.
func AvgQuizScoreLTE(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldAvgQuizScore, v))
}

// DifficultyPreferenceEQ applies the EQ predicate on the "difficulty_preference" field.
func DifficultyPreferenceEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldDifficultyPreference, v))
}

// DifficultyPreferenceNEQ applies the NEQ predicate on the "difficulty_preference" field.
func DifficultyPreferenceNEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldDifficultyPreference, v))
}

// DifficultyPreferenceIn applies the In predicate on the "difficulty_preference" field.
func DifficultyPreferenceIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldDifficultyPreference, vs...))
}

// DifficultyPreferenceNotIn applies the NotIn predicate on the "difficulty_preference" field.
func DifficultyPreferenceNotIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldDifficultyPreference, vs...))
}

// DifficultyPreferenceGT applies the GT predicate on the "difficulty_preference" field.
func DifficultyPreferenceGT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldDifficultyPreference, v))
}

// DifficultyPreferenceGTE applies the GTE predicate on the "difficulty_preference" field.
func DifficultyPreferenceGTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldDifficultyPreference, v))
}

// DifficultyPreferenceLT applies the LT predicate on the "difficulty_preference" field.
func DifficultyPreferenceLT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldDifficultyPreference, v))
}

// DifficultyPreferenceLTE applies the LTE predicate on the "difficulty_preference" field.
func DifficultyPreferenceLTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldDifficultyPreference, v))
}

// DifficultyPreferenceContains applies the Contains predicate on the "difficulty_preference" field.
func DifficultyPreferenceContains(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContains(FieldDifficultyPreference, v))
}

// DifficultyPreferenceHasPrefix applies the HasPrefix predicate on the "difficulty_preference" field.
func DifficultyPreferenceHasPrefix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasPrefix(FieldDifficultyPreference, v))
}

// DifficultyPreferenceHasSuffix applies the HasSuffix predicate on the "difficulty_preference" field.
func DifficultyPreferenceHasSuffix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasSuffix(FieldDifficultyPreference, v))
}

// DifficultyPreferenceEqualFold applies the EqualFold predicate on the "difficulty_preference" field.
func DifficultyPreferenceEqualFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEqualFold(FieldDifficultyPreference, v))
}

// DifficultyPreferenceContainsFold applies the ContainsFold predicate on the "difficulty_preference" field.
func DifficultyPreferenceContainsFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContainsFold(FieldDifficultyPreference, v))
}

// LearningVelocityEQ applies the EQ predicate on the "learning_velocity" field.
func LearningVelocityEQ(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldLearningVelocity, v))
}

// LearningVelocityNEQ applies the NEQ predicate on the "learning_velocity" field.
func LearningVelocityNEQ(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldLearningVelocity, v))
}

// LearningVelocityIn applies the In predicate on the "learning_velocity" field.
func LearningVelocityIn(vs ...float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldLearningVelocity, vs...))
}

// LearningVelocityNotIn applies the NotIn predicate on the "learning_velocity" field.
func LearningVelocityNotIn(vs ...float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldLearningVelocity, vs...))
}

// LearningVelocityGT applies the GT predicate on the "learning_velocity" field.
func LearningVelocityGT(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldLearningVelocity, v))
}

// LearningVelocityGTE applies the GTE predicate on the "learning_velocity" field.
func LearningVelocityGTE(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldLearningVelocity, v))
}

// LearningVelocityLT applies the LT predicate on the "learning_velocity" field.
func LearningVelocityLT(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldLearningVelocity, v))
}

// LearningVelocityLTE applies the LTE predicate on the "learning_velocity" field.
func LearningVelocityLTE(v float64) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldLearningVelocity, v))
}

// StruggleAreasIsNil applies the IsNil predicate on the "struggle_areas" field.
func StruggleAreasIsNil() predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIsNull(FieldStruggleAreas))
}

// StruggleAreasNotNil applies the NotNil predicate on the "struggle_areas" field.
func StruggleAreasNotNil() predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotNull(FieldStruggleAreas))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldSubjectID, vs...))
}

// ChapterIDEQ applies the EQ predicate on the "chapter_id" field.
func ChapterIDEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldChapterID, v))
}

// ChapterIDNEQ applies the NEQ predicate on the "chapter_id" field.
func ChapterIDNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldChapterID, v))
}

// ChapterIDIn applies the In predicate on the "chapter_id" field.
func ChapterIDIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldChapterID, vs...))
}

// ChapterIDNotIn applies the NotIn predicate on the "chapter_id" field.
func ChapterIDNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldChapterID, vs...))
}

// ChapterIDIsNil applies the IsNil predicate on the "chapter_id" field.
func ChapterIDIsNil() predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIsNull(FieldChapterID))
}

// ChapterIDNotNil applies the NotNil predicate on the "chapter_id" field.
func ChapterIDNotNil() predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotNull(FieldChapterID))
}

// HasSubject applies the HasEdge predicate on the "subject" edge.
func HasSubject() predicate.UserProgress {
	return predicate.UserProgress(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubjectWith applies the HasEdge predicate on the "subject" edge with a given conditions (other predicates).
func HasSubjectWith(preds ...predicate.Subject) predicate.UserProgress {
	return predicate.UserProgress(func(s *sql.Selector) {
		step := newSubjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChapter applies the HasEdge predicate on the "chapter" edge.
func HasChapter() predicate.UserProgress {
	return predicate.UserProgress(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChapterTable, ChapterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChapterWith applies the HasEdge predicate on the "chapter" edge with a given conditions (other predicates).
func HasChapterWith(preds ...predicate.Chapter) predicate.UserProgress {
	return predicate.UserProgress(func(s *sql.Selector) {
		step := newChapterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.NotPredicates(p))
}
