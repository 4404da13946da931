// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/studium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldUserID, v))
}

// SessionStart applies equality check predicate on the "session_start" field. It's identical to SessionStartEQ.
func SessionStart(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSessionStart, v))
}

// SessionEnd applies equality check predicate on the "session_end" field. It's identical to SessionEndEQ.
func SessionEnd(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSessionEnd, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDurationMinutes, v))
}

// DifficultyAdjustments applies equality check predicate on the "difficulty_adjustments" field. It's identical to DifficultyAdjustmentsEQ.
func DifficultyAdjustments(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDifficultyAdjustments, v))
}

// CompletionProgress applies equality check predicate on the "completion_progress" field. It's identical to CompletionProgressEQ.
func CompletionProgress(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCompletionProgress, v))
}

// QuestionsAsked applies equality check predicate on the "questions_asked" field. It's identical to QuestionsAskedEQ.
func QuestionsAsked(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldQuestionsAsked, v))
}

// BookmarksCreated applies equality check predicate on the "bookmarks_created" field. It's identical to BookmarksCreatedEQ.
func BookmarksCreated(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldBookmarksCreated, v))
}

// QuizzesCompleted applies equality check predicate on the "quizzes_completed" field. It's identical to QuizzesCompletedEQ.
func QuizzesCompleted(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldQuizzesCompleted, v))
}

// EngagementScore applies equality check predicate on the "engagement_score" field. It's identical to EngagementScoreEQ.
func EngagementScore(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldEngagementScore, v))
}

// FocusScore applies equality check predicate on the "focus_score" field. It's identical to FocusScoreEQ.
func FocusScore(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldFocusScore, v))
}

// LearningEffectiveness applies equality check predicate on the "learning_effectiveness" field. It's identical to LearningEffectivenessEQ.
func LearningEffectiveness(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldLearningEffectiveness, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCourseID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSubjectID, v))
}

// ChapterID applies equality check predicate on the "chapter_id" field. It's identical to ChapterIDEQ.
func ChapterID(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldChapterID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldUserID, v))
}

// SessionStartEQ applies the EQ predicate on the "session_start" field.
func SessionStartEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSessionStart, v))
}

// SessionStartNEQ applies the NEQ predicate on the "session_start" field.
func SessionStartNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldSessionStart, v))
}

// SessionStartIn applies the In predicate on the "session_start" field.
func SessionStartIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldSessionStart, vs...))
}

// SessionStartNotIn applies the NotIn predicate on the "session_start" field.
func SessionStartNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldSessionStart, vs...))
}

// SessionStartGT applies the GT predicate on the "session_start" field.
func SessionStartGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldSessionStart, v))
}

// SessionStartGTE applies the GTE predicate on the "session_start" field.
func SessionStartGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldSessionStart, v))
}

// SessionStartLT applies the LT predicate on the "session_start" field.
func SessionStartLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldSessionStart, v))
}

// SessionStartLTE applies the LTE predicate on the "session_start" field.
func SessionStartLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldSessionStart, v))
}

// SessionEndEQ applies the EQ predicate on the "session_end" field.
func SessionEndEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSessionEnd, v))
}

// SessionEndNEQ applies the NEQ predicate on the "session_end" field.
func SessionEndNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldSessionEnd, v))
}

// SessionEndIn applies the In predicate on the "session_end" field.
func SessionEndIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldSessionEnd, vs...))
}

// SessionEndNotIn applies the NotIn predicate on the "session_end" field.
func SessionEndNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldSessionEnd, vs...))
}

// SessionEndGT applies the GT predicate on the "session_end" field.
func SessionEndGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldSessionEnd, v))
}

// SessionEndGTE applies the GTE predicate on the "session_end" field.
func SessionEndGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldSessionEnd, v))
}

// SessionEndLT applies the LT predicate on the "session_end" field.
func SessionEndLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldSessionEnd, v))
}

// SessionEndLTE applies the LTE predicate on the "session_end" field.
func SessionEndLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldSessionEnd, v))
}

// SessionEndIsNil applies the IsNil predicate on the "session_end" field.
func SessionEndIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldSessionEnd))
}

// SessionEndNotNil applies the NotNil predicate on the "session_end" field.
func SessionEndNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldSessionEnd))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldDurationMinutes, v))
}

// DurationMinutesIsNil applies the IsNil predicate on the "duration_minutes" field.
func DurationMinutesIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldDurationMinutes))
}

// DurationMinutesNotNil applies the NotNil predicate on the "duration_minutes" field.
func DurationMinutesNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldDurationMinutes))
}

// ActivitiesIsNil applies the IsNil predicate on the "activities" field.
func ActivitiesIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldActivities))
}

// ActivitiesNotNil applies the NotNil predicate on the "activities" field.
func ActivitiesNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldActivities))
}

// ConceptsStudiedIsNil applies the IsNil predicate on the "concepts_studied" field.
func ConceptsStudiedIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldConceptsStudied))
}

// ConceptsStudiedNotNil applies the NotNil predicate on the "concepts_studied" field.
func ConceptsStudiedNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldConceptsStudied))
}

// DifficultyAdjustmentsEQ applies the EQ predicate on the "difficulty_adjustments" field.
func DifficultyAdjustmentsEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDifficultyAdjustments, v))
}

// DifficultyAdjustmentsNEQ applies the NEQ predicate on the "difficulty_adjustments" field.
func DifficultyAdjustmentsNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldDifficultyAdjustments, v))
}

// DifficultyAdjustmentsIn applies the In predicate on the "difficulty_adjustments" field.
func DifficultyAdjustmentsIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldDifficultyAdjustments, vs...))
}

// DifficultyAdjustmentsNotIn applies the NotIn predicate on the "difficulty_adjustments" field.
func DifficultyAdjustmentsNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldDifficultyAdjustments, vs...))
}

// DifficultyAdjustmentsGT applies the GT predicate on the "difficulty_adjustments" field.
func DifficultyAdjustmentsGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldDifficultyAdjustments, v))
}

// DifficultyAdjustmentsGTE applies the GTE predicate on the "difficulty_adjustments" field.
func DifficultyAdjustmentsGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldDifficultyAdjustments, v))
}

// DifficultyAdjustmentsLT applies the LT predicate on the "difficulty_adjustments" field.
func DifficultyAdjustmentsLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldDifficultyAdjustments, v))
}

// DifficultyAdjustmentsLTE applies the LTE predicate on the "difficulty_adjustments" field.
func DifficultyAdjustmentsLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldDifficultyAdjustments, v))
}

// CompletionProgressEQ applies the EQ predicate on the "completion_progress" field.
func CompletionProgressEQ(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCompletionProgress, v))
}

// CompletionProgressNEQ applies the NEQ predicate on the "completion_progress" field.
func CompletionProgressNEQ(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldCompletionProgress, v))
}

// CompletionProgressIn applies the In predicate on the "completion_progress" field.
func CompletionProgressIn(vs ...float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldCompletionProgress, vs...))
}

// CompletionProgressNotIn applies the NotIn predicate on the "completion_progress" field.
func CompletionProgressNotIn(vs ...float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldCompletionProgress, vs...))
}

// CompletionProgressGT applies the GT predicate on the "completion_progress" field.
func CompletionProgressGT(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldCompletionProgress, v))
}

// CompletionProgressGTE applies the GTE predicate on the "completion_progress" field.
func CompletionProgressGTE(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldCompletionProgress, v))
}

// CompletionProgressLT applies the LT predicate on the "completion_progress" field.
func CompletionProgressLT(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldCompletionProgress, v))
}

// CompletionProgressLTE applies the LTE predicate on the "completion_progress" field.
func CompletionProgressLTE(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldCompletionProgress, v))
}

// QuestionsAskedEQ applies the EQ predicate on the "questions_asked" field.
func QuestionsAskedEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldQuestionsAsked, v))
}

// QuestionsAskedNEQ applies the NEQ predicate on the "questions_asked" field.
func QuestionsAskedNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldQuestionsAsked, v))
}

// QuestionsAskedIn applies the In predicate on the "questions_asked" field.
func QuestionsAskedIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldQuestionsAsked, vs...))
}

// QuestionsAskedNotIn applies the NotIn predicate on the "questions_asked" field.
func QuestionsAskedNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldQuestionsAsked, vs...))
}

// QuestionsAskedGT applies the GT predicate on the "questions_asked" field.
func QuestionsAskedGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldQuestionsAsked, v))
}

// QuestionsAskedGTE applies the GTE predicate on the "questions_asked" field.
func QuestionsAskedGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldQuestionsAsked, v))
}

// QuestionsAskedLT applies the LT predicate on the "questions_asked" field.
func QuestionsAskedLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldQuestionsAsked, v))
}

// QuestionsAskedLTE applies the LTE predicate on the "questions_asked" field.
func QuestionsAskedLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldQuestionsAsked, v))
}

// BookmarksCreatedEQ applies the EQ predicate on the "bookmarks_created" field.
func BookmarksCreatedEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldBookmarksCreated, v))
}

// BookmarksCreatedNEQ applies the NEQ predicate on the "bookmarks_created" field.
func BookmarksCreatedNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldBookmarksCreated, v))
}

// BookmarksCreatedIn applies the In predicate on the "bookmarks_created" field.
func BookmarksCreatedIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldBookmarksCreated, vs...))
}

// BookmarksCreatedNotIn applies the NotIn predicate on the "bookmarks_created" field.
func BookmarksCreatedNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldBookmarksCreated, vs...))
}

// BookmarksCreatedGT applies the GT predicate on the "bookmarks_created" field.
func BookmarksCreatedGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldBookmarksCreated, v))
}

// BookmarksCreatedGTE applies the GTE predicate on the "bookmarks_created" field.
func BookmarksCreatedGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldBookmarksCreated, v))
}

// BookmarksCreatedLT applies the LT predicate on the "bookmarks_created" field.
func BookmarksCreatedLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldBookmarksCreated, v))
}

// BookmarksCreatedLTE applies the LTE predicate on the "bookmarks_created" field.
func BookmarksCreatedLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldBookmarksCreated, v))
}

// QuizzesCompletedEQ applies the EQ predicate on the "quizzes_completed" field.
func QuizzesCompletedEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldQuizzesCompleted, v))
}

// QuizzesCompletedNEQ applies the NEQ predicate on the "quizzes_completed" field.
func QuizzesCompletedNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldQuizzesCompleted, v))
}

// QuizzesCompletedIn applies the In predicate on the "quizzes_completed" field.
func QuizzesCompletedIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldQuizzesCompleted, vs...))
}

// QuizzesCompletedNotIn applies the NotIn predicate on the "quizzes_completed" field.
func QuizzesCompletedNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldQuizzesCompleted, vs...))
}

// QuizzesCompletedGT applies the GT predicate on the "quizzes_completed" field.
func QuizzesCompletedGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldQuizzesCompleted, v))
}

// QuizzesCompletedGTE applies the GTE predicate on the "quizzes_completed" field.
func QuizzesCompletedGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldQuizzesCompleted, v))
}

// QuizzesCompletedLT applies the LT predicate on the "quizzes_completed" field.
func QuizzesCompletedLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldQuizzesCompleted, v))
}

// QuizzesCompletedLTE applies the LTE predicate on the "quizzes_completed" field.
func QuizzesCompletedLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldQuizzesCompleted, v))
}

// EngagementScoreEQ applies the EQ predicate on the "engagement_score" field.
func EngagementScoreEQ(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldEngagementScore, v))
}

// EngagementScoreNEQ applies the NEQ predicate on the "engagement_score" field.
func EngagementScoreNEQ(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldEngagementScore, v))
}

// EngagementScoreIn applies the In predicate on the "engagement_score" field.
func EngagementScoreIn(vs ...float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldEngagementScore, vs...))
}

// EngagementScoreNotIn applies the NotIn predicate on the "engagement_score" field.
func EngagementScoreNotIn(vs ...float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldEngagementScore, vs...))
}

// EngagementScoreGT applies the GT predicate on the "engagement_score" field.
func EngagementScoreGT(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldEngagementScore, v))
}

// EngagementScoreGTE applies the GTE predicate on the "engagement_score" field.
func EngagementScoreGTE(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldEngagementScore, v))
}

// EngagementScoreLT applies the LT predicate on the "engagement_score" field.
func EngagementScoreLT(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldEngagementScore, v))
}

// EngagementScoreLTE applies the LTE predicate on the "engagement_score" field.
func EngagementScoreLTE(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldEngagementScore, v))
}

// FocusScoreEQ applies the EQ predicate on the "focus_score" field.
func FocusScoreEQ(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldFocusScore, v))
}

// FocusScoreNEQ applies the NEQ predicate on the "focus_score" field.
func FocusScoreNEQ(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldFocusScore, v))
}

// FocusScoreIn applies the In predicate on the "focus_score" field.
func FocusScoreIn(vs ...float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldFocusScore, vs...))
}

// FocusScoreNotIn applies the NotIn predicate on the "focus_score" field.
func FocusScoreNotIn(vs ...float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldFocusScore, vs...))
}

// FocusScoreGT applies the GT predicate on the "focus_score" field.
func FocusScoreGT(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldFocusScore, v))
}

// FocusScoreGTE applies the GTE predicate on the "focus_score" field.
func FocusScoreGTE(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldFocusScore, v))
}

// FocusScoreLT applies the LT predicate on the "focus_score" field.
func FocusScoreLT(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldFocusScore, v))
}

// FocusScoreLTE applies the LTE predicate on the "focus_score" field.
func FocusScoreLTE(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldFocusScore, v))
}

// LearningEffectivenessEQ applies the EQ predicate on the "learning_effectiveness" field.
func LearningEffectivenessEQ(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldLearningEffectiveness, v))
}

// LearningEffectivenessNEQ applies the NEQ predicate on the "learning_effectiveness" field.
func LearningEffectivenessNEQ(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldLearningEffectiveness, v))
}

// LearningEffectivenessIn applies the In predicate on the "learning_effectiveness" field.
func LearningEffectivenessIn(vs ...float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldLearningEffectiveness, vs...))
}

// LearningEffectivenessNotIn applies the NotIn predicate on the "learning_effectiveness" field.
func LearningEffectivenessNotIn(vs ...float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldLearningEffectiveness, vs...))
}

// LearningEffectivenessGT applies the GT predicate on the "learning_effectiveness" field.
func LearningEffectivenessGT(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldLearningEffectiveness, v))
}

// LearningEffectivenessGTE applies the GTE predicate on the "learning_effectiveness" field.
func LearningEffectivenessGTE(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldLearningEffectiveness, v))
}

// LearningEffectivenessLT applies the LT predicate on the "learning_effectiveness" field.
func LearningEffectivenessLT(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldLearningEffectiveness, v))
}

// LearningEffectivenessLTE applies the LTE predicate on the "learning_effectiveness" field.
func LearningEffectivenessLTE(v float64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldLearningEffectiveness, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDIsNil applies the IsNil predicate on the "course_id" field.
func CourseIDIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldCourseID))
}

// CourseIDNotNil applies the NotNil predicate on the "course_id" field.
func CourseIDNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldCourseID))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDIsNil applies the IsNil predicate on the "subject_id" field.
func SubjectIDIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldSubjectID))
}

// SubjectIDNotNil applies the NotNil predicate on the "subject_id" field.
func SubjectIDNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldSubjectID))
}

// ChapterIDEQ applies the EQ predicate on the "chapter_id" field.
func ChapterIDEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldChapterID, v))
}

// ChapterIDNEQ applies the NEQ predicate on the "chapter_id" field.
func ChapterIDNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldChapterID, v))
}

// ChapterIDIn applies the In predicate on the "chapter_id" field.
func ChapterIDIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldChapterID, vs...))
}

// ChapterIDNotIn applies the NotIn predicate on the "chapter_id" field.
func ChapterIDNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldChapterID, vs...))
}

// ChapterIDIsNil applies the IsNil predicate on the "chapter_id" field.
func ChapterIDIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldChapterID))
}

// ChapterIDNotNil applies the NotNil predicate on the "chapter_id" field.
func ChapterIDNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldChapterID))
}

// HasCourse applies the HasEdge predicate on the "course" edge.
func HasCourse() predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CourseTable, CourseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCourseWith applies the HasEdge predicate on the "course" edge with a given conditions (other predicates).
func HasCourseWith(preds ...predicate.Course) predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := newCourseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubject applies the HasEdge predicate on the "subject" edge.
func HasSubject() predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubjectWith applies the HasEdge predicate on the "subject" edge with a given conditions (other predicates).
func HasSubjectWith(preds ...predicate.Subject) predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := newSubjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChapter applies the HasEdge predicate on the "chapter" edge.
func HasChapter() predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChapterTable, ChapterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChapterWith applies the HasEdge predicate on the "chapter" edge with a given conditions (other predicates).
func HasChapterWith(preds ...predicate.Chapter) predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := newChapterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.NotPredicates(p))
}
