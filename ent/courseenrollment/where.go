// Code generated by ent, DO NOT EDIT.

package courseenrollment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/studium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldUserID, v))
}

// EnrollmentDate applies equality check predicate on the "enrollment_date" field. It's identical to EnrollmentDateEQ.
func EnrollmentDate(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldEnrollmentDate, v))
}

// TargetCompletionDate applies equality check predicate on the "target_completion_date" field. It's identical to TargetCompletionDateEQ.
func TargetCompletionDate(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldTargetCompletionDate, v))
}

// StudyGoalHoursPerWeek applies equality check predicate on the "study_goal_hours_per_week" field. It's identical to StudyGoalHoursPerWeekEQ.
func StudyGoalHoursPerWeek(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldStudyGoalHoursPerWeek, v))
}

// OverallProgressPercentage applies equality check predicate on the "overall_progress_percentage" field. It's identical to OverallProgressPercentageEQ.
func OverallProgressPercentage(v float64) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldOverallProgressPercentage, v))
}

// SubjectsCompleted applies equality check predicate on the "subjects_completed" field. It's identical to SubjectsCompletedEQ.
func SubjectsCompleted(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldSubjectsCompleted, v))
}

// ChaptersCompleted applies equality check predicate on the "chapters_completed" field. It's identical to ChaptersCompletedEQ.
func ChaptersCompleted(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldChaptersCompleted, v))
}

// TotalStudyTimeMinutes applies equality check predicate on the "total_study_time_minutes" field. It's identical to TotalStudyTimeMinutesEQ.
func TotalStudyTimeMinutes(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldTotalStudyTimeMinutes, v))
}

// PreferredDifficulty applies equality check predicate on the "preferred_difficulty" field. It's identical to PreferredDifficultyEQ.
func PreferredDifficulty(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldPreferredDifficulty, v))
}

// LearningStylePreference applies equality check predicate on the "learning_style_preference" field. It's identical to LearningStylePreferenceEQ.
func LearningStylePreference(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldLearningStylePreference, v))
}

// LastActivity applies equality check predicate on the "last_activity" field. It's identical to LastActivityEQ.
func LastActivity(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldLastActivity, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldCompletedAt, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldCourseID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldContainsFold(FieldUserID, v))
}

// EnrollmentDateEQ applies the EQ predicate on the "enrollment_date" field.
func EnrollmentDateEQ(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldEnrollmentDate, v))
}

// EnrollmentDateNEQ applies the NEQ predicate on the "enrollment_date" field.
func EnrollmentDateNEQ(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldEnrollmentDate, v))
}

// EnrollmentDateIn applies the In predicate on the "enrollment_date" field.
func EnrollmentDateIn(vs ...time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldEnrollmentDate, vs...))
}

// EnrollmentDateNotIn applies the NotIn predicate on the "enrollment_date" field.
func EnrollmentDateNotIn(vs ...time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldEnrollmentDate, vs...))
}

// EnrollmentDateGT applies the GT predicate on the "enrollment_date" field.
func EnrollmentDateGT(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldEnrollmentDate, v))
}

// EnrollmentDateGTE applies the GTE predicate on the "enrollment_date" field.
func EnrollmentDateGTE(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldEnrollmentDate, v))
}

// EnrollmentDateLT applies the LT predicate on the "enrollment_date" field.
func EnrollmentDateLT(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldEnrollmentDate, v))
}

// EnrollmentDateLTE applies the LTE predicate on the "enrollment_date" field.
func EnrollmentDateLTE(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldEnrollmentDate, v))
}

// TargetCompletionDateEQ applies the EQ predicate on the "target_completion_date" field.
func TargetCompletionDateEQ(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldTargetCompletionDate, v))
}

// TargetCompletionDateNEQ applies the NEQ predicate on the "target_completion_date" field.
func TargetCompletionDateNEQ(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldTargetCompletionDate, v))
}

// TargetCompletionDateIn applies the In predicate on the "target_completion_date" field.
func TargetCompletionDateIn(vs ...time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldTargetCompletionDate, vs...))
}

// TargetCompletionDateNotIn applies the NotIn predicate on the "target_completion_date" field.
func TargetCompletionDateNotIn(vs ...time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldTargetCompletionDate, vs...))
}

// TargetCompletionDateGT applies the GT predicate on the "target_completion_date" field.
func TargetCompletionDateGT(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldTargetCompletionDate, v))
}

// TargetCompletionDateGTE applies the GTE predicate on the "target_completion_date" field.
func TargetCompletionDateGTE(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldTargetCompletionDate, v))
}

// TargetCompletionDateLT applies the LT predicate on the "target_completion_date" field.
func TargetCompletionDateLT(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldTargetCompletionDate, v))
}

// TargetCompletionDateLTE applies the LTE predicate on the "target_completion_date" field.
func TargetCompletionDateLTE(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldTargetCompletionDate, v))
}

// TargetCompletionDateIsNil applies the IsNil predicate on the "target_completion_date" field.
func TargetCompletionDateIsNil() predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIsNull(FieldTargetCompletionDate))
}

// TargetCompletionDateNotNil applies the NotNil predicate on the "target_completion_date" field.
func TargetCompletionDateNotNil() predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotNull(FieldTargetCompletionDate))
}

// StudyGoalHoursPerWeekEQ applies the EQ predicate on the "study_goal_hours_per_week" field.
func StudyGoalHoursPerWeekEQ(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldStudyGoalHoursPerWeek, v))
}

// StudyGoalHoursPerWeekNEQ applies the NEQ predicate on the "study_goal_hours_per_week" field.
func StudyGoalHoursPerWeekNEQ(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldStudyGoalHoursPerWeek, v))
}

// StudyGoalHoursPerWeekIn applies the In predicate on the "study_goal_hours_per_week" field.
func StudyGoalHoursPerWeekIn(vs ...int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldStudyGoalHoursPerWeek, vs...))
}

// StudyGoalHoursPerWeekNotIn applies the NotIn predicate on the "study_goal_hours_per_week" field.
func StudyGoalHoursPerWeekNotIn(vs ...int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldStudyGoalHoursPerWeek, vs...))
}

// StudyGoalHoursPerWeekGT applies the GT predicate on the "study_goal_hours_per_week" field.
func StudyGoalHoursPerWeekGT(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldStudyGoalHoursPerWeek, v))
}

// StudyGoalHoursPerWeekGTE applies the GTE predicate on the "study_goal_hours_per_week" field.
func StudyGoalHoursPerWeekGTE(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldStudyGoalHoursPerWeek, v))
}

// StudyGoalHoursPerWeekLT applies the LT predicate on the "study_goal_hours_per_week" field.
func StudyGoalHoursPerWeekLT(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldStudyGoalHoursPerWeek, v))
}

// StudyGoalHoursPerWeekLTE applies the LTE predicate on the "study_goal_hours_per_week" field.
func StudyGoalHoursPerWeekLTE(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldStudyGoalHoursPerWeek, v))
}

// OverallProgressPercentageEQ applies the EQ predicate on the "overall_progress_percentage" field.
func OverallProgressPercentageEQ(v float64) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldOverallProgressPercentage, v))
}

// OverallProgressPercentageNEQ applies the NEQ predicate on the "overall_progress_percentage" field.
func OverallProgressPercentageNEQ(v float64) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldOverallProgressPercentage, v))
}

// OverallProgressPercentageIn applies the In predicate on the "overall_progress_percentage" field.
func OverallProgressPercentageIn(vs ...float64) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldOverallProgressPercentage, vs...))
}

// OverallProgressPercentageNotIn applies the NotIn predicate on the "overall_progress_percentage" field.
func OverallProgressPercentageNotIn(vs ...float64) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldOverallProgressPercentage, vs...))
}

// OverallProgressPercentageGT applies the GT predicate on the "overall_progress_percentage" field.
func OverallProgressPercentageGT(v float64) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldOverallProgressPercentage, v))
}

// OverallProgressPercentageGTE applies the GTE predicate on the "overall_progress_percentage" field.
func OverallProgressPercentageGTE(v float64) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldOverallProgressPercentage, v))
}

// OverallProgressPercentageLT applies the LT predicate on the "overall_progress_percentage" field.
func OverallProgressPercentageLT(v float64) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldOverallProgressPercentage, v))
}

// OverallProgressPercentageLTE applies the LTE predicate on the "overall_progress_percentage" field.
func OverallProgressPercentageLTE(v float64) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldOverallProgressPercentage, v))
}

// SubjectsCompletedEQ applies the EQ predicate on the "subjects_completed" field.
func SubjectsCompletedEQ(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldSubjectsCompleted, v))
}

// SubjectsCompletedNEQ applies the NEQ predicate on the "subjects_completed" field.
func SubjectsCompletedNEQ(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldSubjectsCompleted, v))
}

// SubjectsCompletedIn applies the In predicate on the "subjects_completed" field.
func SubjectsCompletedIn(vs ...int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldSubjectsCompleted, vs...))
}

// SubjectsCompletedNotIn applies the NotIn predicate on the "subjects_completed" field.
func SubjectsCompletedNotIn(vs ...int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldSubjectsCompleted, vs...))
}

// SubjectsCompletedGT applies the GT predicate on the "subjects_completed" field.
func SubjectsCompletedGT(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldSubjectsCompleted, v))
}

// SubjectsCompletedGTE applies the GTE predicate on the "subjects_completed" field.
func SubjectsCompletedGTE(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldSubjectsCompleted, v))
}

// SubjectsCompletedLT applies the LT predicate on the "subjects_completed" field.
func SubjectsCompletedLT(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldSubjectsCompleted, v))
}

// SubjectsCompletedLTE applies the LTE predicate on the "subjects_completed" field.
func SubjectsCompletedLTE(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldSubjectsCompleted, v))
}

// ChaptersCompletedEQ applies the EQ predicate on the "chapters_completed" field.
func ChaptersCompletedEQ(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldChaptersCompleted, v))
}

// ChaptersCompletedNEQ applies the NEQ predicate on the "chapters_completed" field.
func ChaptersCompletedNEQ(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldChaptersCompleted, v))
}

// ChaptersCompletedIn applies the In predicate on the "chapters_completed" field.
func ChaptersCompletedIn(vs ...int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldChaptersCompleted, vs...))
}

// ChaptersCompletedNotIn applies the NotIn predicate on the "chapters_completed" field.
func ChaptersCompletedNotIn(vs ...int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldChaptersCompleted, vs...))
}

// ChaptersCompletedGT applies the GT predicate on the "chapters_completed" field.
func ChaptersCompletedGT(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldChaptersCompleted, v))
}

// ChaptersCompletedGTE applies the GTE predicate on the "chapters_completed" field.
func ChaptersCompletedGTE(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldChaptersCompleted, v))
}

// ChaptersCompletedLT applies the LT predicate on the "chapters_completed" field.
func ChaptersCompletedLT(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldChaptersCompleted, v))
}

// ChaptersCompletedLTE applies the LTE predicate on the "chapters_completed" field.
func ChaptersCompletedLTE(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldChaptersCompleted, v))
}

// TotalStudyTimeMinutesEQ applies the EQ predicate on the "total_study_time_minutes" field.
func TotalStudyTimeMinutesEQ(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldTotalStudyTimeMinutes, v))
}

// TotalStudyTimeMinutesNEQ applies the NEQ predicate on the "total_study_time_minutes" field.
func TotalStudyTimeMinutesNEQ(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldTotalStudyTimeMinutes, v))
}

// TotalStudyTimeMinutesIn applies the In predicate on the "total_study_time_minutes" field.
func TotalStudyTimeMinutesIn(vs ...int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldTotalStudyTimeMinutes, vs...))
}

// TotalStudyTimeMinutesNotIn applies the NotIn predicate on the "total_study_time_minutes" field.
func TotalStudyTimeMinutesNotIn(vs ...int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldTotalStudyTimeMinutes, vs...))
}

// TotalStudyTimeMinutesGT applies the GT predicate on the "total_study_time_minutes" field.
func TotalStudyTimeMinutesGT(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldTotalStudyTimeMinutes, v))
}

// TotalStudyTimeMinutesGTE applies the GTE predicate on the "total_study_time_minutes" field.
func TotalStudyTimeMinutesGTE(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldTotalStudyTimeMinutes, v))
}

// TotalStudyTimeMinutesLT applies the LT predicate on the "total_study_time_minutes" field.
func TotalStudyTimeMinutesLT(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldTotalStudyTimeMinutes, v))
}

// TotalStudyTimeMinutesLTE applies the LTE predicate on the "total_study_time_minutes" field.
func TotalStudyTimeMinutesLTE(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldTotalStudyTimeMinutes, v))
}

// PreferredDifficultyEQ applies the EQ predicate on the "preferred_difficulty" field.
func PreferredDifficultyEQ(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldPreferredDifficulty, v))
}

// PreferredDifficultyNEQ applies the NEQ predicate on the "preferred_difficulty" field.
func PreferredDifficultyNEQ(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldPreferredDifficulty, v))
}

// PreferredDifficultyIn applies the In predicate on the "preferred_difficulty" field.
func PreferredDifficultyIn(vs ...string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldPreferredDifficulty, vs...))
}

// PreferredDifficultyNotIn applies the NotIn predicate on the "preferred_difficulty" field.
func PreferredDifficultyNotIn(vs ...string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldPreferredDifficulty, vs...))
}

// PreferredDifficultyGT applies the GT predicate on the "preferred_difficulty" field.
func PreferredDifficultyGT(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldPreferredDifficulty, v))
}

// PreferredDifficultyGTE applies the GTE predicate on the "preferred_difficulty" field.
func PreferredDifficultyGTE(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldPreferredDifficulty, v))
}

// PreferredDifficultyLT applies the LT predicate on the "preferred_difficulty" field.
func PreferredDifficultyLT(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldPreferredDifficulty, v))
}

// PreferredDifficultyLTE applies the LTE predicate on the "preferred_difficulty" field.
func PreferredDifficultyLTE(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldPreferredDifficulty, v))
}

// PreferredDifficultyContains applies the Contains predicate on the "preferred_difficulty" field.
func PreferredDifficultyContains(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldContains(FieldPreferredDifficulty, v))
}

// PreferredDifficultyHasPrefix applies the HasPrefix predicate on the "preferred_difficulty" field.
func PreferredDifficultyHasPrefix(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldHasPrefix(FieldPreferredDifficulty, v))
}

// PreferredDifficultyHasSuffix applies the HasSuffix predicate on the "preferred_difficulty" field.
func PreferredDifficultyHasSuffix(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldHasSuffix(FieldPreferredDifficulty, v))
}

// PreferredDifficultyEqualFold applies the EqualFold predicate on the "preferred_difficulty" field.
func PreferredDifficultyEqualFold(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEqualFold(FieldPreferredDifficulty, v))
}

// PreferredDifficultyContainsFold applies the ContainsFold predicate on the "preferred_difficulty" field.
func PreferredDifficultyContainsFold(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldContainsFold(FieldPreferredDifficulty, v))
}

// LearningStylePreferenceEQ applies the EQ predicate on the "learning_style_preference" field.
func LearningStylePreferenceEQ(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldLearningStylePreference, v))
}

// LearningStylePreferenceNEQ applies the NEQ predicate on the "learning_style_preference" field.
func LearningStylePreferenceNEQ(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldLearningStylePreference, v))
}

// LearningStylePreferenceIn applies the In predicate on the "learning_style_preference" field.
func LearningStylePreferenceIn(vs ...string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldLearningStylePreference, vs...))
}

// LearningStylePreferenceNotIn applies the NotIn predicate on the "learning_style_preference" field.
func LearningStylePreferenceNotIn(vs ...string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldLearningStylePreference, vs...))
}

// LearningStylePreferenceGT applies the GT predicate on the "learning_style_preference" field.
func LearningStylePreferenceGT(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldLearningStylePreference, v))
}

// LearningStylePreferenceGTE applies the GTE predicate on the "learning_style_preference" field.
func LearningStylePreferenceGTE(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldLearningStylePreference, v))
}

// LearningStylePreferenceLT applies the LT predicate on the "learning_style_preference" field.
func LearningStylePreferenceLT(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldLearningStylePreference, v))
}

// LearningStylePreferenceLTE applies the LTE predicate on the "learning_style_preference" field.
func LearningStylePreferenceLTE(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldLearningStylePreference, v))
}

// LearningStylePreferenceContains applies the Contains predicate on the "learning_style_preference" field.
func LearningStylePreferenceContains(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldContains(FieldLearningStylePreference, v))
}

// LearningStylePreferenceHasPrefix applies the HasPrefix predicate on the "learning_style_preference" field.
func LearningStylePreferenceHasPrefix(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldHasPrefix(FieldLearningStylePreference, v))
}

// LearningStylePreferenceHasSuffix applies the HasSuffix predicate on the "learning_style_preference" field.
func LearningStylePreferenceHasSuffix(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldHasSuffix(FieldLearningStylePreference, v))
}

// LearningStylePreferenceEqualFold applies the EqualFold predicate on the "learning_style_preference" field.
func LearningStylePreferenceEqualFold(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEqualFold(FieldLearningStylePreference, v))
}

// LearningStylePreferenceContainsFold applies the ContainsFold predicate on the "learning_style_preference" field.
func LearningStylePreferenceContainsFold(v string) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldContainsFold(FieldLearningStylePreference, v))
}

// LastActivityEQ applies the EQ predicate on the "last_activity" field.
func LastActivityEQ(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldLastActivity, v))
}

// LastActivityNEQ applies the NEQ predicate on the "last_activity" field.
func LastActivityNEQ(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldLastActivity, v))
}

// LastActivityIn applies the In predicate on the "last_activity" field.
func LastActivityIn(vs ...time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldLastActivity, vs...))
}

// LastActivityNotIn applies the NotIn predicate on the "last_activity" field.
func LastActivityNotIn(vs ...time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldLastActivity, vs...))
}

// LastActivityGT applies the GT predicate on the "last_activity" field.
func LastActivityGT(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldLastActivity, v))
}

// LastActivityGTE applies the GTE predicate on the "last_activity" field.
func LastActivityGTE(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldLastActivity, v))
}

// LastActivityLT applies the LT predicate on the "last_activity" field.
func LastActivityLT(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldLastActivity, v))
}

// LastActivityLTE applies the LTE predicate on the "last_activity" field.
func LastActivityLTE(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldLastActivity, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotNull(FieldCompletedAt))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...int) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.FieldNotIn(FieldCourseID, vs...))
}

// HasCourse applies the HasEdge predicate on the "course" edge.
func HasCourse() predicate.CourseEnrollment {
	return predicate.CourseEnrollment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CourseTable, CourseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCourseWith applies the HasEdge predicate on the "course" edge with a given conditions (other predicates).
func HasCourseWith(preds ...predicate.Course) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(func(s *sql.Selector) {
		step := newCourseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CourseEnrollment) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CourseEnrollment) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CourseEnrollment) predicate.CourseEnrollment {
	return predicate.CourseEnrollment(sql.NotPredicates(p))
}
