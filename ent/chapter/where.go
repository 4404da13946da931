// Code generated by ent, DO NOT EDIT.

package chapter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/studium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldUpdatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldTitle, v))
}

// ChapterNumber applies equality check predicate on the "chapter_number" field. It's identical to ChapterNumberEQ.
func ChapterNumber(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldChapterNumber, v))
}

// DifficultyLevel applies equality check predicate on the "difficulty_level" field. It's identical to DifficultyLevelEQ.
func DifficultyLevel(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldDifficultyLevel, v))
}

// EstimatedStudyTime applies equality check predicate on the "estimated_study_time" field. It's identical to EstimatedStudyTimeEQ.
func EstimatedStudyTime(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldEstimatedStudyTime, v))
}

// TotalContentBlocks applies equality check predicate on the "total_content_blocks" field. It's identical to TotalContentBlocksEQ.
func TotalContentBlocks(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldTotalContentBlocks, v))
}

// ConceptCount applies equality check predicate on the "concept_count" field. It's identical to ConceptCountEQ.
func ConceptCount(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldConceptCount, v))
}

// VisualizationCount applies equality check predicate on the "visualization_count" field. It's identical to VisualizationCountEQ.
func VisualizationCount(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldVisualizationCount, v))
}

// ExerciseCount applies equality check predicate on the "exercise_count" field. It's identical to ExerciseCountEQ.
func ExerciseCount(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldExerciseCount, v))
}

// CaseStudyCount applies equality check predicate on the "case_study_count" field. It's identical to CaseStudyCountEQ.
func CaseStudyCount(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldCaseStudyCount, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldSubjectID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldContainsFold(FieldTitle, v))
}

// ChapterNumberEQ applies the EQ predicate on the "chapter_number" field.
func ChapterNumberEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldChapterNumber, v))
}

// ChapterNumberNEQ applies the NEQ predicate on the "chapter_number" field.
func ChapterNumberNEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldChapterNumber, v))
}

// ChapterNumberIn applies the In predicate on the "chapter_number" field.
func ChapterNumberIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldChapterNumber, vs...))
}

// ChapterNumberNotIn applies the NotIn predicate on the "chapter_number" field.
func ChapterNumberNotIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldChapterNumber, vs...))
}

// ChapterNumberGT applies the GT predicate on the "chapter_number" field.
func ChapterNumberGT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldChapterNumber, v))
}

// ChapterNumberGTE applies the GTE predicate on the "chapter_number" field.
func ChapterNumberGTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldChapterNumber, v))
}

// ChapterNumberLT applies the LT predicate on the "chapter_number" field.
func ChapterNumberLT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldChapterNumber, v))
}

// ChapterNumberLTE applies the LTE predicate on the "chapter_number" field.
func ChapterNumberLTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldChapterNumber, v))
}

// IntroSummaryIsNil applies the IsNil predicate on the "intro_summary" field.
func IntroSummaryIsNil() predicate.Chapter {
	return predicate.Chapter(sql.FieldIsNull(FieldIntroSummary))
}

// IntroSummaryNotNil applies the NotNil predicate on the "intro_summary" field.
func IntroSummaryNotNil() predicate.Chapter {
	return predicate.Chapter(sql.FieldNotNull(FieldIntroSummary))
}

// ContentBlocksIsNil applies the IsNil predicate on the "content_blocks" field.
func ContentBlocksIsNil() predicate.Chapter {
	return predicate.Chapter(sql.FieldIsNull(FieldContentBlocks))
}

// ContentBlocksNotNil applies the NotNil predicate on the "content_blocks" field.
func ContentBlocksNotNil() predicate.Chapter {
	return predicate.Chapter(sql.FieldNotNull(FieldContentBlocks))
}

// ChapterMetadataIsNil applies the IsNil predicate on the "chapter_metadata" field.
func ChapterMetadataIsNil() predicate.Chapter {
	return predicate.Chapter(sql.FieldIsNull(FieldChapterMetadata))
}

// ChapterMetadataNotNil applies the NotNil predicate on the "chapter_metadata" field.
func ChapterMetadataNotNil() predicate.Chapter {
	return predicate.Chapter(sql.FieldNotNull(FieldChapterMetadata))
}

// DifficultyLevelEQ applies the EQ predicate on the "difficulty_level" field.
func DifficultyLevelEQ(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelNEQ applies the NEQ predicate on the "difficulty_level" field.
func DifficultyLevelNEQ(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelIn applies the In predicate on the "difficulty_level" field.
func DifficultyLevelIn(vs ...string) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelNotIn applies the NotIn predicate on the "difficulty_level" field.
func DifficultyLevelNotIn(vs ...string) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelGT applies the GT predicate on the "difficulty_level" field.
func DifficultyLevelGT(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldDifficultyLevel, v))
}

// DifficultyLevelGTE applies the GTE predicate on the "difficulty_level" field.
func DifficultyLevelGTE(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldDifficultyLevel, v))
}

// DifficultyLevelLT applies the LT predicate on the "difficulty_level" field.
func DifficultyLevelLT(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldDifficultyLevel, v))
}

// DifficultyLevelLTE applies the LTE predicate on the "difficulty_level" field.
func DifficultyLevelLTE(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldDifficultyLevel, v))
}

// DifficultyLevelContains applies the Contains predicate on the "difficulty_level" field.
func DifficultyLevelContains(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldContains(FieldDifficultyLevel, v))
}

// DifficultyLevelHasPrefix applies the HasPrefix predicate on the "difficulty_level" field.
func DifficultyLevelHasPrefix(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldHasPrefix(FieldDifficultyLevel, v))
}

// DifficultyLevelHasSuffix applies the HasSuffix predicate on the "difficulty_level" field.
func DifficultyLevelHasSuffix(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldHasSuffix(FieldDifficultyLevel, v))
}

// DifficultyLevelEqualFold applies the EqualFold predicate on the "difficulty_level" field.
func DifficultyLevelEqualFold(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldEqualFold(FieldDifficultyLevel, v))
}

// DifficultyLevelContainsFold applies the ContainsFold predicate on the "difficulty_level" field.
func DifficultyLevelContainsFold(v string) predicate.Chapter {
	return predicate.Chapter(sql.FieldContainsFold(FieldDifficultyLevel, v))
}

// EstimatedStudyTimeEQ applies the EQ predicate on the "estimated_study_time" field.
func EstimatedStudyTimeEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldEstimatedStudyTime, v))
}

// EstimatedStudyTimeNEQ applies the NEQ predicate on the "estimated_study_time" field.
func EstimatedStudyTimeNEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldEstimatedStudyTime, v))
}

// EstimatedStudyTimeIn applies the In predicate on the "estimated_study_time" field.
func EstimatedStudyTimeIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldEstimatedStudyTime, vs...))
}

// EstimatedStudyTimeNotIn applies the NotIn predicate on the "estimated_study_time" field.
func EstimatedStudyTimeNotIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldEstimatedStudyTime, vs...))
}

// EstimatedStudyTimeGT applies the GT predicate on the "estimated_study_time" field.
func EstimatedStudyTimeGT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldEstimatedStudyTime, v))
}

// EstimatedStudyTimeGTE applies the GTE predicate on the "estimated_study_time" field.
func EstimatedStudyTimeGTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldEstimatedStudyTime, v))
}

// EstimatedStudyTimeLT applies the LT predicate on the "estimated_study_time" field.
func EstimatedStudyTimeLT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldEstimatedStudyTime, v))
}

// EstimatedStudyTimeLTE applies the LTE predicate on the "estimated_study_time" field.
func EstimatedStudyTimeLTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldEstimatedStudyTime, v))
}

// TotalContentBlocksEQ applies the EQ predicate on the "total_content_blocks" field.
func TotalContentBlocksEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldTotalContentBlocks, v))
}

// TotalContentBlocksNEQ applies the NEQ predicate on the "total_content_blocks" field.
func TotalContentBlocksNEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldTotalContentBlocks, v))
}

// TotalContentBlocksIn applies the In predicate on the "total_content_blocks" field.
func TotalContentBlocksIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldTotalContentBlocks, vs...))
}

// TotalContentBlocksNotIn applies the NotIn predicate on the "total_content_blocks" field.
func TotalContentBlocksNotIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldTotalContentBlocks, vs...))
}

// TotalContentBlocksGT applies the GT predicate on the "total_content_blocks" field.
func TotalContentBlocksGT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldTotalContentBlocks, v))
}

// TotalContentBlocksGTE applies the GTE predicate on the "total_content_blocks" field.
func TotalContentBlocksGTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldTotalContentBlocks, v))
}

// TotalContentBlocksLT applies the LT predicate on the "total_content_blocks" field.
func TotalContentBlocksLT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldTotalContentBlocks, v))
}

// TotalContentBlocksLTE applies the LTE predicate on the "total_content_blocks" field.
func TotalContentBlocksLTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldTotalContentBlocks, v))
}

// ConceptCountEQ applies the EQ predicate on the "concept_count" field.
func ConceptCountEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldConceptCount, v))
}

// ConceptCountNEQ applies the NEQ predicate on the "concept_count" field.
func ConceptCountNEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldConceptCount, v))
}

// ConceptCountIn applies the In predicate on the "concept_count" field.
func ConceptCountIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldConceptCount, vs...))
}

// ConceptCountNotIn applies the NotIn predicate on the "concept_count" field.
func ConceptCountNotIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldConceptCount, vs...))
}

// ConceptCountGT applies the GT predicate on the "concept_count" field.
func ConceptCountGT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldConceptCount, v))
}

// ConceptCountGTE applies the GTE predicate on the "concept_count" field.
func ConceptCountGTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldConceptCount, v))
}

// ConceptCountLT applies the LT predicate on the "concept_count" field.
func ConceptCountLT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldConceptCount, v))
}

// ConceptCountLTE applies the LTE predicate on the "concept_count" field.
func ConceptCountLTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldConceptCount, v))
}

// VisualizationCountEQ applies the EQ predicate on the "visualization_count" field.
func VisualizationCountEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldVisualizationCount, v))
}

// VisualizationCountNEQ applies the NEQ predicate on the "visualization_count" field.
func VisualizationCountNEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldVisualizationCount, v))
}

// VisualizationCountIn applies the In predicate on the "visualization_count" field.
func VisualizationCountIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldVisualizationCount, vs...))
}

// VisualizationCountNotIn applies the NotIn predicate on the "visualization_count" field.
func VisualizationCountNotIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldVisualizationCount, vs...))
}

// VisualizationCountGT applies the GT predicate on the "visualization_count" field.
func VisualizationCountGT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldVisualizationCount, v))
}

// VisualizationCountGTE applies the GTE predicate on the "visualization_count" field.
func VisualizationCountGTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldVisualizationCount, v))
}

// VisualizationCountLT applies the LT predicate on the "visualization_count" field.
func VisualizationCountLT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldVisualizationCount, v))
}

// VisualizationCountLTE applies the LTE predicate on the "visualization_count" field.
func VisualizationCountLTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldVisualizationCount, v))
}

// ExerciseCountEQ applies the EQ predicate on the "exercise_count" field.
func ExerciseCountEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldExerciseCount, v))
}

// ExerciseCountNEQ applies the NEQ predicate on the "exercise_count" field.
func ExerciseCountNEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldExerciseCount, v))
}

// ExerciseCountIn applies the In predicate on the "exercise_count" field.
func ExerciseCountIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldExerciseCount, vs...))
}

// ExerciseCountNotIn applies the NotIn predicate on the "exercise_count" field.
func ExerciseCountNotIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldExerciseCount, vs...))
}

// ExerciseCountGT applies the GT predicate on the "exercise_count" field.
func ExerciseCountGT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldExerciseCount, v))
}

// ExerciseCountGTE applies the GTE predicate on the "exercise_count" field.
func ExerciseCountGTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldExerciseCount, v))
}

// ExerciseCountLT applies the LT predicate on the "exercise_count" field.
func ExerciseCountLT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldExerciseCount, v))
}

// ExerciseCountLTE applies the LTE predicate on the "exercise_count" field.
func ExerciseCountLTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldExerciseCount, v))
}

// CaseStudyCountEQ applies the EQ predicate on the "case_study_count" field.
func CaseStudyCountEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldCaseStudyCount, v))
}

// CaseStudyCountNEQ applies the NEQ predicate on the "case_study_count" field.
func CaseStudyCountNEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldCaseStudyCount, v))
}

// CaseStudyCountIn applies the In predicate on the "case_study_count" field.
func CaseStudyCountIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldCaseStudyCount, vs...))
}

// CaseStudyCountNotIn applies the NotIn predicate on the "case_study_count" field.
func CaseStudyCountNotIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldCaseStudyCount, vs...))
}

// CaseStudyCountGT applies the GT predicate on the "case_study_count" field.
func CaseStudyCountGT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldCaseStudyCount, v))
}

// CaseStudyCountGTE applies the GTE predicate on the "case_study_count" field.
func CaseStudyCountGTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldCaseStudyCount, v))
}

// CaseStudyCountLT applies the LT predicate on the "case_study_count" field.
func CaseStudyCountLT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldCaseStudyCount, v))
}

// CaseStudyCountLTE applies the LTE predicate on the "case_study_count" field.
func CaseStudyCountLTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldCaseStudyCount, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldSubjectID, vs...))
}

// HasSubject applies the HasEdge predicate on the "subject" edge.
func HasSubject() predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubjectWith applies the HasEdge predicate on the "subject" edge with a given conditions (other predicates).
func HasSubjectWith(preds ...predicate.Subject) predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := newSubjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProgress applies the HasEdge predicate on the "progress" edge.
func HasProgress() predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProgressTable, ProgressColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProgressWith applies the HasEdge predicate on the "progress" edge with a given conditions (other predicates).
func HasProgressWith(preds ...predicate.UserProgress) predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := newProgressStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBookmarks applies the HasEdge predicate on the "bookmarks" edge.
func HasBookmarks() predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BookmarksTable, BookmarksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBookmarksWith applies the HasEdge predicate on the "bookmarks" edge with a given conditions (other predicates).
func HasBookmarksWith(preds ...predicate.Bookmark) predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := newBookmarksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuizResults applies the HasEdge predicate on the "quiz_results" edge.
func HasQuizResults() predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuizResultsTable, QuizResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuizResultsWith applies the HasEdge predicate on the "quiz_results" edge with a given conditions (other predicates).
func HasQuizResultsWith(preds ...predicate.QuizResult) predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := newQuizResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStudySessions applies the HasEdge predicate on the "study_sessions" edge.
func HasStudySessions() predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StudySessionsTable, StudySessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudySessionsWith applies the HasEdge predicate on the "study_sessions" edge with a given conditions (other predicates).
func HasStudySessionsWith(preds ...predicate.StudySession) predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := newStudySessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Chapter) predicate.Chapter {
	return predicate.Chapter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Chapter) predicate.Chapter {
	return predicate.Chapter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Chapter) predicate.Chapter {
	return predicate.Chapter(sql.NotPredicates(p))
}
