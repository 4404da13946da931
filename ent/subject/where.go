// Code generated by ent, DO NOT EDIT.

package subject

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/studium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldName, v))
}

// SubjectDomain applies equality check predicate on the "subject_domain" field. It's identical to SubjectDomainEQ.
func SubjectDomain(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldSubjectDomain, v))
}

// LearningStyle applies equality check predicate on the "learning_style" field. It's identical to LearningStyleEQ.
func LearningStyle(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldLearningStyle, v))
}

// ComplexityLevel applies equality check predicate on the "complexity_level" field. It's identical to ComplexityLevelEQ.
func ComplexityLevel(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldComplexityLevel, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldOriginalFilename, v))
}

// FileSizeMB applies equality check predicate on the "file_size_mb" field. It's identical to FileSizeMBEQ.
func FileSizeMB(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldFileSizeMB, v))
}

// ProcessingTimeSeconds applies equality check predicate on the "processing_time_seconds" field. It's identical to ProcessingTimeSecondsEQ.
func ProcessingTimeSeconds(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldProcessingTimeSeconds, v))
}

// TotalChapters applies equality check predicate on the "total_chapters" field. It's identical to TotalChaptersEQ.
func TotalChapters(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldTotalChapters, v))
}

// EstimatedReadTime applies equality check predicate on the "estimated_read_time" field. It's identical to EstimatedReadTimeEQ.
func EstimatedReadTime(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldEstimatedReadTime, v))
}

// InteractiveElementsCount applies equality check predicate on the "interactive_elements_count" field. It's identical to InteractiveElementsCountEQ.
func InteractiveElementsCount(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldInteractiveElementsCount, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCourseID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldName, v))
}

// PrefaceIsNil applies the IsNil predicate on the "preface" field.
func PrefaceIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldPreface))
}

// PrefaceNotNil applies the NotNil predicate on the "preface" field.
func PrefaceNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldPreface))
}

// OverallSummaryIsNil applies the IsNil predicate on the "overall_summary" field.
func OverallSummaryIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldOverallSummary))
}

// OverallSummaryNotNil applies the NotNil predicate on the "overall_summary" field.
func OverallSummaryNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldOverallSummary))
}

// SubjectDomainEQ applies the EQ predicate on the "subject_domain" field.
func SubjectDomainEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldSubjectDomain, v))
}

// SubjectDomainNEQ applies the NEQ predicate on the "subject_domain" field.
func SubjectDomainNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldSubjectDomain, v))
}

// SubjectDomainIn applies the In predicate on the "subject_domain" field.
func SubjectDomainIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldSubjectDomain, vs...))
}

// SubjectDomainNotIn applies the NotIn predicate on the "subject_domain" field.
func SubjectDomainNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldSubjectDomain, vs...))
}

// SubjectDomainGT applies the GT predicate on the "subject_domain" field.
func SubjectDomainGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldSubjectDomain, v))
}

// SubjectDomainGTE applies the GTE predicate on the "subject_domain" field.
func SubjectDomainGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldSubjectDomain, v))
}

// SubjectDomainLT applies the LT predicate on the "subject_domain" field.
func SubjectDomainLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldSubjectDomain, v))
}

// SubjectDomainLTE applies the LTE predicate on the "subject_domain" field.
func SubjectDomainLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldSubjectDomain, v))
}

// SubjectDomainContains applies the Contains predicate on the "subject_domain" field.
func SubjectDomainContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldSubjectDomain, v))
}

// SubjectDomainHasPrefix applies the HasPrefix predicate on the "subject_domain" field.
func SubjectDomainHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldSubjectDomain, v))
}

// SubjectDomainHasSuffix applies the HasSuffix predicate on the "subject_domain" field.
func SubjectDomainHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldSubjectDomain, v))
}

// SubjectDomainEqualFold applies the EqualFold predicate on the "subject_domain" field.
func SubjectDomainEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldSubjectDomain, v))
}

// SubjectDomainContainsFold applies the ContainsFold predicate on the "subject_domain" field.
func SubjectDomainContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldSubjectDomain, v))
}

// LearningStyleEQ applies the EQ predicate on the "learning_style" field.
func LearningStyleEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldLearningStyle, v))
}

// LearningStyleNEQ applies the NEQ predicate on the "learning_style" field.
func LearningStyleNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldLearningStyle, v))
}

// LearningStyleIn applies the In predicate on the "learning_style" field.
func LearningStyleIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldLearningStyle, vs...))
}

// LearningStyleNotIn applies the NotIn predicate on the "learning_style" field.
func LearningStyleNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldLearningStyle, vs...))
}

// LearningStyleGT applies the GT predicate on the "learning_style" field.
func LearningStyleGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldLearningStyle, v))
}

// LearningStyleGTE applies the GTE predicate on the "learning_style" field.
func LearningStyleGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldLearningStyle, v))
}

// LearningStyleLT applies the LT predicate on the "learning_style" field.
func LearningStyleLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldLearningStyle, v))
}

// LearningStyleLTE applies the LTE predicate on the "learning_style" field.
func LearningStyleLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldLearningStyle, v))
}

// LearningStyleContains applies the Contains predicate on the "learning_style" field.
func LearningStyleContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldLearningStyle, v))
}

// LearningStyleHasPrefix applies the HasPrefix predicate on the "learning_style" field.
func LearningStyleHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldLearningStyle, v))
}

// LearningStyleHasSuffix applies the HasSuffix predicate on the "learning_style" field.
func LearningStyleHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldLearningStyle, v))
}

// LearningStyleEqualFold applies the EqualFold predicate on the "learning_style" field.
func LearningStyleEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldLearningStyle, v))
}

// LearningStyleContainsFold applies the ContainsFold predicate on the "learning_style" field.
func LearningStyleContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldLearningStyle, v))
}

// ComplexityLevelEQ applies the EQ predicate on the "complexity_level" field.
func ComplexityLevelEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldComplexityLevel, v))
}

// ComplexityLevelNEQ applies the NEQ predicate on the "complexity_level" field.
func ComplexityLevelNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldComplexityLevel, v))
}

// ComplexityLevelIn applies the In predicate on the "complexity_level" field.
func ComplexityLevelIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldComplexityLevel, vs...))
}

// ComplexityLevelNotIn applies the NotIn predicate on the "complexity_level" field.
func ComplexityLevelNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldComplexityLevel, vs...))
}

// ComplexityLevelGT applies the GT predicate on the "complexity_level" field.
func ComplexityLevelGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldComplexityLevel, v))
}

// ComplexityLevelGTE applies the GTE predicate on the "complexity_level" field.
func ComplexityLevelGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldComplexityLevel, v))
}

// ComplexityLevelLT applies the LT predicate on the "complexity_level" field.
func ComplexityLevelLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldComplexityLevel, v))
}

// ComplexityLevelLTE applies the LTE predicate on the "complexity_level" field.
func ComplexityLevelLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldComplexityLevel, v))
}

// ComplexityLevelContains applies the Contains predicate on the "complexity_level" field.
func ComplexityLevelContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldComplexityLevel, v))
}

// ComplexityLevelHasPrefix applies the HasPrefix predicate on the "complexity_level" field.
func ComplexityLevelHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldComplexityLevel, v))
}

// ComplexityLevelHasSuffix applies the HasSuffix predicate on the "complexity_level" field.
func ComplexityLevelHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldComplexityLevel, v))
}

// ComplexityLevelEqualFold applies the EqualFold predicate on the "complexity_level" field.
func ComplexityLevelEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldComplexityLevel, v))
}

// ComplexityLevelContainsFold applies the ContainsFold predicate on the "complexity_level" field.
func ComplexityLevelContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldComplexityLevel, v))
}

// SubjectAnalysisIsNil applies the IsNil predicate on the "subject_analysis" field.
func SubjectAnalysisIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldSubjectAnalysis))
}

// SubjectAnalysisNotNil applies the NotNil predicate on the "subject_analysis" field.
func SubjectAnalysisNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldSubjectAnalysis))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameIsNil applies the IsNil predicate on the "original_filename" field.
func OriginalFilenameIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldOriginalFilename))
}

// OriginalFilenameNotNil applies the NotNil predicate on the "original_filename" field.
func OriginalFilenameNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldOriginalFilename))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// FileSizeMBEQ applies the EQ predicate on the "file_size_mb" field.
func FileSizeMBEQ(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldFileSizeMB, v))
}

// FileSizeMBNEQ applies the NEQ predicate on the "file_size_mb" field.
func FileSizeMBNEQ(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldFileSizeMB, v))
}

// FileSizeMBIn applies the In predicate on the "file_size_mb" field.
func FileSizeMBIn(vs ...float64) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldFileSizeMB, vs...))
}

// FileSizeMBNotIn applies the NotIn predicate on the "file_size_mb" field.
func FileSizeMBNotIn(vs ...float64) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldFileSizeMB, vs...))
}

// FileSizeMBGT applies the GT predicate on the "file_size_mb" field.
func FileSizeMBGT(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldFileSizeMB, v))
}

// FileSizeMBGTE applies the GTE predicate on the "file_size_mb" field.
func FileSizeMBGTE(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldFileSizeMB, v))
}

// FileSizeMBLT applies the LT predicate on the "file_size_mb" field.
func FileSizeMBLT(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldFileSizeMB, v))
}

// FileSizeMBLTE applies the LTE predicate on the "file_size_mb" field.
func FileSizeMBLTE(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldFileSizeMB, v))
}

// FileSizeMBIsNil applies the IsNil predicate on the "file_size_mb" field.
func FileSizeMBIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldFileSizeMB))
}

// FileSizeMBNotNil applies the NotNil predicate on the "file_size_mb" field.
func FileSizeMBNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldFileSizeMB))
}

// ProcessingTimeSecondsEQ applies the EQ predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsNEQ applies the NEQ predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsNEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsIn applies the In predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldProcessingTimeSeconds, vs...))
}

// ProcessingTimeSecondsNotIn applies the NotIn predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsNotIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldProcessingTimeSeconds, vs...))
}

// ProcessingTimeSecondsGT applies the GT predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsGT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsGTE applies the GTE predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsGTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsLT applies the LT predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsLT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsLTE applies the LTE predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsLTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsIsNil applies the IsNil predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldProcessingTimeSeconds))
}

// ProcessingTimeSecondsNotNil applies the NotNil predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldProcessingTimeSeconds))
}

// TotalChaptersEQ applies the EQ predicate on the "total_chapters" field.
func TotalChaptersEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldTotalChapters, v))
}

// TotalChaptersNEQ applies the NEQ predicate on the "total_chapters" field.
func TotalChaptersNEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldTotalChapters, v))
}

// TotalChaptersIn applies the In predicate on the "total_chapters" field.
func TotalChaptersIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldTotalChapters, vs...))
}

// TotalChaptersNotIn applies the NotIn predicate on the "total_chapters" field.
func TotalChaptersNotIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldTotalChapters, vs...))
}

// TotalChaptersGT applies the GT predicate on the "total_chapters" field.
func TotalChaptersGT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldTotalChapters, v))
}

// TotalChaptersGTE applies the GTE predicate on the "total_chapters" field.
func TotalChaptersGTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldTotalChapters, v))
}

// TotalChaptersLT applies the LT predicate on the "total_chapters" field.
func TotalChaptersLT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldTotalChapters, v))
}

// TotalChaptersLTE applies the LTE predicate on the "total_chapters" field.
func TotalChaptersLTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldTotalChapters, v))
}

// EstimatedReadTimeEQ applies the EQ predicate on the "estimated_read_time" field.
func EstimatedReadTimeEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldEstimatedReadTime, v))
}

// EstimatedReadTimeNEQ applies the NEQ predicate on the "estimated_read_time" field.
func EstimatedReadTimeNEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldEstimatedReadTime, v))
}

// EstimatedReadTimeIn applies the In predicate on the "estimated_read_time" field.
func EstimatedReadTimeIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldEstimatedReadTime, vs...))
}

// EstimatedReadTimeNotIn applies the NotIn predicate on the "estimated_read_time" field.
func EstimatedReadTimeNotIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldEstimatedReadTime, vs...))
}

// EstimatedReadTimeGT applies the GT predicate on the "estimated_read_time" field.
func EstimatedReadTimeGT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldEstimatedReadTime, v))
}

// EstimatedReadTimeGTE applies the GTE predicate on the "estimated_read_time" field.
func EstimatedReadTimeGTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldEstimatedReadTime, v))
}

// EstimatedReadTimeLT applies the LT predicate on the "estimated_read_time" field.
func EstimatedReadTimeLT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldEstimatedReadTime, v))
}

// EstimatedReadTimeLTE applies the LTE predicate on the "estimated_read_time" field.
func EstimatedReadTimeLTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldEstimatedReadTime, v))
}

// InteractiveElementsCountEQ applies the EQ predicate on the "interactive_elements_count" field.
func InteractiveElementsCountEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldInteractiveElementsCount, v))
}

// InteractiveElementsCountNEQ applies the NEQ predicate on the "interactive_elements_count" field.
func InteractiveElementsCountNEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldInteractiveElementsCount, v))
}

// InteractiveElementsCountIn applies the In predicate on the "interactive_elements_count" field.
func InteractiveElementsCountIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldInteractiveElementsCount, vs...))
}

// InteractiveElementsCountNotIn applies the NotIn predicate on the "interactive_elements_count" field.
func InteractiveElementsCountNotIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldInteractiveElementsCount, vs...))
}

// InteractiveElementsCountGT applies the GT predicate on the "interactive_elements_count" field.
func InteractiveElementsCountGT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldInteractiveElementsCount, v))
}

// InteractiveElementsCountGTE applies the GTE predicate on the "interactive_elements_count" field.
func InteractiveElementsCountGTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldInteractiveElementsCount, v))
}

// InteractiveElementsCountLT applies the LT predicate on the "interactive_elements_count" field.
func InteractiveElementsCountLT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldInteractiveElementsCount, v))
}

// InteractiveElementsCountLTE applies the LTE predicate on the "interactive_elements_count" field.
func InteractiveElementsCountLTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldInteractiveElementsCount, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldCourseID, vs...))
}

// HasCourse applies the HasEdge predicate on the "course" edge.
func HasCourse() predicate.Subject {
	return predicate.Subject(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CourseTable, CourseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCourseWith applies the HasEdge predicate on the "course" edge with a given conditions (other predicates).
func HasCourseWith(preds ...predicate.Course) predicate.Subject {
	return predicate.Subject(func(s *sql.Selector) {
		step := newCourseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChapters applies the HasEdge predicate on the "chapters" edge.
func HasChapters() predicate.Subject {
	return predicate.Subject(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChaptersTable, ChaptersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChaptersWith applies the HasEdge predicate on the "chapters" edge with a given conditions (other predicates).
func HasChaptersWith(preds ...predicate.Chapter) predicate.Subject {
	return predicate.Subject(func(s *sql.Selector) {
		step := newChaptersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProgress applies the HasEdge predicate on the "progress" edge.
func HasProgress() predicate.Subject {
	return predicate.Subject(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProgressTable, ProgressColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProgressWith applies the HasEdge predicate on the "progress" edge with a given conditions (other predicates).
func HasProgressWith(preds ...predicate.UserProgress) predicate.Subject {
	return predicate.Subject(func(s *sql.Selector) {
		step := newProgressStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStudySessions applies the HasEdge predicate on the "study_sessions" edge.
func HasStudySessions() predicate.Subject {
	return predicate.Subject(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StudySessionsTable, StudySessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudySessionsWith applies the HasEdge predicate on the "study_sessions" edge with a given conditions (other predicates).
func HasStudySessionsWith(preds ...predicate.StudySession) predicate.Subject {
	return predicate.Subject(func(s *sql.Selector) {
		step := newStudySessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.NotPredicates(p))
}
