// Code generated by ent, DO NOT EDIT.

package course

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/studium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldDescription, v))
}

// AcademicLevel applies equality check predicate on the "academic_level" field. It's identical to AcademicLevelEQ.
func AcademicLevel(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldAcademicLevel, v))
}

// Institution applies equality check predicate on the "institution" field. It's identical to InstitutionEQ.
func Institution(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldInstitution, v))
}

// Instructor applies equality check predicate on the "instructor" field. It's identical to InstructorEQ.
func Instructor(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldInstructor, v))
}

// Semester applies equality check predicate on the "semester" field. It's identical to SemesterEQ.
func Semester(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldSemester, v))
}

// TotalSubjects applies equality check predicate on the "total_subjects" field. It's identical to TotalSubjectsEQ.
func TotalSubjects(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldTotalSubjects, v))
}

// TotalChapters applies equality check predicate on the "total_chapters" field. It's identical to TotalChaptersEQ.
func TotalChapters(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldTotalChapters, v))
}

// EstimatedStudyHours applies equality check predicate on the "estimated_study_hours" field. It's identical to EstimatedStudyHoursEQ.
func EstimatedStudyHours(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldEstimatedStudyHours, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Course {
	return predicate.Course(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Course {
	return predicate.Course(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Course {
	return predicate.Course(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Course {
	return predicate.Course(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Course {
	return predicate.Course(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Course {
	return predicate.Course(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Course {
	return predicate.Course(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Course {
	return predicate.Course(sql.FieldContainsFold(FieldDescription, v))
}

// AcademicLevelEQ applies the EQ predicate on the "academic_level" field.
func AcademicLevelEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldAcademicLevel, v))
}

// AcademicLevelNEQ applies the NEQ predicate on the "academic_level" field.
func AcademicLevelNEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldAcademicLevel, v))
}

// AcademicLevelIn applies the In predicate on the "academic_level" field.
func AcademicLevelIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldAcademicLevel, vs...))
}

// AcademicLevelNotIn applies the NotIn predicate on the "academic_level" field.
func AcademicLevelNotIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldAcademicLevel, vs...))
}

// AcademicLevelGT applies the GT predicate on the "academic_level" field.
func AcademicLevelGT(v string) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldAcademicLevel, v))
}

// AcademicLevelGTE applies the GTE predicate on the "academic_level" field.
func AcademicLevelGTE(v string) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldAcademicLevel, v))
}

// AcademicLevelLT applies the LT predicate on the "academic_level" field.
func AcademicLevelLT(v string) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldAcademicLevel, v))
}

// AcademicLevelLTE applies the LTE predicate on the "academic_level" field.
func AcademicLevelLTE(v string) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldAcademicLevel, v))
}

// AcademicLevelContains applies the Contains predicate on the "academic_level" field.
func AcademicLevelContains(v string) predicate.Course {
	return predicate.Course(sql.FieldContains(FieldAcademicLevel, v))
}

// AcademicLevelHasPrefix applies the HasPrefix predicate on the "academic_level" field.
func AcademicLevelHasPrefix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasPrefix(FieldAcademicLevel, v))
}

// AcademicLevelHasSuffix applies the HasSuffix predicate on the "academic_level" field.
func AcademicLevelHasSuffix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasSuffix(FieldAcademicLevel, v))
}

// AcademicLevelEqualFold applies the EqualFold predicate on the "academic_level" field.
func AcademicLevelEqualFold(v string) predicate.Course {
	return predicate.Course(sql.FieldEqualFold(FieldAcademicLevel, v))
}

// AcademicLevelContainsFold applies the ContainsFold predicate on the "academic_level" field.
func AcademicLevelContainsFold(v string) predicate.Course {
	return predicate.Course(sql.FieldContainsFold(FieldAcademicLevel, v))
}

// InstitutionEQ applies the EQ predicate on the "institution" field.
func InstitutionEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldInstitution, v))
}

// InstitutionNEQ applies the NEQ predicate on the "institution" field.
func InstitutionNEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldInstitution, v))
}

// InstitutionIn applies the In predicate on the "institution" field.
func InstitutionIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldInstitution, vs...))
}

// InstitutionNotIn applies the NotIn predicate on the "institution" field.
func InstitutionNotIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldInstitution, vs...))
}

// InstitutionGT applies the GT predicate on the "institution" field.
func InstitutionGT(v string) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldInstitution, v))
}

// InstitutionGTE applies the GTE predicate on the "institution" field.
func InstitutionGTE(v string) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldInstitution, v))
}

// InstitutionLT applies the LT predicate on the "institution" field.
func InstitutionLT(v string) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldInstitution, v))
}

// InstitutionLTE applies the LTE predicate on the "institution" field.
func InstitutionLTE(v string) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldInstitution, v))
}

// InstitutionContains applies the Contains predicate on the "institution" field.
func InstitutionContains(v string) predicate.Course {
	return predicate.Course(sql.FieldContains(FieldInstitution, v))
}

// InstitutionHasPrefix applies the HasPrefix predicate on the "institution" field.
func InstitutionHasPrefix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasPrefix(FieldInstitution, v))
}

// InstitutionHasSuffix applies the HasSuffix predicate on the "institution" field.
func InstitutionHasSuffix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasSuffix(FieldInstitution, v))
}

// InstitutionIsNil applies the IsNil predicate on the "institution" field.
func InstitutionIsNil() predicate.Course {
	return predicate.Course(sql.FieldIsNull(FieldInstitution))
}

// InstitutionNotNil applies the NotNil predicate on the "institution" field.
func InstitutionNotNil() predicate.Course {
	return predicate.Course(sql.FieldNotNull(FieldInstitution))
}

// InstitutionEqualFold applies the EqualFold predicate on the "institution" field.
func InstitutionEqualFold(v string) predicate.Course {
	return predicate.Course(sql.FieldEqualFold(FieldInstitution, v))
}

// InstitutionContainsFold applies the ContainsFold predicate on the "institution" field.
func InstitutionContainsFold(v string) predicate.Course {
	return predicate.Course(sql.FieldContainsFold(FieldInstitution, v))
}

// InstructorEQ applies the EQ predicate on the "instructor" field.
func InstructorEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldInstructor, v))
}

// InstructorNEQ applies the NEQ predicate on the "instructor" field.
func InstructorNEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldInstructor, v))
}

// InstructorIn applies the In predicate on the "instructor" field.
func InstructorIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldInstructor, vs...))
}

// InstructorNotIn applies the NotIn predicate on the "instructor" field.
func InstructorNotIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldInstructor, vs...))
}

// InstructorGT applies the GT predicate on the "instructor" field.
func InstructorGT(v string) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldInstructor, v))
}

// InstructorGTE applies the GTE predicate on the "instructor" field.
func InstructorGTE(v string) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldInstructor, v))
}

// InstructorLT applies the LT predicate on the "instructor" field.
func InstructorLT(v string) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldInstructor, v))
}

// InstructorLTE applies the LTE predicate on the "instructor" field.
func InstructorLTE(v string) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldInstructor, v))
}

// InstructorContains applies the Contains predicate on the "instructor" field.
func InstructorContains(v string) predicate.Course {
	return predicate.Course(sql.FieldContains(FieldInstructor, v))
}

// InstructorHasPrefix applies the HasPrefix predicate on the "instructor" field.
func InstructorHasPrefix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasPrefix(FieldInstructor, v))
}

// InstructorHasSuffix applies the HasSuffix predicate on the "instructor" field.
func InstructorHasSuffix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasSuffix(FieldInstructor, v))
}

// InstructorIsNil applies the IsNil predicate on the "instructor" field.
func InstructorIsNil() predicate.Course {
	return predicate.Course(sql.FieldIsNull(FieldInstructor))
}

// InstructorNotNil applies the NotNil predicate on the "instructor" field.
func InstructorNotNil() predicate.Course {
	return predicate.Course(sql.FieldNotNull(FieldInstructor))
}

// InstructorEqualFold applies the EqualFold predicate on the "instructor" field.
func InstructorEqualFold(v string) predicate.Course {
	return predicate.Course(sql.FieldEqualFold(FieldInstructor, v))
}

// InstructorContainsFold applies the ContainsFold predicate on the "instructor" field.
func InstructorContainsFold(v string) predicate.Course {
	return predicate.Course(sql.FieldContainsFold(FieldInstructor, v))
}

// SemesterEQ applies the EQ predicate on the "semester" field.
func SemesterEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldSemester, v))
}

// SemesterNEQ applies the NEQ predicate on the "semester" field.
func SemesterNEQ(v string) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldSemester, v))
}

// SemesterIn applies the In predicate on the "semester" field.
func SemesterIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldSemester, vs...))
}

// SemesterNotIn applies the NotIn predicate on the "semester" field.
func SemesterNotIn(vs ...string) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldSemester, vs...))
}

// SemesterGT applies the GT predicate on the "semester" field.
func SemesterGT(v string) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldSemester, v))
}

// SemesterGTE applies the GTE predicate on the "semester" field.
func SemesterGTE(v string) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldSemester, v))
}

// SemesterLT applies the LT predicate on the "semester" field.
func SemesterLT(v string) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldSemester, v))
}

// SemesterLTE applies the LTE predicate on the "semester" field.
func SemesterLTE(v string) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldSemester, v))
}

// SemesterContains applies the Contains predicate on the "semester" field.
func SemesterContains(v string) predicate.Course {
	return predicate.Course(sql.FieldContains(FieldSemester, v))
}

// SemesterHasPrefix applies the HasPrefix predicate on the "semester" field.
func SemesterHasPrefix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasPrefix(FieldSemester, v))
}

// SemesterHasSuffix applies the HasSuffix predicate on the "semester" field.
func SemesterHasSuffix(v string) predicate.Course {
	return predicate.Course(sql.FieldHasSuffix(FieldSemester, v))
}

// SemesterIsNil applies the IsNil predicate on the "semester" field.
func SemesterIsNil() predicate.Course {
	return predicate.Course(sql.FieldIsNull(FieldSemester))
}

// SemesterNotNil applies the NotNil predicate on the "semester" field.
func SemesterNotNil() predicate.Course {
	return predicate.Course(sql.FieldNotNull(FieldSemester))
}

// SemesterEqualFold applies the EqualFold predicate on the "semester" field.
func SemesterEqualFold(v string) predicate.Course {
	return predicate.Course(sql.FieldEqualFold(FieldSemester, v))
}

// SemesterContainsFold applies the ContainsFold predicate on the "semester" field.
func SemesterContainsFold(v string) predicate.Course {
	return predicate.Course(sql.FieldContainsFold(FieldSemester, v))
}

// TotalSubjectsEQ applies the EQ predicate on the "total_subjects" field.
func TotalSubjectsEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldTotalSubjects, v))
}

// TotalSubjectsNEQ applies the NEQ predicate on the "total_subjects" field.
func TotalSubjectsNEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldTotalSubjects, v))
}

// TotalSubjectsIn applies the In predicate on the "total_subjects" field.
func TotalSubjectsIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldTotalSubjects, vs...))
}

// TotalSubjectsNotIn applies the NotIn predicate on the "total_subjects" field.
func TotalSubjectsNotIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldTotalSubjects, vs...))
}

// TotalSubjectsGT applies the GT predicate on the "total_subjects" field.
func TotalSubjectsGT(v int) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldTotalSubjects, v))
}

// TotalSubjectsGTE applies the GTE predicate on the "total_subjects" field.
func TotalSubjectsGTE(v int) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldTotalSubjects, v))
}

// TotalSubjectsLT applies the LT predicate on the "total_subjects" field.
func TotalSubjectsLT(v int) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldTotalSubjects, v))
}

// TotalSubjectsLTE applies the LTE predicate on the "total_subjects" field.
func TotalSubjectsLTE(v int) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldTotalSubjects, v))
}

// TotalChaptersEQ applies the EQ predicate on the "total_chapters" field.
func TotalChaptersEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldTotalChapters, v))
}

// TotalChaptersNEQ applies the NEQ predicate on the "total_chapters" field.
func TotalChaptersNEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldTotalChapters, v))
}

// TotalChaptersIn applies the In predicate on the "total_chapters" field.
func TotalChaptersIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldTotalChapters, vs...))
}

// TotalChaptersNotIn applies the NotIn predicate on the "total_chapters" field.
func TotalChaptersNotIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldTotalChapters, vs...))
}

// TotalChaptersGT applies the GT predicate on the "total_chapters" field.
func TotalChaptersGT(v int) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldTotalChapters, v))
}

// TotalChaptersGTE applies the GTE predicate on the "total_chapters" field.
func TotalChaptersGTE(v int) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldTotalChapters, v))
}

// TotalChaptersLT applies the LT predicate on the "total_chapters" field.
func TotalChaptersLT(v int) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldTotalChapters, v))
}

// TotalChaptersLTE applies the LTE predicate on the "total_chapters" field.
func TotalChaptersLTE(v int) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldTotalChapters, v))
}

// EstimatedStudyHoursEQ applies the EQ predicate on the "estimated_study_hours" field.
func EstimatedStudyHoursEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldEQ(FieldEstimatedStudyHours, v))
}

// EstimatedStudyHoursNEQ applies the NEQ predicate on the "estimated_study_hours" field.
func EstimatedStudyHoursNEQ(v int) predicate.Course {
	return predicate.Course(sql.FieldNEQ(FieldEstimatedStudyHours, v))
}

// EstimatedStudyHoursIn applies the In predicate on the "estimated_study_hours" field.
func EstimatedStudyHoursIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldIn(FieldEstimatedStudyHours, vs...))
}

// EstimatedStudyHoursNotIn applies the NotIn predicate on the "estimated_study_hours" field.
func EstimatedStudyHoursNotIn(vs ...int) predicate.Course {
	return predicate.Course(sql.FieldNotIn(FieldEstimatedStudyHours, vs...))
}

// EstimatedStudyHoursGT applies the GT predicate on the "estimated_study_hours" field.
func EstimatedStudyHoursGT(v int) predicate.Course {
	return predicate.Course(sql.FieldGT(FieldEstimatedStudyHours, v))
}

// EstimatedStudyHoursGTE applies the GTE predicate on the "estimated_study_hours" field.
func EstimatedStudyHoursGTE(v int) predicate.Course {
	return predicate.Course(sql.FieldGTE(FieldEstimatedStudyHours, v))
}

// EstimatedStudyHoursLT applies the LT predicate on the "estimated_study_hours" field.
func EstimatedStudyHoursLT(v int) predicate.Course {
	return predicate.Course(sql.FieldLT(FieldEstimatedStudyHours, v))
}

// EstimatedStudyHoursLTE applies the LTE predicate on the "estimated_study_hours" field.
func EstimatedStudyHoursLTE(v int) predicate.Course {
	return predicate.Course(sql.FieldLTE(FieldEstimatedStudyHours, v))
}

// HasSubjects applies the HasEdge predicate on the "subjects" edge.
func HasSubjects() predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubjectsTable, SubjectsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubjectsWith applies the HasEdge predicate on the "subjects" edge with a given conditions (other predicates).
func HasSubjectsWith(preds ...predicate.Subject) predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := newSubjectsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEnrollments applies the HasEdge predicate on the "enrollments" edge.
func HasEnrollments() predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EnrollmentsTable, EnrollmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEnrollmentsWith applies the HasEdge predicate on the "enrollments" edge with a given conditions (other predicates).
func HasEnrollmentsWith(preds ...predicate.CourseEnrollment) predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := newEnrollmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStudySessions applies the HasEdge predicate on the "study_sessions" edge.
func HasStudySessions() predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StudySessionsTable, StudySessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudySessionsWith applies the HasEdge predicate on the "study_sessions" edge with a given conditions (other predicates).
func HasStudySessionsWith(preds ...predicate.StudySession) predicate.Course {
	return predicate.Course(func(s *sql.Selector) {
		step := newStudySessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Course) predicate.Course {
	return predicate.Course(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Course) predicate.Course {
	return predicate.Course(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Course) predicate.Course {
	return predicate.Course(sql.NotPredicates(p))
}
