// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AIRequestLog is the predicate function for airequestlog builders.
type AIRequestLog func(*sql.Selector)

// Bookmark is the predicate function for bookmark builders.
type Bookmark func(*sql.Selector)

// Chapter is the predicate function for chapter builders.
type Chapter func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// CourseEnrollment is the predicate function for courseenrollment builders.
type CourseEnrollment func(*sql.Selector)

// QuizResult is the predicate function for quizresult builders.
type QuizResult func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)

// UserProgress is the predicate function for userprogress builders.
type UserProgress func(*sql.Selector)
