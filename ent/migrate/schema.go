// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AiRequestLogsColumns holds the columns for the "ai_request_logs" table.
	AiRequestLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AiRequestLogsTable holds the schema information for the "ai_request_logs" table.
	AiRequestLogsTable = &schema.Table{
		Name:       "ai_request_logs",
		Columns:    AiRequestLogsColumns,
		PrimaryKey: []*schema.Column{AiRequestLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "airequestlog_provider",
				Unique:  false,
				Columns: []*schema.Column{AiRequestLogsColumns[1]},
			},
			{
				Name:    "airequestlog_purpose",
				Unique:  false,
				Columns: []*schema.Column{AiRequestLogsColumns[3]},
			},
			{
				Name:    "airequestlog_success",
				Unique:  false,
				Columns: []*schema.Column{AiRequestLogsColumns[7]},
			},
			{
				Name:    "airequestlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AiRequestLogsColumns[9]},
			},
		},
	}
	// BookmarksColumns holds the columns for the "bookmarks" table.
	BookmarksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Size: 50},
		{Name: "content_block_index", Type: field.TypeInt, Default: 0},
		{Name: "content_block_type", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty_when_bookmarked", Type: field.TypeString, Nullable: true},
		{Name: "reason_for_bookmark", Type: field.TypeString, Default: "important"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_reviewed", Type: field.TypeTime, Nullable: true},
		{Name: "chapter_id", Type: field.TypeInt},
	}
	// BookmarksTable holds the schema information for the "bookmarks" table.
	BookmarksTable = &schema.Table{
		Name:       "bookmarks",
		Columns:    BookmarksColumns,
		PrimaryKey: []*schema.Column{BookmarksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bookmarks_chapters_bookmarks",
				Columns:    []*schema.Column{BookmarksColumns[11]},
				RefColumns: []*schema.Column{ChaptersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bookmark_user_id_chapter_id_content_block_index",
				Unique:  true,
				Columns: []*schema.Column{BookmarksColumns[1], BookmarksColumns[11], BookmarksColumns[2]},
			},
		},
	}
	// ChaptersColumns holds the columns for the "chapters" table.
	ChaptersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "chapter_number", Type: field.TypeInt, Default: 0},
		{Name: "intro_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "content_blocks", Type: field.TypeJSON, Nullable: true},
		{Name: "chapter_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty_level", Type: field.TypeString, Default: "intermediate"},
		{Name: "estimated_study_time", Type: field.TypeInt, Default: 30},
		{Name: "total_content_blocks", Type: field.TypeInt, Default: 0},
		{Name: "concept_count", Type: field.TypeInt, Default: 0},
		{Name: "visualization_count", Type: field.TypeInt, Default: 0},
		{Name: "exercise_count", Type: field.TypeInt, Default: 0},
		{Name: "case_study_count", Type: field.TypeInt, Default: 0},
		{Name: "subject_id", Type: field.TypeInt},
	}
	// ChaptersTable holds the schema information for the "chapters" table.
	ChaptersTable = &schema.Table{
		Name:       "chapters",
		Columns:    ChaptersColumns,
		PrimaryKey: []*schema.Column{ChaptersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chapters_subjects_chapters",
				Columns:    []*schema.Column{ChaptersColumns[15]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chapter_subject_id_chapter_number",
				Unique:  false,
				Columns: []*schema.Column{ChaptersColumns[15], ChaptersColumns[4]},
			},
		},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 200},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "academic_level", Type: field.TypeString, Default: "masters"},
		{Name: "institution", Type: field.TypeString, Nullable: true},
		{Name: "instructor", Type: field.TypeString, Nullable: true},
		{Name: "semester", Type: field.TypeString, Nullable: true},
		{Name: "total_subjects", Type: field.TypeInt, Default: 0},
		{Name: "total_chapters", Type: field.TypeInt, Default: 0},
		{Name: "estimated_study_hours", Type: field.TypeInt, Default: 0},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
	}
	// CourseEnrollmentsColumns holds the columns for the "course_enrollments" table.
	CourseEnrollmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Size: 50},
		{Name: "enrollment_date", Type: field.TypeTime},
		{Name: "target_completion_date", Type: field.TypeTime, Nullable: true},
		{Name: "study_goal_hours_per_week", Type: field.TypeInt, Default: 10},
		{Name: "overall_progress_percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "subjects_completed", Type: field.TypeInt, Default: 0},
		{Name: "chapters_completed", Type: field.TypeInt, Default: 0},
		{Name: "total_study_time_minutes", Type: field.TypeInt, Default: 0},
		{Name: "preferred_difficulty", Type: field.TypeString, Default: "intermediate"},
		{Name: "learning_style_preference", Type: field.TypeString, Default: "mixed"},
		{Name: "last_activity", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "course_id", Type: field.TypeInt},
	}
	// CourseEnrollmentsTable holds the schema information for the "course_enrollments" table.
	CourseEnrollmentsTable = &schema.Table{
		Name:       "course_enrollments",
		Columns:    CourseEnrollmentsColumns,
		PrimaryKey: []*schema.Column{CourseEnrollmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "course_enrollments_courses_enrollments",
				Columns:    []*schema.Column{CourseEnrollmentsColumns[13]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "courseenrollment_user_id_course_id",
				Unique:  true,
				Columns: []*schema.Column{CourseEnrollmentsColumns[1], CourseEnrollmentsColumns[13]},
			},
		},
	}
	// QuizResultsColumns holds the columns for the "quiz_results" table.
	QuizResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Size: 50},
		{Name: "quiz_title", Type: field.TypeString, Size: 200},
		{Name: "quiz_type", Type: field.TypeString, Default: "practice"},
		{Name: "subject_domain", Type: field.TypeString, Nullable: true},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "percentage", Type: field.TypeFloat64},
		{Name: "difficulty_level", Type: field.TypeString, Default: "intermediate"},
		{Name: "time_taken_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "concept_mastery", Type: field.TypeJSON, Nullable: true},
		{Name: "areas_for_improvement", Type: field.TypeJSON, Nullable: true},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
		{Name: "user_answers", Type: field.TypeJSON, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "chapter_id", Type: field.TypeInt},
	}
	// QuizResultsTable holds the schema information for the "quiz_results" table.
	QuizResultsTable = &schema.Table{
		Name:       "quiz_results",
		Columns:    QuizResultsColumns,
		PrimaryKey: []*schema.Column{QuizResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quiz_results_chapters_quiz_results",
				Columns:    []*schema.Column{QuizResultsColumns[15]},
				RefColumns: []*schema.Column{ChaptersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quizresult_user_id_chapter_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[1], QuizResultsColumns[15]},
			},
			{
				Name:    "quizresult_user_id_subject_domain",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[1], QuizResultsColumns[4]},
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Size: 50},
		{Name: "session_start", Type: field.TypeTime},
		{Name: "session_end", Type: field.TypeTime, Nullable: true},
		{Name: "duration_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "activities", Type: field.TypeJSON, Nullable: true},
		{Name: "concepts_studied", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty_adjustments", Type: field.TypeInt, Default: 0},
		{Name: "completion_progress", Type: field.TypeFloat64, Default: 0},
		{Name: "questions_asked", Type: field.TypeInt, Default: 0},
		{Name: "bookmarks_created", Type: field.TypeInt, Default: 0},
		{Name: "quizzes_completed", Type: field.TypeInt, Default: 0},
		{Name: "engagement_score", Type: field.TypeFloat64, Default: 0},
		{Name: "focus_score", Type: field.TypeFloat64, Default: 0},
		{Name: "learning_effectiveness", Type: field.TypeFloat64, Default: 0},
		{Name: "chapter_id", Type: field.TypeInt, Nullable: true},
		{Name: "course_id", Type: field.TypeInt, Nullable: true},
		{Name: "subject_id", Type: field.TypeInt, Nullable: true},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "study_sessions_chapters_study_sessions",
				Columns:    []*schema.Column{StudySessionsColumns[15]},
				RefColumns: []*schema.Column{ChaptersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "study_sessions_courses_study_sessions",
				Columns:    []*schema.Column{StudySessionsColumns[16]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "study_sessions_subjects_study_sessions",
				Columns:    []*schema.Column{StudySessionsColumns[17]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_user_id_session_start",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1], StudySessionsColumns[2]},
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "preface", Type: field.TypeJSON, Nullable: true},
		{Name: "overall_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "subject_domain", Type: field.TypeString, Default: "general"},
		{Name: "learning_style", Type: field.TypeString, Default: "mixed"},
		{Name: "complexity_level", Type: field.TypeString, Default: "intermediate"},
		{Name: "subject_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "original_filename", Type: field.TypeString, Nullable: true},
		{Name: "file_size_mb", Type: field.TypeFloat64, Nullable: true},
		{Name: "processing_time_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "total_chapters", Type: field.TypeInt, Default: 0},
		{Name: "estimated_read_time", Type: field.TypeInt, Default: 0},
		{Name: "interactive_elements_count", Type: field.TypeInt, Default: 0},
		{Name: "course_id", Type: field.TypeInt},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subjects_courses_subjects",
				Columns:    []*schema.Column{SubjectsColumns[16]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subject_course_id",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[16]},
			},
			{
				Name:    "subject_subject_domain",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[6]},
			},
		},
	}
	// UserProgressesColumns holds the columns for the "user_progresses" table.
	UserProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Size: 50},
		{Name: "status", Type: field.TypeString, Default: "not_started"},
		{Name: "completion_percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "mastery_level", Type: field.TypeString, Default: "novice"},
		{Name: "time_spent_minutes", Type: field.TypeInt, Default: 0},
		{Name: "sessions_count", Type: field.TypeInt, Default: 0},
		{Name: "last_accessed", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "questions_asked", Type: field.TypeInt, Default: 0},
		{Name: "concepts_bookmarked", Type: field.TypeInt, Default: 0},
		{Name: "quizzes_taken", Type: field.TypeInt, Default: 0},
		{Name: "avg_quiz_score", Type: field.TypeFloat64, Default: 0},
		{Name: "difficulty_preference", Type: field.TypeString, Default: "intermediate"},
		{Name: "learning_velocity", Type: field.TypeFloat64, Default: 1},
		{Name: "struggle_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "chapter_id", Type: field.TypeInt, Nullable: true},
		{Name: "subject_id", Type: field.TypeInt},
	}
	// UserProgressesTable holds the schema information for the "user_progresses" table.
	UserProgressesTable = &schema.Table{
		Name:       "user_progresses",
		Columns:    UserProgressesColumns,
		PrimaryKey: []*schema.Column{UserProgressesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_progresses_chapters_progress",
				Columns:    []*schema.Column{UserProgressesColumns[16]},
				RefColumns: []*schema.Column{ChaptersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "user_progresses_subjects_progress",
				Columns:    []*schema.Column{UserProgressesColumns[17]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "userprogress_user_id_subject_id_chapter_id",
				Unique:  true,
				Columns: []*schema.Column{UserProgressesColumns[1], UserProgressesColumns[17], UserProgressesColumns[16]},
			},
			{
				Name:    "userprogress_user_id_chapter_id",
				Unique:  false,
				Columns: []*schema.Column{UserProgressesColumns[1], UserProgressesColumns[16]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AiRequestLogsTable,
		BookmarksTable,
		ChaptersTable,
		CoursesTable,
		CourseEnrollmentsTable,
		QuizResultsTable,
		StudySessionsTable,
		SubjectsTable,
		UserProgressesTable,
	}
)

func init() {
	BookmarksTable.ForeignKeys[0].RefTable = ChaptersTable
	ChaptersTable.ForeignKeys[0].RefTable = SubjectsTable
	CourseEnrollmentsTable.ForeignKeys[0].RefTable = CoursesTable
	QuizResultsTable.ForeignKeys[0].RefTable = ChaptersTable
	StudySessionsTable.ForeignKeys[0].RefTable = ChaptersTable
	StudySessionsTable.ForeignKeys[1].RefTable = CoursesTable
	StudySessionsTable.ForeignKeys[2].RefTable = SubjectsTable
	SubjectsTable.ForeignKeys[0].RefTable = CoursesTable
	UserProgressesTable.ForeignKeys[0].RefTable = ChaptersTable
	UserProgressesTable.ForeignKeys[1].RefTable = SubjectsTable
}
