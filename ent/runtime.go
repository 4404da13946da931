// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/studium/ent/airequestlog"
	"github.com/abhisek/studium/ent/bookmark"
	"github.com/abhisek/studium/ent/chapter"
	"github.com/abhisek/studium/ent/course"
	"github.com/abhisek/studium/ent/courseenrollment"
	"github.com/abhisek/studium/ent/quizresult"
	"github.com/abhisek/studium/ent/schema"
	"github.com/abhisek/studium/ent/studysession"
	"github.com/abhisek/studium/ent/subject"
	"github.com/abhisek/studium/ent/userprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	airequestlogFields := schema.AIRequestLog{}.Fields()
	_ = airequestlogFields
	// airequestlogDescInputTokens is the schema descriptor for input_tokens field.
	airequestlogDescInputTokens := airequestlogFields[3].Descriptor()
	// airequestlog.DefaultInputTokens holds the default value on creation for the input_tokens field.
	airequestlog.DefaultInputTokens = airequestlogDescInputTokens.Default.(int)
	// airequestlogDescOutputTokens is the schema descriptor for output_tokens field.
	airequestlogDescOutputTokens := airequestlogFields[4].Descriptor()
	// airequestlog.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	airequestlog.DefaultOutputTokens = airequestlogDescOutputTokens.Default.(int)
	// airequestlogDescLatencyMs is the schema descriptor for latency_ms field.
	airequestlogDescLatencyMs := airequestlogFields[5].Descriptor()
	// airequestlog.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	airequestlog.DefaultLatencyMs = airequestlogDescLatencyMs.Default.(int64)
	// airequestlogDescErrorMessage is the schema descriptor for error_message field.
	airequestlogDescErrorMessage := airequestlogFields[7].Descriptor()
	// airequestlog.DefaultErrorMessage holds the default value on creation for the error_message field.
	airequestlog.DefaultErrorMessage = airequestlogDescErrorMessage.Default.(string)
	// airequestlogDescCreatedAt is the schema descriptor for created_at field.
	airequestlogDescCreatedAt := airequestlogFields[8].Descriptor()
	// airequestlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	airequestlog.DefaultCreatedAt = airequestlogDescCreatedAt.Default.(func() time.Time)
	bookmarkFields := schema.Bookmark{}.Fields()
	_ = bookmarkFields
	// bookmarkDescUserID is the schema descriptor for user_id field.
	bookmarkDescUserID := bookmarkFields[0].Descriptor()
	// bookmark.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	bookmark.UserIDValidator = func() func(string) error {
		validators := bookmarkDescUserID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(user_id string) error {
			for _, fn := range fns {
				if err := fn(user_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// bookmarkDescContentBlockIndex is the schema descriptor for content_block_index field.
	bookmarkDescContentBlockIndex := bookmarkFields[1].Descriptor()
	// bookmark.DefaultContentBlockIndex holds the default value on creation for the content_block_index field.
	bookmark.DefaultContentBlockIndex = bookmarkDescContentBlockIndex.Default.(int)
	// bookmarkDescTitle is the schema descriptor for title field.
	bookmarkDescTitle := bookmarkFields[3].Descriptor()
	// bookmark.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	bookmark.TitleValidator = func() func(string) error {
		validators := bookmarkDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// bookmarkDescReasonForBookmark is the schema descriptor for reason_for_bookmark field.
	bookmarkDescReasonForBookmark := bookmarkFields[7].Descriptor()
	// bookmark.DefaultReasonForBookmark holds the default value on creation for the reason_for_bookmark field.
	bookmark.DefaultReasonForBookmark = bookmarkDescReasonForBookmark.Default.(string)
	// bookmarkDescCreatedAt is the schema descriptor for created_at field.
	bookmarkDescCreatedAt := bookmarkFields[8].Descriptor()
	// bookmark.DefaultCreatedAt holds the default value on creation for the created_at field.
	bookmark.DefaultCreatedAt = bookmarkDescCreatedAt.Default.(func() time.Time)
	chapterMixin := schema.Chapter{}.Mixin()
	chapterMixinFields0 := chapterMixin[0].Fields()
	_ = chapterMixinFields0
	chapterFields := schema.Chapter{}.Fields()
	_ = chapterFields
	// chapterDescCreatedAt is the schema descriptor for created_at field.
	chapterDescCreatedAt := chapterMixinFields0[0].Descriptor()
	// chapter.DefaultCreatedAt holds the default value on creation for the created_at field.
	chapter.DefaultCreatedAt = chapterDescCreatedAt.Default.(func() time.Time)
	// chapterDescUpdatedAt is the schema descriptor for updated_at field.
	chapterDescUpdatedAt := chapterMixinFields0[1].Descriptor()
	// chapter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chapter.DefaultUpdatedAt = chapterDescUpdatedAt.Default.(func() time.Time)
	// chapter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chapter.UpdateDefaultUpdatedAt = chapterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// chapterDescTitle is the schema descriptor for title field.
	chapterDescTitle := chapterFields[0].Descriptor()
	// chapter.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	chapter.TitleValidator = func() func(string) error {
		validators := chapterDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// chapterDescChapterNumber is the schema descriptor for chapter_number field.
	chapterDescChapterNumber := chapterFields[1].Descriptor()
	// chapter.DefaultChapterNumber holds the default value on creation for the chapter_number field.
	chapter.DefaultChapterNumber = chapterDescChapterNumber.Default.(int)
	// chapterDescDifficultyLevel is the schema descriptor for difficulty_level field.
	chapterDescDifficultyLevel := chapterFields[5].Descriptor()
	// chapter.DefaultDifficultyLevel holds the default value on creation for the difficulty_level field.
	chapter.DefaultDifficultyLevel = chapterDescDifficultyLevel.Default.(string)
	// chapterDescEstimatedStudyTime is the schema descriptor for estimated_study_time field.
	chapterDescEstimatedStudyTime := chapterFields[6].Descriptor()
	// chapter.DefaultEstimatedStudyTime holds the default value on creation for the estimated_study_time field.
	chapter.DefaultEstimatedStudyTime = chapterDescEstimatedStudyTime.Default.(int)
	// chapterDescTotalContentBlocks is the schema descriptor for total_content_blocks field.
	chapterDescTotalContentBlocks := chapterFields[7].Descriptor()
	// chapter.DefaultTotalContentBlocks holds the default value on creation for the total_content_blocks field.
	chapter.DefaultTotalContentBlocks = chapterDescTotalContentBlocks.Default.(int)
	// chapterDescConceptCount is the schema descriptor for concept_count field.
	chapterDescConceptCount := chapterFields[8].Descriptor()
	// chapter.DefaultConceptCount holds the default value on creation for the concept_count field.
	chapter.DefaultConceptCount = chapterDescConceptCount.Default.(int)
	// chapterDescVisualizationCount is the schema descriptor for visualization_count field.
	chapterDescVisualizationCount := chapterFields[9].Descriptor()
	// chapter.DefaultVisualizationCount holds the default value on creation for the visualization_count field.
	chapter.DefaultVisualizationCount = chapterDescVisualizationCount.Default.(int)
	// chapterDescExerciseCount is the schema descriptor for exercise_count field.
	chapterDescExerciseCount := chapterFields[10].Descriptor()
	// chapter.DefaultExerciseCount holds the default value on creation for the exercise_count field.
	chapter.DefaultExerciseCount = chapterDescExerciseCount.Default.(int)
	// chapterDescCaseStudyCount is the schema descriptor for case_study_count field.
	chapterDescCaseStudyCount := chapterFields[11].Descriptor()
	// chapter.DefaultCaseStudyCount holds the default value on creation for the case_study_count field.
	chapter.DefaultCaseStudyCount = chapterDescCaseStudyCount.Default.(int)
	courseMixin := schema.Course{}.Mixin()
	courseMixinFields0 := courseMixin[0].Fields()
	_ = courseMixinFields0
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseMixinFields0[0].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	// courseDescUpdatedAt is the schema descriptor for updated_at field.
	courseDescUpdatedAt := courseMixinFields0[1].Descriptor()
	// course.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	course.DefaultUpdatedAt = courseDescUpdatedAt.Default.(func() time.Time)
	// course.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	course.UpdateDefaultUpdatedAt = courseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// courseDescName is the schema descriptor for name field.
	courseDescName := courseFields[0].Descriptor()
	// course.NameValidator is a validator for the "name" field. It is called by the builders before save.
	course.NameValidator = func() func(string) error {
		validators := courseDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// courseDescAcademicLevel is the schema descriptor for academic_level field.
	courseDescAcademicLevel := courseFields[2].Descriptor()
	// course.DefaultAcademicLevel holds the default value on creation for the academic_level field.
	course.DefaultAcademicLevel = courseDescAcademicLevel.Default.(string)
	// courseDescTotalSubjects is the schema descriptor for total_subjects field.
	courseDescTotalSubjects := courseFields[6].Descriptor()
	// course.DefaultTotalSubjects holds the default value on creation for the total_subjects field.
	course.DefaultTotalSubjects = courseDescTotalSubjects.Default.(int)
	// courseDescTotalChapters is the schema descriptor for total_chapters field.
	courseDescTotalChapters := courseFields[7].Descriptor()
	// course.DefaultTotalChapters holds the default value on creation for the total_chapters field.
	course.DefaultTotalChapters = courseDescTotalChapters.Default.(int)
	// courseDescEstimatedStudyHours is the schema descriptor for estimated_study_hours field.
	courseDescEstimatedStudyHours := courseFields[8].Descriptor()
	// course.DefaultEstimatedStudyHours holds the default value on creation for the estimated_study_hours field.
	course.DefaultEstimatedStudyHours = courseDescEstimatedStudyHours.Default.(int)
	courseenrollmentFields := schema.CourseEnrollment{}.Fields()
	_ = courseenrollmentFields
	// courseenrollmentDescUserID is the schema descriptor for user_id field.
	courseenrollmentDescUserID := courseenrollmentFields[0].Descriptor()
	// courseenrollment.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	courseenrollment.UserIDValidator = func() func(string) error {
		validators := courseenrollmentDescUserID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(user_id string) error {
			for _, fn := range fns {
				if err := fn(user_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// courseenrollmentDescEnrollmentDate is the schema descriptor for enrollment_date field.
	courseenrollmentDescEnrollmentDate := courseenrollmentFields[1].Descriptor()
	// courseenrollment.DefaultEnrollmentDate holds the default value on creation for the enrollment_date field.
	courseenrollment.DefaultEnrollmentDate = courseenrollmentDescEnrollmentDate.Default.(func() time.Time)
	// courseenrollmentDescStudyGoalHoursPerWeek is the schema descriptor for study_goal_hours_per_week field.
	courseenrollmentDescStudyGoalHoursPerWeek := courseenrollmentFields[3].Descriptor()
	// courseenrollment.DefaultStudyGoalHoursPerWeek holds the default value on creation for the study_goal_hours_per_week field.
	courseenrollment.DefaultStudyGoalHoursPerWeek = courseenrollmentDescStudyGoalHoursPerWeek.Default.(int)
	// courseenrollmentDescOverallProgressPercentage is the schema descriptor for overall_progress_percentage field.
	courseenrollmentDescOverallProgressPercentage := courseenrollmentFields[4].Descriptor()
	// courseenrollment.DefaultOverallProgressPercentage holds the default value on creation for the overall_progress_percentage field.
	courseenrollment.DefaultOverallProgressPercentage = courseenrollmentDescOverallProgressPercentage.Default.(float64)
	// courseenrollmentDescSubjectsCompleted is the schema descriptor for subjects_completed field.
	courseenrollmentDescSubjectsCompleted := courseenrollmentFields[5].Descriptor()
	// courseenrollment.DefaultSubjectsCompleted holds the default value on creation for the subjects_completed field.
	courseenrollment.DefaultSubjectsCompleted = courseenrollmentDescSubjectsCompleted.Default.(int)
	// courseenrollmentDescChaptersCompleted is the schema descriptor for chapters_completed field.
	courseenrollmentDescChaptersCompleted := courseenrollmentFields[6].Descriptor()
	// courseenrollment.DefaultChaptersCompleted holds the default value on creation for the chapters_completed field.
	courseenrollment.DefaultChaptersCompleted = courseenrollmentDescChaptersCompleted.Default.(int)
	// courseenrollmentDescTotalStudyTimeMinutes is the schema descriptor for total_study_time_minutes field.
	courseenrollmentDescTotalStudyTimeMinutes := courseenrollmentFields[7].Descriptor()
	// courseenrollment.DefaultTotalStudyTimeMinutes holds the default value on creation for the total_study_time_minutes field.
	courseenrollment.DefaultTotalStudyTimeMinutes = courseenrollmentDescTotalStudyTimeMinutes.Default.(int)
	// courseenrollmentDescPreferredDifficulty is the schema descriptor for preferred_difficulty field.
	courseenrollmentDescPreferredDifficulty := courseenrollmentFields[8].Descriptor()
	// courseenrollment.DefaultPreferredDifficulty holds the default value on creation for the preferred_difficulty field.
	courseenrollment.DefaultPreferredDifficulty = courseenrollmentDescPreferredDifficulty.Default.(string)
	// courseenrollmentDescLearningStylePreference is the schema descriptor for learning_style_preference field.
	courseenrollmentDescLearningStylePreference := courseenrollmentFields[9].Descriptor()
	// courseenrollment.DefaultLearningStylePreference holds the default value on creation for the learning_style_preference field.
	courseenrollment.DefaultLearningStylePreference = courseenrollmentDescLearningStylePreference.Default.(string)
	// courseenrollmentDescLastActivity is the schema descriptor for last_activity field.
	courseenrollmentDescLastActivity := courseenrollmentFields[10].Descriptor()
	// courseenrollment.DefaultLastActivity holds the default value on creation for the last_activity field.
	courseenrollment.DefaultLastActivity = courseenrollmentDescLastActivity.Default.(func() time.Time)
	quizresultFields := schema.QuizResult{}.Fields()
	_ = quizresultFields
	// quizresultDescUserID is the schema descriptor for user_id field.
	quizresultDescUserID := quizresultFields[0].Descriptor()
	// quizresult.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizresult.UserIDValidator = func() func(string) error {
		validators := quizresultDescUserID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(user_id string) error {
			for _, fn := range fns {
				if err := fn(user_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// quizresultDescQuizTitle is the schema descriptor for quiz_title field.
	quizresultDescQuizTitle := quizresultFields[1].Descriptor()
	// quizresult.QuizTitleValidator is a validator for the "quiz_title" field. It is called by the builders before save.
	quizresult.QuizTitleValidator = func() func(string) error {
		validators := quizresultDescQuizTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(quiz_title string) error {
			for _, fn := range fns {
				if err := fn(quiz_title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// quizresultDescQuizType is the schema descriptor for quiz_type field.
	quizresultDescQuizType := quizresultFields[2].Descriptor()
	// quizresult.DefaultQuizType holds the default value on creation for the quiz_type field.
	quizresult.DefaultQuizType = quizresultDescQuizType.Default.(string)
	// quizresultDescDifficultyLevel is the schema descriptor for difficulty_level field.
	quizresultDescDifficultyLevel := quizresultFields[7].Descriptor()
	// quizresult.DefaultDifficultyLevel holds the default value on creation for the difficulty_level field.
	quizresult.DefaultDifficultyLevel = quizresultDescDifficultyLevel.Default.(string)
	// quizresultDescCompletedAt is the schema descriptor for completed_at field.
	quizresultDescCompletedAt := quizresultFields[13].Descriptor()
	// quizresult.DefaultCompletedAt holds the default value on creation for the completed_at field.
	quizresult.DefaultCompletedAt = quizresultDescCompletedAt.Default.(func() time.Time)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescUserID is the schema descriptor for user_id field.
	studysessionDescUserID := studysessionFields[0].Descriptor()
	// studysession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	studysession.UserIDValidator = func() func(string) error {
		validators := studysessionDescUserID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(user_id string) error {
			for _, fn := range fns {
				if err := fn(user_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// studysessionDescSessionStart is the schema descriptor for session_start field.
	studysessionDescSessionStart := studysessionFields[1].Descriptor()
	// studysession.DefaultSessionStart holds the default value on creation for the session_start field.
	studysession.DefaultSessionStart = studysessionDescSessionStart.Default.(func() time.Time)
	// studysessionDescDifficultyAdjustments is the schema descriptor for difficulty_adjustments field.
	studysessionDescDifficultyAdjustments := studysessionFields[6].Descriptor()
	// studysession.DefaultDifficultyAdjustments holds the default value on creation for the difficulty_adjustments field.
	studysession.DefaultDifficultyAdjustments = studysessionDescDifficultyAdjustments.Default.(int)
	// studysessionDescCompletionProgress is the schema descriptor for completion_progress field.
	studysessionDescCompletionProgress := studysessionFields[7].Descriptor()
	// studysession.DefaultCompletionProgress holds the default value on creation for the completion_progress field.
	studysession.DefaultCompletionProgress = studysessionDescCompletionProgress.Default.(float64)
	// studysessionDescQuestionsAsked is the schema descriptor for questions_asked field.
	studysessionDescQuestionsAsked := studysessionFields[8].Descriptor()
	// studysession.DefaultQuestionsAsked holds the default value on creation for the questions_asked field.
	studysession.DefaultQuestionsAsked = studysessionDescQuestionsAsked.Default.(int)
	// studysessionDescBookmarksCreated is the schema descriptor for bookmarks_created field.
	studysessionDescBookmarksCreated := studysessionFields[9].Descriptor()
	// studysession.DefaultBookmarksCreated holds the default value on creation for the bookmarks_created field.
	studysession.DefaultBookmarksCreated = studysessionDescBookmarksCreated.Default.(int)
	// studysessionDescQuizzesCompleted is the schema descriptor for quizzes_completed field.
	studysessionDescQuizzesCompleted := studysessionFields[10].Descriptor()
	// studysession.DefaultQuizzesCompleted holds the default value on creation for the quizzes_completed field.
	studysession.DefaultQuizzesCompleted = studysessionDescQuizzesCompleted.Default.(int)
	// studysessionDescEngagementScore is the schema descriptor for engagement_score field.
	studysessionDescEngagementScore := studysessionFields[11].Descriptor()
	// studysession.DefaultEngagementScore holds the default value on creation for the engagement_score field.
	studysession.DefaultEngagementScore = studysessionDescEngagementScore.Default.(float64)
	// studysessionDescFocusScore is the schema descriptor for focus_score field.
	studysessionDescFocusScore := studysessionFields[12].Descriptor()
	// studysession.DefaultFocusScore holds the default value on creation for the focus_score field.
	studysession.DefaultFocusScore = studysessionDescFocusScore.Default.(float64)
	// studysessionDescLearningEffectiveness is the schema descriptor for learning_effectiveness field.
	studysessionDescLearningEffectiveness := studysessionFields[13].Descriptor()
	// studysession.DefaultLearningEffectiveness holds the default value on creation for the learning_effectiveness field.
	studysession.DefaultLearningEffectiveness = studysessionDescLearningEffectiveness.Default.(float64)
	subjectMixin := schema.Subject{}.Mixin()
	subjectMixinFields0 := subjectMixin[0].Fields()
	_ = subjectMixinFields0
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescCreatedAt is the schema descriptor for created_at field.
	subjectDescCreatedAt := subjectMixinFields0[0].Descriptor()
	// subject.DefaultCreatedAt holds the default value on creation for the created_at field.
	subject.DefaultCreatedAt = subjectDescCreatedAt.Default.(func() time.Time)
	// subjectDescUpdatedAt is the schema descriptor for updated_at field.
	subjectDescUpdatedAt := subjectMixinFields0[1].Descriptor()
	// subject.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subject.DefaultUpdatedAt = subjectDescUpdatedAt.Default.(func() time.Time)
	// subject.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subject.UpdateDefaultUpdatedAt = subjectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subjectDescName is the schema descriptor for name field.
	subjectDescName := subjectFields[0].Descriptor()
	// subject.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subject.NameValidator = func() func(string) error {
		validators := subjectDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// subjectDescSubjectDomain is the schema descriptor for subject_domain field.
	subjectDescSubjectDomain := subjectFields[3].Descriptor()
	// subject.DefaultSubjectDomain holds the default value on creation for the subject_domain field.
	subject.DefaultSubjectDomain = subjectDescSubjectDomain.Default.(string)
	// subjectDescLearningStyle is the schema descriptor for learning_style field.
	subjectDescLearningStyle := subjectFields[4].Descriptor()
	// subject.DefaultLearningStyle holds the default value on creation for the learning_style field.
	subject.DefaultLearningStyle = subjectDescLearningStyle.Default.(string)
	// subjectDescComplexityLevel is the schema descriptor for complexity_level field.
	subjectDescComplexityLevel := subjectFields[5].Descriptor()
	// subject.DefaultComplexityLevel holds the default value on creation for the complexity_level field.
	subject.DefaultComplexityLevel = subjectDescComplexityLevel.Default.(string)
	// subjectDescTotalChapters is the schema descriptor for total_chapters field.
	subjectDescTotalChapters := subjectFields[10].Descriptor()
	// subject.DefaultTotalChapters holds the default value on creation for the total_chapters field.
	subject.DefaultTotalChapters = subjectDescTotalChapters.Default.(int)
	// subjectDescEstimatedReadTime is the schema descriptor for estimated_read_time field.
	subjectDescEstimatedReadTime := subjectFields[11].Descriptor()
	// subject.DefaultEstimatedReadTime holds the default value on creation for the estimated_read_time field.
	subject.DefaultEstimatedReadTime = subjectDescEstimatedReadTime.Default.(int)
	// subjectDescInteractiveElementsCount is the schema descriptor for interactive_elements_count field.
	subjectDescInteractiveElementsCount := subjectFields[12].Descriptor()
	// subject.DefaultInteractiveElementsCount holds the default value on creation for the interactive_elements_count field.
	subject.DefaultInteractiveElementsCount = subjectDescInteractiveElementsCount.Default.(int)
	userprogressFields := schema.UserProgress{}.Fields()
	_ = userprogressFields
	// userprogressDescUserID is the schema descriptor for user_id field.
	userprogressDescUserID := userprogressFields[0].Descriptor()
	// userprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userprogress.UserIDValidator = func() func(string) error {
		validators := userprogressDescUserID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(user_id string) error {
			for _, fn := range fns {
				if err := fn(user_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userprogressDescStatus is the schema descriptor for status field.
	userprogressDescStatus := userprogressFields[1].Descriptor()
	// userprogress.DefaultStatus holds the default value on creation for the status field.
	userprogress.DefaultStatus = userprogressDescStatus.Default.(string)
	// userprogressDescCompletionPercentage is the schema descriptor for completion_percentage field.
	userprogressDescCompletionPercentage := userprogressFields[2].Descriptor()
	// userprogress.DefaultCompletionPercentage holds the default value on creation for the completion_percentage field.
	userprogress.DefaultCompletionPercentage = userprogressDescCompletionPercentage.Default.(float64)
	// userprogressDescMasteryLevel is the schema descriptor for mastery_level field.
	userprogressDescMasteryLevel := userprogressFields[3].Descriptor()
	// userprogress.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	userprogress.DefaultMasteryLevel = userprogressDescMasteryLevel.Default.(string)
	// userprogressDescTimeSpentMinutes is the schema descriptor for time_spent_minutes field.
	userprogressDescTimeSpentMinutes := userprogressFields[4].Descriptor()
	// userprogress.DefaultTimeSpentMinutes holds the default value on creation for the time_spent_minutes field.
	userprogress.DefaultTimeSpentMinutes = userprogressDescTimeSpentMinutes.Default.(int)
	// userprogressDescSessionsCount is the schema descriptor for sessions_count field.
	userprogressDescSessionsCount := userprogressFields[5].Descriptor()
	// userprogress.DefaultSessionsCount holds the default value on creation for the sessions_count field.
	userprogress.DefaultSessionsCount = userprogressDescSessionsCount.Default.(int)
	// userprogressDescLastAccessed is the schema descriptor for last_accessed field.
	userprogressDescLastAccessed := userprogressFields[6].Descriptor()
	// userprogress.DefaultLastAccessed holds the default value on creation for the last_accessed field.
	userprogress.DefaultLastAccessed = userprogressDescLastAccessed.Default.(func() time.Time)
	// userprogressDescQuestionsAsked is the schema descriptor for questions_asked field.
	userprogressDescQuestionsAsked := userprogressFields[8].Descriptor()
	// userprogress.DefaultQuestionsAsked holds the default value on creation for the questions_asked field.
	userprogress.DefaultQuestionsAsked = userprogressDescQuestionsAsked.Default.(int)
	// userprogressDescConceptsBookmarked is the schema descriptor for concepts_bookmarked field.
	userprogressDescConceptsBookmarked := userprogressFields[9].Descriptor()
	// userprogress.DefaultConceptsBookmarked holds the default value on creation for the concepts_bookmarked field.
	userprogress.DefaultConceptsBookmarked = userprogressDescConceptsBookmarked.Default.(int)
	// userprogressDescQuizzesTaken is the schema descriptor for quizzes_taken field.
	userprogressDescQuizzesTaken := userprogressFields[10].Descriptor()
	// userprogress.DefaultQuizzesTaken holds the default value on creation for the quizzes_taken field.
	userprogress.DefaultQuizzesTaken = userprogressDescQuizzesTaken.Default.(int)
	// userprogressDescAvgQuizScore is the schema descriptor for avg_quiz_score field.
	userprogressDescAvgQuizScore := userprogressFields[11].Descriptor()
	// userprogress.DefaultAvgQuizScore holds the default value on creation for the avg_quiz_score field.
	userprogress.DefaultAvgQuizScore = userprogressDescAvgQuizScore.Default.(float64)
	// userprogressDescDifficultyPreference is the schema descriptor for difficulty_preference field.
	userprogressDescDifficultyPreference := userprogressFields[12].Descriptor()
	// userprogress.DefaultDifficultyPreference holds the default value on creation for the difficulty_preference field.
	userprogress.DefaultDifficultyPreference = userprogressDescDifficultyPreference.Default.(string)
	// userprogressDescLearningVelocity is the schema descriptor for learning_velocity field.
	userprogressDescLearningVelocity := userprogressFields[13].Descriptor()
	// userprogress.DefaultLearningVelocity holds the default value on creation for the learning_velocity field.
	userprogress.DefaultLearningVelocity = userprogressDescLearningVelocity.Default.(float64)
}
