package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studium/ent"
	"github.com/abhisek/studium/ent/chapter"
	"github.com/abhisek/studium/ent/quizresult"
	"github.com/abhisek/studium/ent/schema"
	"github.com/abhisek/studium/ent/subject"
)

// quizRepo implements QuizRepo backed by ent.
type quizRepo struct {
	client *ent.Client
}

func (r *quizRepo) Create(ctx context.Context, in QuizInput) (*QuizRecord, error) {
	mastery := make(map[string]schema.ConceptScore, len(in.ConceptMastery))
	for k, v := range in.ConceptMastery {
		mastery[k] = schema.ConceptScore(v)
	}
	answers := make(map[string]schema.AnsweredQuestion, len(in.UserAnswers))
	for k, v := range in.UserAnswers {
		answers[k] = schema.AnsweredQuestion(v)
	}

	b := r.client.QuizResult.Create().
		SetUserID(in.UserID).
		SetChapterID(in.ChapterID).
		SetQuizTitle(in.Title).
		SetQuizType(in.QuizType).
		SetSubjectDomain(in.SubjectDomain).
		SetScore(in.Score).
		SetTotalQuestions(in.TotalQuestions).
		SetPercentage(in.Percentage).
		SetDifficultyLevel(in.DifficultyLevel).
		SetConceptMastery(mastery).
		SetAreasForImprovement(in.WeakConcepts).
		SetQuestions(in.Questions).
		SetUserAnswers(answers)
	if in.TimeTakenSeconds != nil {
		b = b.SetTimeTakenSeconds(*in.TimeTakenSeconds)
	}
	q, err := b.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create quiz result: %w", err)
	}
	return quizFromEnt(q), nil
}

func (r *quizRepo) ForUser(ctx context.Context, userID string, limit int) ([]*QuizRecord, error) {
	q := r.client.QuizResult.Query().
		Where(quizresult.UserID(userID)).
		Order(ent.Desc(quizresult.FieldCompletedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("quiz history: %w", err)
	}
	return quizListFromEnt(rows), nil
}

func (r *quizRepo) ForUserChapter(ctx context.Context, userID string, chapterID int) ([]*QuizRecord, error) {
	rows, err := r.client.QuizResult.Query().
		Where(
			quizresult.UserID(userID),
			quizresult.ChapterID(chapterID),
		).
		Order(ent.Desc(quizresult.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("quizzes for chapter: %w", err)
	}
	return quizListFromEnt(rows), nil
}

func (r *quizRepo) ForUserSubject(ctx context.Context, userID string, subjectID int) ([]*QuizRecord, error) {
	rows, err := r.client.QuizResult.Query().
		Where(
			quizresult.UserID(userID),
			quizresult.HasChapterWith(chapter.SubjectID(subjectID)),
		).
		Order(ent.Desc(quizresult.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("quizzes for subject: %w", err)
	}
	return quizListFromEnt(rows), nil
}

func (r *quizRepo) ForUserCourse(ctx context.Context, userID string, courseID int) ([]*QuizRecord, error) {
	rows, err := r.client.QuizResult.Query().
		Where(
			quizresult.UserID(userID),
			quizresult.HasChapterWith(chapter.HasSubjectWith(subject.CourseID(courseID))),
		).
		Order(ent.Desc(quizresult.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("quizzes for course: %w", err)
	}
	return quizListFromEnt(rows), nil
}

func (r *quizRepo) LowScoresForUserCourse(ctx context.Context, userID string, courseID int, threshold float64) ([]*QuizRecord, error) {
	rows, err := r.client.QuizResult.Query().
		Where(
			quizresult.UserID(userID),
			quizresult.PercentageLT(threshold),
			quizresult.HasChapterWith(chapter.HasSubjectWith(subject.CourseID(courseID))),
		).
		Order(ent.Desc(quizresult.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("low quiz scores: %w", err)
	}
	return quizListFromEnt(rows), nil
}

func quizListFromEnt(rows []*ent.QuizResult) []*QuizRecord {
	out := make([]*QuizRecord, len(rows))
	for i, q := range rows {
		out[i] = quizFromEnt(q)
	}
	return out
}

func quizFromEnt(q *ent.QuizResult) *QuizRecord {
	mastery := make(map[string]ConceptScore, len(q.ConceptMastery))
	for k, v := range q.ConceptMastery {
		mastery[k] = ConceptScore(v)
	}
	answers := make(map[string]AnsweredQuestion, len(q.UserAnswers))
	for k, v := range q.UserAnswers {
		answers[k] = AnsweredQuestion(v)
	}
	return &QuizRecord{
		ID:               q.ID,
		UserID:           q.UserID,
		ChapterID:        q.ChapterID,
		Title:            q.QuizTitle,
		QuizType:         q.QuizType,
		SubjectDomain:    q.SubjectDomain,
		Score:            q.Score,
		TotalQuestions:   q.TotalQuestions,
		Percentage:       q.Percentage,
		DifficultyLevel:  q.DifficultyLevel,
		TimeTakenSeconds: q.TimeTakenSeconds,
		ConceptMastery:   mastery,
		WeakConcepts:     q.AreasForImprovement,
		Questions:        q.Questions,
		UserAnswers:      answers,
		CompletedAt:      q.CompletedAt,
	}
}
