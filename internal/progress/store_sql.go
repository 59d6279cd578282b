package progress

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SQLStore persists the buckets in SQL tables. Works against both the
// sqlite and postgres schemas from internal/db.
type SQLStore struct {
	db  *sql.DB
	agg *Aggregator
}

func NewSQLStore(db *sql.DB, agg *Aggregator) *SQLStore {
	return &SQLStore{db: db, agg: agg}
}

func (s *SQLStore) SaveStudyProgress(ctx context.Context, p StudyProgress) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO study_progress
		(grade, current_index, total_count, completed_count, last_study_date, study_time_sec)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (grade) DO UPDATE SET
		  current_index=EXCLUDED.current_index,
		  total_count=EXCLUDED.total_count,
		  completed_count=EXCLUDED.completed_count,
		  last_study_date=EXCLUDED.last_study_date,
		  study_time_sec=EXCLUDED.study_time_sec`,
		p.Grade, p.CurrentIndex, p.TotalCount, p.CompletedCount, p.LastStudyDate, p.StudyTime)
	return err
}

func (s *SQLStore) GradeProgress(ctx context.Context, grade string) (StudyProgress, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT grade, current_index, total_count, completed_count,
		last_study_date, study_time_sec FROM study_progress WHERE grade=$1`, grade)
	var p StudyProgress
	err := row.Scan(&p.Grade, &p.CurrentIndex, &p.TotalCount, &p.CompletedCount, &p.LastStudyDate, &p.StudyTime)
	if errors.Is(err, sql.ErrNoRows) {
		return StudyProgress{}, false, nil
	}
	if err != nil {
		return StudyProgress{}, false, err
	}
	return p, true, nil
}

func (s *SQLStore) SaveQuizResult(ctx context.Context, r QuizResult) (StudyStats, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Date == "" {
		r.Date = time.Now().UTC().Format(time.RFC3339)
	}

	prior, err := s.QuizResults(ctx)
	if err != nil {
		return StudyStats{}, err
	}
	stats, err := s.Stats(ctx)
	if err != nil {
		return StudyStats{}, err
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO quiz_results
		(id, grade, quiz_type, score, total_questions, correct_answers, taken_at, study_time_sec)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		r.ID, r.Grade, r.Type, r.Score, r.TotalQuestions, r.CorrectAnswers, r.Date, r.StudyTime)
	if err != nil {
		return StudyStats{}, err
	}

	updated := s.agg.Apply(stats, prior, r)
	if err := s.saveStats(ctx, updated); err != nil {
		return StudyStats{}, err
	}
	return updated, nil
}

func (s *SQLStore) QuizResults(ctx context.Context) ([]QuizResult, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, grade, quiz_type, score, total_questions,
		correct_answers, taken_at, study_time_sec FROM quiz_results ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []QuizResult{}
	for rows.Next() {
		var r QuizResult
		if err := rows.Scan(&r.ID, &r.Grade, &r.Type, &r.Score, &r.TotalQuestions,
			&r.CorrectAnswers, &r.Date, &r.StudyTime); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) Stats(ctx context.Context) (StudyStats, error) {
	row := s.db.QueryRowContext(ctx, `SELECT total_study_time_sec, total_hanja_studied,
		total_quizzes_taken, average_score, streak_days, last_study_date FROM study_stats WHERE id=1`)
	var st StudyStats
	err := row.Scan(&st.TotalStudyTime, &st.TotalHanjaStudied, &st.TotalQuizzesTaken,
		&st.AverageScore, &st.StreakDays, &st.LastStudyDate)
	if errors.Is(err, sql.ErrNoRows) {
		return StudyStats{}, nil
	}
	if err != nil {
		return StudyStats{}, err
	}
	return st, nil
}

func (s *SQLStore) RecomputeStats(ctx context.Context) (StudyStats, error) {
	results, err := s.QuizResults(ctx)
	if err != nil {
		return StudyStats{}, err
	}
	stats := s.agg.Replay(results)
	if err := s.saveStats(ctx, stats); err != nil {
		return StudyStats{}, err
	}
	return stats, nil
}

func (s *SQLStore) saveStats(ctx context.Context, st StudyStats) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO study_stats
		(id, total_study_time_sec, total_hanja_studied, total_quizzes_taken, average_score, streak_days, last_study_date)
		VALUES (1,$1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET
		  total_study_time_sec=EXCLUDED.total_study_time_sec,
		  total_hanja_studied=EXCLUDED.total_hanja_studied,
		  total_quizzes_taken=EXCLUDED.total_quizzes_taken,
		  average_score=EXCLUDED.average_score,
		  streak_days=EXCLUDED.streak_days,
		  last_study_date=EXCLUDED.last_study_date`,
		st.TotalStudyTime, st.TotalHanjaStudied, st.TotalQuizzesTaken,
		st.AverageScore, st.StreakDays, st.LastStudyDate)
	return err
}

func (s *SQLStore) SaveWrongAnswer(ctx context.Context, w WrongAnswer) error {
	if w.Date == "" {
		w.Date = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO wrong_answers
		(hanja_char, grade, seq, user_answer, correct_answer, quiz_type, missed_at, attempts)
		VALUES ($1,$2,(SELECT COALESCE(MAX(seq),0)+1 FROM wrong_answers),$3,$4,$5,$6,1)
		ON CONFLICT (hanja_char, grade) DO UPDATE SET
		  user_answer=EXCLUDED.user_answer,
		  correct_answer=EXCLUDED.correct_answer,
		  quiz_type=EXCLUDED.quiz_type,
		  missed_at=EXCLUDED.missed_at,
		  attempts=wrong_answers.attempts+1`,
		w.Character, w.Grade, w.UserAnswer, w.CorrectAnswer, w.Type, w.Date)
	return err
}

func (s *SQLStore) RemoveWrongAnswer(ctx context.Context, character, grade string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM wrong_answers WHERE hanja_char=$1 AND grade=$2`, character, grade)
	return err
}

func (s *SQLStore) WrongAnswers(ctx context.Context, grade string) ([]WrongAnswer, error) {
	query := `SELECT hanja_char, grade, user_answer, correct_answer, quiz_type, missed_at, attempts
		FROM wrong_answers ORDER BY seq`
	args := []any{}
	if grade != "" {
		query = `SELECT hanja_char, grade, user_answer, correct_answer, quiz_type, missed_at, attempts
			FROM wrong_answers WHERE grade=$1 ORDER BY seq`
		args = append(args, grade)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []WrongAnswer{}
	for rows.Next() {
		var w WrongAnswer
		if err := rows.Scan(&w.Character, &w.Grade, &w.UserAnswer, &w.CorrectAnswer,
			&w.Type, &w.Date, &w.Attempts); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
