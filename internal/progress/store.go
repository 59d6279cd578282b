package progress

import "context"

// Store is the bucketed persistence behind the study flows: per-grade
// study progress, the append-only quiz-result log, the aggregate stats
// record, and the wrong-answer set.
//
// All failures leave persisted state untouched. Absent buckets read as
// empty defaults, never as errors.
type Store interface {
	// SaveStudyProgress upserts the grade's record, replacing it wholesale.
	SaveStudyProgress(ctx context.Context, p StudyProgress) error
	// GradeProgress reports ok=false when the grade has never been studied.
	GradeProgress(ctx context.Context, grade string) (StudyProgress, bool, error)

	// SaveQuizResult appends to the result log and synchronously folds the
	// result into the aggregate stats, returning the updated value.
	SaveQuizResult(ctx context.Context, r QuizResult) (StudyStats, error)
	// QuizResults returns the full log in insertion order.
	QuizResults(ctx context.Context) ([]QuizResult, error)

	// Stats returns the aggregate record, zero-valued if none exists yet.
	Stats(ctx context.Context) (StudyStats, error)
	// RecomputeStats rebuilds stats by replaying the result log, persists
	// the outcome and returns it. Repair/migration entry point.
	RecomputeStats(ctx context.Context) (StudyStats, error)

	// SaveWrongAnswer upserts by (character, grade): a conflict increments
	// attempts and overwrites the other fields with the latest submission.
	SaveWrongAnswer(ctx context.Context, w WrongAnswer) error
	// RemoveWrongAnswer deletes the matching record; absent is a no-op.
	RemoveWrongAnswer(ctx context.Context, character, grade string) error
	// WrongAnswers returns records in insertion order, optionally filtered
	// by grade (empty grade means all).
	WrongAnswers(ctx context.Context, grade string) ([]WrongAnswer, error)
}
