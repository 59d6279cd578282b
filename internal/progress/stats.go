package progress

import "time"

// DayFormat is the storage layout of StudyStats.LastStudyDate. All streak
// arithmetic is pinned to UTC calendar days.
const DayFormat = "2006-01-02"

// Aggregator folds quiz results into StudyStats. Stats are a materialized
// view of the quiz-result log: Replay over the full log must always agree
// with the incremental Apply path.
type Aggregator struct {
	now func() time.Time
}

type AggregatorOption func(*Aggregator)

// WithClock pins the aggregator's notion of "today", for tests.
func WithClock(now func() time.Time) AggregatorOption {
	return func(a *Aggregator) { a.now = now }
}

func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{now: time.Now}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Apply folds result into stats. prior is the result log before the append;
// the average is a whole-log mean, not a running one.
func (a *Aggregator) Apply(stats StudyStats, prior []QuizResult, result QuizResult) StudyStats {
	return fold(stats, prior, result, dayOf(a.now()))
}

// Replay rebuilds stats from scratch by folding the log in order, dating
// each result by its own timestamp. Used for repair and as the invariant
// check against the incremental path.
func (a *Aggregator) Replay(results []QuizResult) StudyStats {
	stats := StudyStats{}
	for i, r := range results {
		day := dayOf(a.now())
		if t, err := time.Parse(time.RFC3339, r.Date); err == nil {
			day = dayOf(t)
		}
		stats = fold(stats, results[:i], r, day)
	}
	return stats
}

func fold(stats StudyStats, prior []QuizResult, result QuizResult, today time.Time) StudyStats {
	streak := nextStreak(stats, today)

	sum := result.Score
	for _, r := range prior {
		sum += r.Score
	}
	n := len(prior) + 1

	return StudyStats{
		TotalStudyTime:    stats.TotalStudyTime + result.StudyTime,
		TotalHanjaStudied: stats.TotalHanjaStudied + result.TotalQuestions,
		TotalQuizzesTaken: stats.TotalQuizzesTaken + 1,
		AverageScore:      roundedMean(sum, n),
		StreakDays:        streak,
		LastStudyDate:     today.Format(DayFormat),
	}
}

// nextStreak applies the calendar-day streak rule: same day keeps the
// streak, a one-day gap extends it, anything else resets to 1.
func nextStreak(stats StudyStats, today time.Time) int {
	last, err := time.ParseInLocation(DayFormat, stats.LastStudyDate, time.UTC)
	if err != nil {
		return 1
	}
	switch daysBetween(last, today) {
	case 0:
		return stats.StreakDays
	case 1:
		return stats.StreakDays + 1
	}
	return 1
}

// dayOf truncates a timestamp to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts calendar-day boundaries between two UTC midnights,
// never elapsed seconds, so DST and time-of-day cannot skew the gap.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func roundedMean(sum, n int) int {
	if n == 0 {
		return 0
	}
	// round half up, matching the historical client arithmetic
	return (sum*2 + n) / (n * 2)
}
