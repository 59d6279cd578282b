package progress

import (
	"testing"
	"time"
)

func fixedClock(s string) func() time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestApply_FirstResult(t *testing.T) {
	agg := NewAggregator(WithClock(fixedClock("2025-03-10T14:30:00Z")))
	stats := agg.Apply(StudyStats{}, nil, QuizResult{
		Grade: "8급", Type: QuizMultipleChoice,
		Score: 80, TotalQuestions: 10, CorrectAnswers: 8, StudyTime: 60,
	})

	want := StudyStats{
		TotalStudyTime:    60,
		TotalHanjaStudied: 10,
		TotalQuizzesTaken: 1,
		AverageScore:      80,
		StreakDays:        1,
		LastStudyDate:     "2025-03-10",
	}
	if stats != want {
		t.Errorf("Apply = %+v, want %+v", stats, want)
	}
}

func TestApply_RunningSums(t *testing.T) {
	agg := NewAggregator(WithClock(fixedClock("2025-03-10T09:00:00Z")))
	prior := []QuizResult{{Score: 80, TotalQuestions: 10, StudyTime: 60, Date: "2025-03-10T08:00:00Z"}}
	stats := StudyStats{
		TotalStudyTime: 60, TotalHanjaStudied: 10, TotalQuizzesTaken: 1,
		AverageScore: 80, StreakDays: 1, LastStudyDate: "2025-03-10",
	}

	got := agg.Apply(stats, prior, QuizResult{Score: 90, TotalQuestions: 5, StudyTime: 30})
	if got.TotalStudyTime != 90 {
		t.Errorf("totalStudyTime = %d, want 90", got.TotalStudyTime)
	}
	if got.TotalQuizzesTaken != 2 {
		t.Errorf("totalQuizzesTaken = %d, want 2", got.TotalQuizzesTaken)
	}
	if got.TotalHanjaStudied != 15 {
		t.Errorf("totalHanjaStudied = %d, want 15", got.TotalHanjaStudied)
	}
	if got.AverageScore != 85 {
		t.Errorf("averageScore = %d, want 85", got.AverageScore)
	}
}

func TestApply_StreakLaw(t *testing.T) {
	base := StudyStats{StreakDays: 3, LastStudyDate: "2025-03-10"}
	tests := []struct {
		name  string
		today string
		want  int
	}{
		{"same day unchanged", "2025-03-10T23:59:00Z", 3},
		{"next day increments", "2025-03-11T00:01:00Z", 4},
		{"two-day gap resets", "2025-03-12T08:00:00Z", 1},
		{"long gap resets", "2025-04-01T08:00:00Z", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator(WithClock(fixedClock(tt.today)))
			got := agg.Apply(base, nil, QuizResult{Score: 100})
			if got.StreakDays != tt.want {
				t.Errorf("streak = %d, want %d", got.StreakDays, tt.want)
			}
		})
	}
}

func TestApply_StreakResetsOnMissingDate(t *testing.T) {
	agg := NewAggregator(WithClock(fixedClock("2025-03-10T08:00:00Z")))
	for _, last := range []string{"", "not-a-date", "2025/03/09"} {
		got := agg.Apply(StudyStats{StreakDays: 9, LastStudyDate: last}, nil, QuizResult{})
		if got.StreakDays != 1 {
			t.Errorf("lastStudyDate %q: streak = %d, want 1", last, got.StreakDays)
		}
	}
}

func TestApply_AverageIsWholeLogMean(t *testing.T) {
	agg := NewAggregator(WithClock(fixedClock("2025-03-10T08:00:00Z")))
	prior := []QuizResult{{Score: 100}, {Score: 70}}
	got := agg.Apply(StudyStats{TotalQuizzesTaken: 2}, prior, QuizResult{Score: 80})
	// mean(100, 70, 80) = 83.33 -> 83
	if got.AverageScore != 83 {
		t.Errorf("averageScore = %d, want 83", got.AverageScore)
	}
}

func TestReplay_MatchesIncremental(t *testing.T) {
	results := []QuizResult{
		{Score: 80, TotalQuestions: 10, StudyTime: 60, Date: "2025-03-10T10:00:00Z"},
		{Score: 90, TotalQuestions: 5, StudyTime: 30, Date: "2025-03-10T18:00:00Z"},
		{Score: 60, TotalQuestions: 10, StudyTime: 45, Date: "2025-03-11T09:00:00Z"},
		{Score: 100, TotalQuestions: 10, StudyTime: 20, Date: "2025-03-14T09:00:00Z"},
	}

	incremental := StudyStats{}
	for i, r := range results {
		agg := NewAggregator(WithClock(fixedClock(r.Date)))
		incremental = agg.Apply(incremental, results[:i], r)
	}

	replayed := NewAggregator().Replay(results)
	if replayed != incremental {
		t.Errorf("replay %+v != incremental %+v", replayed, incremental)
	}

	// same-day pair never double-increments, gap resets
	if replayed.StreakDays != 1 {
		t.Errorf("streak after 3-day gap = %d, want 1", replayed.StreakDays)
	}
	if replayed.TotalQuizzesTaken != 4 || replayed.TotalStudyTime != 155 {
		t.Errorf("sums wrong: %+v", replayed)
	}
}

func TestDaysBetween_CalendarBoundaries(t *testing.T) {
	a := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if d := daysBetween(a, b); d != 1 {
		t.Errorf("daysBetween = %d, want 1", d)
	}
	if d := daysBetween(a, a); d != 0 {
		t.Errorf("daysBetween same day = %d, want 0", d)
	}
}

func TestRoundedMean(t *testing.T) {
	tests := []struct {
		sum, n, want int
	}{
		{0, 0, 0},
		{80, 1, 80},
		{165, 2, 83}, // 82.5 rounds up
		{250, 3, 83}, // 83.33 rounds down
	}
	for _, tt := range tests {
		if got := roundedMean(tt.sum, tt.n); got != tt.want {
			t.Errorf("roundedMean(%d, %d) = %d, want %d", tt.sum, tt.n, got, tt.want)
		}
	}
}
