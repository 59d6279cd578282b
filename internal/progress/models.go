package progress

// Quiz result type tags, one per quiz mode.
const (
	QuizMultipleChoice      = "multiple-choice"
	QuizSubjective          = "subjective"
	QuizHanjaWord           = "hanja-word"
	QuizHanjaWordSubjective = "hanja-word-subjective"
	QuizReview              = "review"
)

// StudyProgress is the per-grade study cursor. One record per grade,
// replaced wholesale on every save.
type StudyProgress struct {
	Grade          string `json:"grade"`
	CurrentIndex   int    `json:"currentIndex"`
	TotalCount     int    `json:"totalCount"`
	CompletedCount int    `json:"completedCount"`
	LastStudyDate  string `json:"lastStudyDate"` // ISO date
	StudyTime      int    `json:"studyTime"`     // seconds
}

// QuizResult is one append-only log entry per finished quiz.
type QuizResult struct {
	ID             string `json:"id,omitempty"`
	Grade          string `json:"grade"`
	Type           string `json:"type"`
	Score          int    `json:"score"` // 0-100 percentage
	TotalQuestions int    `json:"totalQuestions"`
	CorrectAnswers int    `json:"correctAnswers"`
	Date           string `json:"date"` // RFC3339 timestamp
	StudyTime      int    `json:"studyTime"`
}

// StudyStats is the materialized rollup over the quiz-result log.
// It must always equal the value of replaying the full log from zero.
type StudyStats struct {
	TotalStudyTime    int    `json:"totalStudyTime"`
	TotalHanjaStudied int    `json:"totalHanjaStudied"`
	TotalQuizzesTaken int    `json:"totalQuizzesTaken"`
	AverageScore      int    `json:"averageScore"`
	StreakDays        int    `json:"streakDays"`
	LastStudyDate     string `json:"lastStudyDate"` // plain date, UTC
}

// WrongAnswer is a spaced-repetition entry, unique per (character, grade).
type WrongAnswer struct {
	Character     string `json:"character"`
	Grade         string `json:"grade"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Type          string `json:"type"`
	Date          string `json:"date"`
	Attempts      int    `json:"attempts"`
}
