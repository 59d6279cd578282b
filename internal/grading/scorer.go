package grading

import "strings"

// Result is the outcome of checking a single free-text answer.
type Result struct {
	IsCorrect  bool    `json:"is_correct"`
	Score      int     `json:"score"`
	Similarity float64 `json:"similarity"`
}

// Policy holds the similarity thresholds and the credit awarded at each.
// The curve is owned by the scorer, not inferred by callers.
type Policy struct {
	// Whole-answer bands, highest first.
	FullMatch     float64 // similarity at which the answer counts as correct with full score
	NearMatch     float64 // correct, slightly reduced score
	ModerateMatch float64 // incorrect but moderate partial credit
	LowMatch      float64 // incorrect, low partial credit

	NearScore     int
	ModerateScore int
	LowScore      int

	// Per-part credit for composite "reading, meaning" answers.
	PartHigh      float64
	PartLow       float64
	PartHighScore int
	PartLowScore  int
	CompositePass int // composite score at or above which the answer is correct
}

// DefaultPolicy mirrors the historical score curve.
func DefaultPolicy() Policy {
	return Policy{
		FullMatch:     0.9,
		NearMatch:     0.8,
		ModerateMatch: 0.7,
		LowMatch:      0.6,
		NearScore:     90,
		ModerateScore: 70,
		LowScore:      50,
		PartHigh:      0.8,
		PartLow:       0.6,
		PartHighScore: 50,
		PartLowScore:  30,
		CompositePass: 80,
	}
}

// Option tweaks a Scorer.
type Option func(*Scorer)

func WithPolicy(p Policy) Option { return func(s *Scorer) { s.policy = p } }

// Scorer grades free-text answers against the canonical answer.
type Scorer struct {
	policy Policy
}

func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{policy: DefaultPolicy()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Check scores userAnswer against correctAnswer.
//
// Exact matches (trimmed, casefolded) are always {correct, 100, 1.0}.
// Composite answers of the form "reading, meaning" are scored per part;
// everything else falls through to the whole-answer similarity bands.
func (s *Scorer) Check(userAnswer, correctAnswer string) Result {
	user := strings.TrimSpace(userAnswer)
	correct := strings.TrimSpace(correctAnswer)

	if strings.EqualFold(user, correct) {
		return Result{IsCorrect: true, Score: 100, Similarity: 1.0}
	}

	if strings.Contains(correct, ", ") {
		return s.checkComposite(user, correct)
	}
	return s.checkSingle(user, correct)
}

func (s *Scorer) checkSingle(user, correct string) Result {
	sim := Similarity(user, correct)
	p := s.policy
	switch {
	case sim >= p.FullMatch:
		return Result{IsCorrect: true, Score: 100, Similarity: sim}
	case sim >= p.NearMatch:
		return Result{IsCorrect: true, Score: p.NearScore, Similarity: sim}
	case sim >= p.ModerateMatch:
		return Result{IsCorrect: false, Score: p.ModerateScore, Similarity: sim}
	case sim >= p.LowMatch:
		return Result{IsCorrect: false, Score: p.LowScore, Similarity: sim}
	}
	return Result{IsCorrect: false, Score: 0, Similarity: sim}
}

// checkComposite grades "reading, meaning" style answers part by part.
// A user answer without a second part forfeits that part's credit but is
// not penalized on the similarity average.
func (s *Scorer) checkComposite(user, correct string) Result {
	correctParts := strings.Split(correct, ", ")
	userParts := []string{user}
	if strings.Contains(user, ", ") {
		userParts = strings.Split(user, ", ")
	}

	p := s.policy
	score := 0
	totalSim := 0.0

	if len(userParts) >= 1 && len(correctParts) >= 1 {
		sim := Similarity(strings.TrimSpace(userParts[0]), strings.TrimSpace(correctParts[0]))
		totalSim += sim
		switch {
		case sim >= p.PartHigh:
			score += p.PartHighScore
		case sim >= p.PartLow:
			score += p.PartLowScore
		}
	}

	if len(userParts) >= 2 && len(correctParts) >= 2 {
		sim := Similarity(strings.TrimSpace(userParts[1]), strings.TrimSpace(correctParts[1]))
		totalSim += sim
		switch {
		case sim >= p.PartHigh:
			score += p.PartHighScore
		case sim >= p.PartLow:
			score += p.PartLowScore
		}
	} else {
		totalSim += 1.0
	}

	if score > 100 {
		score = 100
	}
	return Result{
		IsCorrect:  score >= p.CompositePass,
		Score:      score,
		Similarity: totalSim / 2.0,
	}
}
