package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hanja-study/hanjastudy/internal/catalog"
)

// Question is one generated quiz item. Options is nil for subjective types.
type Question struct {
	ID        int      `json:"id"`
	Type      string   `json:"type"`
	Prompt    string   `json:"question"`
	Options   []string `json:"options,omitempty"`
	Answer    string   `json:"answer"`
	Character string   `json:"character"`
}

// Question type tags.
const (
	TypeMeaningReading      = "meaning_reading"
	TypeSubjective          = "subjective"
	TypeHanjaWord           = "hanja_word"
	TypeHanjaWordSubjective = "hanja_word_subjective"
)

const distractorCount = 3

// Generator builds quiz questions from the catalog.
type Generator struct {
	cat *catalog.Catalog
	rng *rand.Rand
}

type Option func(*Generator)

// WithRand pins the random source, for deterministic tests.
func WithRand(r *rand.Rand) Option { return func(g *Generator) { g.rng = r } }

func NewGenerator(cat *catalog.Catalog, opts ...Option) *Generator {
	g := &Generator{
		cat: cat,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// MultipleChoice generates count reading+meaning questions for the grade.
// With target set it generates for that single character only; an unknown
// target yields an empty set, not an error. Grades too small to supply
// three distractors yield fewer (possibly zero) questions.
func (g *Generator) MultipleChoice(grade string, count int, target string) []Question {
	pool := g.cat.ByGrade(grade)

	var selected []catalog.Hanja
	if target != "" {
		for _, h := range pool {
			if h.Character == target {
				selected = append(selected, h)
			}
		}
		if len(selected) == 0 {
			return []Question{}
		}
	} else {
		selected = g.sampleHanja(pool, count)
	}

	questions := []Question{}
	for _, h := range selected {
		others := []catalog.Hanja{}
		for _, o := range pool {
			if o.Character != h.Character {
				others = append(others, o)
			}
		}
		if len(others) < distractorCount {
			continue
		}
		wrong := g.sampleHanja(others, distractorCount)

		answer := fmt.Sprintf("%s, %s", h.Reading, h.Meaning)
		options := []string{answer}
		for _, w := range wrong {
			options = append(options, fmt.Sprintf("%s, %s", w.Reading, w.Meaning))
		}
		g.shuffle(options)

		questions = append(questions, Question{
			ID:        len(questions) + 1,
			Type:      TypeMeaningReading,
			Prompt:    fmt.Sprintf("다음 한자의 음과 뜻을 고르시오: %s", h.Character),
			Options:   options,
			Answer:    answer,
			Character: h.Character,
		})
	}
	return questions
}

// Subjective generates count free-text reading+meaning questions.
func (g *Generator) Subjective(grade string, count int) []Question {
	selected := g.sampleHanja(g.cat.ByGrade(grade), count)
	questions := []Question{}
	for i, h := range selected {
		questions = append(questions, Question{
			ID:        i + 1,
			Type:      TypeSubjective,
			Prompt:    fmt.Sprintf("다음 한자의 음과 뜻을 쓰시오: %s", h.Character),
			Answer:    fmt.Sprintf("%s, %s", h.Reading, h.Meaning),
			Character: h.Character,
		})
	}
	return questions
}

// Word generates multiple-choice word-reading questions. Grades outside
// the word allowlist get an empty set. Distractor readings come from the
// same grade, topped up from other grades when fewer than three exist.
func (g *Generator) Word(grade string, count int) []Question {
	if !catalog.WordGradeAllowed(grade) {
		return []Question{}
	}
	gradeWords := g.cat.WordsByGrade(grade)
	selected := g.sampleWords(gradeWords, count)

	questions := []Question{}
	for _, w := range selected {
		wrong := g.wordDistractors(w, gradeWords)
		options := append([]string{w.Korean}, wrong...)
		g.shuffle(options)

		questions = append(questions, Question{
			ID:        len(questions) + 1,
			Type:      TypeHanjaWord,
			Prompt:    fmt.Sprintf("다음 한자어의 독음을 고르시오: %s", w.Hanja),
			Options:   options,
			Answer:    w.Korean,
			Character: w.Hanja,
		})
	}
	return questions
}

// WordSubjective generates free-text word-reading questions, gated like Word.
func (g *Generator) WordSubjective(grade string, count int) []Question {
	if !catalog.WordGradeAllowed(grade) {
		return []Question{}
	}
	selected := g.sampleWords(g.cat.WordsByGrade(grade), count)
	questions := []Question{}
	for i, w := range selected {
		questions = append(questions, Question{
			ID:        i + 1,
			Type:      TypeHanjaWordSubjective,
			Prompt:    fmt.Sprintf("다음 한자어의 독음을 쓰시오: %s", w.Hanja),
			Answer:    w.Korean,
			Character: w.Hanja,
		})
	}
	return questions
}

// Review regenerates one multiple-choice question per missed character.
// Characters with no generatable question are skipped, so the result may
// be smaller than the input.
func (g *Generator) Review(grade string, characters []string) []Question {
	questions := []Question{}
	for _, ch := range characters {
		qs := g.MultipleChoice(grade, 1, ch)
		if len(qs) == 0 {
			continue
		}
		q := qs[0]
		q.ID = len(questions) + 1
		questions = append(questions, q)
	}
	return questions
}

// wordDistractors picks three wrong readings, preferring the same grade.
func (g *Generator) wordDistractors(w catalog.Word, gradeWords []catalog.Word) []string {
	seen := map[string]bool{w.Korean: true}
	sameGrade := []string{}
	for _, o := range gradeWords {
		if !seen[o.Korean] {
			seen[o.Korean] = true
			sameGrade = append(sameGrade, o.Korean)
		}
	}
	g.shuffle(sameGrade)
	if len(sameGrade) > distractorCount {
		sameGrade = sameGrade[:distractorCount]
	}
	if len(sameGrade) == distractorCount {
		return sameGrade
	}
	// top up from the rest of the vocabulary
	rest := []string{}
	for _, o := range g.cat.Words() {
		if !seen[o.Korean] {
			seen[o.Korean] = true
			rest = append(rest, o.Korean)
		}
	}
	g.shuffle(rest)
	for _, r := range rest {
		if len(sameGrade) == distractorCount {
			break
		}
		sameGrade = append(sameGrade, r)
	}
	return sameGrade
}

// sampleHanja picks up to count entries without replacement.
func (g *Generator) sampleHanja(pool []catalog.Hanja, count int) []catalog.Hanja {
	if count > len(pool) {
		count = len(pool)
	}
	if count <= 0 {
		return nil
	}
	idx := g.rng.Perm(len(pool))[:count]
	out := make([]catalog.Hanja, count)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

func (g *Generator) sampleWords(pool []catalog.Word, count int) []catalog.Word {
	if count > len(pool) {
		count = len(pool)
	}
	if count <= 0 {
		return nil
	}
	idx := g.rng.Perm(len(pool))[:count]
	out := make([]catalog.Word, count)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

func (g *Generator) shuffle(s []string) {
	g.rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
