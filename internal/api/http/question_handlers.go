package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hanja-study/hanjastudy/internal/grading"
	"github.com/hanja-study/hanjastudy/internal/progress"
	"github.com/hanja-study/hanjastudy/internal/quiz"

	"github.com/go-chi/chi/v5"
)

func MultipleChoiceHandler(gen *quiz.Generator, defaultCount int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grade := chi.URLParam(r, "grade")
		count := queryCount(r, defaultCount)
		target := r.URL.Query().Get("character")
		_ = json.NewEncoder(w).Encode(gen.MultipleChoice(grade, count, target))
	}
}

func SubjectiveHandler(gen *quiz.Generator, defaultCount int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grade := chi.URLParam(r, "grade")
		_ = json.NewEncoder(w).Encode(gen.Subjective(grade, queryCount(r, defaultCount)))
	}
}

func WordHandler(gen *quiz.Generator, defaultCount int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grade := chi.URLParam(r, "grade")
		_ = json.NewEncoder(w).Encode(gen.Word(grade, queryCount(r, defaultCount)))
	}
}

func WordSubjectiveHandler(gen *quiz.Generator, defaultCount int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grade := chi.URLParam(r, "grade")
		_ = json.NewEncoder(w).Encode(gen.WordSubjective(grade, queryCount(r, defaultCount)))
	}
}

// ReviewHandler regenerates one question per wrong answer of the grade.
// An empty review set is a valid response, not an error.
func ReviewHandler(gen *quiz.Generator, store progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grade := chi.URLParam(r, "grade")
		wrong, err := store.WrongAnswers(r.Context(), grade)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		chars := make([]string, 0, len(wrong))
		for _, wa := range wrong {
			chars = append(chars, wa.Character)
		}
		_ = json.NewEncoder(w).Encode(gen.Review(grade, chars))
	}
}

func CheckAnswerHandler(scorer *grading.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserAnswer    string `json:"user_answer"`
			CorrectAnswer string `json:"correct_answer"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		_ = json.NewEncoder(w).Encode(scorer.Check(req.UserAnswer, req.CorrectAnswer))
	}
}

func queryCount(r *http.Request, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
