package http

import (
	"encoding/json"
	"net/http"

	"github.com/hanja-study/hanjastudy/internal/progress"

	"github.com/go-chi/chi/v5"
)

func SaveProgressHandler(store progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p progress.StudyProgress
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if p.Grade == "" {
			http.Error(w, "grade required", 400)
			return
		}
		if err := store.SaveStudyProgress(r.Context(), p); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(p)
	}
}

func GradeProgressHandler(store progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grade := chi.URLParam(r, "grade")
		p, ok, err := store.GradeProgress(r.Context(), grade)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if !ok {
			http.Error(w, "no progress for grade", 404)
			return
		}
		_ = json.NewEncoder(w).Encode(p)
	}
}

// SaveQuizResultHandler appends a result and returns the updated stats.
func SaveQuizResultHandler(store progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var res progress.QuizResult
		if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if res.Grade == "" || res.Type == "" {
			http.Error(w, "grade and type required", 400)
			return
		}
		if res.CorrectAnswers > res.TotalQuestions {
			http.Error(w, "correctAnswers exceeds totalQuestions", 400)
			return
		}
		stats, err := store.SaveQuizResult(r.Context(), res)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(stats)
	}
}

func QuizResultsHandler(store progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := store.QuizResults(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(results)
	}
}

func StatsHandler(store progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := store.Stats(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(stats)
	}
}

func RecomputeStatsHandler(store progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := store.RecomputeStats(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(stats)
	}
}

func SaveWrongAnswerHandler(store progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var wa progress.WrongAnswer
		if err := json.NewDecoder(r.Body).Decode(&wa); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if wa.Character == "" || wa.Grade == "" {
			http.Error(w, "character and grade required", 400)
			return
		}
		if err := store.SaveWrongAnswer(r.Context(), wa); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.WriteHeader(204)
	}
}

func RemoveWrongAnswerHandler(store progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grade := chi.URLParam(r, "grade")
		character := chi.URLParam(r, "character")
		if err := store.RemoveWrongAnswer(r.Context(), character, grade); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.WriteHeader(204)
	}
}

func WrongAnswersHandler(store progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wrong, err := store.WrongAnswers(r.Context(), r.URL.Query().Get("grade"))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(wrong)
	}
}
