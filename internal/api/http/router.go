package http

import (
	"net/http"
	"time"

	"github.com/hanja-study/hanjastudy/internal/catalog"
	"github.com/hanja-study/hanjastudy/internal/grading"
	"github.com/hanja-study/hanjastudy/internal/progress"
	"github.com/hanja-study/hanjastudy/internal/quiz"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps carries everything the API surface needs.
type Deps struct {
	Catalog       *catalog.Catalog
	Generator     *quiz.Generator
	Scorer        *grading.Scorer
	Store         progress.Store
	CORSOrigins   []string
	QuestionCount int
}

// NewRouter mounts the full API under /api.
func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	count := d.QuestionCount
	if count <= 0 {
		count = 10
	}

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/grades", GradesHandler(d.Catalog))
		ar.Get("/hanja/character/{character}", HanjaByCharacterHandler(d.Catalog))
		ar.Get("/hanja/{grade}", HanjaByGradeHandler(d.Catalog))

		ar.Post("/questions/multiple-choice/{grade}", MultipleChoiceHandler(d.Generator, count))
		ar.Post("/questions/subjective/{grade}", SubjectiveHandler(d.Generator, count))
		ar.Post("/questions/hanja-word/{grade}", WordHandler(d.Generator, count))
		ar.Post("/questions/hanja-word-subjective/{grade}", WordSubjectiveHandler(d.Generator, count))
		ar.Post("/questions/review/{grade}", ReviewHandler(d.Generator, d.Store))
		ar.Post("/check-answer", CheckAnswerHandler(d.Scorer))

		ar.Put("/progress", SaveProgressHandler(d.Store))
		ar.Get("/progress/{grade}", GradeProgressHandler(d.Store))
		ar.Post("/quiz-results", SaveQuizResultHandler(d.Store))
		ar.Get("/quiz-results", QuizResultsHandler(d.Store))
		ar.Get("/stats", StatsHandler(d.Store))
		ar.Post("/stats/recompute", RecomputeStatsHandler(d.Store))
		ar.Post("/wrong-answers", SaveWrongAnswerHandler(d.Store))
		ar.Get("/wrong-answers", WrongAnswersHandler(d.Store))
		ar.Delete("/wrong-answers/{grade}/{character}", RemoveWrongAnswerHandler(d.Store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	return r
}
