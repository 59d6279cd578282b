package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/hanja-study/hanjastudy/internal/api/http"
	"github.com/hanja-study/hanjastudy/internal/catalog"
	"github.com/hanja-study/hanjastudy/internal/config"
	"github.com/hanja-study/hanjastudy/internal/db"
	"github.com/hanja-study/hanjastudy/internal/grading"
	"github.com/hanja-study/hanjastudy/internal/progress"
	"github.com/hanja-study/hanjastudy/internal/quiz"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	cat, err := catalog.Load(cfg.HanjaCSV, cfg.HanjaWordCSV)
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}
	log.Printf("catalog loaded: %d grades", len(cat.Grades()))

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store open failed: %v", err)
	}

	r := api.NewRouter(api.Deps{
		Catalog:       cat,
		Generator:     quiz.NewGenerator(cat),
		Scorer:        grading.NewScorer(),
		Store:         store,
		CORSOrigins:   cfg.CORSOrigins,
		QuestionCount: cfg.QuestionCount,
	})

	log.Printf("listening on %s (store=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func openStore(cfg config.Config) (progress.Store, error) {
	agg := progress.NewAggregator()
	if cfg.DBDriver == "json" {
		return progress.NewJSONStore(cfg.DataDir, agg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	return progress.NewSQLStore(dbh, agg), nil
}
