package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hanja-study/hanjastudy/internal/catalog"

	"github.com/go-chi/chi/v5"
)

func GradesHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(cat.Grades())
	}
}

func HanjaByGradeHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grade := chi.URLParam(r, "grade")
		_ = json.NewEncoder(w).Encode(cat.ByGrade(grade))
	}
}

func HanjaByCharacterHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ch := chi.URLParam(r, "character")
		h, err := cat.ByCharacter(ch)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				http.Error(w, "hanja not found", 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(h)
	}
}
