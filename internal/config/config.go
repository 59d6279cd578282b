package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	DBDriver string // sqlite|postgres|json
	DBDSN    string
	DataDir  string // bucket files for the json driver

	HanjaCSV     string
	HanjaWordCSV string

	CORSOrigins []string

	QuestionCount int // default question count per quiz request
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":7781"
	}
	return Config{
		HTTPAddr:      addr,
		DBDriver:      envOr("DB_DRIVER", "sqlite"),
		DBDSN:         envOr("DB_DSN", ""),
		DataDir:       envOr("DATA_DIR", "./data"),
		HanjaCSV:      envOr("HANJA_CSV", "hanja.csv"),
		HanjaWordCSV:  envOr("HANJA_WORD_CSV", "hanjaword.csv"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:5173,http://localhost:8001"),
		QuestionCount: envInt("QUESTION_COUNT", 10),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
