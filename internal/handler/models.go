package handler

import (
	"net/http"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/adapter"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/tone"
)

func Models(models []adapter.ModelInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models)
	}
}

func Tones() http.HandlerFunc {
	tones := tone.All()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, tones)
	}
}
