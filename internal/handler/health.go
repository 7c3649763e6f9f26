package handler

import (
	"net/http"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/adapter"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/metrics"
)

type adapterStatus struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status   string                   `json:"status"`
	Adapters map[string]adapterStatus `json:"adapters"`
}

func Health(adapters map[string]adapter.LLMAdapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make(map[string]adapterStatus, len(adapters))
		for id, a := range adapters {
			s := adapterStatus{Available: a.Available()}
			gauge := 0.0
			if s.Available {
				gauge = 1
			} else {
				s.Reason = unavailableReason(a)
			}
			metrics.AdapterAvailable.WithLabelValues(id).Set(gauge)
			statuses[id] = s
		}

		writeJSON(w, http.StatusOK, healthResponse{
			Status:   "ok",
			Adapters: statuses,
		})
	}
}

func unavailableReason(a adapter.LLMAdapter) string {
	switch a.(type) {
	case *adapter.GeminiAdapter, *adapter.ClaudeAdapter, *adapter.OpenAIAdapter:
		return "no API key"
	case *adapter.OllamaAdapter:
		return "ollama unreachable"
	case *adapter.LlamaCppAdapter:
		return "llama-server unreachable"
	default:
		return "unavailable"
	}
}
