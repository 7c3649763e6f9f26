package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/middleware"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/paraphrase"
)

const fallbackErrorMessage = "Something went wrong."

// text and tone are decoded loosely so a non-string value reports the same
// validation message as a missing one.
type paraphraseRequest struct {
	Text    any    `json:"text"`
	Tone    any    `json:"tone"`
	ModelID string `json:"model_id"`
}

func Paraphrase(svc *paraphrase.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req paraphraseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		text, _ := req.Text.(string)
		toneID, _ := req.Tone.(string)

		result, err := svc.Rewrite(r.Context(), paraphrase.Request{
			Text:    text,
			Tone:    toneID,
			ModelID: req.ModelID,
		})
		if err != nil {
			code, msg := errorStatus(err)
			if code >= http.StatusInternalServerError {
				slog.Error("paraphrase failed",
					"request_id", middleware.RequestIDFromContext(r.Context()),
					"tone", toneID,
					"model", req.ModelID,
					"error", err,
				)
			}
			writeError(w, code, msg)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func errorStatus(err error) (int, string) {
	var ve *paraphrase.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}
	if errors.Is(err, paraphrase.ErrUnknownModel) {
		return http.StatusBadRequest, err.Error()
	}
	msg := err.Error()
	if msg == "" {
		msg = fallbackErrorMessage
	}
	return http.StatusInternalServerError, msg
}
