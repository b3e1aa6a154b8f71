package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/traderx-tools/traderx-convert/internal/convert"
	"github.com/traderx-tools/traderx-convert/internal/domain"
	"github.com/traderx-tools/traderx-convert/internal/logger"
)

// ConvertResponse is the payload returned by both conversion endpoints.
// Complete is false when a TraderPlus request did not carry the full
// document set; Files is empty in that case.
type ConvertResponse struct {
	Complete    bool                `json:"complete"`
	Files       map[string]string   `json:"files"`
	Diagnostics []domain.Diagnostic `json:"diagnostics"`
}

// ConvertTraderPlusRequest carries up to three legacy JSON documents.
// Each element is one raw config document; order does not matter.
type ConvertTraderPlusRequest struct {
	Documents []json.RawMessage `json:"documents"`
}

// HandleConvertTrader converts a line-DSL trader config posted as the
// raw request body.
func HandleConvertTrader(svc convert.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		body, err := io.ReadAll(r.Body)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		result, err := svc.ConvertTraderConfig(r.Context(), string(body))
		if err != nil {
			status, msg := mapConversionError(err)
			log.Warn("Trader conversion failed", "error", err, "status", status)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, ConvertResponse{
			Complete:    true,
			Files:       result.Files,
			Diagnostics: result.Diagnostics,
		})
	}
}

// HandleConvertTraderPlus converts a set of legacy TraderPlus JSON
// documents submitted together. Documents are classified by shape, so
// the caller does not name them. With fewer than three documents the
// response reports complete=false and no files.
func HandleConvertTraderPlus(svc convert.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ConvertTraderPlusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if len(req.Documents) == 0 {
			respondError(w, http.StatusBadRequest, ErrMsgNoDocuments)
			return
		}
		if len(req.Documents) > 3 {
			respondError(w, http.StatusBadRequest, ErrMsgTooManyDocuments)
			return
		}

		session := svc.NewSession()
		var result *convert.Result
		for _, doc := range req.Documents {
			var err error
			result, err = session.Submit(r.Context(), doc)
			if err != nil {
				status, msg := mapConversionError(err)
				log.Warn("TraderPlus conversion failed", "error", err, "status", status)
				respondError(w, status, msg)
				return
			}
		}

		respondJSON(w, http.StatusOK, ConvertResponse{
			Complete:    session.Complete(),
			Files:       result.Files,
			Diagnostics: result.Diagnostics,
		})
	}
}
