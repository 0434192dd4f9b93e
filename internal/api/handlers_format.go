package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dgallion1/mdfmtr/internal/doctree"
	"github.com/dgallion1/mdfmtr/internal/formatter"
	"github.com/dgallion1/mdfmtr/internal/parser"
)

type formatRequest struct {
	// Text stays raw so a non-string value can be named in the error.
	Text          json.RawMessage `json:"text"`
	Title         string          `json:"title,omitempty"`
	MaxLineLength *int            `json:"max_line_length,omitempty"`
	CollapseCRLF  *bool           `json:"collapse_crlf,omitempty"`
}

type formatResponse struct {
	*formatter.Result
	Outline *doctree.DocTree `json:"outline"`
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req formatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Text) == 0 {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}

	opts := s.formatOptions()
	if req.MaxLineLength != nil && *req.MaxLineLength > 0 {
		opts.MaxLineLength = *req.MaxLineLength
	}
	if req.CollapseCRLF != nil {
		opts.CollapseCRLF = *req.CollapseCRLF
	}

	start := time.Now()
	res, err := formatter.FormatValue(req.Text, opts)
	if err != nil {
		if errors.Is(err, formatter.ErrInvalidInputKind) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "format failed", http.StatusInternalServerError)
		return
	}
	s.latency.Record(time.Since(start), len(res.Lines))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(formatResponse{
		Result:  res,
		Outline: parser.Outline([]byte(res.FixedText), req.Title),
	})
}

func (s *Server) formatOptions() formatter.Options {
	return formatter.Options{
		MaxLineLength: s.cfg.MaxLineLength,
		CollapseCRLF:  s.cfg.CollapseCRLF,
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
