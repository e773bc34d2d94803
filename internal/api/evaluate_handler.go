package api

import (
	"encoding/json"
	"net/http"

	"rngbias/app"
	"rngbias/domain/core"
)

// evaluateRequest carries one raw sequence line.
type evaluateRequest struct {
	Sequence string `json:"sequence"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResult(w, http.StatusBadRequest, app.ErrorResult(err))
		return
	}

	seq, err := core.ParseSequence(req.Sequence, s.wantLen)
	if err != nil {
		writeResult(w, http.StatusBadRequest, app.ErrorResult(err))
		return
	}

	objectives, constraints, err := s.svc.Evaluate(r.Context(), seq)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsConfigError(err) {
			status = http.StatusBadRequest
		}
		writeResult(w, status, app.ErrorResult(err))
		return
	}

	writeResult(w, http.StatusOK, app.NewResult(objectives, constraints))
}

func writeResult(w http.ResponseWriter, status int, res app.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(res)
}
