package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campushub/api/internal/domain/common/errorz"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// respondError maps the domain error taxonomy onto HTTP statuses. The error
// message travels to the client as-is; wrap details accordingly.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errorz.InvalidInput),
		errors.Is(err, errorz.AlreadyExists),
		errors.Is(err, errorz.Conflict):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errorz.Unauthenticated):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, errorz.Forbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, errorz.NotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}
