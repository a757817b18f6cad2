package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lexiglow/lexiglow-api/internal/api/shared"
)

// Pagination bounds for list endpoints.
const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// getPathID extracts an entity ID from the URL path and validates it is a
// well-formed UUID. Writes a 400 response and returns false on failure.
func getPathID(w http.ResponseWriter, r *http.Request, paramName string) (string, bool) {
	id := chi.URLParam(r, paramName)
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Missing %s path parameter", paramName))
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Invalid %s: must be a UUID", paramName))
		return "", false
	}
	return id, true
}

// getPagination reads skip/limit query parameters, applying defaults and
// clamping limit to the maximum page size. Writes a 400 response and returns
// false when a parameter is present but malformed.
func getPagination(w http.ResponseWriter, r *http.Request) (skip, limit int, ok bool) {
	skip, ok = queryInt(w, r, "skip", 0)
	if !ok {
		return 0, 0, false
	}
	limit, ok = queryInt(w, r, "limit", defaultPageLimit)
	if !ok {
		return 0, 0, false
	}

	if skip < 0 {
		skip = 0
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return skip, limit, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Invalid %s: must be an integer", name))
		return 0, false
	}
	return value, true
}
