// Package handlers translates HTTP requests into store operations:
// decode, validate, call, map errors to statuses.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Sowmya0405/Super-mall-web-application/internal/httpx"
	"github.com/Sowmya0405/Super-mall-web-application/internal/store"
	"github.com/Sowmya0405/Super-mall-web-application/internal/validation"
)

// urlID parses the {id} route param. Non-numeric ids behave like
// unknown ids (404), matching the lookup-by-parsed-int contract.
func urlID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// queryID parses an optional integer query filter. Absent returns 0
// (no constraint); present but non-numeric returns -1, which matches
// no record.
func queryID(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return id
}

// writeStoreError maps store failures onto the API's error taxonomy.
// notFoundCode names the entity so clients get "shop_not_found" rather
// than a bare 404.
func writeStoreError(w http.ResponseWriter, err error, notFoundCode string) {
	var refErr *store.RefError
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, notFoundCode, nil)
	case errors.Is(err, store.ErrReferenced):
		httpx.JSONError(w, http.StatusBadRequest, "record_referenced_by_shops", nil)
	case errors.As(err, &refErr):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", validation.Violations{refErr.Field: "unknown_reference"})
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
