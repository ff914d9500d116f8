package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"dynamic/catalogs/internal/domain"

	log "github.com/sirupsen/logrus"
)

type httpError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	e := httpError{}
	e.Error.Code = code
	e.Error.Message = msg
	writeJSON(w, status, e)
}

// respondError maps an error kind onto its status. Caller kinds are checked
// first: an undecodable token is a bad request even though it is also a parse error.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("❌ %s %s: %v", r.Method, r.URL.Path, err)
	} else {
		log.Debugf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	writeError(w, status, code, err.Error())
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrFormat):
		return http.StatusBadRequest, "INVALID_PATH"
	case errors.Is(err, domain.ErrUnsupportedSource):
		return http.StatusBadRequest, "UNSUPPORTED_SOURCE"
	case errors.Is(err, domain.ErrEncoding), errors.Is(err, domain.ErrDecode):
		return http.StatusBadRequest, "INVALID_TOKEN"
	case errors.Is(err, domain.ErrMissingListID):
		return http.StatusBadRequest, "MISSING_LIST_ID"
	case errors.Is(err, domain.ErrInvalidListURL):
		return http.StatusBadRequest, "INVALID_LIST_URL"
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, "UPSTREAM_ERROR"
	case errors.Is(err, domain.ErrParse):
		return http.StatusBadGateway, "UPSTREAM_PAYLOAD"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
