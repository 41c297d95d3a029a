package api

import (
	"errors"
	"net/http"

	"logotint/codec"
	"logotint/engine"
	"logotint/hexcolor"
	"logotint/preset"
	"logotint/storage"
)

var errRateLimited = errors.New("too many requests")

// statusFor maps a domain error to an HTTP status.
func statusFor(err error) int {
	var tooBig *http.MaxBytesError
	switch {
	case errors.Is(err, codec.ErrFileTooLarge), errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, codec.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, preset.ErrUnknownScheme), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, hexcolor.ErrInvalidColor),
		errors.Is(err, codec.ErrMalformedEnvelope),
		errors.Is(err, codec.ErrUnsupportedFormat),
		errors.Is(err, engine.ErrMissingTemplate),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

// writeError writes err as a JSON body. Internal errors are logged and
// reported without detail.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("route", r.URL.Path).Msg("request failed")
		msg = "internal error"
	}
	metricErrors.WithLabelValues(routeLabel(r), http.StatusText(status)).Inc()
	writeJSON(w, status, errorResponse{Error: msg})
}
