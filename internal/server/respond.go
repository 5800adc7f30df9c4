package server

import (
    "encoding/json"
    "errors"
    "net/http"

    "github.com/rs/zerolog/log"

    "github.com/local/genrelay/internal/metrics"
    "github.com/local/genrelay/internal/upload"
)

type outputResp struct {
    Output string `json:"output"`
}

type errorResp struct {
    Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(v)
}

// writeError maps error kinds to HTTP status: missing input is a client
// fault (400), everything downstream (I/O, model) is a 500. The underlying
// message goes back to the caller in both cases.
func writeError(w http.ResponseWriter, endpoint string, err error) {
    var ve *ValidationError
    if errors.As(err, &ve) || errors.Is(err, upload.ErrNoFile) {
        metrics.IncRequest(endpoint, "validation_error")
        writeJSON(w, http.StatusBadRequest, errorResp{Error: err.Error()})
        return
    }
    metrics.IncRequest(endpoint, "error")
    log.Error().Err(err).Str("endpoint", endpoint).Msg("request failed")
    writeJSON(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
}
