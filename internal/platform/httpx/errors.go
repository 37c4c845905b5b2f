package httpx

import (
	"log/slog"
	"net/http"
)

// Internal reports an unexpected failure. Production responses carry the
// generic envelope only; otherwise the underlying message is included to aid
// debugging.
func Internal(w http.ResponseWriter, logger *slog.Logger, err error, production bool) {
	if logger != nil {
		logger.Error("request failed", slog.Any("error", err))
	}
	if production {
		ErrorMessage(w, http.StatusInternalServerError, "server error")
		return
	}
	ErrorMessage(w, http.StatusInternalServerError, err.Error())
}
