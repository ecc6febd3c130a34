package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Failure is the error wire shape. The console's client extracts "msg", so
// every failure path must populate it.
type Failure struct {
	Msg string `json:"msg"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Fail(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Failure{Msg: msg})
}
