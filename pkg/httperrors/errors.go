package httperrors

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/yourname/asset_lite/internal/models"
)

// MsgInternal возвращается клиенту вместо текста внутренней ошибки.
const MsgInternal = "internal server error"

// Body — JSON-тело ответа с ошибкой.
type Body struct {
	Error string `json:"error"`
}

// Write переводит ошибку в HTTP-статус и пишет {"error": "..."}.
func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrInvalidPath):
		WriteStatus(w, http.StatusNotFound, err.Error())
	default:
		// Внутренние ошибки содержат пути на диске, клиенту уходит только общий текст.
		log.Printf("internal error: %v", err)
		WriteStatus(w, http.StatusInternalServerError, MsgInternal)
	}
}

// WriteStatus пишет JSON-ошибку с явно заданным статусом.
func WriteStatus(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Del("Content-Length")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Body{Error: msg})
}
