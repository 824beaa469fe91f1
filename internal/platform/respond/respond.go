// Package respond reúne los helpers de respuesta HTTP que antes estaban
// duplicados en cada handler (pets/events). Ya se repetían en todos los módulos.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// ServerError es el mensaje genérico para fallas de storage.
const ServerError = "Server Error"

// MessageBody es el cuerpo de error/confirmación: {"msg": "..."}.
type MessageBody struct {
	Msg string `json:"msg"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message escribe {"msg": "..."}, el formato que ya consume el cliente móvil.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageBody{Msg: msg})
}

// DecodeError responde a un body que no se pudo leer: 413 si superó el límite
// del router, 400 "invalid json" en cualquier otro caso.
func DecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		Message(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	Message(w, http.StatusBadRequest, "invalid json")
}
