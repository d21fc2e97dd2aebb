package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta genérica de operaciones sin cuerpo propio
// (por ejemplo, eliminaciones a nivel hoja).
type MessageResponse struct {
	Message string `json:"message"`
}
