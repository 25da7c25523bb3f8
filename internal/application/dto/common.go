package dto

// ErrorResponse cuerpo de error HTTP uniforme.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DeleteResponse confirmación de borrado.
type DeleteResponse struct {
	Status string `json:"status"`
}

// Deleted construye la confirmación estándar {status: "deleted"}.
func Deleted() *DeleteResponse {
	return &DeleteResponse{Status: "deleted"}
}
