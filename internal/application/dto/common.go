package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos viajan como número JSON (compatibilidad con la API legada),
	// no como string entre comillas.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse respuesta de los DELETE, forma legada {"status":"deleted"}.
type StatusResponse struct {
	Status string `json:"status"`
}
