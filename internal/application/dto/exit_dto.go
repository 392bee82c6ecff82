package dto

// CreateExitRequest alta de salida individual.
type CreateExitRequest struct {
	Article  string `json:"article"`
	Client   string `json:"client"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// UpdateExitRequest modificación de salida. IsAuthorized solo puede subir a true
// por esta vía; la autorización nunca se revierte.
type UpdateExitRequest struct {
	Article      string `json:"article"`
	Client       string `json:"client"`
	Quantity     int    `json:"quantity"`
	Date         string `json:"date"`
	IsAuthorized bool   `json:"is_authorized"`
}

// ExitResponse representación de una salida en respuestas.
type ExitResponse struct {
	ID           string `json:"id"`
	Article      string `json:"article"`
	Client       string `json:"client"`
	Quantity     int    `json:"quantity"`
	Date         string `json:"date"`
	IsAuthorized bool   `json:"is_authorized"`
}

// BatchExitLine línea de un pedido múltiple: artículo y cantidad.
type BatchExitLine struct {
	Article  string `json:"article"`
	Quantity int    `json:"quantity"`
}

// CreateBatchExitRequest pedido múltiple de un cliente para una fecha.
type CreateBatchExitRequest struct {
	Client   string          `json:"client"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Articles []BatchExitLine `json:"articles"`
}

// BatchExitLineResponse línea creada, identificada por nombre de artículo.
type BatchExitLineResponse struct {
	Article  string `json:"article"`
	Quantity int    `json:"quantity"`
}

// BatchExitResponse resultado del pedido múltiple.
type BatchExitResponse struct {
	Status string                  `json:"status"`
	Exits  []BatchExitLineResponse `json:"exits"`
}

// AuthorizeExitResponse resultado de autorizar un pedido. Authorized es el número
// de salidas del grupo (cliente, fecha) que quedaron autorizadas.
type AuthorizeExitResponse struct {
	Status     string `json:"status"`
	Authorized int    `json:"authorized"`
}
