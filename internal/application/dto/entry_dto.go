package dto

// CreateEntryRequest alta de entrada de mercancía.
type CreateEntryRequest struct {
	Article  string `json:"article"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// UpdateEntryRequest modificación de entrada.
type UpdateEntryRequest struct {
	Article  string `json:"article"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
}

// EntryResponse representación de una entrada en respuestas.
type EntryResponse struct {
	ID       string `json:"id"`
	Article  string `json:"article"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
}
