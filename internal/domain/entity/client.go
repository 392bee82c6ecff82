package entity

// Client representa un cliente que solicita salidas de almacén.
type Client struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string
}
