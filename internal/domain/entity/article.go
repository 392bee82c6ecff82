package entity

// Article representa un artículo del inventario. El nombre no es único:
// el importador reutiliza la primera coincidencia por nombre.
type Article struct {
	ID          string
	Name        string
	Description string
}
