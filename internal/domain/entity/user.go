package entity

import "time"

// User representa un usuario de la API (acceso con email y contraseña).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
