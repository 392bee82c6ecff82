package entity

import "time"

// Entry representa una entrada de mercancía en el almacén (registro de solo escritura).
type Entry struct {
	ID        string
	ArticleID string
	Quantity  int
	Date      time.Time
}
