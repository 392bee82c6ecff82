package entity

import "time"

// Exit representa una salida de mercancía solicitada por un cliente en una fecha.
// IsAuthorized arranca en false y es monótono: el flujo de autorización nunca lo revierte.
type Exit struct {
	ID           string
	ArticleID    string
	ClientID     string
	Quantity     int
	Date         time.Time
	IsAuthorized bool
}
