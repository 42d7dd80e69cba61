package entity

import "time"

// Merchandise artículo de reventa; la cantidad siempre son piezas enteras.
type Merchandise struct {
	ID        int64
	Name      string
	Quantity  int
	DateAdded time.Time
	Status    string
}
