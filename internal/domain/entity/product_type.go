package entity

// ProductType catálogo de tipos de producto (nombre único sin distinguir mayúsculas).
type ProductType struct {
	ID   int64
	Name string
}
