package dto

import "github.com/shopspring/decimal"

// ProductRequest campos de formulario para crear o actualizar un producto.
// La imagen viaja aparte como archivo multipart.
type ProductRequest struct {
	ProductName        string          `form:"ProductName" validate:"required,max=100"`
	ProductTypeID      int64           `form:"ProductTypeID" validate:"required,gt=0"`
	ProductCategory    string          `form:"ProductCategory" validate:"required,max=100"`
	ProductDescription string          `form:"ProductDescription" validate:"max=1000"`
	ProductPrice       decimal.Decimal `form:"-"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID          int64           `json:"ProductID"`
	ProductName        string          `json:"ProductName"`
	ProductTypeID      int64           `json:"ProductTypeID"`
	ProductCategory    string          `json:"ProductCategory"`
	ProductDescription string          `json:"ProductDescription"`
	ProductPrice       decimal.Decimal `json:"ProductPrice"`
	ProductImage       string          `json:"ProductImage"`
}

// ProductTypeRequest entrada para crear o renombrar un tipo de producto.
type ProductTypeRequest struct {
	ProductTypeName string `json:"productTypeName" validate:"required,max=100"`
}

// ProductTypeResponse salida de un tipo de producto.
type ProductTypeResponse struct {
	ProductTypeID   int64  `json:"productTypeID"`
	ProductTypeName string `json:"productTypeName"`
}
