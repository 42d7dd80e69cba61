package dto

// TokenRequest formulario de POST /auth/token (flujo password de OAuth2).
type TokenRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// TokenResponse token emitido.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// IdentityResponse salida de GET /auth/users/me. Los satélites solo necesitan userRole.
type IdentityResponse struct {
	UserID   int64  `json:"userID"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	UserRole string `json:"userRole"`
}

// CreateAccountRequest campos de formulario para crear una cuenta de empleado.
// HireDate llega como texto YYYY-MM-DD; la foto viaja aparte como archivo.
type CreateAccountRequest struct {
	FullName    string `form:"fullName" validate:"required,max=100"`
	Username    string `form:"username"`
	Password    string `form:"password"`
	Email       string `form:"email" validate:"required,email"`
	UserRole    string `form:"userRole"`
	PhoneNumber string `form:"phoneNumber" validate:"omitempty,max=20"`
	HireDate    string `form:"hireDate"`
}

// UpdateAccountRequest actualización parcial; nil significa "no tocar".
type UpdateAccountRequest struct {
	FullName    *string `validate:"omitempty,max=100"`
	Password    *string
	Email       *string `validate:"omitempty,email"`
	PhoneNumber *string `validate:"omitempty,max=20"`
	HireDate    *Date
}

// AccountResponse salida de una cuenta (sin password).
type AccountResponse struct {
	UserID      int64   `json:"userID"`
	FullName    string  `json:"fullName"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	UserRole    string  `json:"userRole"`
	CreatedAt   string  `json:"createdAt"`
	PhoneNumber *string `json:"phoneNumber"`
	HireDate    *Date   `json:"hireDate"`
	UploadImage *string `json:"uploadImage"`
}
