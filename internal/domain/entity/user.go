package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// EmployeeRoles roles de empleado; todos los usuarios actuales tienen uno de ellos.
var EmployeeRoles = []string{RoleAdmin, RoleManager, RoleStaff}

// IsEmployeeRole indica si role es uno de los roles de empleado.
func IsEmployeeRole(role string) bool {
	for _, r := range EmployeeRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa una cuenta de empleado. Nunca se borra: IsDisabled=true la saca de listados
// y de los chequeos de unicidad, la fila queda para auditoría.
type User struct {
	ID           int64
	FullName     string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash
	Role         string // admin, manager, staff
	CreatedAt    time.Time
	PhoneNumber  *string
	HireDate     *time.Time
	UploadImage  *string // nombre del archivo dentro del directorio de uploads
	IsDisabled   bool
}
