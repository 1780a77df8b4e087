package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdmin      = "admin"
	RoleParamedico = "paramedico"
)

// User representa un usuario del sistema (administrador o paramédico).
type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	Role         string // ver constantes Role*
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
