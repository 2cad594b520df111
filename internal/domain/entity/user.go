package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin         = "admin"
	RolePlanificador  = "planificador"
	RoleConsulta      = "consulta"
)

// User representa un usuario del sistema de planificación.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, planificador, consulta
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
