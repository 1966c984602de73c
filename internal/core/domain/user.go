package domain

import (
	"github.com/shopspring/decimal"
)

// Role is the approval-chain position of a user (perfil.tipo on the wire).
type Role string

const (
	RoleColaborador Role = "COLABORADOR"
	RoleGestor      Role = "GESTOR"
	RoleDiretor     Role = "DIRETOR"
)

// Departamento is read-only reference data owned by the backend.
type Departamento struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Perfil carries the role, department memberships and photo of a user.
type Perfil struct {
	Tipo          Role           `json:"tipo"`
	Departamentos []Departamento `json:"departamentos"`
	FotoPerfil    string         `json:"foto_perfil,omitempty"` // URL served by the backend
}

// User is the backend's user record as rendered by the UserSerializer.
// Saldo is computed server-side (deposits minus approved expenses); this
// application only displays it and re-fetches after mutations.
type User struct {
	ID          int64           `json:"id"`
	Username    string          `json:"username"` // doubles as the login e-mail
	Email       string          `json:"email,omitempty"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	IsSuperuser bool            `json:"is_superuser"`
	Perfil      *Perfil         `json:"perfil,omitempty"`
	Saldo       decimal.Decimal `json:"saldo"`
	ViagemAtual *ViagemAtual    `json:"viagem_atual,omitempty"` // only on users/me/
}

// Tipo returns the user's role, or the empty Role when no perfil is set.
func (u User) Tipo() Role {
	if u.Perfil == nil {
		return ""
	}
	return u.Perfil.Tipo
}

// NomeCompleto joins first and last name for display.
func (u User) NomeCompleto() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
