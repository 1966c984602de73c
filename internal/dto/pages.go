package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hevile/prestacao-web/internal/core/domain"
)

// The Page structs below are the template view models, assembled by the
// page handlers from backend reads plus view-local partitions. They carry
// no behavior; derived fields are computed once at load time so templates
// stay free of logic.

// LoginPage backs the login screen.
type LoginPage struct {
	Error string
}

// ViagemBanner is the fixed status→label/color mapping rendered above the
// expense list.
type ViagemBanner struct {
	Titulo string
	Label  string
	Color  string
}

// PerfilPage backs the profile/expenses screen.
type PerfilPage struct {
	User        domain.User
	IsDiretor   bool
	ViagemAtual *domain.ViagemAtual
	Banner      *ViagemBanner // nil when the user has no current trip
	Despesas    []domain.Despesa
	PodeLancar  bool // new-expense form enabled only on an ATIVA trip
	FormError   string
	Success     string
}

// ViagensPage backs the trip list screen.
type ViagensPage struct {
	IsAdmin      bool
	MostrarTodos bool
	Viagens      []domain.Viagem
	Usuarios     []domain.User // participant pickers, admin only
	FormError    string
	Success      string
}

// DespesaRow pairs an expense with the viewer's permission to act on it.
type DespesaRow struct {
	Despesa  domain.Despesa
	PodeAgir bool
}

// ViagemDetalhesPage backs the trip detail screen.
type ViagemDetalhesPage struct {
	Viagem        domain.Viagem
	Pendentes     []DespesaRow
	Historico     []domain.Despesa
	TotalAprovado decimal.Decimal
	Alert         string
}

// DepositosPage backs the deposits/balances screen.
type DepositosPage struct {
	Viagens           []domain.Viagem
	ViagemSelecionada int64
	Participantes     []domain.User
	Historico         []domain.Adiantamento
	FormError         string
	Success           string
}

// AdminPage backs the user-management screen.
type AdminPage struct {
	Departamentos []domain.Departamento
	Usuarios      []domain.User // non-superusers only
	FormError     string
	Success       string
}
