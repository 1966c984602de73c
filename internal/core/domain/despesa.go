package domain

import (
	"github.com/shopspring/decimal"
)

// DespesaStatus is the approval state of an expense. A despesa is created
// PENDENTE; editing a processed despesa resets it to PENDENTE (backend rule).
type DespesaStatus string

const (
	DespesaPendente  DespesaStatus = "PENDENTE"
	DespesaAprovada  DespesaStatus = "APROVADO"
	DespesaRejeitada DespesaStatus = "REJEITADO"
)

// Categoria classifies an expense.
type Categoria string

const (
	CategoriaAlimentacao Categoria = "ALIMENTACAO"
	CategoriaTransporte  Categoria = "TRANSPORTE"
	CategoriaHospedagem  Categoria = "HOSPEDAGEM"
	CategoriaOutros      Categoria = "OUTROS"
)

// Categorias lists every selectable category, in form display order.
var Categorias = []Categoria{
	CategoriaAlimentacao,
	CategoriaTransporte,
	CategoriaHospedagem,
	CategoriaOutros,
}

// Despesa is a single reimbursable cost item tied to a trip and an author.
type Despesa struct {
	ID              int64           `json:"id"`
	Viagem          int64           `json:"viagem"`
	Valor           decimal.Decimal `json:"valor"`
	DataDespesa     string          `json:"data_despesa"`
	Descricao       string          `json:"descricao"`
	Categoria       Categoria       `json:"categoria"`
	Comprovante     string          `json:"comprovante,omitempty"` // receipt URL
	Status          DespesaStatus   `json:"status"`
	UsuarioDetalhes *User           `json:"usuario_detalhes,omitempty"` // author
}
