package domain

import (
	"github.com/shopspring/decimal"
)

// Adiantamento is a deposit credited to a participant's saldo for a trip.
// Append-only from this application's point of view: created, never edited
// or deleted here.
type Adiantamento struct {
	ID                  int64           `json:"id"`
	Usuario             int64           `json:"usuario"`
	Viagem              int64           `json:"viagem"`
	Valor               decimal.Decimal `json:"valor"`
	DataAdiantamento    string          `json:"data_adiantamento"`
	Observacoes         string          `json:"observacoes,omitempty"`
	ComprovanteDeposito string          `json:"comprovante_deposito,omitempty"`
	UsuarioDetalhes     *User           `json:"usuario_detalhes,omitempty"`
	ViagemTitulo        string          `json:"viagem_titulo,omitempty"`
}
