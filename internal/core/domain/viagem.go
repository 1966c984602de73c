package domain

// ViagemStatus is computed by the backend from the trip's date range.
// The client never mutates it directly.
type ViagemStatus string

const (
	ViagemAtiva      ViagemStatus = "ATIVA"
	ViagemAguardando ViagemStatus = "AGUARDANDO"
	ViagemFinalizada ViagemStatus = "FINALIZADA"
)

// Viagem is a dated period with a participant set against which expenses
// are charged. Dates are in the backend's AAAA-MM-DD form.
type Viagem struct {
	ID                    int64        `json:"id"`
	Titulo                string       `json:"titulo"`
	DataInicio            string       `json:"data_inicio"`
	DataFim               string       `json:"data_fim"`
	Status                ViagemStatus `json:"status"`
	Participantes         []int64      `json:"participantes,omitempty"`
	ParticipantesDetalhes []User       `json:"participantes_detalhes,omitempty"` // with current saldos
}

// ViagemAtual is the slim current-trip record embedded in users/me/.
type ViagemAtual struct {
	ID     int64        `json:"id"`
	Titulo string       `json:"titulo"`
	Status ViagemStatus `json:"status"`
}
