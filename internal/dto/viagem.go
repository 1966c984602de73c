package dto

// SaveViagemRequest is the create/edit trip form. The same shape serves the
// POST and the PATCH; the backend recomputes status from the dates.
type SaveViagemRequest struct {
	Titulo        string  `form:"titulo" json:"titulo"`
	DataInicio    string  `form:"data_inicio" json:"data_inicio"`
	DataFim       string  `form:"data_fim" json:"data_fim"`
	Participantes []int64 `form:"participantes" json:"participantes"`
}
