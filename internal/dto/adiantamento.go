package dto

import "mime/multipart"

// CreateAdiantamentoRequest is the deposit form: a credit for one
// participant of one trip. Valor must be strictly positive; the check runs
// locally before any request is sent.
type CreateAdiantamentoRequest struct {
	Usuario             int64                 `form:"usuario"`
	Viagem              int64                 `form:"viagem"`
	Valor               string                `form:"valor"`
	Observacoes         string                `form:"observacoes"`
	ComprovanteDeposito *multipart.FileHeader `form:"-"`
}
