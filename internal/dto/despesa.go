package dto

import (
	"mime/multipart"

	"github.com/hevile/prestacao-web/internal/core/domain"
)

// CreateDespesaRequest is the new-expense form. Valor travels as the raw
// form string; the backend owns decimal validation. Comprovante is required
// and enforced locally before any request is sent.
type CreateDespesaRequest struct {
	Viagem      int64                 `form:"-"`
	Descricao   string                `form:"descricao"`
	Valor       string                `form:"valor"`
	DataDespesa string                `form:"data_despesa"`
	Categoria   domain.Categoria      `form:"categoria" binding:"omitempty,categoria"`
	Comprovante *multipart.FileHeader `form:"-"`
}

// UpdateDespesaRequest is the edit-expense form. A replacement receipt is
// optional; every edit resets the despesa to PENDENTE on the backend.
type UpdateDespesaRequest struct {
	Descricao       string                `form:"descricao"`
	Valor           string                `form:"valor"`
	DataDespesa     string                `form:"data_despesa"`
	Categoria       domain.Categoria      `form:"categoria" binding:"omitempty,categoria"`
	NovoComprovante *multipart.FileHeader `form:"-"`
}
