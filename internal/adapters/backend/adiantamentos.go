package backend

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/hevile/prestacao-web/internal/core/domain"
	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/dto"
)

var _ portssvc.AdiantamentoSvcFacade = (*Client)(nil)

// ListAdiantamentos retrieves the deposit history.
func (c *Client) ListAdiantamentos(ctx context.Context) ([]domain.Adiantamento, error) {
	var adiantamentos []domain.Adiantamento
	if err := c.doJSON(ctx, http.MethodGet, "/adiantamentos/", nil, &adiantamentos); err != nil {
		return nil, fmt.Errorf("failed to list adiantamentos: %w", err)
	}
	return adiantamentos, nil
}

// CreateAdiantamento posts a deposit for one participant of one trip. The
// backend credits the participant's saldo.
func (c *Client) CreateAdiantamento(ctx context.Context, req dto.CreateAdiantamentoRequest) (*domain.Adiantamento, error) {
	var adiantamento domain.Adiantamento
	err := c.doMultipart(ctx, http.MethodPost, "/adiantamentos/", func(mw *multipart.Writer) error {
		if err := mw.WriteField("usuario", strconv.FormatInt(req.Usuario, 10)); err != nil {
			return err
		}
		if err := mw.WriteField("viagem", strconv.FormatInt(req.Viagem, 10)); err != nil {
			return err
		}
		if err := writeField(mw, "valor", req.Valor); err != nil {
			return err
		}
		if err := writeField(mw, "observacoes", req.Observacoes); err != nil {
			return err
		}
		return writeFile(mw, "comprovante_deposito", req.ComprovanteDeposito)
	}, &adiantamento)
	if err != nil {
		return nil, fmt.Errorf("failed to create adiantamento: %w", err)
	}
	return &adiantamento, nil
}
