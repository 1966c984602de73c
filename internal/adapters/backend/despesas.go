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

var _ portssvc.DespesaSvcFacade = (*Client)(nil)

// ListDespesas retrieves the caller's own expenses.
func (c *Client) ListDespesas(ctx context.Context) ([]domain.Despesa, error) {
	var despesas []domain.Despesa
	if err := c.doJSON(ctx, http.MethodGet, "/despesas/", nil, &despesas); err != nil {
		return nil, fmt.Errorf("failed to list despesas: %w", err)
	}
	return despesas, nil
}

// ListDespesasDaViagem retrieves the expenses charged to one trip.
func (c *Client) ListDespesasDaViagem(ctx context.Context, viagemID int64) ([]domain.Despesa, error) {
	var despesas []domain.Despesa
	path := fmt.Sprintf("/despesas/?viagem=%d", viagemID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &despesas); err != nil {
		return nil, fmt.Errorf("failed to list despesas of viagem %d: %w", viagemID, err)
	}
	return despesas, nil
}

func writeDespesaFields(mw *multipart.Writer, descricao, valor, data string, categoria domain.Categoria) error {
	if err := writeField(mw, "descricao", descricao); err != nil {
		return err
	}
	if err := writeField(mw, "valor", valor); err != nil {
		return err
	}
	if err := writeField(mw, "data_despesa", data); err != nil {
		return err
	}
	return writeField(mw, "categoria", string(categoria))
}

// CreateDespesa submits a new expense against its trip. The backend creates
// it PENDENTE and requires the receipt.
func (c *Client) CreateDespesa(ctx context.Context, req dto.CreateDespesaRequest) (*domain.Despesa, error) {
	var despesa domain.Despesa
	err := c.doMultipart(ctx, http.MethodPost, "/despesas/", func(mw *multipart.Writer) error {
		if err := mw.WriteField("viagem", strconv.FormatInt(req.Viagem, 10)); err != nil {
			return err
		}
		if err := writeDespesaFields(mw, req.Descricao, req.Valor, req.DataDespesa, req.Categoria); err != nil {
			return err
		}
		return writeFile(mw, "comprovante", req.Comprovante)
	}, &despesa)
	if err != nil {
		return nil, fmt.Errorf("failed to create despesa: %w", err)
	}
	return &despesa, nil
}

// UpdateDespesa patches an expense; the backend resets it to PENDENTE.
func (c *Client) UpdateDespesa(ctx context.Context, despesaID int64, req dto.UpdateDespesaRequest) (*domain.Despesa, error) {
	var despesa domain.Despesa
	path := fmt.Sprintf("/despesas/%d/", despesaID)
	err := c.doMultipart(ctx, http.MethodPatch, path, func(mw *multipart.Writer) error {
		if err := writeDespesaFields(mw, req.Descricao, req.Valor, req.DataDespesa, req.Categoria); err != nil {
			return err
		}
		return writeFile(mw, "comprovante", req.NovoComprovante)
	}, &despesa)
	if err != nil {
		return nil, fmt.Errorf("failed to update despesa %d: %w", despesaID, err)
	}
	return &despesa, nil
}

// AprovarDespesa approves a pending expense via its dedicated endpoint.
func (c *Client) AprovarDespesa(ctx context.Context, despesaID int64) error {
	path := fmt.Sprintf("/despesas/%d/aprovar/", despesaID)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to approve despesa %d: %w", despesaID, err)
	}
	return nil
}

// RejeitarDespesa rejects a pending expense with the mandatory reason.
func (c *Client) RejeitarDespesa(ctx context.Context, despesaID int64, observacao string) error {
	path := fmt.Sprintf("/despesas/%d/rejeitar/", despesaID)
	payload := map[string]string{"observacao_rejeicao": observacao}
	if err := c.doJSON(ctx, http.MethodPost, path, payload, nil); err != nil {
		return fmt.Errorf("failed to reject despesa %d: %w", despesaID, err)
	}
	return nil
}
