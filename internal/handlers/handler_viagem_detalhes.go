package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/hevile/prestacao-web/internal/core/domain"
	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/dto"
	"github.com/hevile/prestacao-web/internal/middleware"
)

// viagemDetalhesHandler drives one trip's drill-down screen: the pending
// expense queue and the processed history, plus the approve/reject actions.
type viagemDetalhesHandler struct {
	users    portssvc.UserReaderSvc
	viagens  portssvc.ViagemReaderSvc
	despesas portssvc.DespesaSvcFacade
}

func registerViagemDetalhesRoutes(rg *gin.RouterGroup, users portssvc.UserReaderSvc, viagens portssvc.ViagemReaderSvc, despesas portssvc.DespesaSvcFacade) {
	h := &viagemDetalhesHandler{users: users, viagens: viagens, despesas: despesas}

	rg.GET("/admin/viagens/:id", h.showDetalhes)
	rg.POST("/admin/viagens/:id/despesas/:despesaID/aprovar", h.aprovar)
	rg.POST("/admin/viagens/:id/despesas/:despesaID/rejeitar", h.rejeitar)
}

// loadDetalhes runs the page's read set in parallel: the viewer's profile,
// the trip with participant saldos, and the trip's expenses. Expenses are
// partitioned into the pending queue and the processed history; the approved
// total is summed with exact decimals.
func (h *viagemDetalhesHandler) loadDetalhes(ctx context.Context, viagemID int64) (dto.ViagemDetalhesPage, error) {
	var (
		me       *domain.User
		viagem   *domain.Viagem
		despesas []domain.Despesa
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		me, err = h.users.Me(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		viagem, err = h.viagens.GetViagem(gctx, viagemID)
		return err
	})
	g.Go(func() error {
		var err error
		despesas, err = h.despesas.ListDespesasDaViagem(gctx, viagemID)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.ViagemDetalhesPage{}, err
	}

	page := dto.ViagemDetalhesPage{Viagem: *viagem, TotalAprovado: decimal.Zero}
	for _, d := range despesas {
		if d.Status == domain.DespesaPendente {
			page.Pendentes = append(page.Pendentes, dto.DespesaRow{
				Despesa:  d,
				PodeAgir: domain.CanReview(*me, d),
			})
			continue
		}
		page.Historico = append(page.Historico, d)
		if d.Status == domain.DespesaAprovada {
			page.TotalAprovado = page.TotalAprovado.Add(d.Valor)
		}
	}
	return page, nil
}

func (h *viagemDetalhesHandler) showDetalhes(c *gin.Context) {
	viagemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/viagens")
		return
	}
	h.renderDetalhes(c, viagemID, http.StatusOK, "")
}

// renderDetalhes reloads the full read set and renders it with the given
// alert. Approve/reject outcomes land here so the lists always reflect the
// backend's state, never a local patch.
func (h *viagemDetalhesHandler) renderDetalhes(c *gin.Context, viagemID int64, status int, alert string) {
	page, err := h.loadDetalhes(c.Request.Context(), viagemID)
	if err != nil {
		if redirectIfUnauthenticated(c, err) {
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load viagem detalhes",
			slog.Int64("viagem_id", viagemID), slog.String("error", err.Error()))
		c.HTML(http.StatusBadGateway, "viagem_detalhes.html", dto.ViagemDetalhesPage{Alert: "Erro ao carregar viagem."})
		return
	}
	page.Alert = alert
	c.HTML(status, "viagem_detalhes.html", page)
}

func (h *viagemDetalhesHandler) aprovar(c *gin.Context) {
	viagemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/viagens")
		return
	}
	despesaID, err := strconv.ParseInt(c.Param("despesaID"), 10, 64)
	if err != nil {
		h.renderDetalhes(c, viagemID, http.StatusNotFound, "Despesa não encontrada.")
		return
	}

	if err := h.despesas.AprovarDespesa(c.Request.Context(), despesaID); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to approve despesa",
			slog.Int64("despesa_id", despesaID), slog.String("error", err.Error()))
		h.renderDetalhes(c, viagemID, http.StatusBadGateway, "Erro ao aprovar despesa. Tente novamente.")
		return
	}

	h.renderDetalhes(c, viagemID, http.StatusOK, "")
}

func (h *viagemDetalhesHandler) rejeitar(c *gin.Context) {
	viagemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/viagens")
		return
	}
	despesaID, err := strconv.ParseInt(c.Param("despesaID"), 10, 64)
	if err != nil {
		h.renderDetalhes(c, viagemID, http.StatusNotFound, "Despesa não encontrada.")
		return
	}

	// Rejection always carries a motive; the check runs before the request.
	observacao := c.PostForm("observacao_rejeicao")
	if observacao == "" {
		h.renderDetalhes(c, viagemID, http.StatusUnprocessableEntity, "A observação é obrigatória para rejeitar.")
		return
	}

	if err := h.despesas.RejeitarDespesa(c.Request.Context(), despesaID, observacao); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to reject despesa",
			slog.Int64("despesa_id", despesaID), slog.String("error", err.Error()))
		h.renderDetalhes(c, viagemID, http.StatusBadGateway, "Erro ao rejeitar despesa. Tente novamente.")
		return
	}

	h.renderDetalhes(c, viagemID, http.StatusOK, "")
}
