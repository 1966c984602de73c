package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/dto"
	"github.com/hevile/prestacao-web/internal/middleware"
	"github.com/hevile/prestacao-web/internal/utils"
)

// depositoHandler drives the deposits/balances screen.
type depositoHandler struct {
	viagens       portssvc.ViagemSvcFacade
	adiantamentos portssvc.AdiantamentoSvcFacade
}

func registerDepositoRoutes(rg *gin.RouterGroup, viagens portssvc.ViagemSvcFacade, adiantamentos portssvc.AdiantamentoSvcFacade) {
	h := &depositoHandler{viagens: viagens, adiantamentos: adiantamentos}

	rg.GET("/admin/depositos", h.showDepositos)
	rg.POST("/admin/depositos", h.createDeposito)
}

// loadDepositos fetches the unfiltered trip list and the deposit history in
// parallel. Participants of the selected trip come from the loaded list; no
// extra request is issued for them.
func (h *depositoHandler) loadDepositos(ctx context.Context, viagemSelecionada int64) (dto.DepositosPage, error) {
	page := dto.DepositosPage{ViagemSelecionada: viagemSelecionada}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		viagens, err := h.viagens.ListViagens(gctx, "")
		if err != nil {
			return err
		}
		page.Viagens = viagens
		return nil
	})
	g.Go(func() error {
		historico, err := h.adiantamentos.ListAdiantamentos(gctx)
		if err != nil {
			return err
		}
		page.Historico = historico
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.DepositosPage{}, err
	}

	if viagemSelecionada != 0 {
		for _, v := range page.Viagens {
			if v.ID == viagemSelecionada {
				page.Participantes = v.ParticipantesDetalhes
				break
			}
		}
	}
	return page, nil
}

func (h *depositoHandler) showDepositos(c *gin.Context) {
	viagemID, _ := strconv.ParseInt(c.Query("viagem"), 10, 64)
	page, err := h.loadDepositos(c.Request.Context(), viagemID)
	if err != nil {
		if redirectIfUnauthenticated(c, err) {
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load depositos", slog.String("error", err.Error()))
		c.HTML(http.StatusBadGateway, "depositos.html", dto.DepositosPage{FormError: "Erro ao carregar depósitos."})
		return
	}
	c.HTML(http.StatusOK, "depositos.html", page)
}

func (h *depositoHandler) renderDepositos(c *gin.Context, viagemID int64, status int, formError, success string) {
	page, err := h.loadDepositos(c.Request.Context(), viagemID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to reload depositos", slog.String("error", err.Error()))
		page = dto.DepositosPage{}
	}
	page.FormError = formError
	page.Success = success
	c.HTML(status, "depositos.html", page)
}

// createDeposito validates the deposit form locally, submits it, then
// re-reads the trip (for fresh saldos) and the deposit history before
// rendering. The balance shown is always the backend's, never a local sum.
func (h *depositoHandler) createDeposito(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAdiantamentoRequest
	_ = c.ShouldBind(&req)
	req.ComprovanteDeposito, _ = c.FormFile("comprovante_deposito")

	valor, err := decimal.NewFromString(req.Valor)
	if req.Viagem == 0 || req.Usuario == 0 || err != nil || !valor.IsPositive() {
		h.renderDepositos(c, req.Viagem, http.StatusUnprocessableEntity, "Viagem, usuário e valor são obrigatórios.", "")
		return
	}

	if req.Observacoes == "" {
		req.Observacoes = fmt.Sprintf("Depósito para viagem %d", req.Viagem)
	}

	if _, err := h.adiantamentos.CreateAdiantamento(c.Request.Context(), req); err != nil {
		logger.Error("Failed to create adiantamento", slog.String("error", err.Error()))
		h.renderDepositos(c, req.Viagem, http.StatusBadGateway, "Falha ao realizar depósito.", "")
		return
	}

	// Re-fetch the trip and the history so saldos and the list reflect the
	// new deposit.
	viagem, err := h.viagens.GetViagem(c.Request.Context(), req.Viagem)
	if err != nil {
		logger.Error("Failed to reload viagem after deposit", slog.String("error", err.Error()))
		h.renderDepositos(c, req.Viagem, http.StatusBadGateway, "Erro ao carregar depósitos.", "")
		return
	}
	historico, err := h.adiantamentos.ListAdiantamentos(c.Request.Context())
	if err != nil {
		logger.Error("Failed to reload adiantamentos after deposit", slog.String("error", err.Error()))
		h.renderDepositos(c, req.Viagem, http.StatusBadGateway, "Erro ao carregar depósitos.", "")
		return
	}

	beneficiario := ""
	for _, p := range viagem.ParticipantesDetalhes {
		if p.ID == req.Usuario {
			beneficiario = p.FirstName
			break
		}
	}

	viagens, err := h.viagens.ListViagens(c.Request.Context(), "")
	if err != nil {
		logger.Error("Failed to reload viagens after deposit", slog.String("error", err.Error()))
		viagens = nil
	}

	page := dto.DepositosPage{
		Viagens:           viagens,
		ViagemSelecionada: req.Viagem,
		Participantes:     viagem.ParticipantesDetalhes,
		Historico:         historico,
		Success:           fmt.Sprintf("Depósito de %s realizado para %s!", utils.FormatBRL(valor), beneficiario),
	}
	c.HTML(http.StatusOK, "depositos.html", page)
}
