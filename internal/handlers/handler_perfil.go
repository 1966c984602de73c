package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/hevile/prestacao-web/internal/apperrors"
	"github.com/hevile/prestacao-web/internal/core/domain"
	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/dto"
	"github.com/hevile/prestacao-web/internal/middleware"
	"github.com/hevile/prestacao-web/internal/session"
)

// bannerMap is the fixed trip status → banner mapping. Unknown statuses
// fall back to the FINALIZADA entry.
var bannerMap = map[domain.ViagemStatus]dto.ViagemBanner{
	domain.ViagemAtiva:      {Label: "EM VIAGEM", Color: "success"},
	domain.ViagemAguardando: {Label: "AGUARDANDO VIAGEM", Color: "warning"},
	domain.ViagemFinalizada: {Label: "VIAGEM FINALIZADA", Color: "error"},
}

// perfilHandler drives the profile/expenses screen.
type perfilHandler struct {
	users    portssvc.UserReaderSvc
	despesas portssvc.DespesaSvcFacade
}

func newPerfilHandler(users portssvc.UserReaderSvc, despesas portssvc.DespesaSvcFacade) *perfilHandler {
	return &perfilHandler{users: users, despesas: despesas}
}

// registerPerfilRoutes registers the expenses landing page and its forms.
func registerPerfilRoutes(rg *gin.RouterGroup, users portssvc.UserSvcFacade, despesas portssvc.DespesaSvcFacade) {
	h := newPerfilHandler(users, despesas)

	rg.GET("/despesas", h.showPerfil)
	rg.POST("/despesas", h.createDespesa)
	rg.POST("/despesas/:id/editar", h.updateDespesa)
}

// loadPerfil runs the page's read set: the profile always, the caller's own
// expenses unless the session says DIRETOR. The two reads are independent
// and awaited jointly.
func (h *perfilHandler) loadPerfil(ctx context.Context) (dto.PerfilPage, error) {
	s, _ := session.FromContext(ctx)

	var page dto.PerfilPage
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		me, err := h.users.Me(gctx)
		if err != nil {
			return err
		}
		page.User = *me
		page.ViagemAtual = me.ViagemAtual
		return nil
	})

	if s.Role != domain.RoleDiretor {
		g.Go(func() error {
			despesas, err := h.despesas.ListDespesas(gctx)
			if err != nil {
				return err
			}
			page.Despesas = despesas
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return dto.PerfilPage{}, err
	}

	page.IsDiretor = page.User.Tipo() == domain.RoleDiretor
	if page.ViagemAtual != nil {
		banner, ok := bannerMap[page.ViagemAtual.Status]
		if !ok {
			banner = bannerMap[domain.ViagemFinalizada]
		}
		banner.Titulo = page.ViagemAtual.Titulo
		page.Banner = &banner
		page.PodeLancar = page.ViagemAtual.Status == domain.ViagemAtiva
	}
	return page, nil
}

func (h *perfilHandler) showPerfil(c *gin.Context) {
	page, err := h.loadPerfil(c.Request.Context())
	if err != nil {
		if redirectIfUnauthenticated(c, err) {
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load perfil", slog.String("error", err.Error()))
		c.HTML(http.StatusBadGateway, "perfil.html", dto.PerfilPage{FormError: "Erro ao carregar perfil."})
		return
	}
	c.HTML(http.StatusOK, "perfil.html", page)
}

// renderPerfil reloads the page's read set after a mutation attempt and
// renders it with the given outcome messages. Local state is never patched;
// the backend is re-read instead.
func (h *perfilHandler) renderPerfil(c *gin.Context, status int, formError, success string) {
	page, err := h.loadPerfil(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to reload perfil", slog.String("error", err.Error()))
		page = dto.PerfilPage{}
	}
	page.FormError = formError
	page.Success = success
	c.HTML(status, "perfil.html", page)
}

// createDespesa validates the new-expense form and submits it against the
// user's active trip. The active-trip and required-field checks run before
// any create request is issued.
func (h *perfilHandler) createDespesa(c *gin.Context) {
	me, err := h.users.Me(c.Request.Context())
	if err != nil {
		h.renderPerfil(c, http.StatusBadGateway, "Erro ao lançar despesa.", "")
		return
	}

	if me.ViagemAtual == nil || me.ViagemAtual.Status != domain.ViagemAtiva {
		h.renderPerfil(c, http.StatusUnprocessableEntity,
			"Erro: Nenhuma viagem ativa selecionada para lançar a despesa.", "")
		return
	}

	var req dto.CreateDespesaRequest
	_ = c.ShouldBind(&req)
	req.Viagem = me.ViagemAtual.ID
	req.Comprovante, _ = c.FormFile("comprovante")

	if req.Descricao == "" || req.Valor == "" || req.DataDespesa == "" || req.Categoria == "" || req.Comprovante == nil {
		h.renderPerfil(c, http.StatusUnprocessableEntity,
			"Erro: Todos os campos, incluindo o comprovante, são obrigatórios.", "")
		return
	}

	if _, err := h.despesas.CreateDespesa(c.Request.Context(), req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to create despesa", slog.String("error", err.Error()))
		h.renderPerfil(c, http.StatusBadGateway, despesaCreateErrorMessage(err), "")
		return
	}

	h.renderPerfil(c, http.StatusOK, "", "Despesa lançada com sucesso!")
}

// despesaCreateErrorMessage surfaces the backend's receipt complaint
// verbatim-ish; everything else collapses to the generic message.
func despesaCreateErrorMessage(err error) string {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		if _, ok := apiErr.Field("comprovante"); ok {
			return "Erro do servidor: O comprovante é obrigatório."
		}
	}
	return "Erro ao lançar despesa."
}

// updateDespesa patches one of the caller's own expenses. The backend
// resets its status to PENDENTE; the success notice says so.
func (h *perfilHandler) updateDespesa(c *gin.Context) {
	despesaID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.renderPerfil(c, http.StatusNotFound, "Despesa não encontrada.", "")
		return
	}

	var req dto.UpdateDespesaRequest
	_ = c.ShouldBind(&req)
	req.NovoComprovante, _ = c.FormFile("comprovante")

	if _, err := h.despesas.UpdateDespesa(c.Request.Context(), despesaID, req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update despesa", slog.String("error", err.Error()))
		h.renderPerfil(c, http.StatusBadGateway, "Erro ao atualizar despesa.", "")
		return
	}

	h.renderPerfil(c, http.StatusOK, "", "Despesa atualizada! Status voltou para PENDENTE.")
}
