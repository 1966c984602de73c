package handlers_test

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/hevile/prestacao-web/internal/core/domain"
	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/dto"
	"github.com/hevile/prestacao-web/internal/handlers"
	"github.com/hevile/prestacao-web/internal/platform/config"
	"github.com/hevile/prestacao-web/internal/session"
)

const testSessionSecret = "test-secret-key-that-is-long-enough"

// testTemplates stand in for the real screens: each renders just the
// outcome markers the assertions look for.
var testTemplates = template.Must(template.New("").Parse(`
{{define "login.html"}}login|{{.Error}}{{end}}
{{define "perfil.html"}}perfil|{{.FormError}}|{{.Success}}|lancar={{.PodeLancar}}{{end}}
{{define "viagens.html"}}viagens|{{.FormError}}|{{.Success}}|n={{len .Viagens}}{{end}}
{{define "viagem_detalhes.html"}}detalhes|{{.Alert}}|pendentes={{len .Pendentes}}|total={{.TotalAprovado}}|{{range .Pendentes}}agir={{.PodeAgir}};{{end}}{{end}}
{{define "depositos.html"}}depositos|{{.FormError}}|{{.Success}}{{end}}
{{define "admin.html"}}admin|{{.FormError}}|{{.Success}}|usuarios={{len .Usuarios}}{{end}}
`))

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) ObtainToken(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Me(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock DepartamentoService ---
type MockDepartamentoService struct {
	mock.Mock
}

func (m *MockDepartamentoService) ListDepartamentos(ctx context.Context) ([]domain.Departamento, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Departamento), args.Error(1)
}

var _ portssvc.DepartamentoSvc = (*MockDepartamentoService)(nil)

// --- Mock ViagemService ---
type MockViagemService struct {
	mock.Mock
}

func (m *MockViagemService) ListViagens(ctx context.Context, filtro string) ([]domain.Viagem, error) {
	args := m.Called(ctx, filtro)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Viagem), args.Error(1)
}
func (m *MockViagemService) GetViagem(ctx context.Context, viagemID int64) (*domain.Viagem, error) {
	args := m.Called(ctx, viagemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Viagem), args.Error(1)
}
func (m *MockViagemService) CreateViagem(ctx context.Context, req dto.SaveViagemRequest) (*domain.Viagem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Viagem), args.Error(1)
}
func (m *MockViagemService) UpdateViagem(ctx context.Context, viagemID int64, req dto.SaveViagemRequest) (*domain.Viagem, error) {
	args := m.Called(ctx, viagemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Viagem), args.Error(1)
}

var _ portssvc.ViagemSvcFacade = (*MockViagemService)(nil)

// --- Mock DespesaService ---
type MockDespesaService struct {
	mock.Mock
}

func (m *MockDespesaService) ListDespesas(ctx context.Context) ([]domain.Despesa, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Despesa), args.Error(1)
}
func (m *MockDespesaService) ListDespesasDaViagem(ctx context.Context, viagemID int64) ([]domain.Despesa, error) {
	args := m.Called(ctx, viagemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Despesa), args.Error(1)
}
func (m *MockDespesaService) CreateDespesa(ctx context.Context, req dto.CreateDespesaRequest) (*domain.Despesa, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Despesa), args.Error(1)
}
func (m *MockDespesaService) UpdateDespesa(ctx context.Context, despesaID int64, req dto.UpdateDespesaRequest) (*domain.Despesa, error) {
	args := m.Called(ctx, despesaID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Despesa), args.Error(1)
}
func (m *MockDespesaService) AprovarDespesa(ctx context.Context, despesaID int64) error {
	args := m.Called(ctx, despesaID)
	return args.Error(0)
}
func (m *MockDespesaService) RejeitarDespesa(ctx context.Context, despesaID int64, observacao string) error {
	args := m.Called(ctx, despesaID, observacao)
	return args.Error(0)
}

var _ portssvc.DespesaSvcFacade = (*MockDespesaService)(nil)

// --- Mock AdiantamentoService ---
type MockAdiantamentoService struct {
	mock.Mock
}

func (m *MockAdiantamentoService) ListAdiantamentos(ctx context.Context) ([]domain.Adiantamento, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Adiantamento), args.Error(1)
}
func (m *MockAdiantamentoService) CreateAdiantamento(ctx context.Context, req dto.CreateAdiantamentoRequest) (*domain.Adiantamento, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Adiantamento), args.Error(1)
}

var _ portssvc.AdiantamentoSvcFacade = (*MockAdiantamentoService)(nil)

// testServices bundles one mock per service port.
type testServices struct {
	auth          *MockAuthService
	users         *MockUserService
	departamentos *MockDepartamentoService
	viagens       *MockViagemService
	despesas      *MockDespesaService
	adiantamentos *MockAdiantamentoService
}

func newTestServices() *testServices {
	return &testServices{
		auth:          new(MockAuthService),
		users:         new(MockUserService),
		departamentos: new(MockDepartamentoService),
		viagens:       new(MockViagemService),
		despesas:      new(MockDespesaService),
		adiantamentos: new(MockAdiantamentoService),
	}
}

func (s *testServices) container() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:         s.auth,
		User:         s.users,
		Departamento: s.departamentos,
		Viagem:       s.viagens,
		Despesa:      s.despesas,
		Adiantamento: s.adiantamentos,
	}
}

// newTestRouter wires the real routes, middleware and a marker template set
// against the given mocks.
func newTestRouter(services *testServices, sessions *session.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidations()
	r := gin.New()
	r.SetHTMLTemplate(testTemplates)
	handlers.RegisterRoutes(r, &config.Config{}, sessions, services.container())
	return r
}

func newTestSessionManager() *session.Manager {
	return session.NewManager(testSessionSecret, "prestacao_session", time.Hour, false)
}

// sessionCookie issues s through the real manager and returns the cookie to
// attach to test requests.
func sessionCookie(sessions *session.Manager, s session.Session) *http.Cookie {
	rec := httptest.NewRecorder()
	if err := sessions.Issue(rec, s); err != nil {
		panic(err)
	}
	return rec.Result().Cookies()[0]
}

// multipartForm builds a multipart body with the given text fields and an
// optional one-byte file part.
func multipartForm(fields map[string]string, fileField string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if fileField != "" {
		fw, _ := mw.CreateFormFile(fileField, "comprovante.jpg")
		_, _ = io.Copy(fw, bytes.NewReader([]byte{0xFF}))
	}
	_ = mw.Close()
	return body, mw.FormDataContentType()
}
