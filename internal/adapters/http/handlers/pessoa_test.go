package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/memorias-pessoais/memorias-api/internal/adapters/http/dto"
	"github.com/memorias-pessoais/memorias-api/internal/app"
	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/mocks"
)

// setupPessoaHandler creates a PessoaHandler backed by mock repositories.
func setupPessoaHandler(t *testing.T, setupMocks func(*mocks.MockPessoaRepository, *mocks.MockMemoriaRepository)) *PessoaHandler {
	t.Helper()

	pessoas := mocks.NewMockPessoaRepository(t)
	memorias := mocks.NewMockMemoriaRepository(t)
	if setupMocks != nil {
		setupMocks(pessoas, memorias)
	}

	service := app.NewPessoaService(app.PessoaServiceConfig{
		Pessoas:  pessoas,
		Memorias: memorias,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return NewPessoaHandler(service)
}

func TestPessoaHandler_CreatePessoa(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockPessoaRepository, *mocks.MockMemoriaRepository)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			body: `{"nome": "João Silva", "data_nascimento": "1990-05-15"}`,
			setupMocks: func(p *mocks.MockPessoaRepository, _ *mocks.MockMemoriaRepository) {
				p.EXPECT().Insert(mock.Anything, mock.Anything).
					Run(func(_ context.Context, pessoa *domain.Pessoa) {
						assert.Equal(t,
							time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
							pessoa.DataNascimento)
					}).
					Return(&domain.Pessoa{
						ID:             "665f1f77bcf86cd799439031",
						Nome:           "João Silva",
						DataNascimento: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				t.Helper()
				var resp PessoaResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "João Silva", resp.Nome)
				assert.Equal(t, "1990-05-15", resp.DataNascimento)
			},
		},
		{
			name:           "malformed birth date",
			body:           `{"nome": "João Silva", "data_nascimento": "15/05/1990"}`,
			setupMocks:     nil,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				t.Helper()
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
			},
		},
		{
			name:           "blank name",
			body:           `{"nome": "   ", "data_nascimento": "1990-05-15"}`,
			setupMocks:     nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate name",
			body: `{"nome": "João Silva", "data_nascimento": "1990-05-15"}`,
			setupMocks: func(p *mocks.MockPessoaRepository, _ *mocks.MockMemoriaRepository) {
				p.EXPECT().Insert(mock.Anything, mock.Anything).
					Return(nil, domain.NewConflictError("pessoa", "already exists"))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := setupPessoaHandler(t, tt.setupMocks)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = jsonRequest(http.MethodPost, "/api/v1/pessoas", tt.body)

			handler.CreatePessoa(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestPessoaHandler_ListPessoas(t *testing.T) {
	handler := setupPessoaHandler(t, func(p *mocks.MockPessoaRepository, m *mocks.MockMemoriaRepository) {
		p.EXPECT().List(mock.Anything, mock.Anything).Return([]domain.Pessoa{
			{
				ID:             "665f1f77bcf86cd799439031",
				Nome:           "João Silva",
				DataNascimento: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
			},
		}, nil)
		m.EXPECT().List(mock.Anything, domain.MemoriaFilter{PessoaID: "665f1f77bcf86cd799439031"}, mock.Anything).
			Return([]domain.Memoria{{ID: "665f1f77bcf86cd799439021", Titulo: "Praia"}}, nil)
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/pessoas", nil)

	handler.ListPessoas(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListResponse[PessoaDetalheResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "João Silva", resp.Items[0].Nome)
	assert.Equal(t, []string{"665f1f77bcf86cd799439021"}, resp.Items[0].Memorias)
}

func TestPessoaHandler_GetPessoa(t *testing.T) {
	tests := []struct {
		name           string
		identificador  string
		setupMocks     func(*mocks.MockPessoaRepository, *mocks.MockMemoriaRepository)
		expectedStatus int
	}{
		{
			name:          "by name",
			identificador: "João Silva",
			setupMocks: func(p *mocks.MockPessoaRepository, m *mocks.MockMemoriaRepository) {
				p.EXPECT().GetByNome(mock.Anything, "João Silva").Return(&domain.Pessoa{
					ID:             "665f1f77bcf86cd799439031",
					Nome:           "João Silva",
					DataNascimento: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
				}, nil)
				m.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).
					Return([]domain.Memoria{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "by storage id",
			identificador: "665f1f77bcf86cd799439031",
			setupMocks: func(p *mocks.MockPessoaRepository, m *mocks.MockMemoriaRepository) {
				p.EXPECT().GetByID(mock.Anything, "665f1f77bcf86cd799439031").Return(&domain.Pessoa{
					ID:             "665f1f77bcf86cd799439031",
					Nome:           "João Silva",
					DataNascimento: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
				}, nil)
				m.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).
					Return([]domain.Memoria{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "unknown name",
			identificador: "Fulano",
			setupMocks: func(p *mocks.MockPessoaRepository, _ *mocks.MockMemoriaRepository) {
				p.EXPECT().GetByNome(mock.Anything, "Fulano").
					Return(nil, domain.NewNotFoundError("pessoa", "Fulano"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := setupPessoaHandler(t, tt.setupMocks)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/pessoas/x", nil)
			c.Params = gin.Params{{Key: "identificador", Value: tt.identificador}}

			handler.GetPessoa(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPessoaHandler_UpdatePessoa(t *testing.T) {
	handler := setupPessoaHandler(t, func(p *mocks.MockPessoaRepository, _ *mocks.MockMemoriaRepository) {
		pessoa := &domain.Pessoa{
			ID:             "665f1f77bcf86cd799439031",
			Nome:           "João Silva",
			DataNascimento: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		}
		p.EXPECT().GetByID(mock.Anything, "665f1f77bcf86cd799439031").Return(pessoa, nil).Once()
		p.EXPECT().Update(mock.Anything, "665f1f77bcf86cd799439031", mock.Anything).
			Run(func(_ context.Context, _ string, update domain.PessoaUpdate) {
				require.NotNil(t, update.DataNascimento)
				assert.Equal(t,
					time.Date(1991, 1, 2, 0, 0, 0, 0, time.UTC),
					*update.DataNascimento)
			}).
			Return(nil)
		p.EXPECT().GetByID(mock.Anything, "665f1f77bcf86cd799439031").Return(&domain.Pessoa{
			ID:             "665f1f77bcf86cd799439031",
			Nome:           "João Silva",
			DataNascimento: time.Date(1991, 1, 2, 0, 0, 0, 0, time.UTC),
		}, nil).Once()
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPut, "/api/v1/pessoas/665f1f77bcf86cd799439031",
		`{"data_nascimento": "1991-01-02"}`)
	c.Params = gin.Params{{Key: "identificador", Value: "665f1f77bcf86cd799439031"}}

	handler.UpdatePessoa(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp PessoaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1991-01-02", resp.DataNascimento)
}

func TestPessoaHandler_DeletePessoa(t *testing.T) {
	t.Run("blocked by referencing memories", func(t *testing.T) {
		handler := setupPessoaHandler(t, func(p *mocks.MockPessoaRepository, m *mocks.MockMemoriaRepository) {
			p.EXPECT().GetByNome(mock.Anything, "João Silva").Return(&domain.Pessoa{
				ID:   "665f1f77bcf86cd799439031",
				Nome: "João Silva",
			}, nil)
			m.EXPECT().CountByPessoa(mock.Anything, "665f1f77bcf86cd799439031").Return(int64(1), nil)
		})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/pessoas/x", nil)
		c.Params = gin.Params{{Key: "identificador", Value: "João Silva"}}

		handler.DeletePessoa(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		handler := setupPessoaHandler(t, func(p *mocks.MockPessoaRepository, m *mocks.MockMemoriaRepository) {
			p.EXPECT().GetByNome(mock.Anything, "João Silva").Return(&domain.Pessoa{
				ID:   "665f1f77bcf86cd799439031",
				Nome: "João Silva",
			}, nil)
			m.EXPECT().CountByPessoa(mock.Anything, "665f1f77bcf86cd799439031").Return(int64(0), nil)
			p.EXPECT().Delete(mock.Anything, "665f1f77bcf86cd799439031").Return(nil)
		})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/pessoas/x", nil)
		c.Params = gin.Params{{Key: "identificador", Value: "João Silva"}}

		handler.DeletePessoa(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestPessoaHandler_RegisterPessoaRoutes(t *testing.T) {
	handler := setupPessoaHandler(t, nil)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterPessoaRoutes(api)

	expectedRoutes := []string{
		"POST /api/v1/pessoas",
		"GET /api/v1/pessoas",
		"GET /api/v1/pessoas/:identificador",
		"PUT /api/v1/pessoas/:identificador",
		"DELETE /api/v1/pessoas/:identificador",
	}

	routeMap := make(map[string]bool)
	for _, r := range router.Routes() {
		routeMap[r.Method+" "+r.Path] = true
	}

	for _, expected := range expectedRoutes {
		assert.True(t, routeMap[expected], "missing route: %s", expected)
	}
}
