package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/mocks"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

func TestNewPessoaService_PanicsWithoutRepositories(t *testing.T) {
	assert.Panics(t, func() {
		NewPessoaService(PessoaServiceConfig{
			Pessoas:  nil,
			Memorias: mocks.NewMockMemoriaRepository(t),
		})
	})

	assert.Panics(t, func() {
		NewPessoaService(PessoaServiceConfig{
			Pessoas:  mocks.NewMockPessoaRepository(t),
			Memorias: nil,
		})
	})
}

func newPessoaService(t *testing.T) (*PessoaService, *mocks.MockPessoaRepository, *mocks.MockMemoriaRepository) {
	t.Helper()

	pessoas := mocks.NewMockPessoaRepository(t)
	memorias := mocks.NewMockMemoriaRepository(t)

	svc := NewPessoaService(PessoaServiceConfig{
		Pessoas:  pessoas,
		Memorias: memorias,
		Logger:   discardLogger(),
	})

	return svc, pessoas, memorias
}

func TestPessoaService_Create(t *testing.T) {
	tests := []struct {
		name      string
		pessoa    *domain.Pessoa
		setupMock func(*mocks.MockPessoaRepository)
		errCheck  func(error) bool
	}{
		{
			name: "success truncates birth date",
			pessoa: &domain.Pessoa{
				Nome:           "João Silva",
				DataNascimento: time.Date(1990, 5, 12, 15, 30, 0, 0, time.UTC),
			},
			setupMock: func(m *mocks.MockPessoaRepository) {
				m.EXPECT().Insert(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, pessoa *domain.Pessoa) {
						assert.Equal(t, time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC), pessoa.DataNascimento)
					}).
					Return(&domain.Pessoa{
						ID:             "665f1f77bcf86cd799439031",
						Nome:           "João Silva",
						DataNascimento: time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
					}, nil)
			},
		},
		{
			name:      "empty name",
			pessoa:    &domain.Pessoa{Nome: "", DataNascimento: time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC)},
			setupMock: func(m *mocks.MockPessoaRepository) {},
			errCheck:  domain.IsValidation,
		},
		{
			name: "duplicate name",
			pessoa: &domain.Pessoa{
				Nome:           "João Silva",
				DataNascimento: time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *mocks.MockPessoaRepository) {
				m.EXPECT().Insert(mock.Anything, mock.Anything).
					Return(nil, domain.NewConflictError("pessoa", "nome already exists"))
			},
			errCheck: domain.IsConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, pessoas, _ := newPessoaService(t)
			tt.setupMock(pessoas)

			created, err := svc.Create(context.Background(), tt.pessoa)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, created.ID)
			}
		})
	}
}

func TestPessoaService_List(t *testing.T) {
	svc, pessoas, memorias := newPessoaService(t)

	pessoas.EXPECT().List(mock.Anything, ports.Page{Limit: 10}).
		Return([]domain.Pessoa{
			{ID: "665f1f77bcf86cd799439031", Nome: "João Silva"},
			{ID: "665f1f77bcf86cd799439032", Nome: "Maria Souza"},
		}, nil)
	memorias.EXPECT().List(mock.Anything, domain.MemoriaFilter{PessoaID: "665f1f77bcf86cd799439031"}, ports.Page{}).
		Return([]domain.Memoria{{ID: "665f1f77bcf86cd799439021"}}, nil)
	memorias.EXPECT().List(mock.Anything, domain.MemoriaFilter{PessoaID: "665f1f77bcf86cd799439032"}, ports.Page{}).
		Return([]domain.Memoria{}, nil)

	detalhes, err := svc.List(context.Background(), ports.Page{Limit: 10})

	require.NoError(t, err)
	require.Len(t, detalhes, 2)
	assert.Equal(t, []string{"665f1f77bcf86cd799439021"}, detalhes[0].MemoriaIDs)
	assert.Empty(t, detalhes[1].MemoriaIDs)
}

func TestPessoaService_Get(t *testing.T) {
	tests := []struct {
		name          string
		identificador string
		setupMock     func(*mocks.MockPessoaRepository, *mocks.MockMemoriaRepository)
		errCheck      func(error) bool
	}{
		{
			name:          "by storage id",
			identificador: "665f1f77bcf86cd799439031",
			setupMock: func(p *mocks.MockPessoaRepository, m *mocks.MockMemoriaRepository) {
				p.EXPECT().GetByID(mock.Anything, "665f1f77bcf86cd799439031").
					Return(&domain.Pessoa{ID: "665f1f77bcf86cd799439031", Nome: "João Silva"}, nil)
				m.EXPECT().List(mock.Anything, domain.MemoriaFilter{PessoaID: "665f1f77bcf86cd799439031"}, ports.Page{}).
					Return([]domain.Memoria{}, nil)
			},
		},
		{
			name:          "by name",
			identificador: "João Silva",
			setupMock: func(p *mocks.MockPessoaRepository, m *mocks.MockMemoriaRepository) {
				p.EXPECT().GetByNome(mock.Anything, "João Silva").
					Return(&domain.Pessoa{ID: "665f1f77bcf86cd799439031", Nome: "João Silva"}, nil)
				m.EXPECT().List(mock.Anything, domain.MemoriaFilter{PessoaID: "665f1f77bcf86cd799439031"}, ports.Page{}).
					Return([]domain.Memoria{}, nil)
			},
		},
		{
			name:          "unknown name",
			identificador: "Fulano",
			setupMock: func(p *mocks.MockPessoaRepository, m *mocks.MockMemoriaRepository) {
				p.EXPECT().GetByNome(mock.Anything, "Fulano").
					Return(nil, domain.NewNotFoundError("pessoa", "Fulano"))
			},
			errCheck: domain.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, pessoas, memorias := newPessoaService(t)
			tt.setupMock(pessoas, memorias)

			detalhe, err := svc.Get(context.Background(), tt.identificador)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))
				assert.Nil(t, detalhe)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "João Silva", detalhe.Nome)
			}
		})
	}
}

func TestPessoaService_Update_TruncatesBirthDate(t *testing.T) {
	svc, pessoas, _ := newPessoaService(t)

	nascimento := time.Date(1990, 5, 12, 23, 59, 59, 0, time.UTC)
	truncated := time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC)

	pessoas.EXPECT().GetByID(mock.Anything, "665f1f77bcf86cd799439031").
		Return(&domain.Pessoa{ID: "665f1f77bcf86cd799439031", Nome: "João Silva"}, nil).Once()
	pessoas.EXPECT().Update(mock.Anything, "665f1f77bcf86cd799439031", domain.PessoaUpdate{DataNascimento: &truncated}).
		Return(nil)
	pessoas.EXPECT().GetByID(mock.Anything, "665f1f77bcf86cd799439031").
		Return(&domain.Pessoa{ID: "665f1f77bcf86cd799439031", Nome: "João Silva", DataNascimento: truncated}, nil).Once()

	updated, err := svc.Update(context.Background(), "665f1f77bcf86cd799439031", domain.PessoaUpdate{DataNascimento: &nascimento})

	require.NoError(t, err)
	assert.Equal(t, truncated, updated.DataNascimento)
}

func TestPessoaService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockPessoaRepository, *mocks.MockMemoriaRepository)
		errCheck  func(error) bool
	}{
		{
			name: "success",
			setupMock: func(p *mocks.MockPessoaRepository, m *mocks.MockMemoriaRepository) {
				p.EXPECT().GetByID(mock.Anything, "665f1f77bcf86cd799439031").
					Return(&domain.Pessoa{ID: "665f1f77bcf86cd799439031", Nome: "João Silva"}, nil)
				m.EXPECT().CountByPessoa(mock.Anything, "665f1f77bcf86cd799439031").Return(int64(0), nil)
				p.EXPECT().Delete(mock.Anything, "665f1f77bcf86cd799439031").Return(nil)
			},
		},
		{
			name: "blocked by associated memories",
			setupMock: func(p *mocks.MockPessoaRepository, m *mocks.MockMemoriaRepository) {
				p.EXPECT().GetByID(mock.Anything, "665f1f77bcf86cd799439031").
					Return(&domain.Pessoa{ID: "665f1f77bcf86cd799439031", Nome: "João Silva"}, nil)
				m.EXPECT().CountByPessoa(mock.Anything, "665f1f77bcf86cd799439031").Return(int64(4), nil)
			},
			errCheck: domain.IsConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, pessoas, memorias := newPessoaService(t)
			tt.setupMock(pessoas, memorias)

			err := svc.Delete(context.Background(), "665f1f77bcf86cd799439031")

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
