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

func TestNewMemoriaService_PanicsWithoutRepositories(t *testing.T) {
	assert.Panics(t, func() {
		NewMemoriaService(MemoriaServiceConfig{
			Memorias:   nil,
			Categorias: mocks.NewMockCategoriaRepository(t),
			Pessoas:    mocks.NewMockPessoaRepository(t),
		})
	})

	assert.Panics(t, func() {
		NewMemoriaService(MemoriaServiceConfig{
			Memorias:   mocks.NewMockMemoriaRepository(t),
			Categorias: nil,
			Pessoas:    mocks.NewMockPessoaRepository(t),
		})
	})

	assert.Panics(t, func() {
		NewMemoriaService(MemoriaServiceConfig{
			Memorias:   mocks.NewMockMemoriaRepository(t),
			Categorias: mocks.NewMockCategoriaRepository(t),
			Pessoas:    nil,
		})
	})
}

func newMemoriaService(t *testing.T) (*MemoriaService, *mocks.MockMemoriaRepository, *mocks.MockCategoriaRepository, *mocks.MockPessoaRepository) {
	t.Helper()

	memorias := mocks.NewMockMemoriaRepository(t)
	categorias := mocks.NewMockCategoriaRepository(t)
	pessoas := mocks.NewMockPessoaRepository(t)

	svc := NewMemoriaService(MemoriaServiceConfig{
		Memorias:   memorias,
		Categorias: categorias,
		Pessoas:    pessoas,
		Logger:     discardLogger(),
	})

	return svc, memorias, categorias, pessoas
}

func TestMemoriaService_Create(t *testing.T) {
	categoriaID := 1
	pessoaID := "665f1f77bcf86cd799439031"

	tests := []struct {
		name      string
		memoria   *domain.Memoria
		setupMock func(*mocks.MockMemoriaRepository, *mocks.MockCategoriaRepository, *mocks.MockPessoaRepository)
		errCheck  func(error) bool
	}{
		{
			name: "success with both references",
			memoria: &domain.Memoria{
				Titulo:      "Praia em Floripa",
				Data:        time.Date(2023, 7, 15, 18, 45, 0, 0, time.UTC),
				Emocao:      "alegria",
				CategoriaID: &categoriaID,
				PessoaID:    pessoaID,
			},
			setupMock: func(m *mocks.MockMemoriaRepository, c *mocks.MockCategoriaRepository, p *mocks.MockPessoaRepository) {
				c.EXPECT().GetByCategoriaID(mock.Anything, 1).
					Return(&domain.Categoria{ID: "665f1f77bcf86cd799439011", CategoriaID: 1, Nome: "Viagens"}, nil)
				p.EXPECT().GetByID(mock.Anything, pessoaID).
					Return(&domain.Pessoa{ID: pessoaID, Nome: "João Silva"}, nil)
				m.EXPECT().Insert(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, memoria *domain.Memoria) {
						assert.Equal(t, time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC), memoria.Data)
					}).
					Return(&domain.Memoria{ID: "665f1f77bcf86cd799439021", Titulo: "Praia em Floripa"}, nil)
			},
		},
		{
			name: "success without references",
			memoria: &domain.Memoria{
				Titulo: "Dia comum",
				Data:   time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *mocks.MockMemoriaRepository, c *mocks.MockCategoriaRepository, p *mocks.MockPessoaRepository) {
				m.EXPECT().Insert(mock.Anything, mock.Anything).
					Return(&domain.Memoria{ID: "665f1f77bcf86cd799439022", Titulo: "Dia comum"}, nil)
			},
		},
		{
			name:      "missing title",
			memoria:   &domain.Memoria{Data: time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)},
			setupMock: func(m *mocks.MockMemoriaRepository, c *mocks.MockCategoriaRepository, p *mocks.MockPessoaRepository) {},
			errCheck:  domain.IsValidation,
		},
		{
			name: "unknown categoria",
			memoria: &domain.Memoria{
				Titulo:      "Praia",
				Data:        time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC),
				CategoriaID: &categoriaID,
			},
			setupMock: func(m *mocks.MockMemoriaRepository, c *mocks.MockCategoriaRepository, p *mocks.MockPessoaRepository) {
				c.EXPECT().GetByCategoriaID(mock.Anything, 1).
					Return(nil, domain.NewNotFoundError("categoria", "1"))
			},
			errCheck: domain.IsValidation,
		},
		{
			name: "unknown pessoa",
			memoria: &domain.Memoria{
				Titulo:   "Praia",
				Data:     time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC),
				PessoaID: pessoaID,
			},
			setupMock: func(m *mocks.MockMemoriaRepository, c *mocks.MockCategoriaRepository, p *mocks.MockPessoaRepository) {
				p.EXPECT().GetByID(mock.Anything, pessoaID).
					Return(nil, domain.NewNotFoundError("pessoa", pessoaID))
			},
			errCheck: domain.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, memorias, categorias, pessoas := newMemoriaService(t)
			tt.setupMock(memorias, categorias, pessoas)

			created, err := svc.Create(context.Background(), tt.memoria)

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

func TestMemoriaService_Get(t *testing.T) {
	svc, memorias, _, _ := newMemoriaService(t)

	memorias.EXPECT().GetByID(mock.Anything, "665f1f77bcf86cd799439021").
		Return(&domain.Memoria{ID: "665f1f77bcf86cd799439021", Titulo: "Praia"}, nil)

	memoria, err := svc.Get(context.Background(), "665f1f77bcf86cd799439021")

	require.NoError(t, err)
	assert.Equal(t, "Praia", memoria.Titulo)
}

func TestMemoriaService_Get_MalformedID(t *testing.T) {
	svc, _, _, _ := newMemoriaService(t)

	memoria, err := svc.Get(context.Background(), "abc")

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Nil(t, memoria)
}

func TestMemoriaService_Update_TruncatesDate(t *testing.T) {
	svc, memorias, _, _ := newMemoriaService(t)

	data := time.Date(2023, 7, 15, 18, 45, 0, 0, time.UTC)
	truncated := time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)

	memorias.EXPECT().Update(mock.Anything, "665f1f77bcf86cd799439021", domain.MemoriaUpdate{Data: &truncated}).
		Return(nil)
	memorias.EXPECT().GetByID(mock.Anything, "665f1f77bcf86cd799439021").
		Return(&domain.Memoria{ID: "665f1f77bcf86cd799439021", Titulo: "Praia", Data: truncated}, nil)

	updated, err := svc.Update(context.Background(), "665f1f77bcf86cd799439021", domain.MemoriaUpdate{Data: &data})

	require.NoError(t, err)
	assert.Equal(t, truncated, updated.Data)
}

func TestMemoriaService_Update_UnknownCategoria(t *testing.T) {
	svc, _, categorias, _ := newMemoriaService(t)

	categoriaID := 42
	categorias.EXPECT().GetByCategoriaID(mock.Anything, 42).
		Return(nil, domain.NewNotFoundError("categoria", "42"))

	updated, err := svc.Update(context.Background(), "665f1f77bcf86cd799439021", domain.MemoriaUpdate{CategoriaID: &categoriaID})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Nil(t, updated)
}

func TestMemoriaService_Delete(t *testing.T) {
	svc, memorias, _, _ := newMemoriaService(t)

	memorias.EXPECT().Delete(mock.Anything, "665f1f77bcf86cd799439021").Return(nil)

	err := svc.Delete(context.Background(), "665f1f77bcf86cd799439021")

	require.NoError(t, err)
}

func TestMemoriaService_ListByCategoria(t *testing.T) {
	svc, memorias, _, _ := newMemoriaService(t)

	categoriaID := 1
	memorias.EXPECT().List(mock.Anything, domain.MemoriaFilter{CategoriaID: &categoriaID}, ports.Page{Limit: 10}).
		Return([]domain.Memoria{{ID: "665f1f77bcf86cd799439021"}}, nil)

	result, err := svc.ListByCategoria(context.Background(), 1, ports.Page{Limit: 10})

	require.NoError(t, err)
	require.Len(t, result, 1)
}

func TestMemoriaService_ListByPessoa(t *testing.T) {
	svc, memorias, _, _ := newMemoriaService(t)

	memorias.EXPECT().List(mock.Anything,
		domain.MemoriaFilter{PessoaID: "665f1f77bcf86cd799439031", Emocao: "alegria"},
		ports.Page{},
	).Return([]domain.Memoria{{ID: "665f1f77bcf86cd799439021", Emocao: "alegria"}}, nil)

	result, err := svc.ListByPessoa(context.Background(), "665f1f77bcf86cd799439031", "alegria", ports.Page{})

	require.NoError(t, err)
	require.Len(t, result, 1)
}

func TestMemoriaService_ListByPessoa_MalformedID(t *testing.T) {
	svc, _, _, _ := newMemoriaService(t)

	result, err := svc.ListByPessoa(context.Background(), "joão", "", ports.Page{})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Nil(t, result)
}

func TestMemoriaService_ListByPeriodo(t *testing.T) {
	svc, memorias, _, _ := newMemoriaService(t)

	inicio := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	memorias.EXPECT().List(mock.Anything,
		domain.MemoriaFilter{DataInicio: &inicio, DataFim: &fim, OrderByDataDesc: true},
		ports.Page{},
	).Return([]domain.Memoria{{ID: "665f1f77bcf86cd799439021"}}, nil)

	result, err := svc.ListByPeriodo(context.Background(), inicio, fim, "", ports.Page{})

	require.NoError(t, err)
	require.Len(t, result, 1)
}

func TestMemoriaService_ListByPeriodo_InvertedRange(t *testing.T) {
	svc, _, _, _ := newMemoriaService(t)

	inicio := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	result, err := svc.ListByPeriodo(context.Background(), inicio, fim, "", ports.Page{})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Nil(t, result)
}

func TestMemoriaService_Search(t *testing.T) {
	svc, memorias, _, _ := newMemoriaService(t)

	memorias.EXPECT().List(mock.Anything, domain.MemoriaFilter{TituloContem: "praia"}, ports.Page{}).
		Return([]domain.Memoria{{ID: "665f1f77bcf86cd799439021", Titulo: "Praia em Floripa"}}, nil)

	result, err := svc.Search(context.Background(), "praia", ports.Page{})

	require.NoError(t, err)
	require.Len(t, result, 1)
}

func TestMemoriaService_Search_EmptyText(t *testing.T) {
	svc, _, _, _ := newMemoriaService(t)

	result, err := svc.Search(context.Background(), "", ports.Page{})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Nil(t, result)
}

func TestMemoriaService_TotaisPorCategoria(t *testing.T) {
	svc, memorias, _, _ := newMemoriaService(t)

	categoriaID := 1
	memorias.EXPECT().TotaisPorCategoria(mock.Anything).
		Return([]domain.TotalPorCategoria{
			{CategoriaID: &categoriaID, TotalMemorias: 5},
			{CategoriaID: nil, TotalMemorias: 2},
		}, nil)

	totais, err := svc.TotaisPorCategoria(context.Background())

	require.NoError(t, err)
	require.Len(t, totais, 2)
	assert.Equal(t, int64(5), totais[0].TotalMemorias)
	assert.Nil(t, totais[1].CategoriaID)
}
