package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

// MemoriaRepository is an in-memory ports.MemoriaRepository.
type MemoriaRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Memoria
	order orderedIDs
}

// NewMemoriaRepository creates an empty repository.
func NewMemoriaRepository() *MemoriaRepository {
	return &MemoriaRepository{byID: make(map[string]domain.Memoria)}
}

func (r *MemoriaRepository) Insert(_ context.Context, memoria *domain.Memoria) (*domain.Memoria, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *memoria
	created.ID = newID()
	r.byID[created.ID] = created
	r.order.append(created.ID)

	return &created, nil
}

func (r *MemoriaRepository) GetByID(_ context.Context, id string) (*domain.Memoria, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memoria, ok := r.byID[id]
	if !ok {
		return nil, domain.NewNotFoundError("memoria", id)
	}

	return &memoria, nil
}

func (r *MemoriaRepository) List(_ context.Context, filter domain.MemoriaFilter, page ports.Page) ([]domain.Memoria, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memorias := make([]domain.Memoria, 0, len(r.byID))
	for _, id := range r.order.snapshot() {
		memoria := r.byID[id]
		if matches(memoria, filter) {
			memorias = append(memorias, memoria)
		}
	}

	if filter.OrderByDataDesc {
		sortByDataDesc(memorias)
	}

	return paginate(memorias, page), nil
}

func (r *MemoriaRepository) Update(_ context.Context, id string, update domain.MemoriaUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	memoria, ok := r.byID[id]
	if !ok {
		return domain.NewNotFoundError("memoria", id)
	}

	if update.Titulo != nil {
		memoria.Titulo = *update.Titulo
	}

	if update.Descricao != nil {
		memoria.Descricao = *update.Descricao
	}

	if update.Data != nil {
		memoria.Data = *update.Data
	}

	if update.Emocao != nil {
		memoria.Emocao = *update.Emocao
	}

	if update.CategoriaID != nil {
		memoria.CategoriaID = update.CategoriaID
	}

	if update.PessoaID != nil {
		memoria.PessoaID = *update.PessoaID
	}

	r.byID[id] = memoria

	return nil
}

func (r *MemoriaRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.NewNotFoundError("memoria", id)
	}

	delete(r.byID, id)
	r.order.remove(id)

	return nil
}

func (r *MemoriaRepository) CountByCategoria(_ context.Context, categoriaID int) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, memoria := range r.byID {
		if memoria.CategoriaID != nil && *memoria.CategoriaID == categoriaID {
			count++
		}
	}

	return count, nil
}

func (r *MemoriaRepository) CountByPessoa(_ context.Context, pessoaID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, memoria := range r.byID {
		if memoria.PessoaID == pessoaID {
			count++
		}
	}

	return count, nil
}

func (r *MemoriaRepository) TotaisPorCategoria(_ context.Context) ([]domain.TotalPorCategoria, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[int]int64)
	var semCategoria int64
	for _, memoria := range r.byID {
		if memoria.CategoriaID == nil {
			semCategoria++

			continue
		}

		counts[*memoria.CategoriaID]++
	}

	totais := make([]domain.TotalPorCategoria, 0, len(counts)+1)
	for categoriaID, total := range counts {
		id := categoriaID
		totais = append(totais, domain.TotalPorCategoria{CategoriaID: &id, TotalMemorias: total})
	}

	if semCategoria > 0 {
		totais = append(totais, domain.TotalPorCategoria{TotalMemorias: semCategoria})
	}

	sort.SliceStable(totais, func(i, j int) bool {
		return totais[i].TotalMemorias > totais[j].TotalMemorias
	})

	return totais, nil
}
