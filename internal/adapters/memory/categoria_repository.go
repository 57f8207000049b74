package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

// CategoriaRepository is an in-memory ports.CategoriaRepository.
type CategoriaRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Categoria
	order orderedIDs
}

// NewCategoriaRepository creates an empty repository.
func NewCategoriaRepository() *CategoriaRepository {
	return &CategoriaRepository{byID: make(map[string]domain.Categoria)}
}

func (r *CategoriaRepository) Insert(_ context.Context, categoria *domain.Categoria) (*domain.Categoria, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.CategoriaID == categoria.CategoriaID {
			return nil, domain.NewConflictError("categoria", "already exists")
		}
	}

	created := *categoria
	created.ID = newID()
	r.byID[created.ID] = created
	r.order.append(created.ID)

	return &created, nil
}

func (r *CategoriaRepository) List(_ context.Context, page ports.Page) ([]domain.Categoria, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categorias := make([]domain.Categoria, 0, len(r.byID))
	for _, id := range r.order.snapshot() {
		categorias = append(categorias, r.byID[id])
	}

	return paginate(categorias, page), nil
}

func (r *CategoriaRepository) GetByID(_ context.Context, id string) (*domain.Categoria, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categoria, ok := r.byID[id]
	if !ok {
		return nil, domain.NewNotFoundError("categoria", id)
	}

	return &categoria, nil
}

func (r *CategoriaRepository) GetByCategoriaID(_ context.Context, categoriaID int) (*domain.Categoria, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, categoria := range r.byID {
		if categoria.CategoriaID == categoriaID {
			return &categoria, nil
		}
	}

	return nil, domain.NewNotFoundError("categoria", strconv.Itoa(categoriaID))
}

func (r *CategoriaRepository) Update(_ context.Context, id string, update domain.CategoriaUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	categoria, ok := r.byID[id]
	if !ok {
		return domain.NewNotFoundError("categoria", id)
	}

	if update.Nome != nil {
		categoria.Nome = *update.Nome
	}

	if update.CategoriaID != nil {
		categoria.CategoriaID = *update.CategoriaID
	}

	r.byID[id] = categoria

	return nil
}

func (r *CategoriaRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.NewNotFoundError("categoria", id)
	}

	delete(r.byID, id)
	r.order.remove(id)

	return nil
}
