package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/memorias-pessoais/memorias-api/internal/adapters/http/dto"
	"github.com/memorias-pessoais/memorias-api/internal/app"
	"github.com/memorias-pessoais/memorias-api/internal/domain"
)

// MemoriaHandler handles memory HTTP endpoints.
type MemoriaHandler struct {
	service *app.MemoriaService
}

// NewMemoriaHandler creates a new memory handler.
func NewMemoriaHandler(service *app.MemoriaService) *MemoriaHandler {
	return &MemoriaHandler{
		service: service,
	}
}

// CreateMemoriaRequest is the payload for recording a memory.
type CreateMemoriaRequest struct {
	Titulo      string `json:"titulo" validate:"required,notempty"`
	Descricao   string `json:"descricao"`
	Data        string `json:"data" validate:"required,dateonly"`
	Emocao      string `json:"emocao"`
	CategoriaID *int   `json:"categoria_id" validate:"omitempty,gte=1"`
	PessoaID    string `json:"pessoa_id" validate:"omitempty,objectid"`
}

// UpdateMemoriaRequest is the payload for a partial memory update.
type UpdateMemoriaRequest struct {
	Titulo      *string `json:"titulo" validate:"omitempty,notempty"`
	Descricao   *string `json:"descricao"`
	Data        *string `json:"data" validate:"omitempty,dateonly"`
	Emocao      *string `json:"emocao"`
	CategoriaID *int    `json:"categoria_id" validate:"omitempty,gte=1"`
	PessoaID    *string `json:"pessoa_id" validate:"omitempty,objectid"`
}

// ListMemoriasByPessoaRequest carries the optional emotion filter.
type ListMemoriasByPessoaRequest struct {
	dto.PaginationRequest
	Emocao string `form:"emocao"`
}

// ListMemoriasByPeriodoRequest bounds the event date range (inclusive).
type ListMemoriasByPeriodoRequest struct {
	dto.PaginationRequest
	DataInicio string `form:"data_inicio" validate:"required,dateonly"`
	DataFim    string `form:"data_fim" validate:"required,dateonly"`
	Emocao     string `form:"emocao"`
}

// SearchMemoriasRequest carries the case-insensitive title search text.
type SearchMemoriasRequest struct {
	dto.PaginationRequest
	Texto string `form:"texto" validate:"required,notempty"`
}

// MemoriaResponse is the HTTP response structure for a memory.
type MemoriaResponse struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Descricao   string `json:"descricao,omitempty"`
	Data        string `json:"data"`
	Emocao      string `json:"emocao,omitempty"`
	CategoriaID *int   `json:"categoria_id,omitempty"`
	PessoaID    string `json:"pessoa_id,omitempty"`
}

// TotalPorCategoriaResponse is one row of the memories-per-category
// aggregation. CategoriaID is null for uncategorized memories.
type TotalPorCategoriaResponse struct {
	CategoriaID   *int  `json:"categoria_id"`
	TotalMemorias int64 `json:"total_memorias"`
}

func toMemoriaResponse(memoria *domain.Memoria) MemoriaResponse {
	return MemoriaResponse{
		ID:          memoria.ID,
		Titulo:      memoria.Titulo,
		Descricao:   memoria.Descricao,
		Data:        memoria.Data.Format(time.DateOnly),
		Emocao:      memoria.Emocao,
		CategoriaID: memoria.CategoriaID,
		PessoaID:    memoria.PessoaID,
	}
}

func toMemoriaListResponse(memorias []domain.Memoria) dto.ListResponse[MemoriaResponse] {
	items := make([]MemoriaResponse, len(memorias))
	for i := range memorias {
		items[i] = toMemoriaResponse(&memorias[i])
	}

	return *dto.NewListResponse(items)
}

// CreateMemoria handles POST /api/v1/memorias
func (h *MemoriaHandler) CreateMemoria(c *gin.Context) {
	var req CreateMemoriaRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	data, _ := time.Parse(time.DateOnly, req.Data)

	memoria, err := h.service.Create(c.Request.Context(), &domain.Memoria{
		Titulo:      req.Titulo,
		Descricao:   req.Descricao,
		Data:        data,
		Emocao:      req.Emocao,
		CategoriaID: req.CategoriaID,
		PessoaID:    req.PessoaID,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toMemoriaResponse(memoria))
}

// ListMemorias handles GET /api/v1/memorias
func (h *MemoriaHandler) ListMemorias(c *gin.Context) {
	var page dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &page); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	memorias, err := h.service.List(c.Request.Context(), page.ToPage())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMemoriaListResponse(memorias))
}

// GetMemoria handles GET /api/v1/memorias/:id
func (h *MemoriaHandler) GetMemoria(c *gin.Context) {
	memoria, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMemoriaResponse(memoria))
}

// UpdateMemoria handles PUT /api/v1/memorias/:id
func (h *MemoriaHandler) UpdateMemoria(c *gin.Context) {
	var req UpdateMemoriaRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	update := domain.MemoriaUpdate{
		Titulo:      req.Titulo,
		Descricao:   req.Descricao,
		Emocao:      req.Emocao,
		CategoriaID: req.CategoriaID,
		PessoaID:    req.PessoaID,
	}
	if req.Data != nil {
		data, _ := time.Parse(time.DateOnly, *req.Data)
		update.Data = &data
	}

	memoria, err := h.service.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMemoriaResponse(memoria))
}

// DeleteMemoria handles DELETE /api/v1/memorias/:id
func (h *MemoriaHandler) DeleteMemoria(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMemoriasByCategoria handles GET /api/v1/memorias/categoria/:categoriaId
func (h *MemoriaHandler) ListMemoriasByCategoria(c *gin.Context) {
	categoriaID, err := strconv.Atoi(c.Param("categoriaId"))
	if err != nil {
		dto.HandleError(c, domain.NewValidationErrorWithValue(
			"categoria_id", "must be a numeric id", c.Param("categoriaId")))
		return
	}

	var page dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &page); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	memorias, err := h.service.ListByCategoria(c.Request.Context(), categoriaID, page.ToPage())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMemoriaListResponse(memorias))
}

// ListMemoriasByPessoa handles GET /api/v1/memorias/pessoa/:pessoaId
func (h *MemoriaHandler) ListMemoriasByPessoa(c *gin.Context) {
	var req ListMemoriasByPessoaRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	memorias, err := h.service.ListByPessoa(
		c.Request.Context(), c.Param("pessoaId"), req.Emocao, req.ToPage())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMemoriaListResponse(memorias))
}

// ListMemoriasByPeriodo handles GET /api/v1/memorias/datas/
// Results come back newest first.
func (h *MemoriaHandler) ListMemoriasByPeriodo(c *gin.Context) {
	var req ListMemoriasByPeriodoRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	inicio, _ := time.Parse(time.DateOnly, req.DataInicio)
	fim, _ := time.Parse(time.DateOnly, req.DataFim)

	memorias, err := h.service.ListByPeriodo(c.Request.Context(), inicio, fim, req.Emocao, req.ToPage())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMemoriaListResponse(memorias))
}

// SearchMemorias handles GET /api/v1/memorias/busca/
func (h *MemoriaHandler) SearchMemorias(c *gin.Context) {
	var req SearchMemoriasRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	memorias, err := h.service.Search(c.Request.Context(), req.Texto, req.ToPage())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMemoriaListResponse(memorias))
}

// TotaisPorCategoria handles GET /api/v1/memorias/agregacoes/total-por-categoria/
func (h *MemoriaHandler) TotaisPorCategoria(c *gin.Context) {
	totais, err := h.service.TotaisPorCategoria(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	items := make([]TotalPorCategoriaResponse, len(totais))
	for i, total := range totais {
		items[i] = TotalPorCategoriaResponse{
			CategoriaID:   total.CategoriaID,
			TotalMemorias: total.TotalMemorias,
		}
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items))
}

// RegisterMemoriaRoutes registers memory routes on the given router group.
func (h *MemoriaHandler) RegisterMemoriaRoutes(rg *gin.RouterGroup) {
	memorias := rg.Group("/memorias")
	memorias.POST("", h.CreateMemoria)
	memorias.GET("", h.ListMemorias)
	memorias.GET("/categoria/:categoriaId", h.ListMemoriasByCategoria)
	memorias.GET("/pessoa/:pessoaId", h.ListMemoriasByPessoa)
	memorias.GET("/datas/", h.ListMemoriasByPeriodo)
	memorias.GET("/busca/", h.SearchMemorias)
	memorias.GET("/agregacoes/total-por-categoria/", h.TotaisPorCategoria)
	memorias.GET("/:id", h.GetMemoria)
	memorias.PUT("/:id", h.UpdateMemoria)
	memorias.DELETE("/:id", h.DeleteMemoria)
}
