package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memorias-pessoais/memorias-api/internal/adapters/http/dto"
	"github.com/memorias-pessoais/memorias-api/internal/app"
	"github.com/memorias-pessoais/memorias-api/internal/domain"
)

// CategoriaHandler handles category HTTP endpoints.
type CategoriaHandler struct {
	service *app.CategoriaService
}

// NewCategoriaHandler creates a new category handler.
func NewCategoriaHandler(service *app.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{
		service: service,
	}
}

// CreateCategoriaRequest is the payload for creating a category.
type CreateCategoriaRequest struct {
	CategoriaID int    `json:"categoria_id" validate:"required,gte=1"`
	Nome        string `json:"nome" validate:"required,min=3"`
}

// UpdateCategoriaRequest is the payload for a partial category update.
type UpdateCategoriaRequest struct {
	CategoriaID *int    `json:"categoria_id" validate:"omitempty,gte=1"`
	Nome        *string `json:"nome" validate:"omitempty,min=3"`
}

// CategoriaResponse is the HTTP response structure for a category.
type CategoriaResponse struct {
	ID          string `json:"id"`
	CategoriaID int    `json:"categoria_id"`
	Nome        string `json:"nome"`
}

// CategoriaResumoResponse is a category with its memory count, as returned
// by listings.
type CategoriaResumoResponse struct {
	CategoriaResponse
	QuantidadeMemorias int64 `json:"quantidade_memorias"`
}

// CategoriaDetalheResponse is a category with the ids of the memories it
// classifies.
type CategoriaDetalheResponse struct {
	CategoriaResponse
	Memorias []string `json:"memorias"`
}

func toCategoriaResponse(categoria *domain.Categoria) CategoriaResponse {
	return CategoriaResponse{
		ID:          categoria.ID,
		CategoriaID: categoria.CategoriaID,
		Nome:        categoria.Nome,
	}
}

// CreateCategoria handles POST /api/v1/categorias
func (h *CategoriaHandler) CreateCategoria(c *gin.Context) {
	var req CreateCategoriaRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	categoria, err := h.service.Create(c.Request.Context(), &domain.Categoria{
		CategoriaID: req.CategoriaID,
		Nome:        req.Nome,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCategoriaResponse(categoria))
}

// ListCategorias handles GET /api/v1/categorias
// Each item carries the number of memories it classifies.
func (h *CategoriaHandler) ListCategorias(c *gin.Context) {
	var page dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &page); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	resumos, err := h.service.List(c.Request.Context(), page.ToPage())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	items := make([]CategoriaResumoResponse, len(resumos))
	for i, resumo := range resumos {
		items[i] = CategoriaResumoResponse{
			CategoriaResponse:  toCategoriaResponse(&resumo.Categoria),
			QuantidadeMemorias: resumo.QuantidadeMemorias,
		}
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items))
}

// GetCategoria handles GET /api/v1/categorias/:identificador
// The identifier may be a hex storage id or the numeric categoria_id.
func (h *CategoriaHandler) GetCategoria(c *gin.Context) {
	detalhe, err := h.service.Get(c.Request.Context(), c.Param("identificador"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoriaDetalheResponse{
		CategoriaResponse: toCategoriaResponse(&detalhe.Categoria),
		Memorias:          detalhe.MemoriaIDs,
	})
}

// UpdateCategoria handles PUT /api/v1/categorias/:identificador
func (h *CategoriaHandler) UpdateCategoria(c *gin.Context) {
	var req UpdateCategoriaRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	categoria, err := h.service.Update(c.Request.Context(), c.Param("identificador"), domain.CategoriaUpdate{
		Nome:        req.Nome,
		CategoriaID: req.CategoriaID,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoriaResponse(categoria))
}

// DeleteCategoria handles DELETE /api/v1/categorias/:identificador
// Returns 409 while memories still reference the category.
func (h *CategoriaHandler) DeleteCategoria(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("identificador")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterCategoriaRoutes registers category routes on the given router group.
func (h *CategoriaHandler) RegisterCategoriaRoutes(rg *gin.RouterGroup) {
	categorias := rg.Group("/categorias")
	categorias.POST("", h.CreateCategoria)
	categorias.GET("", h.ListCategorias)
	categorias.GET("/:identificador", h.GetCategoria)
	categorias.PUT("/:identificador", h.UpdateCategoria)
	categorias.DELETE("/:identificador", h.DeleteCategoria)
}
