package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/madr/internal/entities"
	"github.com/mrlokans/madr/internal/services"
)

const msgAuthorDeleted = "Romancista deletada no MADR"

var errNameQueryRequired = errors.New("query parameter nome is required")

type authorRequest struct {
	Name string `json:"nome" binding:"required"`
}

type authorSearchQuery struct {
	Page int `form:"page" binding:"omitempty,min=1"`
	Size int `form:"size" binding:"omitempty,min=1"`
}

// AuthorListResponse is the body of an author search.
type AuthorListResponse struct {
	Authors []entities.Author `json:"romancistas"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	Size    int               `json:"size"`
	Pages   int               `json:"pages"`
}

type AuthorsController struct {
	service AuthorService
}

func NewAuthorsController(service AuthorService) *AuthorsController {
	return &AuthorsController{service: service}
}

func (ac *AuthorsController) Create(c *gin.Context) {
	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	author, err := ac.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, author)
}

func (ac *AuthorsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := ac.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, author)
}

func (ac *AuthorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	author, err := ac.service.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, author)
}

func (ac *AuthorsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, msgAuthorDeleted)
}

// Search lists authors whose name contains ?nome=. The parameter must be
// present but may be empty.
func (ac *AuthorsController) Search(c *gin.Context) {
	name, present := c.GetQuery("nome")
	if !present {
		respondValidation(c, errNameQueryRequired)
		return
	}

	var q authorSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondValidation(c, err)
		return
	}

	page, err := ac.service.Search(c.Request.Context(), name, services.PageRequest{Page: q.Page, Size: q.Size})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthorListResponse{
		Authors: page.Items,
		Total:   page.Total,
		Page:    page.Page,
		Size:    page.Size,
		Pages:   page.Pages,
	})
}
