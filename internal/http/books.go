package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/madr/internal/entities"
	"github.com/mrlokans/madr/internal/services"
)

const msgBookDeleted = "Livro deletado no MADR"

type bookRequest struct {
	Title    string `json:"titulo" binding:"required"`
	Year     int    `json:"ano" binding:"required"`
	AuthorID uint   `json:"romancista_id" binding:"required"`
}

// bookPatchRequest leaves absent (or null) fields untouched.
type bookPatchRequest struct {
	Title    *string `json:"titulo"`
	Year     *int    `json:"ano"`
	AuthorID *uint   `json:"romancista_id" binding:"omitempty,min=1"`
}

type bookSearchQuery struct {
	Title string `form:"titulo"`
	Year  int    `form:"ano"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Size  int    `form:"size" binding:"omitempty,min=1"`
}

// BookListResponse is the body of a book search.
type BookListResponse struct {
	Items []entities.Book `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Pages int             `json:"pages"`
}

type BooksController struct {
	service BookService
}

func NewBooksController(service BookService) *BooksController {
	return &BooksController{service: service}
}

func (bc *BooksController) Create(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	book, err := bc.service.Create(c.Request.Context(), req.Title, req.Year, req.AuthorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

func (bc *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req bookPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	book, err := bc.service.Update(c.Request.Context(), id, entities.BookUpdate{
		Title:    req.Title,
		Year:     req.Year,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, msgBookDeleted)
}

// Search lists books filtered by ?titulo= and ?ano=, both optional.
func (bc *BooksController) Search(c *gin.Context) {
	var q bookSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondValidation(c, err)
		return
	}

	page, err := bc.service.Search(c.Request.Context(), services.BookFilter{
		Title: q.Title,
		Year:  q.Year,
	}, services.PageRequest{Page: q.Page, Size: q.Size})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, BookListResponse{
		Items: page.Items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
		Pages: page.Pages,
	})
}
