package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalog(t *testing.T) (*testServer, string) {
	t.Helper()
	s := setupTestServer(t)
	_, token := s.registerAndLogin("alice", "alice@example.com")

	for _, name := range []string{"Machado de Assis", "Clarice Lispector"} {
		w := s.do(http.MethodPost, "/romancistas/", token, gin.H{"nome": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	books := []gin.H{
		{"titulo": "Dom Casmurro", "ano": 1899, "romancista_id": 1},
		{"titulo": "Quincas Borba", "ano": 1891, "romancista_id": 1},
		{"titulo": "Memórias Póstumas de Brás Cubas", "ano": 1881, "romancista_id": 1},
		{"titulo": "A Hora da Estrela", "ano": 1977, "romancista_id": 2},
	}
	for _, book := range books {
		w := s.do(http.MethodPost, "/livros/", token, book)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	return s, token
}

func TestBooks_GetAndDelete(t *testing.T) {
	s, token := setupCatalog(t)

	w := s.do(http.MethodGet, "/livros/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"titulo":"dom casmurro","ano":1899,"romancista_id":1}`, w.Body.String())

	w = s.do(http.MethodGet, "/livros/99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Livro não consta no MADR"}`, w.Body.String())

	w = s.do(http.MethodGet, "/livros/4294967296", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "ids beyond 32 bits are looked up, not rejected")

	w = s.do(http.MethodDelete, "/livros/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Livro deletado no MADR"}`, w.Body.String())

	w = s.do(http.MethodDelete, "/livros/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooks_PartialUpdate(t *testing.T) {
	s, token := setupCatalog(t)

	w := s.do(http.MethodPatch, "/livros/1", token, gin.H{"ano": 1900})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"titulo":"dom casmurro","ano":1900,"romancista_id":1}`, w.Body.String())

	w = s.do(http.MethodPatch, "/livros/1", token, gin.H{"titulo": "Dom  Casmurro!!", "romancista_id": 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"titulo":"dom casmurro","ano":1900,"romancista_id":2}`, w.Body.String())

	w = s.do(http.MethodPatch, "/livros/2", token, gin.H{"titulo": "memórias póstumas de brás cubas"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPatch, "/livros/2", token, gin.H{"romancista_id": 99})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"romancista não encontrado"}`, w.Body.String())

	w = s.do(http.MethodPatch, "/livros/99", token, gin.H{"ano": 2000})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooks_CreateValidation(t *testing.T) {
	s, token := setupCatalog(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing title", gin.H{"ano": 1900, "romancista_id": 1}},
		{"missing author", gin.H{"titulo": "x", "ano": 1900}},
		{"title of punctuation only", gin.H{"titulo": "?!", "ano": 1900, "romancista_id": 1}},
		{"wrong type", gin.H{"titulo": "x", "ano": "mil", "romancista_id": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/livros/", token, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
}

func TestBooks_Search(t *testing.T) {
	s, _ := setupCatalog(t)

	tests := []struct {
		name      string
		query     string
		wantTotal int64
		wantPages int
		wantSize  int
		wantLen   int
	}{
		{"all", "", 4, 1, 20, 4},
		{"title", "?titulo=CASMURRO", 1, 1, 20, 1},
		{"year", "?ano=1891", 1, 1, 20, 1},
		{"title and year", "?titulo=a&ano=1977", 1, 1, 20, 1},
		{"paged", "?size=3&page=2", 4, 2, 3, 1},
		{"none", "?titulo=iracema", 0, 0, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodGet, "/livros/"+tt.query, "", nil)
			require.Equal(t, http.StatusOK, w.Code)

			var body BookListResponse
			decode(t, w, &body)
			assert.Equal(t, tt.wantTotal, body.Total)
			assert.Equal(t, tt.wantPages, body.Pages)
			assert.Equal(t, tt.wantSize, body.Size)
			assert.Len(t, body.Items, tt.wantLen)
		})
	}

	w := s.do(http.MethodGet, "/livros/?ano=abc", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
