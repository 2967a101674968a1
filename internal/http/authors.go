package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookclubhq/bookclub/internal/database/authors"
	"github.com/bookclubhq/bookclub/internal/services"
)

type AuthorsController struct {
	service *services.AuthorService
}

func NewAuthorsController(service *services.AuthorService) *AuthorsController {
	return &AuthorsController{service: service}
}

// List returns all authors
// GET /authors
func (ac *AuthorsController) List(c *gin.Context) {
	all, err := ac.service.List()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.JSON(http.StatusOK, all)
}

// Get returns a single author
// GET /authors/:id
func (ac *AuthorsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := ac.service.Get(id)
	if errors.Is(err, authors.ErrNotFound) {
		respondNotFound(c, authorNotFoundMessage(id))
		return
	}
	if err != nil {
		respondInternalError(c, err, "get author")
		return
	}
	c.JSON(http.StatusOK, author)
}

// Create adds a new author
// POST /authors
func (ac *AuthorsController) Create(c *gin.Context) {
	var input services.CreateAuthorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	author, err := ac.service.Create(input)
	if err != nil {
		if respondValidationError(c, err) {
			return
		}
		respondInternalError(c, err, "create author")
		return
	}
	c.JSON(http.StatusCreated, author)
}

// Update applies a partial update to an author
// PATCH /authors/:id
func (ac *AuthorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateAuthorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	author, err := ac.service.Update(id, input)
	if err != nil {
		if respondValidationError(c, err) {
			return
		}
		if errors.Is(err, authors.ErrNotFound) {
			respondNotFound(c, authorNotFoundMessage(id))
			return
		}
		respondInternalError(c, err, "update author")
		return
	}
	c.JSON(http.StatusOK, author)
}

// Delete removes an author and all of its books
// DELETE /authors/:id
func (ac *AuthorsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := ac.service.Delete(id)
	if errors.Is(err, authors.ErrNotFound) {
		respondNotFound(c, authorNotFoundMessage(id))
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete author")
		return
	}
	c.Status(http.StatusNoContent)
}

func authorNotFoundMessage(id uint) string {
	return fmt.Sprintf("Author with ID %d not found", id)
}
