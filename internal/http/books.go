package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookclubhq/bookclub/internal/database/books"
	"github.com/bookclubhq/bookclub/internal/services"
)

type BooksController struct {
	service *services.BookService
}

func NewBooksController(service *services.BookService) *BooksController {
	return &BooksController{service: service}
}

// List returns all books with their authors embedded
// GET /books
func (bc *BooksController) List(c *gin.Context) {
	all, err := bc.service.List()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, all)
}

// Get returns a single book with its author embedded
// GET /books/:id
func (bc *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.service.Get(id)
	if errors.Is(err, books.ErrNotFound) {
		respondNotFound(c, bookNotFoundMessage(id))
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// Create adds a new book
// POST /books
func (bc *BooksController) Create(c *gin.Context) {
	var input services.CreateBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := bc.service.Create(input)
	if err != nil {
		if respondValidationError(c, err) {
			return
		}
		var missingAuthor *books.AuthorNotFoundError
		if errors.As(err, &missingAuthor) {
			respondBadRequest(c, authorDoesNotExistMessage(missingAuthor.AuthorID))
			return
		}
		respondInternalError(c, err, "create book")
		return
	}
	c.JSON(http.StatusCreated, book)
}

// Update applies a partial update to a book
// PATCH /books/:id
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := bc.service.Update(id, input)
	if err != nil {
		if respondValidationError(c, err) {
			return
		}
		if errors.Is(err, books.ErrNotFound) {
			respondNotFound(c, bookNotFoundMessage(id))
			return
		}
		var missingAuthor *books.AuthorNotFoundError
		if errors.As(err, &missingAuthor) {
			respondBadRequest(c, authorDoesNotExistMessage(missingAuthor.AuthorID))
			return
		}
		respondInternalError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// Delete removes a book
// DELETE /books/:id
func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := bc.service.Delete(id)
	if errors.Is(err, books.ErrNotFound) {
		respondNotFound(c, bookNotFoundMessage(id))
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}

func bookNotFoundMessage(id uint) string {
	return fmt.Sprintf("Book with ID %d not found", id)
}

func authorDoesNotExistMessage(id uint) string {
	return fmt.Sprintf("Author with ID %d does not exist", id)
}
