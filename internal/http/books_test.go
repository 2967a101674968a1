package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookclubhq/bookclub/internal/entities"
)

func createBookViaAPI(t *testing.T, router *gin.Engine, title string, authorID uint) entities.Book {
	t.Helper()
	w := performRequest(router, http.MethodPost, "/books", gin.H{
		"title":    title,
		"authorId": authorID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var book entities.Book
	decodeJSON(t, w, &book)
	return book
}

func TestBooks_List_Empty(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	w := performRequest(router, http.MethodGet, "/books", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var all []entities.Book
	decodeJSON(t, w, &all)
	assert.Empty(t, all)
}

func TestBooks_Create(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	author := createAuthorViaAPI(t, router, "George Orwell", "English novelist.")

	w := performRequest(router, http.MethodPost, "/books", gin.H{
		"title":         "1984",
		"authorId":      author.ID,
		"description":   "A dystopian novel.",
		"publishedYear": 1949,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var book entities.Book
	decodeJSON(t, w, &book)
	assert.NotZero(t, book.ID)
	assert.Equal(t, "1984", book.Title)
	assert.Equal(t, author.ID, book.AuthorID)
	require.NotNil(t, book.PublishedYear)
	assert.Equal(t, 1949, *book.PublishedYear)

	// The response embeds the owning author.
	assert.Equal(t, "George Orwell", book.Author.Name)
}

func TestBooks_Create_EmptyDescriptionStaysInResponse(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	author := createAuthorViaAPI(t, router, "Author", "")

	w := performRequest(router, http.MethodPost, "/books", gin.H{
		"title":    "Bare",
		"authorId": author.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// The field is always serialized, even when empty.
	assert.Contains(t, w.Body.String(), `"description":""`)
}

func TestBooks_Create_AuthorDoesNotExist(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	w := performRequest(router, http.MethodPost, "/books", gin.H{
		"title":    "Orphan",
		"authorId": 999,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Author with ID 999 does not exist", resp.Message)
}

func TestBooks_Create_Invalid(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	author := createAuthorViaAPI(t, router, "Author", "")

	cases := []struct {
		name  string
		body  gin.H
		field string
	}{
		{"missing title", gin.H{"authorId": author.ID}, "title"},
		{"missing authorId", gin.H{"title": "No Owner"}, "authorId"},
		{"zero year", gin.H{"title": "Yearly", "authorId": author.ID, "publishedYear": 0}, "publishedYear"},
		{"future year", gin.H{"title": "Yearly", "authorId": author.ID, "publishedYear": 9999}, "publishedYear"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/books", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			decodeJSON(t, w, &resp)
			assert.Equal(t, "Validation failed", resp.Message)
			assert.Contains(t, resp.Errors, tc.field)
		})
	}
}

func TestBooks_Get(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	author := createAuthorViaAPI(t, router, "Jane Austen", "")
	created := createBookViaAPI(t, router, "Pride and Prejudice", author.ID)

	w := performRequest(router, http.MethodGet, fmt.Sprintf("/books/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var book entities.Book
	decodeJSON(t, w, &book)
	assert.Equal(t, "Pride and Prejudice", book.Title)
	assert.Equal(t, "Jane Austen", book.Author.Name)
}

func TestBooks_Get_NotFound(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	w := performRequest(router, http.MethodGet, "/books/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Book with ID 42 not found", resp.Message)
}

func TestBooks_Update_Partial(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	author := createAuthorViaAPI(t, router, "Author", "")
	created := createBookViaAPI(t, router, "Old Title", author.ID)

	w := performRequest(router, http.MethodPatch, fmt.Sprintf("/books/%d", created.ID), gin.H{
		"title": "New Title",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var book entities.Book
	decodeJSON(t, w, &book)
	assert.Equal(t, "New Title", book.Title)
	assert.Equal(t, author.ID, book.AuthorID)
}

func TestBooks_Update_MoveToOtherAuthor(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	first := createAuthorViaAPI(t, router, "First", "")
	second := createAuthorViaAPI(t, router, "Second", "")
	created := createBookViaAPI(t, router, "Wanderer", first.ID)

	w := performRequest(router, http.MethodPatch, fmt.Sprintf("/books/%d", created.ID), gin.H{
		"authorId": second.ID,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var book entities.Book
	decodeJSON(t, w, &book)
	assert.Equal(t, second.ID, book.AuthorID)
	assert.Equal(t, "Second", book.Author.Name)
}

func TestBooks_Update_AuthorDoesNotExist(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	author := createAuthorViaAPI(t, router, "Author", "")
	created := createBookViaAPI(t, router, "Stays", author.ID)

	w := performRequest(router, http.MethodPatch, fmt.Sprintf("/books/%d", created.ID), gin.H{
		"authorId": 999,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Author with ID 999 does not exist", resp.Message)
}

func TestBooks_Update_NotFound(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	w := performRequest(router, http.MethodPatch, "/books/42", gin.H{"title": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Book with ID 42 not found", resp.Message)
}

func TestBooks_Delete(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	author := createAuthorViaAPI(t, router, "Author", "")
	created := createBookViaAPI(t, router, "Gone", author.ID)

	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/books/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(router, http.MethodGet, fmt.Sprintf("/books/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The author survives its book.
	w = performRequest(router, http.MethodGet, fmt.Sprintf("/authors/%d", author.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBooks_Delete_NotFound(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	w := performRequest(router, http.MethodDelete, "/books/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooks_ReassignThenDeleteOriginalAuthor(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	original := createAuthorViaAPI(t, router, "Original", "")
	adopter := createAuthorViaAPI(t, router, "Adopter", "")
	book := createBookViaAPI(t, router, "Adopted", original.ID)

	w := performRequest(router, http.MethodPatch, fmt.Sprintf("/books/%d", book.ID), gin.H{
		"authorId": adopter.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodDelete, fmt.Sprintf("/authors/%d", original.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The reassigned book survives the cascade.
	w = performRequest(router, http.MethodGet, fmt.Sprintf("/books/%d", book.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var found entities.Book
	decodeJSON(t, w, &found)
	assert.Equal(t, adopter.ID, found.AuthorID)
	assert.Equal(t, "Adopter", found.Author.Name)
}
