package services

import (
	"strings"

	"github.com/bookclubhq/bookclub/internal/entities"
)

// BookService implements CRUD over book records. It does not pre-check
// author existence itself: the store performs that check inside the same
// transaction as the write, which avoids a race between check and insert.
type BookService struct {
	store BookStore
}

func NewBookService(store BookStore) *BookService {
	return &BookService{store: store}
}

// Create validates the input and inserts a new book. The returned book has
// its author populated.
func (s *BookService) Create(in CreateBookInput) (*entities.Book, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	book := &entities.Book{
		Title:         in.Title,
		AuthorID:      in.AuthorID,
		Description:   in.Description,
		PublishedYear: in.PublishedYear,
	}
	if err := s.store.Create(book); err != nil {
		return nil, err
	}
	// Reload so the response embeds the owning author.
	return s.store.GetByID(book.ID)
}

// List returns every book with its author populated.
func (s *BookService) List() ([]entities.Book, error) {
	return s.store.GetAll()
}

// Get returns the book with the given ID, author populated, or
// books.ErrNotFound.
func (s *BookService) Get(id uint) (*entities.Book, error) {
	return s.store.GetByID(id)
}

// Update applies the fields present in the input over the stored book.
// A present authorId moves the book to that author, subject to the store's
// reference check.
func (s *BookService) Update(id uint, in UpdateBookInput) (*entities.Book, error) {
	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		in.Title = &trimmed
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	book, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		book.Title = *in.Title
	}
	if in.AuthorID != nil {
		book.AuthorID = *in.AuthorID
	}
	if in.Description != nil {
		book.Description = *in.Description
	}
	if in.PublishedYear != nil {
		book.PublishedYear = in.PublishedYear
	}

	if err := s.store.Update(book); err != nil {
		return nil, err
	}
	return s.store.GetByID(book.ID)
}

// Delete removes the book.
func (s *BookService) Delete(id uint) error {
	return s.store.Delete(id)
}
