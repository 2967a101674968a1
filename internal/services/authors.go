// Package services implements the author and book services: input
// validation, partial-update merging, and orchestration over the store
// interfaces. Errors from the stores pass through untranslated so the HTTP
// layer can map them to status codes.
package services

import (
	"strings"

	"github.com/bookclubhq/bookclub/internal/entities"
)

// AuthorService implements CRUD over author records.
type AuthorService struct {
	store AuthorStore
}

func NewAuthorService(store AuthorStore) *AuthorService {
	return &AuthorService{store: store}
}

// Create validates the input and inserts a new author.
func (s *AuthorService) Create(in CreateAuthorInput) (*entities.Author, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	author := &entities.Author{
		Name: in.Name,
		Bio:  in.Bio,
	}
	if err := s.store.Create(author); err != nil {
		return nil, err
	}
	return author, nil
}

// List returns every author.
func (s *AuthorService) List() ([]entities.Author, error) {
	return s.store.GetAll()
}

// Get returns the author with the given ID, or authors.ErrNotFound.
func (s *AuthorService) Get(id uint) (*entities.Author, error) {
	return s.store.GetByID(id)
}

// Update applies the fields present in the input over the stored author.
// Omitted fields keep their prior values; UpdatedAt always refreshes.
func (s *AuthorService) Update(id uint, in UpdateAuthorInput) (*entities.Author, error) {
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	author, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		author.Name = *in.Name
	}
	if in.Bio != nil {
		author.Bio = *in.Bio
	}

	if err := s.store.Update(author); err != nil {
		return nil, err
	}
	return author, nil
}

// Delete removes the author and, atomically, every book it owns.
func (s *AuthorService) Delete(id uint) error {
	return s.store.Delete(id)
}
