// Package books provides database operations for book records. Every read
// joins the owning author; every write verifies the author reference inside
// the same transaction as the mutation, so a dangling authorId can never be
// persisted, not even transiently.
package books

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookclubhq/bookclub/internal/entities"
)

var (
	// ErrNotFound is returned when no book exists with the requested ID.
	ErrNotFound = errors.New("book not found")

	// ErrAuthorNotFound is returned when a write references an author
	// that does not exist. Nothing is persisted in that case.
	ErrAuthorNotFound = errors.New("book author not found")
)

// AuthorNotFoundError carries the author ID a failed write referenced.
// It matches ErrAuthorNotFound in errors.Is checks.
type AuthorNotFoundError struct {
	AuthorID uint
}

func (e *AuthorNotFoundError) Error() string {
	return fmt.Sprintf("author %d not found", e.AuthorID)
}

func (e *AuthorNotFoundError) Is(target error) bool {
	return target == ErrAuthorNotFound
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book after verifying its author exists. The check and
// the insert share one transaction, so there is no window for the author to
// disappear between them.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := authorExists(tx, book.AuthorID); err != nil {
			return err
		}
		// Omit keeps GORM from upserting the embedded Author association.
		return tx.Omit("Author").Create(book).Error
	})
}

// GetByID retrieves a book with its author populated.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAll retrieves every book with authors populated, in primary key order.
func (r *Repository) GetAll() ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := r.db.Preload("Author").Order("id").Find(&books).Error
	return books, err
}

// Update persists the full book row, re-verifying the author reference in
// the same transaction.
func (r *Repository) Update(book *entities.Book) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := authorExists(tx, book.AuthorID); err != nil {
			return err
		}
		return tx.Omit("Author").Save(book).Error
	})
}

// Delete removes a book. Books own nothing, so no cascade is needed.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func authorExists(tx *gorm.DB, authorID uint) error {
	var count int64
	if err := tx.Model(&entities.Author{}).Where("id = ?", authorID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &AuthorNotFoundError{AuthorID: authorID}
	}
	return nil
}
