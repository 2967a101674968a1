// Package authors provides database operations for author records,
// including the cascading delete that keeps books from being orphaned.
package authors

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bookclubhq/bookclub/internal/entities"
)

// ErrNotFound is returned when no author exists with the requested ID.
var ErrNotFound = errors.New("author not found")

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new author. The store assigns ID and timestamps.
func (r *Repository) Create(author *entities.Author) error {
	return r.db.Create(author).Error
}

// GetByID retrieves an author by its ID.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAll retrieves every author in primary key order.
func (r *Repository) GetAll() ([]entities.Author, error) {
	authors := make([]entities.Author, 0)
	err := r.db.Order("id").Find(&authors).Error
	return authors, err
}

// Update persists the full author row and refreshes UpdatedAt.
func (r *Repository) Update(author *entities.Author) error {
	return r.db.Save(author).Error
}

// Delete removes an author and every book it owns in a single transaction.
// There is no state in which the author is gone but a book still references it.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&entities.Book{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Author{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
