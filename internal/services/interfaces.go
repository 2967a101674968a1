package services

import "github.com/bookclubhq/bookclub/internal/entities"

// AuthorStore provides durable storage for author records.
// Delete must remove the author's books atomically with the author itself.
type AuthorStore interface {
	Create(author *entities.Author) error
	GetByID(id uint) (*entities.Author, error)
	GetAll() ([]entities.Author, error)
	Update(author *entities.Author) error
	Delete(id uint) error
}

// BookStore provides durable storage for book records. Reads populate the
// owning author; writes enforce the author reference transactionally.
type BookStore interface {
	Create(book *entities.Book) error
	GetByID(id uint) (*entities.Book, error)
	GetAll() ([]entities.Book, error)
	Update(book *entities.Book) error
	Delete(id uint) error
}
