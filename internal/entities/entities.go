package entities

import (
	"time"
)

// Author is a writer in the catalog. An author owns zero or more books;
// deleting an author removes all of them in the same transaction.
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Bio       string    `gorm:"type:text" json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Book always references an existing author. The association carries an
// ON DELETE CASCADE constraint so the store enforces the same invariant
// the repositories maintain transactionally.
type Book struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	AuthorID      uint      `gorm:"index;not null" json:"authorId"`
	Author        Author    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Description   string    `gorm:"type:text" json:"description"`
	PublishedYear *int      `json:"publishedYear,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Author) TableName() string {
	return "authors"
}

func (Book) TableName() string {
	return "books"
}
