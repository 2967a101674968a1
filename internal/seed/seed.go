// Package seed resets the database and loads the demo catalog.
package seed

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/bookclubhq/bookclub/internal/database"
	"github.com/bookclubhq/bookclub/internal/entities"
)

func intPtr(v int) *int { return &v }

// Run clears both tables and inserts the demo authors and books. Everything
// happens in one transaction so a failed seed leaves the database untouched.
func Run(db *database.Database) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		// Books first so no book ever references a deleted author.
		if err := tx.Where("1 = 1").Delete(&entities.Book{}).Error; err != nil {
			return fmt.Errorf("failed to clear books: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&entities.Author{}).Error; err != nil {
			return fmt.Errorf("failed to clear authors: %w", err)
		}
		log.Printf("Existing data cleared")

		authors := []entities.Author{
			{
				Name: "J.K. Rowling",
				Bio:  "British author, best known for the Harry Potter series.",
			},
			{
				Name: "George Orwell",
				Bio:  "English novelist and essayist, known for 1984 and Animal Farm.",
			},
			{
				Name: "Jane Austen",
				Bio:  "English novelist known for her works of romantic fiction.",
			},
		}
		if err := tx.Create(&authors).Error; err != nil {
			return fmt.Errorf("failed to seed authors: %w", err)
		}
		log.Printf("Authors seeded")

		books := []entities.Book{
			{
				Title:         "Harry Potter and the Philosopher's Stone",
				Description:   "The first book in the Harry Potter series.",
				PublishedYear: intPtr(1997),
				AuthorID:      authors[0].ID,
			},
			{
				Title:         "Harry Potter and the Chamber of Secrets",
				Description:   "The second book in the Harry Potter series.",
				PublishedYear: intPtr(1998),
				AuthorID:      authors[0].ID,
			},
			{
				Title:         "1984",
				Description:   "A dystopian social science fiction novel.",
				PublishedYear: intPtr(1949),
				AuthorID:      authors[1].ID,
			},
			{
				Title:         "Animal Farm",
				Description:   "A satirical allegorical novella.",
				PublishedYear: intPtr(1945),
				AuthorID:      authors[1].ID,
			},
			{
				Title:         "Pride and Prejudice",
				Description:   "A romantic novel of manners.",
				PublishedYear: intPtr(1813),
				AuthorID:      authors[2].ID,
			},
		}
		if err := tx.Omit("Author").Create(&books).Error; err != nil {
			return fmt.Errorf("failed to seed books: %w", err)
		}
		log.Printf("Books seeded")

		return nil
	})
}
