package services

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Inputs are validated before any store access. Update inputs use pointer
// fields: nil means "leave the field untouched", so omitting bio or
// description in a PATCH never clears it.

type CreateAuthorInput struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

func (in CreateAuthorInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.RuneLength(1, 100)),
	)
}

type UpdateAuthorInput struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
}

func (in UpdateAuthorInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.NilOrNotEmpty, validation.RuneLength(1, 100)),
	)
}

type CreateBookInput struct {
	Title         string `json:"title"`
	AuthorID      uint   `json:"authorId"`
	Description   string `json:"description"`
	PublishedYear *int   `json:"publishedYear"`
}

func (in CreateBookInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&in.AuthorID, validation.Required),
		validation.Field(&in.PublishedYear, validation.By(validPublishedYear)),
	)
}

type UpdateBookInput struct {
	Title         *string `json:"title"`
	AuthorID      *uint   `json:"authorId"`
	Description   *string `json:"description"`
	PublishedYear *int    `json:"publishedYear"`
}

func (in UpdateBookInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.NilOrNotEmpty, validation.RuneLength(1, 200)),
		validation.Field(&in.AuthorID, validation.NilOrNotEmpty),
		validation.Field(&in.PublishedYear, validation.By(validPublishedYear)),
	)
}

// validPublishedYear accepts an absent year, or one between 1 and the
// current year inclusive. Built-in threshold rules skip zero values,
// which would let publishedYear=0 through, hence the custom rule.
func validPublishedYear(value interface{}) error {
	var year int
	switch v := value.(type) {
	case *int:
		if v == nil {
			return nil
		}
		year = *v
	case int:
		year = v
	default:
		return nil
	}

	current := time.Now().Year()
	if year < 1 || year > current {
		return fmt.Errorf("must be between 1 and %d", current)
	}
	return nil
}
