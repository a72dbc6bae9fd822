package validators

import (
	"context"
	"strings"

	"github.com/readreview/book-stack/models"
)

const (
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldDescription = "description"
	FieldBody        = "body"
)

// ContentValidator implements the Validator interface for catalogue
// content: BookInput and ReviewInput. Fields are trimmed before the
// presence check so whitespace-only values are rejected.
type ContentValidator struct {
}

func NewContentValidator() Validator {
	return &ContentValidator{}
}

func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BookInput:
		return v.validateBookInput(ctx, value, fields...)
	case *models.BookInput:
		return v.validateBookInput(ctx, *value, fields...)

	case models.ReviewInput:
		return v.validateReviewInput(ctx, value, fields...)
	case *models.ReviewInput:
		return v.validateReviewInput(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContentValidator) validateBookInput(_ context.Context, input models.BookInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldAuthor, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(input.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldAuthor:
			if strings.TrimSpace(input.Author) == "" {
				return ErrEmptyAuthor
			}
		case FieldDescription:
			if strings.TrimSpace(input.Description) == "" {
				return ErrEmptyDescription
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContentValidator) validateReviewInput(_ context.Context, input models.ReviewInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldBody:
			if strings.TrimSpace(input.Body) == "" {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
