package validator

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogcraft/internal/domain"
)

// Column limits of the blogs table.
const (
	MaxTitleLength    = 255
	MaxImageURLLength = 500
)

var allowedImageExtensions = []interface{}{"png", "jpg", "jpeg", "gif"}

// Validator provides validation methods for client input.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUploadFilename checks the declared filename of an uploaded image and
// returns its lowercase extension. Failures are domain.ErrEmptyFilename or
// domain.ErrDisallowedType.
func (v *Validator) ValidateUploadFilename(filename string) (string, error) {
	err := validation.Validate(filename,
		validation.Required.ErrorObject(validation.NewError(domain.ErrEmptyFilename.Code, domain.ErrEmptyFilename.Message)),
	)
	if err != nil {
		return "", toValidationError(err)
	}

	ext := Extension(filename)
	err = validation.Validate(ext,
		validation.Required.ErrorObject(validation.NewError(domain.ErrDisallowedType.Code, domain.ErrDisallowedType.Message)),
		validation.In(allowedImageExtensions...).ErrorObject(validation.NewError(domain.ErrDisallowedType.Code, domain.ErrDisallowedType.Message)),
	)
	if err != nil {
		return "", toValidationError(err)
	}
	return ext, nil
}

// ValidateBlogFields checks the column limits of the present fields.
func (v *Validator) ValidateBlogFields(f domain.BlogFields) error {
	imageURL := ""
	if f.ImageURL.Value != nil {
		imageURL = *f.ImageURL.Value
	}

	err := validation.Errors{
		"title": validation.Validate(f.Title.Value,
			validation.RuneLength(0, MaxTitleLength).Error("title must be at most 255 characters"),
		),
		"image_url": validation.Validate(imageURL,
			validation.RuneLength(0, MaxImageURLLength).Error("image_url must be at most 500 characters"),
		),
	}.Filter()
	if err != nil {
		return toValidationError(err)
	}
	return nil
}

// Extension returns the lowercase substring after the last '.', or "" when
// the name has no dot.
func Extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// toValidationError converts ozzo validation errors to a domain.ValidationError.
// For per-field errors the first field in alphabetical order wins.
func toValidationError(err error) error {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for field := range fieldErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			if fieldErr := fieldErrs[field]; fieldErr != nil {
				code := "invalid_" + field
				var ve validation.Error
				if errors.As(fieldErr, &ve) && ve.Code() != "" {
					code = ve.Code()
				}
				return domain.NewValidationError(code, fieldErr.Error())
			}
		}
	}

	var ve validation.Error
	if errors.As(err, &ve) {
		return domain.NewValidationError(ve.Code(), ve.Error())
	}
	return domain.NewValidationError("invalid_input", err.Error())
}
