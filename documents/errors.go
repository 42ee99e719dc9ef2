package documents

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError points at a single offending payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports missing or malformed payload fields. It is raised
// before any rendering begins; no partial document exists when it is
// returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid payload"
	}
	return fmt.Sprintf("invalid payload: %s %s", e.Fields[0].Field, e.Fields[0].Message)
}

func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []FieldError{{Message: err.Error()}}}
	}

	flds := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		flds = append(flds, FieldError{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed %q validation", fe.Tag()),
		})
	}
	return &ValidationError{Fields: flds}
}

// ErrRenderFailed wraps a double failure: both the full and the minimal
// render paths errored. The caller should surface it as a server error.
var ErrRenderFailed = errors.New("document generation failed")
