package validator

import (
	stderrors "errors"
	"fmt"
	"strings"

	apperrors "eventmap-api/core/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs go-playground/validator into echo's Validate hook.
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if stderrors.As(err, &errs) {
		fields := make([]string, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
		return apperrors.NewAppError(apperrors.ErrInvalidRequestData, strings.Join(fields, ", "), err)
	}
	return apperrors.NewAppError(apperrors.ErrInvalidRequestData, "invalid request data", err)
}
