// api/util/validation_util.go

package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// ValidateStruct checks validate tags and reports the first failures as a ValidationError.
func (v *ValidationUtil) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return etmf_errors.Wrap(etmf_errors.ErrValidation, err, "invalid input")
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return etmf_errors.Validation("%s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have length %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

func (v *ValidationUtil) ValidateDocument(doc model.Document) error {
	if err := v.ValidateStruct(doc); err != nil {
		return err
	}
	if strings.TrimSpace(doc.Title) == "" {
		return etmf_errors.Validation("title cannot be blank")
	}
	return model.ValidateFileSize(doc.File.Size)
}

func (v *ValidationUtil) ValidateTrial(trial model.Trial) error {
	if err := v.ValidateStruct(trial); err != nil {
		return err
	}
	return model.ValidateTrialDates(trial.StartDate, trial.EndDate)
}

func (v *ValidationUtil) ValidateWorkflow(wf model.Workflow) error {
	return v.ValidateStruct(wf)
}
