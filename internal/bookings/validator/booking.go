package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/logger"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	// Report wire field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &BookingValidator{
		validate: v,
		log:      log,
	}
}

// ValidateAndBuild checks field presence on a submission and turns it into a
// fully populated record: fresh UUID, current UTC instant, pending status.
// Empty strings are present values and pass; only missing keys fail.
func (v *BookingValidator) ValidateAndBuild(input *model.BookingCreate) (*model.Booking, error) {
	if err := v.validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, v.translateValidationErrors(validationErrs)
		}
		return nil, err
	}

	return &model.Booking{
		ID:        uuid.NewString(),
		Name:      *input.Name,
		Email:     *input.Email,
		Phone:     *input.Phone,
		Vehicle:   *input.Vehicle,
		Service:   *input.Service,
		Message:   input.Message,
		Timestamp: time.Now().UTC(),
		Status:    model.StatusPending,
	}, nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
