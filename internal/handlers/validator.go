package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"wallet-service/internal/errors"
	"wallet-service/internal/services"
	"wallet-service/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns an echo validator backed by the shared wallet rules
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator().GetValidate()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// sendValidationError logs the failure and renders validator field errors as VALIDATION_001 details
func sendValidationError(c echo.Context, err error) error {
	logger := services.NewWalletLogger(slog.Default())
	operation := c.Request().Method + " " + c.Path()

	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		logger.LogValidationFailure(c.Request().Context(), operation, err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	fieldErrors := FieldErrorMessages(validationErrors)
	logger.LogValidationFailure(c.Request().Context(), operation, summarizeFieldErrors(fieldErrors))

	response := errors.NewValidationError(fieldErrors, getTraceID(c))
	return c.JSON(response.GetHTTPStatus(), response)
}

func summarizeFieldErrors(fieldErrors map[string]string) string {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+fieldErrors[field])
	}
	return strings.Join(parts, "; ")
}

// FieldErrorMessages maps each failing field to a readable message
func FieldErrorMessages(validationErrors validator.ValidationErrors) map[string]string {
	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = describeFieldError(fe)
	}
	return fieldErrors
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "iso_date":
		return "must be a YYYY-MM-DD date"
	case "transaction_type":
		return "must be one of income, expense, refunded"
	case "category_id":
		return "is not a valid category id"
	case "filter_action":
		return "is not a known filter action"
	case "numeric":
		return "must be numeric"
	case "uuid":
		return "must be a UUID"
	case "email":
		return "must be an email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
