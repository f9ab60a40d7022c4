package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"wallet-service/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the wallet rules registered
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a validator with the custom wallet rules.
// Field names in errors are taken from json tags.
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("category_id", validateCategoryID)
	_ = v.RegisterValidation("filter_action", validateFilterAction)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateTransactionType accepts income, expense and refunded
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateISODate accepts a YYYY-MM-DD calendar date
func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != len(models.DateLayout) {
		return false
	}
	_, err := time.Parse(models.DateLayout, value)
	return err == nil
}

func validateCategoryID(fl validator.FieldLevel) bool {
	return models.IsValidCategoryID(fl.Field().String())
}

func validateFilterAction(fl validator.FieldLevel) bool {
	return IsFilterActionName(fl.Field().String())
}

var filterActionNames = map[string]bool{
	models.ActionSetQuery:              true,
	models.ActionSetAmountMin:          true,
	models.ActionSetAmountMax:          true,
	models.ActionSetDateMin:            true,
	models.ActionSetDateMax:            true,
	models.ActionSetCategories:         true,
	models.ActionToggleCategory:        true,
	models.ActionSetTransactionType:    true,
	models.ActionAdvancePage:           true,
	models.ActionReset:                 true,
	models.ActionSetExactCategoryMatch: true,
}

// IsFilterActionName reports whether name is a known filter action
func IsFilterActionName(name string) bool {
	return filterActionNames[name]
}
