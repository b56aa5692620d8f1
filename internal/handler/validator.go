package handler

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dhanushlnaik/mimisanv2/internal/reward"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("casino_game", validateCasinoGame)
	_ = v.RegisterValidation("dungeon_rank", validateDungeonRank)
	_ = v.RegisterValidation("positive_bigint", validatePositiveBigInt)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lowercased field name, without leaking struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "casino_game":
			errs[field] = "Must be one of coinflip, slots"
		case "dungeon_rank":
			errs[field] = "Must be one of E, C, B, A, S"
		case "positive_bigint":
			errs[field] = "Must be a positive whole number"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "nefield":
			errs[field] = fmt.Sprintf("Must differ from %s", strings.ToLower(e.Param()))
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateCasinoGame(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case reward.GameCoinflip, reward.GameSlots:
		return true
	default:
		return false
	}
}

func validateDungeonRank(fl validator.FieldLevel) bool {
	_, err := reward.ParseRank(fl.Field().String())
	return err == nil
}

func validatePositiveBigInt(fl validator.FieldLevel) bool {
	n, ok := new(big.Int).SetString(fl.Field().String(), 10)
	return ok && n.Sign() > 0
}
