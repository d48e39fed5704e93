// Package validation holds the per-endpoint shape checks applied before
// any store mutation. Each check is a pure function returning pass/fail
// plus the human-readable reason used verbatim in error payloads.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dogmap/dogmap-api/internal/core/domain"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	passwordRe = regexp.MustCompile(`^[0-9]{6}$`)
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	// Custom tags: the corpus email tag is stricter than the contract
	// regex, and place types contain spaces so oneof cannot express them.
	_ = val.RegisterValidation("semail", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	_ = val.RegisterValidation("sixdigits", func(fl validator.FieldLevel) bool {
		return passwordRe.MatchString(fl.Field().String())
	})
	_ = val.RegisterValidation("placetype", func(fl validator.FieldLevel) bool {
		return domain.ValidPlaceType(fl.Field().String())
	})

	return val
}

// Email checks the standard local@domain.tld shape.
func Email(s string) (bool, string) {
	if err := v.Var(s, "required,semail"); err != nil {
		return false, "Formato de email inválido"
	}
	return true, ""
}

// Password checks for exactly 6 ASCII digits.
func Password(s string) (bool, string) {
	if err := v.Var(s, "required,sixdigits"); err != nil {
		return false, "A senha deve conter exatamente 6 dígitos numéricos"
	}
	return true, ""
}

// Rating checks the inclusive 1–5 range.
func Rating(r int) (bool, string) {
	if err := v.Var(r, "gte=1,lte=5"); err != nil {
		return false, "A nota deve ser um número inteiro entre 1 e 5"
	}
	return true, ""
}

// PlaceType checks membership in the fixed enumerated set.
func PlaceType(t string) (bool, string) {
	if err := v.Var(t, "required,placetype"); err != nil {
		return false, fmt.Sprintf("Tipo deve ser um dos seguintes: %s", strings.Join(domain.PlaceTypes, ", "))
	}
	return true, ""
}

// Pet checks that name, type and breed are all non-empty.
func Pet(p domain.Pet) (bool, string) {
	type petRules struct {
		Name  string `validate:"required"`
		Type  string `validate:"required"`
		Breed string `validate:"required"`
	}
	if err := v.Struct(petRules{Name: p.Name, Type: p.Type, Breed: p.Breed}); err != nil {
		return false, "Nome, tipo e raça do pet são obrigatórios"
	}
	return true, ""
}
