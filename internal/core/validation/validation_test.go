package validation

import (
	"strings"
	"testing"

	"github.com/dogmap/dogmap-api/internal/core/domain"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"manu.fraga@email.com",
		"a@b.co",
		"user+tag@sub.domain.org",
	}
	for _, s := range valid {
		if ok, _ := Email(s); !ok {
			t.Fatalf("expected %q to be valid", s)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"no-domain@",
		"no-tld@domain",
		"spaces in@email.com",
		"two@@email.com",
	}
	for _, s := range invalid {
		ok, reason := Email(s)
		if ok {
			t.Fatalf("expected %q to be invalid", s)
		}
		if reason != "Formato de email inválido" {
			t.Fatalf("unexpected reason: %q", reason)
		}
	}
}

func TestPassword(t *testing.T) {
	if ok, _ := Password("123456"); !ok {
		t.Fatalf("expected 123456 to be valid")
	}
	if ok, _ := Password("000000"); !ok {
		t.Fatalf("expected 000000 to be valid")
	}

	for _, s := range []string{"", "12345", "1234567", "12345a", "abcdef", " 123456"} {
		ok, reason := Password(s)
		if ok {
			t.Fatalf("expected %q to be invalid", s)
		}
		if reason != "A senha deve conter exatamente 6 dígitos numéricos" {
			t.Fatalf("unexpected reason: %q", reason)
		}
	}
}

func TestRating(t *testing.T) {
	for r := 1; r <= 5; r++ {
		if ok, _ := Rating(r); !ok {
			t.Fatalf("expected rating %d to be valid", r)
		}
	}
	for _, r := range []int{0, -1, 6, 100} {
		ok, reason := Rating(r)
		if ok {
			t.Fatalf("expected rating %d to be invalid", r)
		}
		if reason != "A nota deve ser um número inteiro entre 1 e 5" {
			t.Fatalf("unexpected reason: %q", reason)
		}
	}
}

func TestPlaceType(t *testing.T) {
	for _, pt := range domain.PlaceTypes {
		if ok, _ := PlaceType(pt); !ok {
			t.Fatalf("expected %q to be valid", pt)
		}
	}

	// Membership is exact: no case folding, no substrings.
	for _, s := range []string{"", "parque", "Pet shop", "Cemitério", "Par"} {
		ok, reason := PlaceType(s)
		if ok {
			t.Fatalf("expected %q to be invalid", s)
		}
		if !strings.HasPrefix(reason, "Tipo deve ser um dos seguintes: ") {
			t.Fatalf("unexpected reason: %q", reason)
		}
		for _, pt := range domain.PlaceTypes {
			if !strings.Contains(reason, pt) {
				t.Fatalf("reason missing type %q: %q", pt, reason)
			}
		}
	}
}

func TestPet(t *testing.T) {
	if ok, _ := Pet(domain.Pet{Name: "Dobby", Type: "Cachorro", Breed: "Shitzu"}); !ok {
		t.Fatalf("expected complete pet to be valid")
	}

	incomplete := []domain.Pet{
		{},
		{Name: "Dobby"},
		{Name: "Dobby", Type: "Cachorro"},
		{Type: "Cachorro", Breed: "Shitzu"},
	}
	for _, p := range incomplete {
		ok, reason := Pet(p)
		if ok {
			t.Fatalf("expected %+v to be invalid", p)
		}
		if reason != "Nome, tipo e raça do pet são obrigatórios" {
			t.Fatalf("unexpected reason: %q", reason)
		}
	}
}
