package domain

// Place is a pet-friendly location. Places are immutable after creation
// and are never deleted.
type Place struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// PlaceTypes is the fixed set of accepted place type labels.
var PlaceTypes = []string{
	"Pet Shop",
	"Clínica Veterinária",
	"Parque",
	"Shopping",
	"Praia",
	"Restaurante",
	"Hotel",
}

// ValidPlaceType reports whether t is one of the accepted labels
// (exact string match).
func ValidPlaceType(t string) bool {
	for _, valid := range PlaceTypes {
		if t == valid {
			return true
		}
	}
	return false
}
