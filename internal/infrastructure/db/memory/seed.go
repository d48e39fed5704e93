package memory

import (
	"time"

	"github.com/dogmap/dogmap-api/internal/core/domain"
)

// Seed loads the demo dataset: 5 users, 10 places, 10 reviews and 10
// favorites. Identifier counters resume after the seeded entities so ids
// are never reissued.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []domain.User{
		{ID: 1, Name: "Manu Fraga", Email: "manu.fraga@email.com", Password: "123456",
			Pet: domain.Pet{Name: "Dobby", Type: "Cachorro", Breed: "Shitzu"}},
		{ID: 2, Name: "Filipe Andion", Email: "filipe.andion@email.com", Password: "123456",
			Pet: domain.Pet{Name: "Simba", Type: "Cachorro", Breed: "Shitzu"}},
		{ID: 3, Name: "Harry Potter", Email: "harry.potter@email.com", Password: "123456",
			Pet: domain.Pet{Name: "Edwirges", Type: "Cachorro", Breed: "Poddle"}},
		{ID: 4, Name: "Hermione Granger", Email: "hermione.granger@email.com", Password: "123456",
			Pet: domain.Pet{Name: "Mia", Type: "Gato", Breed: "Persa"}},
		{ID: 5, Name: "Ron Weasley", Email: "ron.weasley@email.com", Password: "123456",
			Pet: domain.Pet{Name: "Perebas", Type: "Gato", Breed: "Persa"}},
	}

	s.places = []domain.Place{
		{ID: 1, Name: "O Beco Diagonal", Type: "Pet Shop"},
		{ID: 2, Name: "Clínica Veterinária Dedos de Mel", Type: "Clínica Veterinária"},
		{ID: 3, Name: "Hogwarts", Type: "Parque"},
		{ID: 4, Name: "Shopping Alfeneiros", Type: "Shopping"},
		{ID: 5, Name: "Praia Pet Feliz", Type: "Praia"},
		{ID: 6, Name: "Pet Shop AUmigão", Type: "Pet Shop"},
		{ID: 7, Name: "Veterinária Minerva", Type: "Clínica Veterinária"},
		{ID: 8, Name: "Parque Botânico", Type: "Parque"},
		{ID: 9, Name: "Shopping Azkaban", Type: "Shopping"},
		{ID: 10, Name: "Praia Sossego", Type: "Praia"},
	}

	s.reviews = []domain.Review{
		{ID: 1, UserID: 1, PlaceID: 1, Rating: 5, Comment: "Excelente atendimento! Meu cachorro adorou o banho.", CreatedAt: date(2024, 1, 15)},
		{ID: 2, UserID: 2, PlaceID: 1, Rating: 4, Comment: "Bom preço e qualidade. Recomendo!", CreatedAt: date(2024, 1, 20)},
		{ID: 3, UserID: 3, PlaceID: 2, Rating: 5, Comment: "Atendimento de emergência muito eficiente.", CreatedAt: date(2024, 1, 10)},
		{ID: 4, UserID: 4, PlaceID: 3, Rating: 4, Comment: "Parque lindo e muito bem cuidado para pets.", CreatedAt: date(2024, 1, 25)},
		{ID: 5, UserID: 5, PlaceID: 4, Rating: 3, Comment: "Shopping bom, mas poderia ter mais áreas para pets.", CreatedAt: date(2024, 1, 18)},
		{ID: 6, UserID: 1, PlaceID: 5, Rating: 5, Comment: "Praia incrível! Meu cachorro adorou brincar na areia.", CreatedAt: date(2024, 1, 30)},
		{ID: 7, UserID: 2, PlaceID: 6, Rating: 4, Comment: "Pet shop especializado em raças pequenas. Muito bom!", CreatedAt: date(2024, 2, 1)},
		{ID: 8, UserID: 3, PlaceID: 7, Rating: 5, Comment: "Salvaram a vida do meu cachorro. Profissionais excelentes!", CreatedAt: date(2024, 2, 5)},
		{ID: 9, UserID: 4, PlaceID: 8, Rating: 4, Comment: "Parque com área de agility muito bem estruturada.", CreatedAt: date(2024, 2, 10)},
		{ID: 10, UserID: 5, PlaceID: 9, Rating: 3, Comment: "Shopping bom, mas algumas lojas não permitem pets.", CreatedAt: date(2024, 2, 15)},
	}

	s.favorites = []domain.Favorite{
		{UserID: 1, PlaceID: 1},
		{UserID: 1, PlaceID: 3},
		{UserID: 2, PlaceID: 2},
		{UserID: 2, PlaceID: 5},
		{UserID: 3, PlaceID: 7},
		{UserID: 3, PlaceID: 8},
		{UserID: 4, PlaceID: 3},
		{UserID: 4, PlaceID: 6},
		{UserID: 5, PlaceID: 4},
		{UserID: 5, PlaceID: 9},
	}

	s.nextUserID = 6
	s.nextPlaceID = 11
	s.nextReviewID = 11
}

// Reset clears the store and reloads the seed dataset. Intended for test
// harnesses that need a known starting state.
func (s *Store) Reset() {
	s.Seed()
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
