package domain

// Pet is the companion animal embedded in every user record. All three
// fields are required at registration time.
type Pet struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Breed string `json:"breed"`
}

// User models a registered account. The password is a plaintext 6-digit
// string — this API simulates authentication and deliberately does not
// hash credentials.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Pet      Pet    `json:"pet"`
}
