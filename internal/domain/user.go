// Package domain defines the small validated value records the test suite
// passes around: test users, trades, and stock positions.
package domain

import "fmt"

// User represents a test account for the trading application.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

// NewUser builds a User, enforcing that email and password are non-empty.
// Name is optional for some test scenarios.
func NewUser(email, password, name string) (User, error) {
	if email == "" {
		return User{}, fmt.Errorf("%w: email cannot be empty", ErrValidation)
	}
	if password == "" {
		return User{}, fmt.Errorf("%w: password cannot be empty", ErrValidation)
	}
	return User{Email: email, Password: password, Name: name}, nil
}

// MustUser is NewUser for canned fixture data; it panics on invalid input.
func MustUser(email, password, name string) User {
	u, err := NewUser(email, password, name)
	if err != nil {
		panic(err)
	}
	return u
}

// ToMap converts the user to a map for request payloads.
func (u User) ToMap() map[string]any {
	return map[string]any{
		"email":    u.Email,
		"password": u.Password,
		"name":     u.Name,
	}
}

// String hides the password so users can be logged safely.
func (u User) String() string {
	return fmt.Sprintf("User(email=%q, name=%q)", u.Email, u.Name)
}
