package models

import "time"

// Borrower is a registered loan recipient
type Borrower struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	NationalID string `json:"cnic"`
	Address    string `json:"address"`
	Email      string `json:"email,omitempty"`

	// NationalIDHash is the keyed lookup index of NationalID, NationalIDCipher its encrypted form.
	NationalIDHash   string `json:"-"`
	NationalIDCipher string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BorrowerInput carries registration data
type BorrowerInput struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	NationalID string `json:"cnic"`
	Address    string `json:"address"`
	Email      string `json:"email"`
}
