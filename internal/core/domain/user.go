package domain

import "time"

// User models a registered portal account.
type User struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Password           string    `json:"-"`
	Company            string    `json:"company,omitempty"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	Country            string    `json:"country,omitempty"`
	Industry           string    `json:"industry,omitempty"`
	Address            string    `json:"address,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	TaxID              string    `json:"tax_id,omitempty"`
	VAT                string    `json:"vat,omitempty"`
	AvatarURL          string    `json:"avatar_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DefaultAccount is the demo administrator every fresh directory starts with.
var DefaultAccount = RegisterInput{
	Name:               "System Admin",
	Email:              "admin@afcfta.app",
	Password:           "password123",
	Company:            "AfCFTA Portal",
	RegistrationNumber: "SYS-001",
	Country:            "Ghana",
	Industry:           "Technology",
	Address:            "Africa Trade House, Accra",
	Phone:              "+233 55 555 5555",
	TaxID:              "GHA-000000000",
}

// Sanitize returns a copy of the user with the password cleared.
func (u *User) Sanitize() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Password = ""
	return &clone
}

// ProfilePatch carries a partial profile update. Nil fields are left untouched.
// Email is the directory key and cannot be patched.
type ProfilePatch struct {
	Name               *string
	Company            *string
	RegistrationNumber *string
	Country            *string
	Industry           *string
	Address            *string
	Phone              *string
	TaxID              *string
	VAT                *string
	AvatarURL          *string
}

// Apply shallow-merges the patch into u. The password is never touched.
func (p ProfilePatch) Apply(u *User) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&u.Name, p.Name)
	set(&u.Company, p.Company)
	set(&u.RegistrationNumber, p.RegistrationNumber)
	set(&u.Country, p.Country)
	set(&u.Industry, p.Industry)
	set(&u.Address, p.Address)
	set(&u.Phone, p.Phone)
	set(&u.TaxID, p.TaxID)
	set(&u.VAT, p.VAT)
	set(&u.AvatarURL, p.AvatarURL)
}
