package domain

import (
	"fmt"
	"strings"
)

// Wizard steps.
const (
	StepCompany   = 1
	StepContact   = 2
	StepDocuments = 3
	StepCount     = 3
)

// CompanyStep is the first wizard step.
type CompanyStep struct {
	CompanyName        string `json:"company_name"        validate:"required,max=200"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=64"`
	Country            string `json:"country"             validate:"required,max=100"`
	Industry           string `json:"industry"            validate:"required,max=100"`
}

// ContactStep is the second wizard step.
type ContactStep struct {
	Name     string `json:"name"     validate:"required,max=200"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required,max=32"`
	Address  string `json:"address"  validate:"required,max=300"`
	TaxID    string `json:"tax_id"   validate:"required,max=64"`
	VAT      string `json:"vat"      validate:"omitempty,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

// DocumentsStep is the third wizard step. Uploads are not processed; the
// fields only carry the names of the documents the applicant will provide.
type DocumentsStep struct {
	BusinessLicense string `json:"business_license" validate:"omitempty,max=255"`
	TaxCertificate  string `json:"tax_certificate"  validate:"omitempty,max=255"`
	ExportLicense   string `json:"export_license"   validate:"omitempty,max=255"`
}

// RegistrationDraft accumulates wizard steps for one tab. Step is the last
// completed step (0 when nothing has been submitted yet).
type RegistrationDraft struct {
	Step      int            `json:"step"`
	Company   *CompanyStep   `json:"company,omitempty"`
	Contact   *ContactStep   `json:"contact,omitempty"`
	Documents *DocumentsStep `json:"documents,omitempty"`
}

// NextStep returns the step the wizard expects next.
func (d *RegistrationDraft) NextStep() int {
	if d == nil || d.Step < StepCompany {
		return StepCompany
	}
	if d.Step >= StepCount {
		return StepCount
	}
	return d.Step + 1
}

// RegisterInput carries everything needed to create a user.
type RegisterInput struct {
	Name               string
	Email              string
	Password           string
	Company            string
	RegistrationNumber string
	Country            string
	Industry           string
	Address            string
	Phone              string
	TaxID              string
	VAT                string
}

// RegisterInput merges the draft into a registration request.
func (d *RegistrationDraft) RegisterInput() RegisterInput {
	var in RegisterInput
	if d.Company != nil {
		in.Company = d.Company.CompanyName
		in.RegistrationNumber = d.Company.RegistrationNumber
		in.Country = d.Company.Country
		in.Industry = d.Company.Industry
	}
	if d.Contact != nil {
		in.Name = d.Contact.Name
		in.Email = d.Contact.Email
		in.Password = d.Contact.Password
		in.Phone = d.Contact.Phone
		in.Address = d.Contact.Address
		in.TaxID = d.Contact.TaxID
		in.VAT = d.Contact.VAT
	}
	return in
}

// FieldError describes one invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a structured list of field errors.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}
