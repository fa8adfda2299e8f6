package domain

import "testing"

func TestSanitize_ClearsPassword(t *testing.T) {
	u := &User{ID: "1", Email: "a@example.com", Password: "secret"}
	clean := u.Sanitize()
	if clean.Password != "" {
		t.Fatalf("expected password to be cleared")
	}
	if u.Password != "secret" {
		t.Fatalf("original user must be untouched")
	}
	if (*User)(nil).Sanitize() != nil {
		t.Fatalf("nil user should sanitize to nil")
	}
}

func TestProfilePatch_ApplyLeavesPassword(t *testing.T) {
	u := &User{Name: "Old", Company: "Acme", Password: "secret"}
	name := "New"
	ProfilePatch{Name: &name}.Apply(u)

	if u.Name != "New" || u.Company != "Acme" || u.Password != "secret" {
		t.Fatalf("unexpected user after patch: %+v", u)
	}
}

func TestProfilePatch_ApplyVAT(t *testing.T) {
	u := &User{TaxID: "TIN-1"}
	vat := "VAT-9"
	ProfilePatch{VAT: &vat}.Apply(u)
	if u.VAT != "VAT-9" || u.TaxID != "TIN-1" {
		t.Fatalf("unexpected user after patch: %+v", u)
	}
}
