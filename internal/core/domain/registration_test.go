package domain

import "testing"

func TestRegistrationDraft_NextStep(t *testing.T) {
	var nilDraft *RegistrationDraft
	if nilDraft.NextStep() != StepCompany {
		t.Fatal("nil draft should start at step 1")
	}
	for step, want := range map[int]int{0: 1, 1: 2, 2: 3, 3: 3} {
		d := &RegistrationDraft{Step: step}
		if got := d.NextStep(); got != want {
			t.Errorf("after step %d: expected %d, got %d", step, want, got)
		}
	}
}

func TestRegistrationDraft_RegisterInput(t *testing.T) {
	d := &RegistrationDraft{
		Step:    StepContact,
		Company: &CompanyStep{CompanyName: "Acme", Country: "Ghana"},
		Contact: &ContactStep{Name: "Ama", Email: "ama@acme.test", Password: "longpassword", VAT: "GH-VAT-1"},
	}
	in := d.RegisterInput()
	if in.Company != "Acme" || in.Country != "Ghana" || in.Email != "ama@acme.test" || in.Password != "longpassword" || in.VAT != "GH-VAT-1" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{{Field: "email", Message: "email is required"}, {Field: "name", Message: "name is required"}}}
	if err.Error() != "validation failed: email is required; name is required" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
