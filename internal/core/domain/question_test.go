package domain

import "testing"

func TestQuestions_Catalog(t *testing.T) {
	qs := Questions()
	if len(qs) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(qs))
	}

	third := map[int]string{
		1: OptionInProgress, 2: OptionInProgress, 3: "Not Applicable", 4: OptionInProgress,
		5: "Under Review", 6: OptionInProgress, 7: OptionInProgress, 8: "Setting Up",
		9: "Not Required", 10: OptionInProgress, 11: "Researching", 12: "In Negotiation",
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Fatalf("question %d has id %d", i, q.ID)
		}
		if len(q.Options) != 3 || q.Options[0] != OptionYes || q.Options[1] != OptionNo || q.Options[2] != third[q.ID] {
			t.Errorf("question %d: unexpected options %v", q.ID, q.Options)
		}
	}

	if qs[2].Prompt != "Is your business registered for VAT?" {
		t.Errorf("unexpected prompt for question 3: %q", qs[2].Prompt)
	}
}

func TestQuestion_HasOption(t *testing.T) {
	q, _ := QuestionAt(4)
	if !q.HasOption("Under Review") || !q.HasOption(OptionYes) {
		t.Fatalf("question 5 should accept its own options")
	}
	if q.HasOption(OptionInProgress) || q.HasOption("yes") {
		t.Fatalf("question 5 should reject foreign labels")
	}
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	qs := Questions()
	qs[0].Options[0] = "changed"
	if q, _ := QuestionAt(0); q.Options[0] != OptionYes {
		t.Fatalf("catalog was mutated through a copy")
	}
}
