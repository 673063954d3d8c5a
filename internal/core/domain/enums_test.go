package domain

import "testing"

func TestParseDocumentTypeAcceptsKnownValues(t *testing.T) {
	known := []string{
		"medical_record", "insurance_document", "identity_document",
		"financial_document", "treatment_plan", "medical_bill",
		"prescription", "lab_result",
	}
	for _, value := range known {
		parsed, err := ParseDocumentType(value)
		if err != nil {
			t.Fatalf("ParseDocumentType(%q) error = %v", value, err)
		}
		if string(parsed) != value {
			t.Fatalf("ParseDocumentType(%q) = %q", value, parsed)
		}
	}
}

func TestParseDocumentTypeDefaultsAndRejects(t *testing.T) {
	parsed, err := ParseDocumentType("")
	if err != nil {
		t.Fatalf("ParseDocumentType(empty) error = %v", err)
	}
	if parsed != DocumentMedicalRecord {
		t.Fatalf("expected medical_record default, got %q", parsed)
	}

	if _, err := ParseDocumentType("passport"); !IsKind(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestParseMatchingStrategyDefaultsAndRejects(t *testing.T) {
	parsed, err := ParseMatchingStrategy("")
	if err != nil {
		t.Fatalf("ParseMatchingStrategy(empty) error = %v", err)
	}
	if parsed != StrategyHybrid {
		t.Fatalf("expected hybrid default, got %q", parsed)
	}

	for _, value := range []string{"collaborative_filtering", "content_based", "hybrid", "geographic", "demographic"} {
		if _, err := ParseMatchingStrategy(value); err != nil {
			t.Fatalf("ParseMatchingStrategy(%q) error = %v", value, err)
		}
	}

	if _, err := ParseMatchingStrategy("random"); !IsKind(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}
