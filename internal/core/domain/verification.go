package domain

import (
	"fmt"
	"time"
)

type DocumentType string

const (
	DocumentMedicalRecord     DocumentType = "medical_record"
	DocumentInsuranceDocument DocumentType = "insurance_document"
	DocumentIdentityDocument  DocumentType = "identity_document"
	DocumentFinancialDocument DocumentType = "financial_document"
	DocumentTreatmentPlan     DocumentType = "treatment_plan"
	DocumentMedicalBill       DocumentType = "medical_bill"
	DocumentPrescription      DocumentType = "prescription"
	DocumentLabResult         DocumentType = "lab_result"
)

// ParseDocumentType validates a wire-level document type string. An empty
// string defaults to medical_record, anything unrecognized is an invalid-input
// error so the boundary can answer 400 instead of 500.
func ParseDocumentType(s string) (DocumentType, error) {
	if s == "" {
		return DocumentMedicalRecord, nil
	}
	switch t := DocumentType(s); t {
	case DocumentMedicalRecord, DocumentInsuranceDocument, DocumentIdentityDocument,
		DocumentFinancialDocument, DocumentTreatmentPlan, DocumentMedicalBill,
		DocumentPrescription, DocumentLabResult:
		return t, nil
	}
	return "", WrapError(ErrInvalidInput, "parse document type", fmt.Errorf("unknown document type %q", s))
}

type VerificationStatus string

const (
	StatusPending     VerificationStatus = "pending"
	StatusVerified    VerificationStatus = "verified"
	StatusRejected    VerificationStatus = "rejected"
	StatusNeedsReview VerificationStatus = "needs_review"
	StatusIncomplete  VerificationStatus = "incomplete"
)

// DocumentInput is one submitted document: its declared type and the text
// extracted from it upstream.
type DocumentInput struct {
	Type DocumentType `json:"type"`
	Text string       `json:"text"`
}

type DocumentAnalysis struct {
	DocumentType       DocumentType       `json:"document_type"`
	AuthenticityScore  float64            `json:"authenticity_score"`
	ExtractedData      map[string]any     `json:"extracted_data"`
	ConfidenceScore    float64            `json:"confidence_score"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	Flags              []string           `json:"flags"`
	ProcessingNotes    string             `json:"processing_notes"`
}

type VerificationResult struct {
	CampaignID            string             `json:"campaign_id"`
	OverallStatus         VerificationStatus `json:"overall_status"`
	TrustScore            float64            `json:"trust_score"`
	DocumentAnalyses      []DocumentAnalysis `json:"document_analyses"`
	VerificationTimestamp time.Time          `json:"verification_timestamp"`
	ReviewerNotes         string             `json:"reviewer_notes"`
	NextSteps             []string           `json:"next_steps"`
}

// CampaignData is the campaign-side input for verification and fraud checks.
type CampaignData struct {
	ID          string  `json:"id"`
	GoalAmount  float64 `json:"goal_amount"`
	Description string  `json:"description"`
}

type UserHistory struct {
	PreviousCampaigns int `json:"previous_campaigns"`
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

type FraudAssessment struct {
	FraudScore         float64   `json:"fraud_score"`
	RiskLevel          RiskLevel `json:"risk_level"`
	DetectedIndicators []string  `json:"detected_indicators"`
	Recommendation     string    `json:"recommendation"`
}
