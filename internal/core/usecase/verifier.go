package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/businessintelli/savelife/internal/core/domain"
	"github.com/businessintelli/savelife/internal/core/knowledge"
)

const (
	minDocumentChars = 20
	// idealDocumentCount is the submission size at which document coverage
	// stops improving the trust score.
	idealDocumentCount = 4
)

// VerifierUseCase scores documents for authenticity, aggregates them into a
// campaign trust score and screens campaigns for fraud indicators.
type VerifierUseCase struct {
	kb    *knowledge.Base
	nowFn func() time.Time
}

type VerifierOptions struct {
	Now func() time.Time
}

func NewVerifierUseCase(kb *knowledge.Base, opts VerifierOptions) *VerifierUseCase {
	nowFn := opts.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &VerifierUseCase{kb: kb, nowFn: nowFn}
}

// AnalyzeDocument extracts structured fields from the document text and scores
// its authenticity. Texts under 20 trimmed characters are rejected outright as
// incomplete.
func (uc *VerifierUseCase) AnalyzeDocument(text string, docType domain.DocumentType) domain.DocumentAnalysis {
	analysis := domain.DocumentAnalysis{
		DocumentType:       docType,
		ExtractedData:      map[string]any{},
		VerificationStatus: domain.StatusPending,
		Flags:              []string{},
	}

	if len(strings.TrimSpace(text)) < minDocumentChars {
		analysis.Flags = append(analysis.Flags, "Document text too short or empty")
		analysis.VerificationStatus = domain.StatusIncomplete
		analysis.ProcessingNotes = "Insufficient document content for analysis"
		return analysis
	}

	switch docType {
	case domain.DocumentMedicalRecord:
		uc.extractMedicalRecord(text, &analysis)
	case domain.DocumentInsuranceDocument:
		uc.extractInsuranceDocument(text, &analysis)
	case domain.DocumentIdentityDocument:
		uc.extractIdentityDocument(text, &analysis)
	case domain.DocumentMedicalBill:
		uc.extractMedicalBill(text, &analysis)
	case domain.DocumentTreatmentPlan:
		uc.extractTreatmentPlan(text, &analysis)
	default:
		uc.extractGenericDocument(text, &analysis)
	}

	analysis.AuthenticityScore = authenticityScore(analysis)

	switch {
	case analysis.AuthenticityScore >= 0.8 && len(analysis.Flags) == 0:
		analysis.VerificationStatus = domain.StatusVerified
	case analysis.AuthenticityScore >= 0.6:
		analysis.VerificationStatus = domain.StatusNeedsReview
	case len(analysis.Flags) > 0:
		analysis.VerificationStatus = domain.StatusRejected
	default:
		analysis.VerificationStatus = domain.StatusPending
	}

	return analysis
}

// authenticityScore combines extractor confidence, a bonus for extraction
// richness and a penalty per flag, clamped to [0,1].
func authenticityScore(analysis domain.DocumentAnalysis) float64 {
	dataBonus := math.Min(0.2, float64(len(analysis.ExtractedData))*0.05)
	flagPenalty := float64(len(analysis.Flags)) * 0.2
	return math.Max(0.0, math.Min(1.0, analysis.ConfidenceScore+dataBonus-flagPenalty))
}

// VerifyCampaign analyzes every submitted document and folds the per-document
// authenticity scores and document coverage into an overall trust score and
// verification status.
func (uc *VerifierUseCase) VerifyCampaign(campaign domain.CampaignData, documents []domain.DocumentInput) domain.VerificationResult {
	campaignID := campaign.ID
	if campaignID == "" {
		campaignID = "unknown"
	}

	analyses := make([]domain.DocumentAnalysis, 0, len(documents))
	for _, doc := range documents {
		analyses = append(analyses, uc.AnalyzeDocument(doc.Text, doc.Type))
	}

	trustScore := 0.0
	if len(analyses) > 0 {
		sum := 0.0
		for _, analysis := range analyses {
			sum += analysis.AuthenticityScore
		}
		avgAuthenticity := sum / float64(len(analyses))
		coverage := math.Min(1.0, float64(len(analyses))/idealDocumentCount)
		trustScore = avgAuthenticity*0.7 + coverage*0.3
	}

	verified, rejected := 0, 0
	for _, analysis := range analyses {
		switch analysis.VerificationStatus {
		case domain.StatusVerified:
			verified++
		case domain.StatusRejected:
			rejected++
		}
	}

	var overall domain.VerificationStatus
	switch {
	case verified >= 2 && rejected == 0 && trustScore >= 0.7:
		overall = domain.StatusVerified
	case rejected > 0 || trustScore < 0.3:
		overall = domain.StatusRejected
	case trustScore >= 0.5:
		overall = domain.StatusNeedsReview
	default:
		overall = domain.StatusPending
	}

	return domain.VerificationResult{
		CampaignID:            campaignID,
		OverallStatus:         overall,
		TrustScore:            trustScore,
		DocumentAnalyses:      analyses,
		VerificationTimestamp: uc.nowFn(),
		ReviewerNotes:         fmt.Sprintf("Automated verification completed. Trust score: %.2f", trustScore),
		NextSteps:             nextSteps(overall, analyses),
	}
}

func nextSteps(status domain.VerificationStatus, analyses []domain.DocumentAnalysis) []string {
	var steps []string
	switch status {
	case domain.StatusVerified:
		steps = []string{
			"Campaign approved for publication",
			"Enable donation processing",
			"Add verification badge to campaign",
		}
	case domain.StatusNeedsReview:
		steps = []string{
			"Schedule manual review by verification team",
			"Request additional documentation if needed",
			"Contact campaign creator for clarification",
		}
	case domain.StatusRejected:
		steps = []string{
			"Notify campaign creator of rejection",
			"Provide specific feedback on required improvements",
			"Allow resubmission with corrected documents",
		}
	default:
		steps = []string{
			"Request missing required documents",
			"Provide document submission guidelines",
			"Set follow-up reminder for document submission",
		}
	}

	var missing []string
	if !hasDocumentType(analyses, domain.DocumentMedicalRecord) {
		missing = append(missing, "medical records")
	}
	if !hasDocumentType(analyses, domain.DocumentIdentityDocument) {
		missing = append(missing, "identity verification")
	}
	if len(missing) > 0 {
		steps = append(steps, "Request missing documents: "+strings.Join(missing, ", "))
	}

	return steps
}

func hasDocumentType(analyses []domain.DocumentAnalysis, docType domain.DocumentType) bool {
	for _, analysis := range analyses {
		if analysis.DocumentType == docType {
			return true
		}
	}
	return false
}

var fraudMedicalKeywords = []string{"diagnosis", "treatment", "doctor", "hospital", "surgery", "therapy"}

// DetectFraud accumulates fixed-score fraud indicators over the campaign
// payload and, when supplied, the creator's platform history.
func (uc *VerifierUseCase) DetectFraud(campaign domain.CampaignData, history *domain.UserHistory) domain.FraudAssessment {
	fraudScore := 0.0
	indicators := []string{}

	switch {
	case campaign.GoalAmount > 500000:
		fraudScore += 0.3
		indicators = append(indicators, "Unusually high funding goal")
	case campaign.GoalAmount < 1000:
		fraudScore += 0.2
		indicators = append(indicators, "Unusually low funding goal")
	}

	description := strings.ToLower(campaign.Description)
	medicalMentions := 0
	for _, keyword := range fraudMedicalKeywords {
		if strings.Contains(description, keyword) {
			medicalMentions++
		}
	}
	if medicalMentions < 2 {
		fraudScore += 0.4
		indicators = append(indicators, "Vague or insufficient medical details")
	}

	if len(description) < 100 {
		fraudScore += 0.2
		indicators = append(indicators, "Very short campaign description")
	}

	if history != nil && history.PreviousCampaigns > 3 {
		fraudScore += 0.3
		indicators = append(indicators, "Multiple previous campaigns from same user")
	}

	var riskLevel domain.RiskLevel
	switch {
	case fraudScore >= 0.7:
		riskLevel = domain.RiskHigh
	case fraudScore >= 0.4:
		riskLevel = domain.RiskMedium
	default:
		riskLevel = domain.RiskLow
	}

	return domain.FraudAssessment{
		FraudScore:         fraudScore,
		RiskLevel:          riskLevel,
		DetectedIndicators: indicators,
		Recommendation:     fraudRecommendation(riskLevel),
	}
}

func fraudRecommendation(riskLevel domain.RiskLevel) string {
	switch riskLevel {
	case domain.RiskHigh:
		return "Require manual review and additional verification before approval"
	case domain.RiskMedium:
		return "Enhanced verification required with additional documentation"
	default:
		return "Standard verification process sufficient"
	}
}
