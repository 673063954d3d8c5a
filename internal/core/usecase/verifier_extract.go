package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/businessintelli/savelife/internal/core/domain"
)

var (
	patientNamePattern = regexp.MustCompile(`patient:?\s*([a-zA-Z\s]+)`)
	datePatterns       = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
		regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
		regexp.MustCompile(`[a-zA-Z]+ \d{1,2}, \d{4}`),
	}
	policyNumberPattern = regexp.MustCompile(`policy\s*(?:number|#)?:?\s*([a-zA-Z0-9\-]+)`)
	namePatterns        = []*regexp.Regexp{
		regexp.MustCompile(`name:?\s*([a-zA-Z\s]+)`),
		regexp.MustCompile(`full name:?\s*([a-zA-Z\s]+)`),
	}
	idNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`id\s*(?:number|#)?:?\s*([a-zA-Z0-9\-]+)`),
		regexp.MustCompile(`license\s*(?:number|#)?:?\s*([a-zA-Z0-9\-]+)`),
		regexp.MustCompile(`ssn:?\s*(\d{3}-?\d{2}-?\d{4})`),
	}
	addressPattern = regexp.MustCompile(`address:?\s*([a-zA-Z0-9\s,]+)`)
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
		regexp.MustCompile(`total:?\s*\$?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
		regexp.MustCompile(`amount due:?\s*\$?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	}
	serviceDatePattern = regexp.MustCompile(`date of service:?\s*(\d{1,2}/\d{1,2}/\d{4})`)
	slashDatePattern   = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
)

var (
	conditionLabelKeywords    = []string{"diagnosis", "condition", "disease", "disorder", "syndrome"}
	medicalRecordElements     = []string{"patient", "date", "doctor", "physician", "md", "diagnosis"}
	insuranceElements         = []string{"policy", "member", "coverage", "effective", "provider"}
	coverageKeywords          = []string{"coverage", "benefit", "deductible", "copay", "coinsurance"}
	governmentIDIndicators    = []string{"department of motor vehicles", "dmv", "state of", "government", "official"}
	billingElements           = []string{"patient", "provider", "service", "amount", "insurance", "balance"}
	procedureKeywords         = []string{"procedure", "treatment", "service", "consultation", "surgery", "therapy"}
	treatmentPlanKeywords     = []string{"treatment", "therapy", "medication", "surgery", "procedure", "plan"}
	timelineKeywords          = []string{"weeks", "months", "sessions", "appointments", "schedule"}
	medicalProfessionKeywords = []string{"doctor", "physician", "md", "specialist", "oncologist", "surgeon"}
)

var conditionLabelPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(conditionLabelKeywords))
	for _, keyword := range conditionLabelKeywords {
		patterns = append(patterns, regexp.MustCompile(keyword+`:?\s*([a-zA-Z\s,]+)`))
	}
	return patterns
}()

func (uc *VerifierUseCase) extractMedicalRecord(text string, analysis *domain.DocumentAnalysis) {
	lower := strings.ToLower(text)

	if match := patientNamePattern.FindStringSubmatch(lower); match != nil {
		analysis.ExtractedData["patient_name"] = strings.TrimSpace(match[1])
	}

	if dates := findDates(text); len(dates) > 0 {
		analysis.ExtractedData["dates"] = dates
	}

	for _, pattern := range conditionLabelPatterns {
		if match := pattern.FindStringSubmatch(lower); match != nil {
			analysis.ExtractedData["medical_condition"] = strings.TrimSpace(match[1])
			break
		}
	}

	for _, institution := range uc.kb.MedicalInstitutions {
		if strings.Contains(lower, institution) {
			analysis.ExtractedData["medical_institution"] = institution
			analysis.ConfidenceScore += 0.2
			break
		}
	}

	for _, specialty := range uc.kb.MedicalSpecialties {
		if strings.Contains(lower, specialty) {
			analysis.ExtractedData["medical_specialty"] = specialty
			analysis.ConfidenceScore += 0.1
			break
		}
	}

	present := countPresent(lower, medicalRecordElements)
	if present < 3 {
		analysis.Flags = append(analysis.Flags, "Missing required medical record elements")
	}

	if strings.Contains(lower, "copy") && !strings.Contains(lower, "original") {
		analysis.Flags = append(analysis.Flags, "Document appears to be a copy without original verification")
	}

	analysis.ConfidenceScore = clamp01(analysis.ConfidenceScore + float64(present)/float64(len(medicalRecordElements)))
}

func (uc *VerifierUseCase) extractInsuranceDocument(text string, analysis *domain.DocumentAnalysis) {
	lower := strings.ToLower(text)

	for _, provider := range uc.kb.InsuranceProviders {
		if strings.Contains(lower, provider) {
			analysis.ExtractedData["insurance_provider"] = provider
			analysis.ConfidenceScore += 0.3
			break
		}
	}

	if match := policyNumberPattern.FindStringSubmatch(lower); match != nil {
		analysis.ExtractedData["policy_number"] = match[1]
		analysis.ConfidenceScore += 0.2
	}

	for _, keyword := range coverageKeywords {
		if strings.Contains(lower, keyword) {
			analysis.ConfidenceScore += 0.1
			break
		}
	}

	if strings.Contains(lower, "denied") || strings.Contains(lower, "rejection") {
		analysis.ExtractedData["claim_status"] = "denied"
	} else if strings.Contains(lower, "approved") || strings.Contains(lower, "covered") {
		analysis.ExtractedData["claim_status"] = "approved"
	}

	if countPresent(lower, insuranceElements) < 2 {
		analysis.Flags = append(analysis.Flags, "Missing required insurance document elements")
	}

	analysis.ConfidenceScore = clamp01(analysis.ConfidenceScore)
}

func (uc *VerifierUseCase) extractIdentityDocument(text string, analysis *domain.DocumentAnalysis) {
	lower := strings.ToLower(text)

	for _, pattern := range namePatterns {
		if match := pattern.FindStringSubmatch(lower); match != nil {
			analysis.ExtractedData["name"] = strings.TrimSpace(match[1])
			analysis.ConfidenceScore += 0.3
			break
		}
	}

	for _, pattern := range idNumberPatterns {
		if match := pattern.FindStringSubmatch(lower); match != nil {
			analysis.ExtractedData["id_number"] = match[1]
			analysis.ConfidenceScore += 0.2
			break
		}
	}

	if match := addressPattern.FindStringSubmatch(lower); match != nil {
		analysis.ExtractedData["address"] = strings.TrimSpace(match[1])
		analysis.ConfidenceScore += 0.2
	}

	for _, indicator := range governmentIDIndicators {
		if strings.Contains(lower, indicator) {
			analysis.ConfidenceScore += 0.2
			break
		}
	}
}

func (uc *VerifierUseCase) extractMedicalBill(text string, analysis *domain.DocumentAnalysis) {
	lower := strings.ToLower(text)

	var amounts []string
	for _, pattern := range amountPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			amounts = append(amounts, match[1])
		}
	}
	if len(amounts) > 0 {
		if len(amounts) > 5 {
			amounts = amounts[:5]
		}
		analysis.ExtractedData["amounts"] = amounts
		analysis.ConfidenceScore += 0.3
	}

	for _, keyword := range procedureKeywords {
		if strings.Contains(lower, keyword) {
			analysis.ConfidenceScore += 0.1
			break
		}
	}

	if match := serviceDatePattern.FindStringSubmatch(lower); match != nil {
		analysis.ExtractedData["service_date"] = match[1]
		analysis.ConfidenceScore += 0.2
	}

	if countPresent(lower, billingElements) < 3 {
		analysis.Flags = append(analysis.Flags, "Missing required medical billing elements")
	}
}

func (uc *VerifierUseCase) extractTreatmentPlan(text string, analysis *domain.DocumentAnalysis) {
	lower := strings.ToLower(text)

	if countPresent(lower, treatmentPlanKeywords) >= 2 {
		analysis.ConfidenceScore += 0.3
	}

	for _, keyword := range timelineKeywords {
		if strings.Contains(lower, keyword) {
			analysis.ConfidenceScore += 0.1
			break
		}
	}

	for _, keyword := range medicalProfessionKeywords {
		if strings.Contains(lower, keyword) {
			analysis.ConfidenceScore += 0.2
			break
		}
	}
}

func (uc *VerifierUseCase) extractGenericDocument(text string, analysis *domain.DocumentAnalysis) {
	wordCount := len(strings.Fields(text))
	if wordCount > 50 {
		analysis.ConfidenceScore += 0.2
	}

	if strings.ContainsFunc(text, unicode.IsDigit) {
		analysis.ConfidenceScore += 0.1
	}

	if slashDatePattern.MatchString(text) {
		analysis.ConfidenceScore += 0.1
	}

	analysis.ExtractedData["word_count"] = wordCount
}

func findDates(text string) []string {
	var dates []string
	for _, pattern := range datePatterns {
		dates = append(dates, pattern.FindAllString(text, -1)...)
	}
	if len(dates) > 5 {
		dates = dates[:5]
	}
	return dates
}

func countPresent(lower string, elements []string) int {
	present := 0
	for _, element := range elements {
		if strings.Contains(lower, element) {
			present++
		}
	}
	return present
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
