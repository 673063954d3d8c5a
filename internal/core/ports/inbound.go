package ports

import "github.com/businessintelli/savelife/internal/core/domain"

// CampaignAdvisor is the inbound contract for campaign drafting assistance.
type CampaignAdvisor interface {
	ClassifyCondition(description string) domain.ConditionAnalysis
	SuggestTitles(name, condition, treatment string) []string
	RecommendGoal(analysis domain.ConditionAnalysis, treatmentDetails, insuranceCoverage string) domain.GoalRecommendation
	OptimizeStory(story string, analysis domain.ConditionAnalysis) domain.ContentAnalysis
	GenerateSuggestion(intake domain.CampaignIntake) domain.CampaignSuggestion
	WritingAssistance(currentText, section string) domain.WritingAssistance
}

// DocumentVerifier is the inbound contract for document authenticity scoring
// and fraud screening.
type DocumentVerifier interface {
	AnalyzeDocument(text string, docType domain.DocumentType) domain.DocumentAnalysis
	VerifyCampaign(campaign domain.CampaignData, documents []domain.DocumentInput) domain.VerificationResult
	DetectFraud(campaign domain.CampaignData, history *domain.UserHistory) domain.FraudAssessment
}

// DonorMatcher is the inbound contract for donor profiling and campaign
// recommendation.
type DonorMatcher interface {
	BuildProfile(data domain.DonorData) domain.DonorProfile
	FindMatches(profile domain.DonorProfile, campaigns []domain.Campaign, strategy domain.MatchingStrategy) domain.MatchingResult
}
