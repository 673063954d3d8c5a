package domain

import (
	"fmt"
	"time"
)

type DonorSegment string

const (
	SegmentFrequentGiver   DonorSegment = "frequent_giver"
	SegmentOccasionalGiver DonorSegment = "occasional_giver"
	SegmentFirstTimeGiver  DonorSegment = "first_time_giver"
	SegmentLargeDonor      DonorSegment = "large_donor"
	SegmentMicroDonor      DonorSegment = "micro_donor"
	SegmentLocalSupporter  DonorSegment = "local_supporter"
	SegmentCauseSpecific   DonorSegment = "cause_specific"
)

type MatchingStrategy string

const (
	StrategyCollaborativeFiltering MatchingStrategy = "collaborative_filtering"
	StrategyContentBased           MatchingStrategy = "content_based"
	StrategyHybrid                 MatchingStrategy = "hybrid"
	StrategyGeographic             MatchingStrategy = "geographic"
	StrategyDemographic            MatchingStrategy = "demographic"
)

// ParseMatchingStrategy validates a wire-level strategy string. Empty input
// defaults to the hybrid strategy.
func ParseMatchingStrategy(s string) (MatchingStrategy, error) {
	if s == "" {
		return StrategyHybrid, nil
	}
	switch st := MatchingStrategy(s); st {
	case StrategyCollaborativeFiltering, StrategyContentBased, StrategyHybrid,
		StrategyGeographic, StrategyDemographic:
		return st, nil
	}
	return "", WrapError(ErrInvalidInput, "parse matching strategy", fmt.Errorf("unknown matching strategy %q", s))
}

// Donation is one entry of a donor's giving history. Date is an ISO date
// string as supplied by the caller; missing or malformed dates fall back to
// a fixed default during scoring.
type Donation struct {
	Date             string  `json:"date"`
	Amount           float64 `json:"amount"`
	CampaignCategory string  `json:"campaign_category"`
}

type PlatformActivity struct {
	MonthlyLogins int `json:"monthly_logins"`
}

// DonorData is the raw donor payload a profile is built from.
type DonorData struct {
	ID               string            `json:"id"`
	GivingHistory    []Donation        `json:"giving_history"`
	Demographics     map[string]string `json:"demographics"`
	Location         map[string]string `json:"location"`
	Preferences      map[string]string `json:"preferences"`
	PlatformActivity PlatformActivity  `json:"platform_activity"`
}

type DonorProfile struct {
	DonorID         string            `json:"donor_id"`
	Segment         DonorSegment      `json:"segment"`
	GivingHistory   []Donation        `json:"giving_history"`
	Interests       []string          `json:"interests"`
	Demographics    map[string]string `json:"demographics"`
	Location        map[string]string `json:"location"`
	Preferences     map[string]string `json:"preferences"`
	EngagementScore float64           `json:"engagement_score"`
	LifetimeValue   float64           `json:"lifetime_value"`
}

// Campaign is a candidate campaign offered to the matcher.
type Campaign struct {
	ID                   string            `json:"id"`
	Title                string            `json:"title"`
	Category             string            `json:"category"`
	Description          string            `json:"description"`
	GoalAmount           float64           `json:"goal_amount"`
	Location             map[string]string `json:"location"`
	Urgency              string            `json:"urgency"`
	PredictedSuccessRate float64           `json:"predicted_success_rate"`
}

type CampaignMatch struct {
	CampaignID          string    `json:"campaign_id"`
	MatchScore          float64   `json:"match_score"`
	Reasoning           []string  `json:"reasoning"`
	RecommendedAmount   float64   `json:"recommended_amount"`
	OptimalTiming       time.Time `json:"optimal_timing"`
	PersonalizedMessage string    `json:"personalized_message"`
	ConfidenceLevel     float64   `json:"confidence_level"`
}

type MatchingResult struct {
	DonorID              string           `json:"donor_id"`
	RecommendedCampaigns []CampaignMatch  `json:"recommended_campaigns"`
	StrategyUsed         MatchingStrategy `json:"strategy_used"`
	TotalMatches         int              `json:"total_matches"`
	ProcessingTimestamp  time.Time        `json:"processing_timestamp"`
}
