package usecase

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/businessintelli/savelife/internal/core/domain"
	"github.com/businessintelli/savelife/internal/core/knowledge"
)

const (
	maxCampaignMatches  = 10
	defaultDonationDate = "2020-01-01"
)

// MatcherUseCase builds donor profiles from giving history and recommends
// campaigns under one of five matching strategies. The clock and the message
// template picker are injectable; everything else is deterministic.
type MatcherUseCase struct {
	kb    *knowledge.Base
	nowFn func() time.Time
	intn  func(n int) int
}

type MatcherOptions struct {
	Now  func() time.Time
	Intn func(n int) int
}

func NewMatcherUseCase(kb *knowledge.Base, opts MatcherOptions) *MatcherUseCase {
	nowFn := opts.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	intn := opts.Intn
	if intn == nil {
		intn = rand.Intn
	}
	return &MatcherUseCase{kb: kb, nowFn: nowFn, intn: intn}
}

// BuildProfile derives segment, interests, engagement score and lifetime value
// from the raw donor payload. It never fails: a missing donor id becomes
// "unknown" and malformed history entries fall back to defaults.
func (uc *MatcherUseCase) BuildProfile(data domain.DonorData) domain.DonorProfile {
	donorID := data.ID
	if donorID == "" {
		donorID = "unknown"
	}

	lifetimeValue := 0.0
	for _, donation := range data.GivingHistory {
		lifetimeValue += donation.Amount
	}

	return domain.DonorProfile{
		DonorID:         donorID,
		Segment:         determineSegment(data.GivingHistory, lifetimeValue),
		GivingHistory:   data.GivingHistory,
		Interests:       extractInterests(data.GivingHistory),
		Demographics:    data.Demographics,
		Location:        data.Location,
		Preferences:     data.Preferences,
		EngagementScore: uc.engagementScore(data),
		LifetimeValue:   lifetimeValue,
	}
}

// engagementScore is a weighted blend of recency, frequency, average amount,
// platform activity and profile completeness, each sub-score clamped to [0,1].
func (uc *MatcherUseCase) engagementScore(data domain.DonorData) float64 {
	recency := 0.0
	if len(data.GivingHistory) > 0 {
		last := donationDate(data.GivingHistory[0].Date)
		for _, donation := range data.GivingHistory[1:] {
			if date := donationDate(donation.Date); date.After(last) {
				last = date
			}
		}
		daysSinceLast := uc.nowFn().Sub(last).Hours() / 24
		recency = clamp01(1 - daysSinceLast/365)
	}

	frequency := math.Min(1.0, float64(len(data.GivingHistory))/10)

	amount := 0.0
	if len(data.GivingHistory) > 0 {
		total := 0.0
		for _, donation := range data.GivingHistory {
			total += donation.Amount
		}
		avg := total / float64(len(data.GivingHistory))
		amount = math.Min(1.0, avg/200)
	}

	activity := math.Min(1.0, float64(data.PlatformActivity.MonthlyLogins)/10)
	completeness := clamp01(float64(len(data.Demographics)) / 5)

	score := recency*0.3 + frequency*0.25 + amount*0.2 + activity*0.15 + completeness*0.1
	return math.Min(1.0, score)
}

// donationDate parses a history entry date, falling back to a fixed default
// for missing or malformed values.
func donationDate(raw string) time.Time {
	if raw == "" {
		raw = defaultDonationDate
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02", defaultDonationDate)
	return t
}

func determineSegment(history []domain.Donation, lifetimeValue float64) domain.DonorSegment {
	count := len(history)
	switch {
	case lifetimeValue >= 1000:
		return domain.SegmentLargeDonor
	case count >= 10:
		return domain.SegmentFrequentGiver
	case count >= 3:
		return domain.SegmentOccasionalGiver
	case count == 0:
		return domain.SegmentFirstTimeGiver
	}

	for _, donation := range history {
		if donation.Amount > 25 {
			return domain.SegmentOccasionalGiver
		}
	}
	return domain.SegmentMicroDonor
}

// extractInterests returns the top five giving categories by frequency,
// keeping only categories with at least two donations. Ties keep the order in
// which categories first appeared in the history.
func extractInterests(history []domain.Donation) []string {
	counts := make(map[string]int, len(history))
	var order []string
	for _, donation := range history {
		category := strings.ToLower(donation.CampaignCategory)
		if category == "" {
			continue
		}
		if _, seen := counts[category]; !seen {
			order = append(order, category)
		}
		counts[category]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > 5 {
		order = order[:5]
	}
	interests := []string{}
	for _, category := range order {
		if counts[category] >= 2 {
			interests = append(interests, category)
		}
	}
	return interests
}

// FindMatches scores the candidate campaigns under the requested strategy and
// returns at most ten matches, best first.
func (uc *MatcherUseCase) FindMatches(profile domain.DonorProfile, campaigns []domain.Campaign, strategy domain.MatchingStrategy) domain.MatchingResult {
	var matches []domain.CampaignMatch
	switch strategy {
	case domain.StrategyCollaborativeFiltering:
		matches = uc.collaborativeMatches(profile, campaigns)
	case domain.StrategyContentBased:
		matches = uc.contentBasedMatches(profile, campaigns)
	case domain.StrategyGeographic:
		matches = uc.geographicMatches(profile, campaigns)
	case domain.StrategyDemographic:
		matches = uc.demographicMatches(profile, campaigns)
	default:
		matches = uc.hybridMatches(profile, campaigns)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > maxCampaignMatches {
		matches = matches[:maxCampaignMatches]
	}

	return domain.MatchingResult{
		DonorID:              profile.DonorID,
		RecommendedCampaigns: matches,
		StrategyUsed:         strategy,
		TotalMatches:         len(matches),
		ProcessingTimestamp:  uc.nowFn(),
	}
}
