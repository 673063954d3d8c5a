package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/businessintelli/savelife/internal/core/domain"
)

func (uc *MatcherUseCase) newMatch(profile domain.DonorProfile, campaign domain.Campaign, score float64, reasoning []string, confidence float64) domain.CampaignMatch {
	campaignID := campaign.ID
	if campaignID == "" {
		campaignID = "unknown"
	}
	return domain.CampaignMatch{
		CampaignID:          campaignID,
		MatchScore:          score,
		Reasoning:           reasoning,
		RecommendedAmount:   uc.recommendedAmount(profile, campaign),
		OptimalTiming:       uc.optimalTiming(profile),
		PersonalizedMessage: uc.personalizedMessage(profile, campaign, reasoning),
		ConfidenceLevel:     confidence,
	}
}

// contentBasedMatches scores campaigns against the donor's interests, location
// and age group. Campaigns scoring 0.1 or less are dropped.
func (uc *MatcherUseCase) contentBasedMatches(profile domain.DonorProfile, campaigns []domain.Campaign) []domain.CampaignMatch {
	var matches []domain.CampaignMatch
	for _, campaign := range campaigns {
		score := 0.0
		var reasoning []string
		category := strings.ToLower(campaign.Category)
		description := strings.ToLower(campaign.Description)

		if containsString(profile.Interests, category) {
			score += 0.4
			reasoning = append(reasoning, fmt.Sprintf("Matches your interest in %s", category))
		}

		for _, interest := range profile.Interests {
			if strings.Contains(description, interest) {
				score += 0.1
				reasoning = append(reasoning, fmt.Sprintf("Campaign mentions %s", interest))
			}
		}

		if state := profile.Location["state"]; state != "" && state == campaign.Location["state"] {
			score += 0.2
			reasoning = append(reasoning, "Campaign is in your state")
		} else if country := profile.Location["country"]; country != "" && country == campaign.Location["country"] {
			score += 0.1
			reasoning = append(reasoning, "Campaign is in your country")
		}

		if ageGroup := profile.Demographics["age_group"]; ageGroup != "" {
			if factor, ok := uc.kb.AgeFactor(ageGroup); ok && containsString(factor.PreferredCauses, category) {
				score += 0.2
				reasoning = append(reasoning, "Popular cause for your age group")
			}
		}

		if campaign.Urgency == "immediate" &&
			(profile.Segment == domain.SegmentFrequentGiver || profile.Segment == domain.SegmentLargeDonor) {
			score += 0.1
			reasoning = append(reasoning, "Urgent campaign matching your giving pattern")
		}

		if score > 0.1 {
			score = math.Min(1.0, score)
			confidence := math.Min(1.0, score*profile.EngagementScore)
			matches = append(matches, uc.newMatch(profile, campaign, score, reasoning, confidence))
		}
	}
	return matches
}

// collaborativeMatches recommends the categories donors of the same segment
// favor. Cause-specific donors use their own interest list instead of a
// segment table.
func (uc *MatcherUseCase) collaborativeMatches(profile domain.DonorProfile, campaigns []domain.Campaign) []domain.CampaignMatch {
	var preferred []string
	if profile.Segment == domain.SegmentCauseSpecific {
		preferred = profile.Interests
		if len(preferred) == 0 {
			preferred = []string{"cancer"}
		}
	} else if categories, ok := uc.kb.SegmentCategories(profile.Segment); ok {
		preferred = categories
	} else {
		preferred = []string{"emergency"}
	}

	segmentLabel := strings.ReplaceAll(string(profile.Segment), "_", " ")

	var matches []domain.CampaignMatch
	for _, campaign := range campaigns {
		category := strings.ToLower(campaign.Category)
		if !containsString(preferred, category) {
			continue
		}

		score := 0.6
		reasoning := []string{fmt.Sprintf("Popular with %s donors", segmentLabel)}

		if containsString(profile.Interests, category) {
			score += 0.3
			reasoning = append(reasoning, "Matches your previous giving pattern")
		}
		if campaign.PredictedSuccessRate > 0.7 {
			score += 0.1
			reasoning = append(reasoning, "High likelihood of reaching goal")
		}

		score = math.Min(1.0, score)
		confidence := math.Min(1.0, score*0.8)
		matches = append(matches, uc.newMatch(profile, campaign, score, reasoning, confidence))
	}
	return matches
}

// geographicMatches scores by location proximity: same city beats same state
// beats same country.
func (uc *MatcherUseCase) geographicMatches(profile domain.DonorProfile, campaigns []domain.Campaign) []domain.CampaignMatch {
	var matches []domain.CampaignMatch
	for _, campaign := range campaigns {
		score := 0.0
		var reasoning []string

		if city := profile.Location["city"]; city != "" && city == campaign.Location["city"] {
			score = 0.9
			reasoning = append(reasoning, fmt.Sprintf("Campaign in your city: %s", city))
		} else if state := profile.Location["state"]; state != "" && state == campaign.Location["state"] {
			score = 0.7
			reasoning = append(reasoning, fmt.Sprintf("Campaign in your state: %s", state))
		} else if country := profile.Location["country"]; country != "" && country == campaign.Location["country"] {
			score = 0.4
			reasoning = append(reasoning, fmt.Sprintf("Campaign in your country: %s", country))
		}

		if score == 0 {
			continue
		}

		if profile.Segment == domain.SegmentLocalSupporter {
			score += 0.1
			reasoning = append(reasoning, "You prefer supporting local causes")
		}

		score = math.Min(1.0, score)
		confidence := math.Min(1.0, score*0.9)
		matches = append(matches, uc.newMatch(profile, campaign, score, reasoning, confidence))
	}
	return matches
}

// demographicMatches scores by age group, income level and gender-correlated
// cause affinity.
func (uc *MatcherUseCase) demographicMatches(profile domain.DonorProfile, campaigns []domain.Campaign) []domain.CampaignMatch {
	var matches []domain.CampaignMatch
	for _, campaign := range campaigns {
		score := 0.0
		var reasoning []string
		category := strings.ToLower(campaign.Category)

		ageGroup := profile.Demographics["age_group"]
		if ageGroup != "" {
			if factor, ok := uc.kb.AgeFactor(ageGroup); ok && containsString(factor.PreferredCauses, category) {
				score += 0.5
				reasoning = append(reasoning, fmt.Sprintf("Popular cause for your age group (%s)", ageGroup))
			}
		}

		switch income := profile.Demographics["income_level"]; {
		case (income == "high" || income == "very_high") && campaign.GoalAmount > 50000:
			score += 0.2
			reasoning = append(reasoning, "Large campaign matching your giving capacity")
		case (income == "low" || income == "medium") && campaign.GoalAmount <= 50000:
			score += 0.2
			reasoning = append(reasoning, "Campaign size appropriate for your giving level")
		}

		if profile.Demographics["gender"] == "female" && (category == "pediatric" || category == "mental_health") {
			score += 0.1
			reasoning = append(reasoning, "Campaign type with high female donor engagement")
		}

		if score == 0 {
			continue
		}

		score = math.Min(1.0, score)
		confidence := math.Min(1.0, score*0.7)
		matches = append(matches, uc.newMatch(profile, campaign, score, reasoning, confidence))
	}
	return matches
}

// hybridMatches fuses all four strategies. Any campaign surfaced by at least
// one strategy enters the pool; its score is the weighted average over the
// strategies that surfaced it, with a bonus for multi-strategy agreement.
func (uc *MatcherUseCase) hybridMatches(profile domain.DonorProfile, campaigns []domain.Campaign) []domain.CampaignMatch {
	strategyResults := []struct {
		weight  float64
		matches []domain.CampaignMatch
	}{
		{0.4, uc.contentBasedMatches(profile, campaigns)},
		{0.3, uc.collaborativeMatches(profile, campaigns)},
		{0.2, uc.geographicMatches(profile, campaigns)},
		{0.1, uc.demographicMatches(profile, campaigns)},
	}

	type fusion struct {
		match         domain.CampaignMatch
		weightedScore float64
		weightSum     float64
		strategies    int
		reasoning     []string
		seenReasons   map[string]struct{}
	}

	fused := make(map[string]*fusion)
	var order []string
	for _, result := range strategyResults {
		for _, match := range result.matches {
			entry := fused[match.CampaignID]
			if entry == nil {
				entry = &fusion{match: match, seenReasons: make(map[string]struct{})}
				fused[match.CampaignID] = entry
				order = append(order, match.CampaignID)
			}
			entry.weightedScore += match.MatchScore * result.weight
			entry.weightSum += result.weight
			entry.strategies++
			for _, reason := range match.Reasoning {
				if _, dup := entry.seenReasons[reason]; dup {
					continue
				}
				entry.seenReasons[reason] = struct{}{}
				entry.reasoning = append(entry.reasoning, reason)
			}
		}
	}

	matches := make([]domain.CampaignMatch, 0, len(order))
	for _, campaignID := range order {
		entry := fused[campaignID]
		score := entry.weightedScore / entry.weightSum
		switch {
		case entry.strategies >= 3:
			score += 0.1
		case entry.strategies == 2:
			score += 0.05
		}

		match := entry.match
		match.MatchScore = math.Min(1.0, score)
		match.Reasoning = entry.reasoning
		match.ConfidenceLevel = math.Min(1.0, match.MatchScore*profile.EngagementScore)
		matches = append(matches, match)
	}
	return matches
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
