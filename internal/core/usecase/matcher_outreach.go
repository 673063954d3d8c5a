package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/businessintelli/savelife/internal/core/domain"
)

// recommendedAmount blends the donor's historical average (or an age-group
// default for first-time donors) with the category average, scales it by
// segment and rounds to a donation-friendly increment.
func (uc *MatcherUseCase) recommendedAmount(profile domain.DonorProfile, campaign domain.Campaign) float64 {
	var base float64
	if len(profile.GivingHistory) > 0 {
		total := 0.0
		for _, donation := range profile.GivingHistory {
			total += donation.Amount
		}
		base = total / float64(len(profile.GivingHistory))
	} else {
		ageGroup := profile.Demographics["age_group"]
		if ageGroup == "" {
			ageGroup = "26-35"
		}
		if factor, ok := uc.kb.AgeFactor(ageGroup); ok {
			base = factor.AverageDonation
		} else {
			base = 50
		}
	}

	categoryAvg := base
	if category, ok := uc.kb.DonorCategory(strings.ToLower(campaign.Category)); ok {
		categoryAvg = category.AverageDonation
	}

	amount := base*0.7 + categoryAvg*0.3

	switch profile.Segment {
	case domain.SegmentLargeDonor:
		amount *= 2.0
	case domain.SegmentFrequentGiver:
		amount *= 1.2
	case domain.SegmentMicroDonor:
		amount *= 0.5
	case domain.SegmentFirstTimeGiver:
		amount *= 0.7
	}

	switch {
	case amount < 25:
		return math.Round(amount/5) * 5
	case amount < 100:
		return math.Round(amount/10) * 10
	default:
		return math.Round(amount/25) * 25
	}
}

// optimalTiming picks the next weekday at the donor's preferred contact hour
// (default 10:00). Highly engaged donors who can still be reached today are
// nudged within two hours instead.
func (uc *MatcherUseCase) optimalTiming(profile domain.DonorProfile) time.Time {
	now := uc.nowFn()
	optimal := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location())
	for optimal.Weekday() == time.Saturday || optimal.Weekday() == time.Sunday {
		optimal = optimal.AddDate(0, 0, 1)
	}

	switch profile.Preferences["contact_time"] {
	case "afternoon":
		optimal = time.Date(optimal.Year(), optimal.Month(), optimal.Day(), 14, 0, 0, 0, optimal.Location())
	case "evening":
		optimal = time.Date(optimal.Year(), optimal.Month(), optimal.Day(), 19, 0, 0, 0, optimal.Location())
	}

	if profile.EngagementScore > 0.8 && now.Hour() < 20 {
		optimal = now.Add(2 * time.Hour)
	}

	return optimal
}

var messageTemplates = []string{
	"Hi %s, we found a %s campaign that matches your interests.",
	"Dear %s, this %s campaign could use your support.",
	"Hello %s, here's a meaningful %s opportunity for you.",
}

// personalizedMessage renders one of the outreach templates and appends the
// strongest match reason plus a segment-specific closing.
func (uc *MatcherUseCase) personalizedMessage(profile domain.DonorProfile, campaign domain.Campaign, reasoning []string) string {
	name := profile.Demographics["first_name"]
	if name == "" {
		name = "Friend"
	}
	category := campaign.Category
	if category == "" {
		category = "medical treatment"
	}

	message := fmt.Sprintf(messageTemplates[uc.intn(len(messageTemplates))], name, category)

	if len(reasoning) > 0 {
		message += " " + capitalizeFirst(strings.ToLower(reasoning[0])) + "."
	}

	switch profile.Segment {
	case domain.SegmentFrequentGiver:
		message += " Your continued support makes a real difference."
	case domain.SegmentLargeDonor:
		message += " Your generous contribution could significantly impact this campaign."
	case domain.SegmentFirstTimeGiver:
		message += " This could be a great way to start making a difference."
	}

	return message
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
