package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/businessintelli/savelife/internal/core/domain"
	"github.com/businessintelli/savelife/internal/core/knowledge"
)

const maxTitleSuggestions = 5

// AdvisorUseCase drafts campaign copy: condition classification, title and
// goal suggestions, story scoring and writing feedback. All methods are pure
// functions over the request payload and the static knowledge base.
type AdvisorUseCase struct {
	kb        *knowledge.Base
	emotional map[string]struct{}
}

func NewAdvisorUseCase(kb *knowledge.Base) *AdvisorUseCase {
	emotional := make(map[string]struct{}, len(kb.EmotionalKeywords))
	for _, keyword := range kb.EmotionalKeywords {
		emotional[keyword] = struct{}{}
	}
	return &AdvisorUseCase{kb: kb, emotional: emotional}
}

// ClassifyCondition buckets a free-text condition description into one of the
// condition profiles by keyword presence. Ties go to the earlier profile in
// table order; no hit at all falls back to the chronic profile.
func (uc *AdvisorUseCase) ClassifyCondition(description string) domain.ConditionAnalysis {
	lower := strings.ToLower(description)

	primary := uc.kb.FallbackCondition
	bestScore := 0
	for _, condition := range uc.kb.Conditions {
		score := 0
		for _, keyword := range condition.Keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			primary = condition.Name
		}
	}

	profile, _ := uc.kb.Condition(primary)
	confidence := 0.2
	if bestScore > 0 {
		confidence = math.Min(float64(bestScore)*0.2, 1.0)
	}

	return domain.ConditionAnalysis{
		PrimaryCondition: primary,
		Confidence:       confidence,
		SuggestedGoal:    profile.AverageGoal,
		SuccessRate:      profile.SuccessRate,
		StoryFramework:   profile.StoryFramework,
		RelevantKeywords: profile.Keywords,
	}
}

// SuggestTitles fills the title templates with the supplied values and returns
// the first five unique results in template order.
func (uc *AdvisorUseCase) SuggestTitles(name, condition, treatment string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Our Loved One"
	}
	condition = strings.TrimSpace(condition)
	if condition == "" {
		condition = "Medical Treatment"
	}
	treatment = strings.TrimSpace(treatment)
	if treatment == "" {
		treatment = "Treatment"
	}

	replacer := strings.NewReplacer(
		"{name}", name,
		"{condition}", condition,
		"{treatment}", treatment,
		"{goal}", "Health",
	)

	seen := make(map[string]struct{}, len(uc.kb.TitleTemplates)+len(uc.kb.ExtraTitleTemplates))
	suggestions := make([]string, 0, maxTitleSuggestions)
	appendUnique := func(templates []string) {
		for _, template := range templates {
			if len(suggestions) >= maxTitleSuggestions {
				return
			}
			title := replacer.Replace(template)
			if _, dup := seen[title]; dup {
				continue
			}
			seen[title] = struct{}{}
			suggestions = append(suggestions, title)
		}
	}
	appendUnique(uc.kb.TitleTemplates)
	appendUnique(uc.kb.ExtraTitleTemplates)
	return suggestions
}

// RecommendGoal derives a funding goal from the condition's base goal, the
// strongest treatment-complexity factor present and the insurance situation.
// The result is rounded to the nearest 5000.
func (uc *AdvisorUseCase) RecommendGoal(analysis domain.ConditionAnalysis, treatmentDetails, insuranceCoverage string) domain.GoalRecommendation {
	treatment := strings.ToLower(treatmentDetails)
	multiplier := 1.0
	for _, factor := range uc.kb.ComplexityFactors {
		if strings.Contains(treatment, factor.Term) && factor.Multiplier > multiplier {
			multiplier = factor.Multiplier
		}
	}

	insurance := strings.ToLower(insuranceCoverage)
	switch {
	case strings.Contains(insurance, "no insurance") || strings.Contains(insurance, "uninsured"):
		multiplier *= 1.5
	case strings.Contains(insurance, "limited coverage") || strings.Contains(insurance, "high deductible"):
		multiplier *= 1.3
	case strings.Contains(insurance, "denied"):
		multiplier *= 1.4
	}

	recommended := int(math.Round(float64(analysis.SuggestedGoal)*multiplier/5000)) * 5000

	return domain.GoalRecommendation{
		RecommendedAmount:    recommended,
		BaseAmount:           analysis.SuggestedGoal,
		ComplexityMultiplier: multiplier,
		Reasoning:            fmt.Sprintf("Based on %s treatment complexity and insurance situation", analysis.PrimaryCondition),
		Confidence:           analysis.Confidence * 0.8,
	}
}

// OptimizeStory scores a campaign story for readability, emotional impact and
// medical clarity, and collects improvement suggestions. The returned content
// is the input unchanged; rewriting is left to the campaign creator.
func (uc *AdvisorUseCase) OptimizeStory(story string, analysis domain.ConditionAnalysis) domain.ContentAnalysis {
	if len(strings.TrimSpace(story)) < 50 {
		return domain.ContentAnalysis{
			ReadabilityScore:     0.3,
			EmotionalImpactScore: 0.2,
			ClarityScore:         0.3,
			Suggestions: []string{
				"Story is too short. Aim for at least 200-300 words.",
				"Include personal details to create emotional connection.",
				"Explain the medical situation clearly.",
				"Describe how donations will be used specifically.",
			},
			OptimizedContent: story,
		}
	}

	wordCount := len(strings.Fields(story))
	sentenceCount := 0
	for _, sentence := range strings.Split(story, ".") {
		if strings.TrimSpace(sentence) != "" {
			sentenceCount++
		}
	}
	if sentenceCount < 1 {
		sentenceCount = 1
	}
	avgSentenceLength := float64(wordCount) / float64(sentenceCount)
	readability := math.Min(1.0, math.Max(0.0, 1.0-(avgSentenceLength-15)/20))

	lower := strings.ToLower(story)
	emotionalHits := 0
	for _, word := range strings.Fields(lower) {
		if _, ok := uc.emotional[word]; ok {
			emotionalHits++
		}
	}
	emotionalImpact := math.Min(1.0, float64(emotionalHits)/10)

	clarityHits := 0
	for _, term := range analysis.RelevantKeywords {
		if strings.Contains(lower, term) {
			clarityHits++
		}
	}
	termCount := len(analysis.RelevantKeywords)
	if termCount < 1 {
		termCount = 1
	}
	clarity := math.Min(1.0, float64(clarityHits)/float64(termCount))

	suggestions := []string{}
	if readability < 0.6 {
		suggestions = append(suggestions, "Consider using shorter sentences for better readability.")
	}
	if emotionalImpact < 0.4 {
		suggestions = append(suggestions, "Add more personal details and emotional connection.")
	}
	if clarity < 0.5 {
		suggestions = append(suggestions, "Include more specific medical details about the condition.")
	}
	if wordCount < 200 {
		suggestions = append(suggestions, "Expand your story to 200-300 words for better engagement.")
	}
	if !strings.Contains(lower, "thank") && !strings.Contains(lower, "grateful") {
		suggestions = append(suggestions, "Express gratitude to potential donors.")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Your story looks good! Consider adding specific details about how donations will be used.")
	}

	return domain.ContentAnalysis{
		ReadabilityScore:     readability,
		EmotionalImpactScore: emotionalImpact,
		ClarityScore:         clarity,
		Suggestions:          suggestions,
		OptimizedContent:     story,
	}
}

// GenerateSuggestion composes classification, titles, goal and framework into
// one campaign draft.
func (uc *AdvisorUseCase) GenerateSuggestion(intake domain.CampaignIntake) domain.CampaignSuggestion {
	name := intake.Name
	if name == "" {
		name = "Patient"
	}

	analysis := uc.ClassifyCondition(intake.MedicalCondition)
	titles := uc.SuggestTitles(name, analysis.PrimaryCondition, intake.TreatmentPlan)
	goal := uc.RecommendGoal(analysis, intake.TreatmentPlan, intake.InsuranceStatus)

	framework, ok := uc.kb.Framework(analysis.StoryFramework)
	if !ok {
		framework = uc.kb.DefaultFramework()
	}

	title := fmt.Sprintf("Help %s with Medical Treatment", name)
	if len(titles) > 0 {
		title = titles[0]
	}

	return domain.CampaignSuggestion{
		Title:           title,
		GoalAmount:      goal.RecommendedAmount,
		StoryFramework:  analysis.StoryFramework,
		Framework:       framework,
		Keywords:        analysis.RelevantKeywords,
		ConfidenceScore: math.Min(analysis.Confidence, goal.Confidence),
	}
}

// WritingAssistance gives section-specific feedback while a creator types.
// Sections other than "title" and "story" get an empty assistance payload.
func (uc *AdvisorUseCase) WritingAssistance(currentText, section string) domain.WritingAssistance {
	assistance := domain.WritingAssistance{
		Suggestions:  []string{},
		Improvements: []string{},
	}

	wordCount := len(strings.Fields(currentText))
	lower := strings.ToLower(currentText)

	switch section {
	case "title":
		if wordCount > 10 {
			assistance.Suggestions = append(assistance.Suggestions, "Keep titles concise - aim for 5-8 words")
		}
		if !containsAny(lower, "help", "support", "fund") {
			assistance.Suggestions = append(assistance.Suggestions, "Include action words like 'Help' or 'Support'")
		}
	case "story":
		switch {
		case wordCount < 50:
			assistance.LengthFeedback = "Story is too short. Aim for 200-300 words."
		case wordCount > 500:
			assistance.LengthFeedback = "Story might be too long. Consider condensing to 300-400 words."
		default:
			assistance.LengthFeedback = fmt.Sprintf("Good length (%d words). Target range is 200-300 words.", wordCount)
		}

		// The first-person check counts the literal capital letter, which is
		// what a quick draft overuses.
		firstPerson := strings.Count(currentText, "I")
		if firstPerson > 0 && float64(firstPerson) > float64(wordCount)*0.1 {
			assistance.ToneFeedback = "Consider focusing more on the patient's needs rather than using 'I' frequently."
		}

		if !containsAny(lower, "thank", "grateful", "appreciate") {
			assistance.Suggestions = append(assistance.Suggestions, "Express gratitude to potential donors")
		}
	}

	return assistance
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
