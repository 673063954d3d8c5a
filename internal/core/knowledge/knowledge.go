// Package knowledge holds the immutable rule tables the scoring services run
// on: condition profiles, title templates, story frameworks, entity lists and
// demographic factors. The tables ship embedded in the binary and are parsed
// once at startup.
package knowledge

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/businessintelli/savelife/internal/core/domain"
)

//go:embed rules.yaml
var rulesYAML []byte

type ComplexityFactor struct {
	Term       string  `yaml:"term"`
	Multiplier float64 `yaml:"multiplier"`
}

type DonorCategory struct {
	Name            string   `yaml:"name"`
	Keywords        []string `yaml:"keywords"`
	AverageDonation float64  `yaml:"average_donation"`
}

type AgeFactor struct {
	Group           string   `yaml:"group"`
	PreferredCauses []string `yaml:"preferred_causes"`
	AverageDonation float64  `yaml:"average_donation"`
}

type SegmentPreference struct {
	Segment    string   `yaml:"segment"`
	Categories []string `yaml:"categories"`
}

type Base struct {
	Conditions          []domain.ConditionProfile `yaml:"conditions"`
	FallbackCondition   string                    `yaml:"fallback_condition"`
	TitleTemplates      []string                  `yaml:"title_templates"`
	ExtraTitleTemplates []string                  `yaml:"extra_title_templates"`
	StoryFrameworks     []domain.StoryFramework   `yaml:"story_frameworks"`
	ComplexityFactors   []ComplexityFactor        `yaml:"complexity_factors"`
	EmotionalKeywords   []string                  `yaml:"emotional_keywords"`
	MedicalInstitutions []string                  `yaml:"medical_institutions"`
	InsuranceProviders  []string                  `yaml:"insurance_providers"`
	MedicalSpecialties  []string                  `yaml:"medical_specialties"`
	DonorCategories     []DonorCategory           `yaml:"donor_categories"`
	AgeFactors          []AgeFactor               `yaml:"age_factors"`
	SegmentPreferences  []SegmentPreference       `yaml:"segment_preferences"`
}

// Load parses the embedded rules document. It is called once from bootstrap;
// the returned Base must be treated as read-only.
func Load() (*Base, error) {
	var base Base
	if err := yaml.Unmarshal(rulesYAML, &base); err != nil {
		return nil, fmt.Errorf("parse rules document: %w", err)
	}

	if len(base.Conditions) == 0 {
		return nil, fmt.Errorf("rules document has no conditions")
	}
	if _, ok := base.Condition(base.FallbackCondition); !ok {
		return nil, fmt.Errorf("fallback condition %q not present in conditions", base.FallbackCondition)
	}
	if len(base.StoryFrameworks) == 0 {
		return nil, fmt.Errorf("rules document has no story frameworks")
	}
	if len(base.TitleTemplates) == 0 {
		return nil, fmt.Errorf("rules document has no title templates")
	}
	return &base, nil
}

func (b *Base) Condition(name string) (domain.ConditionProfile, bool) {
	for _, condition := range b.Conditions {
		if condition.Name == name {
			return condition, true
		}
	}
	return domain.ConditionProfile{}, false
}

func (b *Base) Framework(name string) (domain.StoryFramework, bool) {
	for _, framework := range b.StoryFrameworks {
		if framework.Name == name {
			return framework, true
		}
	}
	return domain.StoryFramework{}, false
}

// DefaultFramework is used when a condition's framework has no full outline.
func (b *Base) DefaultFramework() domain.StoryFramework {
	return b.StoryFrameworks[0]
}

func (b *Base) DonorCategory(name string) (DonorCategory, bool) {
	for _, category := range b.DonorCategories {
		if category.Name == name {
			return category, true
		}
	}
	return DonorCategory{}, false
}

func (b *Base) AgeFactor(group string) (AgeFactor, bool) {
	for _, factor := range b.AgeFactors {
		if factor.Group == group {
			return factor, true
		}
	}
	return AgeFactor{}, false
}

func (b *Base) SegmentCategories(segment domain.DonorSegment) ([]string, bool) {
	for _, preference := range b.SegmentPreferences {
		if preference.Segment == string(segment) {
			return preference.Categories, true
		}
	}
	return nil, false
}
