package domain

// ConditionProfile is one coarse medical-category bucket from the static
// knowledge base. Profiles are loaded once at startup and never mutated.
type ConditionProfile struct {
	Name           string   `yaml:"name" json:"name"`
	Keywords       []string `yaml:"keywords" json:"keywords"`
	AverageGoal    int      `yaml:"average_goal" json:"average_goal"`
	SuccessRate    float64  `yaml:"success_rate" json:"success_rate"`
	StoryFramework string   `yaml:"story_framework" json:"story_framework"`
}

// ConditionAnalysis is the result of classifying a free-text condition
// description against the condition profiles.
type ConditionAnalysis struct {
	PrimaryCondition string   `json:"primary_condition"`
	Confidence       float64  `json:"confidence"`
	SuggestedGoal    int      `json:"suggested_goal"`
	SuccessRate      float64  `json:"success_rate"`
	StoryFramework   string   `json:"story_framework"`
	RelevantKeywords []string `json:"relevant_keywords"`
}

// StoryFramework describes a recommended narrative outline for a campaign story.
type StoryFramework struct {
	Name      string   `yaml:"name" json:"name"`
	Structure []string `yaml:"structure" json:"structure"`
	Tone      string   `yaml:"tone" json:"tone"`
}

// CampaignIntake carries the creator-supplied fields used to draft a campaign.
type CampaignIntake struct {
	Name             string `json:"name"`
	MedicalCondition string `json:"medical_condition"`
	TreatmentPlan    string `json:"treatment_plan"`
	InsuranceStatus  string `json:"insurance_status"`
}

type CampaignSuggestion struct {
	Title           string         `json:"title"`
	GoalAmount      int            `json:"goal_amount"`
	StoryFramework  string         `json:"story_framework"`
	Framework       StoryFramework `json:"framework"`
	Keywords        []string       `json:"keywords"`
	ConfidenceScore float64        `json:"confidence_score"`
}

type ContentAnalysis struct {
	ReadabilityScore     float64  `json:"readability_score"`
	EmotionalImpactScore float64  `json:"emotional_impact_score"`
	ClarityScore         float64  `json:"clarity_score"`
	Suggestions          []string `json:"suggestions"`
	OptimizedContent     string   `json:"optimized_content"`
}

type GoalRecommendation struct {
	RecommendedAmount    int     `json:"recommended_amount"`
	BaseAmount           int     `json:"base_amount"`
	ComplexityMultiplier float64 `json:"complexity_multiplier"`
	Reasoning            string  `json:"reasoning"`
	Confidence           float64 `json:"confidence"`
}

type WritingAssistance struct {
	Suggestions    []string `json:"suggestions"`
	Improvements   []string `json:"improvements"`
	ToneFeedback   string   `json:"tone_feedback"`
	LengthFeedback string   `json:"length_feedback"`
}
