package models

type Tier string

const (
	TierTop      Tier = "Top Tier"
	TierStrong   Tier = "Strong"
	TierGood     Tier = "Good"
	TierEvaluate Tier = "Evaluate"
	TierPoor     Tier = "Poor"
)

type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

func (d Decision) IsValid() bool {
	return d == DecisionAccepted || d == DecisionRejected
}

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusActive    InterviewStatus = "active"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
)

type JobPostingStatus string

const (
	JobPostingStatusDraft     JobPostingStatus = "draft"
	JobPostingStatusPublished JobPostingStatus = "published"
	JobPostingStatusClosed    JobPostingStatus = "closed"
	JobPostingStatusArchived  JobPostingStatus = "archived"
)

type WeightCategory string

const (
	CategoryRequiredSkills     WeightCategory = "required_skills"
	CategoryPreferredSkills    WeightCategory = "preferred_skills"
	CategorySuccessSignals     WeightCategory = "success_signals"
	CategoryRedFlags           WeightCategory = "red_flags"
	CategoryBehavioralTraits   WeightCategory = "behavioral_traits"
	CategoryCulturalIndicators WeightCategory = "cultural_indicators"
	CategoryDealBreakers       WeightCategory = "deal_breakers"
)

// WeightCategories - фиксированный набор категорий взвешенных требований вакансии
var WeightCategories = []WeightCategory{
	CategoryRequiredSkills,
	CategoryPreferredSkills,
	CategorySuccessSignals,
	CategoryRedFlags,
	CategoryBehavioralTraits,
	CategoryCulturalIndicators,
	CategoryDealBreakers,
}

func (c WeightCategory) IsValid() bool {
	for _, known := range WeightCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultInterviewStages - этапы собеседований по умолчанию для новой вакансии
var DefaultInterviewStages = []string{"Round 1", "Round 2", "Round 3"}
