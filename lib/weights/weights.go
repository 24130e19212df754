package weights

import (
	"fmt"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
	"strings"
)

// Validate проверяет конфигурацию весов вакансии.
// Возвращает замечания по полям, а не ошибку: частично заполненная
// вакансия - нормальное поддерживаемое состояние, незаполненные категории
// отслеживаются отдельно через MissingFields.
func Validate(job dbmodels.JobPosting) (warnings []string) {
	if len(job.InterviewStages) == 0 {
		warnings = append(warnings, "не задан ни один этап собеседований")
	}
	seen := map[string]bool{}
	for _, stage := range job.InterviewStages {
		key := strings.ToLower(strings.TrimSpace(stage))
		if seen[key] {
			warnings = append(warnings, fmt.Sprintf("этап '%s' указан дважды", stage))
		}
		seen[key] = true
	}
	for category, weight := range job.CategoryWeights {
		if !category.IsValid() {
			warnings = append(warnings, fmt.Sprintf("неизвестная категория '%s'", category))
			continue
		}
		if weight < 0 || weight > 1 {
			warnings = append(warnings, fmt.Sprintf("вес категории '%s' вне диапазона [0,1]", category))
		}
	}
	for category, attrs := range job.WeightedAttributes {
		if !category.IsValid() {
			warnings = append(warnings, fmt.Sprintf("неизвестная категория '%s'", category))
			continue
		}
		for _, attr := range attrs {
			if attr.Weight < 0 || attr.Weight > 1 {
				warnings = append(warnings, fmt.Sprintf("вес требования '%s' вне диапазона [0,1]", attr.Value))
			}
		}
	}
	// сумма весов категорий намеренно не проверяется на равенство 1,
	// комбинированная оценка веса категорий сейчас не использует
	return warnings
}

// MissingCategories - категории без единого требования
func MissingCategories(job dbmodels.JobPosting) dbmodels.MissingFields {
	missing := dbmodels.MissingFields{}
	for _, category := range models.WeightCategories {
		if len(job.WeightedAttributes[category]) == 0 {
			missing = append(missing, string(category))
		}
	}
	return missing
}

// Normalize приводит конфигурацию весов к допустимому виду:
// веса зажимаются в [0,1], значения требований дедуплицируются внутри
// категории без учета регистра, порядок первого вхождения сохраняется.
func Normalize(job dbmodels.JobPosting) dbmodels.JobPosting {
	for category, weight := range job.CategoryWeights {
		job.CategoryWeights[category] = clamp(weight)
	}
	normalized := dbmodels.WeightedAttributes{}
	for category, attrs := range job.WeightedAttributes {
		seen := map[string]bool{}
		result := make([]dbmodels.WeightedAttribute, 0, len(attrs))
		for _, attr := range attrs {
			key := strings.ToLower(strings.TrimSpace(attr.Value))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			attr.Weight = clamp(attr.Weight)
			result = append(result, attr)
		}
		normalized[category] = result
	}
	job.WeightedAttributes = normalized
	job.MissingFields = MissingCategories(job)
	return job
}

func clamp(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
