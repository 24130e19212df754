package weights

import (
	"testing"

	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run(`корректная конфигурация без замечаний check`, func(t *testing.T) {
		job := dbmodels.JobPosting{
			InterviewStages: dbmodels.InterviewStages{"Скрининг", "Техническое", "Финал"},
			CategoryWeights: dbmodels.CategoryWeights{
				models.CategoryRequiredSkills: 0.5,
			},
			WeightedAttributes: dbmodels.WeightedAttributes{
				models.CategoryRequiredSkills: {
					{Value: "Go", Weight: 0.9},
				},
			},
		}
		require.Empty(t, Validate(job))
	})

	t.Run(`вакансия без этапов check`, func(t *testing.T) {
		warnings := Validate(dbmodels.JobPosting{})
		require.Len(t, warnings, 1)
		require.Contains(t, warnings[0], "ни один этап")
	})

	t.Run(`дубликаты этапов без учета регистра check`, func(t *testing.T) {
		job := dbmodels.JobPosting{
			InterviewStages: dbmodels.InterviewStages{"Скрининг", "скрининг "},
		}
		warnings := Validate(job)
		require.Len(t, warnings, 1)
		require.Contains(t, warnings[0], "указан дважды")
	})

	t.Run(`вес вне диапазона check`, func(t *testing.T) {
		job := dbmodels.JobPosting{
			InterviewStages: dbmodels.InterviewStages{"Скрининг"},
			CategoryWeights: dbmodels.CategoryWeights{
				models.CategoryRequiredSkills: 1.5,
			},
			WeightedAttributes: dbmodels.WeightedAttributes{
				models.CategoryRedFlags: {
					{Value: "Английский", Weight: -0.1},
				},
			},
		}
		warnings := Validate(job)
		require.Len(t, warnings, 2)
	})

	t.Run(`сумма весов категорий не проверяется check`, func(t *testing.T) {
		job := dbmodels.JobPosting{
			InterviewStages: dbmodels.InterviewStages{"Скрининг"},
			CategoryWeights: dbmodels.CategoryWeights{
				models.CategoryRequiredSkills:  0.9,
				models.CategoryPreferredSkills: 0.9,
			},
		}
		require.Empty(t, Validate(job))
	})
}

func TestNormalize(t *testing.T) {
	t.Run(`веса зажимаются в диапазон check`, func(t *testing.T) {
		job := dbmodels.JobPosting{
			CategoryWeights: dbmodels.CategoryWeights{
				models.CategoryRequiredSkills:  1.5,
				models.CategoryPreferredSkills: -0.5,
			},
		}
		job = Normalize(job)
		require.Equal(t, 1.0, job.CategoryWeights[models.CategoryRequiredSkills])
		require.Equal(t, 0.0, job.CategoryWeights[models.CategoryPreferredSkills])
	})

	t.Run(`дедупликация требований с сохранением порядка check`, func(t *testing.T) {
		job := dbmodels.JobPosting{
			WeightedAttributes: dbmodels.WeightedAttributes{
				models.CategoryRequiredSkills: {
					{Value: "Go", Weight: 0.9},
					{Value: "Postgres", Weight: 0.7},
					{Value: " go ", Weight: 0.2},
					{Value: "", Weight: 0.5},
				},
			},
		}
		job = Normalize(job)
		attrs := job.WeightedAttributes[models.CategoryRequiredSkills]
		require.Len(t, attrs, 2)
		require.Equal(t, "Go", attrs[0].Value)
		require.Equal(t, 0.9, attrs[0].Weight)
		require.Equal(t, "Postgres", attrs[1].Value)
	})

	t.Run(`незаполненные категории отслеживаются check`, func(t *testing.T) {
		job := dbmodels.JobPosting{
			WeightedAttributes: dbmodels.WeightedAttributes{
				models.CategoryRequiredSkills: {
					{Value: "Go", Weight: 0.9},
				},
			},
		}
		job = Normalize(job)
		require.Len(t, job.MissingFields, len(models.WeightCategories)-1)
		require.NotContains(t, job.MissingFields, string(models.CategoryRequiredSkills))
	})
}

func TestMissingCategories(t *testing.T) {
	t.Run(`все категории пусты check`, func(t *testing.T) {
		missing := MissingCategories(dbmodels.JobPosting{})
		require.Len(t, missing, len(models.WeightCategories))
	})
}
