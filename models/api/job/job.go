package jobapimodels

import (
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
)

type JobPostingData struct {
	Name               string                      `json:"name" validate:"required,max=255"` // Название вакансии
	InterviewStages    []string                    `json:"interview_stages"`                 // Этапы собеседований по порядку, если пусто - этапы по умолчанию
	CategoryWeights    dbmodels.CategoryWeights    `json:"category_weights"`                 // Вес категории [0,1]
	WeightedAttributes dbmodels.WeightedAttributes `json:"weighted_attributes"`              // Требования по категориям
}

func (j JobPostingData) Validate() error {
	for _, stage := range j.InterviewStages {
		if stage == "" {
			return errors.New("название этапа не может быть пустым")
		}
	}
	for category := range j.CategoryWeights {
		if !category.IsValid() {
			return errors.Errorf("неизвестная категория: %s", category)
		}
	}
	for category := range j.WeightedAttributes {
		if !category.IsValid() {
			return errors.Errorf("неизвестная категория: %s", category)
		}
	}
	return nil
}

type JobPostingView struct {
	JobPostingData
	ID            string                  `json:"id"`             // Идентификатор вакансии
	Status        models.JobPostingStatus `json:"status"`         // Статус вакансии
	MissingFields []string                `json:"missing_fields"` // Незаполненные категории
	Warnings      []string                `json:"warnings"`       // Замечания к конфигурации весов
}

func JobPostingConvert(rec dbmodels.JobPosting) JobPostingView {
	return JobPostingView{
		JobPostingData: JobPostingData{
			Name:               rec.Name,
			InterviewStages:    rec.InterviewStages,
			CategoryWeights:    rec.CategoryWeights,
			WeightedAttributes: rec.WeightedAttributes,
		},
		ID:            rec.ID,
		Status:        rec.Status,
		MissingFields: rec.MissingFields,
	}
}

type JobPostingFilter struct {
	Search string `json:"search"`
}
