package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"recruit-flow-backend/models"

	"github.com/pkg/errors"
)

type JobPosting struct {
	BaseSpaceModel
	Name               string                  `gorm:"type:varchar(255)"`
	Status             models.JobPostingStatus `gorm:"type:varchar(50)"`
	InterviewStages    InterviewStages         `gorm:"type:jsonb"` // упорядоченный список этапов собеседований
	CategoryWeights    CategoryWeights         `gorm:"type:jsonb"` // вес категории требований [0,1]
	WeightedAttributes WeightedAttributes      `gorm:"type:jsonb"` // взвешенные требования по категориям
	MissingFields      MissingFields           `gorm:"type:jsonb"` // незаполненные категории, допустимое состояние
}

// StageCount - количество этапов воронки, настроенное на вакансии
func (j JobPosting) StageCount() int {
	return len(j.InterviewStages)
}

// StageName - название этапа по индексу, для отображения
func (j JobPosting) StageName(index int) string {
	if index < 0 || index >= len(j.InterviewStages) {
		return ""
	}
	return j.InterviewStages[index]
}

func (j JobPosting) IsEditable() bool {
	return j.Status == models.JobPostingStatusDraft || j.Status == models.JobPostingStatusPublished
}

type InterviewStages []string

func (j InterviewStages) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *InterviewStages) Scan(value interface{}) error {
	return scanJSONB(value, j)
}

type CategoryWeights map[models.WeightCategory]float64

func (j CategoryWeights) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *CategoryWeights) Scan(value interface{}) error {
	return scanJSONB(value, j)
}

type WeightedAttribute struct {
	Value  string  `json:"value"`  // Текст требования
	Weight float64 `json:"weight"` // Вес требования [0,1]
}

type WeightedAttributes map[models.WeightCategory][]WeightedAttribute

func (j WeightedAttributes) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *WeightedAttributes) Scan(value interface{}) error {
	return scanJSONB(value, j)
}

type MissingFields []string

func (j MissingFields) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *MissingFields) Scan(value interface{}) error {
	return scanJSONB(value, j)
}

func scanJSONB(value interface{}, out interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, out)
	case string:
		return json.Unmarshal([]byte(v), out)
	case nil:
		return nil
	}
	return errors.Errorf("неожиданный тип jsonb: %T", value)
}
