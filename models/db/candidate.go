package dbmodels

import (
	"recruit-flow-backend/models"
	"time"
)

// Candidate - отклик человека на конкретную вакансию.
// Один человек может откликнуться на вакансию только один раз,
// оценки и позиция в воронке считаются на отклик, а не на человека.
type Candidate struct {
	BaseSpaceModel
	PersonID     string      `gorm:"type:varchar(36);uniqueIndex:idx_person_job"`
	Person       *Person     `gorm:"foreignKey:PersonID"`
	JobPostingID string      `gorm:"type:varchar(36);uniqueIndex:idx_person_job;index"`
	JobPosting   *JobPosting `gorm:"foreignKey:JobPostingID"`

	AlgoScore     *int                  // алгоритмическая оценка 0..100, от внешнего скорера
	AiScore       *int                  // AI оценка 0..100, от внешнего скорера
	CombinedScore *int                  // производная, пишется только агрегатором оценок
	Tier          *models.Tier          `gorm:"type:varchar(50)"`
	AiSummary     string                // свободный текст от AI скорера
	ResumeText    string                // извлеченный текст резюме, приходит от внешнего загрузчика

	PipelineStatus models.PipelineStatus `gorm:"type:varchar(50)"`
	FinalDecision  *models.Decision      `gorm:"type:varchar(50)"`
	DecisionNotes  string
	DecidedAt      *time.Time
}

// HasBothScores - обе внешние оценки получены, можно считать комбинированную
func (c Candidate) HasBothScores() bool {
	return c.AlgoScore != nil && c.AiScore != nil
}

type CandidateExt struct {
	Candidate
	PersonFirstName string
	PersonLastName  string
	PersonEmail     string
	JobName         string
}

type CandidateFilter struct {
	JobPostingID string `json:"job_posting_id"`
	Search       string `json:"search"`
	ByScore      bool   `json:"by_score"` // сортировка по комбинированной оценке
}
