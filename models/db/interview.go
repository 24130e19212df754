package dbmodels

import (
	"recruit-flow-backend/models"
	"time"
)

// Interview - собеседование кандидата на одном этапе воронки.
// На тройку (candidate_id, job_posting_id, stage_index) допускается не более
// одной неотмененной записи, частичный уникальный индекс создается в миграции.
// Отмененное собеседование освобождает слот этапа.
type Interview struct {
	BaseSpaceModel
	CandidateID  string                 `gorm:"type:varchar(36);index"`
	JobPostingID string                 `gorm:"type:varchar(36);index"`
	StageIndex   int                    // позиция этапа в interview_stages вакансии, с нуля
	LegacyStage  string                 `gorm:"type:varchar(50)"` // round_1..round_3 из старой схемы, для новых записей пусто
	Status       models.InterviewStatus `gorm:"type:varchar(50)"`
	RoomName     string                 `gorm:"type:varchar(100);uniqueIndex"`
	ScheduledAt  time.Time
	CompletedAt  *time.Time
}

// EffectiveStageIndex - индекс этапа с учетом записей старой схемы
func (i Interview) EffectiveStageIndex() int {
	if i.LegacyStage != "" {
		if index, ok := models.LegacyStageIndex(i.LegacyStage); ok {
			return index
		}
	}
	return i.StageIndex
}

func (i Interview) IsCompleted() bool {
	return i.Status == models.InterviewStatusCompleted
}
