package interviewapimodels

import (
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
	"time"
)

type InterviewView struct {
	ID          string                 `json:"id"`           // Идентификатор собеседования
	CandidateID string                 `json:"candidate_id"` // Идентификатор отклика
	StageIndex  int                    `json:"stage_index"`  // Индекс этапа
	StageName   string                 `json:"stage_name"`   // Название этапа
	Status      models.InterviewStatus `json:"status"`       // Статус собеседования
	RoomName    string                 `json:"room_name"`    // Уникальное имя комнаты
	ScheduledAt string                 `json:"scheduled_at"` // Дата назначения
	CompletedAt string                 `json:"completed_at"` // Дата завершения
}

func InterviewConvert(rec dbmodels.Interview, job *dbmodels.JobPosting) InterviewView {
	result := InterviewView{
		ID:          rec.ID,
		CandidateID: rec.CandidateID,
		StageIndex:  rec.EffectiveStageIndex(),
		Status:      rec.Status,
		RoomName:    rec.RoomName,
	}
	if !rec.ScheduledAt.IsZero() {
		result.ScheduledAt = rec.ScheduledAt.Format(time.RFC3339)
	}
	if rec.CompletedAt != nil {
		result.CompletedAt = rec.CompletedAt.Format(time.RFC3339)
	}
	if job != nil {
		result.StageName = job.StageName(result.StageIndex)
	}
	return result
}

// NextStageView - подсказка следующего этапа для слоя планирования
type NextStageView struct {
	StageIndex *int   `json:"stage_index"` // Индекс следующего этапа, null если все этапы пройдены
	StageName  string `json:"stage_name"`  // Название этапа
	IsComplete bool   `json:"is_complete"` // Все этапы воронки завершены
}
