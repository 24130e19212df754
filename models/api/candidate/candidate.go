package candidateapimodels

import (
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type CandidateData struct {
	JobPostingID string `json:"job_posting_id" validate:"required"` // Идентификатор вакансии
	FirstName    string `json:"first_name"`                         // Имя
	LastName     string `json:"last_name" validate:"required"`      // Фамилия
	MiddleName   string `json:"middle_name"`                        // Отчество
	Email        string `json:"email" validate:"required,email"`    // Емайл
	Phone        string `json:"phone"`                              // Телефон
	ResumeText   string `json:"resume_text"`                        // Текст резюме от внешнего загрузчика
}

type CandidateView struct {
	ID             string       `json:"id"`              // Идентификатор отклика
	PersonID       string       `json:"person_id"`       // Идентификатор человека
	JobPostingID   string       `json:"job_posting_id"`  // Идентификатор вакансии
	JobName        string       `json:"job_name"`        // Название вакансии
	FIO            string       `json:"fio"`             // ФИО кандидата
	Email          string       `json:"email"`           // Емайл
	AlgoScore      *int         `json:"algo_score"`      // Алгоритмическая оценка
	AiScore        *int         `json:"ai_score"`        // AI оценка
	CombinedScore  *int         `json:"combined_score"`  // Комбинированная оценка, null пока оценка не завершена
	Tier           *models.Tier `json:"tier"`            // Уровень кандидата
	PipelineStatus string       `json:"pipeline_status"` // Позиция в воронке
	FinalDecision  string       `json:"final_decision"`  // Итоговое решение
	DecisionNotes  string       `json:"decision_notes"`  // Комментарий к решению
	DecidedAt      string       `json:"decided_at"`      // Дата решения
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	result := CandidateView{
		ID:             rec.ID,
		PersonID:       rec.PersonID,
		JobPostingID:   rec.JobPostingID,
		AlgoScore:      rec.AlgoScore,
		AiScore:        rec.AiScore,
		CombinedScore:  rec.CombinedScore,
		Tier:           rec.Tier,
		PipelineStatus: rec.PipelineStatus.String(),
		DecisionNotes:  rec.DecisionNotes,
	}
	if rec.FinalDecision != nil {
		result.FinalDecision = string(*rec.FinalDecision)
	}
	if rec.DecidedAt != nil {
		result.DecidedAt = rec.DecidedAt.Format(time.RFC3339)
	}
	if rec.Person != nil {
		result.FIO = rec.Person.GetFIO()
		result.Email = rec.Person.Email
	}
	if rec.JobPosting != nil {
		result.JobName = rec.JobPosting.Name
	}
	return result
}

func CandidateConvertExt(rec dbmodels.CandidateExt) CandidateView {
	result := CandidateConvert(rec.Candidate)
	if result.FIO == "" {
		result.FIO = rec.PersonLastName + " " + rec.PersonFirstName
	}
	if result.Email == "" {
		result.Email = rec.PersonEmail
	}
	if result.JobName == "" {
		result.JobName = rec.JobName
	}
	return result
}

// ScoreData - оценка от внешнего скорера
type ScoreData struct {
	AlgoScore *int   `json:"algo_score"` // Алгоритмическая оценка 0..100
	AiScore   *int   `json:"ai_score"`   // AI оценка 0..100
	AiSummary string `json:"ai_summary"` // Свободный текст от AI скорера
}

func (s ScoreData) Validate() error {
	if s.AlgoScore == nil && s.AiScore == nil {
		return errors.New("не передано ни одной оценки")
	}
	return nil
}

type DecisionData struct {
	Decision string `json:"decision" validate:"required,oneof=accepted rejected"` // Решение accepted|rejected
	Notes    string `json:"notes" validate:"required"`                            // Обязательный комментарий к решению
}
