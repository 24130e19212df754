package decision

import (
	"recruit-flow-backend/config"
	"recruit-flow-backend/db"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	"recruit-flow-backend/lib/smtp"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrPipelineNotComplete - решение запрошено до завершения всех этапов воронки
	ErrPipelineNotComplete = errors.New("этапы воронки еще не завершены")
	// ErrAlreadyDecided - по кандидату уже принято итоговое решение
	ErrAlreadyDecided = errors.New("решение по кандидату уже принято")
)

type Provider interface {
	Decide(spaceID, candidateID string, decisionValue models.Decision, notes string) (*dbmodels.Candidate, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		smtp: smtp.Instance,
	}
}

type impl struct {
	smtp smtp.Provider
}

func (i impl) getLogger(spaceID, candidateID string) *log.Entry {
	return log.
		WithField("space_id", spaceID).
		WithField("candidate_id", candidateID)
}

// Decide фиксирует итоговое решение по кандидату.
// Допускается только из статуса decision_pending, переход терминальный:
// повторный вызов завершается ErrAlreadyDecided и не трогает decided_at.
func (i impl) Decide(spaceID, candidateID string, decisionValue models.Decision, notes string) (*dbmodels.Candidate, error) {
	if !decisionValue.IsValid() {
		return nil, errors.Errorf("неизвестное решение: %s", decisionValue)
	}
	if notes == "" {
		return nil, errors.New("комментарий к решению обязателен")
	}
	logger := i.getLogger(spaceID, candidateID)
	var result *dbmodels.Candidate
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		candidateStore := candidatestore.NewInstance(tx)
		candidate, err := candidateStore.GetByIDForUpdate(spaceID, candidateID)
		if err != nil {
			return err
		}
		if candidate == nil {
			return errors.New("кандидат не найден")
		}
		if err = checkDecidable(candidate.PipelineStatus); err != nil {
			return err
		}
		now := time.Now()
		newStatus := models.PipelineStatusDecided(decisionValue)
		err = candidateStore.Update(spaceID, candidateID, map[string]interface{}{
			"final_decision":  string(decisionValue),
			"decision_notes":  notes,
			"decided_at":      now,
			"pipeline_status": newStatus.String(),
		})
		if err != nil {
			return err
		}
		candidate.FinalDecision = &decisionValue
		candidate.DecisionNotes = notes
		candidate.DecidedAt = &now
		candidate.PipelineStatus = newStatus
		result = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.
		WithField("decision", string(decisionValue)).
		Info("зафиксировано итоговое решение по кандидату")
	// перечитываем со связями, чтобы отдать наружу данные персоны и вакансии
	full, err := candidatestore.NewInstance(db.DB).GetByID(spaceID, candidateID)
	if err != nil || full == nil {
		i.notify(result)
		return result, nil
	}
	i.notify(full)
	return full, nil
}

// уведомление кандидата о решении, при настроенном smtp
func (i impl) notify(candidate *dbmodels.Candidate) {
	if config.Conf.Smtp.DecisionNotify == nil || !*config.Conf.Smtp.DecisionNotify {
		return
	}
	if candidate.Person == nil || candidate.Person.Email == "" {
		return
	}
	message := "К сожалению, мы приняли решение не продолжать процесс найма."
	if *candidate.FinalDecision == models.DecisionAccepted {
		message = "Поздравляем, по итогам собеседований принято положительное решение!"
	}
	err := i.smtp.SendEMail(config.Conf.Smtp.DecisionSender, candidate.Person.Email, message, "Результат рассмотрения")
	if err != nil {
		i.getLogger(candidate.SpaceID, candidate.ID).
			WithError(err).Error("ошибка отправки уведомления о решении")
	}
}

// checkDecidable - решение допускается только из статуса decision_pending.
// По терминальному кандидату повторное решение не принимается.
func checkDecidable(status models.PipelineStatus) error {
	if status.IsTerminal() {
		return ErrAlreadyDecided
	}
	if status.Kind != models.PipelineKindDecisionPending {
		return ErrPipelineNotComplete
	}
	return nil
}
