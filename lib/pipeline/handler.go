package pipeline

import (
	"recruit-flow-backend/db"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	interviewstore "recruit-flow-backend/lib/interview/store"
	jobstore "recruit-flow-backend/lib/job/store"
	"recruit-flow-backend/models"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	NextStage(spaceID, candidateID string) (stageIndex *int, err error)
	IsComplete(spaceID, candidateID string) (bool, error)
	Advance(spaceID, candidateID string, completedStageIndex int) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) getLogger(spaceID, candidateID string) *log.Entry {
	return log.
		WithField("space_id", spaceID).
		WithField("candidate_id", candidateID)
}

// NextStage - первый незавершенный этап воронки кандидата.
// Подсказка для слоя планирования: создание собеседования защищено
// уникальным индексом, а не этой функцией.
func (i impl) NextStage(spaceID, candidateID string) (*int, error) {
	completed, stageCount, err := i.loadState(db.DB, spaceID, candidateID)
	if err != nil {
		return nil, err
	}
	return NextStageIndex(completed, stageCount)
}

func (i impl) IsComplete(spaceID, candidateID string) (bool, error) {
	completed, stageCount, err := i.loadState(db.DB, spaceID, candidateID)
	if err != nil {
		return false, err
	}
	return AllStagesComplete(completed, stageCount)
}

// Advance пересчитывает позицию кандидата в воронке после завершения этапа.
// Операция идемпотентна: состояние выводится из завершенных собеседований,
// повторный вызов для того же этапа ничего не меняет. Проверка завершенности
// и смена статуса выполняются в одной транзакции под блокировкой строки
// кандидата, иначе два параллельных завершения последних этапов могли бы
// оба не увидеть завершения воронки.
func (i impl) Advance(spaceID, candidateID string, completedStageIndex int) error {
	logger := i.getLogger(spaceID, candidateID)
	return db.DB.Transaction(func(tx *gorm.DB) error {
		candidateStore := candidatestore.NewInstance(tx)
		candidate, err := candidateStore.GetByIDForUpdate(spaceID, candidateID)
		if err != nil {
			return err
		}
		if candidate == nil {
			return errors.New("кандидат не найден")
		}
		if candidate.PipelineStatus.IsTerminal() {
			// решение уже принято, прогресс воронки не трогаем
			return nil
		}
		completed, stageCount, err := i.loadState(tx, spaceID, candidateID)
		if err != nil {
			return err
		}
		if completedStageIndex < 0 || completedStageIndex >= stageCount {
			return ErrInvalidStageConfiguration
		}
		isComplete, err := AllStagesComplete(completed, stageCount)
		if err != nil {
			return err
		}
		newStatus := models.PipelineStatusDecisionPending()
		if !isComplete {
			nextIndex, err := NextStageIndex(completed, stageCount)
			if err != nil {
				return err
			}
			if nextIndex == nil {
				return errors.New("воронка не завершена, но следующий этап не найден")
			}
			newStatus = models.PipelineStatusStage(*nextIndex)
		}
		if candidate.PipelineStatus == newStatus {
			return nil
		}
		err = candidateStore.Update(spaceID, candidateID, map[string]interface{}{
			"pipeline_status": newStatus.String(),
		})
		if err != nil {
			return err
		}
		logger.
			WithField("pipeline_status", newStatus.String()).
			Info("позиция кандидата в воронке обновлена")
		return nil
	})
}

// loadState - завершенные этапы и текущее количество этапов вакансии.
// Количество всегда берется из актуальной конфигурации вакансии.
func (i impl) loadState(tx *gorm.DB, spaceID, candidateID string) (CompletedSet, int, error) {
	candidateStore := candidatestore.NewInstance(tx)
	candidate, err := candidateStore.GetByID(spaceID, candidateID)
	if err != nil {
		return nil, 0, err
	}
	if candidate == nil {
		return nil, 0, errors.New("кандидат не найден")
	}
	job, err := jobstore.NewInstance(tx).GetByID(spaceID, candidate.JobPostingID)
	if err != nil {
		return nil, 0, err
	}
	if job == nil {
		return nil, 0, errors.New("вакансия не найдена")
	}
	list, err := interviewstore.NewInstance(tx).ListCompleted(spaceID, candidateID, candidate.JobPostingID)
	if err != nil {
		return nil, 0, err
	}
	return BuildCompletedSet(list), job.StageCount(), nil
}
