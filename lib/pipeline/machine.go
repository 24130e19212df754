package pipeline

import (
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
)

// ErrInvalidStageConfiguration - на вакансии нет ни одного этапа
// или указан индекс этапа вне диапазона
var ErrInvalidStageConfiguration = errors.New("некорректная конфигурация этапов вакансии")

// CompletedSet - множество завершенных этапов пары (кандидат, вакансия).
// Строится только по завершенным собеседованиям, записи старой схемы
// (round_1..round_3) отображаются на индексы 0..2.
type CompletedSet map[int]bool

func BuildCompletedSet(list []dbmodels.Interview) CompletedSet {
	completed := CompletedSet{}
	for _, rec := range list {
		if !rec.IsCompleted() {
			continue
		}
		completed[rec.EffectiveStageIndex()] = true
	}
	return completed
}

// NextStageIndex - первый не завершенный этап в порядке следования.
// nil когда все stageCount этапов завершены, воронка исчерпана.
// Этапы проходятся строго последовательно, подсказка используется слоем
// планирования собеседований для отклонения запросов не на очередной этап.
func NextStageIndex(completed CompletedSet, stageCount int) (*int, error) {
	if stageCount < 1 {
		return nil, ErrInvalidStageConfiguration
	}
	for index := 0; index < stageCount; index++ {
		if !completed[index] {
			return &index, nil
		}
	}
	return nil, nil
}

// AllStagesComplete - завершены все настроенные на вакансии этапы.
// Порог всегда равен текущему количеству этапов вакансии, а не константе:
// этапы могут добавляться и удаляться после старта кандидатов.
func AllStagesComplete(completed CompletedSet, stageCount int) (bool, error) {
	if stageCount < 1 {
		return false, ErrInvalidStageConfiguration
	}
	count := 0
	for index := 0; index < stageCount; index++ {
		if completed[index] {
			count++
		}
	}
	return count >= stageCount, nil
}
