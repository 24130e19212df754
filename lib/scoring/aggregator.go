package scoring

import (
	"math"
	"recruit-flow-backend/models"

	"github.com/pkg/errors"
)

// ErrInvalidScoreRange - входная оценка вне диапазона [0,100].
// Входные оценки не зажимаются молча, зажимается только результат Combine.
var ErrInvalidScoreRange = errors.New("оценка вне диапазона [0,100]")

type Result struct {
	CombinedScore *int
	Tier          *models.Tier
}

// Combine сводит алгоритмическую и AI оценки в комбинированную оценку и уровень.
// Пока любая из оценок отсутствует, оценка не завершена: обе части результата nil,
// UI обязан показывать "не оценен", а не ноль. Функция чистая, запись результата
// на кандидата - забота вызывающего.
func Combine(algoScore, aiScore *int) (Result, error) {
	if algoScore != nil && (*algoScore < 0 || *algoScore > 100) {
		return Result{}, ErrInvalidScoreRange
	}
	if aiScore != nil && (*aiScore < 0 || *aiScore > 100) {
		return Result{}, ErrInvalidScoreRange
	}
	if algoScore == nil || aiScore == nil {
		return Result{}, nil
	}
	combined := int(math.Round(float64(*algoScore+*aiScore) / 2))
	if combined < 0 {
		combined = 0
	}
	if combined > 100 {
		combined = 100
	}
	tier := TierFromScore(combined)
	return Result{CombinedScore: &combined, Tier: &tier}, nil
}

// TierFromScore - ступенчатая функция уровня от комбинированной оценки,
// нижние границы включительно
func TierFromScore(combinedScore int) models.Tier {
	switch {
	case combinedScore >= 85:
		return models.TierTop
	case combinedScore >= 70:
		return models.TierStrong
	case combinedScore >= 55:
		return models.TierGood
	case combinedScore >= 40:
		return models.TierEvaluate
	}
	return models.TierPoor
}
