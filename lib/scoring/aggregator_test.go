package scoring

import (
	"testing"

	"recruit-flow-backend/models"

	"github.com/stretchr/testify/require"
)

func intPtr(value int) *int {
	return &value
}

func TestCombine(t *testing.T) {
	t.Run(`среднее двух оценок с округлением check`, func(t *testing.T) {
		result, err := Combine(intPtr(90), intPtr(80))
		require.Nil(t, err)
		require.NotNil(t, result.CombinedScore)
		require.Equal(t, 85, *result.CombinedScore)
		require.NotNil(t, result.Tier)
		require.Equal(t, models.TierTop, *result.Tier)

		// 75.5 округляется вверх
		result, err = Combine(intPtr(75), intPtr(76))
		require.Nil(t, err)
		require.Equal(t, 76, *result.CombinedScore)
	})

	t.Run(`без одной из оценок результат пустой check`, func(t *testing.T) {
		result, err := Combine(intPtr(90), nil)
		require.Nil(t, err)
		require.Nil(t, result.CombinedScore)
		require.Nil(t, result.Tier)

		result, err = Combine(nil, intPtr(90))
		require.Nil(t, err)
		require.Nil(t, result.CombinedScore)
		require.Nil(t, result.Tier)

		result, err = Combine(nil, nil)
		require.Nil(t, err)
		require.Nil(t, result.CombinedScore)
	})

	t.Run(`оценка вне диапазона check`, func(t *testing.T) {
		_, err := Combine(intPtr(-1), intPtr(50))
		require.ErrorIs(t, err, ErrInvalidScoreRange)

		_, err = Combine(intPtr(50), intPtr(101))
		require.ErrorIs(t, err, ErrInvalidScoreRange)
	})

	t.Run(`границы диапазона check`, func(t *testing.T) {
		result, err := Combine(intPtr(0), intPtr(0))
		require.Nil(t, err)
		require.Equal(t, 0, *result.CombinedScore)
		require.Equal(t, models.TierPoor, *result.Tier)

		result, err = Combine(intPtr(100), intPtr(100))
		require.Nil(t, err)
		require.Equal(t, 100, *result.CombinedScore)
		require.Equal(t, models.TierTop, *result.Tier)
	})
}

func TestTierFromScore(t *testing.T) {
	t.Run(`нижние границы уровней включительно check`, func(t *testing.T) {
		require.Equal(t, models.TierTop, TierFromScore(85))
		require.Equal(t, models.TierStrong, TierFromScore(84))
		require.Equal(t, models.TierStrong, TierFromScore(70))
		require.Equal(t, models.TierGood, TierFromScore(69))
		require.Equal(t, models.TierGood, TierFromScore(55))
		require.Equal(t, models.TierEvaluate, TierFromScore(54))
		require.Equal(t, models.TierEvaluate, TierFromScore(40))
		require.Equal(t, models.TierPoor, TierFromScore(39))
		require.Equal(t, models.TierPoor, TierFromScore(0))
	})
}
