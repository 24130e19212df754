package pipeline

import (
	"testing"

	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/stretchr/testify/require"
)

func completedInterview(stageIndex int) dbmodels.Interview {
	return dbmodels.Interview{
		StageIndex: stageIndex,
		Status:     models.InterviewStatusCompleted,
	}
}

func TestBuildCompletedSet(t *testing.T) {
	t.Run(`учитываются только завершенные собеседования check`, func(t *testing.T) {
		list := []dbmodels.Interview{
			completedInterview(0),
			{StageIndex: 1, Status: models.InterviewStatusScheduled},
			{StageIndex: 2, Status: models.InterviewStatusCancelled},
		}
		completed := BuildCompletedSet(list)
		require.True(t, completed[0])
		require.False(t, completed[1])
		require.False(t, completed[2])
	})

	t.Run(`записи старой схемы отображаются на индексы check`, func(t *testing.T) {
		list := []dbmodels.Interview{
			{LegacyStage: "round_1", Status: models.InterviewStatusCompleted},
			{LegacyStage: "round_3", Status: models.InterviewStatusCompleted},
		}
		completed := BuildCompletedSet(list)
		require.True(t, completed[0])
		require.False(t, completed[1])
		require.True(t, completed[2])
	})
}

func TestNextStageIndex(t *testing.T) {
	t.Run(`первый незавершенный этап check`, func(t *testing.T) {
		next, err := NextStageIndex(CompletedSet{}, 3)
		require.Nil(t, err)
		require.NotNil(t, next)
		require.Equal(t, 0, *next)

		next, err = NextStageIndex(CompletedSet{0: true}, 3)
		require.Nil(t, err)
		require.Equal(t, 1, *next)

		// пропуск в середине возвращает пропущенный этап
		next, err = NextStageIndex(CompletedSet{0: true, 2: true}, 3)
		require.Nil(t, err)
		require.Equal(t, 1, *next)
	})

	t.Run(`все этапы завершены check`, func(t *testing.T) {
		next, err := NextStageIndex(CompletedSet{0: true, 1: true, 2: true}, 3)
		require.Nil(t, err)
		require.Nil(t, next)
	})

	t.Run(`количество этапов берется из текущей конфигурации check`, func(t *testing.T) {
		completed := CompletedSet{0: true, 1: true, 2: true}

		// вакансию расширили до пяти этапов, воронка снова не завершена
		next, err := NextStageIndex(completed, 5)
		require.Nil(t, err)
		require.NotNil(t, next)
		require.Equal(t, 3, *next)

		// вакансию сократили до двух этапов, воронка завершена
		next, err = NextStageIndex(completed, 2)
		require.Nil(t, err)
		require.Nil(t, next)
	})

	t.Run(`вакансия без этапов check`, func(t *testing.T) {
		_, err := NextStageIndex(CompletedSet{}, 0)
		require.ErrorIs(t, err, ErrInvalidStageConfiguration)
	})
}

func TestAllStagesComplete(t *testing.T) {
	t.Run(`завершенность по текущему количеству этапов check`, func(t *testing.T) {
		done, err := AllStagesComplete(CompletedSet{0: true, 1: true, 2: true}, 3)
		require.Nil(t, err)
		require.True(t, done)

		done, err = AllStagesComplete(CompletedSet{0: true, 1: true}, 3)
		require.Nil(t, err)
		require.False(t, done)

		// завершенные этапы за пределами текущего набора не учитываются
		done, err = AllStagesComplete(CompletedSet{3: true, 4: true}, 2)
		require.Nil(t, err)
		require.False(t, done)
	})

	t.Run(`вакансия без этапов check`, func(t *testing.T) {
		_, err := AllStagesComplete(CompletedSet{}, 0)
		require.ErrorIs(t, err, ErrInvalidStageConfiguration)
	})
}
