package decision

import (
	"recruit-flow-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckDecidable(t *testing.T) {
	t.Run(`решение из decision_pending допускается check`, func(t *testing.T) {
		require.NoError(t, checkDecidable(models.PipelineStatusDecisionPending()))
	})

	t.Run(`решение до завершения воронки не допускается check`, func(t *testing.T) {
		require.ErrorIs(t, checkDecidable(models.PipelineStatusNew()), ErrPipelineNotComplete)
		require.ErrorIs(t, checkDecidable(models.PipelineStatusStage(0)), ErrPipelineNotComplete)
		require.ErrorIs(t, checkDecidable(models.PipelineStatusStage(2)), ErrPipelineNotComplete)
	})

	t.Run(`повторное решение по кандидату не допускается check`, func(t *testing.T) {
		accepted := models.PipelineStatusDecided(models.DecisionAccepted)
		rejected := models.PipelineStatusDecided(models.DecisionRejected)
		require.ErrorIs(t, checkDecidable(accepted), ErrAlreadyDecided)
		require.ErrorIs(t, checkDecidable(rejected), ErrAlreadyDecided)
	})
}

func TestDecideValidation(t *testing.T) {
	t.Run(`неизвестное решение отклоняется check`, func(t *testing.T) {
		_, err := impl{}.Decide("space", "candidate", models.Decision("maybe"), "заметки")
		require.Error(t, err)
	})

	t.Run(`решение без комментария отклоняется check`, func(t *testing.T) {
		_, err := impl{}.Decide("space", "candidate", models.DecisionAccepted, "")
		require.Error(t, err)
	})
}
