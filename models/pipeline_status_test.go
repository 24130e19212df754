package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPipelineStatus(t *testing.T) {
	t.Run(`строковое представление check`, func(t *testing.T) {
		require.Equal(t, "new", PipelineStatusNew().String())
		require.Equal(t, "stage_0", PipelineStatusStage(0).String())
		require.Equal(t, "stage_7", PipelineStatusStage(7).String())
		require.Equal(t, "decision_pending", PipelineStatusDecisionPending().String())
		require.Equal(t, "accepted", PipelineStatusDecided(DecisionAccepted).String())
		require.Equal(t, "rejected", PipelineStatusDecided(DecisionRejected).String())

		// нулевое значение читается как new
		require.Equal(t, "new", PipelineStatus{}.String())
	})

	t.Run(`разбор значений check`, func(t *testing.T) {
		status, err := ParsePipelineStatus("stage_2")
		require.Nil(t, err)
		require.Equal(t, PipelineKindStage, status.Kind)
		require.Equal(t, 2, status.StageIndex)

		status, err = ParsePipelineStatus("new")
		require.Nil(t, err)
		require.Equal(t, PipelineKindNew, status.Kind)

		status, err = ParsePipelineStatus("")
		require.Nil(t, err)
		require.Equal(t, PipelineKindNew, status.Kind)

		status, err = ParsePipelineStatus("decision_pending")
		require.Nil(t, err)
		require.Equal(t, PipelineKindDecisionPending, status.Kind)
	})

	t.Run(`псевдонимы старой схемы check`, func(t *testing.T) {
		status, err := ParsePipelineStatus("round_1")
		require.Nil(t, err)
		require.Equal(t, PipelineKindStage, status.Kind)
		require.Equal(t, 0, status.StageIndex)

		status, err = ParsePipelineStatus("round_3")
		require.Nil(t, err)
		require.Equal(t, 2, status.StageIndex)

		// при записи псевдонимы не восстанавливаются
		require.Equal(t, "stage_2", status.String())
	})

	t.Run(`некорректные значения check`, func(t *testing.T) {
		_, err := ParsePipelineStatus("stage_")
		require.NotNil(t, err)

		_, err = ParsePipelineStatus("stage_-1")
		require.NotNil(t, err)

		_, err = ParsePipelineStatus("round_4")
		require.NotNil(t, err)

		_, err = ParsePipelineStatus("unknown")
		require.NotNil(t, err)
	})

	t.Run(`терминальные статусы check`, func(t *testing.T) {
		require.True(t, PipelineStatusDecided(DecisionAccepted).IsTerminal())
		require.True(t, PipelineStatusDecided(DecisionRejected).IsTerminal())
		require.False(t, PipelineStatusNew().IsTerminal())
		require.False(t, PipelineStatusStage(1).IsTerminal())
		require.False(t, PipelineStatusDecisionPending().IsTerminal())
	})

	t.Run(`round trip через сериализацию check`, func(t *testing.T) {
		for _, status := range []PipelineStatus{
			PipelineStatusNew(),
			PipelineStatusStage(0),
			PipelineStatusStage(4),
			PipelineStatusDecisionPending(),
			PipelineStatusDecided(DecisionAccepted),
		} {
			parsed, err := ParsePipelineStatus(status.String())
			require.Nil(t, err)
			require.Equal(t, status, parsed)
		}
	})
}
