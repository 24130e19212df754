package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type PipelineStatusKind string

const (
	PipelineKindNew             PipelineStatusKind = "new"
	PipelineKindStage           PipelineStatusKind = "stage"
	PipelineKindDecisionPending PipelineStatusKind = "decision_pending"
	PipelineKindAccepted        PipelineStatusKind = "accepted"
	PipelineKindRejected        PipelineStatusKind = "rejected"
)

// PipelineStatus - позиция кандидата в воронке собеседований.
// Внутри кода статус всегда типизированный, строковое представление
// (new|stage_<i>|decision_pending|accepted|rejected) живет только на границе
// сериализации. Устаревшие значения round_1..round_3 принимаются при чтении
// как псевдонимы stage_0..stage_2.
type PipelineStatus struct {
	Kind       PipelineStatusKind
	StageIndex int
}

func PipelineStatusNew() PipelineStatus {
	return PipelineStatus{Kind: PipelineKindNew}
}

func PipelineStatusStage(index int) PipelineStatus {
	return PipelineStatus{Kind: PipelineKindStage, StageIndex: index}
}

func PipelineStatusDecisionPending() PipelineStatus {
	return PipelineStatus{Kind: PipelineKindDecisionPending}
}

func PipelineStatusDecided(decision Decision) PipelineStatus {
	if decision == DecisionAccepted {
		return PipelineStatus{Kind: PipelineKindAccepted}
	}
	return PipelineStatus{Kind: PipelineKindRejected}
}

func (s PipelineStatus) IsTerminal() bool {
	return s.Kind == PipelineKindAccepted || s.Kind == PipelineKindRejected
}

func (s PipelineStatus) String() string {
	if s.Kind == PipelineKindStage {
		return fmt.Sprintf("stage_%d", s.StageIndex)
	}
	if s.Kind == "" {
		return string(PipelineKindNew)
	}
	return string(s.Kind)
}

// legacyRounds - значения статусов из старой схемы с фиксированными тремя раундами
var legacyRounds = map[string]int{
	"round_1": 0,
	"round_2": 1,
	"round_3": 2,
}

func ParsePipelineStatus(value string) (PipelineStatus, error) {
	if index, ok := legacyRounds[value]; ok {
		return PipelineStatusStage(index), nil
	}
	if rest, ok := strings.CutPrefix(value, "stage_"); ok {
		index, err := strconv.Atoi(rest)
		if err != nil || index < 0 {
			return PipelineStatus{}, errors.Errorf("некорректный статус воронки: %s", value)
		}
		return PipelineStatusStage(index), nil
	}
	switch PipelineStatusKind(value) {
	case PipelineKindNew, "":
		return PipelineStatusNew(), nil
	case PipelineKindDecisionPending:
		return PipelineStatusDecisionPending(), nil
	case PipelineKindAccepted:
		return PipelineStatus{Kind: PipelineKindAccepted}, nil
	case PipelineKindRejected:
		return PipelineStatus{Kind: PipelineKindRejected}, nil
	}
	return PipelineStatus{}, errors.Errorf("некорректный статус воронки: %s", value)
}

// LegacyStageIndex - индекс этапа для устаревшего значения раунда, если оно известно
func LegacyStageIndex(value string) (int, bool) {
	index, ok := legacyRounds[value]
	return index, ok
}

func (s PipelineStatus) Value() (driver.Value, error) {
	return s.String(), nil
}

func (s *PipelineStatus) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*s = PipelineStatusNew()
		return nil
	default:
		return errors.Errorf("неожиданный тип статуса воронки: %T", value)
	}
	parsed, err := ParsePipelineStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s PipelineStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PipelineStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParsePipelineStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
