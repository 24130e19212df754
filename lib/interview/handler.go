package interview

import (
	"context"
	"recruit-flow-backend/db"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	interviewstore "recruit-flow-backend/lib/interview/store"
	jobstore "recruit-flow-backend/lib/job/store"
	"recruit-flow-backend/lib/pipeline"
	"recruit-flow-backend/lib/utils/lock"
	"recruit-flow-backend/models"
	interviewapimodels "recruit-flow-backend/models/api/interview"
	dbmodels "recruit-flow-backend/models/db"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrStageAlreadyScheduled - слот этапа уже занят неотмененным собеседованием.
// Ожидаемый конфликт при параллельном планировании: вызывающему следует
// перечитать следующий этап и повторить или считать этап уже назначенным.
var ErrStageAlreadyScheduled = errors.New("собеседование на этот этап уже назначено")

type Provider interface {
	Schedule(spaceID, candidateID string) (interviewapimodels.InterviewView, error)
	Start(spaceID, id string) error
	Complete(ctx context.Context, spaceID, id string) error
	Cancel(spaceID, id string) error
	List(spaceID, candidateID string) ([]interviewapimodels.InterviewView, error)
	NextStage(spaceID, candidateID string) (interviewapimodels.NextStageView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          interviewstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
		pipeline:       pipeline.Instance,
	}
}

type impl struct {
	store          interviewstore.Provider
	candidateStore candidatestore.Provider
	jobStore       jobstore.Provider
	pipeline       pipeline.Provider
}

func (i impl) getLogger(spaceID, candidateID string) *log.Entry {
	return log.
		WithField("space_id", spaceID).
		WithField("candidate_id", candidateID)
}

// Schedule назначает собеседование на очередной этап воронки.
// Подсказка следующего этапа консультативная: от гонки двух параллельных
// назначений защищает уникальный индекс слота, нарушение которого
// переводится в ErrStageAlreadyScheduled.
func (i impl) Schedule(spaceID, candidateID string) (interviewapimodels.InterviewView, error) {
	candidate, err := i.candidateStore.GetByID(spaceID, candidateID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if candidate == nil {
		return interviewapimodels.InterviewView{}, errors.New("кандидат не найден")
	}
	if candidate.PipelineStatus.IsTerminal() {
		return interviewapimodels.InterviewView{}, errors.New("по кандидату уже принято решение")
	}
	nextIndex, err := i.pipeline.NextStage(spaceID, candidateID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if nextIndex == nil {
		return interviewapimodels.InterviewView{}, ErrPipelineExhausted
	}
	job, err := i.jobStore.GetByID(spaceID, candidate.JobPostingID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	rec := dbmodels.Interview{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		CandidateID:  candidateID,
		JobPostingID: candidate.JobPostingID,
		StageIndex:   *nextIndex,
		Status:       models.InterviewStatusScheduled,
		RoomName:     uuid.NewString(),
		ScheduledAt:  time.Now(),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		if isUniqueViolation(err) {
			return interviewapimodels.InterviewView{}, ErrStageAlreadyScheduled
		}
		return interviewapimodels.InterviewView{}, err
	}
	rec.ID = id
	i.getLogger(spaceID, candidateID).
		WithField("stage_index", *nextIndex).
		Info("назначено собеседование")
	return interviewapimodels.InterviewConvert(rec, job), nil
}

// ErrPipelineExhausted - все этапы завершены, назначать больше нечего
var ErrPipelineExhausted = errors.New("все этапы воронки уже завершены")

func (i impl) Start(spaceID, id string) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("собеседование не найдено")
	}
	if rec.Status != models.InterviewStatusScheduled {
		return errors.Errorf("собеседование нельзя начать из статуса %s", rec.Status)
	}
	return i.store.Update(spaceID, id, map[string]interface{}{
		"status": models.InterviewStatusActive,
	})
}

// Complete завершает собеседование и продвигает кандидата по воронке.
// Продвижение идемпотентно, повторное завершение того же этапа
// дополнительного эффекта не имеет.
func (i impl) Complete(ctx context.Context, spaceID, id string) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("собеседование не найдено")
	}
	if rec.Status == models.InterviewStatusCancelled {
		return errors.New("отмененное собеседование нельзя завершить")
	}
	if rec.Status != models.InterviewStatusCompleted {
		err = i.store.Update(spaceID, id, map[string]interface{}{
			"status":       models.InterviewStatusCompleted,
			"completed_at": time.Now(),
		})
		if err != nil {
			return err
		}
	}
	key := lock.CandidateKey(spaceID, rec.CandidateID)
	ok, err := lock.WithDelay(ctx, key, 5*time.Second, func() error {
		return i.pipeline.Advance(spaceID, rec.CandidateID, rec.EffectiveStageIndex())
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("кандидат обрабатывается, повторите позже")
	}
	return nil
}

// Cancel отменяет собеседование. Отмена - локальное изменение записи,
// позиция кандидата в воронке не затрагивается, слот этапа освобождается.
func (i impl) Cancel(spaceID, id string) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("собеседование не найдено")
	}
	if rec.Status == models.InterviewStatusCompleted {
		return errors.New("завершенное собеседование нельзя отменить")
	}
	return i.store.Update(spaceID, id, map[string]interface{}{
		"status": models.InterviewStatusCancelled,
	})
}

func (i impl) List(spaceID, candidateID string) ([]interviewapimodels.InterviewView, error) {
	candidate, err := i.candidateStore.GetByID(spaceID, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, errors.New("кандидат не найден")
	}
	job, err := i.jobStore.GetByID(spaceID, candidate.JobPostingID)
	if err != nil {
		return nil, err
	}
	list, err := i.store.List(spaceID, candidateID)
	if err != nil {
		return nil, err
	}
	result := make([]interviewapimodels.InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, interviewapimodels.InterviewConvert(rec, job))
	}
	return result, nil
}

// NextStage - следующий непройденный этап воронки кандидата
func (i impl) NextStage(spaceID, candidateID string) (interviewapimodels.NextStageView, error) {
	candidate, err := i.candidateStore.GetByID(spaceID, candidateID)
	if err != nil {
		return interviewapimodels.NextStageView{}, err
	}
	if candidate == nil {
		return interviewapimodels.NextStageView{}, errors.New("кандидат не найден")
	}
	nextIndex, err := i.pipeline.NextStage(spaceID, candidateID)
	if err != nil {
		return interviewapimodels.NextStageView{}, err
	}
	if nextIndex == nil {
		return interviewapimodels.NextStageView{IsComplete: true}, nil
	}
	job, err := i.jobStore.GetByID(spaceID, candidate.JobPostingID)
	if err != nil {
		return interviewapimodels.NextStageView{}, err
	}
	view := interviewapimodels.NextStageView{StageIndex: nextIndex}
	if job != nil {
		view.StageName = job.StageName(*nextIndex)
	}
	return view, nil
}

// isUniqueViolation - нарушение уникального индекса слота этапа
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
