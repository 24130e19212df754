package jobhandler

import (
	"recruit-flow-backend/db"
	jobstore "recruit-flow-backend/lib/job/store"
	"recruit-flow-backend/lib/weights"
	"recruit-flow-backend/models"
	jobapimodels "recruit-flow-backend/models/api/job"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(spaceID, userID string, data jobapimodels.JobPostingData) (id string, err error)
	GetByID(spaceID, id string) (jobapimodels.JobPostingView, error)
	Update(spaceID, id string, data jobapimodels.JobPostingData) (hMsg string, err error)
	List(spaceID string, filter jobapimodels.JobPostingFilter) (list []jobapimodels.JobPostingView, err error)
	ChangeStatus(spaceID, id string, status models.JobPostingStatus) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) getLogger(spaceID, jobID string) *log.Entry {
	return log.
		WithField("space_id", spaceID).
		WithField("job_posting_id", jobID)
}

func (i impl) Create(spaceID, userID string, data jobapimodels.JobPostingData) (id string, err error) {
	stages := data.InterviewStages
	if len(stages) == 0 {
		stages = models.DefaultInterviewStages
	}
	rec := dbmodels.JobPosting{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		Name:               data.Name,
		Status:             models.JobPostingStatusDraft,
		InterviewStages:    stages,
		CategoryWeights:    data.CategoryWeights,
		WeightedAttributes: data.WeightedAttributes,
	}
	rec = weights.Normalize(rec)
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.getLogger(spaceID, id).
		WithField("user_id", userID).
		Info("создана вакансия")
	return id, nil
}

func (i impl) GetByID(spaceID, id string) (jobapimodels.JobPostingView, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return jobapimodels.JobPostingView{}, err
	}
	if rec == nil {
		return jobapimodels.JobPostingView{}, errors.New("вакансия не найдена")
	}
	view := jobapimodels.JobPostingConvert(*rec)
	view.Warnings = weights.Validate(*rec)
	return view, nil
}

// Update изменяет этапы и взвешенные требования вакансии.
// Конфигурация изменяема до закрытия вакансии.
func (i impl) Update(spaceID, id string, data jobapimodels.JobPostingData) (hMsg string, err error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "вакансия не найдена", nil
	}
	if !rec.IsEditable() {
		return "вакансия закрыта, изменение недоступно", nil
	}
	rec.Name = data.Name
	if len(data.InterviewStages) != 0 {
		rec.InterviewStages = data.InterviewStages
	}
	rec.CategoryWeights = data.CategoryWeights
	rec.WeightedAttributes = data.WeightedAttributes
	normalized := weights.Normalize(*rec)
	err = i.store.Update(spaceID, id, map[string]interface{}{
		"name":                normalized.Name,
		"interview_stages":    normalized.InterviewStages,
		"category_weights":    normalized.CategoryWeights,
		"weighted_attributes": normalized.WeightedAttributes,
		"missing_fields":      normalized.MissingFields,
	})
	if err != nil {
		return "", err
	}
	return "", nil
}

func (i impl) List(spaceID string, filter jobapimodels.JobPostingFilter) (list []jobapimodels.JobPostingView, err error) {
	recs, err := i.store.List(spaceID, filter.Search)
	if err != nil {
		return nil, err
	}
	list = make([]jobapimodels.JobPostingView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, jobapimodels.JobPostingConvert(rec))
	}
	return list, nil
}

// ChangeStatus - смена статуса вакансии. Вакансии не удаляются,
// только архивируются.
func (i impl) ChangeStatus(spaceID, id string, status models.JobPostingStatus) (hMsg string, err error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "вакансия не найдена", nil
	}
	if rec.Status == models.JobPostingStatusArchived {
		return "вакансия уже в архиве", nil
	}
	err = i.store.Update(spaceID, id, map[string]interface{}{
		"status": status,
	})
	if err != nil {
		return "", err
	}
	return "", nil
}
