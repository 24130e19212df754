package candidate

import (
	"bytes"
	"recruit-flow-backend/db"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	pdfexport "recruit-flow-backend/lib/export/pdf"
	xlsexport "recruit-flow-backend/lib/export/xls"
	jobstore "recruit-flow-backend/lib/job/store"
	personstore "recruit-flow-backend/lib/person/store"
	"recruit-flow-backend/models"
	candidateapimodels "recruit-flow-backend/models/api/candidate"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(spaceID string, data candidateapimodels.CandidateData) (id string, hMsg string, err error)
	GetByID(spaceID, id string) (candidateapimodels.CandidateView, error)
	List(spaceID string, filter dbmodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	ExportList(spaceID string, filter dbmodels.CandidateFilter) (*bytes.Buffer, error)
	GetDecisionReport(spaceID, id string) (pdfFile []byte, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       candidatestore.NewInstance(db.DB),
		personStore: personstore.NewInstance(db.DB),
		jobStore:    jobstore.NewInstance(db.DB),
		xlsExport:   xlsexport.Instance,
	}
}

type impl struct {
	store       candidatestore.Provider
	personStore personstore.Provider
	jobStore    jobstore.Provider
	xlsExport   xlsexport.Provider
}

func (i impl) getLogger(spaceID string) *log.Entry {
	return log.WithField("space_id", spaceID)
}

// Create заводит отклик на вакансию. Человек ищется по емайлу,
// при отсутствии создается. Повторный отклик того же человека на ту же
// вакансию отклоняется.
func (i impl) Create(spaceID string, data candidateapimodels.CandidateData) (id string, hMsg string, err error) {
	job, err := i.jobStore.GetByID(spaceID, data.JobPostingID)
	if err != nil {
		return "", "", err
	}
	if job == nil {
		return "", "вакансия не найдена", nil
	}
	if job.Status == models.JobPostingStatusArchived || job.Status == models.JobPostingStatusClosed {
		return "", "вакансия закрыта, отклик невозможен", nil
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		personStore := personstore.NewInstance(tx)
		candidateStore := candidatestore.NewInstance(tx)
		person, err := personStore.GetByEmail(spaceID, data.Email)
		if err != nil {
			return err
		}
		personID := ""
		if person != nil {
			personID = person.ID
		} else {
			personID, err = personStore.Create(dbmodels.Person{
				BaseSpaceModel: dbmodels.BaseSpaceModel{
					SpaceID: spaceID,
				},
				FirstName:  data.FirstName,
				LastName:   data.LastName,
				MiddleName: data.MiddleName,
				Email:      data.Email,
				Phone:      data.Phone,
			})
			if err != nil {
				return err
			}
		}
		id, err = candidateStore.Create(dbmodels.Candidate{
			BaseSpaceModel: dbmodels.BaseSpaceModel{
				SpaceID: spaceID,
			},
			PersonID:       personID,
			JobPostingID:   data.JobPostingID,
			ResumeText:     data.ResumeText,
			PipelineStatus: models.PipelineStatusNew(),
		})
		return err
	})
	if err != nil {
		if isDuplicate(err) {
			return "", "человек уже откликался на эту вакансию", nil
		}
		return "", "", err
	}
	i.getLogger(spaceID).
		WithField("candidate_id", id).
		WithField("job_posting_id", data.JobPostingID).
		Info("создан отклик кандидата")
	return id, "", nil
}

func (i impl) GetByID(spaceID, id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, errors.New("кандидат не найден")
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) List(spaceID string, filter dbmodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error) {
	recs, rowCount, err := i.store.List(spaceID, filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]candidateapimodels.CandidateView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, candidateapimodels.CandidateConvert(rec))
	}
	return list, rowCount, nil
}

// ExportList - выгрузка рейтинга кандидатов в xlsx
func (i impl) ExportList(spaceID string, filter dbmodels.CandidateFilter) (*bytes.Buffer, error) {
	filter.ByScore = true
	recs, _, err := i.store.List(spaceID, filter)
	if err != nil {
		return nil, err
	}
	return i.xlsExport.ExportCandidateList(recs)
}

// GetDecisionReport - pdf отчет по кандидату, доступен после принятия решения
func (i impl) GetDecisionReport(spaceID, id string) ([]byte, string, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "кандидат не найден", nil
	}
	if rec.FinalDecision == nil {
		return nil, "решение по кандидату еще не принято", nil
	}
	pdfFile, err := pdfexport.GenerateDecisionReport(*rec)
	if err != nil {
		return nil, "", err
	}
	return pdfFile, "", nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
