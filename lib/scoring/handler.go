package scoring

import (
	"recruit-flow-backend/db"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	candidateapimodels "recruit-flow-backend/models/api/candidate"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	SetScores(spaceID, candidateID string, data candidateapimodels.ScoreData) error
	CombineScores(spaceID, candidateID string) (Result, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	store candidatestore.Provider
}

func (i impl) getLogger(spaceID, candidateID string) *log.Entry {
	return log.
		WithField("space_id", spaceID).
		WithField("candidate_id", candidateID)
}

// SetScores принимает оценки внешнего скорера и пересчитывает комбинированную.
// Порядок поступления оценок не важен: последняя пришедшая запускает итоговый
// пересчет, блокировок кроме last-writer-wins на строке кандидата не требуется.
func (i impl) SetScores(spaceID, candidateID string, data candidateapimodels.ScoreData) error {
	rec, err := i.store.GetByID(spaceID, candidateID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("кандидат не найден")
	}
	algoScore := rec.AlgoScore
	aiScore := rec.AiScore
	updMap := map[string]interface{}{}
	if data.AlgoScore != nil {
		algoScore = data.AlgoScore
		updMap["algo_score"] = *data.AlgoScore
	}
	if data.AiScore != nil {
		aiScore = data.AiScore
		updMap["ai_score"] = *data.AiScore
	}
	if data.AiSummary != "" {
		updMap["ai_summary"] = data.AiSummary
	}
	result, err := Combine(algoScore, aiScore)
	if err != nil {
		return err
	}
	if result.CombinedScore != nil {
		updMap["combined_score"] = *result.CombinedScore
		updMap["tier"] = *result.Tier
	}
	err = i.store.Update(spaceID, candidateID, updMap)
	if err != nil {
		return err
	}
	if result.CombinedScore != nil {
		i.getLogger(spaceID, candidateID).
			WithField("combined_score", *result.CombinedScore).
			WithField("tier", string(*result.Tier)).
			Info("оценка кандидата пересчитана")
	}
	return nil
}

// CombineScores пересчитывает комбинированную оценку по сохраненным оценкам
func (i impl) CombineScores(spaceID, candidateID string) (Result, error) {
	rec, err := i.store.GetByID(spaceID, candidateID)
	if err != nil {
		return Result{}, err
	}
	if rec == nil {
		return Result{}, errors.New("кандидат не найден")
	}
	result, err := Combine(rec.AlgoScore, rec.AiScore)
	if err != nil {
		return Result{}, err
	}
	if result.CombinedScore == nil {
		return result, nil
	}
	updMap := map[string]interface{}{
		"combined_score": *result.CombinedScore,
		"tier":           *result.Tier,
	}
	err = i.store.Update(spaceID, candidateID, updMap)
	if err != nil {
		return Result{}, err
	}
	return result, nil
}
