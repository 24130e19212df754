package aiscoreworker

import (
	"context"
	"recruit-flow-backend/db"
	"recruit-flow-backend/lib/aiscorer"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	baseworker "recruit-flow-backend/lib/utils/base-worker"
	"time"
)

// AI оценка кандидатов с резюме, но без оценки
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:       *baseworker.NewInstance("AiScoreWorker", 30*time.Second, 5*time.Minute),
		candidateStore: candidatestore.NewInstance(db.DB),
		scorer:         aiscorer.Instance,
	}
	go i.BaseImpl.Run(ctx, i.handle)
}

const batchSize = 20

type impl struct {
	baseworker.BaseImpl
	candidateStore candidatestore.Provider
	scorer         aiscorer.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.candidateStore.ListForAiScore(batchSize)
	if err != nil {
		logger.WithError(err).Error("ошибка получения кандидатов для AI оценки")
		return
	}
	for _, rec := range list {
		ok, err := i.scorer.ScoreCandidate(ctx, rec)
		if err != nil {
			logger.WithError(err).
				WithField("space_id", rec.SpaceID).
				WithField("candidate_id", rec.ID).
				Error("ошибка AI оценки кандидата")
			continue
		}
		if ok {
			logger.
				WithField("space_id", rec.SpaceID).
				WithField("candidate_id", rec.ID).
				Info("произведена AI оценка кандидата")
		}
	}
}
