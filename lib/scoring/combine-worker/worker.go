package combineworker

import (
	"context"
	"recruit-flow-backend/db"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	"recruit-flow-backend/lib/scoring"
	baseworker "recruit-flow-backend/lib/utils/base-worker"
	"time"
)

// досчитывает комбинированную оценку кандидатам,
// у которых обе внешние оценки уже получены
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:       *baseworker.NewInstance("CombineScoreWorker", 10*time.Second, 1*time.Minute),
		candidateStore: candidatestore.NewInstance(db.DB),
		scoring:        scoring.Instance,
	}
	go i.BaseImpl.Run(ctx, func(ctx context.Context) { i.handle() })
}

const batchSize = 100

type impl struct {
	baseworker.BaseImpl
	candidateStore candidatestore.Provider
	scoring        scoring.Provider
}

func (i impl) handle() {
	logger := i.GetLogger()
	list, err := i.candidateStore.ListForCombine(batchSize)
	if err != nil {
		logger.WithError(err).Error("ошибка получения кандидатов для пересчета оценки")
		return
	}
	for _, rec := range list {
		_, err = i.scoring.CombineScores(rec.SpaceID, rec.ID)
		if err != nil {
			logger.WithError(err).
				WithField("space_id", rec.SpaceID).
				WithField("candidate_id", rec.ID).
				Error("ошибка пересчета комбинированной оценки")
			continue
		}
	}
}
