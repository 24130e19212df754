package aiscorer

import (
	"context"
	"recruit-flow-backend/config"
	"recruit-flow-backend/db"
	yagptclient "recruit-flow-backend/lib/aiscorer/yagpt-client"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	"recruit-flow-backend/lib/scoring"
	candidateapimodels "recruit-flow-backend/models/api/candidate"
	dbmodels "recruit-flow-backend/models/db"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Внешний AI скорер. Для ядра методика оценки непрозрачна:
// наружу отдается только целое 0..100 и свободный текст заключения.
type Provider interface {
	ScoreCandidate(ctx context.Context, rec dbmodels.Candidate) (scored bool, err error)
}

var Instance Provider

func NewHandler() {
	var client yagptclient.Provider
	if config.Conf.AI.YaGPT.Enabled != nil && *config.Conf.AI.YaGPT.Enabled {
		client = yagptclient.NewClient(config.Conf.AI.YaGPT.Token, config.Conf.AI.YaGPT.CatalogID)
	}
	Instance = impl{
		client:  client,
		scoring: scoring.Instance,
		store:   candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	client  yagptclient.Provider
	scoring scoring.Provider
	store   candidatestore.Provider
}

const scorePromt = "Ты оцениваешь резюме кандидата на вакансию. " +
	"Ответь строго в формате: первая строка - целое число от 0 до 100, " +
	"вторая строка - краткое заключение."

func (i impl) getLogger(spaceID, candidateID string) *log.Entry {
	return log.
		WithField("space_id", spaceID).
		WithField("candidate_id", candidateID)
}

func (i impl) ScoreCandidate(ctx context.Context, rec dbmodels.Candidate) (bool, error) {
	if i.client == nil {
		return false, nil
	}
	if rec.ResumeText == "" {
		return false, nil
	}
	answer, err := i.client.GenerateByPromtAndText(ctx, scorePromt, rec.ResumeText)
	if err != nil {
		return false, err
	}
	score, summary, err := parseAnswer(answer)
	if err != nil {
		return false, err
	}
	err = i.scoring.SetScores(rec.SpaceID, rec.ID, candidateapimodels.ScoreData{
		AiScore:   &score,
		AiSummary: summary,
	})
	if err != nil {
		return false, err
	}
	i.getLogger(rec.SpaceID, rec.ID).
		WithField("ai_score", score).
		Info("получена AI оценка кандидата")
	return true, nil
}

func parseAnswer(answer string) (score int, summary string, err error) {
	lines := strings.SplitN(strings.TrimSpace(answer), "\n", 2)
	score, err = strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return 0, "", errors.Wrap(err, "AI вернул оценку в неожиданном формате")
	}
	if score < 0 || score > 100 {
		return 0, "", errors.Errorf("AI вернул оценку вне диапазона: %d", score)
	}
	if len(lines) > 1 {
		summary = strings.TrimSpace(lines[1])
	}
	return score, summary, nil
}
