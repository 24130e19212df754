package initializers

import (
	"context"
	"recruit-flow-backend/config"
	"recruit-flow-backend/fiberlog"
	aiscorerhandler "recruit-flow-backend/lib/aiscorer"
	aiscoreworker "recruit-flow-backend/lib/aiscorer/worker"
	candidatehandler "recruit-flow-backend/lib/candidate"
	decisionhandler "recruit-flow-backend/lib/decision"
	xlsexport "recruit-flow-backend/lib/export/xls"
	interviewhandler "recruit-flow-backend/lib/interview"
	jobhandler "recruit-flow-backend/lib/job"
	pipelinehandler "recruit-flow-backend/lib/pipeline"
	scoringhandler "recruit-flow-backend/lib/scoring"
	combineworker "recruit-flow-backend/lib/scoring/combine-worker"
	"time"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	xlsexport.NewHandler()
	scoringhandler.NewHandler()
	pipelinehandler.NewHandler()
	jobhandler.NewHandler()
	candidatehandler.NewHandler()
	interviewhandler.NewHandler()
	aiscorerhandler.NewHandler()
	decisionhandler.NewHandler()
	go initWorkers(ctx)
}

// запускаем с промежутком в 10 сек чтоб размыть нагрузку
func initWorkers(ctx context.Context) {
	// Задача пересчета итоговой оценки по кандидатам с обеими оценками
	combineworker.StartWorker(ctx)

	if makeTimeGap(ctx) {
		// Задача AI-оценки резюме через YandexGPT
		aiscoreworker.StartWorker(ctx)
	}
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
