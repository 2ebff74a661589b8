package screeningworker

import (
	"context"
	"time"

	"hr-automation-hub/config"
	"hr-automation-hub/db"
	screeninghandler "hr-automation-hub/lib/screening"
	screeningjobstore "hr-automation-hub/lib/screening/job-store"
	baseworker "hr-automation-hub/lib/utils/base-worker"
	"hr-automation-hub/lib/utils/helpers"
)

// воркер очереди скрининга: забирает задачи queued по одной,
// от старых к новым, и прогоняет через оркестратор
func StartWorker(ctx context.Context) {
	period := time.Duration(config.Conf.Screener.WorkerPeriodSec) * time.Second
	w := impl{
		BaseImpl:      *baseworker.NewInstance("ScreeningQueue", 10*time.Second, period),
		screeningJobs: screeningjobstore.NewInstance(db.DB),
	}
	go w.Run(ctx, w.process)
}

type impl struct {
	baseworker.BaseImpl
	screeningJobs screeningjobstore.Provider
}

func (i impl) process(ctx context.Context) {
	logger := i.GetLogger()
	for {
		if helpers.IsContextDone(ctx) {
			return
		}
		task, err := i.screeningJobs.GetNextQueued()
		if err != nil {
			logger.WithError(err).Error("ошибка получения задачи из очереди")
			return
		}
		if task == nil {
			return
		}
		if err := screeninghandler.Instance.ProcessJob(ctx, task.ID); err != nil {
			logger.
				WithError(err).
				WithField("screening_job_id", task.ID).
				Error("ошибка обработки задачи скрининга")
		}
	}
}
