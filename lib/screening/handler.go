package screeninghandler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-automation-hub/config"
	"hr-automation-hub/db"
	candidatestore "hr-automation-hub/lib/candidate/store"
	filestorage "hr-automation-hub/lib/file-storage"
	jobstore "hr-automation-hub/lib/job/store"
	"hr-automation-hub/lib/parser"
	resumestore "hr-automation-hub/lib/resume/store"
	gptclient "hr-automation-hub/lib/screening/gpt-client"
	screeningjobstore "hr-automation-hub/lib/screening/job-store"
	"hr-automation-hub/lib/screening/scorer"
	screeningstore "hr-automation-hub/lib/screening/store"
	"hr-automation-hub/models"
	screenerapimodels "hr-automation-hub/models/api/screener"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	// Enqueue заводит пакетную задачу и сразу возвращает её в статусе queued,
	// обработку подхватывает фоновый воркер
	Enqueue(jobID string) (*dbmodels.ScreeningJob, error)
	// Run — синхронный пакетный скрининг; сбой одного кандидата
	// не прерывает остальных
	Run(ctx context.Context, jobID string, candidateIDs []string) ([]screenerapimodels.ResultView, error)
	RunSingle(ctx context.Context, candidateID, jobID string) (*dbmodels.Screening, error)
	Results(jobID string) ([]screenerapimodels.ResultView, error)
	PollStatus(screeningJobID string) (*dbmodels.ScreeningJob, error)
	ListByCandidate(candidateID string) ([]dbmodels.Screening, error)
	// ProcessJob выполняет одну задачу очереди, вызывается воркером
	ProcessJob(ctx context.Context, screeningJobID string) error
}

var Instance Provider

func NewHandler() {
	conf := config.Conf
	client := gptclient.NewClient(conf.YandexGPT.APIKey, conf.YandexGPT.CatalogID)
	Instance = impl{
		jobStore:       jobstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		resumeStore:    resumestore.NewInstance(db.DB),
		store:          screeningstore.NewInstance(db.DB),
		screeningJobs:  screeningjobstore.NewInstance(db.DB),
		scorer: scorer.NewInstance(client, conf.Screener.Retries,
			time.Duration(conf.Screener.TimeoutInSec)*time.Second),
		providerName: conf.Screener.ProviderName,
		batchLimit:   conf.Screener.BatchLimit,
		resultsLimit: conf.Screener.ResultsLimit,
	}
}

func NewHandlerWithDeps(
	jobStore jobstore.Provider,
	candidateStore candidatestore.Provider,
	resumeStore resumestore.Provider,
	store screeningstore.Provider,
	screeningJobs screeningjobstore.Provider,
	scoreProvider scorer.Provider,
	providerName string,
	batchLimit int,
	resultsLimit int,
) Provider {
	return impl{
		jobStore:       jobStore,
		candidateStore: candidateStore,
		resumeStore:    resumeStore,
		store:          store,
		screeningJobs:  screeningJobs,
		scorer:         scoreProvider,
		providerName:   providerName,
		batchLimit:     batchLimit,
		resultsLimit:   resultsLimit,
	}
}

type impl struct {
	jobStore       jobstore.Provider
	candidateStore candidatestore.Provider
	resumeStore    resumestore.Provider
	store          screeningstore.Provider
	screeningJobs  screeningjobstore.Provider
	scorer         scorer.Provider
	providerName   string
	batchLimit     int
	resultsLimit   int
}

func (i impl) Enqueue(jobID string) (*dbmodels.ScreeningJob, error) {
	if _, err := i.getJob(jobID); err != nil {
		return nil, err
	}
	candidateIDs, err := i.resumeStore.RecentCandidateIDs(i.batchLimit)
	if err != nil {
		return nil, err
	}
	rec := dbmodels.ScreeningJob{
		JobID:        jobID,
		Status:       models.ScreeningJobStatusQueued,
		CandidateIDs: candidateIDs,
		Total:        len(candidateIDs),
		Provider:     i.providerName,
	}
	// без резюме обрабатывать нечего, задача завершается сразу
	if len(candidateIDs) == 0 {
		rec.Status = models.ScreeningJobStatusCompleted
		rec.TokenUsage = &dbmodels.TokenUsage{}
	}
	id, err := i.screeningJobs.Create(rec)
	if err != nil {
		return nil, err
	}
	return i.screeningJobs.GetByID(id)
}

func (i impl) Run(ctx context.Context, jobID string, candidateIDs []string) ([]screenerapimodels.ResultView, error) {
	job, err := i.getJob(jobID)
	if err != nil {
		return nil, err
	}
	if len(candidateIDs) == 0 {
		candidateIDs, err = i.resumeStore.RecentCandidateIDs(i.batchLimit)
		if err != nil {
			return nil, err
		}
	}
	result := make([]screenerapimodels.ResultView, 0, len(candidateIDs))
	for _, candidateID := range candidateIDs {
		rec, _ := i.screenCandidate(ctx, candidateID, *job)
		if rec != nil {
			result = append(result, screenerapimodels.ConvertResult(*rec))
		}
	}
	return result, nil
}

func (i impl) RunSingle(ctx context.Context, candidateID, jobID string) (*dbmodels.Screening, error) {
	job, err := i.getJob(jobID)
	if err != nil {
		return nil, err
	}
	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperrors.NewNotFoundError("Candidate not found")
	}
	rec, _ := i.screenCandidate(ctx, candidateID, *job)
	if rec == nil {
		return nil, errors.New("не удалось сохранить результат скрининга")
	}
	return rec, nil
}

func (i impl) Results(jobID string) ([]screenerapimodels.ResultView, error) {
	if _, err := i.getJob(jobID); err != nil {
		return nil, err
	}
	list, err := i.store.ListByJob(jobID, i.resultsLimit)
	if err != nil {
		return nil, err
	}
	result := make([]screenerapimodels.ResultView, 0, len(list))
	for _, rec := range list {
		result = append(result, screenerapimodels.ConvertResult(rec))
	}
	return result, nil
}

func (i impl) PollStatus(screeningJobID string) (*dbmodels.ScreeningJob, error) {
	rec, err := i.screeningJobs.GetByID(screeningJobID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFoundError("Screening job not found")
	}
	return rec, nil
}

func (i impl) ListByCandidate(candidateID string) ([]dbmodels.Screening, error) {
	return i.store.ListByCandidate(candidateID)
}

func (i impl) ProcessJob(ctx context.Context, screeningJobID string) error {
	logger := log.WithField("screening_job_id", screeningJobID)
	task, err := i.screeningJobs.GetByID(screeningJobID)
	if err != nil {
		return err
	}
	if task == nil || task.Status != models.ScreeningJobStatusQueued {
		return nil
	}
	if err := i.screeningJobs.SetStatus(task.ID, models.ScreeningJobStatusProcessing, ""); err != nil {
		return err
	}
	job, err := i.getJob(task.JobID)
	if err != nil {
		logger.WithError(err).Error("вакансия задачи скрининга не найдена")
		return i.screeningJobs.SetStatus(task.ID, models.ScreeningJobStatusFailed, err.Error())
	}
	// обрабатывается набор, зафиксированный при постановке в очередь:
	// резюме, загруженные позже, в задачу не попадают
	candidateIDs := task.CandidateIDs
	usage := dbmodels.TokenUsage{}
	for _, candidateID := range candidateIDs {
		rec, recUsage := i.screenCandidate(ctx, candidateID, *job)
		if rec != nil {
			usage.TotalTokens += recUsage.TotalTokens
			usage.PromptTokens += recUsage.PromptTokens
			usage.CompletionTokens += recUsage.CompletionTokens
		}
		if err := i.screeningJobs.IncProcessed(task.ID); err != nil {
			logger.WithError(err).Error("ошибка обновления прогресса задачи")
		}
	}
	if err := i.screeningJobs.SetTokenUsage(task.ID, usage); err != nil {
		logger.WithError(err).Error("ошибка сохранения расхода токенов")
	}
	logger.WithField("processed", len(candidateIDs)).Info("задача скрининга завершена")
	return i.screeningJobs.SetStatus(task.ID, models.ScreeningJobStatusCompleted, "")
}

func (i impl) getJob(jobID string) (*dbmodels.Job, error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperrors.NewNotFoundError("Job not found")
	}
	return job, nil
}

// screenCandidate выполняет одну попытку скоринга и всегда сохраняет
// запись Screening: completed при успехе, failed при любой ошибке.
// Ошибка кандидата не распространяется на остальной пакет.
func (i impl) screenCandidate(ctx context.Context, candidateID string, job dbmodels.Job) (*dbmodels.Screening, dbmodels.TokenUsage) {
	logger := log.
		WithField("candidate_id", candidateID).
		WithField("job_id", job.ID)
	rec := dbmodels.Screening{
		CandidateID: candidateID,
		JobID:       job.ID,
		Weights:     dbmodels.DefaultScreeningWeights(),
		Status:      models.ScreeningStatusQueued,
	}
	resumeText, err := i.resumeText(ctx, candidateID)
	if err != nil {
		logger.WithError(err).Warn("скрининг кандидата не удался")
		rec.Status = models.ScreeningStatusFailed
		rec.Error = err.Error()
		return i.persist(rec, logger), dbmodels.TokenUsage{}
	}
	scored, err := i.scorer.Score(ctx, resumeText, job.JDText, rec.Weights)
	if err != nil {
		logger.WithError(err).Warn("скрининг кандидата не удался")
		rec.Status = models.ScreeningStatusFailed
		rec.Error = err.Error()
		return i.persist(rec, logger), dbmodels.TokenUsage{}
	}
	rec.Status = models.ScreeningStatusCompleted
	rec.Score = &scored.Score
	rec.Highlights = scored.Highlights
	rec.Gaps = scored.Gaps
	rec.Rationale = scored.Rationale
	rec.Tokens = scored.Tokens.TotalTokens
	rec.Model = i.providerName
	if scored.Fallback {
		rec.Model = "heuristic"
	}
	return i.persist(rec, logger), scored.Tokens
}

func (i impl) persist(rec dbmodels.Screening, logger *log.Entry) *dbmodels.Screening {
	id, err := i.store.Save(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения результата скрининга")
		return nil
	}
	saved, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка чтения результата скрининга")
		return nil
	}
	return saved
}

func (i impl) resumeText(ctx context.Context, candidateID string) (string, error) {
	resume, err := i.resumeStore.GetLatestByCandidate(candidateID)
	if err != nil {
		return "", err
	}
	if resume == nil {
		return "", apperrors.NewNotFoundError("Candidate has no resume")
	}
	if resume.ParsedText != "" {
		return resume.ParsedText, nil
	}
	data, err := filestorage.Instance.GetResume(ctx, resume.FileKey)
	if err != nil {
		return "", err
	}
	text, err := parser.ExtractText(data, resume.ContentType)
	if err != nil {
		return "", err
	}
	if err := i.resumeStore.SetParsedText(resume.ID, text); err != nil {
		log.WithError(err).WithField("resume_id", resume.ID).Warn("не удалось сохранить текст резюме")
	}
	return text, nil
}
