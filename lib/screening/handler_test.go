package screeninghandler

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"hr-automation-hub/lib/screening/scorer"
	"hr-automation-hub/models"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type fakeJobStore struct {
	jobs map[string]*dbmodels.Job
}

func (f *fakeJobStore) Create(rec dbmodels.Job) (string, error)              { return rec.ID, nil }
func (f *fakeJobStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeJobStore) List() ([]dbmodels.Job, error)                        { return nil, nil }
func (f *fakeJobStore) ListOpen() ([]dbmodels.Job, error)                    { return nil, nil }
func (f *fakeJobStore) CountOpen() (int64, error)                            { return 0, nil }

func (f *fakeJobStore) GetByID(id string) (*dbmodels.Job, error) {
	return f.jobs[id], nil
}

type fakeCandidateStore struct {
	candidates map[string]*dbmodels.Candidate
}

func (f *fakeCandidateStore) Create(rec dbmodels.Candidate) (string, error)         { return rec.ID, nil }
func (f *fakeCandidateStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeCandidateStore) GetByUserID(userID string) (*dbmodels.Candidate, error) {
	return nil, nil
}
func (f *fakeCandidateStore) GetByIDs(ids []string) ([]dbmodels.Candidate, error) { return nil, nil }
func (f *fakeCandidateStore) List() ([]dbmodels.Candidate, error)                 { return nil, nil }

func (f *fakeCandidateStore) GetByID(id string) (*dbmodels.Candidate, error) {
	return f.candidates[id], nil
}

type fakeResumeStore struct {
	resumes   map[string]*dbmodels.Resume
	recentIDs []string
}

func (f *fakeResumeStore) Create(rec dbmodels.Resume) (string, error) { return rec.ID, nil }
func (f *fakeResumeStore) GetByID(id string) (*dbmodels.Resume, error) {
	return nil, nil
}
func (f *fakeResumeStore) ListByCandidate(candidateID string, limit int) ([]dbmodels.Resume, error) {
	return nil, nil
}
func (f *fakeResumeStore) SetParsedText(id, text string) error { return nil }

func (f *fakeResumeStore) GetLatestByCandidate(candidateID string) (*dbmodels.Resume, error) {
	return f.resumes[candidateID], nil
}

func (f *fakeResumeStore) RecentCandidateIDs(limit int) ([]string, error) {
	if limit < len(f.recentIDs) {
		return f.recentIDs[:limit], nil
	}
	return f.recentIDs, nil
}

type fakeScreeningStore struct {
	seq     int
	records map[string]*dbmodels.Screening
}

func newFakeScreeningStore() *fakeScreeningStore {
	return &fakeScreeningStore{records: map[string]*dbmodels.Screening{}}
}

func (f *fakeScreeningStore) Save(rec dbmodels.Screening) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("screening-%d", f.seq)
	f.records[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeScreeningStore) GetByID(id string) (*dbmodels.Screening, error) {
	return f.records[id], nil
}

func (f *fakeScreeningStore) ListByJob(jobID string, limit int) ([]dbmodels.Screening, error) {
	list := []dbmodels.Screening{}
	for _, rec := range f.records {
		if rec.JobID == jobID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeScreeningStore) ListByCandidate(candidateID string) ([]dbmodels.Screening, error) {
	return nil, nil
}
func (f *fakeScreeningStore) Latest(limit int) ([]dbmodels.Screening, error) { return nil, nil }
func (f *fakeScreeningStore) AvgScore() (float64, error)                     { return 0, nil }
func (f *fakeScreeningStore) Count() (int64, error)                          { return int64(len(f.records)), nil }
func (f *fakeScreeningStore) CountByStatus(status models.ScreeningStatus) (int64, error) {
	return 0, nil
}

type fakeScreeningJobStore struct {
	seq     int
	records map[string]*dbmodels.ScreeningJob
}

func newFakeScreeningJobStore() *fakeScreeningJobStore {
	return &fakeScreeningJobStore{records: map[string]*dbmodels.ScreeningJob{}}
}

func (f *fakeScreeningJobStore) Create(rec dbmodels.ScreeningJob) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("task-%d", f.seq)
	f.records[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeScreeningJobStore) GetByID(id string) (*dbmodels.ScreeningJob, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	clone := *rec
	return &clone, nil
}

func (f *fakeScreeningJobStore) GetNextQueued() (*dbmodels.ScreeningJob, error) {
	for _, rec := range f.records {
		if rec.Status == models.ScreeningJobStatusQueued {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeScreeningJobStore) SetStatus(id string, status models.ScreeningJobStatus, errMsg string) error {
	f.records[id].Status = status
	f.records[id].Error = errMsg
	return nil
}

func (f *fakeScreeningJobStore) IncProcessed(id string) error {
	f.records[id].Processed++
	return nil
}

func (f *fakeScreeningJobStore) SetTokenUsage(id string, usage dbmodels.TokenUsage) error {
	f.records[id].TokenUsage = &usage
	return nil
}

func (f *fakeScreeningJobStore) List(limit int) ([]dbmodels.ScreeningJob, error) { return nil, nil }

type fakeScorer struct {
	failFor map[string]bool
	score   int
}

func (f *fakeScorer) Score(ctx context.Context, resumeText, jdText string, weights dbmodels.ScreeningWeights) (scorer.Result, error) {
	if f.failFor[resumeText] {
		return scorer.Result{}, errors.New("провайдер недоступен")
	}
	return scorer.Result{
		Score:  f.score,
		Tokens: dbmodels.TokenUsage{TotalTokens: 10, PromptTokens: 7, CompletionTokens: 3},
	}, nil
}

func resumeFor(candidateID, text string) *dbmodels.Resume {
	rec := &dbmodels.Resume{
		CandidateID: candidateID,
		ParsedText:  text,
	}
	rec.ID = "resume-" + candidateID
	return rec
}

func testHandler(jobs *fakeJobStore, resumes *fakeResumeStore, store *fakeScreeningStore, tasks *fakeScreeningJobStore, score *fakeScorer) Provider {
	return NewHandlerWithDeps(jobs, &fakeCandidateStore{candidates: map[string]*dbmodels.Candidate{}},
		resumes, store, tasks, score, "yagpt", 10, 200)
}

func openJob(id string) *dbmodels.Job {
	job := &dbmodels.Job{
		Title:  "Go developer",
		JDText: "go postgres kubernetes",
		Status: dbmodels.JobStatusOpen,
	}
	job.ID = id
	return job
}

func TestScreeningHandler(t *testing.T) {
	t.Run(`enqueue without resumes completes immediately`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: map[string]*dbmodels.Job{"job-1": openJob("job-1")}}
		tasks := newFakeScreeningJobStore()
		handler := testHandler(jobs, &fakeResumeStore{}, newFakeScreeningStore(), tasks, &fakeScorer{score: 50})

		task, err := handler.Enqueue("job-1")
		require.Nil(t, err)
		require.Equal(t, models.ScreeningJobStatusCompleted, task.Status)
		require.Equal(t, 0, task.Total)
		require.NotNil(t, task.TokenUsage)
	})

	t.Run(`enqueue leaves task queued when resumes exist`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: map[string]*dbmodels.Job{"job-1": openJob("job-1")}}
		resumes := &fakeResumeStore{recentIDs: []string{"cand-1", "cand-2"}}
		tasks := newFakeScreeningJobStore()
		handler := testHandler(jobs, resumes, newFakeScreeningStore(), tasks, &fakeScorer{score: 50})

		task, err := handler.Enqueue("job-1")
		require.Nil(t, err)
		require.Equal(t, models.ScreeningJobStatusQueued, task.Status)
		require.Equal(t, 2, task.Total)
		require.Equal(t, 0, task.Processed)
	})

	t.Run(`enqueue for unknown job returns not found`, func(t *testing.T) {
		handler := testHandler(&fakeJobStore{jobs: map[string]*dbmodels.Job{}}, &fakeResumeStore{},
			newFakeScreeningStore(), newFakeScreeningJobStore(), &fakeScorer{})

		_, err := handler.Enqueue("missing")
		require.NotNil(t, err)
		require.True(t, apperrors.IsNotFound(err))
	})

	t.Run(`one failed candidate does not stop the batch`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: map[string]*dbmodels.Job{"job-1": openJob("job-1")}}
		resumes := &fakeResumeStore{
			recentIDs: []string{"cand-1", "cand-2", "cand-3"},
			resumes: map[string]*dbmodels.Resume{
				"cand-1": resumeFor("cand-1", "текст один"),
				"cand-2": resumeFor("cand-2", "текст два"),
				"cand-3": resumeFor("cand-3", "текст три"),
			},
		}
		store := newFakeScreeningStore()
		handler := testHandler(jobs, resumes, store, newFakeScreeningJobStore(),
			&fakeScorer{score: 80, failFor: map[string]bool{"текст два": true}})

		result, err := handler.Run(context.Background(), "job-1", nil)
		require.Nil(t, err)
		require.Len(t, result, 3)

		completed := 0
		failed := 0
		for _, rec := range store.records {
			switch rec.Status {
			case models.ScreeningStatusCompleted:
				completed++
				require.Equal(t, "yagpt", rec.Model)
			case models.ScreeningStatusFailed:
				failed++
				require.NotEmpty(t, rec.Error)
			}
		}
		require.Equal(t, 2, completed)
		require.Equal(t, 1, failed)
	})

	t.Run(`candidate without resume gets a failed record`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: map[string]*dbmodels.Job{"job-1": openJob("job-1")}}
		resumes := &fakeResumeStore{recentIDs: []string{"cand-1"}}
		store := newFakeScreeningStore()
		handler := testHandler(jobs, resumes, store, newFakeScreeningJobStore(), &fakeScorer{score: 80})

		result, err := handler.Run(context.Background(), "job-1", nil)
		require.Nil(t, err)
		require.Len(t, result, 1)
		require.Nil(t, result[0].OverallScore)
		require.Len(t, store.records, 1)
		for _, rec := range store.records {
			require.Equal(t, models.ScreeningStatusFailed, rec.Status)
			require.NotEmpty(t, rec.Error)
		}
	})

	t.Run(`process job walks the queue and accumulates usage`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: map[string]*dbmodels.Job{"job-1": openJob("job-1")}}
		resumes := &fakeResumeStore{
			recentIDs: []string{"cand-1", "cand-2"},
			resumes: map[string]*dbmodels.Resume{
				"cand-1": resumeFor("cand-1", "текст один"),
				"cand-2": resumeFor("cand-2", "текст два"),
			},
		}
		tasks := newFakeScreeningJobStore()
		handler := testHandler(jobs, resumes, newFakeScreeningStore(), tasks, &fakeScorer{score: 60})

		task, err := handler.Enqueue("job-1")
		require.Nil(t, err)

		err = handler.ProcessJob(context.Background(), task.ID)
		require.Nil(t, err)

		done, err := handler.PollStatus(task.ID)
		require.Nil(t, err)
		require.Equal(t, models.ScreeningJobStatusCompleted, done.Status)
		require.Equal(t, 2, done.Processed)
		require.NotNil(t, done.TokenUsage)
		require.Equal(t, 20, done.TokenUsage.TotalTokens)
	})

	t.Run(`resumes uploaded after enqueue stay out of the task`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: map[string]*dbmodels.Job{"job-1": openJob("job-1")}}
		resumes := &fakeResumeStore{
			recentIDs: []string{"cand-1"},
			resumes:   map[string]*dbmodels.Resume{"cand-1": resumeFor("cand-1", "текст один")},
		}
		tasks := newFakeScreeningJobStore()
		handler := testHandler(jobs, resumes, newFakeScreeningStore(), tasks, &fakeScorer{score: 60})

		task, err := handler.Enqueue("job-1")
		require.Nil(t, err)
		require.Equal(t, 1, task.Total)

		// новые резюме появились между постановкой в очередь и воркером
		resumes.recentIDs = []string{"cand-1", "cand-2", "cand-3"}
		resumes.resumes["cand-2"] = resumeFor("cand-2", "текст два")
		resumes.resumes["cand-3"] = resumeFor("cand-3", "текст три")

		err = handler.ProcessJob(context.Background(), task.ID)
		require.Nil(t, err)

		done, err := handler.PollStatus(task.ID)
		require.Nil(t, err)
		require.Equal(t, models.ScreeningJobStatusCompleted, done.Status)
		require.Equal(t, 1, done.Total)
		require.Equal(t, 1, done.Processed)
		require.LessOrEqual(t, done.Processed, done.Total)
	})

	t.Run(`process job marks task failed when job is gone`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: map[string]*dbmodels.Job{"job-1": openJob("job-1")}}
		resumes := &fakeResumeStore{recentIDs: []string{"cand-1"}}
		tasks := newFakeScreeningJobStore()
		handler := testHandler(jobs, resumes, newFakeScreeningStore(), tasks, &fakeScorer{score: 60})

		task, err := handler.Enqueue("job-1")
		require.Nil(t, err)

		delete(jobs.jobs, "job-1")
		err = handler.ProcessJob(context.Background(), task.ID)
		require.Nil(t, err)

		failed, err := handler.PollStatus(task.ID)
		require.Nil(t, err)
		require.Equal(t, models.ScreeningJobStatusFailed, failed.Status)
		require.NotEmpty(t, failed.Error)
	})

	t.Run(`process job skips non-queued tasks`, func(t *testing.T) {
		tasks := newFakeScreeningJobStore()
		id, _ := tasks.Create(dbmodels.ScreeningJob{Status: models.ScreeningJobStatusCompleted})
		handler := testHandler(&fakeJobStore{jobs: map[string]*dbmodels.Job{}}, &fakeResumeStore{},
			newFakeScreeningStore(), tasks, &fakeScorer{})

		err := handler.ProcessJob(context.Background(), id)
		require.Nil(t, err)

		rec, _ := tasks.GetByID(id)
		require.Equal(t, models.ScreeningJobStatusCompleted, rec.Status)
	})

	t.Run(`run single for unknown candidate returns not found`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: map[string]*dbmodels.Job{"job-1": openJob("job-1")}}
		handler := testHandler(jobs, &fakeResumeStore{}, newFakeScreeningStore(),
			newFakeScreeningJobStore(), &fakeScorer{})

		_, err := handler.RunSingle(context.Background(), "missing", "job-1")
		require.NotNil(t, err)
		require.True(t, apperrors.IsNotFound(err))
	})
}
