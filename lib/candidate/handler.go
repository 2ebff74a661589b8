package candidatehandler

import (
	"bytes"
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"hr-automation-hub/config"
	"hr-automation-hub/db"
	candidatestore "hr-automation-hub/lib/candidate/store"
	filestorage "hr-automation-hub/lib/file-storage"
	"hr-automation-hub/lib/parser"
	resumestore "hr-automation-hub/lib/resume/store"
	candidateapimodels "hr-automation-hub/models/api/candidate"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

var allowedResumeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
}

type Provider interface {
	GetProfile(userID string) (*dbmodels.Candidate, error)
	UpsertProfile(userID string, data candidateapimodels.UpsertProfileRequest) (*dbmodels.Candidate, error)
	UploadResume(ctx context.Context, userID, fileName, contentType string, data []byte) (*candidateapimodels.ResumeUploadResponse, error)
	DownloadResume(ctx context.Context, resumeID string) (fileName string, data []byte, err error)
	ListResumes(userID string) ([]dbmodels.Resume, error)
	// HRApplications — кандидаты с последним загруженным резюме, для HR
	HRApplications() ([]candidateapimodels.HRApplicationView, error)
	List() ([]dbmodels.Candidate, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       candidatestore.NewInstance(db.DB),
		resumeStore: resumestore.NewInstance(db.DB),
	}
}

type impl struct {
	store       candidatestore.Provider
	resumeStore resumestore.Provider
}

func (i impl) GetProfile(userID string) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFoundError("Candidate profile not found")
	}
	return rec, nil
}

func (i impl) UpsertProfile(userID string, data candidateapimodels.UpsertProfileRequest) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		id, err := i.store.Create(dbmodels.Candidate{
			UserID: &userID,
			Name:   data.Name,
			Phone:  data.Phone,
		})
		if err != nil {
			return nil, err
		}
		return i.store.GetByID(id)
	}
	updMap := map[string]interface{}{}
	if data.Name != "" {
		updMap["name"] = data.Name
	}
	if data.Phone != "" {
		updMap["phone"] = data.Phone
	}
	if err := i.store.Update(rec.ID, updMap); err != nil {
		return nil, err
	}
	return i.store.GetByID(rec.ID)
}

func (i impl) UploadResume(ctx context.Context, userID, fileName, contentType string, data []byte) (*candidateapimodels.ResumeUploadResponse, error) {
	candidate, err := i.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	maxSize := int64(config.Conf.Screener.MaxResumeSizeKb) * 1024
	if int64(len(data)) > maxSize {
		return nil, apperrors.NewValidationError("Resume file is too large")
	}
	if !isAllowedResumeType(contentType) {
		return nil, apperrors.NewValidationError("Unsupported resume format")
	}
	fileKey, err := filestorage.Instance.UploadResume(ctx, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return nil, err
	}
	id, err := i.resumeStore.Create(dbmodels.Resume{
		CandidateID: candidate.ID,
		FileKey:     fileKey,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		return nil, err
	}
	// текст извлекается сразу и кэшируется для скрининга
	text, err := parser.ExtractText(data, contentType)
	if err != nil {
		log.WithError(err).WithField("resume_id", id).Warn("не удалось извлечь текст резюме")
	} else if err := i.resumeStore.SetParsedText(id, text); err != nil {
		log.WithError(err).WithField("resume_id", id).Warn("не удалось сохранить текст резюме")
	}
	return &candidateapimodels.ResumeUploadResponse{
		ID:      id,
		FileKey: fileKey,
		Size:    int64(len(data)),
	}, nil
}

func (i impl) DownloadResume(ctx context.Context, resumeID string) (string, []byte, error) {
	rec, err := i.resumeStore.GetByID(resumeID)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, apperrors.NewNotFoundError("Resume not found")
	}
	data, err := filestorage.Instance.GetResume(ctx, rec.FileKey)
	if err != nil {
		return "", nil, err
	}
	return rec.FileName, data, nil
}

func (i impl) ListResumes(userID string) ([]dbmodels.Resume, error) {
	candidate, err := i.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	return i.resumeStore.ListByCandidate(candidate.ID, 10)
}

func (i impl) HRApplications() ([]candidateapimodels.HRApplicationView, error) {
	candidates, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := []candidateapimodels.HRApplicationView{}
	for _, candidate := range candidates {
		resume, err := i.resumeStore.GetLatestByCandidate(candidate.ID)
		if err != nil {
			return nil, err
		}
		if resume == nil {
			continue
		}
		result = append(result, candidateapimodels.HRApplicationView{
			CandidateID:      candidate.ID,
			CandidateName:    candidate.Name,
			CandidateEmail:   candidate.Email,
			ResumeID:         resume.ID,
			ResumeFilename:   resume.FileName,
			ResumeUploadedAt: resume.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return result, nil
}

func (i impl) List() ([]dbmodels.Candidate, error) {
	return i.store.List()
}

func isAllowedResumeType(contentType string) bool {
	base := strings.TrimSpace(strings.Split(contentType, ";")[0])
	for _, allowed := range allowedResumeTypes {
		if base == allowed {
			return true
		}
	}
	return false
}
