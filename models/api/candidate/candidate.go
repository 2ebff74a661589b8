package candidateapimodels

type UpsertProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ResumeUploadResponse struct {
	ID      string `json:"id"`
	FileKey string `json:"file_key"`
	Size    int64  `json:"size"`
}

// HRApplicationView — кандидаты с хотя бы одним резюме, для HR списка
type HRApplicationView struct {
	CandidateID      string `json:"candidateId"`
	CandidateName    string `json:"candidateName"`
	CandidateEmail   string `json:"candidateEmail"`
	ResumeID         string `json:"resumeId"`
	ResumeFilename   string `json:"resumeFilename"`
	ResumeUploadedAt string `json:"resumeUploadedAt"`
}
