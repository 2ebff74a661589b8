package dbmodels

type Resume struct {
	BaseModel
	CandidateID string     `gorm:"type:varchar(36);index" json:"candidate_id"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID" json:"-"`
	// ключ объекта в S3 бакете с резюме
	FileKey     string `gorm:"type:varchar(100)" json:"file_key"`
	FileName    string `gorm:"type:varchar(255)" json:"file_name"`
	ContentType string `gorm:"type:varchar(100)" json:"content_type"`
	Size        int64  `json:"size"`
	// извлечённый текст, кэш для повторных скринингов
	ParsedText string `json:"-"`
}
