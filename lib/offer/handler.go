package offerhandler

import (
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"hr-automation-hub/config"
	"hr-automation-hub/db"
	candidatestore "hr-automation-hub/lib/candidate/store"
	pdfexport "hr-automation-hub/lib/export/pdf"
	jobstore "hr-automation-hub/lib/job/store"
	offerstore "hr-automation-hub/lib/offer/store"
	"hr-automation-hub/models"
	offerapimodels "hr-automation-hub/models/api/offer"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Create(actorID string, data offerapimodels.CreateOfferRequest) (*dbmodels.Offer, error)
	Update(id string, data offerapimodels.UpdateOfferRequest) (*dbmodels.Offer, error)
	GetByID(id string) (*dbmodels.Offer, error)
	List() ([]dbmodels.Offer, error)
	Letter(id string) (fileName string, pdfFile []byte, err error)
	// Send отправляет оффер кандидату письмом с PDF во вложении
	// и переводит его в статус sent
	Send(id, email string) (*dbmodels.Offer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          offerstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store          offerstore.Provider
	candidateStore candidatestore.Provider
	jobStore       jobstore.Provider
}

func (i impl) Create(actorID string, data offerapimodels.CreateOfferRequest) (*dbmodels.Offer, error) {
	candidate, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperrors.NewNotFoundError("Candidate not found")
	}
	job, err := i.jobStore.GetByID(data.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperrors.NewNotFoundError("Job not found")
	}
	currency := data.Currency
	if currency == "" {
		currency = "USD"
	}
	id, err := i.store.Create(dbmodels.Offer{
		CandidateID: data.CandidateID,
		JobID:       data.JobID,
		Status:      models.OfferStatusDraft,
		Salary:      data.Salary,
		Currency:    currency,
		StartDate:   data.StartDate,
		Notes:       data.Notes,
		CreatedByID: actorID,
	})
	if err != nil {
		return nil, err
	}
	return i.store.GetByID(id)
}

// Update — свободный патч: целевой статус не валидируется по цепочке,
// любой разрешённый ролью вызов может выставить любой статус
func (i impl) Update(id string, data offerapimodels.UpdateOfferRequest) (*dbmodels.Offer, error) {
	if _, err := i.GetByID(id); err != nil {
		return nil, err
	}
	updMap := map[string]interface{}{}
	if data.Status != "" {
		updMap["status"] = data.Status
	}
	if data.Salary != nil {
		updMap["salary"] = *data.Salary
	}
	if data.StartDate != nil {
		updMap["start_date"] = *data.StartDate
	}
	if data.Notes != nil {
		updMap["notes"] = *data.Notes
	}
	if err := i.store.Update(id, updMap); err != nil {
		return nil, err
	}
	return i.store.GetByID(id)
}

func (i impl) GetByID(id string) (*dbmodels.Offer, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFoundError("Offer not found")
	}
	return rec, nil
}

func (i impl) List() ([]dbmodels.Offer, error) {
	return i.store.List()
}

func (i impl) Letter(id string) (string, []byte, error) {
	rec, err := i.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	candidateName, jobTitle := i.letterNames(*rec)
	pdfFile, err := pdfexport.GenerateOfferLetter(*rec, candidateName, jobTitle)
	if err != nil {
		return "", nil, err
	}
	return "offer-" + rec.ID + ".pdf", pdfFile, nil
}

func (i impl) Send(id, email string) (*dbmodels.Offer, error) {
	rec, err := i.GetByID(id)
	if err != nil {
		return nil, err
	}
	candidateName, jobTitle := i.letterNames(*rec)
	to := email
	if to == "" && rec.Candidate != nil {
		to = rec.Candidate.Email
	}
	if to == "" {
		return nil, apperrors.NewValidationError("Recipient email required")
	}
	fileName, pdfFile, err := i.Letter(id)
	if err != nil {
		return nil, err
	}
	if err := sendOfferMail(to, candidateName, jobTitle, fileName, pdfFile); err != nil {
		return nil, err
	}
	if err := i.store.Update(id, map[string]interface{}{"status": models.OfferStatusSent}); err != nil {
		return nil, err
	}
	log.WithField("offer_id", id).WithField("to", to).Info("оффер отправлен кандидату")
	return i.store.GetByID(id)
}

func (i impl) letterNames(rec dbmodels.Offer) (candidateName, jobTitle string) {
	candidateName = "Candidate"
	jobTitle = "the position"
	if rec.Candidate != nil && rec.Candidate.Name != "" {
		candidateName = rec.Candidate.Name
	} else if candidate, err := i.candidateStore.GetByID(rec.CandidateID); err == nil && candidate != nil {
		candidateName = candidate.Name
	}
	if rec.Job != nil && rec.Job.Title != "" {
		jobTitle = rec.Job.Title
	} else if job, err := i.jobStore.GetByID(rec.JobID); err == nil && job != nil {
		jobTitle = job.Title
	}
	return candidateName, jobTitle
}

func sendOfferMail(to, candidateName, jobTitle, fileName string, pdfFile []byte) error {
	conf := config.Conf.Smtp
	if conf.Host == "" {
		return apperrors.NewInvalidOperationError("Mail delivery is not configured")
	}
	port, err := strconv.Atoi(conf.Port)
	if err != nil {
		port = 587
	}
	m := gomail.NewMessage()
	m.SetHeader("From", conf.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Automation Hub - Offer of Employment")
	m.SetBody("text/plain",
		"Dear "+candidateName+",\n\nPlease find attached your offer for "+jobTitle+".\n\nAutomation Hub HR Team")
	m.Attach(fileName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdfFile)
		return err
	}))
	dialer := gomail.NewDialer(conf.Host, port, conf.User, conf.Password)
	return dialer.DialAndSend(m)
}
