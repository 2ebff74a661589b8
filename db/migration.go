package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hr-automation-hub/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Ticket{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Ticket")
	}
	if err := DB.AutoMigrate(&dbmodels.Approval{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Approval")
	}
	if err := DB.AutoMigrate(&dbmodels.AuditLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AuditLog")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.Resume{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Resume")
	}
	if err := DB.AutoMigrate(&dbmodels.Screening{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Screening")
	}
	if err := DB.AutoMigrate(&dbmodels.ScreeningJob{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ScreeningJob")
	}
	if err := DB.AutoMigrate(&dbmodels.Offer{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Offer")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.Project{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Project")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
