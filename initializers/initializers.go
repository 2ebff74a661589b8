package initializers

import (
	"context"

	"hr-automation-hub/config"
	"hr-automation-hub/db"
	"hr-automation-hub/fiberlog"
	adminhandler "hr-automation-hub/lib/admin"
	applicationhandler "hr-automation-hub/lib/application"
	approvalhandler "hr-automation-hub/lib/approval"
	"hr-automation-hub/lib/audit"
	auditstore "hr-automation-hub/lib/audit/store"
	authhandler "hr-automation-hub/lib/auth"
	candidatehandler "hr-automation-hub/lib/candidate"
	dashboardhandler "hr-automation-hub/lib/dashboard"
	xlsexport "hr-automation-hub/lib/export/xls"
	filestorage "hr-automation-hub/lib/file-storage"
	jobhandler "hr-automation-hub/lib/job"
	"hr-automation-hub/lib/notify"
	offerhandler "hr-automation-hub/lib/offer"
	projecthandler "hr-automation-hub/lib/project"
	screeninghandler "hr-automation-hub/lib/screening"
	screeningworker "hr-automation-hub/lib/screening/worker"
	"hr-automation-hub/lib/smtp"
	tickethandler "hr-automation-hub/lib/ticket"
	"hr-automation-hub/lib/utils/lock"
	connectionhub "hr-automation-hub/lib/ws/hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	s3Client := InitS3()
	InitSmtp()
	connectionhub.Init()
	lock.InitResourceLock(ctx)
	filestorage.NewHandler(s3Client)
	MakeResumeBucket(ctx)
	audit.NewHandler(auditstore.NewInstance(db.DB))
	notify.NewHandler(smtp.Instance, config.Conf.Smtp.From)
	authhandler.NewHandler()
	adminhandler.NewHandler()
	tickethandler.NewHandler()
	approvalhandler.NewHandler()
	jobhandler.NewHandler()
	candidatehandler.NewHandler()
	applicationhandler.NewHandler()
	projecthandler.NewHandler()
	offerhandler.NewHandler()
	screeninghandler.NewHandler()
	dashboardhandler.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача обработки очереди пакетного скрининга резюме
	screeningworker.StartWorker(ctx)
}
