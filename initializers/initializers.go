package initializers

import (
	"context"

	"horeca-jobs-backend/config"
	"horeca-jobs-backend/fiberlog"
	applicationhandler "horeca-jobs-backend/lib/application"
	"horeca-jobs-backend/lib/audit"
	billinghandler "horeca-jobs-backend/lib/billing"
	billingworker "horeca-jobs-backend/lib/billing/worker"
	discoveryhandler "horeca-jobs-backend/lib/discovery"
	documenthandler "horeca-jobs-backend/lib/document"
	xlsexport "horeca-jobs-backend/lib/export/xls"
	jobhandler "horeca-jobs-backend/lib/job"
	pipelinehandler "horeca-jobs-backend/lib/pipeline"
	waitlisthandler "horeca-jobs-backend/lib/waitlist"
	connectionhub "horeca-jobs-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	audit.NewHandler()
	// биллинг до вакансий: публикация проверяет подписку
	billinghandler.NewHandler()
	jobhandler.NewHandler()
	applicationhandler.NewHandler()
	pipelinehandler.NewHandler()
	documenthandler.NewHandler()
	discoveryhandler.NewHandler()
	waitlisthandler.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача контроля срока действия подписок
	billingworker.StartWorker(ctx)
}
