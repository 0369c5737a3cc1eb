package initializers

import (
	"context"

	"campus-outpass-backend/config"
	"campus-outpass-backend/fiberlog"
	authhandler "campus-outpass-backend/lib/auth"
	xlsexport "campus-outpass-backend/lib/export/xls"
	leavereqhandler "campus-outpass-backend/lib/leave-req"
	notificationhandler "campus-outpass-backend/lib/notification"
	"campus-outpass-backend/lib/outpass"
	signaturestorage "campus-outpass-backend/lib/signature-storage"
	connectionhub "campus-outpass-backend/lib/ws/hub/connection-hub"
	"campus-outpass-backend/memstore"
)

var LoggerConfig *fiberlog.Config

// InitAllServices wires the singletons in dependency order; handlers
// further down the list may rely on any Instance set above them.
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	memstore.Connect()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	signaturestorage.NewHandler()
	notificationhandler.NewHandler()
	authhandler.NewHandler()
	leavereqhandler.NewHandler()
	outpass.NewHandler()
	xlsexport.NewHandler()
}
