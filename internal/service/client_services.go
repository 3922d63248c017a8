package service

import (
	"github.com/MKhiriev/aegis-totp/internal/logger"
	"github.com/MKhiriev/aegis-totp/internal/store"
	"github.com/MKhiriev/aegis-totp/models"
)

// ClientServices groups the services used by the terminal client.
type ClientServices struct {
	VaultService   ClientVaultService
	OTPService     ClientOTPService
	AppInfoService AppInfoService
}

func NewClientServices(storages *store.ClientStorages, buildInfo models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		VaultService:   NewClientVaultService(storages),
		OTPService:     NewClientOTPService(logger),
		AppInfoService: NewAppInfoService(buildInfo),
	}
}
