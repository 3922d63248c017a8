package service

import (
	"fmt"

	"github.com/MKhiriev/aegis-totp/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

// NewAppInfoService returns an [AppInfoService] for buildInfo. Missing fields
// are reported as [models.BuildInfoUnknown].
func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo.WithDefaults(),
	}
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.buildInfo
}

func (s *appInfoService) Version() string {
	return fmt.Sprintf("aegis-totp %s (commit %s, built %s)",
		s.buildInfo.BuildVersion(), s.buildInfo.BuildCommit(), s.buildInfo.BuildDate())
}
