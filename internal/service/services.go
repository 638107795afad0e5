package service

import (
	"github.com/MKhiriev/go-steam-guard/internal/adapter"
	"github.com/MKhiriev/go-steam-guard/internal/config"
	"github.com/MKhiriev/go-steam-guard/internal/crypto"
	"github.com/MKhiriev/go-steam-guard/internal/logger"
)

type ClientServices struct {
	GuardService        crypto.GuardService
	ConfirmationService ConfirmationService
	CodeRefreshJob      CodeRefreshJob
}

func NewClientServices(confAdapter adapter.ConfirmationAdapter, cfg config.ClientWorkers, log *logger.Logger) *ClientServices {
	guard := crypto.NewGuardService()

	return &ClientServices{
		GuardService:        guard,
		ConfirmationService: NewConfirmationService(guard, confAdapter, cfg, log),
		CodeRefreshJob:      NewCodeRefreshJob(guard, log),
	}
}
