package entity

import (
	"context"
	"errors"
)

var ErrServiceNotFound = errors.New("service not found")

// GlassService is one entry of the service catalog the dashboard offers
// when building a quote (OEM windshield, chip repair, tint, ...).
type GlassService struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"` // OEM, AFTERMARKET, ADDON
	BasePriceCents int    `json:"base_price_cents"`
}

type ServiceRepositoryInterface interface {
	FindAll(ctx context.Context) ([]GlassService, error)
}
