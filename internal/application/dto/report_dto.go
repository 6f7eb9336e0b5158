package dto

import (
	"time"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/finance"
)

// RegistryReport datos que recibe un ReportRenderer.
type RegistryReport struct {
	CompanyName string
	Currency    string
	GeneratedAt time.Time
	Stats       finance.Stats
	Assets      []entity.Asset
}

// ExportFile documento generado listo para descarga.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
