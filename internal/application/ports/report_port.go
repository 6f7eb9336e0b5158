package ports

import (
	"context"

	"github.com/jhoicas/subguard-api/internal/application/dto"
)

// ReportRenderer genera un documento descargable del registro (PDF, XML).
type ReportRenderer interface {
	Render(ctx context.Context, report dto.RegistryReport) ([]byte, error)
	// ContentType tipo MIME del documento generado.
	ContentType() string
	// Extension extensión de archivo sin punto.
	Extension() string
}
