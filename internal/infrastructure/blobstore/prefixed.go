package blobstore

import (
	"context"

	"github.com/jhoicas/subguard-api/internal/domain/repository"
)

// DefaultPrefix prefijo de todas las claves del espacio de trabajo.
const DefaultPrefix = "subguard_"

// Prefixed antepone un prefijo fijo a las claves del almacén interno.
type Prefixed struct {
	inner  repository.BlobStore
	prefix string
}

// WithPrefix envuelve inner. Un prefijo vacío usa DefaultPrefix.
func WithPrefix(inner repository.BlobStore, prefix string) *Prefixed {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Prefixed{inner: inner, prefix: prefix}
}

func (p *Prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key, value string) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *Prefixed) Remove(ctx context.Context, key string) error {
	return p.inner.Remove(ctx, p.prefix+key)
}
