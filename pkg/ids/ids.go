package ids

import (
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// New genera un identificador ULID ordenable por fecha de creación.
func New() string {
	return At(time.Now())
}

// At genera un ULID con la marca de tiempo indicada. Dentro del mismo milisegundo
// los valores siguen siendo crecientes.
func At(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
