package ports

import (
	"context"

	"github.com/NanduBolleddu/Todofy-project/internal/core/domain"
)

// TokenVerifier validates a raw bearer token and resolves the caller's
// identity. Verification is stateless: every request is checked on its own.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (domain.Identity, error)
}
