package usecase

import (
	"context"
	"fmt"

	"github.com/bizzyglass/glass-crm/internal/entity"
	"github.com/bizzyglass/glass-crm/internal/phone"
)

// InboundRouter maps an arriving text to the lead it belongs to.
type InboundRouter struct {
	Repo entity.LeadRepositoryInterface
}

func NewInboundRouter(repo entity.LeadRepositoryInterface) *InboundRouter {
	return &InboundRouter{Repo: repo}
}

// Route returns (nil, nil) when no lead matches: an unknown sender is
// not an error, the carrier still needs its acknowledgment. When stored
// numbers are short or malformed the suffix match can hit several
// leads; we take the first in id order. Exact-length matching is a
// known future hardening, not current behavior.
func (r *InboundRouter) Route(ctx context.Context, rawSenderNumber string) (*entity.Lead, error) {
	key := phone.MatchKey(rawSenderNumber)
	if key == "" {
		return nil, nil
	}

	leads, err := r.Repo.FindByPhoneSuffix(ctx, key)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: fmt.Sprintf("phone suffix lookup failed: %v", err),
		}
	}
	if len(leads) == 0 {
		return nil, nil
	}

	return &leads[0], nil
}
