package adapter

import (
	"context"

	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/internal/service"
	"github.com/MKhiriev/go-warden/models"
)

// policyService resolves organization policy restrictions from the remote
// server. A fetch failure degrades to "no restrictions" so policy outages
// never block an export.
type policyService struct {
	adapter ServerAdapter
	logger  *logger.Logger
}

func NewPolicyService(adapter ServerAdapter, logger *logger.Logger) service.PolicyService {
	logger.Debug().Msg("creating policy service")
	return &policyService{
		adapter: adapter,
		logger:  logger,
	}
}

// RestrictedItemTypes implements [service.PolicyService]. It collects the
// item types named by every enabled restrictItemTypes policy, deduplicated.
func (s *policyService) RestrictedItemTypes(ctx context.Context) []models.ItemType {
	policies, err := s.adapter.FetchPolicies(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "policyService.RestrictedItemTypes").Msg("policy fetch failed, applying no restrictions")
		return nil
	}

	seen := make(map[models.ItemType]struct{})
	var restricted []models.ItemType
	for _, policy := range policies {
		if policy.Type != models.PolicyTypeRestrictItemTypes || !policy.Enabled {
			continue
		}
		for _, itemType := range policy.RestrictedTypes {
			if _, ok := seen[itemType]; ok {
				continue
			}
			seen[itemType] = struct{}{}
			restricted = append(restricted, itemType)
		}
	}

	return restricted
}
