package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/veralum/veralum-backend/config"
	"github.com/veralum/veralum-backend/internal/store"
	"github.com/veralum/veralum-backend/logger"
	"github.com/veralum/veralum-backend/types"
)

// HealthService reports the readiness of the service's two dependencies:
// the email provider configuration and the embedded catalog.
type HealthService struct {
	catalog   store.CatalogStore
	emailCfg  *config.EmailConfig
	version   string
	startTime time.Time
	log       *zap.SugaredLogger
}

func NewHealthService(catalog store.CatalogStore, emailCfg *config.EmailConfig, version string) *HealthService {
	return &HealthService{
		catalog:   catalog,
		emailCfg:  emailCfg,
		version:   version,
		startTime: time.Now(),
		log:       logger.GetLogger(),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	emailStatus := h.checkEmail()
	components["email"] = emailStatus
	if emailStatus.Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDown
	} else if emailStatus.Status == types.HealthStatusDegraded {
		overallStatus = types.HealthStatusDegraded
	}

	catalogStatus := h.checkCatalog()
	components["catalog"] = catalogStatus
	if catalogStatus.Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDown
	} else if catalogStatus.Status == types.HealthStatusDegraded && overallStatus != types.HealthStatusDown {
		overallStatus = types.HealthStatusDegraded
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

// checkEmail verifies that outbound email is configured. The provider is not
// pinged: Resend has no cheap health endpoint and a probe per readiness check
// would count against the sending quota.
func (h *HealthService) checkEmail() types.HealthComponent {
	if h.emailCfg == nil || h.emailCfg.ResendAPIKey == "" {
		h.log.Error("Email health check failed: missing API key")
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Email provider is not configured",
		}
	}
	if h.emailCfg.ContactRecipient == "" {
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: "No notification recipient configured",
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}

func (h *HealthService) checkCatalog() types.HealthComponent {
	if h.catalog == nil || len(h.catalog.Collections()) == 0 {
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Catalog is empty",
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}
