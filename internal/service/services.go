package service

import "github.com/MKhiriev/go-warden/internal/logger"

// ExportDeps groups the collaborators the export coordinator needs.
type ExportDeps struct {
	Store     VaultItemStore
	Policy    PolicyService
	Flags     FeatureFlagService
	Exporter  Exporter
	Clock     TimeProvider
	ExportDir string
}

// RoutingDeps groups the collaborators the auth router needs.
type RoutingDeps struct {
	Auth               AuthRepository
	State              StateService
	Timeout            VaultTimeoutService
	Clock              TimeProvider
	IsExtensionContext bool
}

// Services aggregates the client-side application services.
type Services struct {
	Export ExportService
	Router AuthRouter
}

// NewServices wires the export coordinator and the auth router from their
// dependency groups. Grouping export-time and routing-time dependencies
// separately keeps either service constructible without the other's
// collaborators.
func NewServices(export ExportDeps, routing RoutingDeps, log *logger.Logger) *Services {
	return &Services{
		Export: NewExportService(
			export.Store,
			export.Policy,
			export.Flags,
			export.Exporter,
			export.Clock,
			export.ExportDir,
			log,
		),
		Router: NewAuthRouter(
			routing.Auth,
			routing.State,
			routing.Timeout,
			routing.Clock,
			routing.IsExtensionContext,
			log,
		),
	}
}
