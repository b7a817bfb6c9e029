package interfaces

import (
	"context"

	"bondcache/internal/models"
)

//go:generate mockgen -package=mock -source=bondapi.go -destination=mock/bondapi.go

// BondAPI is the client contract for the upstream BondMaster reference API.
// Implementations own retry and timeout behavior; callers treat each method
// as a single opaque fetch.
type BondAPI interface {
	// GetBond fetches one bond by normalized ISIN.
	GetBond(ctx context.Context, isin string) (models.Bond, error)

	// ListBonds fetches bonds matching the query filters.
	ListBonds(ctx context.Context, query models.ListQuery) ([]models.Bond, error)

	// GetDatabaseStats fetches bond counts, total and per country.
	GetDatabaseStats(ctx context.Context) (*models.DatabaseStats, error)

	// TriggerRefresh asks the API to re-pull bond data from its sources.
	TriggerRefresh(ctx context.Context, req models.RefreshRequest) (*models.RefreshResponse, error)

	// GetLineage fetches source attribution for a bond.
	GetLineage(ctx context.Context, isin string) (*models.Lineage, error)

	// GetHistory fetches up to limit change records for a bond.
	GetHistory(ctx context.Context, isin string, limit int) ([]models.ChangeRecord, error)

	// CorporateActions fetches recent corporate actions.
	CorporateActions(ctx context.Context, query models.ActionsQuery) ([]models.CorporateAction, error)

	// UpcomingMaturities fetches bonds maturing within the next days.
	UpcomingMaturities(ctx context.Context, days int) ([]models.CorporateAction, error)

	// Health checks upstream connectivity.
	Health(ctx context.Context) error
}
