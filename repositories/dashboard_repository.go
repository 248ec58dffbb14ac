package repositories

import (
	"context"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

// GetDashboardStats computes the workspace counters in a single round trip.
// The FILTER clauses replace what the frontend used to compute by filtering
// fetched lists client side.
func (repo *ZapdeskDbRepository) GetDashboardStats(ctx context.Context, exec Executor,
	workspaceId string,
) (models.DashboardStats, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.DashboardStats{}, err
	}

	sql := `
		SELECT
			(SELECT count(*) FILTER (WHERE status = 'pending') FROM ` + dbmodels.TABLE_CONVERSATIONS + ` WHERE workspace_id = $1),
			(SELECT count(*) FILTER (WHERE status = 'active') FROM ` + dbmodels.TABLE_CONVERSATIONS + ` WHERE workspace_id = $1),
			(SELECT count(*) FILTER (WHERE status = 'closed') FROM ` + dbmodels.TABLE_CONVERSATIONS + ` WHERE workspace_id = $1),
			(SELECT count(*) FILTER (WHERE status = 'connected') FROM ` + dbmodels.TABLE_CONNECTIONS + ` WHERE workspace_id = $1),
			(SELECT count(*) FROM ` + dbmodels.TABLE_QUEUES + ` WHERE workspace_id = $1),
			(SELECT count(*) FROM ` + dbmodels.TABLE_MESSAGES + ` WHERE workspace_id = $1 AND created_at >= date_trunc('day', now()))
	`

	var stats models.DashboardStats
	err := exec.QueryRow(ctx, sql, workspaceId).Scan(
		&stats.PendingConversations,
		&stats.ActiveConversations,
		&stats.ClosedConversations,
		&stats.ActiveConnections,
		&stats.Queues,
		&stats.MessagesToday,
	)
	if err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}
