package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/usecases"
	"github.com/zapdesk/zapdesk-backend/utils"
)

// workspaceIdFromRequest resolves the x-workspace-id header and checks that
// the caller may act inside that workspace. Workspace-scoped handlers call it
// before touching any usecase.
func workspaceIdFromRequest(ctx context.Context, c *gin.Context, uc usecases.Usecases) (string, error) {
	workspaceId, err := utils.WorkspaceIdFromRequest(c.Request)
	if err != nil {
		return "", err
	}

	usecase := usecasesWithCreds(ctx, uc).NewWorkspaceUsecase()
	if err := usecase.ValidateWorkspaceAccess(ctx, workspaceId); err != nil {
		return "", err
	}
	return workspaceId, nil
}
