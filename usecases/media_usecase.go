package usecases

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/security"
	"github.com/zapdesk/zapdesk-backend/usecases/tracking"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type MediaUsecase struct {
	enforceSecurity security.EnforceSecuritySettings
	blobRepository  repositories.BlobRepository
	bucketUrl       string
}

// UploadMedia streams a workspace asset (logo, banner or attachment) to the
// blob store and returns the public path.
func (usecase *MediaUsecase) UploadMedia(ctx context.Context,
	input models.UploadMediaInput,
) (models.UploadedMedia, error) {
	if err := usecase.enforceSecurity.UploadMedia(); err != nil {
		return models.UploadedMedia{}, err
	}
	if usecase.bucketUrl == "" {
		return models.UploadedMedia{}, errors.Wrap(models.BadParameterError,
			"no media bucket configured")
	}
	if !input.Type.Valid() {
		return models.UploadedMedia{}, errors.Wrap(models.BadParameterError,
			fmt.Sprintf("unknown media type %q", input.Type))
	}
	if input.FileName == "" {
		return models.UploadedMedia{}, errors.Wrap(models.BadParameterError,
			"file name is required")
	}

	filePath := fmt.Sprintf("workspaces/%s/%s/%d%s",
		input.WorkspaceId, input.Type, time.Now().UnixMilli(), path.Ext(input.FileName))

	writer, err := usecase.blobRepository.OpenStream(ctx, usecase.bucketUrl, filePath, input.ContentType)
	if err != nil {
		return models.UploadedMedia{}, err
	}
	if _, err := io.Copy(writer, input.Reader); err != nil {
		writer.Close()
		return models.UploadedMedia{}, err
	}
	if err := writer.Close(); err != nil {
		return models.UploadedMedia{}, err
	}

	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "uploaded workspace media",
		"workspace_id", input.WorkspaceId, "type", string(input.Type), "path", filePath)

	tracking.TrackEvent(ctx, models.AnalyticsMediaUploaded, map[string]interface{}{
		"workspace_id": input.WorkspaceId,
		"type":         string(input.Type),
	})

	return models.UploadedMedia{
		Url:  fmt.Sprintf("%s/%s", usecase.bucketUrl, filePath),
		Path: filePath,
	}, nil
}
