package tracking

import (
	"context"

	"github.com/segmentio/analytics-go/v3"

	"github.com/zapdesk/zapdesk-backend/utils"
)

// TrackEvent sends a product analytics event attributed to the current user.
// It is fire and forget: a missing client or identity drops the event.
func TrackEvent(ctx context.Context, eventName string, properties map[string]interface{}) {
	client, ok := utils.SegmentClientFromContext(ctx)
	if !ok {
		return
	}
	credentials, ok := utils.CredentialsFromCtx(ctx)
	if !ok || credentials.ActorIdentity.UserId == "" {
		return
	}

	p := analytics.NewProperties()
	for key, value := range properties {
		p.Set(key, value)
	}
	p.Set("organization_id", credentials.OrganizationId)

	err := client.Enqueue(analytics.Track{
		UserId:     string(credentials.ActorIdentity.UserId),
		Event:      eventName,
		Properties: p,
	})
	if err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "failed to enqueue analytics event",
			"event", eventName, "error", err.Error())
	}
}
