package service

import (
	"context"
	"encoding/json"
	"fmt"

	"anoa.com/civicwaste/internal/entity"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ActivityPublisher fans recorded activities out to live subscribers.
type ActivityPublisher interface {
	PublishActivity(ctx context.Context, activity *entity.Activity)
}

type activityPublisher struct {
	redisClient *redis.Client
}

// NewActivityPublisher returns a publisher backed by redis pub/sub. A nil client
// turns publishing into a no-op.
func NewActivityPublisher(redisClient *redis.Client) ActivityPublisher {
	return &activityPublisher{redisClient: redisClient}
}

// ActivityChannel is the redis channel carrying a user's recorded activities.
func ActivityChannel(userID uuid.UUID) string {
	return fmt.Sprintf("user_activity:%s", userID.String())
}

func (p *activityPublisher) PublishActivity(ctx context.Context, activity *entity.Activity) {
	if p.redisClient == nil {
		return
	}

	payload, err := json.Marshal(activity)
	if err != nil {
		log.Error("failed to encode activity event", "id", activity.ID, "err", err)
		return
	}

	if err := p.redisClient.Publish(ctx, ActivityChannel(activity.UserID), payload).Err(); err != nil {
		log.Warn("failed to publish activity event", "user", activity.UserID, "err", err)
	}
}
