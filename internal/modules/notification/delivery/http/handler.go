package handler

import (
	"net/http"

	notifService "anoa.com/civicwaste/internal/modules/notification/service"
	userRepo "anoa.com/civicwaste/internal/modules/user/repository"
	"anoa.com/civicwaste/pkg/response"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

type ActivityFeedHandler struct {
	userRepo    userRepo.UserRepository
	redisClient *redis.Client
	upgrader    websocket.Upgrader
}

func NewActivityFeedHandler(userRepo userRepo.UserRepository, redisClient *redis.Client) *ActivityFeedHandler {
	return &ActivityFeedHandler{
		userRepo:    userRepo,
		redisClient: redisClient,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWebSocket relays every activity the user records as a JSON text frame.
//
// @Summary Live activity feed
// @Tags activity
// @Param id path string true "User ID"
// @Success 101
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/users/{id}/activity/ws [get]
func (h *ActivityFeedHandler) HandleWebSocket(c *gin.Context) {
	userID, err := response.ParseUserID(c)
	if err != nil {
		response.ResponseError(c, err, "Failed to open activity feed")
		return
	}
	if _, err := h.userRepo.FindByID(c.Request.Context(), userID); err != nil {
		response.ResponseError(c, err, "Failed to open activity feed")
		return
	}

	if h.redisClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Activity feed is not available"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("failed to upgrade websocket", "err", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	pubsub := h.redisClient.Subscribe(ctx, notifService.ActivityChannel(userID))
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		log.Error("failed to subscribe to activity channel", "user", userID, "err", err)
		return
	}

	ch := pubsub.Channel()

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Warn("failed to write activity event", "user", userID, "err", err)
				return
			}
		case <-clientClosed:
			return
		case <-ctx.Done():
			return
		}
	}
}
