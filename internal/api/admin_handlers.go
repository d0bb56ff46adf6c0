package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/auth"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/infrastructure/kafka"
)

// AdminHandlers serves authentication and operational endpoints.
type AdminHandlers struct {
	jwtService *auth.JWTService

	adminUser string
	adminHash string

	broker            string
	orderTopic        string
	notificationTopic string
}

type AdminConfig struct {
	JWTService        *auth.JWTService
	AdminUser         string
	AdminPasswordHash string
	Broker            string
	OrderTopic        string
	NotificationTopic string
}

func NewAdminHandlers(cfg AdminConfig) *AdminHandlers {
	return &AdminHandlers{
		jwtService:        cfg.JWTService,
		adminUser:         cfg.AdminUser,
		adminHash:         cfg.AdminPasswordHash,
		broker:            cfg.Broker,
		orderTopic:        cfg.OrderTopic,
		notificationTopic: cfg.NotificationTopic,
	}
}

// Login exchanges the admin credential for a bearer token.
func (h *AdminHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Username != h.adminUser || !auth.CheckPassword(req.Password, h.adminHash) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(req.Username, "admin")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"accessToken": token,
		"expiresAt":   expiresAt,
	})
}

// Health reports liveness.
func (h *AdminHandlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "UP",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// QueueStatus reports the approximate backlog of both topics. A topic
// that cannot be reached reports zero, matching the health-check role of
// this endpoint.
func (h *AdminHandlers) QueueStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	respondJSON(w, http.StatusOK, map[string]any{
		"orderQueueMessages":        h.topicDepth(ctx, h.orderTopic),
		"notificationQueueMessages": h.topicDepth(ctx, h.notificationTopic),
		"orderQueue":                h.orderTopic,
		"notificationQueue":         h.notificationTopic,
	})
}

func (h *AdminHandlers) topicDepth(ctx context.Context, topic string) int64 {
	depth, err := kafka.TopicDepth(ctx, h.broker, topic)
	if err != nil {
		log.Printf("[API] Failed to read depth of topic %s: %v", topic, err)
		return 0
	}
	return depth
}
