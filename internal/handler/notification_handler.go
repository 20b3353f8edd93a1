package handler

import (
	"context"

	"koperasi-portal/internal/service"
)

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: s}
}

type MarkReadResponse struct {
	Success bool `json:"success"`
}

// GetNotifications
// GET /trpc/getNotifications?input={"memberId":1}
func (h *NotificationHandler) GetNotifications(ctx context.Context, in *GetNotificationsInput) (interface{}, error) {
	notifications, err := h.service.GetNotifications(ctx, in.MemberID, in.page())
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead
// POST /trpc/markNotificationRead {"notificationId":3,"memberId":1}
func (h *NotificationHandler) MarkNotificationRead(ctx context.Context, in *MarkNotificationReadInput) (interface{}, error) {
	ok, err := h.service.MarkRead(ctx, in.NotificationID, in.MemberID)
	if err != nil {
		return nil, err
	}
	return MarkReadResponse{Success: ok}, nil
}
