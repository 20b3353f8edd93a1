package service

import (
	"context"

	"koperasi-portal/internal/model"
	"koperasi-portal/internal/repository"
)

type NotificationService interface {
	GetNotifications(ctx context.Context, memberID int, page repository.Page) ([]model.Notification, error)
	MarkRead(ctx context.Context, notificationID, memberID int) (bool, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, memberID int, page repository.Page) ([]model.Notification, error) {
	return s.notificationRepo.FindByMember(ctx, memberID, page)
}

// MarkRead returns false, not an error, when the notification is missing or owned by someone else.
func (s *notificationService) MarkRead(ctx context.Context, notificationID, memberID int) (bool, error) {
	return s.notificationRepo.MarkRead(ctx, notificationID, memberID)
}
