package repository

import (
	"context"

	"koperasi-portal/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	FindByMember(ctx context.Context, memberID int, page Page) ([]model.Notification, error)
	CountUnread(ctx context.Context, memberID int) (int64, error)
	MarkRead(ctx context.Context, id, memberID int) (bool, error)
	Create(ctx context.Context, notification *model.Notification) error
}

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db}
}

func (r *notificationRepo) FindByMember(ctx context.Context, memberID int, page Page) ([]model.Notification, error) {
	notifications := make([]model.Notification, 0)
	err := r.db.WithContext(ctx).
		Scopes(paginate(page)).
		Where("member_id = ?", memberID).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepo) CountUnread(ctx context.Context, memberID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("member_id = ? AND is_read = ?", memberID, false).
		Count(&count).Error
	return count, err
}

// MarkRead flips is_read in one conditional UPDATE; ownership is part of the WHERE clause
// so a missing row and a foreign row both report false.
func (r *notificationRepo) MarkRead(ctx context.Context, id, memberID int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND member_id = ?", id, memberID).
		Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *notificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}
