package repository

import (
	"context"

	"koperasi-portal/internal/model"

	"gorm.io/gorm"
)

type MemberRepository interface {
	FindByID(ctx context.Context, id int) (*model.Member, error)
	FindByMemberNumber(ctx context.Context, memberNumber string) (*model.Member, error)
	Create(ctx context.Context, member *model.Member) error
	UpdatePinHash(ctx context.Context, id int, pinHash string) error
}

type memberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db}
}

func (r *memberRepo) FindByID(ctx context.Context, id int) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) FindByMemberNumber(ctx context.Context, memberNumber string) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("member_number = ?", memberNumber).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepo) UpdatePinHash(ctx context.Context, id int, pinHash string) error {
	return r.db.WithContext(ctx).Model(&model.Member{}).Where("id = ?", id).Update("pin_hash", pinHash).Error
}
