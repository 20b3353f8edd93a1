package service

import (
	"context"
	"errors"

	"koperasi-portal/internal/model"
	"koperasi-portal/internal/repository"
	"koperasi-portal/pkg/jwt"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, memberNumber, pin string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token  string       `json:"token"`
	Member model.Member `json:"member"`
}

type authService struct {
	memberRepo repository.MemberRepository
	signer     *jwt.Signer
}

func NewAuthService(memberRepo repository.MemberRepository, signer *jwt.Signer) AuthService {
	return &authService{
		memberRepo: memberRepo,
		signer:     signer,
	}
}

func (s *authService) Login(ctx context.Context, memberNumber, pin string) (*LoginResponse, error) {
	member, err := s.memberRepo.FindByMemberNumber(ctx, memberNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !member.CheckPin(pin) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signer.GenerateToken(member.ID, member.MemberNumber, member.Name)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:  token,
		Member: *member,
	}, nil
}
