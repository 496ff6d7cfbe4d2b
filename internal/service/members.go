package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) CreateMember(ctx context.Context, name, phone string) (*domain.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("member name is required: %w", domain.ErrValidation)
	}

	now := time.Now()
	m := &domain.Member{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     strings.TrimSpace(phone),
		CreatedOn: now,
		UpdatedOn: now,
	}
	if err := s.memberRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	return m, nil
}

func (s *memberService) GetMember(ctx context.Context, id string) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *memberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepo.List(ctx)
}

func (s *memberService) SearchMembers(ctx context.Context, query string) ([]domain.Member, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.memberRepo.List(ctx)
	}
	return s.memberRepo.Search(ctx, query)
}

func (s *memberService) UpdateMember(ctx context.Context, id, name, phone string) (*domain.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("member name is required: %w", domain.ErrValidation)
	}

	m, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Name = name
	m.Phone = strings.TrimSpace(phone)
	m.UpdatedOn = time.Now()
	if err := s.memberRepo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}
	return m, nil
}
