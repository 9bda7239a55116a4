package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tijarati/tijarati_host/internal/apperrors"
	portsrepo "github.com/tijarati/tijarati_host/internal/core/ports/repositories"
	portssvc "github.com/tijarati/tijarati_host/internal/core/ports/services"
	"github.com/tijarati/tijarati_host/internal/dto"
	"github.com/tijarati/tijarati_host/internal/utils/mapping"
)

type PartnerService struct {
	repo portsrepo.PartnerRepository
	log  *slog.Logger
}

func NewPartnerService(repo portsrepo.PartnerRepository, logger *slog.Logger) *PartnerService {
	return &PartnerService{repo: repo, log: logger}
}

var _ portssvc.PartnerSvcFacade = (*PartnerService)(nil)

func (s *PartnerService) ListPartners(ctx context.Context) ([]dto.PartnerResponse, error) {
	partners, err := s.repo.ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return mapping.ToPartnerResponses(partners), nil
}

func (s *PartnerService) SavePartner(ctx context.Context, req dto.SavePartnerRequest) (int64, error) {
	if strings.TrimSpace(req.Name) == "" {
		return 0, fmt.Errorf("partner name is required: %w", apperrors.ErrValidation)
	}
	id, err := s.repo.SavePartner(ctx, mapping.ToModelPartner(req))
	if err != nil {
		return 0, fmt.Errorf("failed to save partner: %w", err)
	}
	return id, nil
}

func (s *PartnerService) DeletePartner(ctx context.Context, id int64) error {
	if err := s.repo.DeletePartner(ctx, id); err != nil {
		return fmt.Errorf("failed to delete partner: %w", err)
	}
	return nil
}
