package service

import (
	"context"

	"tiffinbox/marketplace-svc/internal/domain"
)

type AddressService struct {
	repo Repository
}

func NewAddressService(repo Repository) *AddressService {
	return &AddressService{repo: repo}
}

var _ AddressServiceInterface = (*AddressService)(nil)

func (s *AddressService) List(ctx context.Context, userID int) ([]domain.Address, error) {
	return s.repo.ListAddresses(ctx, userID)
}

func (s *AddressService) Add(ctx context.Context, userID int, addr *domain.Address) error {
	if err := validateAddress(*addr); err != nil {
		return err
	}
	return s.repo.CreateAddress(ctx, userID, addr)
}
