package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/models"
	repository "github.com/sellora/marketplace/internal/repositories"
)

type AddressService interface {
	CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error)
	GetAddress(ctx context.Context, userID, id uuid.UUID) (*models.Address, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
	UpdateAddress(ctx context.Context, userID, id uuid.UUID, req *models.UpdateAddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, userID, id uuid.UUID) error
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error) {

	address := &models.Address{
		UserID:     userID,
		Label:      req.Label,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
		IsDefault:  req.IsDefault,
	}

	// Only one default address per user.
	if address.IsDefault {
		if err := s.repo.ClearDefault(ctx, userID); err != nil {
			return nil, errors.DatabaseError("Failed to update default address").WithError(err)
		}
	}

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, errors.DatabaseError("Failed to create address").WithError(err)
	}

	return address, nil
}

func (s *addressService) GetAddress(ctx context.Context, userID, id uuid.UUID) (*models.Address, error) {

	address, err := s.repo.GetAddressByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Address not found").WithError(err)
	}

	if address.UserID != userID {
		return nil, errors.ForbiddenError("You don't have permission to access this address")
	}

	return address, nil
}

func (s *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {

	addresses, err := s.repo.ListAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list addresses").WithError(err)
	}

	return addresses, nil
}

func (s *addressService) UpdateAddress(ctx context.Context, userID, id uuid.UUID, req *models.UpdateAddressRequest) (*models.Address, error) {

	address, err := s.GetAddress(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		address.Label = *req.Label
	}
	if req.Street != nil {
		address.Street = *req.Street
	}
	if req.City != nil {
		address.City = *req.City
	}
	if req.State != nil {
		address.State = *req.State
	}
	if req.PostalCode != nil {
		address.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		address.Country = *req.Country
	}
	if req.Phone != nil {
		address.Phone = *req.Phone
	}
	if req.IsDefault != nil {
		if *req.IsDefault && !address.IsDefault {
			if err := s.repo.ClearDefault(ctx, userID); err != nil {
				return nil, errors.DatabaseError("Failed to update default address").WithError(err)
			}
		}
		address.IsDefault = *req.IsDefault
	}

	if err := s.repo.UpdateAddress(ctx, address); err != nil {
		return nil, errors.DatabaseError("Failed to update address").WithError(err)
	}

	return address, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, userID, id uuid.UUID) error {

	if _, err := s.GetAddress(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.DeleteAddress(ctx, id); err != nil {
		return errors.DatabaseError("Failed to delete address").WithError(err)
	}

	return nil
}
