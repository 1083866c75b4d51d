// Package request handles the client service-request lifecycle:
// OPEN <-> ASSIGNED, owner-only transitions.
package request

import (
	"errors"

	"mynunny/internal/models"
	"mynunny/internal/repositories"
)

var (
	ErrNotFound = repositories.ErrRequestNotFound
	ErrNotOwner = errors.New("only the request owner may do this")
)

type Service interface {
	Create(userID uint, input *models.CreateRequestInput) (*models.Request, error)

	// ListPublic returns the open feed; ASSIGNED rows are hidden per policy.
	ListPublic() ([]models.Request, error)

	// ListMine returns the caller's own requests.
	ListMine(userID uint) ([]models.Request, error)

	// Assign marks the request taken. Caller must be the owner.
	Assign(id, callerID uint) (*models.Request, error)

	// Unassign reopens the request. Caller must be the owner.
	Unassign(id, callerID uint) (*models.Request, error)
}

type service struct {
	requestRepo  repositories.RequestRepository
	hideAssigned bool
}

func NewService(requestRepo repositories.RequestRepository, hideAssigned bool) Service {
	return &service{
		requestRepo:  requestRepo,
		hideAssigned: hideAssigned,
	}
}

func (s *service) Create(userID uint, input *models.CreateRequestInput) (*models.Request, error) {
	req := &models.Request{
		UserID:      userID,
		Service:     input.Service,
		Amount:      input.Amount,
		Location:    input.Location,
		Description: input.Description,
		Email:       input.Email,
		Phone:       input.Phone,
		Status:      models.RequestOpen,
		IsActive:    true,
	}
	if err := s.requestRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) ListPublic() ([]models.Request, error) {
	return s.requestRepo.ListActive(s.hideAssigned)
}

func (s *service) ListMine(userID uint) ([]models.Request, error) {
	return s.requestRepo.ListByUser(userID)
}

func (s *service) Assign(id, callerID uint) (*models.Request, error) {
	return s.setStatus(id, callerID, models.RequestAssigned)
}

func (s *service) Unassign(id, callerID uint) (*models.Request, error) {
	return s.setStatus(id, callerID, models.RequestOpen)
}

// setStatus enforces the ownership predicate before any mutation. The role
// middleware cannot express per-row ownership, so it is checked here.
func (s *service) setStatus(id, callerID uint, status string) (*models.Request, error) {
	existing, err := s.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != callerID {
		return nil, ErrNotOwner
	}
	return s.requestRepo.UpdateStatus(id, status)
}
