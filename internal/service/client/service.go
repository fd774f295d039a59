package client

import (
	"context"
	"fmt"

	"github.com/boxline/boxline-backend-go/internal/domain/client"
)

type ClientServiceImpl struct {
	clientRepo client.ClientRepository
}

func NewClientService(clientRepo client.ClientRepository) client.ClientService {
	return &ClientServiceImpl{clientRepo: clientRepo}
}

func (s *ClientServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Notes:         req.Notes,
		IsActive:      true,
	})
	if err != nil {
		return client.ClientResponse{}, err
	}

	return toResponse(created), nil
}

func (s *ClientServiceImpl) GetClient(ctx context.Context, id string) (client.ClientResponse, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return toResponse(c), nil
}

func (s *ClientServiceImpl) ListClients(ctx context.Context, filter client.ClientFilter) ([]client.ClientResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	clients, total, err := s.clientRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	responses := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, toResponse(c))
	}

	return responses, total, nil
}

func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	updated, err := s.clientRepo.Update(ctx, req)
	if err != nil {
		return client.ClientResponse{}, err
	}

	return toResponse(updated), nil
}

func (s *ClientServiceImpl) DeactivateClient(ctx context.Context, id string) error {
	return s.clientRepo.Deactivate(ctx, id)
}

func toResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		Notes:         c.Notes,
		IsActive:      c.IsActive,
	}
}
