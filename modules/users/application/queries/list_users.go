package queries

import (
	"context"
	"fmt"

	"github.com/mzukov/web-api/modules/shared/pagination"
	"github.com/mzukov/web-api/modules/users/domain"
)

// UserPageDTO is one page of user projections plus the snapshot data
// the transport layer needs to build pagination metadata.
type UserPageDTO struct {
	Users      []*UserDTO
	Page       pagination.Page
	TotalCount int
}

// ListUsersQuery represents a request to list users with pagination.
// Inputs are raw; they are clamped here, never rejected.
type ListUsersQuery struct {
	PageNumber int
	PageSize   int
}

// ListUsersHandler handles ListUsersQuery.
type ListUsersHandler struct {
	repo domain.UserRepository
}

func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query against a normalized page
// request and a point-in-time total count.
func (h *ListUsersHandler) Handle(ctx context.Context, query ListUsersQuery) (*UserPageDTO, error) {
	page := pagination.Normalize(query.PageNumber, query.PageSize)

	users, total, err := h.repo.GetPage(ctx, page.Number, page.Size)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	dtos := make([]*UserDTO, len(users))
	for i, user := range users {
		dtos[i] = toUserDTO(user)
	}

	return &UserPageDTO{
		Users:      dtos,
		Page:       page,
		TotalCount: total,
	}, nil
}
