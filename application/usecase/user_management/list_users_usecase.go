package user_management

import (
	"context"
	"fmt"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/port/outbound"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type ListUsersUseCase struct {
	userRepo outbound.UserRepository
}

func NewListUsersUseCase(userRepo outbound.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, req inbound.ListUsersRequest) (*inbound.ListUsersResponse, error) {
	page, limit := clampPage(req.Page, req.Limit)

	users, total, err := uc.userRepo.FindAll(ctx, (page-1)*limit, limit, outbound.UserFilters{
		Name: req.Name,
		Role: req.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	data := make([]inbound.UserData, 0, len(users))
	for _, u := range users {
		data = append(data, *toUserData(u))
	}

	return &inbound.ListUsersResponse{
		Users: data,
		Pagination: inbound.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: (total + limit - 1) / limit,
		},
	}, nil
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
