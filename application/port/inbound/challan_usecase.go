package inbound

import (
	"context"

	"github.com/dcdesk/dcdesk/domain/entity"
)

type CreateChallanRequest struct {
	DCNumber         string   `json:"dcNumber"`
	CustomerName     string   `json:"customerName"`
	ItemNames        []string `json:"itemNames"`
	TotalDispatchQty int      `json:"totalDispatchQty"`
	TotalReceivedQty int      `json:"totalReceivedQty"`
}

type UpdateChallanRequest struct {
	CustomerName     *string               `json:"customerName"`
	ItemNames        []string              `json:"itemNames"`
	TotalDispatchQty *int                  `json:"totalDispatchQty"`
	TotalReceivedQty *int                  `json:"totalReceivedQty"`
	Status           *entity.ChallanStatus `json:"status"`
}

type ListChallansRequest struct {
	Status entity.ChallanStatus
	Search string
	Page   int
	Limit  int
}

type ListChallansResponse struct {
	Challans   []*entity.DeliveryChallan `json:"data"`
	Pagination Pagination                `json:"pagination"`
}

type ChallanUseCase interface {
	List(ctx context.Context, req ListChallansRequest) (*ListChallansResponse, error)
	Get(ctx context.Context, id string) (*entity.DeliveryChallan, error)
	Create(ctx context.Context, createdBy string, req CreateChallanRequest) (*entity.DeliveryChallan, error)
	Update(ctx context.Context, id string, req UpdateChallanRequest) (*entity.DeliveryChallan, error)
	UpdateStatus(ctx context.Context, id string, status entity.ChallanStatus) (*entity.DeliveryChallan, error)
	Delete(ctx context.Context, id string) error
}

type CreateDraftRequest struct {
	SupplierID       int64  `json:"supplierId"`
	VehicleNo        string `json:"vehicleNo"`
	Process          string `json:"process"`
	TotalDispatchQty int    `json:"totalDispatchedQuantity"`
	TotalRate        int    `json:"totalRate"`
	ShowWeight       bool   `json:"showWeight"`
	ShowSquareFeet   bool   `json:"showSquareFeet"`
	Notes            string `json:"notes"`
}

type UpdateDraftRequest struct {
	VehicleNo        *string               `json:"vehicleNo"`
	Process          *string               `json:"process"`
	TotalDispatchQty *int                  `json:"totalDispatchedQuantity"`
	TotalRate        *int                  `json:"totalRate"`
	Status           *entity.ChallanStatus `json:"status"`
	ShowWeight       *bool                 `json:"showWeight"`
	ShowSquareFeet   *bool                 `json:"showSquareFeet"`
	Notes            *string               `json:"notes"`
}

type ListDraftsResponse struct {
	Drafts     []*entity.DraftChallan `json:"data"`
	Pagination Pagination             `json:"pagination"`
}

type DraftChallanUseCase interface {
	List(ctx context.Context, page, limit int) (*ListDraftsResponse, error)
	Get(ctx context.Context, id int64) (*entity.DraftChallan, error)
	Create(ctx context.Context, createdBy string, req CreateDraftRequest) (*entity.DraftChallan, error)
	Update(ctx context.Context, id int64, req UpdateDraftRequest) (*entity.DraftChallan, error)
	Delete(ctx context.Context, id int64) error
}
