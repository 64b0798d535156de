package challan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
)

var (
	ErrChallanNotFound = outbound.ErrChallanNotFound
	ErrDuplicateNumber = errors.New("delivery challan with this number already exists")
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type ChallanUseCase struct {
	challanRepo outbound.ChallanRepository
}

func NewChallanUseCase(challanRepo outbound.ChallanRepository) *ChallanUseCase {
	return &ChallanUseCase{challanRepo: challanRepo}
}

func (uc *ChallanUseCase) List(ctx context.Context, req inbound.ListChallansRequest) (*inbound.ListChallansResponse, error) {
	if req.Status != "" && !req.Status.Valid() {
		return nil, entity.ErrInvalidStatus
	}
	page, limit := clampPage(req.Page, req.Limit)

	challans, total, err := uc.challanRepo.FindAll(ctx, (page-1)*limit, limit, outbound.ChallanFilters{
		Status: req.Status,
		Search: req.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("list challans: %w", err)
	}

	return &inbound.ListChallansResponse{
		Challans: challans,
		Pagination: inbound.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: (total + limit - 1) / limit,
		},
	}, nil
}

func (uc *ChallanUseCase) Get(ctx context.Context, id string) (*entity.DeliveryChallan, error) {
	return uc.challanRepo.FindByID(ctx, id)
}

func (uc *ChallanUseCase) Create(ctx context.Context, createdBy string, req inbound.CreateChallanRequest) (*entity.DeliveryChallan, error) {
	exists, err := uc.challanRepo.ExistsByNumber(ctx, req.DCNumber)
	if err != nil {
		return nil, fmt.Errorf("check dc number: %w", err)
	}
	if exists {
		return nil, ErrDuplicateNumber
	}

	dc, err := entity.NewDeliveryChallan(uuid.New().String(), req.DCNumber, req.CustomerName, req.ItemNames, createdBy)
	if err != nil {
		return nil, err
	}
	dc.TotalDispatchQty = req.TotalDispatchQty
	dc.TotalReceivedQty = req.TotalReceivedQty
	if err := dc.Validate(); err != nil {
		return nil, err
	}

	if err := uc.challanRepo.Create(ctx, dc); err != nil {
		return nil, fmt.Errorf("create challan: %w", err)
	}
	return dc, nil
}

func (uc *ChallanUseCase) Update(ctx context.Context, id string, req inbound.UpdateChallanRequest) (*entity.DeliveryChallan, error) {
	dc, err := uc.challanRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		dc.CustomerName = *req.CustomerName
	}
	if req.ItemNames != nil {
		dc.ItemNames = req.ItemNames
	}
	if req.TotalDispatchQty != nil {
		dc.TotalDispatchQty = *req.TotalDispatchQty
	}
	if req.TotalReceivedQty != nil {
		dc.TotalReceivedQty = *req.TotalReceivedQty
	}
	if req.Status != nil {
		dc.Status = *req.Status
	}
	dc.UpdatedAt = time.Now()

	if err := dc.Validate(); err != nil {
		return nil, err
	}
	if err := uc.challanRepo.Update(ctx, dc); err != nil {
		return nil, fmt.Errorf("update challan: %w", err)
	}
	return dc, nil
}

func (uc *ChallanUseCase) UpdateStatus(ctx context.Context, id string, status entity.ChallanStatus) (*entity.DeliveryChallan, error) {
	if !status.Valid() {
		return nil, entity.ErrInvalidStatus
	}
	if err := uc.challanRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return uc.challanRepo.FindByID(ctx, id)
}

func (uc *ChallanUseCase) Delete(ctx context.Context, id string) error {
	return uc.challanRepo.SoftDelete(ctx, id)
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
