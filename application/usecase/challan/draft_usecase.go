package challan

import (
	"context"
	"fmt"
	"time"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
)

var ErrDraftNotFound = outbound.ErrDraftNotFound

type DraftChallanUseCase struct {
	draftRepo    outbound.DraftChallanRepository
	supplierRepo outbound.SupplierRepository
}

func NewDraftChallanUseCase(draftRepo outbound.DraftChallanRepository, supplierRepo outbound.SupplierRepository) *DraftChallanUseCase {
	return &DraftChallanUseCase{draftRepo: draftRepo, supplierRepo: supplierRepo}
}

func (uc *DraftChallanUseCase) List(ctx context.Context, page, limit int) (*inbound.ListDraftsResponse, error) {
	page, limit = clampPage(page, limit)
	drafts, total, err := uc.draftRepo.FindAll(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	return &inbound.ListDraftsResponse{
		Drafts: drafts,
		Pagination: inbound.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: (total + limit - 1) / limit,
		},
	}, nil
}

func (uc *DraftChallanUseCase) Get(ctx context.Context, id int64) (*entity.DraftChallan, error) {
	return uc.draftRepo.FindByID(ctx, id)
}

func (uc *DraftChallanUseCase) Create(ctx context.Context, createdBy string, req inbound.CreateDraftRequest) (*entity.DraftChallan, error) {
	// The supplier must exist before a draft can reference it.
	if _, err := uc.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	draftID, err := uc.draftRepo.NextDraftID(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate draft id: %w", err)
	}

	now := time.Now()
	draft := &entity.DraftChallan{
		DraftID:          draftID,
		SupplierID:       req.SupplierID,
		VehicleNo:        req.VehicleNo,
		Process:          req.Process,
		TotalDispatchQty: req.TotalDispatchQty,
		TotalRate:        req.TotalRate,
		Status:           entity.StatusDraft,
		ShowWeight:       req.ShowWeight,
		ShowSquareFeet:   req.ShowSquareFeet,
		Notes:            req.Notes,
		CreatedBy:        createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := uc.draftRepo.Create(ctx, draft); err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	return draft, nil
}

func (uc *DraftChallanUseCase) Update(ctx context.Context, id int64, req inbound.UpdateDraftRequest) (*entity.DraftChallan, error) {
	draft, err := uc.draftRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.VehicleNo != nil {
		draft.VehicleNo = *req.VehicleNo
	}
	if req.Process != nil {
		draft.Process = *req.Process
	}
	if req.TotalDispatchQty != nil {
		draft.TotalDispatchQty = *req.TotalDispatchQty
	}
	if req.TotalRate != nil {
		draft.TotalRate = *req.TotalRate
	}
	if req.Status != nil {
		draft.Status = *req.Status
	}
	if req.ShowWeight != nil {
		draft.ShowWeight = *req.ShowWeight
	}
	if req.ShowSquareFeet != nil {
		draft.ShowSquareFeet = *req.ShowSquareFeet
	}
	if req.Notes != nil {
		draft.Notes = *req.Notes
	}
	draft.UpdatedAt = time.Now()

	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := uc.draftRepo.Update(ctx, draft); err != nil {
		return nil, fmt.Errorf("update draft: %w", err)
	}
	return draft, nil
}

func (uc *DraftChallanUseCase) Delete(ctx context.Context, id int64) error {
	return uc.draftRepo.SoftDelete(ctx, id)
}
