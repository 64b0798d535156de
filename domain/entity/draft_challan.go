package entity

import (
	"time"
)

// DraftChallan is a work-in-progress dispatch note keyed to a supplier.
// Drafts carry rate and presentation flags the final challan does not.
type DraftChallan struct {
	ID               int64         `json:"id"`
	DraftID          int64         `json:"draftId"`
	SupplierID       int64         `json:"supplierId"`
	VehicleNo        string        `json:"vehicleNo"`
	Process          string        `json:"process"`
	TotalDispatchQty int           `json:"totalDispatchedQuantity"`
	TotalRate        int           `json:"totalRate"`
	Status           ChallanStatus `json:"status"`
	ShowWeight       bool          `json:"showWeight"`
	ShowSquareFeet   bool          `json:"showSquareFeet"`
	Notes            string        `json:"notes"`
	CreatedBy        string        `json:"createdBy"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
	DeletedAt        *time.Time    `json:"deletedAt,omitempty"`
}

func (d *DraftChallan) Validate() error {
	if d.TotalDispatchQty < 0 {
		return ErrNegativeQty
	}
	if !d.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
