package entity

import (
	"errors"
	"time"
)

// ChallanStatus tracks a delivery challan through its lifecycle.
type ChallanStatus string

const (
	StatusDraft     ChallanStatus = "draft"
	StatusOpen      ChallanStatus = "open"
	StatusPartial   ChallanStatus = "partial"
	StatusClosed    ChallanStatus = "closed"
	StatusCancelled ChallanStatus = "cancelled"
	StatusDeleted   ChallanStatus = "deleted"
)

func (s ChallanStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusOpen, StatusPartial, StatusClosed, StatusCancelled, StatusDeleted:
		return true
	}
	return false
}

var (
	ErrInvalidStatus   = errors.New("invalid challan status")
	ErrNegativeQty     = errors.New("quantity must not be negative")
	ErrMissingDCNumber = errors.New("dc number is required")
)

// DeliveryChallan is a dispatch note accompanying goods shipped to a
// customer or supplier.
type DeliveryChallan struct {
	ID               string        `json:"id"`
	DCNumber         string        `json:"dcNumber"`
	CustomerName     string        `json:"customerName"`
	ItemNames        []string      `json:"itemNames"`
	TotalDispatchQty int           `json:"totalDispatchQty"`
	TotalReceivedQty int           `json:"totalReceivedQty"`
	Status           ChallanStatus `json:"status"`
	CreatedBy        string        `json:"createdBy"`
	Creator          *UserRef      `json:"creator,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
	DeletedAt        *time.Time    `json:"deletedAt,omitempty"`
}

// UserRef is the public slice of a user attached to owned records.
type UserRef struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

func NewDeliveryChallan(id, dcNumber, customerName string, itemNames []string, createdBy string) (*DeliveryChallan, error) {
	if dcNumber == "" {
		return nil, ErrMissingDCNumber
	}
	if itemNames == nil {
		itemNames = []string{}
	}
	now := time.Now()
	return &DeliveryChallan{
		ID:           id,
		DCNumber:     dcNumber,
		CustomerName: customerName,
		ItemNames:    itemNames,
		Status:       StatusDraft,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Validate enforces the quantity and status invariants.
func (dc *DeliveryChallan) Validate() error {
	if dc.TotalDispatchQty < 0 || dc.TotalReceivedQty < 0 {
		return ErrNegativeQty
	}
	if !dc.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
