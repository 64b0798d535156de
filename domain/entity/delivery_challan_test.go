package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryChallan(t *testing.T) {
	dc, err := NewDeliveryChallan("id-1", "DC-001", "Acme Corp", []string{"Slabs"}, "creator-id")
	require.NoError(t, err)

	assert.Equal(t, StatusDraft, dc.Status)
	assert.Equal(t, []string{"Slabs"}, dc.ItemNames)
	assert.NoError(t, dc.Validate())
}

func TestNewDeliveryChallan_RequiresNumber(t *testing.T) {
	_, err := NewDeliveryChallan("id-1", "", "Acme Corp", nil, "creator-id")
	assert.ErrorIs(t, err, ErrMissingDCNumber)
}

func TestNewDeliveryChallan_NilItemsBecomeEmpty(t *testing.T) {
	dc, err := NewDeliveryChallan("id-1", "DC-001", "Acme Corp", nil, "creator-id")
	require.NoError(t, err)
	assert.NotNil(t, dc.ItemNames)
	assert.Empty(t, dc.ItemNames)
}

func TestDeliveryChallan_Validate(t *testing.T) {
	dc, err := NewDeliveryChallan("id-1", "DC-001", "Acme Corp", nil, "creator-id")
	require.NoError(t, err)

	dc.TotalDispatchQty = -1
	assert.ErrorIs(t, dc.Validate(), ErrNegativeQty)

	dc.TotalDispatchQty = 10
	dc.Status = ChallanStatus("shipped")
	assert.ErrorIs(t, dc.Validate(), ErrInvalidStatus)

	dc.Status = StatusPartial
	assert.NoError(t, dc.Validate())
}

func TestChallanStatus_Valid(t *testing.T) {
	for _, s := range []ChallanStatus{StatusDraft, StatusOpen, StatusPartial, StatusClosed, StatusCancelled, StatusDeleted} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ChallanStatus("").Valid())
	assert.False(t, ChallanStatus("OPEN").Valid())
}
