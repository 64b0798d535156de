package challan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
)

type mockChallanRepository struct {
	mock.Mock
}

func (m *mockChallanRepository) FindByID(ctx context.Context, id string) (*entity.DeliveryChallan, error) {
	args := m.Called(ctx, id)
	if dc := args.Get(0); dc != nil {
		return dc.(*entity.DeliveryChallan), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChallanRepository) FindAll(ctx context.Context, offset, limit int, filters outbound.ChallanFilters) ([]*entity.DeliveryChallan, int, error) {
	args := m.Called(ctx, offset, limit, filters)
	if challans := args.Get(0); challans != nil {
		return challans.([]*entity.DeliveryChallan), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockChallanRepository) Create(ctx context.Context, dc *entity.DeliveryChallan) error {
	return m.Called(ctx, dc).Error(0)
}

func (m *mockChallanRepository) Update(ctx context.Context, dc *entity.DeliveryChallan) error {
	return m.Called(ctx, dc).Error(0)
}

func (m *mockChallanRepository) UpdateStatus(ctx context.Context, id string, status entity.ChallanStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockChallanRepository) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockChallanRepository) ExistsByNumber(ctx context.Context, dcNumber string) (bool, error) {
	args := m.Called(ctx, dcNumber)
	return args.Bool(0), args.Error(1)
}

func TestCreate_Success(t *testing.T) {
	repo := new(mockChallanRepository)
	uc := NewChallanUseCase(repo)

	repo.On("ExistsByNumber", mock.Anything, "DC-001").Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(dc *entity.DeliveryChallan) bool {
		return dc.DCNumber == "DC-001" && dc.Status == entity.StatusDraft && dc.CreatedBy == "actor-id"
	})).Return(nil)

	dc, err := uc.Create(context.Background(), "actor-id", inbound.CreateChallanRequest{
		DCNumber:         "DC-001",
		CustomerName:     "Acme Corp",
		ItemNames:        []string{"Granite slabs"},
		TotalDispatchQty: 40,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, dc.ID)
	assert.Equal(t, 40, dc.TotalDispatchQty)
	repo.AssertExpectations(t)
}

func TestCreate_DuplicateNumber(t *testing.T) {
	repo := new(mockChallanRepository)
	uc := NewChallanUseCase(repo)

	repo.On("ExistsByNumber", mock.Anything, "DC-001").Return(true, nil)

	_, err := uc.Create(context.Background(), "actor-id", inbound.CreateChallanRequest{DCNumber: "DC-001"})
	assert.ErrorIs(t, err, ErrDuplicateNumber)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_NegativeQuantity(t *testing.T) {
	repo := new(mockChallanRepository)
	uc := NewChallanUseCase(repo)

	repo.On("ExistsByNumber", mock.Anything, "DC-001").Return(false, nil)

	_, err := uc.Create(context.Background(), "actor-id", inbound.CreateChallanRequest{
		DCNumber:         "DC-001",
		TotalDispatchQty: -5,
	})
	assert.ErrorIs(t, err, entity.ErrNegativeQty)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	uc := NewChallanUseCase(new(mockChallanRepository))

	_, err := uc.List(context.Background(), inbound.ListChallansRequest{Status: "shipped"})
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)
}

func TestList_ClampsPagination(t *testing.T) {
	repo := new(mockChallanRepository)
	uc := NewChallanUseCase(repo)

	repo.On("FindAll", mock.Anything, 0, defaultPageSize, outbound.ChallanFilters{}).
		Return([]*entity.DeliveryChallan{}, 0, nil)

	result, err := uc.List(context.Background(), inbound.ListChallansRequest{Page: -3, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, defaultPageSize, result.Pagination.Limit)
	repo.AssertExpectations(t)
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	repo := new(mockChallanRepository)
	uc := NewChallanUseCase(repo)

	existing, err := entity.NewDeliveryChallan("id-1", "DC-001", "Acme Corp", []string{"Slabs"}, "actor-id")
	require.NoError(t, err)
	existing.TotalDispatchQty = 40

	repo.On("FindByID", mock.Anything, "id-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	newQty := 25
	updated, err := uc.Update(context.Background(), "id-1", inbound.UpdateChallanRequest{
		TotalReceivedQty: &newQty,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, updated.TotalReceivedQty)
	assert.Equal(t, 40, updated.TotalDispatchQty)
	assert.Equal(t, "Acme Corp", updated.CustomerName)
}

func TestUpdateStatus(t *testing.T) {
	repo := new(mockChallanRepository)
	uc := NewChallanUseCase(repo)

	existing, err := entity.NewDeliveryChallan("id-1", "DC-001", "Acme Corp", nil, "actor-id")
	require.NoError(t, err)
	existing.Status = entity.StatusClosed

	repo.On("UpdateStatus", mock.Anything, "id-1", entity.StatusClosed).Return(nil)
	repo.On("FindByID", mock.Anything, "id-1").Return(existing, nil)

	dc, err := uc.UpdateStatus(context.Background(), "id-1", entity.StatusClosed)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusClosed, dc.Status)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := new(mockChallanRepository)
	uc := NewChallanUseCase(repo)

	_, err := uc.UpdateStatus(context.Background(), "id-1", "archived")
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(mockChallanRepository)
	uc := NewChallanUseCase(repo)

	repo.On("FindByID", mock.Anything, "missing").Return(nil, outbound.ErrChallanNotFound)

	_, err := uc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrChallanNotFound)
}
