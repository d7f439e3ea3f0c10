package ordering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/grocery-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func validSaveRequest() *domain.SaveOrderRequest {
	return &domain.SaveOrderRequest{
		CustomerName: "Maria",
		TotalPrice:   104.00,
		OrderDetails: []*domain.SaveOrderItemRequest{
			{ProductID: 1, Quantity: 2, TotalPrice: 64.00},
			{ProductID: 3, Quantity: 1, TotalPrice: 40.00},
		},
	}
}

func TestSaveOrder_NewOrderGetsReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepository(ctrl)
	service := NewService(mockRepo)

	req := validSaveRequest()

	var reference string
	mockRepo.EXPECT().
		SaveOrder(gomock.Any(), req, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.SaveOrderRequest, ref string) (int64, error) {
			reference = ref
			return 12, nil
		})

	orderID, err := service.SaveOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(12), orderID)
	assert.Len(t, reference, 8)
}

func TestSaveOrder_EditKeepsExistingReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepository(ctrl)
	service := NewService(mockRepo)

	req := validSaveRequest()
	req.OrderID = 12

	// Edição não gera nova referência
	mockRepo.EXPECT().
		SaveOrder(gomock.Any(), req, "").
		Return(int64(12), nil)

	orderID, err := service.SaveOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(12), orderID)
}

func TestSaveOrder_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockOrderRepository(ctrl))

	tests := []struct {
		name    string
		mutate  func(*domain.SaveOrderRequest)
		wantErr error
	}{
		{"cliente vazio", func(r *domain.SaveOrderRequest) { r.CustomerName = "" }, ErrCustomerNameRequired},
		{"sem itens", func(r *domain.SaveOrderRequest) { r.OrderDetails = nil }, ErrOrderDetailsRequired},
		{"item sem produto", func(r *domain.SaveOrderRequest) { r.OrderDetails[0].ProductID = 0 }, ErrInvalidOrderItem},
		{"item com quantidade zero", func(r *domain.SaveOrderRequest) { r.OrderDetails[1].Quantity = 0 }, ErrInvalidOrderItem},
		{"item com preço negativo", func(r *domain.SaveOrderRequest) { r.OrderDetails[0].TotalPrice = -1 }, ErrInvalidOrderItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSaveRequest()
			tt.mutate(req)

			_, err := service.SaveOrder(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("pedido existente", func(t *testing.T) {
		order := &domain.Order{ID: 3, Reference: "a1B2c3D4", CustomerName: "Maria"}
		mockRepo.EXPECT().GetOrderWithItems(gomock.Any(), int64(3)).Return(order, nil)

		got, err := service.GetOrder(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("pedido inexistente", func(t *testing.T) {
		mockRepo.EXPECT().GetOrderWithItems(gomock.Any(), int64(4)).Return(nil, nil)

		_, err := service.GetOrder(context.Background(), 4)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestDeleteOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("remove pedido existente", func(t *testing.T) {
		mockRepo.EXPECT().DeleteOrder(gomock.Any(), int64(3)).Return(int64(1), nil)
		assert.NoError(t, service.DeleteOrder(context.Background(), 3))
	})

	t.Run("pedido inexistente", func(t *testing.T) {
		mockRepo.EXPECT().DeleteOrder(gomock.Any(), int64(4)).Return(int64(0), nil)
		assert.ErrorIs(t, service.DeleteOrder(context.Background(), 4), ErrOrderNotFound)
	})
}
