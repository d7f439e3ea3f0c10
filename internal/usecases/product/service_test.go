package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/grocery-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func validCreateRequest() *domain.CreateProductRequest {
	return &domain.CreateProductRequest{
		Name:         "Rice",
		UomID:        2,
		Category:     "Grains",
		PricePerUnit: 58.50,
		SellingPrice: 72.00,
		Quantity:     120,
	}
}

func TestCreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("cria produto válido", func(t *testing.T) {
		req := validCreateRequest()
		mockRepo.EXPECT().CreateProduct(gomock.Any(), req).Return(int64(10), nil)

		id, err := service.CreateProduct(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(10), id)
	})

	t.Run("valida campos obrigatórios", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*domain.CreateProductRequest)
			wantErr error
		}{
			{"nome vazio", func(r *domain.CreateProductRequest) { r.Name = "" }, ErrNameRequired},
			{"unidade ausente", func(r *domain.CreateProductRequest) { r.UomID = 0 }, ErrUomRequired},
			{"preço de custo negativo", func(r *domain.CreateProductRequest) { r.PricePerUnit = -1 }, ErrNegativePrice},
			{"preço de venda negativo", func(r *domain.CreateProductRequest) { r.SellingPrice = -1 }, ErrNegativePrice},
			{"quantidade negativa", func(r *domain.CreateProductRequest) { r.Quantity = -1 }, ErrNegativeQuantity},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validCreateRequest()
				tt.mutate(req)

				_, err := service.CreateProduct(context.Background(), req)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}

func TestUpdateProduct_NotFoundWhenNoRowsAffected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockRepo)

	req := &domain.UpdateProductRequest{
		ProductID:    99,
		Name:         "Rice",
		UomID:        2,
		PricePerUnit: 58.50,
		SellingPrice: 72.00,
		Quantity:     120,
	}

	mockRepo.EXPECT().UpdateProduct(gomock.Any(), req).Return(int64(0), nil)

	err := service.UpdateProduct(context.Background(), req)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("remove produto existente", func(t *testing.T) {
		mockRepo.EXPECT().DeleteProduct(gomock.Any(), int64(7)).Return(int64(1), nil)
		assert.NoError(t, service.DeleteProduct(context.Background(), 7))
	})

	t.Run("identificador inexistente", func(t *testing.T) {
		mockRepo.EXPECT().DeleteProduct(gomock.Any(), int64(8)).Return(int64(0), nil)
		assert.ErrorIs(t, service.DeleteProduct(context.Background(), 8), ErrProductNotFound)
	})

	t.Run("identificador inválido não toca o repositório", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteProduct(context.Background(), 0), ErrProductNotFound)
	})
}

func TestGetSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("lista vazia", func(t *testing.T) {
		_, err := service.GetSnapshots(context.Background(), nil)
		assert.ErrorIs(t, err, ErrEmptyProductIDs)
	})

	t.Run("identificadores não positivos", func(t *testing.T) {
		for _, ids := range [][]int64{{0}, {-1}, {1, 0, 2}} {
			_, err := service.GetSnapshots(context.Background(), ids)
			assert.ErrorIs(t, err, ErrInvalidProductID)
		}
	})

	t.Run("nenhum produto corresponde", func(t *testing.T) {
		mockRepo.EXPECT().GetSnapshotsByIDs(gomock.Any(), []int64{55}).Return(nil, nil)

		_, err := service.GetSnapshots(context.Background(), []int64{55})
		assert.ErrorIs(t, err, ErrNoMatchingProducts)
	})

	t.Run("retorna os snapshots encontrados", func(t *testing.T) {
		snapshots := []domain.ProductSnapshot{
			{Name: "Rice", InitialStock: 120, BuyPrice: 58.50, SellPrice: 72.00},
		}
		mockRepo.EXPECT().GetSnapshotsByIDs(gomock.Any(), []int64{1}).Return(snapshots, nil)

		got, err := service.GetSnapshots(context.Background(), []int64{1})
		require.NoError(t, err)
		assert.Equal(t, snapshots, got)
	})
}
