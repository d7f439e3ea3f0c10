package ordering

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/grocery-manager-api/infrastructure/repository"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
	"github.com/vfg2006/grocery-manager-api/pkg/utils"
)

type OrderService interface {
	SaveOrder(ctx context.Context, req *domain.SaveOrderRequest) (int64, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

type Service struct {
	orderRepo repository.OrderRepository
}

func NewService(orderRepo repository.OrderRepository) OrderService {
	return &Service{
		orderRepo: orderRepo,
	}
}

// SaveOrder cria ou atualiza um pedido. Pedidos novos recebem um código de
// referência curto para exibição no painel.
func (s *Service) SaveOrder(ctx context.Context, req *domain.SaveOrderRequest) (int64, error) {
	if req.CustomerName == "" {
		return 0, ErrCustomerNameRequired
	}

	if len(req.OrderDetails) == 0 {
		return 0, ErrOrderDetailsRequired
	}

	for _, item := range req.OrderDetails {
		if item.ProductID <= 0 || item.Quantity <= 0 || item.TotalPrice < 0 {
			return 0, ErrInvalidOrderItem
		}
	}

	var reference string
	if req.OrderID == 0 {
		generated, err := utils.GenerateID()
		if err != nil {
			return 0, errors.Wrap(ErrGenerateReference, err.Error())
		}
		reference = generated
	}

	return s.orderRepo.SaveOrder(ctx, req, reference)
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orderRepo.ListOrders(ctx)
}

func (s *Service) ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error) {
	return s.orderRepo.ListRecentOrders(ctx, limit)
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, ErrOrderNotFound
	}

	return order, nil
}

func (s *Service) DeleteOrder(ctx context.Context, orderID int64) error {
	rowsAffected, err := s.orderRepo.DeleteOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
