package product

import (
	"context"

	"github.com/vfg2006/grocery-manager-api/infrastructure/repository"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, req *domain.CreateProductRequest) (int64, error)
	UpdateProduct(ctx context.Context, req *domain.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, productID int64) error
	GetSnapshots(ctx context.Context, productIDs []int64) ([]domain.ProductSnapshot, error)
}

type Service struct {
	productRepo repository.ProductRepository
}

func NewService(productRepo repository.ProductRepository) ProductService {
	return &Service{
		productRepo: productRepo,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.ListProducts(ctx)
}

func (s *Service) CreateProduct(ctx context.Context, req *domain.CreateProductRequest) (int64, error) {
	if err := validateProductFields(req.Name, req.UomID, req.PricePerUnit, req.SellingPrice, req.Quantity); err != nil {
		return 0, err
	}

	return s.productRepo.CreateProduct(ctx, req)
}

func (s *Service) UpdateProduct(ctx context.Context, req *domain.UpdateProductRequest) error {
	if req.ProductID <= 0 {
		return ErrProductNotFound
	}

	if err := validateProductFields(req.Name, req.UomID, req.PricePerUnit, req.SellingPrice, req.Quantity); err != nil {
		return err
	}

	rowsAffected, err := s.productRepo.UpdateProduct(ctx, req)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (s *Service) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return ErrProductNotFound
	}

	rowsAffected, err := s.productRepo.DeleteProduct(ctx, productID)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// GetSnapshots retorna as cópias pontuais de estoque e preços dos produtos
// informados, entrada para a simulação de receita. Falha quando nenhum ID
// corresponde a um produto existente.
func (s *Service) GetSnapshots(ctx context.Context, productIDs []int64) ([]domain.ProductSnapshot, error) {
	if len(productIDs) == 0 {
		return nil, ErrEmptyProductIDs
	}

	for _, id := range productIDs {
		if id <= 0 {
			return nil, ErrInvalidProductID
		}
	}

	snapshots, err := s.productRepo.GetSnapshotsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	if len(snapshots) == 0 {
		return nil, ErrNoMatchingProducts
	}

	return snapshots, nil
}

func validateProductFields(name string, uomID int64, pricePerUnit, sellingPrice float64, quantity int) error {
	if name == "" {
		return ErrNameRequired
	}

	if uomID <= 0 {
		return ErrUomRequired
	}

	if pricePerUnit < 0 || sellingPrice < 0 {
		return ErrNegativePrice
	}

	if quantity < 0 {
		return ErrNegativeQuantity
	}

	return nil
}
