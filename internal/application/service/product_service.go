package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/pkg/apperror"
	"github.com/kipsang/dukapos-api/pkg/pagination"
	"github.com/kipsang/dukapos-api/pkg/utils"
)

// ProductService handles the product catalog. Quantity is owned by the stock
// ledger: it is set here only at creation, every later change goes through a
// stock movement.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	txRunner     repository.TxRunner
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	txRunner repository.TxRunner,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		txRunner:     txRunner,
	}
}

// CreateProductInput represents the create product input. Prices are in cents.
type CreateProductInput struct {
	Name            string
	SKU             string
	Description     *string
	CategoryID      *uuid.UUID
	SupplierID      *uuid.UUID
	InitialQuantity int
	ReorderPoint    int
	CostPrice       int64
	UnitPrice       int64
	CreatedByID     *uuid.UUID
}

// CreateProduct creates a new product. A non-zero initial quantity is written
// to the ledger as a purchase movement so stock on hand stays explainable
// from the movement history alone.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.InitialQuantity < 0 {
		return nil, apperror.NewBadRequestError("Initial quantity cannot be negative")
	}
	if input.CostPrice < 0 || input.UnitPrice < 0 {
		return nil, apperror.NewBadRequestError("Prices cannot be negative")
	}

	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateSKU()
	}

	existing, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("SKU already exists")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}
	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	product := &entity.Product{
		Name:         input.Name,
		SKU:          sku,
		Description:  input.Description,
		CategoryID:   input.CategoryID,
		SupplierID:   input.SupplierID,
		Quantity:     input.InitialQuantity,
		ReorderPoint: input.ReorderPoint,
		CostPrice:    input.CostPrice,
		UnitPrice:    input.UnitPrice,
		IsActive:     true,
	}

	err = s.txRunner.RunInTx(ctx, func(repos repository.TxRepos) error {
		if err := repos.Products.Create(ctx, product); err != nil {
			return err
		}
		if input.InitialQuantity > 0 {
			note := "Initial stock"
			movement := &entity.StockMovement{
				ProductID:   product.ID,
				Type:        enum.MovementTypeIn,
				Quantity:    input.InitialQuantity,
				Reason:      enum.MovementReasonPurchase,
				Notes:       &note,
				CreatedByID: input.CreatedByID,
			}
			return repos.Movements.Create(ctx, movement)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductBySKU retrieves a product by SKU, for barcode scans at the till
func (s *ProductService) GetProductBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	product, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input. Quantity is absent
// on purpose; use a stock movement instead.
type UpdateProductInput struct {
	Name         *string
	SKU          *string
	Description  *string
	CategoryID   *uuid.UUID
	SupplierID   *uuid.UUID
	ReorderPoint *int
	CostPrice    *int64
	UnitPrice    *int64
	IsActive     *bool
}

// UpdateProduct updates a product's catalog fields
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.SKU != nil && *input.SKU != product.SKU {
		existing, err := s.productRepo.GetBySKU(ctx, *input.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, apperror.NewConflictError("SKU already exists")
		}
		product.SKU = *input.SKU
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = input.CategoryID
	}
	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
		product.SupplierID = input.SupplierID
	}
	if input.ReorderPoint != nil {
		if *input.ReorderPoint < 0 {
			return nil, apperror.NewBadRequestError("Reorder point cannot be negative")
		}
		product.ReorderPoint = *input.ReorderPoint
	}
	if input.CostPrice != nil {
		if *input.CostPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		product.CostPrice = *input.CostPrice
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		product.UnitPrice = *input.UnitPrice
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// DeleteProduct soft deletes a product. Its sale items and movements keep
// referencing it for history.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.Delete(ctx, id)
}

// GetLowStockProducts returns active products at or below their reorder point
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}
