package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"inventory-tracker/internal/model"
	"inventory-tracker/internal/repository"

	"github.com/rs/zerolog"
)

// maxNameLength matches the VARCHAR(50) name columns.
const maxNameLength = 50

// inventoryService implements InventoryService.
type inventoryService struct {
	productRepo   repository.ProductRepository
	locationRepo  repository.LocationRepository
	inventoryRepo repository.InventoryRepository
	logger        zerolog.Logger
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	inventoryRepo repository.InventoryRepository,
	logger zerolog.Logger,
) InventoryService {
	return &inventoryService{
		productRepo:   productRepo,
		locationRepo:  locationRepo,
		inventoryRepo: inventoryRepo,
		logger:        logger.With().Str("service", "inventory").Logger(),
	}
}

// AddProduct creates a product and its inventory row atomically. If the
// location does not exist nothing is written.
func (s *inventoryService) AddProduct(ctx context.Context, form model.ProductForm) (*model.InventoryItem, error) {
	name := strings.ToLower(strings.TrimSpace(form.Name))
	if err := s.checkName(name, "product"); err != nil {
		return nil, err
	}
	locationName := strings.TrimSpace(form.Location)

	if !Validate(form.Quantity, form.Price, s.logger) {
		return nil, model.ErrInvalidValues
	}
	values, _ := ParseValues(form.Quantity, form.Price)

	tx, err := s.inventoryRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	product := &model.Product{
		Name:        name,
		Description: form.Description,
		Price:       values.Price,
	}
	if err = s.productRepo.Create(ctx, tx, product); err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	var locationID int64
	locationID, err = s.locationRepo.FindIDByName(ctx, tx, locationName)
	if err != nil {
		if errors.Is(err, model.ErrLocationNotFound) {
			s.logger.Warn().Str("location", locationName).Msg("product location does not exist")
			return nil, err
		}
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	inventory := &model.Inventory{
		ProductID:  product.ID,
		LocationID: locationID,
		Quantity:   values.Quantity,
	}
	if err = s.inventoryRepo.Create(ctx, tx, inventory); err != nil {
		return nil, fmt.Errorf("failed to add inventory: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Int64("inventory_id", inventory.ID).
		Str("location", locationName).
		Int("quantity", inventory.Quantity).
		Msg("product added")

	return &model.InventoryItem{
		ID:       inventory.ID,
		Quantity: inventory.Quantity,
		Product:  *product,
		Location: model.Location{ID: locationID, Name: locationName},
	}, nil
}

// AddLocation is idempotent per name. Surrounding whitespace is not part of
// the name.
func (s *inventoryService) AddLocation(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if err := s.checkName(name, "location"); err != nil {
		return false, err
	}

	created, err := s.locationRepo.Create(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to add location: %w", err)
	}

	if created {
		s.logger.Info().Str("location", name).Msg("location added")
	} else {
		s.logger.Debug().Str("location", name).Msg("location already exists")
	}

	return created, nil
}

// checkName rejects names the name columns cannot hold.
func (s *inventoryService) checkName(name, kind string) error {
	if name == "" {
		s.logger.Warn().Str("kind", kind).Msg("name is empty")
		return model.ErrMissingName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		s.logger.Warn().Str("kind", kind).Int("length", utf8.RuneCountInString(name)).Msg("name is too long")
		return model.ErrNameTooLong
	}
	return nil
}

// IncrementQuantity adds one to an inventory row and returns the new quantity.
func (s *inventoryService) IncrementQuantity(ctx context.Context, id int64) (int, error) {
	return s.adjust(ctx, id, 1)
}

// DecrementQuantity subtracts one from an inventory row and returns the new
// quantity. Quantities may go negative.
func (s *inventoryService) DecrementQuantity(ctx context.Context, id int64) (int, error) {
	return s.adjust(ctx, id, -1)
}

// adjust applies delta in a single statement.
func (s *inventoryService) adjust(ctx context.Context, id int64, delta int) (int, error) {
	quantity, err := s.inventoryRepo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		if errors.Is(err, model.ErrInventoryNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to update quantity: %w", err)
	}

	s.logger.Debug().
		Int64("inventory_id", id).
		Int("delta", delta).
		Int("quantity", quantity).
		Msg("quantity adjusted")

	return quantity, nil
}

// DeleteInventory removes one inventory row. The product and location stay.
func (s *inventoryService) DeleteInventory(ctx context.Context, id int64) error {
	deleted, err := s.inventoryRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory: %w", err)
	}
	if !deleted {
		return model.ErrInventoryNotFound
	}

	s.logger.Info().Int64("inventory_id", id).Msg("inventory deleted")
	return nil
}

// DeleteProduct removes a product together with all of its inventory rows.
func (s *inventoryService) DeleteProduct(ctx context.Context, id int64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !deleted {
		return model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// List returns the inventory rows selected and ordered by the directive.
func (s *inventoryService) List(ctx context.Context, directive model.Directive) ([]model.InventoryItem, error) {
	items, err := s.inventoryRepo.List(ctx, directive)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	s.logger.Debug().
		Str("directive", string(directive.Kind)).
		Str("term", directive.Term).
		Int("count", len(items)).
		Msg("listed inventory")

	return items, nil
}

// Locations returns every location ordered by id.
func (s *inventoryService) Locations(ctx context.Context) ([]model.Location, error) {
	locations, err := s.locationRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}
