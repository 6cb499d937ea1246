package repository

import (
	"context"
	"testing"

	"inventory-tracker/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuery(t *testing.T) {
	tests := []struct {
		name      string
		directive model.Directive
		contains  string
		args      int
		expectErr bool
	}{
		{name: "Default", directive: model.Directive{}, contains: "ORDER BY i.id"},
		{name: "Search", directive: model.Directive{Kind: model.DirectiveSearch, Term: "wid"}, contains: "lower(p.name)", args: 1},
		{name: "Quantity asc", directive: model.Directive{Kind: model.DirectiveQuantityAsc}, contains: "i.quantity ASC"},
		{name: "Quantity desc", directive: model.Directive{Kind: model.DirectiveQuantityDesc}, contains: "i.quantity DESC"},
		{name: "Price asc", directive: model.Directive{Kind: model.DirectivePriceAsc}, contains: "p.price ASC"},
		{name: "Price desc", directive: model.Directive{Kind: model.DirectivePriceDesc}, contains: "p.price DESC"},
		{name: "Location", directive: model.Directive{Kind: model.DirectiveLocation, Term: "shelf"}, contains: "strpos(l.name", args: 1},
		{name: "Unknown", directive: model.Directive{Kind: "bogus"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := listQuery(tt.directive)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, query, tt.contains)
			assert.Len(t, args, tt.args)
		})
	}
}

func TestInventoryRepository_CreateInTransaction(t *testing.T) {
	pool := setupTestDB(t)
	products := NewProductRepository(pool, zerolog.Nop())
	repo := NewInventoryRepository(pool, zerolog.Nop())
	ctx := context.Background()

	locationID := seedLocation(t, pool, "shelf")

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	product := &model.Product{Name: "widget", Price: 2}
	require.NoError(t, products.Create(ctx, tx, product))

	inv := &model.Inventory{ProductID: product.ID, LocationID: locationID, Quantity: 7}
	require.NoError(t, repo.Create(ctx, tx, inv))
	require.NoError(t, tx.Commit(ctx))

	got, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *inv, *got)
}

func TestInventoryRepository_CreateUnknownLocationFails(t *testing.T) {
	pool := setupTestDB(t)
	products := NewProductRepository(pool, zerolog.Nop())
	repo := NewInventoryRepository(pool, zerolog.Nop())
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	product := &model.Product{Name: "widget", Price: 2}
	require.NoError(t, products.Create(ctx, tx, product))

	err = repo.Create(ctx, tx, &model.Inventory{ProductID: product.ID, LocationID: 9999, Quantity: 1})
	assert.Error(t, err)
}

func TestInventoryRepository_AdjustQuantity(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewInventoryRepository(pool, zerolog.Nop())
	ctx := context.Background()

	locationID := seedLocation(t, pool, "shelf")
	item := seedItem(t, pool, model.Product{Name: "widget", Price: 1}, locationID, 0)

	quantity, err := repo.AdjustQuantity(ctx, item.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, quantity)

	quantity, err = repo.AdjustQuantity(ctx, item.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, quantity)

	_, err = repo.AdjustQuantity(ctx, item.ID+100, 1)
	assert.ErrorIs(t, err, model.ErrInventoryNotFound)

	// Ids beyond the 32-bit range are plain misses, not encode failures.
	_, err = repo.AdjustQuantity(ctx, 3_000_000_000, 1)
	assert.ErrorIs(t, err, model.ErrInventoryNotFound)

	deleted, err := repo.Delete(ctx, 3_000_000_000)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestInventoryRepository_DeleteKeepsProductAndLocation(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewInventoryRepository(pool, zerolog.Nop())
	ctx := context.Background()

	locationID := seedLocation(t, pool, "shelf")
	item := seedItem(t, pool, model.Product{Name: "widget", Price: 1}, locationID, 4)

	deleted, err := repo.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Equal(t, 0, countRows(t, pool, "inventory"))
	assert.Equal(t, 1, countRows(t, pool, "products"))
	assert.Equal(t, 1, countRows(t, pool, "locations"))

	deleted, err = repo.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestInventoryRepository_List(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewInventoryRepository(pool, zerolog.Nop())
	ctx := context.Background()

	shelf := seedLocation(t, pool, "main shelf")
	dock := seedLocation(t, pool, "dock")

	widget := seedItem(t, pool, model.Product{Name: "widget", Price: 5.0}, shelf, 10)
	gadget := seedItem(t, pool, model.Product{Name: "gadget", Price: 20.0}, dock, 2)
	bolt := seedItem(t, pool, model.Product{Name: "bolt", Price: 1.0}, shelf, 7)

	ids := func(items []model.InventoryItem) []int64 {
		out := make([]int64, len(items))
		for i, item := range items {
			out[i] = item.ID
		}
		return out
	}

	tests := []struct {
		name      string
		directive model.Directive
		expected  []int64
	}{
		{name: "Default", directive: model.Directive{}, expected: []int64{widget.ID, gadget.ID, bolt.ID}},
		{name: "Search", directive: model.Directive{Kind: model.DirectiveSearch, Term: "wid"}, expected: []int64{widget.ID}},
		{name: "Search is case insensitive", directive: model.Directive{Kind: model.DirectiveSearch, Term: "GAD"}, expected: []int64{gadget.ID}},
		{name: "Search treats wildcards literally", directive: model.Directive{Kind: model.DirectiveSearch, Term: "%"}, expected: []int64{}},
		{name: "Quantity asc", directive: model.Directive{Kind: model.DirectiveQuantityAsc}, expected: []int64{gadget.ID, bolt.ID, widget.ID}},
		{name: "Quantity desc", directive: model.Directive{Kind: model.DirectiveQuantityDesc}, expected: []int64{widget.ID, bolt.ID, gadget.ID}},
		{name: "Price asc", directive: model.Directive{Kind: model.DirectivePriceAsc}, expected: []int64{bolt.ID, widget.ID, gadget.ID}},
		{name: "Price desc", directive: model.Directive{Kind: model.DirectivePriceDesc}, expected: []int64{gadget.ID, widget.ID, bolt.ID}},
		{name: "Location substring", directive: model.Directive{Kind: model.DirectiveLocation, Term: "shelf"}, expected: []int64{widget.ID, bolt.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := repo.List(ctx, tt.directive)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids(items))
		})
	}

	items, err := repo.List(ctx, model.Directive{Kind: model.DirectivePriceDesc})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "dock", items[0].Location.Name)
	assert.Equal(t, []float64{20.0, 5.0, 1.0},
		[]float64{items[0].Product.Price, items[1].Product.Price, items[2].Product.Price})
}
