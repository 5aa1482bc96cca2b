package command

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/warehouse/internal/inventory/domain"
	"github.com/tair/warehouse/internal/store"
)

func newRepo() domain.InventoryRepository {
	return store.NewMemoryStore().Repositories().Inventory
}

func strPtr(s string) *string { return &s }

func TestRegisterItem(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	h := NewRegisterItemHandler(repo)

	item, err := h.Handle(ctx, RegisterItemCommand{SKU: "SKU001", Name: "Wireless Mouse", Quantity: 150, Location: strPtr("IL1-A-01")})
	require.NoError(t, err)
	assert.Equal(t, 150, item.Quantity)

	stored, err := repo.FindBySKU(ctx, "SKU001")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Mouse", stored.Name)
	assert.Equal(t, "IL1-A-01", *stored.Location)
}

func TestRegisterItem_Validation(t *testing.T) {
	h := NewRegisterItemHandler(newRepo())

	tests := []struct {
		name string
		cmd  RegisterItemCommand
		want error
	}{
		{"missing sku", RegisterItemCommand{Name: "x"}, domain.ErrSKURequired},
		{"blank sku", RegisterItemCommand{SKU: "  ", Name: "x"}, domain.ErrSKURequired},
		{"missing name", RegisterItemCommand{SKU: "A"}, domain.ErrNameRequired},
		{"negative quantity", RegisterItemCommand{SKU: "A", Name: "x", Quantity: -1}, domain.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Handle(context.Background(), tt.cmd)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegisterItem_TrimsSKUAndName(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	item, err := NewRegisterItemHandler(repo).Handle(ctx, RegisterItemCommand{SKU: " SKU009 ", Name: "  Dock  ", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "SKU009", item.SKU)

	stored, err := repo.FindBySKU(ctx, "SKU009")
	require.NoError(t, err)
	assert.Equal(t, "Dock", stored.Name)
}

func TestRegisterItem_DuplicateSKU(t *testing.T) {
	ctx := context.Background()
	h := NewRegisterItemHandler(newRepo())

	_, err := h.Handle(ctx, RegisterItemCommand{SKU: "SKU001", Name: "Mouse", Quantity: 1})
	require.NoError(t, err)

	_, err = h.Handle(ctx, RegisterItemCommand{SKU: "SKU001", Name: "Other", Quantity: 9})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestUpdateItem_OverwritesQuantityAndLocation(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	_, err := NewRegisterItemHandler(repo).Handle(ctx, RegisterItemCommand{SKU: "SKU001", Name: "Mouse", Quantity: 150, Location: strPtr("IL1-A-01")})
	require.NoError(t, err)

	h := NewUpdateItemHandler(repo)
	item, err := h.Handle(ctx, UpdateItemCommand{SKU: "SKU001", Quantity: 7, Location: strPtr("IL9-Z-09")})
	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity)
	assert.Equal(t, "IL9-Z-09", *item.Location)
	assert.Equal(t, "Mouse", item.Name)

	item, err = h.Handle(ctx, UpdateItemCommand{SKU: "SKU001", Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
	assert.Nil(t, item.Location)
}

func TestUpdateItem_Errors(t *testing.T) {
	ctx := context.Background()
	h := NewUpdateItemHandler(newRepo())

	_, err := h.Handle(ctx, UpdateItemCommand{SKU: "SKU404", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = h.Handle(ctx, UpdateItemCommand{SKU: "SKU404", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	_, err := NewRegisterItemHandler(repo).Handle(ctx, RegisterItemCommand{SKU: "SKU001", Name: "Mouse"})
	require.NoError(t, err)

	h := NewRemoveItemHandler(repo)
	require.NoError(t, h.Handle(ctx, RemoveItemCommand{SKU: "SKU001"}))

	_, err = repo.FindBySKU(ctx, "SKU001")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, h.Handle(ctx, RemoveItemCommand{SKU: "SKU001"}), domain.ErrNotFound)
}

func TestDecrementStock(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	_, err := NewRegisterItemHandler(repo).Handle(ctx, RegisterItemCommand{SKU: "SKU001", Name: "Mouse", Quantity: 5})
	require.NoError(t, err)
	h := NewDecrementStockHandler(repo)

	_, err = h.Handle(ctx, DecrementStockCommand{SKU: "SKU001", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	item, err := repo.FindBySKU(ctx, "SKU001")
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity, "failed decrement must not change stock")

	qty, err := h.Handle(ctx, DecrementStockCommand{SKU: "SKU001", Amount: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, qty)

	_, err = h.Handle(ctx, DecrementStockCommand{SKU: "SKU001", Amount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = h.Handle(ctx, DecrementStockCommand{SKU: "SKU404", Amount: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecrementStock_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	_, err := NewRegisterItemHandler(repo).Handle(ctx, RegisterItemCommand{SKU: "SKU001", Name: "Mouse", Quantity: 50})
	require.NoError(t, err)
	h := NewDecrementStockHandler(repo)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.Handle(ctx, DecrementStockCommand{SKU: "SKU001", Amount: 2})
			if err == nil {
				succeeded.Add(1)
			} else if !errors.Is(err, domain.ErrInsufficientStock) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(25), succeeded.Load())
	item, err := repo.FindBySKU(ctx, "SKU001")
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
}

func TestReceiveStock(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	_, err := NewRegisterItemHandler(repo).Handle(ctx, RegisterItemCommand{SKU: "SKU001", Name: "Mouse", Quantity: 5})
	require.NoError(t, err)
	h := NewReceiveStockHandler(repo)

	qty, err := h.Handle(ctx, ReceiveStockCommand{SKU: "SKU001", Amount: 20})
	require.NoError(t, err)
	assert.Equal(t, 25, qty)

	_, err = h.Handle(ctx, ReceiveStockCommand{SKU: "SKU404", Amount: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = h.Handle(ctx, ReceiveStockCommand{SKU: "SKU001", Amount: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestSeedInventory(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	h := NewSeedInventoryHandler(repo)

	created, err := h.Handle(ctx, SeedInventoryCommand{Items: DemoInventory})
	require.NoError(t, err)
	assert.Equal(t, 5, created)

	item, err := repo.FindBySKU(ctx, "SKU004")
	require.NoError(t, err)
	assert.Equal(t, "Monitor Stand", item.Name)
	assert.Equal(t, 50, item.Quantity)
	assert.Equal(t, "IL10-D-03", *item.Location)

	created, err = h.Handle(ctx, SeedInventoryCommand{Items: DemoInventory})
	require.NoError(t, err)
	assert.Zero(t, created, "seeding a populated ledger is a no-op")
}

func TestSeedInventory_SkipsNonEmptyLedger(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	_, err := NewRegisterItemHandler(repo).Handle(ctx, RegisterItemCommand{SKU: "OWN", Name: "Own item"})
	require.NoError(t, err)

	created, err := NewSeedInventoryHandler(repo).Handle(ctx, SeedInventoryCommand{Items: DemoInventory})
	require.NoError(t, err)
	assert.Zero(t, created)

	_, err = repo.FindBySKU(ctx, "SKU001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
