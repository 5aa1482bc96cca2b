package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/warehouse/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// TracingInventoryRepository wraps any InventoryRepository with spans
type TracingInventoryRepository struct {
	next domain.InventoryRepository
}

var _ domain.InventoryRepository = (*TracingInventoryRepository)(nil)

// NewTracingInventoryRepository creates a new repository with tracing
func NewTracingInventoryRepository(next domain.InventoryRepository) *TracingInventoryRepository {
	return &TracingInventoryRepository{next: next}
}

func (r *TracingInventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("inventory.sku", item.SKU),
			attribute.Int("inventory.quantity", item.Quantity),
		),
	)
	defer span.End()

	err := r.next.Create(ctx, item)
	recordError(span, err)
	return err
}

func (r *TracingInventoryRepository) FindBySKU(ctx context.Context, sku string) (*domain.InventoryItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindBySKU",
		trace.WithAttributes(attribute.String("inventory.sku", sku)),
	)
	defer span.End()

	item, err := r.next.FindBySKU(ctx, sku)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("inventory.quantity", item.Quantity))
	return item, nil
}

func (r *TracingInventoryRepository) FindAll(ctx context.Context) ([]domain.InventoryItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	items, err := r.next.FindAll(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

func (r *TracingInventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("inventory.sku", item.SKU),
			attribute.Int("inventory.quantity", item.Quantity),
		),
	)
	defer span.End()

	err := r.next.Update(ctx, item)
	recordError(span, err)
	return err
}

func (r *TracingInventoryRepository) Delete(ctx context.Context, sku string) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.String("inventory.sku", sku)),
	)
	defer span.End()

	err := r.next.Delete(ctx, sku)
	recordError(span, err)
	return err
}

func (r *TracingInventoryRepository) Decrement(ctx context.Context, sku string, amount int) (int, error) {
	ctx, span := tracer.Start(ctx, "repository.Decrement",
		trace.WithAttributes(
			attribute.String("inventory.sku", sku),
			attribute.Int("quantity.delta", -amount),
		),
	)
	defer span.End()

	qty, err := r.next.Decrement(ctx, sku, amount)
	if err != nil {
		recordError(span, err)
		return 0, err
	}

	span.SetAttributes(attribute.Int("quantity.new_value", qty))
	return qty, nil
}

func (r *TracingInventoryRepository) Increment(ctx context.Context, sku string, amount int) (int, error) {
	ctx, span := tracer.Start(ctx, "repository.Increment",
		trace.WithAttributes(
			attribute.String("inventory.sku", sku),
			attribute.Int("quantity.delta", amount),
		),
	)
	defer span.End()

	qty, err := r.next.Increment(ctx, sku, amount)
	if err != nil {
		recordError(span, err)
		return 0, err
	}

	span.SetAttributes(attribute.Int("quantity.new_value", qty))
	return qty, nil
}

func (r *TracingInventoryRepository) Totals(ctx context.Context) (domain.Totals, error) {
	ctx, span := tracer.Start(ctx, "repository.Totals")
	defer span.End()

	totals, err := r.next.Totals(ctx)
	recordError(span, err)
	return totals, err
}

// recordError marks the span failed. Domain outcomes such as a missing SKU are
// recorded as events only, so they do not show up as infrastructure errors.
func recordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrDuplicateSKU) ||
		errors.Is(err, domain.ErrInsufficientStock) {
		span.AddEvent("domain.rejected", trace.WithAttributes(attribute.String("reason", err.Error())))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
