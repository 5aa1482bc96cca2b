package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/warehouse/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// TracingOrderRepository wraps any OrderRepository with spans
type TracingOrderRepository struct {
	next domain.OrderRepository
}

var _ domain.OrderRepository = (*TracingOrderRepository)(nil)

func NewTracingOrderRepository(next domain.OrderRepository) *TracingOrderRepository {
	return &TracingOrderRepository{next: next}
}

func (r *TracingOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("order.id", order.ID),
			attribute.Int("order.sku_count", len(order.Requested)),
		),
	)
	defer span.End()

	err := r.next.Create(ctx, order)
	recordError(span, err)
	return err
}

func (r *TracingOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.String("order.id", id)),
	)
	defer span.End()

	order, err := r.next.FindByID(ctx, id)
	recordError(span, err)
	return order, err
}

func (r *TracingOrderRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByIDForUpdate",
		trace.WithAttributes(attribute.String("order.id", id)),
	)
	defer span.End()

	order, err := r.next.FindByIDForUpdate(ctx, id)
	recordError(span, err)
	return order, err
}

func (r *TracingOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	orders, err := r.next.FindAll(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(orders)))
	return orders, nil
}

func (r *TracingOrderRepository) SavePicks(ctx context.Context, order *domain.Order) error {
	ctx, span := tracer.Start(ctx, "repository.SavePicks",
		trace.WithAttributes(
			attribute.String("order.id", order.ID),
			attribute.String("order.status", string(order.Status)),
		),
	)
	defer span.End()

	err := r.next.SavePicks(ctx, order)
	recordError(span, err)
	return err
}

func (r *TracingOrderRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.String("order.id", id)),
	)
	defer span.End()

	err := r.next.Delete(ctx, id)
	recordError(span, err)
	return err
}

func (r *TracingOrderRepository) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	ctx, span := tracer.Start(ctx, "repository.CountByStatus")
	defer span.End()

	counts, err := r.next.CountByStatus(ctx)
	recordError(span, err)
	return counts, err
}

func recordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrOrderNotFound) {
		span.AddEvent("domain.rejected", trace.WithAttributes(attribute.String("reason", err.Error())))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
