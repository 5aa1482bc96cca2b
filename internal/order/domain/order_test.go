package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name      string
		requested Items
		picked    Items
		want      Status
	}{
		{"nothing picked", Items{"SKU001": 10}, Items{}, StatusPending},
		{"nil picked", Items{"SKU001": 10}, nil, StatusPending},
		{"some picked", Items{"SKU001": 10}, Items{"SKU001": 4}, StatusPartial},
		{"one of two complete", Items{"A": 1, "B": 2}, Items{"A": 1}, StatusPartial},
		{"all complete", Items{"A": 1, "B": 2}, Items{"A": 1, "B": 2}, StatusCompleted},
		{"over picked", Items{"A": 1}, Items{"A": 5}, StatusCompleted},
		{"only extraneous sku picked", Items{"A": 1}, Items{"Z": 9}, StatusPending},
		{"extraneous pick ignored for completion", Items{"A": 2}, Items{"A": 1, "Z": 9}, StatusPartial},
		{"empty order is vacuously complete", Items{}, Items{}, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.requested, tt.picked))
		})
	}
}

func TestRecordPick_AccumulatesAndRecomputes(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	o := NewOrder("o-1", Items{"SKU001": 100}, now)
	assert.Equal(t, StatusPending, o.Status)

	assert.Equal(t, StatusPartial, o.RecordPick("SKU001", 60, now.Add(time.Minute)))
	assert.Equal(t, Items{"SKU001": 40}, o.Outstanding())

	assert.Equal(t, StatusCompleted, o.RecordPick("SKU001", 40, now.Add(2*time.Minute)))
	assert.Equal(t, 100, o.Picked["SKU001"])
	assert.Empty(t, o.Outstanding())
	assert.Equal(t, now.Add(2*time.Minute), o.UpdatedAt)

	// completed orders keep accepting picks and stay completed
	assert.Equal(t, StatusCompleted, o.RecordPick("SKU001", 1, now))
	assert.Equal(t, 101, o.Picked["SKU001"])
}

func TestNewOrder_CopiesRequested(t *testing.T) {
	req := Items{"A": 1}
	o := NewOrder("o-1", req, time.Now())
	req["A"] = 99

	assert.Equal(t, 1, o.Requested["A"])
	assert.NotNil(t, o.Picked)
}

func TestNewOrder_EmptyStartsPending(t *testing.T) {
	o := NewOrder("o-1", Items{}, time.Now())
	assert.Equal(t, StatusPending, o.Status)

	// any pick recomputes: nothing is outstanding
	assert.Equal(t, StatusCompleted, o.RecordPick("A", 1, time.Now()))
}

func TestOrderClone_IsDeep(t *testing.T) {
	o := NewOrder("o-1", Items{"A": 1}, time.Now())
	c := o.Clone()
	c.RecordPick("A", 1, time.Now())

	assert.Empty(t, o.Picked)
	assert.Equal(t, StatusPending, o.Status)
}

func TestUnknownSKUError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("create order: %w", &UnknownSKUError{SKU: "SKU404"})

	assert.True(t, errors.Is(err, ErrUnknownSKU))
	var target *UnknownSKUError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "SKU404", target.SKU)
	assert.Contains(t, err.Error(), "SKU404")
}

func TestStatusCounts_Total(t *testing.T) {
	c := StatusCounts{StatusPending: 2, StatusCompleted: 3}
	assert.Equal(t, int64(5), c.Total())
}
