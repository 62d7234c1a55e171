package commands_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/production"
	"manufacturing/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var (
	orderDate = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	dueDate   = orderDate.AddDate(0, 1, 0)
	startDate = time.Date(2025, 3, 3, 6, 0, 0, 0, time.UTC)
	endDate   = startDate.Add(10 * time.Hour)
)

func newTestOrder(t *testing.T, quantity int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), orderDate, dueDate, quantity)
	require.NoError(t, err)
	return o
}

func newTestProduction(t *testing.T) *production.Production {
	t.Helper()
	p, err := production.NewProduction(kernel.NewUUID(), startDate)
	require.NoError(t, err)
	return p
}

func runningProduction(t *testing.T) *production.Production {
	t.Helper()
	p := newTestProduction(t)
	require.NoError(t, p.Start())
	return p
}

func link(t *testing.T, o *order.Order, p *production.Production, quantity int) {
	t.Helper()
	_, err := services.NewAllocator().Allocate(o, p, kernel.NewUUID(), quantity)
	require.NoError(t, err)
}
