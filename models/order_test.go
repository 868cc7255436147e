package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{StatusPending, StatusPaid},
		{StatusPaid, StatusConfirmed},
		{StatusConfirmed, StatusPreparing},
		{StatusPreparing, StatusReady},
		{StatusReady, StatusCompleted},
		{StatusPending, StatusCancelled},
		{StatusPaid, StatusCancelled},
		{StatusConfirmed, StatusCancelled},
		{StatusPreparing, StatusCancelled},
		{StatusReady, StatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to OrderStatus }{
		{StatusPaid, StatusPending},
		{StatusConfirmed, StatusPaid},
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCompleted},
		{StatusCompleted, StatusReady},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusPending},
		{StatusFree, StatusPaid},
		{StatusPending, StatusFree},
	}
	for _, tc := range denied {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}

	// re-applying the current status is a no-op, not an error
	for _, s := range []OrderStatus{StatusPending, StatusPaid, StatusConfirmed, StatusCompleted, StatusFree} {
		assert.True(t, s.CanTransition(s), "%s -> %s should be allowed", s, s)
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		StatusPending, StatusPaid, StatusConfirmed, StatusPreparing,
		StatusReady, StatusCompleted, StatusCancelled, StatusFree,
	} {
		assert.True(t, s.Valid())
	}
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}
