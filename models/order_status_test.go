package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct {
		from OrderStatus
		to   OrderStatus
	}{
		{StatusPending, StatusConfirmed},
		{StatusConfirmed, StatusPreparing},
		{StatusPreparing, StatusDelivering},
		{StatusDelivering, StatusDelivered},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCancelled},
		{StatusPreparing, StatusCancelled},
		{StatusDelivering, StatusCancelled},
	}
	for _, tc := range allowed {
		assert.Truef(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	rejected := []struct {
		from OrderStatus
		to   OrderStatus
	}{
		{StatusPending, StatusPreparing},
		{StatusPending, StatusDelivered},
		{StatusConfirmed, StatusDelivering},
		{StatusDelivered, StatusCancelled},
		{StatusDelivered, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusCancelled},
		{StatusDelivering, StatusPreparing},
	}
	for _, tc := range rejected {
		assert.Falsef(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusDelivering.IsTerminal())
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("preparing")
	assert.NoError(t, err)
	assert.Equal(t, StatusPreparing, status)

	_, err = ParseOrderStatus("shipped")
	assert.Error(t, err)

	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}
