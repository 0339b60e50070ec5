package models_test

import (
	"testing"

	"github.com/sellora/marketplace/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {

	allowed := []struct {
		from models.OrderStatus
		to   models.OrderStatus
	}{
		{models.OrderStatusCreated, models.OrderStatusPaid},
		{models.OrderStatusCreated, models.OrderStatusFailed},
		{models.OrderStatusCreated, models.OrderStatusCancelled},
		{models.OrderStatusPaid, models.OrderStatusProcessing},
		{models.OrderStatusPaid, models.OrderStatusCancelled},
		{models.OrderStatusProcessing, models.OrderStatusShipped},
		{models.OrderStatusProcessing, models.OrderStatusCancelled},
		{models.OrderStatusShipped, models.OrderStatusDelivered},
		{models.OrderStatusDelivered, models.OrderStatusReturned},
	}

	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct {
		from models.OrderStatus
		to   models.OrderStatus
	}{
		{models.OrderStatusCreated, models.OrderStatusShipped},
		{models.OrderStatusPaid, models.OrderStatusDelivered},
		{models.OrderStatusShipped, models.OrderStatusCancelled},
		{models.OrderStatusDelivered, models.OrderStatusShipped},
		{models.OrderStatusCancelled, models.OrderStatusPaid},
		{models.OrderStatusFailed, models.OrderStatusPaid},
		{models.OrderStatusReturned, models.OrderStatusDelivered},
	}

	for _, tc := range denied {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestOrderStatusIsPreShipment(t *testing.T) {
	assert.True(t, models.OrderStatusCreated.IsPreShipment())
	assert.True(t, models.OrderStatusPaid.IsPreShipment())
	assert.True(t, models.OrderStatusProcessing.IsPreShipment())
	assert.False(t, models.OrderStatusShipped.IsPreShipment())
	assert.False(t, models.OrderStatusDelivered.IsPreShipment())
	assert.False(t, models.OrderStatusCancelled.IsPreShipment())
}

func TestVariantKey(t *testing.T) {
	assert.Equal(t, "", models.VariantKey(nil))
	assert.Equal(t, "color=red;size=m", models.VariantKey(map[string]string{"Size": "M", "Color": "Red"}))
	assert.Equal(t, "color=red;size=m", models.VariantKey(map[string]string{"color": " red ", "size": "m"}))
}
