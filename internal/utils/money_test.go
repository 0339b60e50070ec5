package utils_test

import (
	"testing"

	"github.com/sellora/marketplace/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{name: "Already two decimals", amount: 19.99, expected: 19.99},
		{name: "Third decimal above half rounds up", amount: 10.006, expected: 10.01},
		{name: "Third decimal below half rounds down", amount: 10.004, expected: 10.0},
		{name: "Repeating binary fraction", amount: 0.1 + 0.2, expected: 0.3},
		{name: "Quantity times unit price", amount: 3 * 19.99, expected: 59.97},
		{name: "Zero", amount: 0, expected: 0},
		{name: "Negative adjustment", amount: -2.346, expected: -2.35},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, utils.Round2(tc.amount), 1e-9)
		})
	}
}
