package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(33.3333))
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(66.6666))
	assert.Equal(t, -12.34, RoundWithTwoDecimalPlace(-12.341))
	assert.Equal(t, 100.0, RoundWithTwoDecimalPlace(99.999))
}
