package demomath

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fugaso-go/slot-core/internal/mathengine"
)

func TestEngine_Spin_ThreeMatchAlwaysPaysMultiplierThree(t *testing.T) {
	// Arrange
	e := New(Config{
		MultiplierThree:       decimal.NewFromInt(10),
		MultiplierTwo:         decimal.NewFromInt(2),
		ThreeMatchProbability: 1, // always hits
		TwoMatchProbability:   1,
	})
	e.SetRand(rand.New(rand.NewSource(1)))

	// Act
	result, err := e.Spin(mathengine.Input{"stake": decimal.NewFromInt(25)})

	// Assert
	assert.NoError(t, err)
	assert.True(t, result.Win.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, mathengine.OutcomeCollectOpen, result.Outcome)
}

func TestEngine_Spin_NoMatchPaysNothing(t *testing.T) {
	// Arrange
	e := New(Config{
		MultiplierThree:       decimal.NewFromInt(10),
		MultiplierTwo:         decimal.NewFromInt(2),
		ThreeMatchProbability: 0,
		TwoMatchProbability:   0,
	})
	e.SetRand(rand.New(rand.NewSource(1)))

	// Act
	result, err := e.Spin(mathengine.Input{"stake": decimal.NewFromInt(25)})

	// Assert
	assert.NoError(t, err)
	assert.True(t, result.Win.IsZero())
	assert.Equal(t, mathengine.OutcomeNone, result.Outcome)
}

func TestEngine_ReSpinIsUnreachable(t *testing.T) {
	// Arrange
	e := New(Config{})
	e.SetRand(rand.New(rand.NewSource(1)))

	// Act
	_, err := e.ReSpin(mathengine.Input{})

	// Assert
	assert.Error(t, err)
}
