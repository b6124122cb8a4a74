package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotFSM_SpinCloseCollectCycle(t *testing.T) {
	// Arrange
	f := Default("thunderexpress")

	// Act
	afterBet, err1 := f.ClientAct(Bet)
	afterSpin, err2 := f.ClientAct(Spin)
	afterClose, err3 := f.ServerAct(CollectStart)
	afterCollect, err4 := f.ClientAct(Collect)

	// Assert
	assert.NoError(t, err1)
	assert.Equal(t, Spin, afterBet)
	assert.NoError(t, err2)
	assert.Equal(t, Close, afterSpin)
	assert.NoError(t, err3)
	assert.Equal(t, Collect, afterClose)
	assert.NoError(t, err4)
	assert.Equal(t, Bet, afterCollect)
}

func TestSlotFSM_IllegalTransitionIsRejected(t *testing.T) {
	// Arrange
	f := Default("thunderexpress")

	// Act
	_, err := f.ClientAct(Collect)

	// Assert
	var illegal *IllegalStateError
	assert.ErrorAs(t, err, &illegal)
	assert.Equal(t, Bet, f.Current())
}

func TestSlotFSM_UnknownClientActionIsRejected(t *testing.T) {
	// Arrange
	f := Default("thunderexpress")

	// Act
	_, err := f.ClientAct(CollectStart)

	// Assert
	var illegal *IllegalStateError
	assert.ErrorAs(t, err, &illegal)
}

func TestSlotFSM_ResetBypassesTable(t *testing.T) {
	// Arrange
	f := Default("thunderexpress")
	_, _ = f.ClientAct(Bet)

	// Act
	f.Reset(Spin)

	// Assert
	assert.Equal(t, Spin, f.Current())
}

func TestSlotFSM_FreeSpinCycle(t *testing.T) {
	// Arrange
	f := Default("thunderexpress")
	_, _ = f.ClientAct(Bet)
	f.Reset(Bet)

	// Act
	afterFreespinStart, err1 := f.ServerAct(FreespinStart)
	afterFreeSpin, err2 := f.ClientAct(FreeSpin)

	// Assert
	assert.NoError(t, err1)
	assert.Equal(t, FreeSpin, afterFreespinStart)
	assert.NoError(t, err2)
	assert.Equal(t, Close, afterFreeSpin)
}
