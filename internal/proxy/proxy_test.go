package proxy

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/interfaces/mocks"
	"github.com/fugaso-go/slot-core/internal/models"
)

func TestWager_ClassifiesEveryFailureCode(t *testing.T) {
	cases := []struct {
		name         string
		rc           string
		outcome      interfaces.WagerOutcome
		wantStatus   models.RoundStatus
		wantRollback bool
	}{
		{"out of money declines", interfaces.RCOutOfMoney, interfaces.WagerOutOfMoney, models.RoundStatusDecline, false},
		{"io error rolls back", interfaces.RCIOError, interfaces.WagerRollback, models.RoundStatusRollback, true},
		{"http error rolls back", interfaces.RCHTTPError, interfaces.WagerRollback, models.RoundStatusRollback, true},
		{"format error rolls back", interfaces.RCFormatError, interfaces.WagerRollback, models.RoundStatusRollback, true},
		{"anything else is remote error", "SOME_OTHER_RC", interfaces.WagerRemoteError, models.RoundStatusRemoteError, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Arrange
			account := mocks.NewMockIAccountService(ctrl)
			accErr := &interfaces.AccountError{RC: tc.rc, Message: "boom"}
			account.EXPECT().Wager(gomock.Any(), gomock.Any()).
				Return(decimal.Zero, tc.outcome, accErr, nil)
			if tc.wantRollback {
				account.EXPECT().Rollback(gomock.Any(), gomock.Any()).Return(nil)
			}

			p := New(account, nil)
			p.SetBalance(decimal.NewFromInt(100))
			round := &models.Round{}
			action := &models.Action{Amount: decimal.NewFromInt(25)}

			// Act
			balance, status, gotErr, err := p.Wager(context.Background(), round, action, nil)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, accErr, gotErr)
			assert.True(t, decimal.NewFromInt(100).Equal(balance))
		})
	}
}

func TestWager_SuccessUpdatesBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	account := mocks.NewMockIAccountService(ctrl)
	account.EXPECT().Wager(gomock.Any(), gomock.Any()).
		Return(decimal.NewFromInt(75), interfaces.WagerAccepted, nil, nil)

	p := New(account, nil)
	p.SetBalance(decimal.NewFromInt(100))

	// Act
	balance, status, accErr, err := p.Wager(context.Background(), &models.Round{}, &models.Action{}, nil)

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, accErr)
	assert.Equal(t, models.RoundStatusSuccess, status)
	assert.True(t, decimal.NewFromInt(75).Equal(balance))
	assert.True(t, decimal.NewFromInt(75).Equal(p.Balance()))
}

func TestResult_OperationNotAllowedReReadsBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	account := mocks.NewMockIAccountService(ctrl)
	account.EXPECT().Result(gomock.Any(), gomock.Any()).
		Return(decimal.Zero, &interfaces.AccountError{RC: interfaces.RCOperationNotAllowed, Message: "dup"})
	account.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(42), nil)

	p := New(account, nil)
	p.SetBalance(decimal.NewFromInt(10))

	// Act
	balance, err := p.Result(context.Background(), &models.Round{}, &models.Action{}, decimal.NewFromInt(5), nil)

	// Assert: no error surfaces; the re-read balance wins.
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(42).Equal(balance))
}

func TestResult_RetryClassErrorGoesThroughRetryService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	account := mocks.NewMockIAccountService(ctrl)
	retry := mocks.NewMockIRetryService(ctrl)
	resultErr := errors.New("wallet unavailable")
	account.EXPECT().Result(gomock.Any(), gomock.Any()).Return(decimal.Zero, resultErr)
	retry.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil)

	p := New(account, retry)
	p.SetBalance(decimal.NewFromInt(10))

	// Act
	balance, err := p.Result(context.Background(), &models.Round{}, &models.Action{}, decimal.NewFromInt(5), nil)

	// Assert: the error surfaces but a deferred retry was submitted and the
	// cached balance is untouched.
	assert.Equal(t, resultErr, err)
	assert.True(t, decimal.NewFromInt(10).Equal(balance))
}
