package dispatcher

import (
	"context"
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fugaso-go/slot-core/internal/admin"
	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/interfaces/mocks"
	"github.com/fugaso-go/slot-core/internal/mathengine/demomath"
	"github.com/fugaso-go/slot-core/internal/proxy"
)

type testDeps struct {
	rounds  *mocks.MockIRoundRepository
	account *mocks.MockIAccountService
	disp    *Dispatcher
}

// newTestDispatcher wires a Dispatcher over an initialized Admin (demomath
// with zero win probability, so every spin closes immediately) and a Proxy
// over the mocked account service.
func newTestDispatcher(t *testing.T, ctrl *gomock.Controller) *testDeps {
	return newTestDispatcherWithEngine(t, ctrl, demomath.Config{})
}

func newTestDispatcherWithEngine(t *testing.T, ctrl *gomock.Controller, cfg demomath.Config) *testDeps {
	t.Helper()

	rounds := mocks.NewMockIRoundRepository(ctrl)
	percents := mocks.NewMockIPercentRepository(ctrl)
	promos := mocks.NewMockIPromoRepository(ctrl)
	account := mocks.NewMockIAccountService(ctrl)

	percents.EXPECT().GetByUserAndGame(gomock.Any(), uint(1), "thunderexpress").Return(nil, nil)
	promos.EXPECT().GetActive(gomock.Any(), uint(1)).Return(nil, nil)
	rounds.EXPECT().GetOpenRound(gomock.Any(), uint(1)).Return(nil, nil, nil)

	engine := demomath.New(cfg)
	engine.SetRand(rand.New(rand.NewSource(1)))

	ad := admin.New(engine, admin.Deps{RoundRepo: rounds, PercentRepo: percents, PromoRepo: promos, HistoryLimit: 10})
	assert.NoError(t, ad.Init(context.Background(), 1, "thunderexpress", "EUR"))

	px := proxy.New(account, nil)
	px.SetBalance(decimal.NewFromInt(3000))
	return &testDeps{rounds: rounds, account: account, disp: New(ad, px)}
}

func spinBody() []byte {
	return []byte(`{"type":"BET_SPIN","bet":25,"line":1,"denom":1,"betCounter":1}`)
}

func TestHandle_WrongRequestIDIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	d := newTestDispatcher(t, ctrl)
	d.disp.BeginSession()

	// Act: a random UUID never matches the minted nonce.
	resp := d.disp.Handle(context.Background(), uuid.NewString(), spinBody())

	// Assert
	assert.Equal(t, RespError, resp.Type)
	assert.Equal(t, "Wrong request id!", resp.Error)
	assert.False(t, resp.Cache)
	assert.Empty(t, resp.ID)
}

func TestHandle_NonceProgression(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	d := newTestDispatcher(t, ctrl)
	first := d.disp.BeginSession()

	d.rounds.EXPECT().StoreSpin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil).Times(2)
	d.account.EXPECT().Wager(gomock.Any(), gomock.Any()).
		Return(decimal.NewFromInt(2975), interfaces.WagerAccepted, nil, nil).Times(2)
	d.rounds.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// Act: spin with the minted nonce.
	resp := d.disp.Handle(context.Background(), first, spinBody())

	// Assert: success, cacheable, and a fresh nonce.
	assert.Equal(t, RespSpinData, resp.Type)
	assert.True(t, resp.Cache)
	assert.NotEmpty(t, resp.ID)
	assert.NotEqual(t, first, resp.ID)

	// The old nonce must now be dead, the new one live.
	replayed := d.disp.Handle(context.Background(), first, spinBody())
	assert.Equal(t, RespError, replayed.Type)

	next := d.disp.Handle(context.Background(), resp.ID, spinBody())
	assert.Equal(t, RespSpinData, next.Type)
}

func TestHandle_WinningSpinThenCollectCreditsTheWin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange: every spin pays stake x 10 and lands in COLLECT.
	d := newTestDispatcherWithEngine(t, ctrl, demomath.Config{
		MultiplierThree:       decimal.NewFromInt(10),
		ThreeMatchProbability: 1,
	})
	first := d.disp.BeginSession()

	d.rounds.EXPECT().StoreSpin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil)
	d.account.EXPECT().Wager(gomock.Any(), gomock.Any()).
		Return(decimal.NewFromInt(2975), interfaces.WagerAccepted, nil, nil)
	d.rounds.EXPECT().StoreCollect(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil)
	d.account.EXPECT().Result(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req interfaces.ResultRequest) (decimal.Decimal, error) {
			assert.True(t, decimal.NewFromInt(250).Equal(req.Amount))
			return decimal.NewFromInt(3225), nil
		})
	d.rounds.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// Act: spin, then collect with the fresh nonce.
	spun := d.disp.Handle(context.Background(), first, spinBody())
	assert.Equal(t, RespSpinData, spun.Type)
	assert.Equal(t, "COLLECT", string(spun.SpinData.NextAct))
	assert.True(t, decimal.NewFromInt(250).Equal(spun.SpinData.Win))

	collected := d.disp.Handle(context.Background(), spun.ID, []byte(`{"type":"COLLECT"}`))

	// Assert: the accumulated win was credited and the balance reflects
	// debit then credit (3000 - 25 + 250).
	assert.Equal(t, RespSpinData, collected.Type)
	assert.True(t, decimal.NewFromInt(250).Equal(collected.SpinData.Win))
	assert.True(t, decimal.NewFromInt(3225).Equal(collected.SpinData.Balance))
}

func TestHandle_LoginOutsideRegistrationIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	d := newTestDispatcher(t, ctrl)
	d.disp.BeginSession()

	// Act
	resp := d.disp.Handle(context.Background(), "", []byte(`{"type":"LOGIN"}`))

	// Assert
	assert.Equal(t, RespError, resp.Type)
	assert.Equal(t, "NOT_LOGGED_ON", resp.Error)
}

func TestHandle_MalformedBodyIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	d := newTestDispatcher(t, ctrl)
	d.disp.BeginSession()

	// Act
	resp := d.disp.Handle(context.Background(), "", []byte(`{not json`))

	// Assert
	assert.Equal(t, RespError, resp.Type)
	assert.Equal(t, "error request format!", resp.Error)
}

func TestHandle_HistoryClampsToConfiguredLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	d := newTestDispatcher(t, ctrl)
	d.disp.BeginSession()

	// The clamp is strictly greater-than: a request above the configured
	// limit of 10 is reduced to 10 before reaching the repository.
	d.rounds.EXPECT().GetHistory(gomock.Any(), uint(1), 10).Return(nil, nil, nil)

	// Act
	resp := d.disp.Handle(context.Background(), "", []byte(`{"type":"HISTORY","limit":50}`))

	// Assert
	assert.Equal(t, RespHistory, resp.Type)
	assert.False(t, resp.Cache)
}
