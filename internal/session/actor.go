// Package session implements the per-session actor and the session
// registry: the single-writer goroutine that owns one Admin+Proxy pair,
// and the process-wide registry that routes tokens to actors. Every call
// onto an actor opens a one-shot reply channel onto its single consumer
// loop, so no session state is ever touched from two goroutines.
package session

import (
	"context"
	"sync/atomic"
	"time"

	log "github.com/public-forge/go-logger"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/dispatcher"
	"github.com/fugaso-go/slot-core/internal/models"
	"github.com/fugaso-go/slot-core/internal/proxy"
)

// requestEvent asks the actor to run Dispatcher.Handle and reply once on
// reply.
type requestEvent struct {
	ctx       context.Context
	requestID string
	raw       []byte
	reply     chan dispatcher.Response
}

// balanceEvent pushes a wallet-pushed balance directly into Proxy, bypassing
// a round trip to the account service.
type balanceEvent struct {
	amount decimal.Decimal
}

// tournamentWinEvent enqueues a fan-out-delivered award onto the
// Dispatcher's pending list, consumed on the next eligible spin close.
type tournamentWinEvent struct {
	gain *models.TournamentGain
}

// joinEvent asks the actor to emit the Join packet, run inside the actor
// loop so the dispatcher's nonce state is never touched from two
// goroutines.
type joinEvent struct {
	balance decimal.Decimal
	reply   chan joinReply
}

type joinReply struct {
	resp dispatcher.Response
	err  error
}

// stopEvent asks the actor to collect (if the FSM allows it), close, and
// terminate. ack, if non-nil, is closed once the actor has fully stopped.
type stopEvent struct {
	gameSessionID string
	ack           chan struct{}
}

// atomicTime stores a time.Time for lock-free reads from the registry's
// idle sweeper while the actor's own goroutine writes it.
type atomicTime struct {
	v atomic.Value
}

func (t *atomicTime) Store(at time.Time) { t.v.Store(at) }
func (t *atomicTime) Load() time.Time {
	v := t.v.Load()
	if v == nil {
		return time.Time{}
	}
	return v.(time.Time)
}

// Actor is the single consumer of one session's FIFO. Requests for this
// session execute strictly in receive order; the actor never blocks on
// another session.
type Actor struct {
	userID uint
	disp   *dispatcher.Dispatcher
	px     *proxy.Proxy

	events chan interface{}
	done   chan struct{}

	lastAccess atomicTime
}

// New constructs an Actor for userID bound to disp/px and starts its
// consumer loop. Callers reach the actor only through its exported methods,
// never by touching disp/px directly, preserving the single-writer
// invariant.
func New(userID uint, disp *dispatcher.Dispatcher, px *proxy.Proxy) *Actor {
	a := &Actor{
		userID: userID,
		disp:   disp,
		px:     px,
		events: make(chan interface{}, 256),
		done:   make(chan struct{}),
	}
	a.lastAccess.Store(time.Now())
	go a.run()
	return a
}

// run is the actor's single-consumer loop. It never suspends on another
// session: every event it processes (Proxy/DB/HTTP calls inside Dispatcher)
// only backpressures this actor's own channel.
func (a *Actor) run() {
	defer close(a.done)
	for ev := range a.events {
		switch e := ev.(type) {
		case requestEvent:
			resp := a.disp.Handle(e.ctx, e.requestID, e.raw)
			a.lastAccess.Store(time.Now())
			e.reply <- resp
		case balanceEvent:
			a.px.SetBalance(e.amount)
		case tournamentWinEvent:
			a.disp.EnqueueTournamentWin(e.gain)
		case joinEvent:
			resp, err := a.disp.Join(e.balance)
			a.lastAccess.Store(time.Now())
			e.reply <- joinReply{resp: resp, err: err}
		case stopEvent:
			a.handleStop(e)
			return
		}
	}
}

func (a *Actor) handleStop(e stopEvent) {
	ctx := context.Background()
	if err := a.disp.Stop(ctx); err != nil {
		log.FromDefaultContext().Error(err)
	}
	if err := a.px.Close(ctx); err != nil {
		log.FromDefaultContext().Error(err)
	}
	if e.ack != nil {
		close(e.ack)
	}
}

// Submit enqueues a player request and blocks until the actor has processed
// it in FIFO order, returning the reply the Session Dispatcher produced.
func (a *Actor) Submit(ctx context.Context, requestID string, raw []byte) dispatcher.Response {
	reply := make(chan dispatcher.Response, 1)
	select {
	case a.events <- requestEvent{ctx: ctx, requestID: requestID, raw: raw, reply: reply}:
	case <-a.done:
		return dispatcher.Response{}
	}
	select {
	case resp := <-reply:
		return resp
	case <-a.done:
		return dispatcher.Response{}
	}
}

// Join emits the session's Join packet (GameData plus the first request-id
// nonce) through the actor loop.
func (a *Actor) Join(balance decimal.Decimal) (dispatcher.Response, error) {
	reply := make(chan joinReply, 1)
	select {
	case a.events <- joinEvent{balance: balance, reply: reply}:
	case <-a.done:
		return dispatcher.Response{}, context.Canceled
	}
	select {
	case r := <-reply:
		return r.resp, r.err
	case <-a.done:
		return dispatcher.Response{}, context.Canceled
	}
}

// PushBalance applies a wallet-pushed balance without a round trip to the
// account service.
func (a *Actor) PushBalance(amount decimal.Decimal) {
	select {
	case a.events <- balanceEvent{amount: amount}:
	case <-a.done:
	}
}

// EnqueueTournamentWin delivers a fan-out award into this session's
// pending list, consumed on the next eligible spin close.
func (a *Actor) EnqueueTournamentWin(gain *models.TournamentGain) {
	select {
	case a.events <- tournamentWinEvent{gain: gain}:
	case <-a.done:
	}
}

// Stop requests the actor collect-and-close and waits for its
// acknowledgement; on timeout the caller treats the ack as false.
// gameSessionID is currently informational; Admin.CloseRound derives its
// own state from the FSM.
func (a *Actor) Stop(gameSessionID string) bool {
	ack := make(chan struct{})
	select {
	case a.events <- stopEvent{gameSessionID: gameSessionID, ack: ack}:
	case <-a.done:
		return false
	}
	select {
	case <-ack:
		return true
	case <-time.After(5 * time.Second):
		return false
	case <-a.done:
		return true
	}
}

// LastAccess returns the instant of the last successfully processed
// request or ping bump, used by the idle sweeper and by Online counting.
func (a *Actor) LastAccess() time.Time {
	return a.lastAccess.Load()
}

// Ping bumps LastAccess without submitting a request, used by the
// registry's ping path.
func (a *Actor) Ping() {
	a.lastAccess.Store(time.Now())
}

// UserID returns the actor's owning user id.
func (a *Actor) UserID() uint {
	return a.userID
}
