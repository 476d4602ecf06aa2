// Package app runs the worker poll loop over the ads service.
package app

import (
	"context"
	"log"
	"time"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Attempt outcomes recorded by the loop.
const (
	OutcomeSucceeded  = "succeeded"
	OutcomeFailed     = "failed"
	OutcomeDeadLetter = "dead_letter"
)

// AdsClient is the slice of the ads service the loop calls.
type AdsClient interface {
	ListAccounts(ctx context.Context, in *adsv1.ListAccountsRequest, opts ...grpc.CallOption) (*adsv1.ListAccountsResponse, error)
	ApplyRecommendations(ctx context.Context, in *adsv1.ApplyRecommendationsRequest, opts ...grpc.CallOption) (*adsv1.ApplyRecommendationsResponse, error)
}

// Attempt is one apply-run outcome handed to the recorder.
type Attempt struct {
	AccountID    string
	ApplyID      string
	Outcome      string
	AppliedCount int32
	FailedCount  int32
	AttemptCount int32
	Error        string
	CreatedAt    time.Time
}

// AttemptRecorder persists apply attempt outcomes.
type AttemptRecorder interface {
	RecordAttempt(ctx context.Context, attempt Attempt) error
}

// Config controls loop cadence and retry behavior.
type Config struct {
	PollInterval  time.Duration
	RetryBackoff  time.Duration
	RetryMaxDelay time.Duration
	MaxAttempts   int
}

const (
	defaultPollInterval  = 30 * time.Second
	defaultRetryBackoff  = 5 * time.Second
	defaultRetryMaxDelay = 5 * time.Minute
	defaultMaxAttempts   = 5

	listAccountsPageSize = 50
)

func (c Config) normalized() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = defaultRetryBackoff
	}
	if c.RetryMaxDelay <= 0 {
		c.RetryMaxDelay = defaultRetryMaxDelay
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	return c
}

// accountState tracks retry bookkeeping for one account between ticks.
type accountState struct {
	attempts int32
	nextTry  time.Time
	dead     bool
}

// Loop polls every registered account and applies its approved
// recommendations, backing off per account on failure.
type Loop struct {
	client   AdsClient
	recorder AttemptRecorder
	cfg      Config
	clock    func() time.Time
	logf     func(format string, args ...any)

	states map[string]*accountState
}

// New builds a worker loop. recorder and logf may be nil.
func New(client AdsClient, recorder AttemptRecorder, cfg Config, logf func(format string, args ...any)) *Loop {
	if logf == nil {
		logf = log.Printf
	}
	return &Loop{
		client:   client,
		recorder: recorder,
		cfg:      cfg.normalized(),
		clock:    time.Now,
		logf:     logf,
		states:   make(map[string]*accountState),
	}
}

// Run ticks until the context ends. The first tick fires immediately.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.cfg.PollInterval)
	defer ticker.Stop()

	l.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Tick(ctx)
		}
	}
}

// Tick runs one poll pass over every account.
func (l *Loop) Tick(ctx context.Context) {
	token := ""
	for {
		resp, err := l.client.ListAccounts(ctx, &adsv1.ListAccountsRequest{
			PageSize:  listAccountsPageSize,
			PageToken: token,
		})
		if err != nil {
			l.logf("worker: list accounts: %v", err)
			return
		}
		for _, account := range resp.GetAccounts() {
			if ctx.Err() != nil {
				return
			}
			l.processAccount(ctx, account.GetId())
		}
		token = resp.GetNextPageToken()
		if token == "" {
			return
		}
	}
}

func (l *Loop) processAccount(ctx context.Context, accountID string) {
	if accountID == "" {
		return
	}
	state := l.states[accountID]
	if state == nil {
		state = &accountState{}
		l.states[accountID] = state
	}
	now := l.clock().UTC()
	if state.dead || now.Before(state.nextTry) {
		return
	}

	resp, err := l.client.ApplyRecommendations(ctx, &adsv1.ApplyRecommendationsRequest{
		AccountId:      accountID,
		PartialFailure: true,
	})
	// FailedPrecondition means nothing is approved; that is the steady
	// state, not a failure.
	if status.Code(err) == codes.FailedPrecondition {
		state.attempts = 0
		state.nextTry = time.Time{}
		return
	}
	if err != nil {
		state.attempts++
		outcome := OutcomeFailed
		if int(state.attempts) >= l.cfg.MaxAttempts {
			// Dead-lettered accounts need operator attention; the loop
			// stops retrying them until restart.
			state.dead = true
			outcome = OutcomeDeadLetter
		} else {
			state.nextTry = now.Add(l.backoff(state.attempts))
		}
		l.record(ctx, Attempt{
			AccountID:    accountID,
			Outcome:      outcome,
			AttemptCount: state.attempts,
			Error:        err.Error(),
			CreatedAt:    now,
		})
		l.logf("worker: apply account %s (attempt %d): %v", accountID, state.attempts, err)
		return
	}

	state.attempts = 0
	state.nextTry = time.Time{}
	l.record(ctx, Attempt{
		AccountID:    accountID,
		ApplyID:      resp.GetApplyId(),
		Outcome:      OutcomeSucceeded,
		AppliedCount: resp.GetAppliedCount(),
		FailedCount:  resp.GetFailedCount(),
		AttemptCount: 1,
		CreatedAt:    now,
	})
}

// backoff doubles per attempt, capped at RetryMaxDelay.
func (l *Loop) backoff(attempts int32) time.Duration {
	delay := l.cfg.RetryBackoff
	for i := int32(1); i < attempts; i++ {
		delay *= 2
		if delay >= l.cfg.RetryMaxDelay {
			return l.cfg.RetryMaxDelay
		}
	}
	if delay > l.cfg.RetryMaxDelay {
		return l.cfg.RetryMaxDelay
	}
	return delay
}

func (l *Loop) record(ctx context.Context, attempt Attempt) {
	if l.recorder == nil {
		return
	}
	if err := l.recorder.RecordAttempt(ctx, attempt); err != nil {
		l.logf("worker: record attempt for %s: %v", attempt.AccountID, err)
	}
}
