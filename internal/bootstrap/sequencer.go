// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-eightball/internal/adapter"
	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/models"
)

// TransitionFunc observes every state change of a [Sequencer].
type TransitionFunc func(from, to State)

// Sequencer drives the startup sequence. It runs at most once.
type Sequencer struct {
	adapter   adapter.BackendAdapter
	mounter   Mounter
	storeInit StoreInitializer
	logger    *logger.Logger

	onTransition TransitionFunc

	mu      sync.Mutex
	state   State
	started bool
}

// Option customises a [Sequencer].
type Option func(*Sequencer)

// WithTransitionHook registers fn to be called after every state change.
func WithTransitionHook(fn TransitionFunc) Option {
	return func(s *Sequencer) {
		s.onTransition = fn
	}
}

// WithStoreInitializer sets the action run after mount. Without one the
// sequencer goes straight from store-initializing to ready.
func WithStoreInitializer(init StoreInitializer) Option {
	return func(s *Sequencer) {
		s.storeInit = init
	}
}

// NewSequencer builds a sequencer talking to the backend through a and
// mounting the application with m.
func NewSequencer(a adapter.BackendAdapter, m Mounter, log *logger.Logger, opts ...Option) *Sequencer {
	s := &Sequencer{
		adapter: a,
		mounter: m,
		logger:  log,
		state:   StateUninitialized,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Run executes the sequence. On success it returns the [AppContext] handed
// to the mounter and the sequencer is [StateReady]. On failure it returns a
// [*StageError] naming the failed stage and the sequencer is [StateFailed].
//
// A second call returns [ErrAlreadyStarted].
func (s *Sequencer) Run(ctx context.Context) (*AppContext, error) {
	if s.mounter == nil {
		return nil, ErrNilMounter
	}

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil, ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	s.transition(StateConfiguring)
	configDoc, err := s.fetchDocument(ctx, s.adapter.FetchConfig)
	if err != nil {
		return nil, s.fail(StateConfiguring, err)
	}

	s.transition(StateAuthenticating)
	profileDoc, err := s.fetchDocument(ctx, s.adapter.FetchProfile)
	if err != nil {
		return nil, s.fail(StateAuthenticating, err)
	}

	appCtx := NewAppContext(models.RemoteConfig(configDoc), models.UserProfile(profileDoc), s.adapter.BaseURL())

	// mounted is entered only after Mount succeeds.
	if err = s.mounter.Mount(ctx, appCtx); err != nil {
		return nil, s.fail(StateMounted, fmt.Errorf("mount application: %w", err))
	}
	s.transition(StateMounted)

	s.transition(StateStoreInitializing)
	if s.storeInit != nil {
		if err = s.storeInit.Init(ctx); err != nil {
			s.logger.Warn().Err(err).
				Str("func", "Sequencer.Run").
				Msg("store initialization finished with error")
		}
	}
	s.transition(StateReady)

	return appCtx, nil
}

func (s *Sequencer) fetchDocument(ctx context.Context, fetch func(context.Context) (adapter.Result, error)) (models.Document, error) {
	res, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, res.Err()
	}
	return models.DecodeDocument(res.Body)
}

func (s *Sequencer) fail(stage State, err error) error {
	s.logger.Error().Err(err).
		Str("func", "Sequencer.Run").
		Str("stage", stage.String()).
		Bool("transport", errors.Is(err, adapter.ErrTransport)).
		Msg("bootstrap failed")

	s.transition(StateFailed)
	return &StageError{Stage: stage, Err: err}
}

func (s *Sequencer) transition(to State) {
	s.mu.Lock()
	from := s.state
	s.state = to
	s.mu.Unlock()

	s.logger.Debug().
		Str("func", "Sequencer.transition").
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("bootstrap state changed")

	if s.onTransition != nil {
		s.onTransition(from, to)
	}
}
