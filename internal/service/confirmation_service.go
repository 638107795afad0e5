// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-steam-guard/internal/adapter"
	"github.com/MKhiriev/go-steam-guard/internal/config"
	"github.com/MKhiriev/go-steam-guard/internal/crypto"
	"github.com/MKhiriev/go-steam-guard/internal/logger"
	"github.com/MKhiriev/go-steam-guard/models"
)

const confirmationTag = "conf"

// Status messages published by the confirmation service. Overwritten on every
// operation.
const (
	statusLoading         = "loading confirmations..."
	statusNoConfirmations = "no active confirmations"
	statusAccepted        = "accepted"
	statusDeclined        = "declined"
	statusLoadFailed      = "failed to load confirmations"
	statusAcceptFailed    = "failed to accept confirmation"
	statusDeclineFailed   = "failed to decline confirmation"
)

type confirmationService struct {
	guard   crypto.GuardService
	adapter adapter.ConfirmationAdapter
	logger  *logger.Logger

	now         func() time.Time
	relistDelay time.Duration

	mu            sync.Mutex
	confirmations []models.Confirmation
	loading       bool
	status        string
}

// NewConfirmationService creates a ConfirmationService that signs requests
// with guard and issues them through confAdapter. cfg.RelistDelay controls
// the pause before the reconciling re-list after a successful action.
func NewConfirmationService(guard crypto.GuardService, confAdapter adapter.ConfirmationAdapter, cfg config.ClientWorkers, log *logger.Logger) ConfirmationService {
	delay := cfg.RelistDelay
	if delay <= 0 {
		delay = config.DefaultRelistDelay
	}

	return &confirmationService{
		guard:       guard,
		adapter:     confAdapter,
		logger:      log,
		now:         time.Now,
		relistDelay: delay,
	}
}

func (s *confirmationService) List(ctx context.Context, account models.Account, session models.Session) error {
	if err := s.begin(statusLoading); err != nil {
		return err
	}
	defer s.end()

	query, err := s.signedQuery(account, session)
	if err != nil {
		s.setStatus(statusLoadFailed)
		return err
	}

	list, err := s.adapter.GetList(ctx, query, session)
	if err != nil {
		s.setStatus(statusLoadFailed)
		s.logger.Debug().Err(err).Str("account", account.AccountName).Msg("confirmation list request failed")
		return fmt.Errorf("list confirmations: %w", err)
	}
	if !list.Success {
		s.setStatus(statusLoadFailed)
		return fmt.Errorf("list confirmations: %w", ErrServerRejected)
	}

	parsed := parseConfirmations(list.Conf, s.now())

	s.mu.Lock()
	s.confirmations = parsed
	if len(parsed) == 0 {
		s.status = statusNoConfirmations
	} else {
		s.status = fmt.Sprintf("%d pending confirmations", len(parsed))
	}
	s.mu.Unlock()

	return nil
}

func (s *confirmationService) Accept(ctx context.Context, confirmation models.Confirmation, account models.Account, session models.Session) error {
	return s.act(ctx, adapter.OperationAllow, confirmation, account, session)
}

func (s *confirmationService) Decline(ctx context.Context, confirmation models.Confirmation, account models.Account, session models.Session) error {
	return s.act(ctx, adapter.OperationCancel, confirmation, account, session)
}

func (s *confirmationService) act(ctx context.Context, op string, confirmation models.Confirmation, account models.Account, session models.Session) error {
	successStatus, failureStatus := statusAccepted, statusAcceptFailed
	if op == adapter.OperationCancel {
		successStatus, failureStatus = statusDeclined, statusDeclineFailed
	}

	if err := s.begin(statusLoading); err != nil {
		return err
	}
	defer s.end()

	query, err := s.signedQuery(account, session)
	if err != nil {
		s.setStatus(failureStatus)
		return err
	}

	action, err := s.adapter.Act(ctx, op, confirmation, query, session)
	if err != nil {
		s.setStatus(failureStatus)
		s.logger.Debug().Err(err).Str("op", op).Str("confirmation", confirmation.ID).Msg("confirmation action request failed")
		return fmt.Errorf("%s confirmation %s: %w", op, confirmation.ID, err)
	}
	if !action.Success {
		s.setStatus(failureStatus)
		return fmt.Errorf("%s confirmation %s: %w", op, confirmation.ID, ErrServerRejected)
	}

	s.mu.Lock()
	s.confirmations = removeConfirmation(s.confirmations, confirmation.ID)
	s.status = successStatus
	s.mu.Unlock()

	s.scheduleRelist(ctx, account, session)

	return nil
}

// scheduleRelist fires a reconciling List on a background goroutine after the
// configured delay. Failures are logged, not surfaced; the next user-driven
// List retries anyway.
func (s *confirmationService) scheduleRelist(ctx context.Context, account models.Account, session models.Session) {
	go func() {
		t := time.NewTimer(s.relistDelay)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}

		if err := s.List(ctx, account, session); err != nil {
			s.logger.Debug().Err(err).Str("account", account.AccountName).Msg("reconciling re-list failed")
		}
	}()
}

// signedQuery verifies the account and session carry everything a
// confirmation call needs, then signs the current time. Fails before any
// network traffic.
func (s *confirmationService) signedQuery(account models.Account, session models.Session) (models.ConfirmationQuery, error) {
	switch {
	case account.IdentitySecret == "":
		return models.ConfirmationQuery{}, fmt.Errorf("%w: identity_secret", ErrMissingCredential)
	case account.DeviceID == "":
		return models.ConfirmationQuery{}, fmt.Errorf("%w: device_id", ErrMissingCredential)
	case account.SteamID == "":
		return models.ConfirmationQuery{}, fmt.Errorf("%w: steamid", ErrMissingCredential)
	}
	if !session.Authenticated() {
		return models.ConfirmationQuery{}, ErrSessionNotAuthenticated
	}

	unixTime := s.now().Unix()
	signature, err := s.guard.SignConfirmation(account.IdentitySecret, unixTime, confirmationTag)
	if err != nil {
		return models.ConfirmationQuery{}, fmt.Errorf("sign confirmation query: %w", err)
	}

	return models.ConfirmationQuery{
		DeviceID:  account.DeviceID,
		SteamID:   account.SteamID,
		Signature: signature,
		Time:      unixTime,
		Tag:       confirmationTag,
	}, nil
}

// begin claims the single in-flight slot and publishes the transitional
// status. Returns ErrOperationInFlight if another operation holds the slot.
func (s *confirmationService) begin(status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading {
		return ErrOperationInFlight
	}
	s.loading = true
	s.status = status

	return nil
}

func (s *confirmationService) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *confirmationService) setStatus(status string) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

func (s *confirmationService) Confirmations() []models.Confirmation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Confirmation, len(s.confirmations))
	copy(out, s.confirmations)
	return out
}

func (s *confirmationService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *confirmationService) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func removeConfirmation(list []models.Confirmation, id string) []models.Confirmation {
	out := list[:0]
	for _, c := range list {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
