package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-steam-guard/internal/crypto"
	"github.com/MKhiriev/go-steam-guard/internal/logger"
	"github.com/MKhiriev/go-steam-guard/models"
)

type codeRefreshJob struct {
	guard  crypto.GuardService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCodeRefreshJob creates a codeRefreshJob that regenerates an account's
// login code on a ticker. The job is idle until Start is called.
func NewCodeRefreshJob(guard crypto.GuardService, log *logger.Logger) CodeRefreshJob {
	return &codeRefreshJob{guard: guard, logger: log}
}

// Start implements CodeRefreshJob. It stops any previously running job, then
// launches a background goroutine that regenerates account's code every
// interval and hands the result to deliver. If interval is zero or negative
// it defaults to one second. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *codeRefreshJob) Start(ctx context.Context, account models.Account, interval time.Duration, deliver func(models.CodeResult)) {
	if interval <= 0 {
		interval = time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.refresh(account, deliver)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(account, deliver)
			}
		}
	}()
}

// Stop implements CodeRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *codeRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *codeRefreshJob) refresh(account models.Account, deliver func(models.CodeResult)) {
	code, err := j.guard.GenerateCode(account.SharedSecret, time.Now().Unix())
	if err != nil {
		j.logger.Debug().Err(err).Str("account", account.AccountName).Msg("code generation failed")
		return
	}
	deliver(code)
}
