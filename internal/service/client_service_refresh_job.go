package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/christmas-gifter/models"
)

type clientRefreshJob struct {
	gifterService ClientGifterService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that re-fetches the people
// list on a ticker. The job is idle until Start is called.
func NewClientRefreshJob(gifterService ClientGifterService) ClientRefreshJob {
	return &clientRefreshJob{gifterService: gifterService}
}

// Start implements ClientRefreshJob. It stops any previously running job, then
// launches a background goroutine that calls GetPeople every interval and
// passes each successful result to onRefresh. If interval is zero or negative
// it defaults to 5 minutes. Failed fetches are skipped silently so a flaky
// connection never tears the UI down. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration, onRefresh func([]models.Person)) {
	if interval <= 0 {
		interval = 5 * time.Minute
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

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				people, err := j.gifterService.GetPeople(jobCtx)
				if err != nil {
					continue
				}
				if onRefresh != nil {
					onRefresh(people)
				}
			}
		}
	}()
}

// Stop implements ClientRefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
