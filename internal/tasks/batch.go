package tasks

import (
	"context"
	"fmt"
	"sync"

	"devsetup/internal/logger"
)

// Outcome is the terminal state of one task; Err is nil on success.
type Outcome struct {
	Task Task
	Err  error
}

// Summary counts the outcomes of a batch. Succeeded+Failed always equals the
// number of tasks that were queued.
type Summary struct {
	Succeeded int
	Failed    int
	Outcomes  []Outcome
}

// RunAll starts every queued task before waiting on any of them, then waits
// for all of them to finish. A failing or panicking task never stops or
// cancels the others.
func RunAll(ctx context.Context, q *Queue) Summary {
	queued := q.Tasks()
	if len(queued) == 0 {
		return Summary{}
	}

	logger.Log("📋 Running %d background tasks:\n", len(queued))
	for _, t := range queued {
		logger.Msg("   • %s\n", t.Description)
	}

	outcomes := make([]Outcome, len(queued))
	var wg sync.WaitGroup

	for i, t := range queued {
		wg.Add(1)
		go func(i int, t Task) {
			defer wg.Done()
			// each goroutine owns outcomes[i], no lock needed
			outcomes[i] = Outcome{Task: t, Err: runOne(ctx, t)}
		}(i, t)
	}

	wg.Wait()

	summary := Summary{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	logger.Debug("[DEBUG] Batch finished: %d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	return summary
}

func runOne(ctx context.Context, t Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("[ERROR] ❌ %s panicked: %v\n", t.Name, r)
			err = fmt.Errorf("task %s panicked: %v", t.Name, r)
		}
	}()
	if t.Run == nil {
		return fmt.Errorf("task %s has nothing to run", t.Name)
	}
	return t.Run(ctx)
}

// Report prints the tally, leaving out whichever count is zero.
func Report(s Summary) {
	if s.Succeeded > 0 {
		logger.Info("[INFO] ✅ %d succeeded\n", s.Succeeded)
	}
	if s.Failed > 0 {
		logger.Error("[ERROR] ❌ %d failed\n", s.Failed)
	}
}
