package livesync

import "sync"

// Progress is a point-in-time view of a sync run.
type Progress struct {
	Total           int    `json:"total"`
	Completed       int    `json:"completed"`
	CurrentContract string `json:"currentContract,omitempty"`
	LastError       string `json:"lastError,omitempty"`
	Running         bool   `json:"running"`
}

// progressTracker records the progress of the current run for concurrent readers.
type progressTracker struct {
	mu sync.RWMutex
	p  Progress
}

func (t *progressTracker) start(total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p = Progress{Total: total, Running: true}
}

func (t *progressTracker) current(ownerDID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p.CurrentContract = ownerDID
}

func (t *progressTracker) completed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p.Completed++
}

func (t *progressTracker) finish(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p.Running = false
	t.p.CurrentContract = ""
	if err != nil {
		t.p.LastError = err.Error()
	}
}

func (t *progressTracker) snapshot() Progress {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.p
}
