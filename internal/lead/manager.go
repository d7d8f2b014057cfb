package lead

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/guidepost-labs/guidepost/internal/budget"
)

// Status is the submit lifecycle state of the form.
type Status int

// Lifecycle: idle -> submitting -> {success | error}; error -> idle lets the
// agent resubmit, success -> idle starts a new guide.
const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// DebounceInterval is how long the draft must be untouched before it is
// snapshotted to the store. The timer resets on every field change.
const DebounceInterval = 5 * time.Second

// Store persists the serialized draft under a fixed key.
type Store interface {
	// Load returns the stored snapshot and whether one exists.
	Load() ([]byte, bool, error)
	Save(snapshot []byte) error
	Delete() error
}

// Submitter delivers a validated draft (with its budget range resolved to
// dollar values) to the external automation webhook.
type Submitter interface {
	Submit(ctx context.Context, d Draft, budgetMin, budgetMax int64) error
}

// Manager owns the in-memory draft, the submit state machine, and the
// debounced snapshot writes. It is safe for the Bubble Tea update loop and
// the scheduler's timer goroutine to touch it concurrently.
type Manager struct {
	store     Store
	submitter Submitter
	table     budget.Table
	sched     Scheduler
	debounce  time.Duration

	mu          sync.Mutex
	draft       Draft
	status      Status
	lastErr     error
	submittedTo string
	cancelSave  CancelFunc
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithScheduler substitutes the debounce scheduler (used by tests).
func WithScheduler(s Scheduler) ManagerOption {
	return func(m *Manager) { m.sched = s }
}

// WithDebounce overrides the debounce interval.
func WithDebounce(d time.Duration) ManagerOption {
	return func(m *Manager) { m.debounce = d }
}

// NewManager builds a manager seeded from defaults, then overlays any
// persisted draft field by field. A store read error falls back to defaults
// and is logged; startup never fails because of a bad snapshot.
func NewManager(store Store, submitter Submitter, table budget.Table, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:     store,
		submitter: submitter,
		table:     table,
		sched:     TimerScheduler{},
		debounce:  DebounceInterval,
		draft:     Defaults(),
	}
	for _, opt := range opts {
		opt(m)
	}

	raw, ok, err := store.Load()
	switch {
	case err != nil:
		log.Printf("lead: draft store read failed, starting from defaults: %v", err)
	case ok:
		m.draft = Overlay(Defaults(), raw, table.MaxIndex())
	}

	return m
}

// Draft returns a snapshot of the current draft.
func (m *Manager) Draft() Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// Status returns the current lifecycle state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Err returns the last submission error, if any.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// SubmittedTo returns the agent email of the last successful submission.
func (m *Manager) SubmittedTo() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submittedTo
}

// Table returns the budget step table the manager resolves ranges against.
func (m *Manager) Table() budget.Table {
	return m.table
}

// Mutate applies a field change to the draft and reschedules the debounced
// snapshot write. Mutations never validate eagerly; display-only feedback
// (character counters) reads the draft directly.
func (m *Manager) Mutate(fn func(*Draft)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.draft)
	m.scheduleSaveLocked()
}

func (m *Manager) scheduleSaveLocked() {
	if m.cancelSave != nil {
		m.cancelSave()
	}
	m.cancelSave = m.sched.Schedule(m.debounce, m.flush)
}

// flush writes the current draft snapshot to the store. Runs on the
// scheduler's timer goroutine.
func (m *Manager) flush() {
	m.mu.Lock()
	snapshot, err := json.Marshal(m.draft)
	m.mu.Unlock()
	if err != nil {
		log.Printf("lead: marshaling draft snapshot: %v", err)
		return
	}
	if err := m.store.Save(snapshot); err != nil {
		log.Printf("lead: saving draft snapshot: %v", err)
	}
}

// FlushNow persists the draft immediately, cancelling any pending debounce.
// Called when the TUI exits so a half-filled form survives the session.
func (m *Manager) FlushNow() {
	m.mu.Lock()
	if m.cancelSave != nil {
		m.cancelSave()
		m.cancelSave = nil
	}
	m.mu.Unlock()
	m.flush()
}

// Validate checks the current draft and returns every violation.
func (m *Manager) Validate() FieldErrors {
	return Validate(m.Draft(), m.table)
}

// BeginSubmit transitions to submitting and returns the draft snapshot with
// its budget range resolved, so the caller can run the network call off the
// event loop. The pending debounced save is cancelled: on success the draft
// is deleted anyway, and on failure the store already holds the last
// snapshot.
func (m *Manager) BeginSubmit() (Draft, int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	minV, maxV, err := m.table.Resolve(m.draft.BudgetRange[0], m.draft.BudgetRange[1])
	if err != nil {
		return Draft{}, 0, 0, err
	}

	if m.cancelSave != nil {
		m.cancelSave()
		m.cancelSave = nil
	}
	m.status = StatusSubmitting
	m.lastErr = nil
	return m.draft, minV, maxV, nil
}

// FinishSubmit records the outcome of a submission started with BeginSubmit.
// Success deletes the persisted draft and resets the in-memory draft to
// defaults; failure leaves both untouched so the agent can retry without
// re-entering anything.
func (m *Manager) FinishSubmit(agentEmail string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.status = StatusError
		m.lastErr = err
		return
	}

	if delErr := m.store.Delete(); delErr != nil {
		log.Printf("lead: deleting submitted draft: %v", delErr)
	}
	m.draft = Defaults()
	m.status = StatusSuccess
	m.submittedTo = agentEmail
}

// Submit validates and submits the current draft synchronously: exactly one
// outbound request. Used by the headless submit command; the TUI drives the
// same lifecycle through BeginSubmit/FinishSubmit instead.
func (m *Manager) Submit(ctx context.Context) error {
	if errs := m.Validate(); len(errs) > 0 {
		return errs
	}

	d, minV, maxV, err := m.BeginSubmit()
	if err != nil {
		m.FinishSubmit("", err)
		return err
	}

	err = m.submitter.Submit(ctx, d, minV, maxV)
	m.FinishSubmit(d.AgentEmail, err)
	return err
}

// Reset clears success/error display state back to idle. The persisted
// draft is not touched.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = StatusIdle
	m.lastErr = nil
	m.submittedTo = ""
}
