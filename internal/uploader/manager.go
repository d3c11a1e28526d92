package uploader

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mkravets/uploadhub/internal/logging"
)

// Listener receives lifecycle events emitted by the Manager. Implementations
// must not mutate the record; they get a snapshot copy. Events are delivered
// synchronously, one at a time, outside the manager lock.
type Listener interface {
	// UploadComplete fires exactly once when an upload finishes successfully.
	UploadComplete(rec Record, resp *Response)

	// UploadError fires when a transport reports a non-abort failure.
	// Cancellations do not produce an error event.
	UploadError(rec Record, err error)
}

// Options configures a Manager, supplied once at construction.
type Options struct {
	// UploadURL is the destination handed to the transport for every upload.
	UploadURL string

	// Policy is the validation gate applied to every candidate file.
	Policy Policy

	// Timeout bounds a single upload; 0 means no deadline. A timed-out
	// upload is recorded as failed, not cancelled.
	Timeout time.Duration
}

// record is the manager's mutable view of an upload. The embedded Record is
// what callers see as snapshots; cancel exists only while the record is
// uploading.
type record struct {
	Record
	cancel context.CancelFunc
}

// Manager owns the collection of upload records and orchestrates concurrent
// uploads. All state transitions happen under one mutex, so manager calls
// and transport callbacks for any record are strictly sequenced; transport
// I/O itself runs on a per-record goroutine outside the lock.
type Manager struct {
	opts      Options
	transport Transport
	log       logging.Logger

	mu        sync.Mutex
	records   map[string]*record
	order     []string
	listeners []Listener

	wg sync.WaitGroup
}

func NewManager(opts Options, transport Transport, log logging.Logger) *Manager {
	return &Manager{
		opts:      opts,
		transport: transport,
		log:       log,
		records:   make(map[string]*record),
	}
}

// Subscribe registers a listener for upload-complete and upload-error events.
func (m *Manager) Subscribe(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// Submit validates each candidate and launches an upload for every accepted
// one. Invalid candidates become terminal rejected records and no upload is
// launched for them. Submit never blocks on network I/O; outcomes are
// reported via events. Returned snapshots are in input order.
func (m *Manager) Submit(candidates []RawFile) []Record {
	out := make([]Record, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, m.submit(c))
	}
	return out
}

func (m *Manager) submit(c RawFile) Record {

	rec := &record{Record: Record{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Size:     c.Size,
		MimeType: c.MimeType,
		Payload:  c.Content,
		Status:   StatusPending,
	}}

	if err := Validate(c, m.opts.Policy); err != nil {
		rec.Status = StatusRejected
		rec.Err = err.Error()

		m.mu.Lock()
		m.insert(rec)
		snap := rec.Record
		m.mu.Unlock()

		m.log.Info(context.Background(), "file rejected",
			"id", rec.ID, "name", rec.Name, "reason", rec.Err)
		return snap
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if m.opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.opts.Timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	m.mu.Lock()
	rec.Status = StatusUploading
	rec.cancel = cancel
	m.insert(rec)
	snap := rec.Record
	m.mu.Unlock()

	m.log.Info(ctx, "upload started", "id", rec.ID, "name", rec.Name, "size", rec.Size)

	req := Request{URL: m.opts.UploadURL, Name: c.Name, MimeType: c.MimeType, Payload: c.Content}
	m.wg.Add(1)
	go m.run(ctx, rec.ID, req)

	return snap
}

// insert must be called with the lock held.
func (m *Manager) insert(rec *record) {
	m.records[rec.ID] = rec
	m.order = append(m.order, rec.ID)
}

func (m *Manager) run(ctx context.Context, id string, req Request) {
	defer m.wg.Done()

	resp, err := m.transport.Upload(ctx, req, func(percent int) {
		m.onProgress(id, percent)
	})
	if err != nil {
		m.onFailure(id, err)
		return
	}
	m.onComplete(id, resp)
}

// Cancel requests abort of an in-flight upload. It returns true only when
// the record exists and is currently uploading; the record transitions to
// cancelled later, once the transport confirms the abort. Cancelling a
// record that is unknown or already terminal is a no-op returning false.
func (m *Manager) Cancel(id string) bool {
	m.mu.Lock()
	rec, ok := m.records[id]
	if !ok || rec.Status != StatusUploading || rec.cancel == nil {
		m.mu.Unlock()
		return false
	}
	cancel := rec.cancel
	m.mu.Unlock()

	m.log.Info(context.Background(), "cancel requested", "id", id)
	cancel()
	return true
}

// onProgress is invoked by the transport goroutine. Late calls racing with
// completion or cancellation are dropped: once a record has left the
// uploading state nothing may touch it again. Progress never regresses and
// is clamped to 0-100.
func (m *Manager) onProgress(id string, percent int) {
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok || rec.Status != StatusUploading {
		return
	}
	if percent > rec.Progress {
		rec.Progress = percent
	}
}

func (m *Manager) onComplete(id string, resp *Response) {
	m.mu.Lock()
	rec, ok := m.records[id]
	if !ok || rec.Status != StatusUploading {
		m.mu.Unlock()
		return
	}
	rec.Status = StatusComplete
	rec.Progress = 100
	m.release(rec)
	snap := rec.Record
	listeners := m.cloneListeners()
	m.mu.Unlock()

	m.log.Info(context.Background(), "upload complete", "id", id, "name", snap.Name)
	for _, l := range listeners {
		l.UploadComplete(snap, resp)
	}
}

func (m *Manager) onFailure(id string, err error) {
	aborted := errors.Is(err, ErrAborted) || errors.Is(err, context.Canceled)

	m.mu.Lock()
	rec, ok := m.records[id]
	if !ok || rec.Status != StatusUploading {
		m.mu.Unlock()
		return
	}
	if aborted {
		rec.Status = StatusCancelled
	} else {
		rec.Status = StatusFailed
		rec.Err = err.Error()
	}
	m.release(rec)
	snap := rec.Record
	listeners := m.cloneListeners()
	m.mu.Unlock()

	if aborted {
		m.log.Info(context.Background(), "upload cancelled", "id", id, "name", snap.Name)
		return
	}

	m.log.Error(context.Background(), "upload failed", "id", id, "name", snap.Name, "error", err)
	for _, l := range listeners {
		l.UploadError(snap, err)
	}
}

// release drops the cancel handle the instant the record leaves the
// uploading state, closing the cancellation race. Must be called with the
// lock held.
func (m *Manager) release(rec *record) {
	if rec.cancel != nil {
		rec.cancel()
		rec.cancel = nil
	}
}

func (m *Manager) cloneListeners() []Listener {
	return append([]Listener(nil), m.listeners...)
}

// Get returns a snapshot of the record with the given id.
func (m *Manager) Get(id string) (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return Record{}, false
	}
	return rec.Record, true
}

// List returns snapshots of all records in creation order.
func (m *Manager) List() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.records[id].Record)
	}
	return out
}

// Remove deletes a record from the collection, e.g. when the user clears a
// finished entry from the list. An in-flight upload is cancelled first.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	rec, ok := m.records[id]
	if !ok {
		m.mu.Unlock()
		return false
	}
	m.release(rec)
	delete(m.records, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.mu.Unlock()
	return true
}

// Clear removes every record, cancelling any still in flight.
func (m *Manager) Clear() {
	m.mu.Lock()
	for _, rec := range m.records {
		m.release(rec)
	}
	m.records = make(map[string]*record)
	m.order = nil
	m.mu.Unlock()
}

// Wait blocks until every launched upload goroutine has finished. Intended
// for shutdown paths and tests.
func (m *Manager) Wait() {
	m.wg.Wait()
}
