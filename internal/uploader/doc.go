// Package uploader implements the core upload manager: the per-file state
// machine, the validation gate, the progress-reporting contract and the
// cancellation protocol.
//
// # Overview
//
// Candidate files (RawFile) are handed to Manager.Submit. Each candidate is
// screened by Validate; rejected files become terminal records immediately,
// accepted ones get an upload launched on a dedicated goroutine through a
// Transport. The manager serializes every state transition under one lock
// and suppresses any transport callback that arrives after a record has
// left the uploading state, so cancellation and completion can race with
// in-flight network callbacks without corrupting terminal state.
//
// Key Types
//
//   - type Record    — one file's lifecycle snapshot
//   - type Manager   — owns records, mediates cancellation, emits events
//   - type Transport — performs a single upload, reports progress
//   - type Listener  — observer for upload-complete / upload-error events
//
// Typical Usage
//
//	m := uploader.NewManager(uploader.Options{UploadURL: url, Policy: pol}, tr, log)
//	recs := m.Submit(files)
//	m.Cancel(recs[0].ID)
//	m.Wait()
package uploader
