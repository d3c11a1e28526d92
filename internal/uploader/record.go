package uploader

// Status is the lifecycle state of a single upload record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRejected  Status = "rejected"
	StatusUploading Status = "uploading"
	StatusComplete  Status = "complete"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

// Terminal reports whether s is a final state that never transitions further.
func (s Status) Terminal() bool {
	switch s {
	case StatusRejected, StatusComplete, StatusCancelled, StatusFailed:
		return true
	}
	return false
}

// RawFile is a candidate file as produced by a file picker, a directory
// walker or any other submission source, before validation.
type RawFile struct {
	Name     string
	Size     int64
	MimeType string
	Content  []byte
}

// Record tracks one file's validation and upload lifecycle. A Record value
// returned by the Manager is a snapshot: it is safe to read from any
// goroutine and never changes after being handed out.
//
// Progress is 0-100 and is monotonically non-decreasing while the record is
// uploading; it equals 100 exactly when Status is StatusComplete. Err is set
// only for StatusRejected and StatusFailed.
type Record struct {
	ID       string
	Name     string
	Size     int64
	MimeType string
	Payload  []byte
	Status   Status
	Progress int
	Err      string
}
