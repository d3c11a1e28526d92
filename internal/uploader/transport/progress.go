package transport

import "io"

// progressChunk is the number of bytes transferred between successive
// progress emissions during an upload.
const progressChunk int64 = 64 * 1024

// progressReader wraps an io.Reader and reports upload progress as a 0-100
// percentage, at most once per progressChunk bytes plus a final emission
// when the declared total has been read.
type progressReader struct {
	r        io.Reader
	total    int64
	written  int64
	lastEmit int64
	emit     func(percent int)
}

func newProgressReader(r io.Reader, total int64, emit func(percent int)) io.Reader {
	if emit == nil {
		emit = func(int) {}
	}
	return &progressReader{r: r, total: total, emit: emit}
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.written += int64(n)
		if p.written-p.lastEmit >= progressChunk || (p.total > 0 && p.written >= p.total) {
			p.lastEmit = p.written
			p.emit(percent(p.written, p.total))
		}
	}
	return n, err
}

func percent(written, total int64) int {
	if total <= 0 {
		return 100
	}
	p := int(written * 100 / total)
	if p > 100 {
		p = 100
	}
	return p
}
