package rest

import "io"

// ProgressFunc receives the number of bytes transferred so far and the
// total size when known. total is -1 when the size is unknown (for example
// a chunked response). Callbacks run on the goroutine performing the
// transfer and should return quickly.
type ProgressFunc func(transferred, total int64)

type progressReader struct {
	reader      io.Reader
	total       int64
	transferred int64
	fn          ProgressFunc
}

func newProgressReader(r io.Reader, total int64, fn ProgressFunc) io.Reader {
	if fn == nil {
		return r
	}
	return &progressReader{reader: r, total: total, fn: fn}
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		p.transferred += int64(n)
		p.fn(p.transferred, p.total)
	}
	return n, err
}
