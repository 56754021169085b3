package linebreak

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 64*1024)
	},
}

var writerPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(nil, 64*1024)
	},
}

// ProcessRequest configures Process.
type ProcessRequest struct {
	Reader io.Reader
	Writer io.Writer
	// Breaker is used when set; otherwise one is built from Options.
	Breaker *Breaker
	Options []Option
}

// Process reads a document line by line from Reader, reflows it and writes
// the result to Writer. Line terminators are preserved. Input that is not
// valid UTF-8 or looks binary stops processing at the offending line with
// ErrInvalidUTF8 or ErrBinaryInput; earlier lines may already be written.
func Process(req ProcessRequest) (Report, error) {
	if req.Reader == nil {
		return Report{}, fmt.Errorf("process: reader is nil")
	}
	if req.Writer == nil {
		return Report{}, fmt.Errorf("process: writer is nil")
	}
	b := req.Breaker
	if b == nil {
		b = New(req.Options...)
	} else {
		b = b.With(req.Options...)
	}
	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(req.Reader)
	writer := writerPool.Get().(*bufio.Writer)
	writer.Reset(req.Writer)
	defer func() {
		reader.Reset(nil)
		readerPool.Put(reader)
		writer.Reset(nil)
		writerPool.Put(writer)
	}()

	var report Report
	var v validator
	s := newScanner(b, &report)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if verr := v.addString(line); verr != nil {
				_ = writer.Flush()
				return report, fmt.Errorf("process: line %d: %w", report.Lines+1, verr)
			}
			body, newline, term := splitTerminator(line)
			out := s.next(body, newline)
			if _, werr := writer.WriteString(out); werr != nil {
				return report, fmt.Errorf("process: write: %w", werr)
			}
			if _, werr := writer.WriteString(term); werr != nil {
				return report, fmt.Errorf("process: write: %w", werr)
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return report, fmt.Errorf("process: read: %w", err)
		}
	}
	s.finish()
	if err := writer.Flush(); err != nil {
		return report, fmt.Errorf("process: write: %w", err)
	}
	return report, nil
}

// splitTerminator separates line from its "\n" or "\r\n" terminator and
// returns the newline to use for inserted breaks.
func splitTerminator(line string) (body, newline, term string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n", "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n", "\n"
	case strings.HasSuffix(line, "\r"):
		return line[:len(line)-1], "\r\n", "\r"
	default:
		return line, "\n", ""
	}
}
