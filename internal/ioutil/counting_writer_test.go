package ioutil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrmap/internal/ioutil"
)

var errWrite = errors.New("write failed")

type limitWriter struct {
	limit   int
	written int
}

func (lw *limitWriter) Write(p []byte) (n int, err error) {
	if lw.written+len(p) > lw.limit {
		n = lw.limit - lw.written
		lw.written = lw.limit
		return n, errtrace.Wrap(errWrite)
	}
	lw.written += len(p)
	return len(p), nil
}

func TestCountingWriter_Result(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.GetCountingWriter(&sb)
	defer ioutil.FreeCountingWriter(cw)

	cw.Fprint("Content-Length", ": ", 42)
	cw.WriteString("\r\n") //nolint:errcheck
	cw.Call(func(w io.Writer) (int, error) {
		return errtrace.Wrap2(io.WriteString(w, "Max-Forwards: 70"))
	})
	cw.Write([]byte("\r\n")) //nolint:errcheck

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	want := "Content-Length: 42\r\nMax-Forwards: 70\r\n"
	if got := sb.String(); got != want {
		t.Errorf("sb.String() = %q, want %q", got, want)
	}
	if num != len(want) {
		t.Errorf("cw.Result() num = %d, want %d", num, len(want))
	}
}

func TestCountingWriter_StopsAfterError(t *testing.T) {
	t.Parallel()

	lw := &limitWriter{limit: 4}
	cw := ioutil.GetCountingWriter(lw)
	defer ioutil.FreeCountingWriter(cw)

	cw.Fprint("abcdef")
	if n, err := cw.WriteString("gh"); n != 0 || !errors.Is(err, errWrite) {
		t.Errorf("cw.WriteString(\"gh\") = (%d, %v), want (0, %v)", n, err, errWrite)
	}
	called := false
	cw.Call(func(io.Writer) (int, error) {
		called = true
		return 0, nil
	})
	if called {
		t.Error("cw.Call(fn) invoked fn after a write error")
	}

	num, err := cw.Result()
	if !errors.Is(err, errWrite) {
		t.Errorf("cw.Result() error = %v, want %v", err, errWrite)
	}
	if num != 4 {
		t.Errorf("cw.Result() num = %d, want 4", num)
	}
}

func TestFreeCountingWriter_Resets(t *testing.T) {
	t.Parallel()

	cw := ioutil.GetCountingWriter(&limitWriter{limit: 0})
	cw.Fprint("x")
	ioutil.FreeCountingWriter(cw)

	var sb strings.Builder
	cw = ioutil.GetCountingWriter(&sb)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint("ok")
	if num, err := cw.Result(); num != 2 || err != nil {
		t.Errorf("cw.Result() = (%d, %v), want (2, nil)", num, err)
	}
}
