package errors

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "extension.Load",
		Kind: KindConfig,
		Err:  stderrors.New("bad yaml"),
	}
	got := err.Error()
	if !strings.Contains(got, "extension.Load") || !strings.Contains(got, "config") {
		t.Errorf("error string %q missing op or kind", got)
	}
}

func TestErrorStringWithWidget(t *testing.T) {
	err := &Error{
		Op:     "carousel.Advance",
		Kind:   KindScene,
		Widget: "abc-123",
		Err:    stderrors.New("detached node"),
	}
	if got := err.Error(); !strings.Contains(got, "widget=abc-123") {
		t.Errorf("error string %q should contain widget id", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := &Error{Op: "op", Kind: KindAnimation, Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("expected Is to match the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindScene, "scene"},
		{KindAnimation, "animation"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Op:        "carousel.Advance",
		Value:     "boom",
		Timestamp: time.Now(),
	}
	got := err.Error()
	if !strings.Contains(got, "carousel.Advance") || !strings.Contains(got, "boom") {
		t.Errorf("panic string %q missing op or value", got)
	}
}

// capturingHandler records reported errors for assertions.
type capturingHandler struct {
	errs   []*Error
	panics []*PanicError
}

func (h *capturingHandler) HandleError(err *Error)      { h.errs = append(h.errs, err) }
func (h *capturingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestReport_FillsTimestampAndDispatches(t *testing.T) {
	h := &capturingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&Error{Op: "op", Kind: KindConfig, Err: stderrors.New("x")})
	if len(h.errs) != 1 {
		t.Fatalf("reported errors = %d, want 1", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("Report should fill a zero timestamp")
	}

	Report(nil) // must not panic or dispatch
	if len(h.errs) != 1 {
		t.Error("nil report dispatched")
	}
}

func TestRecover_ReportsPanic(t *testing.T) {
	h := &capturingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("exploded")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("reported panics = %d, want 1", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "test.op" || p.Value != "exploded" {
		t.Errorf("panic = %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}
