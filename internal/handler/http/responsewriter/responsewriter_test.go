package responsewriter_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"newsapi/internal/handler/http/responsewriter"
)

func TestWrap_Defaults(t *testing.T) {
	w := responsewriter.Wrap(httptest.NewRecorder())

	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", w.StatusCode(), http.StatusOK)
	}
	if w.BytesWritten() != 0 {
		t.Errorf("BytesWritten = %d, want 0", w.BytesWritten())
	}
}

func TestWriteHeader_RecordedOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := responsewriter.Wrap(rr)

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)

	if w.StatusCode() != http.StatusAccepted {
		t.Errorf("StatusCode = %d, want %d", w.StatusCode(), http.StatusAccepted)
	}
	if rr.Code != http.StatusAccepted {
		t.Errorf("recorder code = %d, want %d", rr.Code, http.StatusAccepted)
	}
}

func TestWrite_CountsBytesAndDefaultsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := responsewriter.Wrap(rr)

	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("Write err=%v", err)
	}
	if _, err := w.Write([]byte(" world")); err != nil {
		t.Fatalf("Write err=%v", err)
	}

	if w.BytesWritten() != 11 {
		t.Errorf("BytesWritten = %d, want 11", w.BytesWritten())
	}
	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", w.StatusCode(), http.StatusOK)
	}
	if rr.Body.String() != "hello world" {
		t.Errorf("body = %q, want %q", rr.Body.String(), "hello world")
	}
}
