package actions

import (
	"errors"
	"testing"
)

func TestOpenURLCmd_Fallbacks(t *testing.T) {
	var opened string
	msg := OpenURLCmd("https://example.com/p/a",
		func(u string) error { opened = u; return nil },
		func(string) error { return nil },
	)()
	success, ok := msg.(URLActionSuccessMsg)
	if !ok || !success.Opened {
		t.Fatalf("expected opened success, got %T %+v", msg, success)
	}
	if opened != "https://example.com/p/a" {
		t.Fatalf("unexpected opened URL: %q", opened)
	}

	msg = OpenURLCmd("https://example.com/p/a",
		func(string) error { return errors.New("open failed") },
		func(string) error { return nil },
	)()
	success, ok = msg.(URLActionSuccessMsg)
	if !ok || success.Opened {
		t.Fatalf("expected copy fallback success, got %T %+v", msg, success)
	}

	msg = OpenURLCmd("https://example.com/p/a",
		func(string) error { return errors.New("open failed") },
		func(string) error { return errors.New("copy failed") },
	)()
	if _, ok := msg.(URLActionErrorMsg); !ok {
		t.Fatalf("expected URLActionErrorMsg, got %T", msg)
	}
}

func TestCopyURLCmd(t *testing.T) {
	msg := CopyURLCmd("https://example.com", func(string) error { return nil })()
	if _, ok := msg.(URLActionSuccessMsg); !ok {
		t.Fatalf("expected URLActionSuccessMsg, got %T", msg)
	}
	msg = CopyURLCmd("https://example.com", func(string) error { return errors.New("copy failed") })()
	if _, ok := msg.(URLActionErrorMsg); !ok {
		t.Fatalf("expected URLActionErrorMsg, got %T", msg)
	}
	msg = CopyURLCmd("https://example.com", nil)()
	if _, ok := msg.(URLActionErrorMsg); !ok {
		t.Fatalf("expected URLActionErrorMsg without copy func, got %T", msg)
	}
}

func TestClearStatusCmd(t *testing.T) {
	if cmd := ClearStatusCmd(3, 0); cmd == nil {
		t.Fatal("expected tick command")
	}
}
