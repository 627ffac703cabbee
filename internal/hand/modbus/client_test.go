// internal/hand/modbus/client_test.go
package modbus

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tamzrod/touchhand/internal/hand"
)

func TestPackRegisters_BigEndian(t *testing.T) {
	got := packRegisters([]uint16{0x0102, 0xFFFF, 0x0000})
	want := []byte{0x01, 0x02, 0xFF, 0xFF, 0x00, 0x00}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("packRegisters mismatch (-want +got):\n%s", diff)
	}
}

func TestUnpackRegisters_DropsTrailingByte(t *testing.T) {
	got := unpackRegisters([]byte{0x07, 0xD0, 0x00, 0x64, 0xAA})
	want := []uint16{2000, 100}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unpackRegisters mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_RequiresEndpoint(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for empty endpoint")
	}
}

func TestNew_RejectsUnknownMode(t *testing.T) {
	if _, err := New(Config{Mode: "udp", Endpoint: "127.0.0.1:502"}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestNew_ConnectFailureIsConnectionError(t *testing.T) {
	// port 1 on loopback is closed on any sane test host
	_, err := New(Config{Endpoint: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	if !errors.Is(err, hand.ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
}
