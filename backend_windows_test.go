//go:build windows

package rawterm

import (
	"testing"

	"golang.org/x/sys/windows"
)

func keyRecord(ch uint16, down int32) windows.InputRecord {
	var rec windows.InputRecord
	rec.EventType = windows.KEY_EVENT
	ke := rec.KeyEvent()
	ke.KeyDown = down
	ke.UnicodeChar = ch
	return rec
}

func TestKeyDownChar(t *testing.T) {
	tests := []struct {
		name string
		rec  windows.InputRecord
		want byte
		ok   bool
	}{
		{"key down letter", keyRecord('a', 1), 0x61, true},
		{"key down ctrl-c", keyRecord(0x03, 1), 0x03, true},
		{"key up", keyRecord('a', 0), 0, false},
		{"modifier press only", keyRecord(0, 1), 0, false},
		{"mouse record", windows.InputRecord{EventType: windows.MOUSE_EVENT}, 0, false},
		{"resize record", windows.InputRecord{EventType: windows.WINDOW_BUFFER_SIZE_EVENT}, 0, false},
		{"focus record", windows.InputRecord{EventType: windows.FOCUS_EVENT}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyDownChar(&tt.rec)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Errorf("expected byte 0x%02X, got 0x%02X", tt.want, got)
			}
		})
	}
}
