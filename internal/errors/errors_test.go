package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(fmt.Errorf("boom")); got != "Error: boom" {
		t.Errorf("Format(boom) = %q", got)
	}
}

func TestFormatf(t *testing.T) {
	if got := Formatf("habit %d missing", 7); got != "Error: habit 7 missing" {
		t.Errorf("Formatf = %q", got)
	}
}
