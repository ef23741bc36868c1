package host

import (
	"context"
	"testing"

	"github.com/taigrr/rikimaru/internal/types"
)

func TestScripted_Pick(t *testing.T) {
	labels := []string{"a located at: cosmos/x/a", "b located at: cosmos/y/b"}

	tests := []struct {
		name      string
		selection string
		wantOK    bool
	}{
		{"offered label", labels[1], true},
		{"unknown label", "c located at: cosmos/z/c", false},
		{"dismiss", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScripted(tt.selection)
			got, ok, err := s.Pick(context.Background(), labels)
			if err != nil {
				t.Fatalf("Pick() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("Pick() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.selection {
				t.Errorf("Pick() = %q, want %q", got, tt.selection)
			}
			if len(s.Offered()) != len(labels) {
				t.Errorf("Offered() = %v, want %v", s.Offered(), labels)
			}
		})
	}
}

func TestScripted_PickCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := NewScripted("x").Pick(ctx, []string{"x"}); err == nil {
		t.Error("Pick() error = nil, want context error")
	}
}

func TestScripted_Records(t *testing.T) {
	s := NewScripted("")
	s.Show(context.Background(), types.Panel{Title: "one"})
	s.Notify(context.Background(), "careful")

	if len(s.Panels()) != 1 || s.Panels()[0].Title != "one" {
		t.Errorf("Panels() = %v", s.Panels())
	}
	if len(s.Messages()) != 1 || s.Messages()[0] != "careful" {
		t.Errorf("Messages() = %v", s.Messages())
	}
}
