package present

import (
	"errors"
	"testing"

	"github.com/taigrr/rikimaru/internal/types"
)

func TestLabel(t *testing.T) {
	item := types.SearchResultItem{Name: "a.cpp", Path: "code/x/a.cpp"}
	want := "a.cpp located at: cosmos/code/x/a.cpp"
	if got := Label(item, "cosmos"); got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		wantName string
		wantPath string
		wantErr  bool
	}{
		{
			name:     "nested path",
			label:    "a.cpp located at: cosmos/code/x/a.cpp",
			wantName: "a.cpp",
			wantPath: "code/x/a.cpp",
		},
		{
			name:     "file at repository root",
			label:    "README.md located at: cosmos/README.md",
			wantName: "README.md",
			wantPath: "README.md",
		},
		{
			name:    "single segment",
			label:   "a.cpp located at: cosmos",
			wantErr: true,
		},
		{
			name:    "no separator",
			label:   "a.cpp",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, relPath, err := ParseLabel(tt.label)
			if tt.wantErr {
				if !errors.Is(err, ErrResolutionMiss) {
					t.Errorf("ParseLabel() error = %v, want ErrResolutionMiss", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLabel() error = %v", err)
			}
			if name != tt.wantName || relPath != tt.wantPath {
				t.Errorf("ParseLabel() = (%q, %q), want (%q, %q)", name, relPath, tt.wantName, tt.wantPath)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	set := types.ResultSet{
		{Name: "a.cpp", Path: "code/x/a.cpp", APIURL: "A"},
		{Name: "a.cpp", Path: "code/y/a.cpp", APIURL: "B"},
	}

	t.Run("matches by path", func(t *testing.T) {
		item, err := Resolve("a.cpp located at: cosmos/code/y/a.cpp", set)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if item.APIURL != "B" {
			t.Errorf("Resolve() APIURL = %q, want B", item.APIURL)
		}
	})

	t.Run("round trips every label", func(t *testing.T) {
		for i, label := range Labels(set, "cosmos") {
			item, err := Resolve(label, set)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", label, err)
			}
			if item != set[i] {
				t.Errorf("Resolve(%q) = %+v, want %+v", label, item, set[i])
			}
		}
	})

	t.Run("miss", func(t *testing.T) {
		_, err := Resolve("a.cpp located at: cosmos/code/z/a.cpp", set)
		if !errors.Is(err, ErrResolutionMiss) {
			t.Errorf("Resolve() error = %v, want ErrResolutionMiss", err)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		dup := append(types.ResultSet{}, set[0], set[0])
		_, err := Resolve("a.cpp located at: cosmos/code/x/a.cpp", dup)
		if !errors.Is(err, ErrResolutionAmbiguous) {
			t.Fatalf("Resolve() error = %v, want ErrResolutionAmbiguous", err)
		}
		var rerr *ResolutionError
		if !errors.As(err, &rerr) || rerr.Matches != 2 {
			t.Errorf("Resolve() error = %#v, want 2 matches", err)
		}
	})
}
