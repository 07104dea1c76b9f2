package yamlutil_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/alnah/go-rendermd/internal/yamlutil"
)

type rcFile struct {
	Theme        *string `yaml:"theme"`
	TOC          *bool   `yaml:"toc"`
	CleanupDelay *int    `yaml:"cleanupDelay"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - YAML and JSON documents, unknown keys ignored
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      string
		wantErr   error
		wantTheme string
		wantTOC   *bool
	}{
		{
			name:      "yaml document",
			data:      "theme: dark\ntoc: false\n",
			wantTheme: "dark",
			wantTOC:   boolPtr(false),
		},
		{
			name:      "json document",
			data:      `{"theme": "light", "toc": true}`,
			wantTheme: "light",
			wantTOC:   boolPtr(true),
		},
		{
			name:      "unknown keys ignored",
			data:      `{"theme": "auto", "colour": "blue"}`,
			wantTheme: "auto",
		},
		{
			name:    "whitespace only",
			data:    "  \n\t",
			wantErr: yamlutil.ErrEmptyDocument,
		},
		{
			name:    "empty",
			data:    "",
			wantErr: yamlutil.ErrEmptyDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got rcFile
			err := yamlutil.Unmarshal([]byte(tt.data), &got)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			if got.Theme == nil || *got.Theme != tt.wantTheme {
				t.Errorf("Theme = %v, want %q", got.Theme, tt.wantTheme)
			}
			if tt.wantTOC != nil && (got.TOC == nil || *got.TOC != *tt.wantTOC) {
				t.Errorf("TOC = %v, want %v", got.TOC, *tt.wantTOC)
			}
			if tt.wantTOC == nil && got.TOC != nil {
				t.Errorf("TOC = %v, want unset", *got.TOC)
			}
		})
	}
}

func TestUnmarshal_MalformedInput(t *testing.T) {
	t.Parallel()

	var got rcFile
	err := yamlutil.Unmarshal([]byte(`{"theme": "dark",`), &got)
	if err == nil {
		t.Fatal("Unmarshal() expected error for truncated JSON")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error %q should carry the yamlutil prefix", err)
	}
}

func TestUnmarshal_NilDestination(t *testing.T) {
	t.Parallel()

	err := yamlutil.Unmarshal([]byte("theme: dark"), nil)
	if !errors.Is(err, yamlutil.ErrNilDestination) {
		t.Errorf("Unmarshal(nil) error = %v, want ErrNilDestination", err)
	}
}

func TestUnmarshal_TooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("theme: " + strings.Repeat("x", yamlutil.MaxInputSize))
	var got rcFile
	err := yamlutil.Unmarshal(data, &got)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestDecode - Reading from a stream
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	var got rcFile
	if err := yamlutil.Decode(strings.NewReader("theme: dark\ncleanupDelay: 250\n"), &got); err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if got.Theme == nil || *got.Theme != "dark" || got.CleanupDelay == nil || *got.CleanupDelay != 250 {
		t.Errorf("Decode() = %+v", got)
	}
}

func TestDecode_Limits(t *testing.T) {
	t.Parallel()

	var got rcFile
	huge := io.MultiReader(strings.NewReader("theme: "), strings.NewReader(strings.Repeat("x", 2*yamlutil.MaxInputSize)))
	if err := yamlutil.Decode(huge, &got); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Decode(huge) error = %v, want ErrInputTooLarge", err)
	}

	if err := yamlutil.Decode(strings.NewReader("theme: dark"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
		t.Errorf("Decode(nil) error = %v, want ErrNilDestination", err)
	}

	readErr := errors.New("disk gone")
	if err := yamlutil.Decode(iotest.ErrReader(readErr), &got); !errors.Is(err, readErr) {
		t.Errorf("Decode(failing reader) error = %v, want the read error", err)
	}
}

// ---------------------------------------------------------------------------
// TestEncode - Block-style output
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	theme := "dark"
	delay := 1500
	var buf bytes.Buffer
	if err := yamlutil.Encode(&buf, rcFile{Theme: &theme, CleanupDelay: &delay}); err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"theme: dark\n", "cleanupDelay: 1500\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("Encode() output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "{") {
		t.Errorf("Encode() should use block style:\n%s", out)
	}

	var back rcFile
	if err := yamlutil.Unmarshal(buf.Bytes(), &back); err != nil || *back.Theme != "dark" {
		t.Errorf("round trip = %+v, %v", back, err)
	}
}

func boolPtr(b bool) *bool { return &b }
