package assets

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestEmbeddedLoader - Built-in styles and scripts
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{name: "base", styleName: StyleBase, wantContain: ".toc-title"},
		{name: "light theme", styleName: StyleThemeLight, wantContain: "--bg-primary: #ffffff"},
		{name: "dark theme", styleName: StyleThemeDark, wantContain: "--bg-primary: #0d1117"},
		{name: "copy button", styleName: StyleCopyButton, wantContain: ".copy-button.copied"},
		{name: "math", styleName: StyleMath, wantContain: ".math-display"},
		{name: "nonexistent", styleName: "nonexistent-style-xyz", wantErr: ErrStyleNotFound},
		{name: "empty name", styleName: "", wantErr: ErrInvalidAssetName},
		{name: "path traversal", styleName: "../secret", wantErr: ErrInvalidAssetName},
		{name: "extension included", styleName: "base.css", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.styleName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) content should contain %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_LoadScript(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		scriptName  string
		wantErr     error
		wantContain string
	}{
		{name: "copy button", scriptName: ScriptCopyButton, wantContain: "navigator.clipboard.writeText"},
		{name: "toc scroll", scriptName: ScriptTOCScroll, wantContain: "scrollIntoView"},
		{name: "nonexistent", scriptName: "nope", wantErr: ErrScriptNotFound},
		{name: "traversal", scriptName: "..\\x", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadScript(tt.scriptName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadScript(%q) error = %v, want %v", tt.scriptName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadScript(%q) unexpected error: %v", tt.scriptName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadScript(%q) content should contain %q", tt.scriptName, tt.wantContain)
			}
		})
	}
}

func TestThemeStylesDefineSameVariables(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	light, err := loader.LoadStyle(StyleThemeLight)
	if err != nil {
		t.Fatal(err)
	}
	dark, err := loader.LoadStyle(StyleThemeDark)
	if err != nil {
		t.Fatal(err)
	}

	vars := func(css string) []string {
		var out []string
		for _, line := range strings.Split(css, "\n") {
			line = strings.TrimSpace(line)
			if name, _, ok := strings.Cut(line, ":"); ok && strings.HasPrefix(name, "--") {
				out = append(out, name)
			}
		}
		return out
	}

	lv, dv := vars(light), vars(dark)
	if len(lv) == 0 {
		t.Fatal("light theme defines no variables")
	}
	if strings.Join(lv, ",") != strings.Join(dv, ",") {
		t.Errorf("theme variables differ:\nlight: %v\ndark:  %v", lv, dv)
	}
}

func TestBuiltinNames(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	for _, name := range []string{StyleBase, StyleThemeLight, StyleThemeDark, StyleCopyButton, StyleMath} {
		if _, err := loader.LoadStyle(name); err != nil {
			t.Errorf("LoadStyle(%q) error = %v", name, err)
		}
	}
	for _, name := range []string{ScriptCopyButton, ScriptTOCScroll} {
		if _, err := loader.LoadScript(name); err != nil {
			t.Errorf("LoadScript(%q) error = %v", name, err)
		}
	}
}
