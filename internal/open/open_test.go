package open

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEditorArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		editor string
		want   []string
	}{
		{"nvim", []string{"+12", "chat.txt"}},
		{"/usr/bin/vim", []string{"+12", "chat.txt"}},
		{"code", []string{"--goto", "chat.txt:12"}},
		{"less", []string{"+12", "chat.txt"}},
		{"nano", []string{"+12", "chat.txt"}},
		{"subl", []string{"chat.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.editor, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, editorArgs(tt.editor, "chat.txt", 12)); diff != "" {
				t.Errorf("editorArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOpenLineMissingFile(t *testing.T) {
	t.Parallel()

	if err := OpenLine(filepath.Join(t.TempDir(), "gone.txt"), 3); err == nil {
		t.Error("OpenLine() error = nil, want error")
	}
}
