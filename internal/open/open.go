package open

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/index"
)

// OpenMessage opens the transcript at the header line of the indexed
// message seq.
func OpenMessage(db *index.DB, path string, seq int) error {
	msg, err := db.GetMessage(seq)
	if err != nil {
		return fmt.Errorf("get message: %w", err)
	}
	if msg == nil {
		return fmt.Errorf("message not found: %d", seq)
	}
	return OpenLine(path, msg.Line)
}

// OpenLine opens path in $EDITOR (less when unset) positioned at lineNum.
func OpenLine(path string, lineNum int) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	if lineNum < 1 {
		lineNum = 1
	}

	fields := strings.Fields(os.Getenv("EDITOR"))
	if len(fields) == 0 {
		fields = []string{"less"}
	}

	cmd := exec.Command(fields[0], append(fields[1:], editorArgs(fields[0], path, lineNum)...)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func editorArgs(editor, path string, lineNum int) []string {
	switch {
	case strings.Contains(editor, "vim") || strings.Contains(editor, "nvim"):
		return []string{fmt.Sprintf("+%d", lineNum), path}
	case strings.Contains(editor, "code"):
		return []string{"--goto", path + ":" + strconv.Itoa(lineNum)}
	case strings.Contains(editor, "less"), strings.Contains(editor, "nano"), strings.Contains(editor, "emacs"):
		return []string{"+" + strconv.Itoa(lineNum), path}
	default:
		return []string{path}
	}
}
