package clipboard

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// Write copies a yanked roll line ("2d6 + 1 = 9") to the system clipboard.
// It tries the native clipboard first (wl-copy, xclip, pbcopy, etc.) then
// falls back to OSC52 so yanks still land when the roller runs over SSH or
// inside tmux.
func Write(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	return writeOSC52(text)
}

// writeOSC52 asks the terminal emulator itself to set the clipboard via the
// OSC 52 escape sequence. Emitted on stderr so it never lands in the
// alternate-screen output bubbletea owns.
func writeOSC52(text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	seq := fmt.Sprintf("\x1b]52;c;%s\x07", encoded)
	_, err := os.Stderr.Write([]byte(seq))
	return err
}
