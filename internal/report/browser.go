package report

import (
	"os/exec"
	"runtime"
)

// OpenBrowser opens the given path or URL in the system default browser.
// Best effort: on unsupported platforms or launch failure the caller just
// sees the printed path instead.
func OpenBrowser(target string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux":
		cmd = exec.Command("xdg-open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return
	}
	_ = cmd.Start()
}
