//go:build unix

package launcher

import (
	"os/exec"
	"syscall"
)

// detach starts the game in its own session so closing the launcher leaves it running.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
