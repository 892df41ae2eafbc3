package confirm

import "golang.org/x/sys/unix"

// flushInput discards bytes received by the terminal but not yet read.
func flushInput(fd int) error {
	return unix.IoctlSetInt(fd, unix.TCFLSH, unix.TCIFLUSH)
}
