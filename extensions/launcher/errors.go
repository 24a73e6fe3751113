package launcher

import (
	"os/exec"
	"strconv"
	"syscall"
)

// DirectoryError is returned when the working directory cannot be changed.
// The message is the operating system's, unchanged.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return e.Err.Error()
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// ChildStartError is returned when the runtime process cannot be started.
type ChildStartError struct {
	Command []string
	Err     error
}

func (e *ChildStartError) Error() string {
	return e.Err.Error()
}

func (e *ChildStartError) Unwrap() error {
	return e.Err
}

// ExitStatus reports a child that ran and exited non-zero.
type ExitStatus struct {
	Code int
}

func (e *ExitStatus) Error() string {
	return "exit status " + strconv.Itoa(e.Code)
}

func exitStatusOf(err *exec.ExitError) *ExitStatus {
	code := err.ExitCode()
	if status, loaded := err.Sys().(syscall.WaitStatus); loaded && status.Signaled() {
		code = 128 + int(status.Signal())
	}
	if code <= 0 {
		code = 1
	}
	return &ExitStatus{Code: code}
}
