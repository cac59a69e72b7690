package main

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// runCapture invokes an external command and returns its output streams,
// trimmed of surrounding whitespace. dir sets the working directory when
// non-empty. A non-zero exit or spawn failure comes back through err along
// with whatever stderr was produced, so callers can embed the failure text
// in their output instead of aborting a batch.
func runCapture(ctx context.Context, dir string, argv ...string) (stdout, stderr string, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if dir != "" {
		cmd.Dir = dir
	}
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return strings.TrimSpace(outBuf.String()), strings.TrimSpace(errBuf.String()), err
}

// failureText picks the most useful text for reporting a command failure:
// the tool's stderr when present, otherwise the error itself.
func failureText(stderr string, err error) string {
	if stderr != "" {
		return stderr
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
