// Package linepipes runs an external tool and exposes its output as a
// channel of lines, which is the shape both audit pipelines consume.
package linepipes

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"strings"

	"crateaudit/logging"
)

// Run starts prog with the given arguments and streams its combined stdout
// and stderr line by line, for callers that relay everything to the user.
func Run(prog string, args ...string) (lines chan string, errors chan error) {
	return run(prog, args, true)
}

// RunStdout starts prog and streams only its stdout. The structured record
// streams the audit pipelines parse are stdout-only; human progress written
// to stderr passes through to the caller's stderr untouched.
func RunStdout(prog string, args ...string) (lines chan string, errors chan error) {
	return run(prog, args, false)
}

// run wires the process pipes. The errors channel delivers at most one
// error: either a startup failure or the process exit status.
func run(prog string, args []string, combineStderr bool) (lines chan string, errors chan error) {
	lines = make(chan string)
	errors = make(chan error, 1)
	logging.Logger.Debugw("executing", "prog", prog, "args", strings.Join(args, " "))
	cmd := exec.Command(prog, args...)
	cmd.Stdin = os.Stdin
	pipeReader, pipeWriter, err := os.Pipe()
	if err != nil {
		errors <- err
		close(lines)
		close(errors)
		return lines, errors
	}
	cmd.Stdout = pipeWriter
	if combineStderr {
		cmd.Stderr = pipeWriter
	} else {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Start(); err != nil {
		errors <- err
		close(lines)
		close(errors)
		return lines, errors
	}
	go func() {
		defer close(lines)
		s := bufio.NewScanner(pipeReader)
		// cargo metadata emits the whole document on a single line.
		s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for s.Scan() {
			lines <- s.Text()
		}
	}()
	go func() {
		defer close(errors)
		if err := cmd.Wait(); err != nil {
			errors <- err
		}
		pipeWriter.Close()
	}()
	return lines, errors
}

// Wait drains the errors channel once the lines channel has been consumed.
// A non-zero exit status is returned as nil when allowExitError is set, since
// linters conventionally exit non-zero when they find something.
func Wait(errors <-chan error, allowExitError bool) error {
	err, _ := <-errors
	if err == nil {
		return nil
	}
	if _, isExit := err.(*exec.ExitError); isExit && allowExitError {
		logging.Logger.Debugw("tool exited non-zero", "err", err)
		return nil
	}
	return err
}

// Out copies the lines to stdout and reports the process result.
func Out(lines <-chan string, errors <-chan error) error {
	for line := range lines {
		if _, err := os.Stdout.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err, _ := <-errors; err != nil {
		return err
	}
	return nil
}

// All collects the complete output into a single string.
func All(lines <-chan string, errors <-chan error) (string, error) {
	var buffer bytes.Buffer
	for line := range lines {
		buffer.WriteString(line)
		buffer.WriteByte('\n')
	}
	if err, _ := <-errors; err != nil {
		return "", err
	}
	return buffer.String(), nil
}
