package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/loutube-cli/loutube/log"
)

// tailLines is the number of trailing output lines retained for diagnostics.
const tailLines = 20

// Command is one external invocation: a binary name and its argument vector.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner abstracts child process execution so the interactive flow can be
// exercised with stubs in tests.
type Runner interface {
	// Run executes the command, forwarding combined output to the terminal in
	// real time. A non-zero exit yields *ExternalToolError.
	Run(ctx context.Context, cmd Command) error

	// Output executes the command and captures its standard output.
	Output(ctx context.Context, cmd Command) (string, error)

	// Pipe runs producer and consumer concurrently, connected stdout to stdin.
	// When either exits, the other is terminated.
	Pipe(ctx context.Context, producer, consumer Command) error
}

// Standard runs commands against the real operating system.
type Standard struct {
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Runner wired to the caller's terminal streams.
func New() *Standard {
	return &Standard{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Resolve verifies that a binary is reachable on the execution path.
// A missing binary yields *MissingDependencyError with an install hint.
func Resolve(binary string) error {
	if _, err := exec.LookPath(binary); err != nil {
		return &MissingDependencyError{Binary: binary, Hint: InstallHint(binary)}
	}
	return nil
}

func (s *Standard) Run(ctx context.Context, command Command) error {
	if err := Resolve(command.Name); err != nil {
		return err
	}

	tail := newTailBuffer(tailLines)

	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdout = io.MultiWriter(s.Stdout, tail)
	cmd.Stderr = io.MultiWriter(s.Stderr, tail)

	log.Debugf("running: %s", command)

	if err := cmd.Run(); err != nil {
		return asToolError(command.Name, err, tail.String())
	}
	return nil
}

func (s *Standard) Output(ctx context.Context, command Command) (string, error) {
	if err := Resolve(command.Name); err != nil {
		return "", err
	}

	tail := newTailBuffer(tailLines)

	var out strings.Builder
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdout = &out
	cmd.Stderr = tail

	log.Debugf("probing: %s", command)

	if err := cmd.Run(); err != nil {
		return "", asToolError(command.Name, err, tail.String())
	}
	return out.String(), nil
}

func (s *Standard) Pipe(ctx context.Context, producer, consumer Command) error {
	for _, name := range []string{producer.Name, consumer.Name} {
		if err := Resolve(name); err != nil {
			return err
		}
	}

	tail := newTailBuffer(tailLines)

	prod := exec.CommandContext(ctx, producer.Name, producer.Args...)
	prod.SysProcAttr = sysProcAttr()
	prod.Stderr = tail

	pipe, err := prod.StdoutPipe()
	if err != nil {
		return err
	}

	cons := exec.CommandContext(ctx, consumer.Name, consumer.Args...)
	cons.SysProcAttr = sysProcAttr()
	cons.Stdin = pipe

	if err := prod.Start(); err != nil {
		return asToolError(producer.Name, err, tail.String())
	}
	if err := cons.Start(); err != nil {
		_ = killProcess(prod)
		_ = prod.Wait()
		return asToolError(consumer.Name, err, tail.String())
	}

	log.Debugf("piping: %s | %s", producer, consumer)

	// The consumer received the pipe as a plain file descriptor at Start, so
	// reaping the producer concurrently cannot cut the stream short.
	prodDone := make(chan error, 1)
	go func() { prodDone <- prod.Wait() }()

	// Block on the consumer: if the producer dies first the pipe reaches EOF
	// and the consumer exits naturally; if the consumer exits first the
	// producer is terminated below.
	consErr := cons.Wait()

	// Only a producer that finished before the consumer returned failed on
	// its own. One still running was outlived (the user quit the player) and
	// its status after the kill means nothing.
	var prodErr error
	select {
	case prodErr = <-prodDone:
	default:
		_ = killProcess(prod)
		<-prodDone
	}

	if consErr != nil {
		return asToolError(consumer.Name, consErr, tail.String())
	}

	var exitErr *exec.ExitError
	if errors.As(prodErr, &exitErr) && exitErr.ExitCode() > 0 {
		return asToolError(producer.Name, prodErr, tail.String())
	}

	return nil
}

// asToolError converts an exec failure into the runner error taxonomy.
func asToolError(name string, err error, tail string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExternalToolError{Name: name, ExitCode: exitErr.ExitCode(), Tail: tail}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return &MissingDependencyError{Binary: name, Hint: InstallHint(name)}
	}
	return err
}
