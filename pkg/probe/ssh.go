package probe

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os/exec"
	"strconv"
	"time"

	"ssh-sweep/pkg/model"
)

// commandGrace bounds how long the no-op remote command may run after the
// connection itself is up. Keeps a wedged session from stalling the pool.
const commandGrace = 15 * time.Second

// Prober runs one non-interactive SSH attempt per host. It shells out to the
// system OpenSSH client so stderr carries the diagnostic phrases Classify
// keys on; when no ssh binary is on PATH it falls back to the native client
// in native.go, same as the health reporter falls back from ping to a plain
// TCP dial.
type Prober struct {
	Timeout time.Duration

	sshPath string
}

// New builds a Prober with the given connect timeout. Locating the ssh
// binary happens once here, not per probe.
func New(timeout time.Duration) *Prober {
	p := &Prober{Timeout: timeout}
	path, err := exec.LookPath("ssh")
	if err != nil {
		log.Printf("ssh binary not found, using built-in client: %v", err)
		return p
	}
	p.sshPath = path
	return p
}

// Probe issues exactly one connection attempt to spec and captures its
// outcome. It never prompts: BatchMode forces authentication to fail rather
// than wait for input, and host keys are accepted unconditionally (a
// deliberate trade-off for a one-shot reachability sweep; nothing is written
// to any known_hosts file). A failed attempt is data, never an error.
func (p *Prober) Probe(ctx context.Context, spec model.HostSpec) model.Outcome {
	if p.sshPath == "" {
		return p.probeNative(ctx, spec)
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout+commandGrace)
	defer cancel()

	target := spec.Host
	if spec.User != "" {
		target = spec.User + "@" + spec.Host
	}
	args := []string{
		"-o", "BatchMode=yes",
		"-o", "NumberOfPasswordPrompts=0",
		"-o", "StrictHostKeyChecking=no",
		"-o", "UserKnownHostsFile=/dev/null",
		"-o", "ConnectTimeout=" + strconv.Itoa(int(p.Timeout.Seconds())),
		"-p", strconv.Itoa(spec.Port),
		target,
		"true",
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.sshPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	out := model.Outcome{Stdout: stdout.String(), Stderr: stderr.String()}
	switch {
	case err == nil:
		out.ExitCode = 0
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		// ssh was killed at the deadline; it rarely gets to write a
		// diagnostic first, so synthesize one the classifier knows.
		out.ExitCode = 255
		if out.Stderr == "" {
			out.Stderr = "connection timed out"
		}
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
		} else {
			out.ExitCode = 255
			if out.Stderr == "" {
				out.Stderr = err.Error()
			}
		}
	}
	return out
}

// Run probes spec and returns the finished, classified record.
func (p *Prober) Run(ctx context.Context, spec model.HostSpec) model.Result {
	kind, msg := Classify(p.Probe(ctx, spec))
	return model.Result{
		Timestamp: time.Now(),
		Host:      spec.Host,
		User:      spec.User,
		Port:      spec.Port,
		Status:    kind,
		Message:   msg,
	}
}
