package probe

import (
	"bytes"
	"context"
	"errors"
	"net"
	"os"
	"os/user"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"

	"ssh-sweep/pkg/model"
)

// probeNative is the fallback path when no ssh binary exists: a minimal
// client on golang.org/x/crypto/ssh. Auth is agent-only (still strictly
// non-interactive) and host keys are ignored, matching the exec path.
// Failures become an Outcome whose stderr is the error text; the classifier
// rule set carries the net/ssh package phrasings alongside OpenSSH's.
func (p *Prober) probeNative(ctx context.Context, spec model.HostSpec) model.Outcome {
	username := spec.User
	if username == "" {
		if u, err := user.Current(); err == nil {
			username = u.Username
		}
	}

	cfg := &ssh.ClientConfig{
		User:            username,
		Auth:            agentAuth(),
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         p.Timeout,
	}

	dialer := net.Dialer{Timeout: p.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", spec.Addr())
	if err != nil {
		return model.Outcome{ExitCode: 255, Stderr: err.Error()}
	}
	defer conn.Close()
	// ClientConfig.Timeout only covers the dial; a deadline on the raw conn
	// bounds the handshake and the no-op command too.
	_ = conn.SetDeadline(time.Now().Add(p.Timeout + commandGrace))

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, spec.Addr(), cfg)
	if err != nil {
		return model.Outcome{ExitCode: 255, Stderr: err.Error()}
	}
	client := ssh.NewClient(sshConn, chans, reqs)
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return model.Outcome{ExitCode: 255, Stderr: err.Error()}
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr
	err = session.Run("true")

	out := model.Outcome{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitStatus()
		} else {
			out.ExitCode = 255
			if out.Stderr == "" {
				out.Stderr = err.Error()
			}
		}
	}
	return out
}

// agentAuth returns agent-backed auth methods when SSH_AUTH_SOCK points at a
// live agent, otherwise none (the handshake then fails with an
// authentication error, which is exactly the signal we want to classify).
func agentAuth() []ssh.AuthMethod {
	sock := os.Getenv("SSH_AUTH_SOCK")
	if sock == "" {
		return nil
	}
	conn, err := net.Dial("unix", sock)
	if err != nil {
		return nil
	}
	ag := agent.NewClient(conn)
	return []ssh.AuthMethod{ssh.PublicKeysCallback(ag.Signers)}
}
