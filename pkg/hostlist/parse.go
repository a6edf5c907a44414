package hostlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ssh-sweep/pkg/model"
)

// DefaultPort is used when an entry carries no explicit port.
const DefaultPort = 22

// Parse turns one host-list line into a HostSpec. Accepted forms:
// "host", "host:port", "user@host", "user@host:port".
// Blank lines and lines starting with # yield (zero, false).
// Parsing is deliberately permissive: whatever follows the last @ and
// precedes the last : is taken as the host verbatim, and a non-numeric
// port falls back to the default. Bad hosts surface later as probe
// failures, not parse errors.
func Parse(line, defaultUser string) (model.HostSpec, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return model.HostSpec{}, false
	}

	spec := model.HostSpec{User: defaultUser, Port: DefaultPort}

	if i := strings.LastIndex(line, "@"); i >= 0 {
		spec.User = line[:i]
		line = line[i+1:]
	}
	if i := strings.LastIndex(line, ":"); i >= 0 {
		if p, err := strconv.Atoi(line[i+1:]); err == nil && p >= 1 && p <= 65535 {
			spec.Port = p
			line = line[:i]
		}
	}
	spec.Host = line
	return spec, true
}

// ParseReader reads host-list lines from r and returns the specs in input
// order. Lines Parse skips are dropped silently.
func ParseReader(r io.Reader, defaultUser string) ([]model.HostSpec, error) {
	var specs []model.HostSpec
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if spec, ok := Parse(sc.Text(), defaultUser); ok {
			specs = append(specs, spec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read host list: %w", err)
	}
	return specs, nil
}

// LoadFile reads the host list at path. A missing or unreadable file is the
// one fatal precondition of a run, so the error is returned as-is for the
// caller to report and abort on.
func LoadFile(path, defaultUser string) ([]model.HostSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open host list: %w", err)
	}
	defer f.Close()
	return ParseReader(f, defaultUser)
}
