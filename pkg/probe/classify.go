package probe

import (
	"fmt"
	"strings"

	"ssh-sweep/pkg/model"
)

// maxMessage caps the message carried on a Result.
const maxMessage = 200

// rule maps stderr substrings to one ErrorKind. Matching is case-insensitive.
type rule struct {
	kind     model.ErrorKind
	patterns []string
}

// rules is evaluated top-down and stops at the first hit. The order is
// load-bearing: several OpenSSH diagnostics embed phrases that also appear
// in lower-priority scenarios, so earlier rules must win. Each rule also
// carries the phrasings the native fallback client produces for the same
// condition.
var rules = []rule{
	{model.KindAuthFailed, []string{"permission denied", "authentication failure", "unable to authenticate"}},
	{model.KindNetwork, []string{"no route to host"}},
	{model.KindTimeout, []string{"connection timed out", "i/o timeout", "operation timed out"}},
	{model.KindRefused, []string{"connection refused"}},
	{model.KindHostKey, []string{"host key verification failed", "host key"}},
	{model.KindDNS, []string{"name or service not known", "no such host"}},
	{model.KindReset, []string{"connection reset by peer", "broken pipe"}},
}

// Classify maps one raw outcome to its ErrorKind and display message.
// Pure: the same outcome always classifies the same way. Exit code 0 is OK
// regardless of stderr; anything else is matched against the stderr text and
// falls back to UNKNOWN.
func Classify(out model.Outcome) (model.ErrorKind, string) {
	if out.ExitCode == 0 {
		msg := condense(out.Stdout)
		if msg == "" {
			msg = "OK"
		}
		return model.KindOK, msg
	}

	folded := strings.ToLower(out.Stderr)
	for _, r := range rules {
		for _, p := range r.patterns {
			if strings.Contains(folded, p) {
				return r.kind, failMessage(out)
			}
		}
	}
	return model.KindUnknown, failMessage(out)
}

// failMessage condenses stderr for display, or names the exit code when the
// probe produced no diagnostic text at all.
func failMessage(out model.Outcome) string {
	if msg := condense(out.Stderr); msg != "" {
		return msg
	}
	return fmt.Sprintf("exit code %d with no output", out.ExitCode)
}

// condense trims s, folds embedded newlines and tabs into single spaces so
// the text stays on one table row, and truncates to maxMessage.
func condense(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > maxMessage {
		s = s[:maxMessage]
	}
	return s
}
