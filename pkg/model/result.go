package model

import (
	"net"
	"strconv"
	"time"
)

// ErrorKind is the fixed classification of one probe outcome.
type ErrorKind string

const (
	KindOK         ErrorKind = "OK"
	KindTimeout    ErrorKind = "TIMEOUT"
	KindAuthFailed ErrorKind = "AUTH_FAILED"
	KindNetwork    ErrorKind = "NETWORK"
	KindRefused    ErrorKind = "REFUSED"
	KindHostKey    ErrorKind = "HOSTKEY"
	KindDNS        ErrorKind = "DNS"
	KindReset      ErrorKind = "RESET"
	KindUnknown    ErrorKind = "UNKNOWN"
)

// Kinds lists every ErrorKind in summary display order.
// Reporters iterate this so zero counts still show up.
var Kinds = []ErrorKind{
	KindOK,
	KindTimeout,
	KindAuthFailed,
	KindNetwork,
	KindRefused,
	KindHostKey,
	KindDNS,
	KindReset,
	KindUnknown,
}

// HostSpec is one probe target parsed from the host list. Immutable once built.
type HostSpec struct {
	User string `json:"user,omitempty"`
	Host string `json:"host"`
	Port int    `json:"port"`
}

// Addr returns host:port for display and dialing. IPv6 hosts are bracketed.
func (h HostSpec) Addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

// Outcome carries the raw capture of one connection attempt,
// before classification.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Result is the final record for one host: the spec it came from, the
// classified status and a short human message. Immutable once built.
type Result struct {
	Timestamp time.Time `json:"timestamp"`
	Host      string    `json:"host"`
	User      string    `json:"user,omitempty"`
	Port      int       `json:"port"`
	Status    ErrorKind `json:"status"`
	Message   string    `json:"message"`
}
