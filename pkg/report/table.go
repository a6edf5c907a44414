package report

import (
	"fmt"
	"io"
	"strconv"

	"ssh-sweep/pkg/model"
	"ssh-sweep/pkg/runner"
)

// RenderTable writes the per-host table and the kind summary to w. The
// snapshot is already a copy, so rendering never touches aggregator state.
func RenderTable(w io.Writer, snap runner.Snapshot) {
	hostW, portW, statusW := len("HOST"), len("PORT"), len("STATUS")
	for _, r := range snap.Results {
		if len(r.Host) > hostW {
			hostW = len(r.Host)
		}
		if n := len(strconv.Itoa(r.Port)); n > portW {
			portW = n
		}
		if len(r.Status) > statusW {
			statusW = len(string(r.Status))
		}
	}

	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s\n", hostW, "HOST", portW, "PORT", statusW, "STATUS", "MESSAGE")
	for _, r := range snap.Results {
		fmt.Fprintf(w, "%-*s  %-*d  %-*s  %s\n", hostW, r.Host, portW, r.Port, statusW, r.Status, r.Message)
	}

	fmt.Fprintf(w, "\nSummary (%d hosts):\n", snap.Total)
	for _, kind := range model.Kinds {
		fmt.Fprintf(w, "  %-12s %d\n", kind, snap.Counts[kind])
	}
}
