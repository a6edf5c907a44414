//go:build !consul

package hostlist

import (
	"fmt"

	"ssh-sweep/pkg/model"
)

// LoadConsul reports that the binary was built without consul support.
func LoadConsul(addr, prefix, defaultUser string) ([]model.HostSpec, error) {
	return nil, fmt.Errorf("consul host source requested (addr=%s prefix=%s) but binary built without consul tag", addr, prefix)
}
