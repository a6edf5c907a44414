//go:build consul

package hostlist

import (
	"fmt"
	"strings"

	consulapi "github.com/hashicorp/consul/api"

	"ssh-sweep/pkg/model"
)

// LoadConsul reads every KV value under prefix from Consul and parses each
// value line-by-line like a host-list file (requires build tag consul).
func LoadConsul(addr, prefix, defaultUser string) ([]model.HostSpec, error) {
	cfg := consulapi.DefaultConfig()
	if addr != "" {
		cfg.Address = addr
	}
	cli, err := consulapi.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("consul client: %w", err)
	}
	pairs, _, err := cli.KV().List(prefix, nil)
	if err != nil {
		return nil, fmt.Errorf("consul list %q: %w", prefix, err)
	}
	var specs []model.HostSpec
	for _, kv := range pairs {
		got, err := ParseReader(strings.NewReader(string(kv.Value)), defaultUser)
		if err != nil {
			return nil, err
		}
		specs = append(specs, got...)
	}
	return specs, nil
}
