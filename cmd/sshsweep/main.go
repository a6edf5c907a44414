package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ssh-sweep/pkg/config"
	"ssh-sweep/pkg/hostlist"
	"ssh-sweep/pkg/model"
	"ssh-sweep/pkg/probe"
	"ssh-sweep/pkg/report"
	"ssh-sweep/pkg/runner"
	"ssh-sweep/pkg/sink"
	"ssh-sweep/pkg/version"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "sshsweep",
	Short: "Probe SSH reachability of many hosts in parallel",
	Long: `sshsweep reads a host list (one entry per line: host, host:port,
user@host or user@host:port), attempts one non-interactive SSH connection
per host under a bounded concurrency limit, classifies every failure, and
prints a per-host table plus a summary of all outcome kinds.

Authentication never prompts: hosts where only interactive auth would
succeed are reported as AUTH_FAILED. Host key verification is bypassed and
no known_hosts file is written; this is a reachability check, not a remote
access tool.`,
	Version:       version.Build,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	// Env (and optional .env) fill the defaults; explicit flags win.
	cfg = config.FromEnv()
	rootCmd.Flags().StringVarP(&cfg.HostFile, "hosts", "f", cfg.HostFile, "path to host list file (one entry per line)")
	rootCmd.Flags().StringVarP(&cfg.DefaultUser, "user", "u", cfg.DefaultUser, "default user for entries without one (empty = current identity)")
	rootCmd.Flags().IntVarP(&cfg.TimeoutSec, "timeout", "t", cfg.TimeoutSec, "connect timeout per host, seconds")
	rootCmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "maximum concurrent probes")
	rootCmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "write CSV records to this path")
	rootCmd.Flags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "append results to this sqlite database")
	rootCmd.Flags().StringVar(&cfg.ConsulAddr, "consul-addr", cfg.ConsulAddr, "consul agent address (with --consul-prefix)")
	rootCmd.Flags().StringVar(&cfg.ConsulPrefix, "consul-prefix", cfg.ConsulPrefix, "read host entries from consul KV under this prefix instead of a file")
}

func run() error {
	specs, err := loadHosts()
	if err != nil {
		// The one fatal precondition: no host list, no run, no output files.
		return err
	}
	if len(specs) == 0 {
		log.Printf("host list is empty, nothing to do")
		return nil
	}

	var sinks []runner.Sink
	if cfg.OutputPath != "" {
		csvSink, err := report.NewCSVSink(cfg.OutputPath)
		if err != nil {
			return err
		}
		defer csvSink.Close()
		sinks = append(sinks, csvSink)
	}
	if cfg.DBPath != "" {
		dbSink, err := sink.NewSQLiteSink(cfg.DBPath)
		if err != nil {
			return err
		}
		defer dbSink.Close()
		sinks = append(sinks, dbSink)
	}

	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	log.Printf("probing %d hosts (jobs=%d timeout=%s)", len(specs), cfg.Jobs, timeout)

	prober := probe.New(timeout)
	snap := runner.Run(context.Background(), specs, prober, cfg.Jobs, sinks...)
	report.RenderTable(os.Stdout, snap)
	return nil
}

func loadHosts() ([]model.HostSpec, error) {
	if cfg.ConsulPrefix != "" {
		return hostlist.LoadConsul(cfg.ConsulAddr, cfg.ConsulPrefix, cfg.DefaultUser)
	}
	if cfg.HostFile == "" {
		return nil, fmt.Errorf("host list is required (--hosts or SSHSWEEP_HOSTS)")
	}
	return hostlist.LoadFile(cfg.HostFile, cfg.DefaultUser)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("sshsweep: %v", err)
	}
}
