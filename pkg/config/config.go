package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults for the knobs that matter operationally.
const (
	DefaultTimeoutSec = 10
	DefaultJobs       = 8
)

// Config is the full configuration surface of a sweep. Precedence is
// flags > environment > defaults; FromEnv fills in the bottom two layers and
// the CLI overrides whatever flags were set explicitly.
type Config struct {
	HostFile     string // path to the host list (required unless consul)
	DefaultUser  string // identity used when an entry names none
	TimeoutSec   int    // connect timeout per host, seconds
	Jobs         int    // max concurrent probes
	OutputPath   string // CSV record stream, empty = none
	DBPath       string // sqlite sink, empty = none
	ConsulAddr   string // consul agent address (consul builds only)
	ConsulPrefix string // KV prefix holding host entries, empty = file source
}

// FromEnv builds a Config from defaults and SSHSWEEP_* environment
// variables. An optional .env in the working directory is loaded first.
// Env:
//
//	SSHSWEEP_HOSTS, SSHSWEEP_USER, SSHSWEEP_TIMEOUT, SSHSWEEP_JOBS,
//	SSHSWEEP_OUTPUT, SSHSWEEP_DB, SSHSWEEP_CONSUL_ADDR, SSHSWEEP_CONSUL_PREFIX
func FromEnv() Config {
	_ = loadDotEnv()
	return Config{
		HostFile:     os.Getenv("SSHSWEEP_HOSTS"),
		DefaultUser:  os.Getenv("SSHSWEEP_USER"),
		TimeoutSec:   getenvInt("SSHSWEEP_TIMEOUT", DefaultTimeoutSec),
		Jobs:         getenvInt("SSHSWEEP_JOBS", DefaultJobs),
		OutputPath:   os.Getenv("SSHSWEEP_OUTPUT"),
		DBPath:       os.Getenv("SSHSWEEP_DB"),
		ConsulAddr:   os.Getenv("SSHSWEEP_CONSUL_ADDR"),
		ConsulPrefix: os.Getenv("SSHSWEEP_CONSUL_PREFIX"),
	}
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}
