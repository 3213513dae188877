package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a backend API base URL
//	-request-timeout per-request timeout (e.g. "30s"); 0 disables it
//	-session-cookie cookie seeded into the client jar, "name=value"
//	-d local schedule cache (SQLite file)
//	-refresh-interval schedule refresh interval (e.g. "1m")
//	-prefs TOML preferences file
//	-listen development server address in format [host]:[port]
//	-fixtures development server fixtures file
//	-require-session development server session cookie check
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("eightball", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var listenAddress NetAddress
	var baseURL string
	var requestTimeout time.Duration
	var sessionCookie string
	var databaseDSN string
	var refreshInterval time.Duration
	var prefsPath string
	var fixturesPath string
	var requireSession bool
	var jsonConfigPath string

	fs.StringVar(&baseURL, "a", "", "Backend API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&sessionCookie, "session-cookie", "", "Session cookie name=value")
	fs.StringVar(&databaseDSN, "d", "", "Schedule cache database file")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Schedule refresh interval (e.g., 1m)")
	fs.StringVar(&prefsPath, "prefs", "", "Preferences file path")
	fs.Var(&listenAddress, "listen", "Development server address host:port")
	fs.StringVar(&fixturesPath, "fixtures", "", "Development server fixtures file")
	fs.BoolVar(&requireSession, "require-session", false, "Require the session cookie on the profile route")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
			SessionCookie:  sessionCookie,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{RefreshInterval: refreshInterval},
		UI:      UI{PrefsPath: prefsPath},
		Server: Server{
			Address:        listenAddress.String(),
			FixturesPath:   fixturesPath,
			RequireSession: requireSession,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds every interface; any other host must be "localhost" or
// an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
