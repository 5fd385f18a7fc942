// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-env deployment environment
//	-log-level log level
//	-jwt-secret token signing key
//	-jwt-issuer token issuer name
//	-jwt-expires-in token lifetime (e.g. "1d", "12h")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-gate-mode gate mode (local, redis, remote, off)
//	-gate-url remote gate URL
//	-redis-addr redis address
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-user-gate", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var appEnv string
	var logLevel string
	var jwtSecret string
	var jwtIssuer string
	var jwtExpiresIn Duration
	var requestTimeout time.Duration
	var gateMode string
	var gateURL string
	var redisAddr string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appEnv, "env", "", "Deployment environment (development, production, test)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jwtSecret, "jwt-secret", "", "Token signing key")
	fs.StringVar(&jwtIssuer, "jwt-issuer", "", "Token issuer")
	fs.Var(&jwtExpiresIn, "jwt-expires-in", "Token lifetime (e.g. 1d, 12h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s, 1m)")
	fs.StringVar(&gateMode, "gate-mode", "", "Gate mode (local, redis, remote, off)")
	fs.StringVar(&gateURL, "gate-url", "", "Remote gate decision URL")
	fs.StringVar(&redisAddr, "redis-addr", "", "Redis address host:port")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Env:      appEnv,
			LogLevel: logLevel,
		},
		Auth: Auth{
			Secret:    jwtSecret,
			Issuer:    jwtIssuer,
			ExpiresIn: jwtExpiresIn,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Gate: Gate{
			Mode: gateMode,
			URL:  gateURL,
		},
		Redis: Redis{
			Addr: redisAddr,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
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
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
