// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses the process command line into a [StructuredConfig].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN (PostgreSQL on the server, SQLite path on the client)
//	-c/-config json file path with configs
//	-password-hash-key password hash key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-version application version
//	-pin-disable-requires-verify require the current PIN to disable the lock
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-auth-rate sign-in/sign-up attempts per minute per client IP
//	-server-url dream-server base URL used by the client
//	-adapter-timeout client request timeout
//	-badge-interval unread badge refresh period
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("dream-journal", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var passwordHashKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var version string
	var pinDisableRequiresVerify bool
	var requestTimeout time.Duration
	var authRate int
	var serverURL string
	var adapterTimeout time.Duration
	var badgeInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&version, "version", "", "Application version")
	fs.BoolVar(&pinDisableRequiresVerify, "pin-disable-requires-verify", false, "Require the current PIN to disable the lock")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&authRate, "auth-rate", 0, "Sign-in/sign-up attempts per minute per client IP")
	fs.StringVar(&serverURL, "server-url", "", "Dream server base URL")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.DurationVar(&badgeInterval, "badge-interval", 0, "Unread badge refresh period")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey:          passwordHashKey,
			TokenSignKey:             tokenSignKey,
			TokenIssuer:              tokenIssuer,
			TokenDuration:            tokenDuration,
			Version:                  version,
			PinDisableRequiresVerify: pinDisableRequiresVerify,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			GRPCAddress:       grpcServerAddress.String(),
			RequestTimeout:    requestTimeout,
			AuthRatePerMinute: authRate,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			BadgeInterval: badgeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An empty address renders as "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host must be "localhost" or a literal IP.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
