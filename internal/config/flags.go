// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags from flag.CommandLine.
// Parsing stops at the first non-flag argument, so the remaining positional
// arguments stay available through flag.Args.
//
// Flags:
//
//	-a server HTTP address in format [host]:[port]
//	-grpc-address server gRPC address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (postgres, sqlite3)
//	-c/-config json file path with configs
//	-encryption-secret shared secret of the reversible cipher
//	-cipher-mode cipher output format (gcm, openssl)
//	-password-hash-algorithm password digest algorithm (argon2id, bcrypt, sha256)
//	-bcrypt-cost bcrypt work factor
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-auth-rate-limit requests per second per client IP on /api/user
//	-auth-rate-burst burst size of the per-IP limiter
//	-server client HTTP endpoint in format [host]:[port]
//	-server-grpc client gRPC endpoint in format [host]:[port]
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var adapterAddress, adapterGRPCAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var encryptionSecret, cipherMode string
	var passwordHashAlgorithm string
	var bcryptCost int
	var requestTimeout time.Duration
	var authRateLimit float64
	var authRateBurst int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "db-driver", "", "Database driver (postgres, sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&encryptionSecret, "encryption-secret", "", "Encryption secret")
	flag.StringVar(&cipherMode, "cipher-mode", "", "Cipher mode (gcm, openssl)")
	flag.StringVar(&passwordHashAlgorithm, "password-hash-algorithm", "", "Password hash algorithm (argon2id, bcrypt, sha256)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Float64Var(&authRateLimit, "auth-rate-limit", 0, "Requests per second per client IP")
	flag.IntVar(&authRateBurst, "auth-rate-burst", 0, "Burst size per client IP")
	flag.Var(&adapterAddress, "server", "Client HTTP endpoint host:port")
	flag.Var(&adapterGRPCAddress, "server-grpc", "Client gRPC endpoint host:port")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			EncryptionSecret:      encryptionSecret,
			CipherMode:            cipherMode,
			PasswordHashAlgorithm: passwordHashAlgorithm,
			BcryptCost:            bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			AuthRateLimit:  authRateLimit,
			AuthRateBurst:  authRateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			GRPCAddress:    adapterGRPCAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
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
// An empty host binds every interface. Any host other than "localhost" must
// be a valid IP address.
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

	if host != "" && host != "localhost" {
		if net.ParseIP(host) == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
