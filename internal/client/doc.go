// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the credential
// service.
//
// Each invocation runs one command (register, login, user, version,
// encrypt or decrypt) against the client services and prints the result
// to stdout. Diagnostics go to the logger on stderr.
package client
