// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// pent server handlers, the client adapters and the CLI.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies or log entries to describe the outcome of an operation.
// The client side matches on them to restore typed errors, so the wording
// is part of the wire contract.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as a single JSON object.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned by login for both an unknown
	// username and a wrong password.
	MsgInvalidCredentials = "invalid username or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUsernameAlreadyExists is returned when a registration attempt is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgUserNotFound is returned by the lookup endpoint for an unknown id.
	MsgUserNotFound = "user not found"

	// MsgTooManyRequests is returned when the per-client rate limit of the
	// credential endpoints is exhausted.
	MsgTooManyRequests = "too many requests"

	// MsgRegistrationFailed is returned when registration fails on the
	// storage side.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when login fails on the storage side.
	MsgLoginFailed = "login failed"

	// MsgLookupFailed is returned when a lookup fails on the storage side.
	MsgLookupFailed = "lookup failed"

	MsgNotFound = "not found"
)
