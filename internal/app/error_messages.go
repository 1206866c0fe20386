// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the journal server handlers
// and the terminal client.
//
// The server writes them into the "error" field of JSON error bodies; the
// client matches on them to turn a response back into a typed error. Keeping
// both sides on the same constants keeps the wording consistent.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the login/password pair does
	// not match an account. Unknown logins get the same message.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError hides unexpected server failures.
	MsgInternalServerError = "internal server error"

	// MsgUnauthenticated is returned when a protected route is called without
	// a principal.
	MsgUnauthenticated = "authentication required"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified or has expired.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgLoginAlreadyExists is returned when registration hits a taken login.
	MsgLoginAlreadyExists = "login already exists"

	// MsgJournalEntryNotFound is returned for absent entries and for entries
	// owned by someone else alike.
	MsgJournalEntryNotFound = "journal entry not found"

	// MsgMoodLogNotFound is the mood log counterpart of MsgJournalEntryNotFound.
	MsgMoodLogNotFound = "mood log not found"

	// MsgUserNotFound is returned when the account to delete no longer exists.
	MsgUserNotFound = "user not found"

	// MsgTooManyRequests is returned by the auth rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgInvalidIDProvided is returned when a path id is not a positive
	// integer.
	MsgInvalidIDProvided = "invalid id provided"
)
