// SPDX-License-Identifier: GPL-3.0-or-later

// Package dnsoverudp sends a pre-serialized DNS query over UDP.
//
// The API is intentionally small: a [*Sender] targets a single
// netip.AddrPort endpoint, creates a new socket for each Send call, writes
// exactly one datagram, and closes the socket before returning.
//
// Sending is fire-and-forget. We do not read, match, or parse responses.
//
// [QueryPayload] returns the compiled-in query for google.com and
// [DefaultEndpoint] the compiled-in server endpoint. [ParseQuery] decodes
// the question of a raw query message.
package dnsoverudp
