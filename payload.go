// SPDX-License-Identifier: GPL-3.0-or-later

package dnsoverudp

import (
	"encoding/hex"
	"net/netip"

	"github.com/bassosimone/runtimex"
)

const (
	// DefaultAddr is the compiled-in DNS server address.
	//
	// Note that this is not Google Public DNS (8.8.8.8).
	DefaultAddr = "7.7.7.7"

	// DefaultPort is the standard DNS port.
	DefaultPort = 53
)

// DefaultEndpoint is the compiled-in server endpoint.
var DefaultEndpoint = netip.AddrPortFrom(netip.MustParseAddr(DefaultAddr), DefaultPort)

// queryPayloadHex is a query for google.com with ID 0x1234, flags 0x0100
// (standard query, recursion desired), type A, and class IN.
const queryPayloadHex = "12340100000100000000000006676f6f676c6503636f6d0000010001"

var queryPayload = runtimex.PanicOnError1(hex.DecodeString(queryPayloadHex))

// QueryPayload returns a copy of the compiled-in DNS query message.
func QueryPayload() []byte {
	return append([]byte{}, queryPayload...)
}
