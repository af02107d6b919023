//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// See https://datatracker.ietf.org/doc/html/rfc1035#section-4.1
//

package dnsoverudp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

const (
	// queryHeaderSize is the size of the DNS message header.
	queryHeaderSize = 12

	// QueryMaxNameLength is the maximum length of the dotted query
	// name without the trailing dot.
	QueryMaxNameLength = 63
)

// ErrMalformedQuery indicates that we cannot parse a DNS query message.
var ErrMalformedQuery = errors.New("malformed DNS query")

// ParseQuery parses the first question of a raw DNS query message.
//
// The returned name is fully qualified. We return [ErrMalformedQuery] when
// the header is truncated, the message contains no question, a label runs past
// the end of the message, the type and class are truncated, or the dotted
// name is longer than [QueryMaxNameLength].
func ParseQuery(rawQuery []byte) (dns.Question, error) {
	// 1. make sure there is a full header
	if len(rawQuery) < queryHeaderSize {
		return dns.Question{}, fmt.Errorf("%w: truncated header", ErrMalformedQuery)
	}

	// 2. unpack the message
	msg := new(dns.Msg)
	if err := msg.Unpack(rawQuery); err != nil {
		return dns.Question{}, fmt.Errorf("%w: %w", ErrMalformedQuery, err)
	}
	if len(msg.Question) < 1 {
		return dns.Question{}, fmt.Errorf("%w: no question", ErrMalformedQuery)
	}

	// 3. the unpacker tolerates a question cut after the name, we don't
	_, off, err := dns.UnpackDomainName(rawQuery, queryHeaderSize)
	if err != nil {
		return dns.Question{}, fmt.Errorf("%w: %w", ErrMalformedQuery, err)
	}
	if off+4 > len(rawQuery) {
		return dns.Question{}, fmt.Errorf("%w: truncated type and class", ErrMalformedQuery)
	}

	// 4. enforce the name length limit
	q0 := msg.Question[0]
	if len(strings.TrimSuffix(q0.Name, ".")) > QueryMaxNameLength {
		return dns.Question{}, fmt.Errorf("%w: name too long", ErrMalformedQuery)
	}
	return q0, nil
}
