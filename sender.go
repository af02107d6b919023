// SPDX-License-Identifier: GPL-3.0-or-later

package dnsoverudp

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/netip"
)

// NetDialer is typically [*net.Dialer].
type NetDialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Sender sends DNS query datagrams to a single endpoint.
//
// Construct using [NewSender].
//
// Sender creates a new socket for each Send call and never reuses it.
type Sender struct {
	// Dialer is the [NetDialer] used to create the UDP socket.
	//
	// Set by [NewSender] to the user-provided value.
	Dialer NetDialer

	// Endpoint is the server endpoint.
	//
	// Set by [NewSender] to the user-provided value.
	Endpoint netip.AddrPort

	// Output receives human-readable progress notices.
	//
	// Set by [NewSender] to [io.Discard]. A nil Output discards notices.
	Output io.Writer

	// ObserveRawQuery is an OPTIONAL hook called with a copy
	// of the raw query right before sending it.
	ObserveRawQuery func([]byte)
}

// NewSender creates a new [*Sender].
func NewSender(dialer NetDialer, endpoint netip.AddrPort) *Sender {
	return &Sender{
		Dialer:   dialer,
		Endpoint: endpoint,
		Output:   io.Discard,
	}
}

// Send sends rawQuery as a single UDP datagram without waiting for a response.
//
// The socket is closed before returning regardless of the outcome. If the
// context has a deadline, we use it as the socket I/O deadline.
func (s *Sender) Send(ctx context.Context, rawQuery []byte) error {
	// 1. create the socket
	conn, err := s.Dialer.DialContext(ctx, "udp4", s.Endpoint.String())
	if err != nil {
		return err
	}
	defer conn.Close()

	// 2. bound the write using the context deadline
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	output := s.Output
	if output == nil {
		output = io.Discard
	}
	fmt.Fprintf(output, "Sending DNS query to %s...\n", s.Endpoint.Addr())

	if s.ObserveRawQuery != nil {
		s.ObserveRawQuery(append([]byte{}, rawQuery...))
	}

	// 3. send the datagram
	n, err := conn.Write(rawQuery)
	if err != nil {
		return err
	}
	if n != len(rawQuery) {
		return io.ErrShortWrite
	}

	fmt.Fprintf(output, "Packet sent successfully.\n")
	return nil
}

// SendQuery sends [QueryPayload] to the given endpoint using the given
// dialer, writing progress notices to output. A nil output discards them.
func SendQuery(ctx context.Context, dialer NetDialer, endpoint netip.AddrPort, output io.Writer) error {
	sender := NewSender(dialer, endpoint)
	sender.Output = output
	return sender.Send(ctx, QueryPayload())
}
