// SPDX-License-Identifier: GPL-3.0-or-later

// Command sendquery sends a DNS query for google.com over UDP.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/netip"
	"os"
	"time"

	"github.com/bassosimone/dnsoverudp"
	"github.com/miekg/dns"
	"github.com/spf13/cobra"
)

// errNotIPv4 indicates that --server is not an IPv4 endpoint.
var errNotIPv4 = errors.New("server must be an IPv4 address and port")

// newRootCommand creates the sendquery command using the given dialer.
//
// Progress notices go to the command output.
func newRootCommand(dialer dnsoverudp.NetDialer) *cobra.Command {
	var (
		decode  bool
		server  string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:           "sendquery",
		Short:         "Send a DNS query for google.com over UDP",
		Long:          "Sends a fixed DNS query for google.com to a DNS server over UDP without waiting for the response",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, err := netip.ParseAddrPort(server)
			if err != nil {
				return err
			}
			if !endpoint.Addr().Is4() {
				return fmt.Errorf("%w: %s", errNotIPv4, endpoint)
			}

			stdout := cmd.OutOrStdout()
			if decode {
				q0, err := dnsoverudp.ParseQuery(dnsoverudp.QueryPayload())
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout, "Query: %s %s %s\n", q0.Name, dns.ClassToString[q0.Qclass], dns.TypeToString[q0.Qtype])
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			return dnsoverudp.SendQuery(ctx, dialer, endpoint, stdout)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().BoolVar(&decode, "decode", false, "Print the decoded question before sending")
	cmd.Flags().StringVar(&server, "server", dnsoverudp.DefaultEndpoint.String(), "DNS server endpoint (IPv4 address and port)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Maximum time to spend sending (zero means no timeout)")
	return cmd
}

// run executes sendquery with the given arguments and returns the exit code.
func run(ctx context.Context, dialer dnsoverudp.NetDialer, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(dialer)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(context.Background(), &net.Dialer{}, os.Args[1:], os.Stdout, os.Stderr))
}
