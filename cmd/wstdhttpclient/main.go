/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Command wstdhttpclient is a thin CLI around httpx.Client, the Go
// equivalent of original_source's examples/http_client.rs (spec.md §6.2):
// a flag for the URL, repeatable --header flags, a --method, and the three
// client timeouts. It is not part of the core library.
package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/badu/wstd/httpx"
	"github.com/badu/wstd/runtime"
)

var (
	headerFlags         []string
	methodFlag          string
	connectTimeout      time.Duration
	firstByteTimeout    time.Duration
	betweenBytesTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "wstdhttpclient <url>",
	Short: "A simple command-line HTTP client, implemented using wstd-go over WASI",
	Args:  cobra.ExactArgs(1),
	RunE:  runClient,
}

func init() {
	rootCmd.Flags().StringArrayVar(&headerFlags, "header", nil, `Add a header to the request, formatted as "key: value"`)
	rootCmd.Flags().StringVar(&methodFlag, "method", httpx.MethodGet, "Method of the request")
	rootCmd.Flags().DurationVar(&connectTimeout, "connect-timeout", 0, "Set the connect timeout")
	rootCmd.Flags().DurationVar(&firstByteTimeout, "first-byte-timeout", 0, "Set the first-byte timeout")
	rootCmd.Flags().DurationVar(&betweenBytesTimeout, "between-bytes-timeout", 0, "Set the between-bytes timeout")
}

func runClient(cmd *cobra.Command, args []string) error {
	target, err := url.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing url: %w", err)
	}

	headers := httpx.NewHeader()
	for _, h := range headerFlags {
		key, value, ok := strings.Cut(h, ": ")
		if !ok {
			return fmt.Errorf(`headers must be formatted like "key: value"`)
		}
		headers.Add(key, value)
	}

	pathAndQuery := target.Path
	if target.RawQuery != "" {
		pathAndQuery += "?" + target.RawQuery
	}
	req := &httpx.Request[httpx.Body]{
		Method:    strings.ToUpper(methodFlag),
		Scheme:    target.Scheme,
		Authority: target.Host,
		Path:      pathAndQuery,
		Headers:   headers,
		Body:      httpx.Empty(),
	}

	client := httpx.NewClient()
	if connectTimeout > 0 {
		client.SetConnectTimeout(connectTimeout)
	}
	if firstByteTimeout > 0 {
		client.SetFirstByteTimeout(firstByteTimeout)
	}
	if betweenBytesTimeout > 0 {
		client.SetBetweenBytesTimeout(betweenBytesTimeout)
	}

	fmt.Fprintf(os.Stderr, "> %s %s\n", req.Method, req.Path)
	headers.Range(func(k, v string) bool {
		fmt.Fprintf(os.Stderr, "> %s: %s\n", k, v)
		return true
	})

	runErr := runtime.BlockOn(func(y *runtime.Yielder) error {
		resp, err := client.Send(y, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "< %d\n", resp.Status)
		resp.Headers.Range(func(k, v string) bool {
			fmt.Fprintf(os.Stderr, "< %s: %s\n", k, v)
			return true
		})
		body, err := resp.Body.Contents(y)
		if err != nil {
			return err
		}
		os.Stdout.Write(body)
		return nil
	})
	return runErr
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
