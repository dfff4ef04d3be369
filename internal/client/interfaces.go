// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the client command given by args and blocks until it
	// finishes. An empty args prints the resolved session state.
	Run(ctx context.Context, args []string) error
}
