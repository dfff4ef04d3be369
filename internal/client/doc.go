// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires session routing, the vault export pipeline, and the background
// timeout watcher into a single process lifecycle, and exposes the command
// surface (export, lock, logout, switch) to the cmd layer.
package client
