// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault command-line client.
//
// One process runs one command: the vault is unlocked with the master
// passphrase, the command runs against the configured store (the server or a
// local file) and the data key is dropped when the process exits.
package client
