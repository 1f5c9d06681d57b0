// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means the configuration enabled no listener.
var errNoServersAreCreated = errors.New("no servers are created")
