// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated means the dream-server config names neither an
	// HTTP nor a gRPC listen address.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	errNilServices = errors.New("handlers need the dream services")
)
