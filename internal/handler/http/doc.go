// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the dream-server REST API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging, metrics
// and response compression are handled here before requests are delegated
// to the service layer. Every authenticated handler acts on behalf of the
// user id the auth middleware put into the request context.
package http
