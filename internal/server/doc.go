// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the dream-server listeners: the chi HTTP API (with the
// realtime websocket and /metrics) and the gRPC health endpoint. RunServer
// blocks until a stop signal, then shuts every listener down.
package server
