// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation for journal models, shared by
// the server services and the client engines.
//
// A Validator accepts a model (value or pointer) and an optional list of
// field names that restricts which rules run. With no field names the
// model's default rule set applies.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
