// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package api

// EmptyArgs is used by calls that take no arguments.
type EmptyArgs struct{}

// SuccessResponse indicates the success of a call.
type SuccessResponse struct {
	Success bool `json:"success"`
}
