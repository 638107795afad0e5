// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the guard client application runtime.
//
// It wires the account store, the confirmation services, and the periodic
// login-code refresh into a single process lifecycle.
package client
