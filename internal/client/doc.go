// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the eightball terminal client runtime.
//
// It wires the backend adapter, the schedule cache, the state store, the
// services and the terminal UI, drives the bootstrap sequence and keeps the
// background refresh running until the UI exits.
package client
