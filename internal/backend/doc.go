// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend implements the client for the remote answer-generation
// service: one question in, one answer plus optional follow-up prompts out.
package backend
