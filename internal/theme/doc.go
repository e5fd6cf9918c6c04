// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package theme resolves the widget's visual configuration: built-in
// defaults overlaid by a per-widget remote override, plus the terminal
// styles derived from the resolved configuration.
package theme
