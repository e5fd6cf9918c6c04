// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import "encoding/json"

// =============================================================================
// THEME CONFIGURATION
// =============================================================================

// Config is the flat mapping of visual and copy options for one widget.
// Key names mirror the style-configuration service payload.
//
// Every option has a built-in default; a remote override may supply any
// subset of keys. Resolved once at mount and immutable afterwards.
type Config struct {
	Name                  string `json:"name"`
	BackgroundColor       string `json:"backgroundColor"`
	PrimaryColor          string `json:"primaryColor"`
	PrimaryHoverColor     string `json:"primaryHoverColor"`
	SenderTextColor       string `json:"senderTextColor"`
	SenderBackgroundColor string `json:"senderBackgroundColor"`
	SenderFont            string `json:"senderFont"`
	ReceiverTextColor     string `json:"receiverTextColor"`
	ReceiverBackground    string `json:"receiverBackgroundColor"`
	ReceiverFont          string `json:"receiverFont"`
	ChatBackground        string `json:"chatBackground"`
	WelcomeMessage        string `json:"welcomeMessage"`
	AvatarURL             string `json:"avatar_url"`
	WaveRadius            string `json:"waveRadius"`
	PulseSize             string `json:"pulseSize"`
	BounceHeight          string `json:"bounceHeight"`
	Environment           string `json:"environment"`
	PoweredByMessage      string `json:"powered_by_message"`
	PoweredByTargetURL    string `json:"powered_by_target_url"`
	ShowPoweredBy         bool   `json:"show_powered_by"`
	LogoURL               string `json:"logo_url"`
}

// Defaults returns the built-in theme configuration.
func Defaults() Config {
	return Config{
		Name:                  "Chat Support",
		BackgroundColor:       "#ffffff",
		PrimaryColor:          "#2563eb",
		PrimaryHoverColor:     "#1d4ed8",
		SenderTextColor:       "#ffffff",
		SenderBackgroundColor: "#2563eb",
		SenderFont:            "Inter, system-ui, -apple-system, sans-serif",
		ReceiverTextColor:     "#1f2937",
		ReceiverBackground:    "#f3f4f6",
		ReceiverFont:          "Inter, system-ui, -apple-system, sans-serif",
		ChatBackground:        "#ffffff",
		WelcomeMessage:        "Hi! I'm here to help. How can I assist you today?",
		AvatarURL:             "https://media.istockphoto.com/id/1492548051/vector/chatbot-logo-icon.jpg?s=612x612&w=0&k=20&c=oh9mrvB70HTRt0FkZqOu9uIiiJFH9FaQWW3p4M6iNno=",
		WaveRadius:            "15px",
		PulseSize:             "30px",
		BounceHeight:          "25px",
		Environment:           "Beta",
		PoweredByMessage:      "Powered by AISPIRELABS",
		PoweredByTargetURL:    "https://aispirelabs.com",
		ShowPoweredBy:         true,
		LogoURL:               "https://aispirelabs.com/static/logo_white.png",
	}
}

// =============================================================================
// MERGE
// =============================================================================

// Merge overlays the keys present in raw (a JSON object) onto base, remote
// values winning per key. Keys absent from raw keep their base value; keys
// unknown to the configuration are ignored. Returns an error when raw is not
// a JSON object, leaving base untouched for the caller to fall back on.
func Merge(base Config, raw []byte) (Config, error) {
	var remote map[string]json.RawMessage
	if err := json.Unmarshal(raw, &remote); err != nil {
		return base, err
	}

	baseJSON, err := json.Marshal(base)
	if err != nil {
		return base, err
	}
	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(baseJSON, &merged); err != nil {
		return base, err
	}

	for key, value := range remote {
		merged[key] = value
	}

	mergedJSON, err := json.Marshal(merged)
	if err != nil {
		return base, err
	}

	out := base
	if err := json.Unmarshal(mergedJSON, &out); err != nil {
		return base, err
	}
	return out, nil
}
