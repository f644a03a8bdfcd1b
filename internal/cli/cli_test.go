// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"
)

func parseArgs(t *testing.T, args ...string) (Command, Args) {
	t.Helper()
	old := os.Args
	defer func() { os.Args = old }()
	os.Args = append([]string{"clowngpt"}, args...)
	return Parse()
}

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _ := parseArgs(t)
	if cmd != CmdTUI {
		t.Errorf("expected CmdTUI, got %d", cmd)
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		args []string
		want Command
	}{
		{[]string{"login"}, CmdLogin},
		{[]string{"register"}, CmdRegister},
		{[]string{"signup"}, CmdRegister},
		{[]string{"logout"}, CmdLogout},
		{[]string{"status"}, CmdStatus},
		{[]string{"s"}, CmdStatus},
		{[]string{"chat"}, CmdChat},
		{[]string{"config"}, CmdConfig},
		{[]string{"plan"}, CmdPlan},
		{[]string{"version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"bogus"}, CmdHelp},
	}

	for _, tt := range tests {
		cmd, _ := parseArgs(t, tt.args...)
		if cmd != tt.want {
			t.Errorf("Parse(%v) = %d, want %d", tt.args, cmd, tt.want)
		}
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := parseArgs(t, "-s", "http://example.com:9000", "-m", "clown 2.0", "-v", "status")
	if cmd != CmdStatus {
		t.Fatalf("expected CmdStatus, got %d", cmd)
	}
	if args.ServerURL != "http://example.com:9000" {
		t.Errorf("ServerURL = %q", args.ServerURL)
	}
	if args.Model != "clown 2.0" {
		t.Errorf("Model = %q", args.Model)
	}
	if !args.Verbose {
		t.Error("expected Verbose")
	}
}

func TestParseChatArgs(t *testing.T) {
	cmd, args := parseArgs(t, "chat", "--chat", "42", "-m", "clown 1.3")
	if cmd != CmdChat {
		t.Fatalf("expected CmdChat, got %d", cmd)
	}
	if args.ChatID != "42" {
		t.Errorf("ChatID = %q, want 42", args.ChatID)
	}
	if args.Model != "clown 1.3" {
		t.Errorf("Model = %q", args.Model)
	}
}

func TestParseConfigArgs(t *testing.T) {
	cmd, args := parseArgs(t, "config", "set", "theme", "dark")
	if cmd != CmdConfig {
		t.Fatalf("expected CmdConfig, got %d", cmd)
	}
	if args.Subcommand != "set" || args.ConfigKey != "theme" || args.ConfigVal != "dark" {
		t.Errorf("got subcommand=%q key=%q val=%q", args.Subcommand, args.ConfigKey, args.ConfigVal)
	}

	cmd, args = parseArgs(t, "config")
	if cmd != CmdConfig || args.Subcommand != "show" {
		t.Errorf("bare config should default to show, got %q", args.Subcommand)
	}
}

func TestParseLoginUsername(t *testing.T) {
	_, args := parseArgs(t, "login", "admin")
	if args.Username != "admin" {
		t.Errorf("Username = %q, want admin", args.Username)
	}
}
