// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - argument parsing and command routing for clowngpt.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLogin
	CmdRegister
	CmdLogout
	CmdStatus
	CmdChat
	CmdConfig
	CmdPlan
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ServerURL string
	Model     string
	Verbose   bool
	Quiet     bool

	// Command-specific
	Subcommand string
	ConfigKey  string
	ConfigVal  string
	ChatID     string
	Username   string

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `clowngpt - terminal client for the ClownGPT chat service

Usage:
  clowngpt                     Start the TUI (default)
  clowngpt login               Sign in and store a session token
  clowngpt register            Create an account
  clowngpt logout              Discard the stored session token
  clowngpt status, s           Show server and session status
  clowngpt chat                Interactive chat in the terminal
  clowngpt config [show|set]   Configuration
  clowngpt plan [show|set]     Show or switch the account plan
  clowngpt version             Show version
  clowngpt help                Show this help

Chat:
  clowngpt chat                     Start a new chat
  clowngpt chat --chat ID           Resume an existing chat
  clowngpt chat -m "clown 2.0"      Use a specific model

Config Commands:
  clowngpt config show              Show current configuration
  clowngpt config set KEY VALUE     Set a value (server_url, default_model, theme)

Global Flags:
  -s, --server URL    Override the server URL for this run
  -m, --model NAME    Override the default model for this run
  -v, --verbose       Verbose logging
  -q, --quiet         Minimal output

Environment:
  CLOWNGPT_SERVER_URL   Server URL override
  CLOWNGPT_MODEL        Default model override
  CLOWNGPT_THEME        Theme override (auto, dark, light)
  CLOWNGPT_LOG_LEVEL    Log level (debug, info, warn, error)

Configuration file: ~/.clowngpt/config.toml
Session token:      ~/.clowngpt/credentials
`

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, Args) {
	args := os.Args[1:]

	remaining, parsed := parseGlobalFlags(args)
	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "login":
		if len(remaining) > 0 {
			parsed.Username = remaining[0]
		}
		return CmdLogin, parsed

	case "register", "signup":
		if len(remaining) > 0 {
			parsed.Username = remaining[0]
		}
		return CmdRegister, parsed

	case "logout":
		return CmdLogout, parsed

	case "status", "s":
		return CmdStatus, parsed

	case "chat":
		parseChatArgs(&parsed, remaining)
		return CmdChat, parsed

	case "config":
		parseConfigArgs(&parsed, remaining)
		return CmdConfig, parsed

	case "plan":
		if len(remaining) > 0 {
			parsed.Subcommand = remaining[0]
			if len(remaining) > 1 {
				parsed.ConfigVal = remaining[1]
			}
		}
		return CmdPlan, parsed

	case "version", "--version", "-V":
		return CmdVersion, parsed

	case "help", "--help", "-h":
		return CmdHelp, parsed

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, parsed
	}
}

// parseGlobalFlags strips global flags from args and returns what is left.
func parseGlobalFlags(args []string) ([]string, Args) {
	var parsed Args
	var remaining []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-s", "--server":
			if i+1 < len(args) {
				i++
				parsed.ServerURL = args[i]
			}
		case "-m", "--model":
			if i+1 < len(args) {
				i++
				parsed.Model = args[i]
			}
		case "-v", "--verbose":
			parsed.Verbose = true
		case "-q", "--quiet":
			parsed.Quiet = true
		default:
			remaining = append(remaining, args[i])
		}
	}
	return remaining, parsed
}

func parseChatArgs(parsed *Args, args []string) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--chat", "-c":
			if i+1 < len(args) {
				i++
				parsed.ChatID = args[i]
			}
		case "-m", "--model":
			if i+1 < len(args) {
				i++
				parsed.Model = args[i]
			}
		}
	}
}

func parseConfigArgs(parsed *Args, args []string) {
	if len(args) == 0 {
		parsed.Subcommand = "show"
		return
	}
	parsed.Subcommand = args[0]
	if len(args) > 1 {
		parsed.ConfigKey = args[1]
	}
	if len(args) > 2 {
		parsed.ConfigVal = strings.Join(args[2:], " ")
	}
}

// HandleVersion prints version information.
func HandleVersion() {
	fmt.Printf("clowngpt %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Print(usageText)
}
