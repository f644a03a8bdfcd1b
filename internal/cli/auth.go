// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// auth.go - login, register and logout command handlers.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jeranaias/clowngpt-tui/internal/api"
)

// HandleLogin signs in and stores the session token.
func HandleLogin(args Args) {
	rt, err := NewRuntime(args)
	if err != nil {
		fail(err)
	}

	username := args.Username
	if username == "" {
		username, err = promptLine("Username: ")
		if err != nil {
			fail(err)
		}
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		fail(err)
	}

	token, err := rt.Client.Login(context.Background(), username, password)
	if err != nil {
		if api.IsAuthFailure(err) {
			fail(fmt.Errorf("invalid username or password"))
		}
		fail(err)
	}
	if err := rt.Sessions.SetToken(token); err != nil {
		fail(err)
	}
	fmt.Printf("Signed in as %s\n", username)
}

// HandleRegister creates an account and stores the session token.
func HandleRegister(args Args) {
	rt, err := NewRuntime(args)
	if err != nil {
		fail(err)
	}

	username := args.Username
	if username == "" {
		username, err = promptLine("Username: ")
		if err != nil {
			fail(err)
		}
	}
	email, err := promptLine("Email: ")
	if err != nil {
		fail(err)
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		fail(err)
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		fail(err)
	}
	if password != confirm {
		fail(fmt.Errorf("passwords do not match"))
	}

	token, err := rt.Client.Register(context.Background(), username, email, password)
	if err != nil {
		fail(err)
	}
	if err := rt.Sessions.SetToken(token); err != nil {
		fail(err)
	}
	fmt.Printf("Account created. Signed in as %s\n", username)
}

// HandleLogout discards the stored session token.
func HandleLogout(args Args) {
	rt, err := NewRuntime(args)
	if err != nil {
		fail(err)
	}
	if err := rt.Sessions.Clear(); err != nil {
		fail(err)
	}
	fmt.Println("Signed out.")
}

// promptLine reads one trimmed line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passBytes), nil
}
