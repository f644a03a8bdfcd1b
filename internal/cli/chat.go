// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - interactive chat REPL for the terminal.
//
// Handles the "clowngpt chat" command. Each session drives one chat: a
// fresh draft by default, or an existing one with --chat.
//
// Interactive commands:
//   /help, /h          Show available commands
//   /model [name]      Show or switch the chat's model
//   /models            List available models
//   /chats             List your chats
//   /open ID           Switch to another chat
//   /title             Show the chat title
//   /quit, /q          Exit
//   Ctrl+D             Exit
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/clowngpt-tui/internal/chat"
	"github.com/jeranaias/clowngpt-tui/internal/config"
	"github.com/jeranaias/clowngpt-tui/internal/model"
	"github.com/jeranaias/clowngpt-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)

	replyStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)
)

// =============================================================================
// INPUT
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI with history stored under the config dir.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.Dir()
	if err != nil {
		dir = os.TempDir()
	}
	c := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(dir, "chat_history"),
	}

	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
	return c
}

// ReadInput reads one line, recording non-empty input in history.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history and restores the terminal.
func (c *ChatCLI) Close() {
	if f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
		c.line.WriteHistory(f)
		f.Close()
	}
	c.line.Close()
}

// =============================================================================
// SESSION
// =============================================================================

// chatSession holds the state for one interactive chat run.
type chatSession struct {
	rt       *Runtime
	ctl      *chat.Controller
	input    *ChatCLI
	renderer *glamour.TermRenderer
	quiet    bool
}

// HandleChat runs the interactive chat REPL.
func HandleChat(args Args) {
	rt, err := NewRuntime(args)
	if err != nil {
		fail(err)
	}
	requireAuth(rt)

	ctx := context.Background()
	if _, err := rt.WS.Reload(ctx); err != nil {
		fail(err)
	}

	var ctl *chat.Controller
	if args.ChatID != "" {
		ctl = chat.Open(ctx, rt.Client, rt.WS, model.ID(args.ChatID))
		if ctl.State() == chat.StateNotFound {
			fail(fmt.Errorf("chat %s not found", args.ChatID))
		}
	} else {
		ctl = chat.NewDraft(rt.Client, rt.WS, "", rt.Cfg.DefaultModel)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer = nil
	}

	session := &chatSession{
		rt:       rt,
		ctl:      ctl,
		input:    NewChatCLI(),
		renderer: renderer,
		quiet:    args.Quiet,
	}
	defer session.input.Close()

	if !session.quiet {
		fmt.Println(replyStyle.Render("ClownGPT") + infoStyle.Render("  ·  "+ctl.ModelName()+"  ·  /help for commands"))
		session.printTranscript()
	}

	runREPL(session)
}

// printTranscript replays the messages already in the chat.
func (s *chatSession) printTranscript() {
	for _, m := range s.ctl.Messages() {
		if m.IsUser() {
			fmt.Println(promptStyle.Render("you> ") + m.Content)
		} else {
			fmt.Print(s.renderReply(m.Content))
		}
	}
}

// =============================================================================
// REPL LOOP
// =============================================================================

func runREPL(s *chatSession) {
	for {
		input, err := s.input.ReadInput(promptStyle.Render("you> "))
		if err != nil {
			// Ctrl+C aborts the prompt, Ctrl+D returns EOF; both exit.
			fmt.Println()
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if !s.handleSlashCommand(input) {
				return
			}
			continue
		}
		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			return
		}

		s.sendMessage(input)
	}
}

// sendMessage posts the text and prints whatever the server appended.
func (s *chatSession) sendMessage(text string) {
	before := len(s.ctl.Messages())
	if err := s.ctl.Send(context.Background(), text); err != nil {
		if errors.Is(err, chat.ErrChatMissing) {
			fmt.Fprintln(os.Stderr, errorStyle.Render("[Error]")+" this chat no longer exists")
			return
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
		return
	}

	msgs := s.ctl.Messages()
	for _, m := range msgs[before:] {
		if m.IsUser() {
			continue
		}
		fmt.Print(s.renderReply(m.Content))
	}
}

func (s *chatSession) renderReply(content string) string {
	if s.renderer != nil {
		if out, err := s.renderer.Render(content); err == nil {
			return out
		}
	}
	return content + "\n"
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand executes a /command; false means exit the REPL.
func (s *chatSession) handleSlashCommand(input string) bool {
	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "/quit", "/q", "/exit":
		return false

	case "/help", "/h":
		fmt.Print(infoStyle.Render(`Commands:
  /model [name]   Show or switch the chat's model
  /models         List available models
  /chats          List your chats
  /open ID        Switch to another chat
  /title          Show the chat title
  /quit, /q       Exit
`))

	case "/model":
		if len(fields) < 2 {
			fmt.Println(infoStyle.Render("model: " + s.ctl.ModelName()))
			break
		}
		name := strings.Join(fields[1:], " ")
		if err := s.ctl.SetModel(context.Background(), name); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
			break
		}
		fmt.Println(infoStyle.Render("model set to " + name))

	case "/models":
		snap := s.rt.WS.Snapshot()
		if snap == nil {
			break
		}
		for _, m := range snap.Models {
			marker := "  "
			if m.Name == s.ctl.ModelName() {
				marker = "* "
			}
			fmt.Println(infoStyle.Render(marker + m.Name))
		}

	case "/chats":
		snap := s.rt.WS.Snapshot()
		if snap == nil {
			break
		}
		for _, c := range snap.Chats {
			fmt.Println(infoStyle.Render(fmt.Sprintf("  %-12s %s", c.ID, c.Title)))
		}

	case "/open":
		if len(fields) < 2 {
			fmt.Fprintln(os.Stderr, errorStyle.Render("[Error]")+" usage: /open ID")
			break
		}
		ctl := chat.Open(context.Background(), s.rt.Client, s.rt.WS, model.ID(fields[1]))
		if ctl.State() == chat.StateNotFound {
			fmt.Fprintln(os.Stderr, errorStyle.Render("[Error]")+" chat not found")
			break
		}
		s.ctl = ctl
		fmt.Println(infoStyle.Render("switched to: " + ctl.Title()))
		s.printTranscript()

	case "/title":
		fmt.Println(infoStyle.Render("title: " + s.ctl.Title()))

	default:
		fmt.Fprintln(os.Stderr, errorStyle.Render("[Error]")+" unknown command (try /help)")
	}
	return true
}
