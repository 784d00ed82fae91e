package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/foundryops/agentctl/logging"
)

// ConversationClient is the remote surface the session drives.
// *foundry.Client implements it; tests script it.
type ConversationClient interface {
	CreateConversation(ctx context.Context) (string, error)
	AddUserMessage(ctx context.Context, conversationID, text string) error
	GenerateReply(ctx context.Context, conversationID, agentName string) (string, error)
	DeleteConversation(ctx context.Context, conversationID string) error
}

// exitTokens end the session, case-insensitively.
var exitTokens = map[string]bool{"quit": true, "exit": true, "q": true}

// Options configure a Session.
type Options struct {
	Input  io.Reader
	Output io.Writer
	Logger logging.Logger
}

// Session is one interactive chat with a named agent.
type Session struct {
	client    ConversationClient
	agentName string
	in        io.Reader
	out       io.Writer
	logger    logging.Logger
}

// NewSession creates a session for the named agent, reading stdin and
// writing stdout unless overridden.
func NewSession(client ConversationClient, agentName string, optFns ...func(o *Options)) *Session {
	opts := Options{Input: os.Stdin, Output: os.Stdout, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Session{
		client:    client,
		agentName: agentName,
		in:        opts.Input,
		out:       opts.Output,
		logger:    opts.Logger,
	}
}

// Run creates the conversation and drives the read-print loop until an exit
// token or end of input. Blank lines are skipped without a round trip. On
// exit the conversation is deleted with all errors suppressed.
func (s *Session) Run(ctx context.Context) error {
	conversationID, err := s.client.CreateConversation(ctx)
	if err != nil {
		return fmt.Errorf("start conversation: %w", err)
	}
	fmt.Fprintf(s.out, "Starting chat with agent '%s'. Type 'quit' or 'exit' to end the session.\n", s.agentName)
	fmt.Fprintf(s.out, "Conversation started (id: %s)\n", conversationID)

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "\nYou: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if exitTokens[strings.ToLower(line)] {
			break
		}
		if err := s.client.AddUserMessage(ctx, conversationID, line); err != nil {
			return err
		}
		reply, err := s.client.GenerateReply(ctx, conversationID, s.agentName)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "\nAssistant: %s\n", reply)
	}

	if err := s.client.DeleteConversation(ctx, conversationID); err != nil {
		s.logger.Debug("conversation cleanup failed", "conversation_id", conversationID, "error", err)
	}
	fmt.Fprintln(s.out, "Goodbye!")
	return scanner.Err()
}
