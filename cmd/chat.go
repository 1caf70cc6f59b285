package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/toolbridge/internal/agent"
	"github.com/crystaldolphin/toolbridge/internal/schema"
	"github.com/crystaldolphin/toolbridge/internal/server"
)

var (
	chatMessage string
	chatLogs    bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the model from the terminal",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Send a single message and exit")
	chatCmd.Flags().BoolVar(&chatLogs, "logs", false, "Show runtime logs")
}

var exitCommands = map[string]bool{
	"exit":  true,
	"quit":  true,
	"/exit": true,
	"/quit": true,
	":q":    true,
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(!chatLogs)
	if err != nil {
		return err
	}
	c, err := buildFrom(cfg)
	if err != nil {
		return err
	}
	orch := c.Orchestrator()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if chatMessage != "" {
		answer, err := ask(ctx, orch, nil, chatMessage)
		if err != nil {
			return err
		}
		printResponse(answer)
		return nil
	}
	return runInteractive(ctx, orch)
}

// runInteractive reads lines from stdin and keeps a text-only history of
// user and assistant turns, as browser front ends do.
func runInteractive(ctx context.Context, orch *agent.Orchestrator) error {
	fmt.Printf("%s Interactive mode (type 'exit' or Ctrl+C to quit)\n\n", logo)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	var history []schema.Message
	for {
		fmt.Print("You: ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Println("\nGoodbye!")
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Println("\nGoodbye!")
				return nil
			}
			line = strings.TrimSpace(l)
		}

		if line == "" {
			continue
		}
		if exitCommands[strings.ToLower(line)] {
			fmt.Println("Goodbye!")
			return nil
		}

		answer, err := ask(ctx, orch, history, line)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Println("\nGoodbye!")
				return nil
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		printResponse(answer)
		history = append(history, schema.NewUserMessage(line), schema.NewAssistantMessage(answer, nil))
	}
}

// ask runs one turn. Button requests bypass the history and use the canned
// transcript.
func ask(ctx context.Context, orch *agent.Orchestrator, history []schema.Message, text string) (string, error) {
	transcript, ok := server.ButtonShortcut(text)
	if !ok {
		transcript = schema.NewTranscript(history...)
		transcript.AddUser(text)
	}

	res, err := orch.RunWithProgress(ctx, transcript, func(p string) {
		fmt.Printf("  ↳ %s\n", p)
	})
	if err != nil {
		return "", err
	}
	return res.Answer, nil
}

func printResponse(text string) {
	fmt.Printf("\n%s toolbridge\n%s\n\n", logo, text)
}
