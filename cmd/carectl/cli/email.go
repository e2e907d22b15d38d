package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carelinkhq/carectl/internal/model"
)

func newEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Send transactional email",
	}

	cmd.AddCommand(newEmailSendCmd())

	return cmd
}

func newEmailSendCmd() *cobra.Command {
	var (
		to    string
		title string
		body  string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send an ad-hoc email to one recipient",
		Long:  "Send a one-off transactional email through the platform's delivery pipeline. The body can be given with --body or piped on stdin.",
		Example: `  carectl email send --to user@example.com --title "Account review" --body "Your documents were approved."
  cat notice.txt | carectl email send --to user@example.com --title "Service notice"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmailSend(to, title, body)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient email address (required)")
	cmd.Flags().StringVar(&title, "title", "", "Email subject line (required)")
	cmd.Flags().StringVar(&body, "body", "", "Email body (read from stdin if omitted)")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("title")

	return cmd
}

func runEmailSend(to, title, body string) error {
	if !strings.Contains(to, "@") {
		return fmt.Errorf("invalid email address: %q", to)
	}

	if body == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read body from stdin: %w", err)
		}
		body = strings.TrimSpace(string(data))
	}
	if body == "" {
		return fmt.Errorf("email body must not be empty")
	}

	store, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	if _, err := requireSession(ctx, store); err != nil {
		return err
	}

	client := newAPIClient(store)
	env, err := client.SendEmail(ctx, model.EmailRequest{
		RecipientEmail: to,
		Title:          title,
		Body:           body,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Queued email to %s (message id %s)\n", to, env.Data.MessageID)
	return nil
}
