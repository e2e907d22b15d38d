package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/carelinkhq/carectl/internal/session"
)

// ---------- login ----------

func newLoginCmd() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the CareLink admin API",
		Long: `Authenticate against the admin API and store the session locally.
The session survives until the server invalidates it or you run 'carectl logout'.`,
		Example: `  carectl login --email ops@carelinkhq.com   # prompts for password
  carectl login --email ops@carelinkhq.com --password secret`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Staff email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted if omitted)")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runLogin(email, password string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address: %q", email)
	}

	// Prompt for password if not provided
	if password == "" {
		fmt.Print("Password: ")
		pwBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()
		password = string(pwBytes)
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	store, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	client := newAPIClient(store)

	// Logging in against a different API origin replaces any stored session.
	if sess, err := store.Get(ctx); err == nil && sess.BaseURL != client.BaseURL() {
		fmt.Fprintf(os.Stderr, "Replacing session issued against %s\n", sess.BaseURL)
	}

	env, err := client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := store.Set(ctx, session.Session{
		Token:     env.Data.AccessToken,
		Email:     env.Data.Admin.Email,
		BaseURL:   client.BaseURL(),
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	admin := env.Data.Admin
	fmt.Printf("Signed in as %s <%s> (%s)\n", admin.FullName(), admin.Email, admin.Role)
	return nil
}

// ---------- logout ----------

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout() error {
	store, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	if err := store.Clear(context.Background()); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	fmt.Println("Logged out.")
	return nil
}

// ---------- whoami ----------

func newWhoamiCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runWhoami(jsonOutput bool) error {
	store, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	sess, err := requireSession(ctx, store)
	if err != nil {
		return err
	}

	client := newAPIClient(store)
	env, err := client.Profile(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(env.Data)
	}

	admin := env.Data
	fmt.Printf("%s <%s>\n", admin.FullName(), admin.Email)
	fmt.Printf("  role:       %s\n", admin.Role)
	fmt.Printf("  active:     %s\n", yesNo(admin.IsActive))
	fmt.Printf("  suspended:  %s\n", yesNo(admin.IsSuspended))
	fmt.Printf("  api:        %s\n", sess.BaseURL)
	fmt.Printf("  signed in:  %s\n", fmtTime(sess.CreatedAt.Local()))
	if sess.BaseURL != viper.GetString("api.base_url") {
		fmt.Fprintln(os.Stderr, "warning: configured api.base_url differs from the session's origin")
	}
	return nil
}
