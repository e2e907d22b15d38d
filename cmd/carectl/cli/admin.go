package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/carelinkhq/carectl/internal/model"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage back-office staff accounts",
		Long:  "List and create the administrative accounts that can sign in to the back office.",
	}

	cmd.AddCommand(newAdminListCmd())
	cmd.AddCommand(newAdminCreateCmd())

	return cmd
}

// ---------- admin list ----------

func newAdminListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all staff accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminList(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runAdminList(jsonOutput bool) error {
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
	env, err := client.Admins(ctx)
	if err != nil {
		return err
	}

	admins := env.Data

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(admins)
	}

	if len(admins) == 0 {
		fmt.Println("No staff accounts found.")
		return nil
	}

	fmt.Printf("%-30s %-24s %-14s %-8s %-16s\n", "EMAIL", "NAME", "ROLE", "ACTIVE", "LAST LOGIN")
	fmt.Printf("%-30s %-24s %-14s %-8s %-16s\n", "-----", "----", "----", "------", "----------")
	for _, a := range admins {
		lastLogin := "-"
		if a.LastLoginAt != nil {
			lastLogin = fmtTime(*a.LastLoginAt)
		}
		fmt.Printf("%-30s %-24s %-14s %-8s %-16s\n", a.Email, a.FullName(), a.Role, yesNo(a.IsActive), lastLogin)
	}

	return nil
}

// ---------- admin create ----------

func newAdminCreateCmd() *cobra.Command {
	var (
		email     string
		firstName string
		lastName  string
		role      string
		password  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new staff account",
		Example: `  carectl admin create --email agent@carelinkhq.com --first-name Ada --last-name Obi --role support_agent
  carectl admin create --email agent@carelinkhq.com  # prompts for password`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminCreate(email, firstName, lastName, role, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Staff email address (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&role, "role", model.RoleSupportAgent, "Role: super_admin, admin, support_agent")
	cmd.Flags().StringVar(&password, "password", "", "Initial password (prompted if omitted)")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runAdminCreate(email, firstName, lastName, role, password string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address: %q", email)
	}

	switch role {
	case model.RoleSuperAdmin, model.RoleAdmin, model.RoleSupportAgent:
	default:
		return fmt.Errorf("unknown role %q; use super_admin, admin, or support_agent", role)
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

		fmt.Print("Confirm password: ")
		confirmBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		fmt.Println()

		if password != string(confirmBytes) {
			return fmt.Errorf("passwords do not match")
		}
	}

	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
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
	env, err := client.CreateAdmin(ctx, model.CreateAdminRequest{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		Password:  password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created staff account %q (role=%s, id=%s)\n", env.Data.Email, env.Data.Role, env.Data.ID)
	return nil
}
