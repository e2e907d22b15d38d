package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect the stored session token",
	}

	cmd.AddCommand(newTokenShowCmd())

	return cmd
}

func newTokenShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Decode the stored bearer token's claims",
		Long: `Decode and display the JWT claims of the stored bearer token. The signature
is NOT verified and the output is informational only; whether the session is
still valid is decided solely by the server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenShow(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output claims as JSON")

	return cmd
}

func runTokenShow(jsonOutput bool) error {
	store, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	sess, err := requireSession(context.Background(), store)
	if err != nil {
		return err
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(sess.Token, claims)
	if err != nil {
		return fmt.Errorf("stored token is not a decodable JWT: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(claims)
	}

	fmt.Printf("Session for %s against %s\n", sess.Email, sess.BaseURL)
	fmt.Printf("  algorithm: %s\n", token.Method.Alg())
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		fmt.Printf("  expires:   %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		fmt.Printf("  issued:    %s\n", iat.Local().Format("2006-01-02 15:04"))
	}
	fmt.Println("  claims:")
	for key, value := range claims {
		fmt.Printf("    %-10s %v\n", key, value)
	}
	fmt.Printf("\nStored %s. Claims are shown unverified; the server decides validity.\n", sess.CreatedAt.Local().Format(time.RFC1123))
	return nil
}
