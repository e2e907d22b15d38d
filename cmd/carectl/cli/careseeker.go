package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCareSeekerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "careseeker",
		Aliases: []string{"careseekers", "cs"},
		Short:   "Inspect and verify care-seeker accounts",
		Long:    "List care-seeker profiles, show individual care seekers, and approve or reject their KYC documents.",
	}

	cmd.AddCommand(newCareSeekerListCmd())
	cmd.AddCommand(newCareSeekerShowCmd())
	cmd.AddCommand(newVerifyCmd("careseeker"))

	return cmd
}

// ---------- careseeker list ----------

func newCareSeekerListCmd() *cobra.Command {
	var (
		flags      listFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List care-seeker profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCareSeekerList(flags, jsonOutput)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runCareSeekerList(flags listFlags, jsonOutput bool) error {
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
	env, err := client.CareSeekers(ctx, flags.params())
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(env.Data)
	}

	list := env.Data
	if len(list.CareSeekers) == 0 {
		fmt.Println("No care seekers found.")
		return nil
	}

	fmt.Printf("%-26s %-30s %-12s %-10s %-16s\n", "ID", "NAME", "KYC", "ACTIVE", "JOINED")
	fmt.Printf("%-26s %-30s %-12s %-10s %-16s\n", "--", "----", "---", "------", "------")
	for _, cs := range list.CareSeekers {
		name := cs.FirstName + " " + cs.LastName
		fmt.Printf("%-26s %-30s %-12s %-10s %-16s\n", cs.ID, name, cs.KYCStatus, yesNo(cs.IsActive), fmtTime(cs.CreatedAt))
	}

	p := list.Pagination
	fmt.Printf("\nShowing %d-%d of %d (page %d/%d)", p.Start(), p.End(), p.Total, p.Page, p.TotalPages)
	fmt.Printf("  active=%d suspended=%d pending_kyc=%d\n", list.Metrics.Active, list.Metrics.Suspended, list.Metrics.PendingKYC)

	return nil
}

// ---------- careseeker show ----------

func newCareSeekerShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one care seeker's full profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCareSeekerShow(args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runCareSeekerShow(id string, jsonOutput bool) error {
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
	env, err := client.CareSeeker(ctx, id)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(env.Data)
	}

	cs := env.Data
	fmt.Printf("%s %s <%s>\n", cs.FirstName, cs.LastName, cs.Email)
	fmt.Printf("  id:              %s\n", cs.ID)
	fmt.Printf("  phone:           %s\n", cs.Phone)
	fmt.Printf("  city:            %s\n", cs.City)
	fmt.Printf("  care recipients: %d\n", cs.CareRecipients)
	fmt.Printf("  bookings made:   %d\n", cs.BookingsMade)
	fmt.Printf("  active:          %s\n", yesNo(cs.IsActive))
	fmt.Printf("  suspended:       %s\n", yesNo(cs.IsSuspended))
	fmt.Printf("  kyc status:      %s\n", cs.KYCStatus)
	printKYCProfile(cs.KYC)

	return nil
}
