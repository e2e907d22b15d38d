package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newBookingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "booking",
		Aliases: []string{"bookings"},
		Short:   "Inspect care bookings",
	}

	cmd.AddCommand(newBookingListCmd())
	cmd.AddCommand(newBookingShowCmd())

	return cmd
}

// ---------- booking list ----------

func newBookingListCmd() *cobra.Command {
	var (
		flags      listFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List care bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBookingList(flags, jsonOutput)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runBookingList(flags listFlags, jsonOutput bool) error {
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
	env, err := client.Bookings(ctx, flags.params())
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(env.Data)
	}

	list := env.Data
	if len(list.Bookings) == 0 {
		fmt.Println("No bookings found.")
		return nil
	}

	fmt.Printf("%-26s %-22s %-22s %-12s %10s %-16s\n", "ID", "CAREGIVER", "CARE SEEKER", "STATUS", "AMOUNT", "STARTS")
	fmt.Printf("%-26s %-22s %-22s %-12s %10s %-16s\n", "--", "---------", "-----------", "------", "------", "------")
	for _, b := range list.Bookings {
		amount := fmt.Sprintf("%.2f %s", b.TotalAmount, b.Currency)
		fmt.Printf("%-26s %-22s %-22s %-12s %10s %-16s\n", b.ID, b.CaregiverName, b.CareSeekerName, b.Status, amount, fmtTime(b.StartsAt))
	}

	p := list.Pagination
	fmt.Printf("\nShowing %d-%d of %d (page %d/%d)\n", p.Start(), p.End(), p.Total, p.Page, p.TotalPages)

	return nil
}

// ---------- booking show ----------

func newBookingShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBookingShow(args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runBookingShow(id string, jsonOutput bool) error {
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
	env, err := client.Booking(ctx, id)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(env.Data)
	}

	b := env.Data
	fmt.Printf("Booking %s (%s)\n", b.ID, b.Status)
	fmt.Printf("  caregiver:   %s (%s)\n", b.CaregiverName, b.CaregiverID)
	fmt.Printf("  care seeker: %s (%s)\n", b.CareSeekerName, b.CareSeekerID)
	fmt.Printf("  starts:      %s\n", fmtTime(b.StartsAt))
	if b.EndsAt != nil {
		fmt.Printf("  ends:        %s\n", fmtTime(*b.EndsAt))
	}
	fmt.Printf("  amount:      %.2f %s\n", b.TotalAmount, b.Currency)
	fmt.Printf("  created:     %s\n", fmtTime(b.CreatedAt))

	return nil
}

// ---------- transaction list ----------

func newTransactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"transactions", "tx"},
		Short:   "Inspect payment transactions",
	}

	cmd.AddCommand(newTransactionListCmd())

	return cmd
}

func newTransactionListCmd() *cobra.Command {
	var (
		flags      listFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List payment transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransactionList(flags, jsonOutput)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runTransactionList(flags listFlags, jsonOutput bool) error {
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
	env, err := client.Transactions(ctx, flags.params())
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(env.Data)
	}

	list := env.Data
	if len(list.Transactions) == 0 {
		fmt.Println("No transactions found.")
		return nil
	}

	fmt.Printf("%-26s %-26s %-8s %-10s %12s %-16s\n", "ID", "BOOKING", "TYPE", "STATUS", "AMOUNT", "CREATED")
	fmt.Printf("%-26s %-26s %-8s %-10s %12s %-16s\n", "--", "-------", "----", "------", "------", "-------")
	for _, tx := range list.Transactions {
		amount := fmt.Sprintf("%.2f %s", tx.Amount, tx.Currency)
		fmt.Printf("%-26s %-26s %-8s %-10s %12s %-16s\n", tx.ID, tx.BookingID, tx.Type, tx.Status, amount, fmtTime(tx.CreatedAt))
	}

	p := list.Pagination
	fmt.Printf("\nShowing %d-%d of %d (page %d/%d)\n", p.Start(), p.End(), p.Total, p.Page, p.TotalPages)

	return nil
}
