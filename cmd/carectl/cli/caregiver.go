package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carelinkhq/carectl/internal/model"
)

func newCaregiverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "caregiver",
		Aliases: []string{"caregivers", "cg"},
		Short:   "Inspect and verify caregiver accounts",
		Long:    "List caregiver profiles, show individual caregivers, and approve or reject their KYC documents.",
	}

	cmd.AddCommand(newCaregiverListCmd())
	cmd.AddCommand(newCaregiverShowCmd())
	cmd.AddCommand(newVerifyCmd("caregiver"))

	return cmd
}

// ---------- caregiver list ----------

func newCaregiverListCmd() *cobra.Command {
	var (
		flags      listFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List caregiver profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCaregiverList(flags, jsonOutput)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runCaregiverList(flags listFlags, jsonOutput bool) error {
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
	env, err := client.Caregivers(ctx, flags.params())
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(env.Data)
	}

	list := env.Data
	if len(list.Caregivers) == 0 {
		fmt.Println("No caregivers found.")
		return nil
	}

	fmt.Printf("%-26s %-30s %-12s %-10s %-16s\n", "ID", "NAME", "KYC", "ACTIVE", "JOINED")
	fmt.Printf("%-26s %-30s %-12s %-10s %-16s\n", "--", "----", "---", "------", "------")
	for _, cg := range list.Caregivers {
		name := cg.FirstName + " " + cg.LastName
		fmt.Printf("%-26s %-30s %-12s %-10s %-16s\n", cg.ID, name, cg.KYCStatus, yesNo(cg.IsActive), fmtTime(cg.CreatedAt))
	}

	p := list.Pagination
	fmt.Printf("\nShowing %d-%d of %d (page %d/%d)", p.Start(), p.End(), p.Total, p.Page, p.TotalPages)
	fmt.Printf("  active=%d suspended=%d pending_kyc=%d\n", list.Metrics.Active, list.Metrics.Suspended, list.Metrics.PendingKYC)

	return nil
}

// ---------- caregiver show ----------

func newCaregiverShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one caregiver's full profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCaregiverShow(args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runCaregiverShow(id string, jsonOutput bool) error {
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
	env, err := client.Caregiver(ctx, id)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(env.Data)
	}

	cg := env.Data
	fmt.Printf("%s %s <%s>\n", cg.FirstName, cg.LastName, cg.Email)
	fmt.Printf("  id:          %s\n", cg.ID)
	fmt.Printf("  phone:       %s\n", cg.Phone)
	fmt.Printf("  city:        %s\n", cg.City)
	fmt.Printf("  experience:  %d years\n", cg.YearsExp)
	fmt.Printf("  rate:        %.2f/hr\n", cg.HourlyRate)
	fmt.Printf("  jobs done:   %d (rating %.1f)\n", cg.CompletedJobs, cg.Rating)
	fmt.Printf("  active:      %s\n", yesNo(cg.IsActive))
	fmt.Printf("  suspended:   %s\n", yesNo(cg.IsSuspended))
	fmt.Printf("  kyc status:  %s\n", cg.KYCStatus)
	printKYCProfile(cg.KYC)

	return nil
}

func printKYCProfile(kyc *model.KYCProfile) {
	if kyc == nil {
		return
	}
	fmt.Println("  documents:")
	printKYCDoc("valid ID", kyc.ValidID)
	printKYCDoc("work auth", kyc.WorkAuthorization)
	printKYCDoc("passport", kyc.Passport)
}

func printKYCDoc(label string, doc *model.KYCDocument) {
	if doc == nil {
		fmt.Printf("    %-12s (not uploaded)\n", label)
		return
	}
	fmt.Printf("    %-12s %s\n", label, doc.Status)
}

// ---------- caregiver verify / careseeker verify ----------

// newVerifyCmd builds the KYC verification subcommand. The verification
// endpoints are shared between caregivers and care seekers, so both command
// trees mount the same implementation.
func newVerifyCmd(noun string) *cobra.Command {
	var (
		doc    string
		reject bool
	)

	cmd := &cobra.Command{
		Use:   "verify <id>",
		Short: "Approve or reject a KYC document",
		Long: `Approve (default) or reject one of a user's KYC documents.

Documents: valid-id, work-authorization, passport`,
		Example: fmt.Sprintf(`  carectl %s verify u_123 --doc valid-id
  carectl %s verify u_123 --doc passport --reject`, noun, noun),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args[0], doc, !reject)
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "Document to verify: valid-id, work-authorization, passport (required)")
	cmd.Flags().BoolVar(&reject, "reject", false, "Reject the document instead of approving it")
	cmd.MarkFlagRequired("doc")

	return cmd
}

func runVerify(userID, doc string, verified bool) error {
	switch doc {
	case model.DocValidID, model.DocWorkAuthorization, model.DocPassport:
	default:
		return fmt.Errorf("unknown document %q; use valid-id, work-authorization, or passport", doc)
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
	env, err := client.VerifyDocument(ctx, userID, doc, verified)
	if err != nil {
		return err
	}

	res := env.Data
	action := "Approved"
	if !verified {
		action = "Rejected"
	}
	fmt.Printf("%s %s for user %s (document now %s, overall KYC %s)\n", action, doc, res.UserID, res.Status, res.KYCStatus)
	return nil
}
