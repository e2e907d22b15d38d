package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/carelinkhq/carectl/internal/api"
	"github.com/carelinkhq/carectl/internal/session"
)

const defaultBaseURL = "https://api.carelinkhq.com"

// dataDir holds the --data-dir persistent flag value (set on root command).
var dataDir string

// resolveDataDir returns the data directory from --data-dir flag,
// CARECTL_DATA_DIR env var, or ~/.carectl as fallback.
func resolveDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	if envDir := os.Getenv("CARECTL_DATA_DIR"); envDir != "" {
		return envDir
	}
	home, _ := os.UserHomeDir()
	return home + "/.carectl"
}

// openSessionStore opens the SQLite session store in the data dir.
func openSessionStore() (*session.SQLiteStore, error) {
	return session.NewSQLiteStore(resolveDataDir())
}

// newAPIClient builds an API client over the given session store. A 401 from
// the server clears the stored session through the logout hook, so the next
// command reports "not logged in" instead of replaying a dead token.
func newAPIClient(store session.Store) *api.Client {
	hook := &api.LogoutHook{}
	hook.Register(func() {
		store.Clear(context.Background())
	})

	opts := []api.Option{
		api.WithUnauthorizedHandler(hook),
	}
	if d := viper.GetDuration("api.timeout"); d > 0 {
		opts = append(opts, api.WithTimeout(d))
	}

	return api.New(viper.GetString("api.base_url"), store, opts...)
}

// listFlags is the shared pagination and sorting flag set carried by every
// roster listing command.
type listFlags struct {
	page      int
	limit     int
	sortBy    string
	sortOrder string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 0, "Page number, starting at 1")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "Items per page")
	cmd.Flags().StringVar(&f.sortBy, "sort-by", "", "Field to sort by (e.g. created_at)")
	cmd.Flags().StringVar(&f.sortOrder, "sort-order", "", "Sort direction: ASC or DESC")
}

func (f *listFlags) params() api.ListParams {
	return api.ListParams{
		Page:      f.page,
		Limit:     f.limit,
		SortBy:    f.sortBy,
		SortOrder: f.sortOrder,
	}
}

// fmtTime renders a timestamp for table output, "-" when zero.
func fmtTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// --- PID file management ---

func pidFilePath() string {
	return filepath.Join(resolveDataDir(), "carectl.pid")
}

func writePID(pid int) error {
	dir := resolveDataDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(pidFilePath(), []byte(strconv.Itoa(pid)), 0644)
}

func readPID() (int, error) {
	data, err := os.ReadFile(pidFilePath())
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func removePID() {
	os.Remove(pidFilePath())
}

func logFilePath() string {
	return filepath.Join(resolveDataDir(), "carectl.log")
}

// versionString returns a display version string.
func versionString() string {
	if appVersion == "" || appVersion == "dev" {
		return "dev"
	}
	if strings.HasPrefix(appVersion, "v") {
		return appVersion
	}
	return "v" + appVersion
}

// requireSession returns the stored session or a friendly error telling the
// operator to log in first.
func requireSession(ctx context.Context, store session.Store) (*session.Session, error) {
	sess, err := store.Get(ctx)
	if err == session.ErrNoSession {
		return nil, fmt.Errorf("not logged in; run 'carectl login' first")
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	return sess, nil
}
