package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/carelinkhq/carectl/internal/server"
	"github.com/carelinkhq/carectl/internal/session"
)

func newServeCmd() *cobra.Command {
	var (
		port   int
		host   string
		daemon bool
		dev    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local read-only gateway",
		Long: `Start a local HTTP gateway that proxies dashboard and roster reads through
the stored session. Wallboards and scripts can query it without ever holding
admin credentials. Only GET endpoints are exposed; mutations stay in the CLI.`,
		Example: `  carectl serve                    # foreground on 127.0.0.1:8470
  carectl serve --daemon           # background; manage with status/stop`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(host, port, daemon, dev)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8470, "HTTP listen port")
	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "HTTP listen host")
	cmd.Flags().BoolVar(&daemon, "daemon", false, "Run in the background (manage with 'carectl status' and 'carectl stop')")
	cmd.Flags().BoolVar(&dev, "dev", false, "Enable development mode (verbose logging)")

	viper.BindPFlag("gateway.port", cmd.Flags().Lookup("port"))
	viper.BindPFlag("gateway.host", cmd.Flags().Lookup("host"))

	return cmd
}

func runServe(host string, port int, daemon, dev bool) error {
	if daemon {
		return spawnDaemon()
	}

	logLevel := slog.LevelInfo
	if dev {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	store, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	if _, err := store.Get(context.Background()); err == session.ErrNoSession {
		logger.Warn("no stored session - gateway requests will fail until you run: carectl login")
	}

	client := newAPIClient(store)

	cfg := server.DefaultConfig()
	cfg.Host = host
	cfg.Port = port
	if rl := viper.GetInt("gateway.rate_limit"); rl > 0 || viper.IsSet("gateway.rate_limit") {
		cfg.RateLimit = rl
	}
	if origins := viper.GetStringSlice("gateway.cors.allowed_origins"); len(origins) > 0 {
		cfg.CORSOrigins = origins
	}

	srv := server.New(cfg, client, logger)

	if err := writePID(os.Getpid()); err != nil {
		logger.Warn("failed to write PID file", "error", err)
	}
	defer removePID()

	fmt.Printf("carectl gateway %s\n", versionString())
	fmt.Printf("→ Listening on http://%s:%d\n", host, port)
	fmt.Printf("→ Health:  http://%s:%d/healthz\n", host, port)
	fmt.Printf("→ API:     http://%s:%d/api/dashboard\n", host, port)
	fmt.Println()

	return srv.ListenAndServe()
}

// spawnDaemon re-executes the current binary in the foreground serve mode,
// detached from the terminal, with output redirected to the log file.
func spawnDaemon() error {
	if pid, err := readPID(); err == nil && isProcessRunning(pid) {
		return fmt.Errorf("gateway already running (PID %d); run 'carectl stop' first", pid)
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	args := []string{"serve"}
	for _, flag := range os.Args[1:] {
		if flag != "serve" && flag != "--daemon" {
			args = append(args, flag)
		}
	}

	if err := os.MkdirAll(resolveDataDir(), 0700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	logFile, err := os.OpenFile(logFilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	cmd := exec.Command(exe, args...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	setSysProcAttr(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start daemon: %w", err)
	}

	if err := writePID(cmd.Process.Pid); err != nil {
		return fmt.Errorf("write PID file: %w", err)
	}

	fmt.Printf("Gateway started in the background (PID %d)\n", cmd.Process.Pid)
	fmt.Printf("  Logs: %s\n", logFilePath())
	fmt.Println("  Use 'carectl status' to check health, 'carectl stop' to stop.")
	return nil
}
