package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"logotint/api"
	"logotint/config"
	"logotint/logging"
	"logotint/model"
	"logotint/preset"
	"logotint/scheduler"
	"logotint/storage"
)

//go:embed web/index.html
var indexHTML string

var (
	dataDir     string
	listen      string
	listenPort  int
	metricsAddr string
	logLevel    string
	logFormat   string
	presetsFile string
	appVersion  = "0.3.1"
)

var rootCmd = &cobra.Command{
	Use:   "logotint",
	Short: "logotint – recolor the logo with palettes and presets",
	Long:  "Logotint rewrites the colors of an SVG logo from a palette, serves a live preview editor and keeps a history of exported schemes.",
	RunE:  run,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  "Manage logotint configuration files.",
}

var configGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a default configuration file",
	Long:  "Generate a default logotint.config file in the data directory.",
	RunE:  runConfigGenerate,
}

func init() {
	rootCmd.Version = appVersion
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", config.DefaultDataDir(), "Data directory")
	rootCmd.PersistentFlags().StringVar(&presetsFile, "presets", "", "YAML file with extra presets")
	rootCmd.Flags().StringVar(&listen, "listen", "all", "IP address to listen on")
	rootCmd.Flags().IntVar(&listenPort, "listen-port", 8080, "Port to listen on")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-listen", "", "Address of the Prometheus listener (empty disables it)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "", "Log format (console or json)")

	configCmd.AddCommand(configGenerateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(applyCmd, colorsCmd, presetsCmd, schemeCmd, versionCmd)
}

// loadConfig reads the config for the data directory and applies the flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(dataDir)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("listen") || flags.Changed("listen-port") {
		if listen != "" && listen != "all" {
			cfg.ListenAddr = net.JoinHostPort(listen, fmt.Sprint(listenPort))
		} else {
			cfg.ListenAddr = fmt.Sprintf(":%d", listenPort)
		}
	}
	if flags.Changed("metrics-listen") {
		cfg.MetricsAddr = metricsAddr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if flags.Changed("presets") {
		cfg.PresetsFile = presetsFile
	}

	abs, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	cfg.DataDir = abs

	return cfg, cfg.Validate()
}

// loadCatalog returns the built-in presets plus those of the presets file.
func loadCatalog(path string) (*preset.Catalog, error) {
	extra, err := preset.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return preset.Builtin(), nil
	}
	return preset.New(extra...)
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}

	store, err := storage.Open(storage.DefaultConfig(cfg.DataDir))
	if err != nil {
		return err
	}
	defer store.Close()

	catalog, err := loadCatalog(cfg.PresetsFile)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Schedules == nil {
		cfg.Schedules = []model.Schedule{}
	}
	sched := scheduler.New(logger, scheduler.RetentionJob(store, cfg.RetentionDays, logger), cfg.Schedules)
	sched.Start(ctx)

	apiServer := api.NewServer(store, catalog, sched, logger, api.Options{
		CaseSensitive: cfg.CaseSensitive,
		ImportRate:    cfg.ImportRate,
		ImportBurst:   cfg.ImportBurst,
	})

	mux := http.NewServeMux()
	apiServer.Register(mux)

	indexTemplate := template.Must(template.New("index").Parse(indexHTML))
	menu := preset.NewHandler(catalog)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = indexTemplate.Execute(w, map[string]any{
			"Title":      "logotint",
			"MenuHTML":   template.HTML(menu.GenerateMenuHTML("default")),
			"Slots":      model.Slots(),
			"AppVersion": appVersion,
			"Year":       time.Now().Year(),
		})
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		printListeningAddresses(logger, cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	var metrics *api.MetricsServer
	if cfg.MetricsAddr != "" {
		metrics = api.NewMetricsServer(cfg.MetricsAddr)
		g.Go(func() error {
			logger.Info().Str("addr", cfg.MetricsAddr).Msg("metrics listening")
			return metrics.ListenAndServe()
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown")
		}
		if metrics != nil {
			if err := metrics.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("metrics shutdown")
			}
		}
		return nil
	})

	return g.Wait()
}

func runConfigGenerate(cmd *cobra.Command, args []string) error {
	dataDirAbs, err := filepath.Abs(dataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := config.Default()
	cfg.DataDir = dataDirAbs

	cfgPath := filepath.Join(dataDirAbs, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("config file already exists: %s", cfgPath)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated default config file: %s\n", cfgPath)
	return nil
}

func printListeningAddresses(logger zerolog.Logger, addr string) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		logger.Info().Msgf("listening on http://%s", addr)
		return
	}

	if host != "" && host != "0.0.0.0" && host != "::" {
		logger.Info().Msgf("listening on http://%s:%s", host, port)
		return
	}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		logger.Info().Msgf("listening on http://0.0.0.0:%s", port)
		return
	}
	logger.Info().Msg("listening on:")
	for _, a := range addrs {
		if ipnet, ok := a.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			logger.Info().Msgf("  http://%s:%s", ipnet.IP.String(), port)
		}
	}
	logger.Info().Msgf("  http://localhost:%s", port)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
