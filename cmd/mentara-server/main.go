package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mentara/mentara/internal/config"
	"github.com/mentara/mentara/internal/domain/preassessment"
	"github.com/mentara/mentara/internal/domain/scoring"
	"github.com/mentara/mentara/internal/domain/treatment"
	"github.com/mentara/mentara/internal/platform/auth"
	"github.com/mentara/mentara/internal/platform/cache"
	"github.com/mentara/mentara/internal/platform/db"
	"github.com/mentara/mentara/internal/platform/messaging"
	"github.com/mentara/mentara/internal/platform/middleware"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "mentara-server",
		Short:        "Mentara pre-assessment scoring API",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(tablesCmd())
	return rootCmd
}

func newLogger(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	return db.NewPool(ctx, cfg.DatabaseURL, db.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dir, _ := cmd.Flags().GetString("dir")
			if dir == "" {
				dir = cfg.MigrationsDir
			}

			ctx := cmd.Context()
			pool, err := openPool(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := db.NewMigrator(pool, os.DirFS(dir)).Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "", "Path to migrations directory (default MIGRATIONS_DIR)")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dir, _ := cmd.Flags().GetString("dir")
			if dir == "" {
				dir = cfg.MigrationsDir
			}

			ctx := cmd.Context()
			pool, err := openPool(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := db.NewMigrator(pool, os.DirFS(dir)).Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}
			printMigrations(cmd.OutOrStdout(), statuses)
			return nil
		},
	}
	statusCmd.Flags().String("dir", "", "Path to migrations directory (default MIGRATIONS_DIR)")
	cmd.AddCommand(statusCmd)

	return cmd
}

func printMigrations(out io.Writer, statuses []db.MigrationStatus) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tNAME\tSTATUS\tAPPLIED AT")
	for _, s := range statuses {
		status, appliedAt := "pending", ""
		if s.Applied {
			status = "applied"
			if s.AppliedAt != nil {
				appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Version, s.Name, status, appliedAt)
	}
	w.Flush()
}

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a 201-item answer vector offline",
		Long:  "Reads a JSON array of answer codes, or an object with an \"answers\" array, and prints scores, severities and disorder predictions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			var in io.Reader = cmd.InOrStdin()
			if path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			answers, err := readAnswers(in)
			if err != nil {
				return err
			}
			return printScores(cmd.OutOrStdout(), answers)
		},
	}
	cmd.Flags().StringP("file", "f", "-", "Answers file, - for stdin")
	return cmd
}

func readAnswers(r io.Reader) ([]int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var answers []int
	if err := json.Unmarshal(raw, &answers); err == nil {
		return answers, nil
	}
	var doc struct {
		Answers []int `json:"answers"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return doc.Answers, nil
}

func printScores(out io.Writer, answers []int) error {
	scores, err := scoring.CalculateAllScoresFromFlatArray(answers)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUESTIONNAIRE\tSCALE\tSCORE\tSEVERITY")
	for _, q := range scores.Ordered() {
		s := scores[q]
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", q.DisplayName(), q.ScaleAbbreviation(), s.Score, s.Severity)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	preds := scoring.CreateDisorderPredictionsFromSeverity(scoring.SeverityByScale(scores.Summary().SeverityLevels))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Predicted:")
	for _, q := range scoring.Indexed() {
		d, ok := scoring.DisorderForScale(q.ScaleAbbreviation())
		if ok && preds[d] {
			fmt.Fprintf(out, "  %s\n", d)
		}
	}
	return nil
}

func tablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Inspect the built-in scoring tables",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check index map and severity bands for consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := scoring.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scoring tables OK: %d questionnaires, %d items\n", len(scoring.All()), scoring.TotalItems)
			return nil
		},
	})
	return cmd
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Env)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}
	if cfg.IsDev() {
		logger.Warn().Msg("ENV=development: unauthenticated requests run as an admin dev user")
	}
	if err := scoring.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("scoring tables are inconsistent")
	}

	ctx := context.Background()
	pool, err := openPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	checks := []db.Check{db.PoolCheck(pool)}

	synth := treatment.NewSynthesizer(logger)
	svc := preassessment.NewService(preassessment.NewRepoPG(pool), synth, logger)

	if cfg.RedisURL != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		plans := cache.NewRedis(rdb, "mentara")
		svc.SetPlanCache(plans, cfg.PlanCacheTTL)
		checks = append(checks, db.Check{Name: "redis", Ping: plans.Ping})
		logger.Info().Dur("ttl", cfg.PlanCacheTTL).Msg("treatment plan cache enabled")
	} else {
		svc.SetPlanCache(cache.Nop{}, 0)
	}

	if cfg.AMQPURL != "" {
		pub, err := messaging.DialAMQP(cfg.AMQPURL, cfg.EventsQueue, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to message broker")
		}
		defer pub.Close()
		svc.SetPublisher(pub)
		checks = append(checks, db.Check{Name: "amqp", Ping: pub.Ping})
	} else {
		svc.SetPublisher(messaging.NewLogPublisher(logger))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.RequestIDHeader},
	}))

	e.GET("/health", db.HealthHandler(checks...))
	e.GET("/health/pool", func(c echo.Context) error {
		return c.JSON(http.StatusOK, db.GetPoolStats(pool))
	})
	e.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"version": version})
	})

	apiV1 := e.Group("/api/v1")
	if cfg.IsDev() && cfg.AuthSigningKey == "" && cfg.AuthJWKSURL == "" {
		apiV1.Use(auth.DevAuthMiddleware(auth.AuthSkipper))
	} else {
		apiV1.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:     cfg.AuthIssuer,
			Audience:   cfg.AuthAudience,
			JWKSURL:    cfg.AuthJWKSURL,
			SigningKey: []byte(cfg.AuthSigningKey),
			Skipper:    auth.AuthSkipper,
		}))
	}

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
		IdleTTL:           10 * time.Minute,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))
	apiV1.Use(middleware.Audit(logger))

	preassessment.NewHandler(svc).RegisterRoutes(apiV1)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("version", version).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
