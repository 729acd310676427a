package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trainforge/periodizer/internal/config"
	"github.com/trainforge/periodizer/internal/db"
	"github.com/trainforge/periodizer/internal/logging"
	"github.com/trainforge/periodizer/internal/metrics"
	"github.com/trainforge/periodizer/internal/periodization/compliance"
	"github.com/trainforge/periodizer/internal/periodization/deload"
	"github.com/trainforge/periodizer/internal/periodization/evaluation"
	"github.com/trainforge/periodizer/internal/periodization/load"
	"github.com/trainforge/periodizer/internal/periodization/phase"
	"github.com/trainforge/periodizer/internal/periodization/readiness"
	"github.com/trainforge/periodizer/internal/periodization/recommendation"
	"github.com/trainforge/periodizer/internal/periodization/volume"
	"github.com/trainforge/periodizer/internal/periodization/week"

	pgxpoolprometheus "github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

const planLockTTL = 2 * time.Minute

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx, *env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        cfg.SentryDSN,
		SentryServerName: "evaluator",
	})
	log.Debugf("using evaluator logs path: [%s]", cfg.LogsPath)

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.DBHost,
		DBPort:         cfg.DBPort,
		DBName:         cfg.DBName,
		TracingEnabled: cfg.TracingEnabled,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("ping redis: %s", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()

	promRegistry := prometheus.NewRegistry()
	metricsManager := metrics.NewManager("periodizer", "evaluator", promRegistry)
	promRegistry.MustRegister(
		pgxpoolprometheus.NewCollector(dbPool, map[string]string{"db_name": cfg.DBName}),
	)
	metricsServer := serveMetrics(promRegistry, cfg.MetricsPort)

	recEngine := recommendation.NewEngine(recommendation.NewRepo(dbPool), metricsManager)
	deloadService := deload.NewService(
		deload.NewRepo(dbPool),
		deload.NewDetector(cfg.Engine.Deload),
		metricsManager,
	)

	evalService := evaluation.NewService(evaluation.NewServiceParams{
		TrainingRecords: load.NewRepo(dbPool),
		Assessments:     readiness.NewRepo(dbPool),
		Compliance:      compliance.NewRepo(dbPool),
		Volume:          volume.NewRepo(dbPool),
		Phases:          phase.NewRepo(dbPool),
		Weeks:           week.NewRepo(dbPool),
		Deloads:         deloadService,
		Recommender:     recEngine,
		Locker:          recommendation.NewPlanLocker(redisClient, planLockTTL),
		Config:          cfg.Engine,
		Metrics:         metricsManager,
	})
	plansRepo := evaluation.NewPlansRepo(dbPool)

	scheduler := cron.New()
	if err := scheduler.AddFunc(cfg.EvalSchedule, func() {
		runScheduledEvaluations(ctx, plansRepo, evalService, recEngine)
	}); err != nil {
		log.Fatalf("schedule evaluations [%s]: %s", cfg.EvalSchedule, err)
	}
	scheduler.Start()
	log.Printf("evaluation schedule [%s] armed", cfg.EvalSchedule)
	metricsManager.GaugeLifeSignal.Set(1)

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down ...", receivedSig)

	metricsManager.GaugeLifeSignal.Set(0)
	scheduler.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown metrics server: %s", err)
	}
}

// runScheduledEvaluations walks the active plans and evaluates each, then
// sweeps expired recommendations. A plan already being evaluated elsewhere is
// skipped, not an error.
func runScheduledEvaluations(
	ctx context.Context,
	plansRepo *evaluation.PlansRepo,
	evalService *evaluation.Service,
	recEngine *recommendation.Engine,
) {
	now := time.Now().UTC()

	plans, err := plansRepo.ListActive(ctx)
	if err != nil {
		log.Errorf("list active plans: %s", err)
		return
	}
	log.Debugf("scheduled evaluation run, %d active plans", len(plans))

	for _, plan := range plans {
		result, err := evalService.Evaluate(ctx, plan.UserID, plan.ID, now)
		if errors.Is(err, recommendation.ErrEvaluationInProgress) {
			log.Tracef("plan %s being evaluated elsewhere, skipping", plan.ID)
			continue
		}
		if err != nil {
			log.Errorf("evaluate plan %s: %s", plan.ID, err)
			continue
		}
		if result.HasRecommendation {
			log.Printf("plan %s: %d recommendations, deload trigger: %t",
				plan.ID, len(result.Recommendations), result.DeloadTrigger != nil)
		}
	}

	expired, err := recEngine.ExpirePending(ctx, now)
	if err != nil {
		log.Errorf("expire pending recommendations: %s", err)
		return
	}
	if expired > 0 {
		log.Printf("expired %d stale recommendations", expired)
	}
}

func serveMetrics(reg *prometheus.Registry, port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	go func() {
		log.Printf("metrics served on :%d", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("metrics server: %s", err)
		}
	}()
	return server
}
