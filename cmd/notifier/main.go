// Comando notifier executa a varredura de notificações: classifica prazos de
// OS abertas e lacunas de manutenção, deduplica por dia (Redis) e despacha por
// e-mail. Roda uma vez (SWEEP_RUN_ONCE=true, para cron) ou em loop com ticker.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	appalerting "github.com/predialtech/garantia-api/internal/application/alerting"
	"github.com/predialtech/garantia-api/internal/infrastructure/mail"
	"github.com/predialtech/garantia-api/internal/infrastructure/postgres"
	infraredis "github.com/predialtech/garantia-api/internal/infrastructure/redis"
	"github.com/predialtech/garantia-api/pkg/config"
	"github.com/predialtech/garantia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Bool("run_once", cfg.Sweep.RunOnce).
		Msg("iniciando varredura de notificações")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	redisClient := infraredis.NewClient(cfg.Redis)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("conexão ao Redis")
	}

	sweep := appalerting.NewSweepUseCase(
		postgres.NewEmpreendimentoRepository(pool),
		postgres.NewOrdemServicoRepository(pool),
		postgres.NewNotificacaoRepository(pool),
		infraredis.NewDailyDeduper(redisClient),
		mail.NewGomailNotifier(cfg.SMTP),
		log,
	)

	if cfg.Sweep.RunOnce {
		if err := runSweep(ctx, sweep, log); err != nil {
			os.Exit(1)
		}
		return
	}

	interval := time.Duration(cfg.Sweep.IntervalMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Primeira varredura imediata; depois a cada intervalo.
	_ = runSweep(ctx, sweep, log)
	for {
		select {
		case <-ticker.C:
			_ = runSweep(ctx, sweep, log)
		case <-quit:
			log.Info().Msg("sinal de desligamento recebido, encerrando varredura")
			return
		}
	}
}

func runSweep(ctx context.Context, sweep *appalerting.SweepUseCase, log *logger.Logger) error {
	res, err := sweep.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("varredura falhou")
		return err
	}
	log.Info().
		Int("avaliadas", res.Avaliadas).
		Int("emitidos", res.Emitidos).
		Int("deduplicados", res.Deduplicados).
		Int("falhas", res.Falhas).
		Msg("varredura concluída")
	return nil
}
