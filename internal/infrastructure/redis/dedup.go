// Package redis adaptadores de infraestrutura sobre Redis: cliente e
// deduplicação diária de alertas.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/predialtech/garantia-api/internal/application/alerting"
	"github.com/predialtech/garantia-api/pkg/config"
)

// NewClient cria o cliente Redis a partir da configuração da app.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

var _ alerting.Deduper = (*DailyDeduper)(nil)

// DailyDeduper deduplicação de alertas por chave e dia via SETNX com TTL.
// A chave inclui a data (YYYY-MM-DD), então cada dia começa limpo mesmo que
// o TTL sobre-viva por folga.
type DailyDeduper struct {
	c *redis.Client
}

// NewDailyDeduper constrói o deduper com o cliente.
func NewDailyDeduper(c *redis.Client) *DailyDeduper {
	return &DailyDeduper{c: c}
}

// TTL com folga sobre as 24h do dia; a data na chave é quem delimita o dia.
const dedupTTL = 26 * time.Hour

// FirstToday devolve true se esta é a primeira ocorrência da chave no dia.
// SETNX é atômico, então varreduras concorrentes não duplicam envios.
func (d *DailyDeduper) FirstToday(ctx context.Context, chave string, dia time.Time) (bool, error) {
	key := fmt.Sprintf("alerta:%s:%s", dia.Format("2006-01-02"), chave)
	ok, err := d.c.SetNX(ctx, key, "1", dedupTTL).Result()
	if err != nil {
		return false, fmt.Errorf("dedup alerta: %w", err)
	}
	return ok, nil
}
