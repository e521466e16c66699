package nats

import (
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	natsgo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/hijack-gaming/holdem-engine/game"
	"github.com/hijack-gaming/holdem-engine/logging"
)

var natsLogger = log.With().Str("logger_name", "nats::publisher").Logger()

// Subscribers listen on one subject per table.
func TableUpdateSubject(tableID string) string {
	return fmt.Sprintf("table.%s.update", tableID)
}

// Publisher broadcasts table updates over NATS. Publishing is
// best-effort: errors are logged, never returned, and updates above
// the per-table rate limit are dropped rather than queued.
type Publisher struct {
	nc *natsgo.Conn

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewPublisher(natsURL string) (*Publisher, error) {
	nc, err := natsgo.Connect(natsURL)
	if err != nil {
		natsLogger.Error().Msgf("Failed to connect to nats server %s: %v", natsURL, err)
		return nil, err
	}
	return &Publisher{
		nc:       nc,
		limiters: make(map[string]*rate.Limiter),
	}, nil
}

// Conn exposes the underlying connection so subscription endpoints can
// relay the published updates.
func (p *Publisher) Conn() *natsgo.Conn {
	return p.nc
}

func (p *Publisher) limiter(tableID string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	limiter, ok := p.limiters[tableID]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 10)
		p.limiters[tableID] = limiter
	}
	return limiter
}

func (p *Publisher) PublishTableUpdate(g *game.Game, players []*game.Player) {
	if !p.limiter(g.TableID).Allow() {
		natsLogger.Debug().
			Str(logging.TableIDKey, g.TableID).
			Msg("Table update dropped by rate limiter")
		return
	}

	update := newTableUpdate(g, players)
	data, err := jsoniter.Marshal(update)
	if err != nil {
		natsLogger.Error().
			Str(logging.TableIDKey, g.TableID).
			Msgf("Failed to marshal table update: %v", err)
		return
	}

	if err := p.nc.Publish(TableUpdateSubject(g.TableID), data); err != nil {
		natsLogger.Error().
			Str(logging.TableIDKey, g.TableID).
			Msgf("Failed to publish table update: %v", err)
	}
}

func (p *Publisher) Close() {
	p.nc.Close()
}
