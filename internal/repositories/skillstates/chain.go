package skillstates

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"golang.org/x/sync/errgroup"
)

// chain writes to a primary store plus backups and restores from backups
// whatever the primary is missing
type chain struct {
	primary Store
	backups []Store
}

// NewChain combines a primary store with backup stores
func NewChain(primary Store, backups ...Store) Store {
	if primary == nil {
		panic("primary store is required")
	}
	return &chain{primary: primary, backups: backups}
}

func (c *chain) Save(ctx context.Context, changed map[string]*entities.ChannelState, removed []string) error {
	stores := append([]Store{c.primary}, c.backups...)
	errs := make([]error, len(stores))

	g, gctx := errgroup.WithContext(ctx)
	for i, store := range stores {
		i, store := i, store
		g.Go(func() error {
			// each store gets its own copy of the removed list
			errs[i] = store.Save(gctx, changed, append([]string{}, removed...))
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func (c *chain) Load(ctx context.Context) (map[string]*entities.ChannelState, error) {
	states, err := c.primary.Load(ctx)
	if err != nil {
		log.Printf("Primary skill state unreadable, restoring from backups: %v", err)
		states = make(map[string]*entities.ChannelState)
	}

	loaded := make([]map[string]*entities.ChannelState, len(c.backups))
	g, gctx := errgroup.WithContext(ctx)
	for i, backup := range c.backups {
		i, backup := i, backup
		g.Go(func() error {
			found, loadErr := backup.Load(gctx)
			if loadErr != nil {
				log.Printf("Failed to read skill state backup: %v", loadErr)
				return nil
			}
			loaded[i] = found
			return nil
		})
	}
	_ = g.Wait()

	restored := 0
	for _, found := range loaded {
		for id, state := range found {
			if _, ok := states[id]; ok {
				continue
			}
			states[id] = state
			restored++
		}
	}
	if restored > 0 {
		log.Printf("Restored %d channel(s) from skill state backups", restored)
	}

	if err != nil && len(states) == 0 && restored == 0 {
		return states, fmt.Errorf("no readable skill state: %w", err)
	}
	return states, nil
}
