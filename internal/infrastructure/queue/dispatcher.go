package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/api/metrics"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes freshly published listings to a fixed set of alert-match
// workers using consistent hashing on the listing id, so re-publications of
// the same listing are handled in order.
type Dispatcher struct {
	workers  []chan domain.Listing
	notifier ports.AlertNotifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.AlertNotifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan domain.Listing, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Listing, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a listing to the worker responsible for it. Non-blocking up
// to channelBuffer capacity.
func (d *Dispatcher) Enqueue(listing domain.Listing) {
	idx := d.shardIndex(listing.ID)
	d.workers[idx] <- listing
	metrics.PublishQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a listing id deterministically to a worker index.
func (d *Dispatcher) shardIndex(listingID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(listingID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Listing) {
	for {
		select {
		case <-ctx.Done():
			return
		case listing, ok := <-ch:
			if !ok {
				return
			}
			if err := d.notifier.Notify(ctx, &listing); err != nil {
				d.log.Error().Err(err).
					Str("listing_id", listing.ID).
					Int("worker_id", id).
					Msg("alert matching failed")
			}
			metrics.PublishQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
