package poller

//go:generate mockgen -destination=mock_poller.go -package=poller github.com/heliotrace/solarmesh/pkg/poller Clock,Ticker,SyncPublisher

import (
	"context"
	"time"

	"github.com/heliotrace/solarmesh/pkg/models"
)

// Clock abstracts time-related operations.
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) Ticker
}

// Ticker abstracts the ticker behavior.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// SyncPublisher pushes device snapshots to the control plane. The scheduler
// marks devices synced only after a successful publish, so a broker outage
// just leaves them queued for the next sweep.
type SyncPublisher interface {
	PublishDeviceSync(ctx context.Context, devices []*models.Device) error
}
