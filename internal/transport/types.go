package transport

import "github.com/goodnatureofminers/halving-countdown/internal/halving/service"

// SnapshotProvider exposes the latest countdown state.
type SnapshotProvider interface {
	Snapshot() service.Snapshot
}
