package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/oldenfyre/inventory-console/internal/models"
	"github.com/oldenfyre/inventory-console/internal/remote"
)

const defaultRecentOrders = 5

// DashboardData aggregates the three dashboard fetches. Each slot
// carries either its payload or its own error message; one slot failing
// at the application level does not blank the others.
type DashboardData struct {
	Stats       *models.DashboardStats  `json:"stats,omitempty"`
	StatsError  string                  `json:"statsError,omitempty"`
	Recent      []OrderRow              `json:"recentOrders,omitempty"`
	RecentError string                  `json:"recentOrdersError,omitempty"`
	Alerts      *models.InventoryAlerts `json:"alerts,omitempty"`
	AlertsError string                  `json:"alertsError,omitempty"`
}

// dashboardCache keeps the last computed snapshot guarded by a
// generation counter, so a slow fetch never overwrites the result of a
// newer request.
var dashboardCache struct {
	mu         sync.Mutex
	generation uint64
	snapshot   *DashboardData
}

func beginDashboardFetch() uint64 {
	dashboardCache.mu.Lock()
	defer dashboardCache.mu.Unlock()
	dashboardCache.generation++
	return dashboardCache.generation
}

// commitDashboard stores the snapshot only if no newer fetch has
// started since gen was taken.
func commitDashboard(gen uint64, data *DashboardData) {
	dashboardCache.mu.Lock()
	defer dashboardCache.mu.Unlock()
	if dashboardCache.generation == gen {
		dashboardCache.snapshot = data
	}
}

func lastDashboard() *DashboardData {
	dashboardCache.mu.Lock()
	defer dashboardCache.mu.Unlock()
	return dashboardCache.snapshot
}

const skippedMessage = "Skipped: the backend is unreachable."

// slotError records a fetch failure in its slot. Connectivity problems
// cancel the remaining fetches (no point stacking timeouts);
// application failures stay local to their slot.
func slotError(ctx context.Context, err error, slot *string) error {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		*slot = skippedMessage
		return nil
	}
	*slot = remote.Humanize(err)
	if remote.Connectivity(err) {
		return err
	}
	return nil
}

// GetDashboardHandler godoc
// @Summary Dashboard overview: stats, recent orders, inventory alerts
// @Tags dashboard
// @Produce json
// @Param limit query int false "Recent orders to include (default 5)"
// @Success 200 {object} Response
// @Router /console/dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentOrders
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	gen := beginDashboardFetch()
	data := &DashboardData{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		stats, err := client.DashboardStats(ctx)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			return slotError(ctx, err, &data.StatsError)
		}
		data.Stats = &stats
		return nil
	})

	g.Go(func() error {
		orders, err := client.RecentOrders(ctx, limit)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			return slotError(ctx, err, &data.RecentError)
		}
		rows := make([]OrderRow, len(orders))
		for i, o := range orders {
			rows[i] = orderRow(o)
		}
		data.Recent = rows
		return nil
	})

	g.Go(func() error {
		alerts, err := client.InventoryAlerts(ctx)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			return slotError(ctx, err, &data.AlertsError)
		}
		data.Alerts = &alerts
		return nil
	})

	// Per-slot errors are already recorded; the group error is non-nil
	// only when a connectivity failure cut the fan-out short.
	unreachable := g.Wait() != nil

	if data.Stats == nil && data.Recent == nil && data.Alerts == nil {
		// Nothing came back. Serve the last good snapshot if there is
		// one instead of clobbering it with an empty page; an all-error
		// result is never cached.
		if last := lastDashboard(); last != nil {
			msg := "Showing the last loaded dashboard; the backend rejected every request."
			if unreachable {
				msg = "Showing the last loaded dashboard; the backend is not responding."
			}
			writeJSON(w, http.StatusOK, okMsg(msg, last))
			return
		}
		writeJSON(w, http.StatusOK, ok(data))
		return
	}

	commitDashboard(gen, data)
	writeJSON(w, http.StatusOK, ok(data))
}
