package biztrack

import (
	"context"

	"github.com/biztrack/biztrack-go/credstore"
	"github.com/biztrack/biztrack-go/transport"
)

// Client is the SDK entry point: the session manager plus one thin typed
// service per backend resource, all sharing a single transport core.
type Client struct {
	core    *transport.Core
	store   credstore.Store
	session *Manager
	events  *eventDispatcher
	metrics *metrics

	clients   *ClientsService
	items     *ItemsService
	estimates *EstimatesService
	invoices  *InvoicesService
	expenses  *ExpensesService
	company   *CompanyService
	dashboard *DashboardService
}

func newClient(core *transport.Core, store credstore.Store, session *Manager, events *eventDispatcher, m *metrics) *Client {
	c := &Client{
		core:    core,
		store:   store,
		session: session,
		events:  events,
		metrics: m,
	}
	c.clients = &ClientsService{core: core}
	c.items = &ItemsService{core: core}
	c.estimates = &EstimatesService{core: core}
	c.invoices = &InvoicesService{core: core}
	c.expenses = &ExpensesService{core: core}
	c.company = &CompanyService{core: core}
	c.dashboard = &DashboardService{core: core}
	return c
}

// Session returns the authentication authority.
func (c *Client) Session() *Manager { return c.session }

// Clients lists and edits the customers the business invoices.
func (c *Client) Clients() *ClientsService { return c.clients }

// Items manages the product/service catalog.
func (c *Client) Items() *ItemsService { return c.items }

// Estimates manages quotes and their conversion to invoices.
func (c *Client) Estimates() *EstimatesService { return c.estimates }

// Invoices reads invoices and records payments.
func (c *Client) Invoices() *InvoicesService { return c.invoices }

// Expenses logs business costs.
func (c *Client) Expenses() *ExpensesService { return c.expenses }

// Company reads and updates the business's own profile.
func (c *Client) Company() *CompanyService { return c.company }

// Dashboard fetches the financial overview.
func (c *Client) Dashboard() *DashboardService { return c.dashboard }

// Do performs an arbitrary JSON request through the shared pipeline, for
// endpoints the typed services do not cover.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	return c.core.Do(ctx, method, path, body, out)
}

// MetricsSnapshot copies the SDK's counters.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// EventsDropped reports lifecycle events lost to a full dispatch buffer.
func (c *Client) EventsDropped() uint64 {
	return c.events.Dropped()
}

// Close stops the event dispatcher after draining queued events. The client
// must not be used afterwards.
func (c *Client) Close() {
	if c == nil {
		return
	}
	c.events.Close()
}
