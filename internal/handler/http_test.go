package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"order-viewer/internal/entities"
	"order-viewer/internal/handler"
	"order-viewer/internal/present"
	"order-viewer/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLookup mimics the orchestrator: blank input is rejected without
// touching the snapshot, anything else commits the configured outcome.
type stubLookup struct {
	snap    service.Snapshot
	outcome service.Snapshot
	lastUID string
	submits int
}

func (s *stubLookup) Submit(_ context.Context, raw string) (service.Snapshot, error) {
	if strings.TrimSpace(raw) == "" {
		return s.snap, entities.ErrEmptyOrderUID
	}
	s.submits++
	s.lastUID = strings.TrimSpace(raw)
	s.snap = s.outcome
	return s.snap, nil
}

func (s *stubLookup) Snapshot() service.Snapshot {
	return s.snap
}

type fetcherFunc func(ctx context.Context, orderUID string) (entities.Order, error)

func (f fetcherFunc) FetchOrder(ctx context.Context, orderUID string) (entities.Order, error) {
	return f(ctx, orderUID)
}

func newRouter(t *testing.T, svc handler.LookupService) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func successSnapshot() service.Snapshot {
	return service.Snapshot{
		State: service.StateSuccess,
		Seq:   1,
		Order: entities.Order{
			OrderUID: "b563feb7b2b84b6test",
			Payment:  entities.Payment{Transaction: "t1", Currency: "USD", Amount: 1817},
			Items: []entities.Item{
				{ChrtID: 1, Name: "Mask", Brand: "Vivienne Sabo", Price: 453, Sale: 30, TotalPrice: 317},
			},
		},
	}
}

func TestHTTPHandler_Index(t *testing.T) {
	r := newRouter(t, &stubLookup{snap: service.Snapshot{State: service.StateIdle}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "<form")
}

func TestHTTPHandler_Index_ShowsCurrentOrder(t *testing.T) {
	r := newRouter(t, &stubLookup{snap: successSnapshot()})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Mask")
	assert.Contains(t, rr.Body.String(), "453 USD")
}

func TestHTTPHandler_Lookup(t *testing.T) {
	testCases := []struct {
		name      string
		form      url.Values
		outcome   service.Snapshot
		wantBody  []string
		wantCalls int
	}{
		{
			name:      "blank input surfaces validation error without a lookup",
			form:      url.Values{"order_uid": {"   "}},
			wantBody:  []string{"Please enter an order number"},
			wantCalls: 0,
		},
		{
			name:    "success renders the order sections",
			form:    url.Values{"order_uid": {"b563feb7b2b84b6test"}},
			outcome: successSnapshot(),
			wantBody: []string{
				"Mask", "Vivienne Sabo", "453 USD", "317 USD", "1817 USD", `id="item-1"`,
			},
			wantCalls: 1,
		},
		{
			name: "failure renders the error message",
			form: url.Values{"order_uid": {"missing"}},
			outcome: service.Snapshot{
				State: service.StateFailure,
				Seq:   1,
				Err:   "server responded with status 404",
			},
			wantBody:  []string{"server responded with status 404"},
			wantCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubLookup{outcome: tc.outcome}
			r := newRouter(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/lookup", strings.NewReader(tc.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			for _, want := range tc.wantBody {
				assert.Contains(t, rr.Body.String(), want)
			}
			assert.Equal(t, tc.wantCalls, svc.submits)
		})
	}
}

func TestHTTPHandler_GetDisplayModel(t *testing.T) {
	t.Run("success returns the display model", func(t *testing.T) {
		svc := &stubLookup{outcome: successSnapshot()}
		r := newRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/order/b563feb7b2b84b6test", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "b563feb7b2b84b6test", svc.lastUID)

		var model present.DisplayModel
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &model))
		require.Len(t, model.Items, 1)
		assert.Equal(t, 1, model.Items[0].ChrtID)
		assert.Equal(t, "453 USD", model.Items[0].Price)
	})

	t.Run("identifier that cannot be unescaped passes through unchanged", func(t *testing.T) {
		svc := &stubLookup{outcome: successSnapshot()}
		r := newRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/order/placeholder", nil)
		req.URL.Path = "/api/order/%zz"
		req.URL.RawPath = ""
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "%zz", svc.lastUID)
	})

	t.Run("blank identifier returns 400", func(t *testing.T) {
		svc := &stubLookup{}
		r := newRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/order/%20%20", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, 0, svc.submits)
	})

	t.Run("superseded lookup returns 409, never the newer order", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		started := make(chan struct{})
		release := make(chan struct{})
		var calls int32
		svc := service.NewLookupService(logger, fetcherFunc(func(ctx context.Context, orderUID string) (entities.Order, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				close(started)
				<-release
			}
			return entities.Order{
				OrderUID: orderUID,
				Payment:  entities.Payment{Transaction: "t1", Currency: "USD"},
			}, nil
		}))
		r := newRouter(t, svc)

		firstDone := make(chan *httptest.ResponseRecorder)
		go func() {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/order/aaa", nil))
			firstDone <- rr
		}()

		<-started

		second := httptest.NewRecorder()
		r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/order/bbb", nil))
		require.Equal(t, http.StatusOK, second.Code)

		close(release)
		first := <-firstDone

		assert.Equal(t, http.StatusConflict, first.Code)
		assert.NotContains(t, first.Body.String(), "bbb")
		assert.Contains(t, first.Body.String(), "superseded")
	})

	t.Run("failure returns 502 with the message", func(t *testing.T) {
		svc := &stubLookup{outcome: service.Snapshot{
			State: service.StateFailure,
			Seq:   1,
			Err:   "server responded with status 404",
		}}
		r := newRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/order/missing", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Contains(t, rr.Body.String(), "404")
	})
}
