package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tableside/api-gateway/internal/gateway"
	"tableside/api-gateway/internal/mocks"
)

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func newGateway(t *testing.T, client gateway.HTTPClient, frontendDir string) *gateway.Gateway {
	t.Helper()
	gw, err := gateway.NewGateway(gateway.Config{
		OrderSvcURL:  "http://order-svc",
		ReportSvcURL: "http://report-svc",
		FrontendDir:  frontendDir,
	}, client, quietLogger())
	require.NoError(t, err)
	return gw
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := newGateway(t, nil, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_Upstreams(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		wantURL  string
		wantBody string
	}{
		{
			name:    "report",
			method:  http.MethodGet,
			path:    "/api/reports?period=week",
			wantURL: "http://report-svc/api/reports?period=week",
		},
		{
			name:    "report_export",
			method:  http.MethodGet,
			path:    "/api/reports/export?period=today",
			wantURL: "http://report-svc/api/reports/export?period=today",
		},
		{
			name:     "orders",
			method:   http.MethodPost,
			path:     "/api/orders",
			wantURL:  "http://order-svc/api/orders",
			wantBody: `{"table":5}`,
		},
		{
			name:    "prefix_is_not_a_report",
			method:  http.MethodGet,
			path:    "/api/reportsfoo",
			wantURL: "http://order-svc/api/reportsfoo",
		},
		{
			name:    "table_by_number",
			method:  http.MethodGet,
			path:    "/api/tables/number/5",
			wantURL: "http://order-svc/api/tables/number/5",
		},
		{
			name:    "uploaded_image",
			method:  http.MethodGet,
			path:    "/uploads/item-1.png",
			wantURL: "http://order-svc/uploads/item-1.png",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := newGateway(t, mockClient, t.TempDir())

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				if req.URL.String() != testCase.wantURL || req.Method != testCase.method {
					return false
				}
				if testCase.wantBody == "" {
					return true
				}
				body, _ := io.ReadAll(req.Body)
				return string(body) == testCase.wantBody
			})).Return(okResponse(`{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, strings.NewReader(testCase.wantBody))
			rr := httptest.NewRecorder()

			gw.SetupRoutes().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestGateway_RouteHandler_PassesStatusAndHeaders(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := newGateway(t, mockClient, t.TempDir())

	resp := &http.Response{
		StatusCode: http.StatusConflict,
		Body:       io.NopCloser(strings.NewReader(`{"error":"table number already exists"}`)),
		Header:     http.Header{"X-Request-Id": []string{"abc"}},
	}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("Authorization") == "Bearer staff" && req.Header.Get("X-Forwarded-Host") == "example.com"
	})).Return(resp, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "http://example.com/api/tables", strings.NewReader(`{"number":5}`))
	req.Header.Set("Authorization", "Bearer staff")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "abc", rr.Header().Get("X-Request-Id"))
	assert.Contains(t, rr.Body.String(), "already exists")
}

func TestGateway_RouteHandler_ForwardedFor(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		want      string
	}{
		{
			name: "direct_client",
			want: "192.0.2.1",
		},
		{
			name:      "appends_to_existing_chain",
			forwarded: "203.0.113.9",
			want:      "203.0.113.9, 192.0.2.1",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := newGateway(t, mockClient, t.TempDir())

			var got string
			mockClient.On("Do", mock.Anything).Run(func(args mock.Arguments) {
				got = args.Get(0).(*http.Request).Header.Get("X-Forwarded-For")
			}).Return(okResponse(`[]`), nil).Once()

			req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
			if testCase.forwarded != "" {
				req.Header.Set("X-Forwarded-For", testCase.forwarded)
			}
			rr := httptest.NewRecorder()

			gw.RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := newGateway(t, mockClient, t.TempDir())

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_Frontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>tableside</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('menu')"), 0o644))

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{name: "table_landing_page", path: "/table/5", wantCode: http.StatusOK, wantBody: "tableside"},
		{name: "root", path: "/", wantCode: http.StatusOK, wantBody: "tableside"},
		{name: "client_route", path: "/admin/orders", wantCode: http.StatusOK, wantBody: "tableside"},
		{name: "static_asset", path: "/app.js", wantCode: http.StatusOK, wantBody: "console.log"},
		{name: "missing_asset_falls_back", path: "/assets/missing.css", wantCode: http.StatusOK, wantBody: "tableside"},
	}

	gw := newGateway(t, nil, dir)
	router := gw.SetupRoutes()

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.wantCode, rr.Code)
			assert.Contains(t, rr.Body.String(), testCase.wantBody)
		})
	}
}

func TestGateway_UpdatesWebsocketPassthrough(t *testing.T) {
	upgrader := websocket.Upgrader{}
	orderSvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/updates" {
			http.NotFound(w, r)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.WriteJSON(map[string]string{"entity": "orders", "entities": r.URL.Query().Get("entities")})
	}))
	defer orderSvc.Close()

	gw, err := gateway.NewGateway(gateway.Config{
		OrderSvcURL:  orderSvc.URL,
		ReportSvcURL: "http://report-svc",
		FrontendDir:  t.TempDir(),
	}, nil, quietLogger())
	require.NoError(t, err)

	front := httptest.NewServer(gw.SetupRoutes())
	defer front.Close()

	wsURL := "ws" + strings.TrimPrefix(front.URL, "http") + "/api/updates?entities=orders"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	var frame map[string]string
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "orders", frame["entity"])
	assert.Equal(t, "orders", frame["entities"])
}

func TestNewGateway_InvalidOrderURL(t *testing.T) {
	for _, raw := range []string{"://bad", "order-svc:8081", ""} {
		_, err := gateway.NewGateway(gateway.Config{OrderSvcURL: raw}, nil, nil)
		assert.Error(t, err, raw)
	}
}
