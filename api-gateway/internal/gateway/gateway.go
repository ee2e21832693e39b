package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL  string
	ReportSvcURL string
	FrontendDir  string
}

type Gateway struct {
	config  Config
	client  HTTPClient
	updates *httputil.ReverseProxy
	log     *logrus.Entry
}

// NewGateway proxies plain API calls through client. The live update stream goes
// through a reverse proxy instead so websocket upgrades reach order-svc.
func NewGateway(config Config, client HTTPClient, log *logrus.Entry) (*Gateway, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	if config.FrontendDir == "" {
		config.FrontendDir = "./frontend"
	}

	target, err := url.Parse(config.OrderSvcURL)
	if err != nil {
		return nil, fmt.Errorf("parse order service url: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("order service url %q must be absolute", config.OrderSvcURL)
	}

	updates := httputil.NewSingleHostReverseProxy(target)
	updates.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.WithError(err).WithField("path", r.URL.Path).Error("update stream proxy failed")
		http.Error(w, err.Error(), http.StatusBadGateway)
	}

	return &Gateway{
		config:  config,
		client:  client,
		updates: updates,
		log:     log,
	}, nil
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":    "healthy",
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log := g.log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"target": targetURL,
	})

	target := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		log.WithError(err).Error("failed to create upstream request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	req.Header.Set("X-Forwarded-Host", r.Host)
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		if prior := r.Header.Values("X-Forwarded-For"); len(prior) > 0 {
			ip = strings.Join(prior, ", ") + ", " + ip
		}
		req.Header.Set("X-Forwarded-For", ip)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.WithError(err).Error("upstream request failed")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.WithError(err).Warn("failed to copy upstream response")
	}
	log.WithField("status", resp.StatusCode).Debug("proxied")
}

func isReportPath(p string) bool {
	return p == "/api/reports" || strings.HasPrefix(p, "/api/reports/")
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Path

	switch {
	case p == "/api/updates":
		g.updates.ServeHTTP(w, r)
	case isReportPath(p):
		g.ProxyRequest(w, r, g.config.ReportSvcURL)
	case strings.HasPrefix(p, "/api/"), strings.HasPrefix(p, "/uploads/"):
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
	default:
		g.serveFrontend(w, r)
	}
}

// TablePage is the landing page a table's QR code points to. The front-end reads
// the table number from the URL.
func (g *Gateway) TablePage(w http.ResponseWriter, r *http.Request) {
	g.serveIndex(w, r)
}

// serveFrontend serves a file from the front-end directory when one exists at the
// request path and falls back to index.html for client-side routes.
func (g *Gateway) serveFrontend(w http.ResponseWriter, r *http.Request) {
	name := filepath.Join(g.config.FrontendDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}
	g.serveIndex(w, r)
}

func (g *Gateway) serveIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.HandleFunc("/table/{number:[0-9]+}", g.TablePage).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
