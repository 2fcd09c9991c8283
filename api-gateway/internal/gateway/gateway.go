package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL  string
	NotifySvcURL string
	FrontendDir  string
}

type Gateway struct {
	config Config
	client HTTPClient
	log    *logrus.Entry
}

func NewGateway(config Config, client HTTPClient, log *logrus.Entry) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		log:    log,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	g.log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"target": targetURL,
	}).Debug("proxy")

	upstream := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		upstream += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, upstream, r.Body)
	if err != nil {
		g.log.WithError(err).Error("failed to create request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.WithError(err).WithField("target", targetURL).Error("failed to proxy")
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.log.WithError(err).Warn("failed to copy response")
	}
}

// ProxyWebSocket hands an upgrade request to targetURL and pipes the
// hijacked connection in both directions.
func (g *Gateway) ProxyWebSocket(w http.ResponseWriter, r *http.Request, targetURL string) {
	target, err := url.Parse(targetURL)
	if err != nil {
		g.log.WithError(err).Error("invalid upstream url")
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		g.log.WithError(err).WithField("target", targetURL).Error("failed to proxy websocket")
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}
	proxy.ServeHTTP(w, r)
}

func isWebSocket(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
}

// orderPrefixes are served by order-svc.
var orderPrefixes = []string{
	"/api/auth/",
	"/api/me",
	"/api/menu/",
	"/api/cart",
	"/api/checkout",
	"/api/orders",
	"/api/bill/",
	"/api/tables",
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	g.log.WithFields(logrus.Fields{"method": r.Method, "path": path}).Debug("route")

	if strings.HasPrefix(path, "/api/notifications") || strings.HasPrefix(path, "/api/analytics/") {
		if isWebSocket(r) {
			g.ProxyWebSocket(w, r, g.config.NotifySvcURL)
			return
		}
		g.ProxyRequest(w, r, g.config.NotifySvcURL)
		return
	}

	// menus are addressed by category; /api/categories/{c}/dishes is kept
	// for older clients
	if strings.HasPrefix(path, "/api/categories/") && strings.HasSuffix(path, "/dishes") {
		parts := strings.Split(path, "/")
		if len(parts) == 5 && parts[3] != "" {
			r.URL.Path = "/api/menu/" + parts[3]
			g.ProxyRequest(w, r, g.config.OrderSvcURL)
			return
		}
	}

	if hasAnyPrefix(path, orderPrefixes) || strings.HasPrefix(path, "/uploads/") {
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/") {
		g.log.WithField("path", path).Warn("unmatched api route")
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/uploads/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
