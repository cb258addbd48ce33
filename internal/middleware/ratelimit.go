package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"inkwash/internal/i18n"
)

// RateLimit enforces a per-client request budget. Each client gets a token
// bucket that refills to perMinute requests over a minute; the buckets live
// in an expiring cache so idle clients do not accumulate.
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		perMinute = 1
	}
	limiters := cache.New(10*time.Minute, 15*time.Minute)
	interval := time.Minute / time.Duration(perMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIPForRateLimit(r)
			if !limiterFor(limiters, ip, interval, perMinute).Allow() {
				locale := LocaleFromContext(r.Context())
				writeLimitError(w, http.StatusTooManyRequests, "rate_limited", i18n.T(locale, "rate_limited"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func limiterFor(limiters *cache.Cache, key string, interval time.Duration, burst int) *rate.Limiter {
	if cached, ok := limiters.Get(key); ok {
		if limiter, ok := cached.(*rate.Limiter); ok {
			return limiter
		}
	}
	limiter := rate.NewLimiter(rate.Every(interval), burst)
	if err := limiters.Add(key, limiter, cache.DefaultExpiration); err != nil {
		if cached, ok := limiters.Get(key); ok {
			if existing, ok := cached.(*rate.Limiter); ok {
				return existing
			}
		}
	}
	return limiter
}

func writeLimitError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

func clientIPForRateLimit(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if ip == "" {
				continue
			}
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		if net.ParseIP(host) != nil {
			return host
		}
	} else if net.ParseIP(r.RemoteAddr) != nil {
		return r.RemoteAddr
	}

	return r.RemoteAddr
}
