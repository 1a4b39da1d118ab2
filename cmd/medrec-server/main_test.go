package main

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medrec/medrec/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            "8080",
		Env:             "test",
		JWTSecret:       "test-secret",
		JWTIssuer:       "medrec",
		JWTAudience:     "medrec-api",
		TokenTTLMinutes: 60,
	}
}

func TestJWTConfig(t *testing.T) {
	jwt := jwtConfig(testConfig())
	if string(jwt.Secret) != "test-secret" {
		t.Errorf("unexpected secret: %q", jwt.Secret)
	}
	if jwt.Issuer != "medrec" || jwt.Audience != "medrec-api" {
		t.Errorf("unexpected issuer/audience: %q/%q", jwt.Issuer, jwt.Audience)
	}
	if jwt.TokenTTL != time.Hour {
		t.Errorf("unexpected TTL: %v", jwt.TokenTTL)
	}
}

func TestNewServer_Routes(t *testing.T) {
	e := newServer(testConfig(), zerolog.Nop(), nil)
	paths := make(map[string]bool)
	for _, r := range e.Routes() {
		paths[r.Method+":"+r.Path] = true
	}
	for _, want := range []string{
		"GET:/health", "GET:/health/db",
		"POST:/api/auth/login",
		"GET:/api/patients", "POST:/api/patients", "PUT:/api/patients/:id", "DELETE:/api/patients/:id",
		"GET:/api/doctors", "GET:/api/doctors/:id",
		"GET:/api/medicalhistories", "POST:/api/medicalhistories",
	} {
		if !paths[want] {
			t.Errorf("missing route: %s", want)
		}
	}
}
