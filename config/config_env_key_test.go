package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"auth": map[string]any{
			"newAccountGracePeriod": "5m",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "AUTH_NEWACCOUNTGRACEPERIOD", want: "auth.newAccountGracePeriod"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.NewAccountGracePeriod(); got != 5*time.Minute {
		t.Fatalf("NewAccountGracePeriod() = %v, want 5m", got)
	}
	if got := cfg.OptimisticRetention(); got != 30*time.Second {
		t.Fatalf("OptimisticRetention() = %v, want 30s", got)
	}

	cfg.Auth = &AuthConfig{NewAccountGracePeriod: time.Minute}
	if got := cfg.NewAccountGracePeriod(); got != time.Minute {
		t.Fatalf("NewAccountGracePeriod() = %v, want 1m", got)
	}
}
