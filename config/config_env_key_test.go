package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"keyPrefix": "muslimhub",
			"redis": map[string]any{
				"addr": "localhost:6379",
			},
		},
		"prayerTimes": map[string]any{
			"cacheRadiusKm": 10,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_KEYPREFIX", want: "store.keyPrefix"},
		{envKey: "STORE_REDIS_ADDR", want: "store.redis.addr"},
		{envKey: "PRAYERTIMES_CACHERADIUSKM", want: "prayerTimes.cacheRadiusKm"},
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
