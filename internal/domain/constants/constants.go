// Package constants defines shared provider and environment identifiers.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// StoreProviderRedis selects the Redis key-value store.
	StoreProviderRedis = "redis"
	// StoreProviderPostgres selects the PostgreSQL key-value store.
	StoreProviderPostgres = "postgres"
	// StoreProviderMemory selects the in-process key-value store.
	StoreProviderMemory = "memory"

	// LocationProviderAgent selects the HTTP device-agent location sensor.
	LocationProviderAgent = "agent"
	// LocationProviderStatic selects the fixed-coordinate location sensor.
	LocationProviderStatic = "static"
)
