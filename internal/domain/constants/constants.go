// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// PlatformTypeWeb tags access events originating from the web client.
	PlatformTypeWeb = "web"

	// RoleAdmin marks sessions allowed to run moderation operations.
	RoleAdmin = "admin"
)
