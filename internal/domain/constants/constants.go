// Package constants holds identifiers shared between configuration and infrastructure.
package constants

// Pub/Sub providers accepted in the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Object key prefixes for uploaded images. The owner's id is appended to scope the key.
const (
	StoragePrefixBusinessLogo = "business-logos"
	StoragePrefixCampaignLogo = "campaign-logos"
)

// QR payload types.
const QRTypeMembership = "membership"

// EnvLocal is the env.env value of a developer machine. Push authentication is skipped there.
const EnvLocal = "local"
