package types

// AuthProvider identifies which backend verifies admin credentials
type AuthProvider string

const (
	// AuthProviderSupabase delegates credential checks to Supabase
	AuthProviderSupabase AuthProvider = "supabase"
	// AuthProviderLocal verifies against credentials from configuration.
	// Only available when the deployment mode is local.
	AuthProviderLocal AuthProvider = "local"
)
