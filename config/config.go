package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL        string
	RedisAddress string

	// Admin allowlist: an organizational domain suffix plus one dedicated
	// admin address.
	AdminEmailDomain string
	AdminEmail       string

	// Cloudinary credentials for the media store.
	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	AllowedOrigins []string
}
