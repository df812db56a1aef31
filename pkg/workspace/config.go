package workspace

// Config holds workspace API configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// APIKey is the integration token (required).
	APIKey string `env:"WORKSPACE_API_KEY"`

	// BaseURL is the API root. Override for tests or proxies.
	BaseURL string `env:"WORKSPACE_BASE_URL" envDefault:"https://api.notion.com/v1"`

	// Version is sent as the Notion-Version header on every request.
	Version string `env:"WORKSPACE_API_VERSION" envDefault:"2022-06-28"`

	// ContactsDB is the contacts collection identifier. Recipient
	// resolution queries this database by audience-tag intersection.
	ContactsDB string `env:"WORKSPACE_CONTACTS_DB"`
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.notion.com/v1"
	}
	if c.Version == "" {
		c.Version = "2022-06-28"
	}
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
