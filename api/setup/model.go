package setup

// DatabaseConfig holds the connection parameters collected by the wizard
type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Name     string `json:"name"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// AppConfig is the durable configuration artifact written on setup completion
type AppConfig struct {
	SiteName string         `json:"siteName"`
	Database DatabaseConfig `json:"database"`
	IsSetup  bool           `json:"isSetup"`
}

// Status is the payload of GET /api/setup/status
type Status struct {
	IsConfigured bool   `json:"isConfigured"`
	SiteName     string `json:"siteName,omitempty"`
}

// TestConnectionRequest is the body for POST /api/setup/test-db
type TestConnectionRequest struct {
	DBHost     string `json:"dbHost"`
	DBPort     int    `json:"dbPort"`
	DBName     string `json:"dbName"`
	DBUser     string `json:"dbUser"`
	DBPassword string `json:"dbPassword"`
}

// CompleteSetupRequest is the body for POST /api/setup
type CompleteSetupRequest struct {
	SiteName      string `json:"siteName"`
	DBHost        string `json:"dbHost"`
	DBPort        int    `json:"dbPort"`
	DBName        string `json:"dbName"`
	DBUser        string `json:"dbUser"`
	DBPassword    string `json:"dbPassword"`
	AdminUsername string `json:"adminUsername"`
	AdminPassword string `json:"adminPassword"`
}
