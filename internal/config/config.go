package config

import "time"

// Config is the root configuration for the admin tools.
type Config struct {
	Mongo MongoConfig `yaml:"mongo"`
	Admin AdminConfig `yaml:"admin"`
	Log   LogConfig   `yaml:"log"`
}

// MongoConfig holds document-store connection settings.
type MongoConfig struct {
	// URI is the MongoDB connection string. The default database of the
	// connection string determines which database the tools operate on.
	URI                    string        `yaml:"uri"                      env:"MONGODB_URI"`
	ServerSelectionTimeout time.Duration `yaml:"server_selection_timeout" env:"MONGODB_SERVER_SELECTION_TIMEOUT" env-default:"5s"`
}

// AdminConfig holds settings of the admin panel the tools point operators at.
type AdminConfig struct {
	PanelURL string `yaml:"panel_url" env:"ADMIN_PANEL_URL" env-default:"https://instructor.pollwise.app/admin.html"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
