package database

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config holds configuration for the database connection.
type Config struct {
	// Enabled turns on run history persistence.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name, or the database file for sqlite.
	Name string `mapstructure:"name" default:"fxr-query.db"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
