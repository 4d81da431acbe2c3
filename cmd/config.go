package cmd

// Config carries the environment configuration for the service.
// Values are loaded from .env in main.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AutoAssignEnabled toggles the periodic assignment sweep.
	AutoAssignEnabled bool
	// AutoAssignSchedule is a cron expression with a seconds field,
	// e.g. "0 * * * * *" for every minute.
	AutoAssignSchedule string
}
