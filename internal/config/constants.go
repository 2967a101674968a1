package config

const (
	// DefaultPort matches the port the bookclub frontend expects.
	DefaultPort = 3004

	DefaultDatabasePath = "./bookclub.db"

	// DefaultMaintenanceSchedule runs database maintenance nightly.
	DefaultMaintenanceSchedule = "0 3 * * *"
)
