package cmd

import "fmt"

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	InstanceID          string
	StaleAfterMinutes   string
	LockRetryAttempts   string
	LockRetryWaitMillis string
}

// PostgresDSN assembles the connection string in lib/pq key value form,
// understood by both gorm and the notification listener.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
