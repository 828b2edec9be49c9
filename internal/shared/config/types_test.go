package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerConfig_GetAddr(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 8081}
	assert.Equal(t, "127.0.0.1:8081", cfg.GetAddr())
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Username: "desk",
		Password: "secret",
		Host:     "db",
		Port:     3306,
		Database: "ticketing",
	}
	assert.Equal(t,
		"desk:secret@tcp(db:3306)/ticketing?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		cfg.GetDSN())
}

func TestDatabaseConfig_IsSQLite(t *testing.T) {
	assert.True(t, (&DatabaseConfig{Driver: "sqlite"}).IsSQLite())
	assert.True(t, (&DatabaseConfig{Driver: "sqlite3"}).IsSQLite())
	assert.False(t, (&DatabaseConfig{Driver: "mysql"}).IsSQLite())
}

func TestRedisConfig_GetAddr(t *testing.T) {
	cfg := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", cfg.GetAddr())
}
