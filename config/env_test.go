package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("PARADE_TEST_INT", "42")
	assert.Equal(t, 42, getEnvAsInt("PARADE_TEST_INT", 1))

	t.Setenv("PARADE_TEST_INT", "not-a-number")
	assert.Equal(t, 7, getEnvAsInt("PARADE_TEST_INT", 7))

	assert.Equal(t, 3, getEnvAsInt("PARADE_TEST_INT_UNSET", 3))
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("PARADE_TEST_LIST", " https://a.example , ,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getEnvAsList("PARADE_TEST_LIST", nil))
	assert.Equal(t, []string{"x"}, getEnvAsList("PARADE_TEST_LIST_UNSET", []string{"x"}))
}

func TestGetEnvPanicsOnlyInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	assert.NotPanics(t, func() { getEnv("PARADE_TEST_REQUIRED_UNSET") })

	t.Setenv("ENVIRONMENT", "production")
	assert.Panics(t, func() { getEnv("PARADE_TEST_REQUIRED_UNSET") })
	assert.True(t, IsProduction())
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DatabaseHost:     "db",
		DatabasePort:     "5433",
		PostgresUser:     "u",
		PostgresPassword: "p",
		DatabaseName:     "parade",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=parade sslmode=disable", cfg.DSN())
}
