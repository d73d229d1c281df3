package postgres

import (
	"testing"

	"github.com/SergeyBogomolovv/green-basket/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.Postgres{
		Host:     "db",
		Port:     5432,
		DBName:   "green_basket",
		User:     "basket",
		Password: "secret",
		SSLMode:  "disable",
	})

	assert.Equal(t, "host=db port=5432 user=basket password=secret dbname=green_basket sslmode=disable", dsn)
}
