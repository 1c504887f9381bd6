// Package cassandra implements the row-store gateways on top of a
// Cassandra cluster. Uniqueness-bearing inserts use lightweight
// transactions (INSERT ... IF NOT EXISTS) so that a lost race is reported
// as a duplicate key instead of silently overwriting a row.
package cassandra

import (
	"fmt"

	"hotel-booking/internal/pkg/config"

	"github.com/gocql/gocql"
)

func Connect(cfg config.CassandraConfig) (*gocql.Session, func(), error) {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Keyspace = cfg.Keyspace
	cluster.Timeout = cfg.Timeout

	consistency, err := gocql.ParseConsistencyWrapper(cfg.Consistency)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid cassandra consistency %q: %w", cfg.Consistency, err)
	}
	cluster.Consistency = consistency

	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to cassandra: %w", err)
	}

	cleanup := func() {
		session.Close()
	}
	return session, cleanup, nil
}
