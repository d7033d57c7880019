package repository

import (
	"github.com/jmoiron/sqlx"
)

// NewPostgresStore wires every repository to the given database handle.
// Schema bootstrap happens in database/postgres when the database is
// first created.
func NewPostgresStore(db *sqlx.DB) *Store {
	return &Store{
		Contacts:      &contactPostgres{db: db},
		Leads:         &leadPostgres{db: db},
		Policies:      &policyPostgres{db: db},
		Claims:        &claimPostgres{db: db},
		Documents:     &documentPostgres{db: db},
		BrokerProfile: &brokerProfilePostgres{db: db},
	}
}
