package repository

import (
	"github.com/smark-ARK/mind-castle-gql-server/pkg/database"
)

// Repo is the relational store behind the notes core. It issues queries
// through database.Tx, so every call joins the transaction carried by the
// context when there is one.
type Repo struct {
	db database.Tx
}

func New(db database.Tx) *Repo {
	return &Repo{db: db}
}

// uniqueViolation is the Postgres error code for a unique-constraint hit.
// Duplicate-share detection relies on this code, never on error text.
const uniqueViolation = "23505"
