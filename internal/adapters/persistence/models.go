package persistence

import (
	"github.com/hashicorp/go-memdb"
)

const vehiclesTable = "vehicles"

// VehicleModel represents a row of the vehicles table.
// Rows are immutable once inserted; updates insert a fresh model.
type VehicleModel struct {
	ID            string
	Brand         string
	FuelType      string
	Capacity      float64
	CapacityKnown bool
	Fuel          float64
}

// schema returns the in-memory database schema
func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			vehiclesTable: {
				Name: vehiclesTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}
