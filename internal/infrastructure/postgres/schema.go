package postgres

import (
	"context"
	"fmt"
)

// Esquema de la base. Borrar una empresa con facturas se rechaza (RESTRICT);
// las filas de unión empresa↔industria sí caen en cascada porque no llevan
// datos propios.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		code        text PRIMARY KEY,
		name        text NOT NULL,
		description text NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id        serial PRIMARY KEY,
		comp_code text NOT NULL REFERENCES companies(code) ON DELETE RESTRICT,
		amt       numeric NOT NULL CHECK (amt > 0),
		paid      boolean NOT NULL DEFAULT false,
		add_date  timestamptz NOT NULL DEFAULT now(),
		paid_date timestamptz
	)`,
	`CREATE TABLE IF NOT EXISTS industries (
		code text PRIMARY KEY,
		name text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS industries_companies (
		comp_code     text NOT NULL REFERENCES companies(code) ON DELETE CASCADE,
		industry_code text NOT NULL REFERENCES industries(code) ON DELETE CASCADE,
		PRIMARY KEY (comp_code, industry_code)
	)`,
	`CREATE INDEX IF NOT EXISTS invoices_comp_code_idx ON invoices (comp_code)`,
}

// EnsureSchema crea las tablas si no existen. Lo llaman el arranque, cmd/seed
// y los tests de integración; no es tooling de migraciones.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
