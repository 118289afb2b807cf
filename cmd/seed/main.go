// Seed de desarrollo: aplica el esquema y carga datos de demostración.
// Uso: go run ./cmd/seed
package main

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/biztime-api/pkg/config"
	"github.com/tu-usuario/biztime-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	seeds := []string{
		`INSERT INTO companies (code, name, description)
		 VALUES ('apple', 'Apple Computer', 'Maker of OSX.'),
		        ('ibm', 'IBM', 'Big blue.')
		 ON CONFLICT (code) DO NOTHING`,

		`INSERT INTO invoices (comp_code, amt, paid, paid_date)
		 SELECT v.comp_code, v.amt, v.paid, v.paid_date
		 FROM (VALUES
		   ('apple', 100.00, false, NULL::timestamptz),
		   ('apple', 200.00, true,  '2018-01-01'::timestamptz),
		   ('apple', 300.00, false, NULL),
		   ('ibm',   400.00, false, NULL)
		 ) AS v(comp_code, amt, paid, paid_date)
		 WHERE NOT EXISTS (SELECT 1 FROM invoices)`,

		`INSERT INTO industries (code, name)
		 VALUES ('acct', 'Accounting'),
		        ('tech', 'Technology')
		 ON CONFLICT (code) DO NOTHING`,

		`INSERT INTO industries_companies (industry_code, comp_code)
		 VALUES ('tech', 'apple'),
		        ('acct', 'ibm')
		 ON CONFLICT DO NOTHING`,
	}
	for _, stmt := range seeds {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatal().Err(err).Msg("insertar datos de demostración")
		}
	}

	log.Info().Msg("seed completado")
}
