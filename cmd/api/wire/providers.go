package wire

import (
	"os"
	"sync"

	"settings-server/cmd/config"
	"settings-server/internal/infra/sql"
)

var (
	memoryORMOnce sync.Once
	memoryORM     sql.ORM
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(config config.AppConfig) sql.ORM {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		env = "production"
	}

	if env == "local" {
		// Every injector must see the same in-memory database or each
		// controller would run against its own empty schema.
		memoryORMOnce.Do(func() {
			orm, err := sql.NewMemoryORM()
			if err != nil {
				panic(err)
			}
			memoryORM = orm
		})

		return memoryORM
	}

	db := sql.NewPosgreDatabase(config.Postgresql.URL)
	if err := db.Open(); err != nil {
		panic(err)
	}

	orm, err := sql.NewPosgreORM(config.Postgresql.DSN)
	if err != nil {
		panic(err)
	}

	return orm
}
