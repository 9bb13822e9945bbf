// Package sqlite implementa a persistência da locadora sobre um único arquivo
// SQLite (driver modernc.org/sqlite, sem cgo).
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/gfarias/locadora-api/pkg/config"
)

// DB encapsula a conexão com o arquivo SQLite da locadora.
type DB struct {
	*sql.DB
	caminho string
}

// Abre cria a conexão com o arquivo apontado pela configuração (caminho já
// absoluto) com enforcement de chaves estrangeiras ligado e busy timeout para
// escritas concorrentes serializadas pelo motor.
func Abre(cfg config.DBConfig) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Caminho)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir banco: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping no banco: %w", err)
	}

	// SQLite serializa escritas; o pool pequeno cobre leituras concorrentes.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	log.Debug().Str("caminho", cfg.Caminho).Msg("conexão com o banco estabelecida")

	return &DB{DB: db, caminho: cfg.Caminho}, nil
}

// Caminho devolve o caminho do arquivo do banco.
func (db *DB) Caminho() string {
	return db.caminho
}

// Querier é o subconjunto de database/sql comum a *sql.DB e *sql.Tx, para que
// o repositório funcione atado ao pool ou a uma transação ativa.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
