package sqlite

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// GaranteEsquema cria a tabela de clientes caso não exista. É idempotente e
// roda uma vez na inicialização do processo; falha aqui é condição fatal de
// startup para quem chama.
func (db *DB) GaranteEsquema(ctx context.Context) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS clientes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nome TEXT NOT NULL,
			cpf TEXT UNIQUE NOT NULL,
			email TEXT,
			telefone TEXT,
			data_nascimento TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("criar esquema: %w", err)
	}

	log.Info().Str("caminho", db.caminho).Msg("esquema do banco verificado")
	return nil
}
