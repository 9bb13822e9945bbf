package sqlite

import (
	"context"
	"fmt"

	"github.com/gfarias/locadora-api/internal/application/ports"
	"github.com/gfarias/locadora-api/internal/domain/repository"
)

// Garantia em tempo de compilação de que TxRunner satisfaz o porto da aplicação.
var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner executa unidades de trabalho dentro de uma transação SQLite.
// É o contrato central de atendimento: adquirir conexão, invocar o corpo,
// commitar no sucesso, reverter em qualquer falha e sempre liberar o recurso.
type TxRunner struct {
	db *DB
}

// NewTxRunner constrói o runner sobre a conexão aberta.
func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia uma transação, executa fn com o repositório atado à tx e faz
// Commit somente quando fn devolve nil. Qualquer erro, de negócio ou do
// motor, deixa a transação para o Rollback adiado: no máximo um desfecho
// fica visível, ou tudo commitado ou o estado anterior intacto.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.ClienteRepository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewClienteRepository(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
