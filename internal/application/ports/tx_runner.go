package ports

import (
	"context"

	"github.com/gfarias/locadora-api/internal/domain/repository"
)

// TxRunner é o porto de saída para executar uma unidade de trabalho atômica.
// A implementação adquire a conexão, invoca fn com o repositório atado à
// transação e commita apenas quando fn devolve nil; qualquer erro reverte.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.ClienteRepository) error) error
}
