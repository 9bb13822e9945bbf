package usecase

import (
	"context"

	"github.com/gfarias/locadora-api/internal/application/dto"
	"github.com/gfarias/locadora-api/internal/application/ports"
	"github.com/gfarias/locadora-api/internal/domain"
	"github.com/gfarias/locadora-api/internal/domain/entity"
	"github.com/gfarias/locadora-api/internal/domain/repository"
	"github.com/gfarias/locadora-api/internal/domain/validacao"
)

// ClienteUseCase casos de uso do registro de clientes. Toda operação que toca
// o banco passa pelo TxRunner; as validações de entrada acontecem antes de
// qualquer conexão ser aberta.
type ClienteUseCase struct {
	tx ports.TxRunner
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(tx ports.TxRunner) *ClienteUseCase {
	return &ClienteUseCase{tx: tx}
}

// Cadastra valida presença dos obrigatórios e a idade, depois insere e relê o
// cliente dentro de uma transação. CPF repetido surge como conflito, nunca
// como falha genérica.
func (uc *ClienteUseCase) Cadastra(ctx context.Context, in dto.CadastraClienteRequest) (*entity.Cliente, error) {
	if in.Nome == "" || in.CPF == "" || in.DataNascimento == "" {
		return nil, domain.NovoErro(domain.ErrInvalidInput, "Campos obrigatórios faltando.")
	}
	if _, _, err := validacao.ValidaIdade(in.DataNascimento); err != nil {
		return nil, err
	}

	var criado *entity.Cliente
	err := uc.tx.Run(ctx, func(repo repository.ClienteRepository) error {
		var err error
		criado, err = repo.Insere(&entity.Cliente{
			Nome:           in.Nome,
			CPF:            in.CPF,
			Email:          in.Email,
			Telefone:       in.Telefone,
			DataNascimento: in.DataNascimento,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return criado, nil
}

// Lista devolve todos os clientes; nunca nil, para que o JSON seja sempre um array.
func (uc *ClienteUseCase) Lista(ctx context.Context) ([]*entity.Cliente, error) {
	var lista []*entity.Cliente
	err := uc.tx.Run(ctx, func(repo repository.ClienteRepository) error {
		var err error
		lista, err = repo.Lista()
		return err
	})
	if err != nil {
		return nil, err
	}
	if lista == nil {
		lista = []*entity.Cliente{}
	}
	return lista, nil
}

// Atualiza aplica uma atualização parcial. A ordem das checagens é parte do
// contrato: id inexistente responde 404 antes de qualquer inspeção do corpo;
// mapa vazio e mapa sem campo reconhecido são rejeições distintas; campos fora
// da allow-list são ignorados em silêncio; data_nascimento é revalidada e
// derruba a requisição inteira quando inválida.
func (uc *ClienteUseCase) Atualiza(ctx context.Context, id int64, campos map[string]any) error {
	return uc.tx.Run(ctx, func(repo repository.ClienteRepository) error {
		existe, err := repo.Existe(id)
		if err != nil {
			return err
		}
		if !existe {
			return domain.NovoErro(domain.ErrNotFound, "Cliente não encontrado.")
		}
		if len(campos) == 0 {
			return domain.NovoErro(domain.ErrInvalidInput, "Nenhum campo enviado.")
		}

		filtrados := make(map[string]any, len(campos))
		for campo, valor := range campos {
			switch campo {
			case "data_nascimento":
				data, ok := valor.(string)
				if !ok {
					return domain.NovoErro(domain.ErrInvalidInput, "Data inválida. Use YYYY-MM-DD.")
				}
				if _, _, err := validacao.ValidaIdade(data); err != nil {
					return err
				}
				filtrados[campo] = data
			case "nome", "cpf", "email", "telefone":
				filtrados[campo] = valor
			}
		}
		if len(filtrados) == 0 {
			return domain.NovoErro(domain.ErrInvalidInput, "Nenhum campo válido enviado.")
		}

		return repo.AtualizaCampos(id, filtrados)
	})
}

// Remove exclui o cliente; id inexistente surge como not-found.
func (uc *ClienteUseCase) Remove(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(repo repository.ClienteRepository) error {
		return repo.Remove(id)
	})
}
