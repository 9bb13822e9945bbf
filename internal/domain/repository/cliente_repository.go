package repository

import "github.com/gfarias/locadora-api/internal/domain/entity"

// CamposPermitidos é a allow-list de colunas que a atualização parcial aceita.
// Qualquer campo fora desta lista é ignorado em silêncio pelo caso de uso.
var CamposPermitidos = []string{"nome", "cpf", "email", "telefone", "data_nascimento"}

// ClienteRepository define o porto de persistência para Cliente.
// As implementações podem estar atadas ao pool ou a uma transação ativa.
type ClienteRepository interface {
	// Insere persiste um novo cliente e devolve o registro relido pelo id gerado.
	// Violação de unicidade do CPF resulta em erro do tipo domain.ErrDuplicate.
	Insere(cliente *entity.Cliente) (*entity.Cliente, error)
	// Lista devolve todos os clientes ordenados por id.
	Lista() ([]*entity.Cliente, error)
	// BuscaPorID devolve o cliente ou nil se não existir.
	BuscaPorID(id int64) (*entity.Cliente, error)
	// Existe informa se há um cliente com o id dado.
	Existe(id int64) (bool, error)
	// AtualizaCampos aplica um único UPDATE cobrindo exatamente os campos
	// informados. As chaves devem vir filtradas pela allow-list; os valores
	// são sempre parâmetros vinculados.
	AtualizaCampos(id int64, campos map[string]any) error
	// Remove exclui o cliente; devolve domain.ErrNotFound se nenhuma linha casou.
	Remove(id int64) error
}
