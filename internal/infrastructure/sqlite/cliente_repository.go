package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gfarias/locadora-api/internal/domain"
	"github.com/gfarias/locadora-api/internal/domain/entity"
	"github.com/gfarias/locadora-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação de ClienteRepository (usável com pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar *sql.DB ou *sql.Tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Insere persiste um novo cliente e relê a linha pelo id gerado pelo motor,
// devolvendo exatamente o que ficou gravado.
func (r *ClienteRepo) Insere(cliente *entity.Cliente) (*entity.Cliente, error) {
	res, err := r.q.Exec(`
		INSERT INTO clientes (nome, cpf, email, telefone, data_nascimento)
		VALUES (?, ?, ?, ?, ?)`,
		cliente.Nome, cliente.CPF, cliente.Email, cliente.Telefone, cliente.DataNascimento,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NovoErro(domain.ErrDuplicate, "CPF já cadastrado.")
		}
		return nil, fmt.Errorf("insert cliente: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("obter id gerado: %w", err)
	}

	criado, err := r.BuscaPorID(id)
	if err != nil {
		return nil, err
	}
	if criado == nil {
		return nil, fmt.Errorf("cliente %d sumiu após o insert", id)
	}
	return criado, nil
}

// Lista devolve todos os clientes ordenados por id.
func (r *ClienteRepo) Lista() ([]*entity.Cliente, error) {
	rows, err := r.q.Query(`
		SELECT id, nome, cpf, email, telefone, data_nascimento
		FROM clientes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.CPF, &c.Email, &c.Telefone, &c.DataNascimento); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		lista = append(lista, &c)
	}
	return lista, rows.Err()
}

// BuscaPorID obtém um cliente por id; devolve nil se não existir.
func (r *ClienteRepo) BuscaPorID(id int64) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.q.QueryRow(`
		SELECT id, nome, cpf, email, telefone, data_nascimento
		FROM clientes WHERE id = ?`, id).
		Scan(&c.ID, &c.Nome, &c.CPF, &c.Email, &c.Telefone, &c.DataNascimento)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	return &c, nil
}

// Existe informa se há um cliente com o id dado.
func (r *ClienteRepo) Existe(id int64) (bool, error) {
	var um int
	err := r.q.QueryRow(`SELECT 1 FROM clientes WHERE id = ?`, id).Scan(&um)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("verificar cliente: %w", err)
	}
	return true, nil
}

// AtualizaCampos monta um único UPDATE cobrindo exatamente os campos presentes
// no mapa. A iteração é sobre a allow-list fixa, nunca sobre as chaves vindas
// do cliente: nenhum nome de coluna externo entra no texto do SQL e os valores
// são sempre parâmetros vinculados.
func (r *ClienteRepo) AtualizaCampos(id int64, campos map[string]any) error {
	set := make([]string, 0, len(campos))
	args := make([]any, 0, len(campos)+1)
	for _, coluna := range repository.CamposPermitidos {
		valor, ok := campos[coluna]
		if !ok {
			continue
		}
		set = append(set, coluna+" = ?")
		args = append(args, valor)
	}
	if len(set) == 0 {
		return domain.NovoErro(domain.ErrInvalidInput, "Nenhum campo válido enviado.")
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE clientes SET %s WHERE id = ?", strings.Join(set, ", "))
	if _, err := r.q.Exec(query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.NovoErro(domain.ErrDuplicate, "Recurso já existe ou viola restrições.")
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Remove exclui o cliente por id; zero linhas afetadas vira not-found.
func (r *ClienteRepo) Remove(id int64) error {
	res, err := r.q.Exec(`DELETE FROM clientes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	afetadas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("contar linhas afetadas: %w", err)
	}
	if afetadas == 0 {
		return domain.NovoErro(domain.ErrNotFound, "Cliente não encontrado.")
	}
	return nil
}
