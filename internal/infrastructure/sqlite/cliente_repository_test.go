package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfarias/locadora-api/internal/domain"
	"github.com/gfarias/locadora-api/internal/domain/entity"
	"github.com/gfarias/locadora-api/internal/infrastructure/sqlite"
	"github.com/gfarias/locadora-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// abreBancoDeTeste abre um arquivo SQLite descartável com o esquema criado.
func abreBancoDeTeste(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Abre(config.DBConfig{
		Caminho: filepath.Join(t.TempDir(), "locadora_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.GaranteEsquema(context.Background()))
	return db
}

func clienteExemplo() *entity.Cliente {
	return &entity.Cliente{
		Nome:           "Maria Souza",
		CPF:            "12345678901",
		Email:          "maria@example.com",
		Telefone:       "11999990000",
		DataNascimento: "1990-05-20",
	}
}

func contaPorCPF(t *testing.T, db *sqlite.DB, cpf string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM clientes WHERE cpf = ?`, cpf).Scan(&n))
	return n
}

// ──────────────────────────────────────────────────────────────────────────────
// Esquema
// ──────────────────────────────────────────────────────────────────────────────

func TestGaranteEsquema_Idempotente(t *testing.T) {
	db := abreBancoDeTeste(t)

	// Segunda chamada não deve falhar nem apagar dados.
	repo := sqlite.NewClienteRepository(db)
	_, err := repo.Insere(clienteExemplo())
	require.NoError(t, err)

	require.NoError(t, db.GaranteEsquema(context.Background()))
	assert.Equal(t, 1, contaPorCPF(t, db, "12345678901"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositório
// ──────────────────────────────────────────────────────────────────────────────

func TestClienteRepo_InsereEReleia(t *testing.T) {
	db := abreBancoDeTeste(t)
	repo := sqlite.NewClienteRepository(db)

	criado, err := repo.Insere(clienteExemplo())
	require.NoError(t, err)
	require.NotNil(t, criado)

	assert.Positive(t, criado.ID, "o id deve vir do motor")
	assert.Equal(t, "Maria Souza", criado.Nome)
	assert.Equal(t, "12345678901", criado.CPF)
	assert.Equal(t, "maria@example.com", criado.Email)
	assert.Equal(t, "11999990000", criado.Telefone)
	assert.Equal(t, "1990-05-20", criado.DataNascimento)

	// Round-trip: a listagem devolve campo a campo o que foi inserido.
	lista, err := repo.Lista()
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, criado, lista[0])
}

func TestClienteRepo_CPFDuplicadoViraConflito(t *testing.T) {
	db := abreBancoDeTeste(t)
	repo := sqlite.NewClienteRepository(db)

	_, err := repo.Insere(clienteExemplo())
	require.NoError(t, err)

	outro := clienteExemplo()
	outro.Nome = "Outra Pessoa"
	_, err = repo.Insere(outro)
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"violação de unicidade deve ser conflito, não falha genérica")
	assert.Equal(t, "CPF já cadastrado.", err.Error())
	assert.Equal(t, 1, contaPorCPF(t, db, "12345678901"),
		"a tabela deve conter exatamente uma linha para o cpf")
}

func TestClienteRepo_ListaOrdenadaPorID(t *testing.T) {
	db := abreBancoDeTeste(t)
	repo := sqlite.NewClienteRepository(db)

	a := clienteExemplo()
	b := clienteExemplo()
	b.CPF = "98765432100"
	b.Nome = "Bruno Lima"

	_, err := repo.Insere(a)
	require.NoError(t, err)
	_, err = repo.Insere(b)
	require.NoError(t, err)

	lista, err := repo.Lista()
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Less(t, lista[0].ID, lista[1].ID)
}

func TestClienteRepo_BuscaPorIDInexistenteDevolveNil(t *testing.T) {
	db := abreBancoDeTeste(t)
	repo := sqlite.NewClienteRepository(db)

	c, err := repo.BuscaPorID(9999)
	require.NoError(t, err)
	assert.Nil(t, c)

	existe, err := repo.Existe(9999)
	require.NoError(t, err)
	assert.False(t, existe)
}

func TestClienteRepo_AtualizaCamposSoMudaOsEnviados(t *testing.T) {
	db := abreBancoDeTeste(t)
	repo := sqlite.NewClienteRepository(db)

	criado, err := repo.Insere(clienteExemplo())
	require.NoError(t, err)

	err = repo.AtualizaCampos(criado.ID, map[string]any{"nome": "Novo Nome"})
	require.NoError(t, err)

	depois, err := repo.BuscaPorID(criado.ID)
	require.NoError(t, err)
	require.NotNil(t, depois)

	assert.Equal(t, "Novo Nome", depois.Nome)
	assert.Equal(t, criado.CPF, depois.CPF, "campos não enviados ficam intactos")
	assert.Equal(t, criado.Email, depois.Email)
	assert.Equal(t, criado.Telefone, depois.Telefone)
	assert.Equal(t, criado.DataNascimento, depois.DataNascimento)
}

func TestClienteRepo_AtualizaCamposCPFDuplicado(t *testing.T) {
	db := abreBancoDeTeste(t)
	repo := sqlite.NewClienteRepository(db)

	_, err := repo.Insere(clienteExemplo())
	require.NoError(t, err)

	segundo := clienteExemplo()
	segundo.CPF = "98765432100"
	criado, err := repo.Insere(segundo)
	require.NoError(t, err)

	err = repo.AtualizaCampos(criado.ID, map[string]any{"cpf": "12345678901"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestClienteRepo_AtualizaCamposMapaVazio(t *testing.T) {
	db := abreBancoDeTeste(t)
	repo := sqlite.NewClienteRepository(db)

	criado, err := repo.Insere(clienteExemplo())
	require.NoError(t, err)

	err = repo.AtualizaCampos(criado.ID, map[string]any{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClienteRepo_Remove(t *testing.T) {
	db := abreBancoDeTeste(t)
	repo := sqlite.NewClienteRepository(db)

	criado, err := repo.Insere(clienteExemplo())
	require.NoError(t, err)

	require.NoError(t, repo.Remove(criado.ID))

	depois, err := repo.BuscaPorID(criado.ID)
	require.NoError(t, err)
	assert.Nil(t, depois, "o cliente removido não deve mais existir")

	// Remover de novo: nenhuma linha casa, vira not-found.
	err = repo.Remove(criado.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
