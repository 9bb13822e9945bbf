package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfarias/locadora-api/internal/application/dto"
	"github.com/gfarias/locadora-api/internal/application/usecase"
	"github.com/gfarias/locadora-api/internal/domain"
)

type fakeCatalogo struct {
	filme         *dto.FilmeEncontrado
	err           error
	tituloPedido  string
	foiConsultado bool
}

func (f *fakeCatalogo) BuscaPorTitulo(_ context.Context, titulo string) (*dto.FilmeEncontrado, error) {
	f.foiConsultado = true
	f.tituloPedido = titulo
	return f.filme, f.err
}

func TestBuscaExterna_TituloVazio(t *testing.T) {
	catalogo := &fakeCatalogo{}
	uc := usecase.NewFilmeUseCase(catalogo)

	_, err := uc.BuscaExterna(context.Background(), "")
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Título é obrigatório.", err.Error())
	assert.False(t, catalogo.foiConsultado, "título vazio nem chega ao catálogo")
}

func TestBuscaExterna_DelegaAoCatalogo(t *testing.T) {
	ano := 1999
	esperado := &dto.FilmeEncontrado{
		Titulo: "Matrix",
		Genero: "Ação, Ficção científica",
		Ano:    &ano,
		OmdbID: 603,
	}
	catalogo := &fakeCatalogo{filme: esperado}
	uc := usecase.NewFilmeUseCase(catalogo)

	filme, err := uc.BuscaExterna(context.Background(), "Matrix")
	require.NoError(t, err)

	assert.Equal(t, esperado, filme)
	assert.Equal(t, "Matrix", catalogo.tituloPedido)
}

func TestBuscaExterna_ErroDoCatalogoPassaIntacto(t *testing.T) {
	casos := []struct {
		nome string
		err  error
	}{
		{"não encontrado", domain.NovoErro(domain.ErrNotFound, "Filme 'Xyz' não encontrado.")},
		{"upstream fora do ar", domain.NovoErro(domain.ErrUpstream, "Erro ao buscar detalhes do filme.")},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			uc := usecase.NewFilmeUseCase(&fakeCatalogo{err: c.err})

			_, err := uc.BuscaExterna(context.Background(), "Xyz")
			require.Error(t, err)

			assert.Equal(t, c.err, err, "o caso de uso não reembala o erro do adaptador")
		})
	}
}
