package ports

import (
	"context"

	"github.com/gfarias/locadora-api/internal/application/dto"
)

// CatalogoFilmes define o porto de saída para consulta de metadados de filmes
// num catálogo remoto. A implementação concreta usa a API do TMDB; para testes
// se injeta um fake.
type CatalogoFilmes interface {
	// BuscaPorTitulo procura o título e devolve os detalhes do primeiro
	// resultado. Catálogo alcançável porém vazio vira domain.ErrNotFound;
	// falha de transporte ou de parsing vira domain.ErrUpstream com mensagem
	// genérica (a causa real fica só no log do servidor).
	BuscaPorTitulo(ctx context.Context, titulo string) (*dto.FilmeEncontrado, error)
}
