package usecase

import (
	"context"

	"github.com/gfarias/locadora-api/internal/application/dto"
	"github.com/gfarias/locadora-api/internal/application/ports"
	"github.com/gfarias/locadora-api/internal/domain"
)

// FilmeUseCase caso de uso da busca externa de filmes. Sem estado e sem
// transação: só valida a entrada e delega ao porto do catálogo.
type FilmeUseCase struct {
	catalogo ports.CatalogoFilmes
}

// NewFilmeUseCase constrói o caso de uso.
func NewFilmeUseCase(catalogo ports.CatalogoFilmes) *FilmeUseCase {
	return &FilmeUseCase{catalogo: catalogo}
}

// BuscaExterna exige o título e repassa os tipos de erro do adaptador sem
// remapear (not-found e upstream têm tratamentos HTTP distintos no handler).
func (uc *FilmeUseCase) BuscaExterna(ctx context.Context, titulo string) (*dto.FilmeEncontrado, error) {
	if titulo == "" {
		return nil, domain.NovoErro(domain.ErrInvalidInput, "Título é obrigatório.")
	}
	return uc.catalogo.BuscaPorTitulo(ctx, titulo)
}
