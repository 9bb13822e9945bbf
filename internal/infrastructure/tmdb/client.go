// Package tmdb implementa o porto CatalogoFilmes consultando a API REST do
// TMDB (busca por título seguida de detalhes do primeiro resultado).
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gfarias/locadora-api/internal/application/dto"
	"github.com/gfarias/locadora-api/internal/application/ports"
	"github.com/gfarias/locadora-api/internal/domain"
)

// Verificação em tempo de compilação de que Client implementa CatalogoFilmes.
var _ ports.CatalogoFilmes = (*Client)(nil)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultLanguage = "pt-BR"
	defaultTimeout  = 10 * time.Second

	searchPath = "/search/movie"
	moviePath  = "/movie"
)

// Config parâmetros do cliente TMDB.
type Config struct {
	APIKey   string
	BaseURL  string        // vazio = API pública do TMDB
	Language string        // vazio = pt-BR
	Timeout  time.Duration // zero = 10 s
}

// Client adaptador do catálogo externo. Usa net/http da biblioteca padrão com
// timeout de rede; não requer SDK.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// NewClient constrói o adaptador aplicando os defaults da Config.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	language := cfg.Language
	if language == "" {
		language = defaultLanguage
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		language:   language,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ── Estruturas do protocolo TMDB ──────────────────────────────────────────────

type searchResponse struct {
	Results []struct {
		ID int64 `json:"id"`
	} `json:"results"`
}

type detailsResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Genres      []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

// ── Implementação do porto ────────────────────────────────────────────────────

// BuscaPorTitulo procura o título no catálogo e devolve os detalhes do
// primeiro resultado. Catálogo vazio é not-found; qualquer falha de transporte
// ou de parsing colapsa num erro upstream genérico, com a causa real apenas
// logada no servidor.
func (c *Client) BuscaPorTitulo(ctx context.Context, titulo string) (*dto.FilmeEncontrado, error) {
	if c.apiKey == "" {
		log.Error().Msg("TMDB_API_KEY não configurada")
		return nil, erroUpstreamGenerico()
	}

	var busca searchResponse
	if err := c.get(ctx, searchPath, url.Values{"query": {titulo}}, &busca); err != nil {
		log.Error().Err(err).Str("titulo", titulo).Msg("falha na busca TMDB")
		return nil, erroUpstreamGenerico()
	}
	if len(busca.Results) == 0 {
		return nil, domain.NovoErro(domain.ErrNotFound, fmt.Sprintf("Filme '%s' não encontrado.", titulo))
	}

	tmdbID := busca.Results[0].ID
	var detalhes detailsResponse
	if err := c.get(ctx, fmt.Sprintf("%s/%d", moviePath, tmdbID), nil, &detalhes); err != nil {
		log.Error().Err(err).Int64("tmdb_id", tmdbID).Msg("falha nos detalhes TMDB")
		return nil, erroUpstreamGenerico()
	}

	generos := make([]string, 0, len(detalhes.Genres))
	for _, g := range detalhes.Genres {
		generos = append(generos, g.Name)
	}

	// Ano sai do prefixo YYYY da data de lançamento; não numérico fica null.
	var ano *int
	if prefixo, _, _ := strings.Cut(detalhes.ReleaseDate, "-"); prefixo != "" {
		if n, err := strconv.Atoi(prefixo); err == nil {
			ano = &n
		}
	}

	return &dto.FilmeEncontrado{
		Titulo: detalhes.Title,
		Genero: strings.Join(generos, ", "),
		Ano:    ano,
		OmdbID: detalhes.ID,
	}, nil
}

// get faz um GET autenticado na API e decodifica o JSON em out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("montar requisição: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("chamar TMDB: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		corpo, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("TMDB devolveu status %d: %s", res.StatusCode, corpo)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar resposta: %w", err)
	}
	return nil
}

// erroUpstreamGenerico é a única mensagem que sai para o chamador em falhas do
// catálogo; a causa real vai só para o log. Os erros de banco, ao contrário,
// expõem a mensagem do motor, contrato que os clientes da API já dependem.
func erroUpstreamGenerico() error {
	return domain.NovoErro(domain.ErrUpstream, "Erro ao buscar detalhes do filme.")
}
