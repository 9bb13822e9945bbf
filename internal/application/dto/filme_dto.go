package dto

// FilmeEncontrado resultado da busca externa de filme.
// Ano é ponteiro de propósito: fica null no JSON quando o prefixo da data de
// lançamento remota não é numérico. OmdbID carrega o identificador do catálogo
// remoto sob a chave histórica omdb_id, que clientes antigos já consomem.
type FilmeEncontrado struct {
	Titulo string `json:"titulo"`
	Genero string `json:"genero"`
	Ano    *int   `json:"ano"`
	OmdbID int64  `json:"omdb_id"`
}
