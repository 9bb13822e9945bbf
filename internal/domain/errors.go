package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUpstream     = errors.New("serviço externo indisponível")
)

// ErroNegocio associa uma mensagem legível ao usuário a um dos sentinelas acima.
// Error() devolve só a mensagem; errors.Is continua funcionando contra o sentinela.
type ErroNegocio struct {
	Kind     error
	Mensagem string
}

// NovoErro cria um ErroNegocio do tipo (sentinela) informado.
func NovoErro(kind error, mensagem string) *ErroNegocio {
	return &ErroNegocio{Kind: kind, Mensagem: mensagem}
}

func (e *ErroNegocio) Error() string { return e.Mensagem }

func (e *ErroNegocio) Unwrap() error { return e.Kind }
