// Package validacao concentra regras de negócio puras, sem acesso a banco.
package validacao

import (
	"time"

	"github.com/gfarias/locadora-api/internal/domain"
)

// IdadeMinima é a idade mínima para cadastro de cliente na locadora.
const IdadeMinima = 18

// formatoData é o único layout aceito para data de nascimento.
const formatoData = "2006-01-02"

// ValidaIdade valida a data de nascimento (YYYY-MM-DD, estrita) e devolve a
// própria string junto com a idade calculada na data de hoje.
func ValidaIdade(dataNascimento string) (string, int, error) {
	return ValidaIdadeEm(dataNascimento, time.Now())
}

// ValidaIdadeEm é a variante com "hoje" explícito, usada nos testes.
//
// O parse é estrito e de propósito não faz strings.TrimSpace: uma data com
// espaço na ponta falha a validação, comportamento que a API sempre teve.
func ValidaIdadeEm(dataNascimento string, hoje time.Time) (string, int, error) {
	nascimento, err := time.Parse(formatoData, dataNascimento)
	if err != nil {
		return "", 0, domain.NovoErro(domain.ErrInvalidInput, "Data inválida. Use YYYY-MM-DD.")
	}

	idade := hoje.Year() - nascimento.Year()
	if hoje.Month() < nascimento.Month() ||
		(hoje.Month() == nascimento.Month() && hoje.Day() < nascimento.Day()) {
		idade--
	}

	if idade < IdadeMinima {
		return "", 0, domain.NovoErro(domain.ErrInvalidInput, "Cliente deve ser maior de 18 anos.")
	}

	return dataNascimento, idade, nil
}
