package dto

import "github.com/gfarias/locadora-api/internal/domain/entity"

// CadastraClienteRequest corpo do POST /clientes/.
type CadastraClienteRequest struct {
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	DataNascimento string `json:"data_nascimento"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
}

// ClienteCadastradoResponse envelope de sucesso do cadastro (201).
type ClienteCadastradoResponse struct {
	Mensagem string          `json:"mensagem"`
	Cliente  *entity.Cliente `json:"cliente"`
}

// MensagemResponse corpo de sucesso com mensagem simples.
type MensagemResponse struct {
	Mensagem string `json:"mensagem"`
}

// ErrorResponse corpo de erro HTTP; todo caminho de falha produz a chave "erro".
type ErrorResponse struct {
	Erro string `json:"erro"`
}
