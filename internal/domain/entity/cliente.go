package entity

// Cliente representa um cliente da locadora.
// DataNascimento fica como string YYYY-MM-DD, o mesmo formato persistido e validado.
type Cliente struct {
	ID             int64  `json:"id"`
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	DataNascimento string `json:"data_nascimento"`
}
