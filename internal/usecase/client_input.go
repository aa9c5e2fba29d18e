package usecase

import (
	"strings"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

// ClientInput is the loosely shaped customer record received from callers.
// ToClient turns it into the tagged PessoaFisica/PessoaJuridica form.
type ClientInput struct {
	Kind         entities.ClientKind `validate:"required,oneof=fisica juridica"`
	ID           string
	Nome         string `validate:"required_if=Kind fisica"`
	CPF          string `validate:"required_if=Kind fisica"`
	RazaoSocial  string `validate:"required_if=Kind juridica"`
	NomeFantasia string
	CNPJ         string `validate:"required_if=Kind juridica"`
	Responsavel  string
	Email        string `validate:"omitempty,email"`
	Telefone     string
}

func (c ClientInput) ToClient() (entities.Client, error) {
	var client entities.Client
	switch c.Kind {
	case entities.ClientKindJuridica:
		client = entities.PessoaJuridica{
			ID:           strings.TrimSpace(c.ID),
			RazaoSocial:  strings.TrimSpace(c.RazaoSocial),
			NomeFantasia: strings.TrimSpace(c.NomeFantasia),
			CNPJ:         entities.OnlyDigits(c.CNPJ),
			Responsavel:  strings.TrimSpace(c.Responsavel),
			Email:        strings.TrimSpace(c.Email),
			Telefone:     strings.TrimSpace(c.Telefone),
		}
	default:
		client = entities.PessoaFisica{
			ID:       strings.TrimSpace(c.ID),
			Nome:     strings.TrimSpace(c.Nome),
			CPF:      entities.OnlyDigits(c.CPF),
			Email:    strings.TrimSpace(c.Email),
			Telefone: strings.TrimSpace(c.Telefone),
		}
	}
	if err := client.Validate(); err != nil {
		return nil, err
	}
	return client, nil
}
