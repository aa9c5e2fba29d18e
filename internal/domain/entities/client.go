package entities

import (
	"errors"
	"strings"
	"unicode"
)

type ClientKind string

const (
	ClientKindFisica   ClientKind = "fisica"
	ClientKindJuridica ClientKind = "juridica"
)

var (
	ErrInvalidCPF  = errors.New("invalid cpf")
	ErrInvalidCNPJ = errors.New("invalid cnpj")
)

// Client is a customer record. Only PessoaFisica and PessoaJuridica implement it.
type Client interface {
	ClientID() string
	Kind() ClientKind
	DisplayName() string
	Document() string
	Contact() (email, phone string)
	Validate() error
	isClient()
}

// PessoaFisica is an individual customer identified by CPF.
type PessoaFisica struct {
	ID       string
	Nome     string
	CPF      string
	Email    string
	Telefone string
}

// PessoaJuridica is a company customer identified by CNPJ.
type PessoaJuridica struct {
	ID           string
	RazaoSocial  string
	NomeFantasia string
	CNPJ         string
	Responsavel  string
	Email        string
	Telefone     string
}

func (p PessoaFisica) ClientID() string               { return p.ID }
func (p PessoaFisica) Kind() ClientKind               { return ClientKindFisica }
func (p PessoaFisica) DisplayName() string            { return p.Nome }
func (p PessoaFisica) Document() string               { return OnlyDigits(p.CPF) }
func (p PessoaFisica) Contact() (email, phone string) { return p.Email, p.Telefone }
func (PessoaFisica) isClient()                        {}

func (p PessoaFisica) Validate() error {
	if len(p.Document()) != 11 {
		return ErrInvalidCPF
	}
	return nil
}

func (p PessoaJuridica) ClientID() string               { return p.ID }
func (p PessoaJuridica) Kind() ClientKind               { return ClientKindJuridica }
func (p PessoaJuridica) Document() string               { return OnlyDigits(p.CNPJ) }
func (p PessoaJuridica) Contact() (email, phone string) { return p.Email, p.Telefone }
func (PessoaJuridica) isClient()                        {}

func (p PessoaJuridica) DisplayName() string {
	if strings.TrimSpace(p.NomeFantasia) != "" {
		return p.NomeFantasia
	}
	return p.RazaoSocial
}

func (p PessoaJuridica) Validate() error {
	if len(p.Document()) != 14 {
		return ErrInvalidCNPJ
	}
	return nil
}

// OnlyDigits strips punctuation from documents and phone numbers.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
