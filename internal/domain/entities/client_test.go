package entities

import (
	"errors"
	"testing"
)

func TestPessoaFisica(t *testing.T) {
	var c Client = PessoaFisica{ID: "c1", Nome: "Maria Souza", CPF: "123.456.789-09", Email: "maria@example.com", Telefone: "(11) 98765-4321"}

	if c.Kind() != ClientKindFisica {
		t.Fatalf("unexpected kind %q", c.Kind())
	}
	if c.Document() != "12345678909" {
		t.Fatalf("unexpected document %q", c.Document())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid cpf, got %v", err)
	}

	bad := PessoaFisica{CPF: "123"}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidCPF) {
		t.Fatalf("expected ErrInvalidCPF, got %v", err)
	}
}

func TestPessoaJuridica(t *testing.T) {
	pj := PessoaJuridica{RazaoSocial: "Gráfica Rápida LTDA", CNPJ: "12.345.678/0001-95"}

	t.Run("display name falls back to razao social", func(t *testing.T) {
		if pj.DisplayName() != "Gráfica Rápida LTDA" {
			t.Fatalf("unexpected name %q", pj.DisplayName())
		}
	})

	t.Run("display name prefers nome fantasia", func(t *testing.T) {
		withFantasia := pj
		withFantasia.NomeFantasia = "Rápida Print"
		if withFantasia.DisplayName() != "Rápida Print" {
			t.Fatalf("unexpected name %q", withFantasia.DisplayName())
		}
	})

	t.Run("validate", func(t *testing.T) {
		if err := pj.Validate(); err != nil {
			t.Fatalf("expected valid cnpj, got %v", err)
		}
		if err := (PessoaJuridica{CNPJ: "123.456.789-09"}).Validate(); !errors.Is(err, ErrInvalidCNPJ) {
			t.Fatalf("expected ErrInvalidCNPJ, got %v", err)
		}
	})
}
