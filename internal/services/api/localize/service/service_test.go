package service

import (
	"testing"

	"falnama/internal/services/api/localize/domain"
)

func TestDigits(t *testing.T) {
	s := New()
	if got := s.Digits(domain.DigitsInput{Text: "ch 3 of 12"}).Text; got != "ch ۳ of ۱۲" {
		t.Fatalf("Digits = %q", got)
	}
	if got := s.Digits(domain.DigitsInput{}).Text; got != "" {
		t.Fatalf("empty in empty out, got %q", got)
	}
}

func TestNumber(t *testing.T) {
	s := New()
	if got := s.Number(domain.NumberInput{Value: -13}).Text; got != "-۱۳" {
		t.Fatalf("Number = %q", got)
	}
	if got := s.Number(domain.NumberInput{Value: 1234567, Grouped: true}).Text; got != "۱٬۲۳۴٬۵۶۷" {
		t.Fatalf("grouped Number = %q", got)
	}
}

func TestOrdinal(t *testing.T) {
	s := New()
	if got := s.Ordinal(domain.OrdinalInput{Value: 1}).Text; got != "اول" {
		t.Fatalf("Ordinal(1) = %q", got)
	}
	if got := s.Ordinal(domain.OrdinalInput{Value: 11}).Text; got != "۱۱م" {
		t.Fatalf("Ordinal(11) = %q", got)
	}
}

func TestDate(t *testing.T) {
	s := New()
	if got := s.Date(domain.DateInput{Date: "2024-01-01"}).Text; got != "۱۴۰۲/۱۰/۱۱" {
		t.Fatalf("Date = %q", got)
	}
	if got := s.Date(domain.DateInput{}).Text; got != "" {
		t.Fatalf("empty date should stay empty, got %q", got)
	}
}
