package main

import (
	"math"
	"testing"
)

func TestCurrencySymbol(t *testing.T) {
	tests := []struct {
		currency Currency
		expected string
	}{
		{EUR, "€"},
		{USD, "$"},
		{GBP, "£"},
		{"CHF", "£"},
		{"", "£"},
	}

	for _, tt := range tests {
		t.Run(string(tt.currency), func(t *testing.T) {
			if got := currencySymbol(tt.currency); got != tt.expected {
				t.Errorf("currencySymbol(%q) = %q, want %q", tt.currency, got, tt.expected)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"zero", 0, "0.00"},
		{"integer amount", 14, "14.00"},
		{"decimal amount", 30.60, "30.60"},
		{"large amount", 1234.56, "1234.56"},
		{"half rounds away from zero", 0.125, "0.13"},
		{"float noise", 70.84 + 87.20, "158.04"},
		{"negative", -12.5, "-12.50"},
		{"nan", math.NaN(), "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAmount(tt.amount); got != tt.expected {
				t.Errorf("formatAmount(%v) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		symbol   string
		amount   float64
		expected string
	}{
		{"€", 158.04, "€ 158.04"},
		{"$", -12, "-$ 12.00"},
		{"£", -0.001, "£ 0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatMoney(tt.symbol, tt.amount); got != tt.expected {
				t.Errorf("formatMoney(%q, %v) = %q, want %q", tt.symbol, tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		v        float64
		expected string
	}{
		{2, "2"},
		{1.5, "1.5"},
		{0, "0"},
		{35.42, "35.42"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatQuantity(tt.v); got != tt.expected {
				t.Errorf("formatQuantity(%v) = %q, want %q", tt.v, got, tt.expected)
			}
		})
	}
}

func TestDownloadFilename(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		id       string
		expected string
	}{
		{"plain", "FACTURA", "001", "FACTURA_001.pdf"},
		{"path separators", "a/b", "..\\c", "a-b_..-c.pdf"},
		{"blank", "", "", "document.pdf"},
		{"spaces kept", "Quote 2026", "Q-7", "Quote 2026_Q-7.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := downloadFilename(&Invoice{Title: tt.title, ID: tt.id})
			if got != tt.expected {
				t.Errorf("downloadFilename(%q, %q) = %q, want %q", tt.title, tt.id, got, tt.expected)
			}
		})
	}
}
