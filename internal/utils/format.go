package utils

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hevile/prestacao-web/internal/core/domain"
)

// FormatBRL renders an amount in the fixed pt-BR display form, e.g.
// "R$ 1.234,56". Negative values keep the sign before the symbol's value.
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2) // "-1234.56"

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := "R$ " + grouped.String() + "," + fracPart
	if negative {
		out = "R$ -" + grouped.String() + "," + fracPart
	}
	return out
}

// FormatData converts the backend's AAAA-MM-DD date into DD/MM/AAAA for
// display. Timestamps are truncated to their date part; malformed input is
// returned unchanged.
func FormatData(data string) string {
	data, _, _ = strings.Cut(data, "T")
	parts := strings.Split(data, "-")
	if len(parts) != 3 {
		return data
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// FormatCargo maps a role to its display label.
func FormatCargo(tipo domain.Role) string {
	switch tipo {
	case domain.RoleDiretor:
		return "Diretor"
	case domain.RoleGestor:
		return "Gestor"
	case domain.RoleColaborador:
		return "Colaborador"
	case "":
		return "N/A"
	}
	return string(tipo)
}
