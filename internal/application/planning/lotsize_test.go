package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/mrp-planner/internal/application/planning"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal inválido %q: %v", s, err)
	}
	return v
}

func TestLotSize(t *testing.T) {
	cases := []struct {
		name     string
		shortage string
		moq      string
		pack     string
		want     string
	}{
		{"sin faltante no hay pedido", "0", "15", "10", "0"},
		{"faltante negativo no hay pedido", "-3", "15", "10", "0"},
		{"eleva al MOQ y redondea a pack", "15", "15", "10", "20"},
		{"faltante por debajo del MOQ", "2", "15", "10", "20"},
		{"faltante ya múltiplo del pack", "40", "10", "10", "40"},
		{"faltante fraccional redondea arriba", "10.5", "0", "4", "12"},
		{"MOQ cero solo redondea", "7", "0", "5", "10"},
		{"pack 1 no redondea", "13", "0", "1", "13"},
		// pack no positivo: la validación lo rechaza antes; la función queda
		// total tratándolo como 1.
		{"pack cero cae al fallback 1", "13", "0", "0", "13"},
		{"pack negativo cae al fallback 1", "8", "10", "-2", "10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := planning.LotSize(d(t, tc.shortage), d(t, tc.moq), d(t, tc.pack))
			assert.True(t, got.Equal(d(t, tc.want)), "LotSize(%s, %s, %s) = %s, se esperaba %s",
				tc.shortage, tc.moq, tc.pack, got, tc.want)
		})
	}
}

func TestLotSizePositivoCumpleCotas(t *testing.T) {
	// Toda cantidad positiva es >= MOQ y múltiplo entero del pack.
	moq := d(t, "15")
	pack := d(t, "10")
	for _, shortage := range []string{"0.1", "1", "14.99", "15", "16", "149", "150"} {
		qty := planning.LotSize(d(t, shortage), moq, pack)
		assert.True(t, qty.GreaterThanOrEqual(moq), "faltante %s: %s < MOQ", shortage, qty)
		assert.True(t, qty.Mod(pack).IsZero(), "faltante %s: %s no es múltiplo de %s", shortage, qty, pack)
	}
}
