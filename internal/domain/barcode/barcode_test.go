package barcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-pos/internal/domain/barcode"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// CategoryCode — tabla ordenada, primera coincidencia gana
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCode_Casos(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Basmati Rice 1kg", "01"},
		{"Whole Wheat Bread", "01"}, // "wheat" gana antes que "bread"
		{"Sunflower Oil 1L", "02"},
		{"White Sugar 1kg", "03"},
		{"Fresh Milk 500ml", "04"},
		{"Chocolate Cake", "05"},
		{"Green Tea Bags", "06"},
		{"Antibacterial Soap", "10"},
		{"Face Cream 50g", "11"},
		{"Laundry Detergent Powder", "11"}, // "powder" (11) se evalúa antes que "detergent" (20)
		{"Toilet Cleaner", "20"},
		{"Tissue Box", "21"},
		{"AA Batteries Pack", "30"},
		{"Blue Ink Pen Set", "40"},
		{"Mystery Item", "99"},
		{"", "99"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, barcode.CategoryCode(tc.name))
		})
	}
}

func TestCategoryName_Conocidas(t *testing.T) {
	assert.Equal(t, "Grains & Cereals", barcode.CategoryName("01"))
	assert.Equal(t, "Stationery", barcode.CategoryName("40"))
	assert.Equal(t, "Miscellaneous", barcode.CategoryName("99"))
	assert.Equal(t, "Unknown Category", barcode.CategoryName("77"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Sequence / CheckDigit
// ──────────────────────────────────────────────────────────────────────────────

func TestSequence_DeterministaPorID(t *testing.T) {
	s1 := barcode.Sequence("rice001")
	s2 := barcode.Sequence("rice001")
	assert.Equal(t, s1, s2, "mismo ID debe producir la misma secuencia")
	assert.Len(t, s1, 6)
}

func TestSequence_IDsDistintosDivergen(t *testing.T) {
	assert.NotEqual(t, barcode.Sequence("rice001"), barcode.Sequence("rice002"))
}

func TestSequence_SinIDEsAleatoriaPeroValida(t *testing.T) {
	s := barcode.Sequence("")
	require.Len(t, s, 6)
	for i := 0; i < len(s); i++ {
		assert.True(t, s[i] >= '0' && s[i] <= '9', "la secuencia debe ser numérica: %q", s)
	}
}

func TestCheckDigit_VectorConocido(t *testing.T) {
	// 7801123456: suma = 7+3·8+0+3·1+1+3·2+3+3·4+5+3·6 = 7+24+0+3+1+6+3+12+5+18 = 79
	// dígito = (10 - 79%10) % 10 = 1
	d, err := barcode.CheckDigit("7801123456")
	require.NoError(t, err)
	assert.Equal(t, byte('1'), d)
}

func TestCheckDigit_EntradaNoNumerica(t *testing.T) {
	_, err := barcode.CheckDigit("78abc")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Generate / Validate
// ──────────────────────────────────────────────────────────────────────────────

// Caso conocido: "Basmati Rice 1kg" con id "rice001" empieza con 7801
// (prefijo de tienda 78 + categoría granos 01), 11 dígitos, checksum válido.
func TestGenerate_VectorBasmatiRice(t *testing.T) {
	code := barcode.Generate("Basmati Rice 1kg", "rice001")

	require.Len(t, code, 11)
	assert.Equal(t, "7801", code[:4])
	assert.True(t, barcode.Validate(code), "el barcode generado debe validar: %q", code)
}

func TestGenerate_Determinista(t *testing.T) {
	a := barcode.Generate("Basmati Rice 1kg", "rice001")
	b := barcode.Generate("Basmati Rice 1kg", "rice001")
	assert.Equal(t, a, b, "mismo (name, id) debe producir el mismo barcode")
}

// Validate acepta exactamente lo que Generate produce, para cualquier nombre/id.
func TestValidate_AceptaTodoLoGenerado(t *testing.T) {
	cases := []struct{ name, id string }{
		{"Basmati Rice 1kg", "rice001"},
		{"White Sugar 1kg", "sugar002"},
		{"Mystery Item", "misc-9"},
		{"Fresh Milk 500ml", "MILK001"},
		{"", "x"},
		{"Pen", ""},
	}
	for _, tc := range cases {
		code := barcode.Generate(tc.name, tc.id)
		assert.True(t, barcode.Validate(code), "Generate(%q,%q) = %q debe validar", tc.name, tc.id, code)
	}
}

// Sensibilidad del checksum: cambiar un solo dígito invalida el barcode.
// Se verifica cada sustitución posible en las posiciones 0 y 9.
func TestValidate_SensibilidadDelChecksum(t *testing.T) {
	code := barcode.Generate("Basmati Rice 1kg", "rice001")
	require.True(t, barcode.Validate(code))

	for _, pos := range []int{0, 9} {
		original := code[pos]
		for d := byte('0'); d <= '9'; d++ {
			if d == original {
				continue
			}
			mutated := code[:pos] + string(d) + code[pos+1:]
			assert.False(t, barcode.Validate(mutated),
				"sustituir posición %d por %c debe invalidar el barcode", pos, d)
		}
	}
}

func TestValidate_FormatosInvalidos(t *testing.T) {
	invalid := []string{"", "123", "1234567890", "123456789012", "78011234a67"}
	for _, c := range invalid {
		assert.False(t, barcode.Validate(c), "esperaba inválido: %q", c)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseInfo
// ──────────────────────────────────────────────────────────────────────────────

func TestParseInfo_BarcodeValido(t *testing.T) {
	code := barcode.Generate("Basmati Rice 1kg", "rice001")

	info := barcode.ParseInfo(code)
	require.NotNil(t, info)
	assert.Equal(t, "78", info.StorePrefix)
	assert.Equal(t, "01", info.CategoryCode)
	assert.Equal(t, "Grains & Cereals", info.CategoryName)
	assert.Len(t, info.ProductSequence, 6)
	assert.Equal(t, string(code[10]), info.CheckDigit)
	assert.Equal(t, code, info.FullBarcode)
}

func TestParseInfo_BarcodeInvalido(t *testing.T) {
	assert.Nil(t, barcode.ParseInfo("0000000000"))
	assert.Nil(t, barcode.ParseInfo("not-a-barcode"))
}

// ──────────────────────────────────────────────────────────────────────────────
// IsUnique / GenerateUnique
// ──────────────────────────────────────────────────────────────────────────────

func TestIsUnique_IgnoraElPropioProducto(t *testing.T) {
	code := barcode.Generate("Rice", "rice001")
	inventory := []*entity.Product{{ID: "rice001", Barcode: code}}

	assert.True(t, barcode.IsUnique(code, inventory, "rice001"),
		"el propio producto no cuenta como colisión")
	assert.False(t, barcode.IsUnique(code, inventory, "other"),
		"otro producto con el mismo barcode sí es colisión")
}

func TestGenerateUnique_SinColision(t *testing.T) {
	code, err := barcode.GenerateUnique("Basmati Rice 1kg", "rice001", nil)
	require.NoError(t, err)
	assert.True(t, barcode.Validate(code))
}

// Ante colisión, la perturbación produce otro barcode válido y único.
func TestGenerateUnique_ResuelveColision(t *testing.T) {
	colliding := barcode.Generate("Basmati Rice 1kg", "rice001")
	inventory := []*entity.Product{{ID: "otro-producto", Barcode: colliding}}

	code, err := barcode.GenerateUnique("Basmati Rice 1kg", "rice001", inventory)
	require.NoError(t, err)
	assert.NotEqual(t, colliding, code)
	assert.True(t, barcode.Validate(code), "el barcode perturbado debe seguir validando")
	assert.True(t, barcode.IsUnique(code, inventory, "rice001"))
}
