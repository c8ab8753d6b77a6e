package productcode_test

import (
	"regexp"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/productcode"
)

// ──────────────────────────────────────────────────────────────────────────────
// DerivePrefix
// ──────────────────────────────────────────────────────────────────────────────

func TestDerivePrefix_Casos(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"una palabra corta", "Rice", "RICE"},
		{"una palabra media", "Sugar", "SUGAR"},
		{"una palabra larga se trunca a 6", "Detergente", "DETERG"},
		{"dos palabras 3+3", "Basmati Rice", "BASRIC"},
		{"tres o más palabras 2+2+2", "Basmati Rice 1kg", "BARI1K"},
		{"stop words se descartan", "Oil of Sunflower", "OILSUN"},
		{"guiones y guiones bajos separan", "green-tea_bags", "GRTEBA"},
		{"nombre vacío cae en PROD", "", "PROD"},
		{"solo espacios cae en PROD", "   ", "PROD"},
		{"solo stop words cae en PROD", "the and of", "PROD"},
		{"palabra de dos letras se rellena con X", "TV", "TVX"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, productcode.DerivePrefix(tc.input))
		})
	}
}

// TestDerivePrefix_Propiedades: para cualquier nombre, el prefijo tiene
// longitud en [3,6] y alfabeto [A-Z0-9] (contrato de formato del código).
func TestDerivePrefix_Propiedades(t *testing.T) {
	alphabet := regexp.MustCompile(`^[A-ZX0-9]+$`)
	names := []string{
		"Basmati Rice 1kg", "White Sugar 1kg", "Sunflower Oil 1L",
		"Fresh Milk 500ml", "Whole Wheat Bread", "Green Tea Bags",
		"Antibacterial Soap", "Laundry Detergent Powder", "AA Batteries Pack",
		"Blue Ink Pen Set", "Organic Brown Rice", "Refined Sugar",
		"Rice Flour", "Sugar Free Tablets", "a", "¡¡¡!!!", "x-y-z",
	}
	for _, name := range names {
		prefix := productcode.DerivePrefix(name)
		assert.GreaterOrEqual(t, len(prefix), 3, "prefijo de %q muy corto: %q", name, prefix)
		assert.LessOrEqual(t, len(prefix), 6, "prefijo de %q muy largo: %q", name, prefix)
		assert.Regexp(t, alphabet, prefix, "prefijo de %q con caracteres inválidos", name)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// NextSequence — asignación que rellena huecos
// ──────────────────────────────────────────────────────────────────────────────

func TestNextSequence_SinCodigos(t *testing.T) {
	assert.Equal(t, 1, productcode.NextSequence("RICE", nil))
}

func TestNextSequence_SiguienteTrasElMaximo(t *testing.T) {
	codes := []string{"RICE001", "RICE002", "RICE003"}
	assert.Equal(t, 4, productcode.NextSequence("RICE", codes))
}

// El hueco se rellena antes de continuar la serie: si RICE002 se elimina, el
// siguiente producto con prefijo RICE vuelve a recibir el 2.
func TestNextSequence_RellenaHuecos(t *testing.T) {
	codes := []string{"RICE001", "RICE003", "RICE004"}
	assert.Equal(t, 2, productcode.NextSequence("RICE", codes))
}

func TestNextSequence_IgnoraOtrosPrefijos(t *testing.T) {
	codes := []string{"SUGAR001", "SUGAR002", "RICE001"}
	assert.Equal(t, 2, productcode.NextSequence("RICE", codes))
}

func TestNextSequence_DuplicadosNoRompen(t *testing.T) {
	codes := []string{"RICE001", "RICE001", "RICE002"}
	assert.Equal(t, 3, productcode.NextSequence("RICE", codes))
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerateUnique / GenerateBulk
// ──────────────────────────────────────────────────────────────────────────────

func productsWithCodes(codes ...string) []*entity.Product {
	out := make([]*entity.Product, 0, len(codes))
	for _, c := range codes {
		out = append(out, &entity.Product{ID: c, Code: c})
	}
	return out
}

func TestGenerateUnique_NuncaColisiona(t *testing.T) {
	existing := productsWithCodes("RICE001", "RICE002")
	code := productcode.GenerateUnique("Rice", existing)

	assert.Equal(t, "RICE003", code)
	for _, p := range existing {
		assert.NotEqual(t, p.Code, code, "el código generado no debe existir en la colección")
	}
}

// Caso conocido: existen {RICE001, RICE002, RICE003}; se elimina RICE002;
// regenerar para "Rice" debe devolver RICE002 de nuevo.
func TestGenerateUnique_PropiedadGapFill(t *testing.T) {
	remaining := productsWithCodes("RICE001", "RICE003")
	assert.Equal(t, "RICE002", productcode.GenerateUnique("Rice", remaining))
}

func TestGenerateUnique_NombreDegeneradoCaeEnPROD(t *testing.T) {
	code := productcode.GenerateUnique("the of and", nil)
	assert.Equal(t, "PROD001", code)
}

// Los códigos generados pueden llevar dígitos en el prefijo ("Basmati Rice
// 1kg" → BARI1K001); Validate es el chequeo estricto (solo letras) para
// códigos ingresados a mano, así que aquí se verifica contra el alfabeto de
// generación.
func TestGenerateBulk_CodigosMutuamenteUnicos(t *testing.T) {
	generated := regexp.MustCompile(`^[A-Z0-9]{3,6}\d{3}$`)
	names := []string{
		"Basmati Rice 1kg", "Organic Brown Rice", "Rice Flour",
		"White Sugar 1kg", "Refined Sugar", "Sugar Free Tablets",
		"Fresh Milk 500ml", "Whole Wheat Bread",
	}
	products := make([]*entity.Product, 0, len(names))
	for _, n := range names {
		products = append(products, &entity.Product{Name: n})
	}

	out := productcode.GenerateBulk(products, nil)

	seen := make(map[string]string, len(out))
	for _, p := range out {
		require.Regexp(t, generated, p.Code, "código fuera del alfabeto de generación: %q", p.Code)
		prev, dup := seen[p.Code]
		require.False(t, dup, "código %q repetido entre %q y %q", p.Code, prev, p.Name)
		seen[p.Code] = p.Name
	}
}

// El acumulador explícito permite sembrar el lote con códigos ya existentes.
func TestGenerateBulk_RespetaAcumuladorSembrado(t *testing.T) {
	existing := productsWithCodes("RICE001")
	used := productcode.NewUsedCodes(existing)

	out := productcode.GenerateBulk([]*entity.Product{{Name: "Rice"}}, used)

	require.Len(t, out, 1)
	assert.Equal(t, "RICE002", out[0].Code, "debe saltar el código ya ocupado")
	assert.Equal(t, "RICE002", out[0].ID, "sin ID previo, el código pasa a ser el ID")
}

func TestGenerateBulk_ConservaIDExistente(t *testing.T) {
	out := productcode.GenerateBulk([]*entity.Product{{ID: "legacy-1", Name: "Rice"}}, nil)
	assert.Equal(t, "legacy-1", out[0].ID)
	assert.Equal(t, "RICE001", out[0].Code)
}

// El orden de entrada determina la numeración (dependencia secuencial declarada).
func TestGenerateBulk_OrdenDeterminaNumeracion(t *testing.T) {
	a := productcode.GenerateBulk([]*entity.Product{{Name: "Rice"}, {Name: "Rice"}}, nil)
	assert.Equal(t, "RICE001", a[0].Code)
	assert.Equal(t, "RICE002", a[1].Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Suggest
// ──────────────────────────────────────────────────────────────────────────────

func TestSuggest_PrimariaEsPrefijoMas001(t *testing.T) {
	got := productcode.Suggest("Basmati Rice", 1)
	require.Len(t, got, 1)
	assert.Equal(t, "BASRIC001", got[0])
}

func TestSuggest_RellenaConVariaciones(t *testing.T) {
	got := productcode.Suggest("Rice", 3)
	require.Len(t, got, 3)
	assert.Equal(t, "RICE001", got[0])
	assert.Equal(t, "RICE002", got[1])
	assert.Equal(t, "RICE003", got[2])
}

func TestSuggest_UltimaPalabraComoAlternativa(t *testing.T) {
	got := productcode.Suggest("Basmati Rice", 3)
	require.Len(t, got, 3)
	assert.Contains(t, got, "RICE001", "la última palabra (RICE) debe aparecer como alternativa")
}

// Los nombres con acentos no deben producir sugerencias fuera del alfabeto
// del código: truncar bytes sobre "CAFÉ" partiría la runa É.
func TestSuggest_NombresConAcentos(t *testing.T) {
	alphabet := regexp.MustCompile(`^[A-Z0-9X]{3,6}\d{3}$`)
	for _, name := range []string{"Café Molido 500g", "Azúcar Refinada", "Ñame Fresco (kg)"} {
		for _, s := range productcode.Suggest(name, 3) {
			assert.True(t, utf8.ValidString(s), "sugerencia con UTF-8 inválido para %q: %q", name, s)
			assert.Regexp(t, alphabet, s, "sugerencia fuera del alfabeto para %q: %q", name, s)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate / Parse
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_Casos(t *testing.T) {
	valid := []string{"RICE001", "PROD999", "ABC123", "SUGARX002", "rice001"}
	// SUGARX002: 6 letras + 3 dígitos.
	for _, c := range valid {
		assert.True(t, productcode.Validate(c), "esperaba válido: %q", c)
	}

	invalid := []string{"", "RICE", "001", "RI001", "TOOLONGG001", "RICE01", "RICE0001", "RICE 001"}
	for _, c := range invalid {
		assert.False(t, productcode.Validate(c), "esperaba inválido: %q", c)
	}
}

func TestParse_CodigoValido(t *testing.T) {
	p, ok := productcode.Parse("rice001")
	require.True(t, ok)
	assert.Equal(t, "RICE", p.Prefix)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, "RICE001", p.FullCode)
}

func TestParse_CodigoInvalido(t *testing.T) {
	_, ok := productcode.Parse("not-a-code")
	assert.False(t, ok)
}
