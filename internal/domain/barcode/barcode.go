// Package barcode genera y valida los códigos de barras numéricos del POS.
//
// Formato (11 dígitos):
//
//	[2 prefijo tienda][2 código categoría][6 secuencia de producto][1 dígito verificador]
//
// El dígito verificador es un checksum módulo 10 con pesos alternados
// (posición par ×1, impar ×3, índice base 0), al estilo EAN/UPC.
// La secuencia se deriva del ID del producto con un hash de 32 bits, por lo
// que regenerar el barcode del mismo producto es idempotente.
package barcode

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

const (
	// StorePrefix identifica a la cadena en todos los barcodes generados.
	StorePrefix = "78"

	// Length longitud total del barcode en dígitos.
	Length = 11

	sequenceLen = 6
	maxAttempts = 100
)

// ErrCollisionExhausted indica que tras maxAttempts perturbaciones no se
// encontró un barcode libre. El último candidato se retorna junto al error;
// el llamador decide si lo usa re-verificando con IsUnique.
var ErrCollisionExhausted = errors.New("barcode: intentos de generación única agotados")

// MiscCategoryCode categoría por defecto para nombres sin palabra clave conocida.
const MiscCategoryCode = "99"

// Category asocia un código de 2 dígitos con su nombre y sus palabras clave.
type Category struct {
	Code     string
	Name     string
	Keywords []string
}

/// categories es la tabla ordenada de clasificación: la primera coincidencia
// gana, así que el orden es parte del contrato (ej. "powder" clasifica como
// cosmético aunque el nombre también contenga "detergent").
var categories = []Category{
	{"01", "Grains & Cereals", []string{"rice", "wheat", "flour"}},
	{"02", "Oils & Fats", []string{"oil", "ghee", "butter"}},
	{"03", "Spices & Condiments", []string{"sugar", "salt", "spice"}},
	{"04", "Dairy Products", []string{"milk", "yogurt", "cheese"}},
	{"05", "Bakery Items", []string{"bread", "biscuit", "cake"}},
	{"06", "Beverages", []string{"tea", "coffee", "juice"}},
	{"10", "Personal Care", []string{"soap", "shampoo", "toothpaste"}},
	{"11", "Cosmetics", []string{"cream", "lotion", "powder"}},
	{"20", "Household Cleaning", []string{"detergent", "cleaner", "brush"}},
	{"21", "Paper Products", []string{"tissue", "paper", "napkin"}},
	{"30", "Electronics", []string{"battery", "bulb", "wire"}},
	{"40", "Stationery", []string{"pen", "pencil", "notebook"}},
}

// CategoryCode clasifica un nombre de producto en un código de 2 dígitos.
// Es una función total: todo nombre cae en alguna categoría (99 = miscelánea).
func CategoryCode(name string) string {
	lower := strings.ToLower(name)
	for _, c := range categories {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				return c.Code
			}
		}
	}
	return MiscCategoryCode
}

// CategoryName devuelve el nombre legible de un código de categoría.
func CategoryName(code string) string {
	if code == MiscCategoryCode {
		return "Miscellaneous"
	}
	for _, c := range categories {
		if c.Code == code {
			return c.Name
		}
	}
	return "Unknown Category"
}

// Categories devuelve una copia de la tabla de categorías (solo lectura).
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Sequence deriva la secuencia de 6 dígitos del ID del producto.
// Mismo ID ⇒ misma secuencia. Sin ID se genera una secuencia aleatoria.
func Sequence(productID string) string {
	if productID == "" {
		return fmt.Sprintf("%06d", rand.Intn(1000000))
	}
	return hashSequence(productID)
}

// hashSequence: hash rodante de 32 bits (h = h*31 + char, con overflow con
// signo), valor absoluto, y los últimos 6 dígitos con relleno de ceros.
func hashSequence(s string) string {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	seq := strconv.FormatInt(v, 10)
	if len(seq) > sequenceLen {
		return seq[len(seq)-sequenceLen:]
	}
	return strings.Repeat("0", sequenceLen-len(seq)) + seq
}

// CheckDigit calcula el dígito verificador módulo 10 sobre una cadena de
// dígitos (pesos ×1 en índices pares, ×3 en impares).
func CheckDigit(partial string) (byte, error) {
	if !allDigits(partial) {
		return 0, fmt.Errorf("barcode: la entrada debe contener solo dígitos, recibido %q", partial)
	}
	return checkDigit(partial), nil
}

// checkDigit asume que s ya es todo dígitos.
func checkDigit(s string) byte {
	sum := 0
	for i := 0; i < len(s); i++ {
		d := int(s[i] - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return byte('0' + (10-sum%10)%10)
}

// Generate genera el barcode de 11 dígitos para un producto.
// Determinista para el mismo par (name, id).
func Generate(name, productID string) string {
	partial := StorePrefix + CategoryCode(name) + Sequence(productID)
	return partial + string(checkDigit(partial))
}

// Validate acepta exactamente las cadenas producidas por Generate: 11 dígitos
// cuyo último dígito es el checksum de los 10 anteriores.
func Validate(code string) bool {
	if len(code) != Length || !allDigits(code) {
		return false
	}
	return code[Length-1] == checkDigit(code[:Length-1])
}

// Info es la descomposición de un barcode válido.
type Info struct {
	StorePrefix     string
	CategoryCode    string
	CategoryName    string
	ProductSequence string
	CheckDigit      string
	FullBarcode     string
}

// ParseInfo descompone un barcode. Retorna nil si es inválido.
func ParseInfo(code string) *Info {
	if !Validate(code) {
		return nil
	}
	catCode := code[2:4]
	return &Info{
		StorePrefix:     code[0:2],
		CategoryCode:    catCode,
		CategoryName:    CategoryName(catCode),
		ProductSequence: code[4:10],
		CheckDigit:      code[10:11],
		FullBarcode:     code,
	}
}

// IsUnique verifica que ningún otro producto del inventario (distinto de
// excludeID) tenga el mismo barcode.
func IsUnique(code string, inventory []*entity.Product, excludeID string) bool {
	for _, p := range inventory {
		if p.Barcode == code && p.ID != excludeID {
			return false
		}
	}
	return true
}

// GenerateUnique genera un barcode único contra el inventario dado. Ante una
// colisión perturba la secuencia mezclando el ID con una sal aleatoria de 3
// dígitos (re-hasheada, para que la secuencia siga siendo numérica) y
// recalcula el dígito verificador. Tras maxAttempts retorna el último
// candidato junto con ErrCollisionExhausted.
func GenerateUnique(name, productID string, inventory []*entity.Product) (string, error) {
	code := Generate(name, productID)
	for attempts := 0; !IsUnique(code, inventory, productID); attempts++ {
		if attempts >= maxAttempts {
			return code, ErrCollisionExhausted
		}
		salt := fmt.Sprintf("%03d", rand.Intn(1000))
		partial := code[:4] + hashSequence(productID+salt)
		code = partial + string(checkDigit(partial))
	}
	return code, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
