// Package productcode genera códigos de producto legibles y únicos a partir
// del nombre del producto. Formato: [PREFIJO][NÚMERO] (ej. RICE001, SUGAR002).
//
// El prefijo son 3–6 caracteres [A-Z0-9] derivados del nombre; el número es
// una secuencia de 3 dígitos con relleno de ceros que rellena huecos: si
// RICE002 se elimina, el siguiente producto con prefijo RICE recibe RICE002
// de nuevo, no RICE004.
package productcode

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// FallbackPrefix se usa cuando el nombre no aporta ningún token útil
// (vacío, solo palabras comunes, solo símbolos).
const FallbackPrefix = "PROD"

// stopWords palabras comunes que no aportan al prefijo.
var stopWords = map[string]struct{}{
	"THE": {}, "AND": {}, "OR": {}, "OF": {}, "IN": {}, "ON": {},
	"AT": {}, "TO": {}, "FOR": {}, "WITH": {}, "BY": {},
}

var (
	codePattern    = regexp.MustCompile(`^[A-Z]{3,6}\d{3}$`)
	trailingDigits = regexp.MustCompile(`(\d+)$`)
	nonAlnum       = regexp.MustCompile(`[^A-Z0-9]`)
	separators     = regexp.MustCompile(`[\s\-_]+`)
)

// DerivePrefix deriva el prefijo del código a partir del nombre del producto.
// Garantiza longitud en [3,6] y alfabeto [A-Z0-9]; nombres degenerados caen en
// FallbackPrefix, nunca retorna error.
func DerivePrefix(name string) string {
	words := meaningfulWords(name)
	if len(words) == 0 {
		return FallbackPrefix
	}

	var prefix string
	switch {
	case len(words) == 1:
		// Una palabra: primeros 4–6 caracteres, acotado por su longitud.
		w := nonAlnum.ReplaceAllString(words[0], "")
		take := min(6, max(4, len(w)))
		if take > len(w) {
			take = len(w)
		}
		prefix = w[:take]
	case len(words) == 2:
		// Dos palabras: 3 primeros caracteres de cada una.
		w1 := nonAlnum.ReplaceAllString(words[0], "")
		w2 := nonAlnum.ReplaceAllString(words[1], "")
		prefix = head(w1, 3) + head(w2, 3)
	default:
		// Tres o más: 2 primeros caracteres de las 3 primeras.
		var b strings.Builder
		for _, w := range words[:3] {
			clean := nonAlnum.ReplaceAllString(w, "")
			b.WriteString(head(clean, 2))
		}
		prefix = b.String()
	}

	for len(prefix) < 3 {
		prefix += "X"
	}
	if len(prefix) > 6 {
		prefix = prefix[:6]
	}
	return prefix
}

// NextSequence devuelve el menor número de secuencia positivo no usado por los
// códigos existentes que comparten prefijo (primer hueco, si no max+1).
func NextSequence(prefix string, existingCodes []string) int {
	var nums []int
	for _, code := range existingCodes {
		if code == "" || !strings.HasPrefix(code, prefix) {
			continue
		}
		m := trailingDigits.FindStringSubmatch(code)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	sort.Ints(nums)

	next := 1
	for _, n := range nums {
		if n == next {
			next++
		} else if n > next {
			break
		}
	}
	return next
}

// GenerateUnique genera un código único contra la colección de productos dada.
// La colección no se modifica; el llamador persiste el resultado.
func GenerateUnique(name string, existing []*entity.Product) string {
	prefix := DerivePrefix(name)
	return formatCode(prefix, NextSequence(prefix, codesOf(existing)))
}

// UsedCodes acumula los códigos ya asignados durante una generación por lotes.
// El acumulador es explícito para que la dependencia secuencial del lote sea
// visible y testeable; no debe compartirse entre goroutines.
type UsedCodes struct {
	codes []string
}

// NewUsedCodes construye el acumulador a partir de los productos existentes.
func NewUsedCodes(existing []*entity.Product) *UsedCodes {
	return &UsedCodes{codes: codesOf(existing)}
}

// Add registra un código ya asignado.
func (u *UsedCodes) Add(code string) {
	u.codes = append(u.codes, code)
}

// Generate genera el siguiente código único para name y lo registra.
func (u *UsedCodes) Generate(name string) string {
	prefix := DerivePrefix(name)
	code := formatCode(prefix, NextSequence(prefix, u.codes))
	u.Add(code)
	return code
}

// GenerateBulk asigna código a cada producto en orden, alimentando cada código
// generado de vuelta al acumulador para que el lote sea mutuamente único.
// El orden de la entrada afecta la numeración; el llamador no debe paralelizar.
// Si used es nil se parte de un acumulador vacío.
func GenerateBulk(products []*entity.Product, used *UsedCodes) []*entity.Product {
	if used == nil {
		used = &UsedCodes{}
	}
	for _, p := range products {
		code := used.Generate(p.Name)
		p.Code = code
		if p.ID == "" {
			p.ID = code
		}
	}
	return products
}

// Suggest devuelve hasta count códigos candidatos para que un humano elija.
// Es salida consultiva: no garantiza unicidad global ni reserva nada.
// Primario: prefijo+001; secundario: acrónimo de las iniciales; terciario:
// última palabra; el resto se sintetiza con sufijos incrementales.
func Suggest(name string, count int) []string {
	base := DerivePrefix(name)
	suggestions := []string{base + "001"}

	if count > 1 {
		// Aquí se usan las palabras crudas (sin filtrar stop words), como
		// alternativa deliberadamente distinta al prefijo base. Se limpian al
		// alfabeto del código antes de truncar: cortar bytes sobre un nombre
		// con acentos partiría una runa.
		words := rawWords(name)
		if len(words) > 1 {
			var initials strings.Builder
			for _, w := range words {
				if clean := nonAlnum.ReplaceAllString(w, ""); clean != "" {
					initials.WriteByte(clean[0])
				}
			}
			acronym := head(initials.String(), 4)
			if acronym != base && len(acronym) >= 3 {
				suggestions = append(suggestions, padEnd(acronym, 4)+"001")
			}

			last := head(nonAlnum.ReplaceAllString(words[len(words)-1], ""), 4)
			if last != base && len(last) >= 3 {
				suggestions = append(suggestions, padEnd(last, 4)+"001")
			}
		}
	}

	for len(suggestions) < count {
		suggestions = append(suggestions, formatCode(base, len(suggestions)+1))
	}
	return suggestions[:count]
}

// Validate verifica el formato de un código: 3–6 letras seguidas de 3 dígitos
// (insensible a mayúsculas).
func Validate(code string) bool {
	return codePattern.MatchString(strings.ToUpper(code))
}

// Parsed es la descomposición de un código válido.
type Parsed struct {
	Prefix   string
	Number   int
	FullCode string // código normalizado en mayúsculas
}

// Parse descompone un código en prefijo y número. ok=false si el formato es inválido.
func Parse(code string) (Parsed, bool) {
	if !Validate(code) {
		return Parsed{}, false
	}
	upper := strings.ToUpper(code)
	n, _ := strconv.Atoi(upper[len(upper)-3:])
	return Parsed{
		Prefix:   upper[:len(upper)-3],
		Number:   n,
		FullCode: upper,
	}, true
}

// meaningfulWords tokeniza el nombre en mayúsculas y descarta stop words.
func meaningfulWords(name string) []string {
	var out []string
	for _, w := range rawWords(name) {
		if _, skip := stopWords[w]; !skip {
			out = append(out, w)
		}
	}
	return out
}

// rawWords tokeniza por espacios/guiones/guiones bajos sin filtrar stop words.
func rawWords(name string) []string {
	upper := strings.ToUpper(strings.TrimSpace(name))
	var out []string
	for _, w := range separators.Split(upper, -1) {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

func formatCode(prefix string, seq int) string {
	return fmt.Sprintf("%s%03d", prefix, seq)
}

// codesOf extrae id-o-código de cada producto para el chequeo de unicidad.
func codesOf(products []*entity.Product) []string {
	codes := make([]string, 0, len(products))
	for _, p := range products {
		if c := p.CodeOrID(); c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}

func head(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func padEnd(s string, n int) string {
	for len(s) < n {
		s += "X"
	}
	return s
}
