package routing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultRegion es la etiqueta del balde por defecto cuando ninguna regla
// coincide con la dirección.
const DefaultRegion = "general"

// Rule es una regla de clasificación geográfica: si la dirección normalizada
// contiene Keyword, el pedido cae en la región Label. Las reglas se evalúan
// en orden y gana la primera coincidencia.
type Rule struct {
	Keyword string
	Label   string
}

// Classifier clasifica direcciones de entrega en baldes regionales mediante
// una lista ordenada de reglas por palabra clave. La clasificación es
// determinista y no depende de estado compartido.
type Classifier struct {
	rules []Rule
}

// DefaultRules reglas de fábrica; las empresas las ajustan por configuración.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "norte", Label: "norte"},
		{Keyword: "sur", Label: "sur"},
		{Keyword: "oriente", Label: "oriente"},
		{Keyword: "occidente", Label: "occidente"},
		{Keyword: "centro", Label: "centro"},
	}
}

// NewClassifier construye el clasificador con las reglas dadas, normalizando
// las palabras clave una sola vez. Con reglas vacías todo cae en DefaultRegion.
func NewClassifier(rules []Rule) *Classifier {
	normalized := make([]Rule, 0, len(rules))
	for _, r := range rules {
		kw := Normalize(r.Keyword)
		if kw == "" || r.Label == "" {
			continue
		}
		normalized = append(normalized, Rule{Keyword: kw, Label: r.Label})
	}
	return &Classifier{rules: normalized}
}

// Classify devuelve la etiqueta de región para una dirección. La comparación
// es insensible a mayúsculas y acentos ("Bogotá Norte" coincide con "norte").
func (c *Classifier) Classify(address string) string {
	addr := Normalize(address)
	for _, r := range c.rules {
		if strings.Contains(addr, r.Keyword) {
			return r.Label
		}
	}
	return DefaultRegion
}

// Normalize pasa el texto a minúsculas y elimina marcas diacríticas
// (NFD + quitar Mn + NFC), para que "Medellín" y "medellin" comparen igual.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
