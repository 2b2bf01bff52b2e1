package pricing

import (
	"sort"
	"strings"

	"github.com/minhlahunday/dealer-portal-api/internal/domain/entity"
)

// Campos candidatos donde los distintos servicios del dealer-hub envuelven
// el arreglo de entradas de catálogo. Orden fijo para que la resolución sea
// determinista ante sobres ambiguos.
var catalogContainerKeys = []string{"data", "items", "records", "results"}

// BuildIndex construye el índice id -> precio a partir de la respuesta cruda
// (JSON ya decodificado) de un catálogo de accesorios u opciones.
// Tolera tres formas: arreglo directo, objeto con uno de los campos candidatos,
// y hasta dos niveles extra de anidamiento del mismo patrón. Si no encuentra
// un arreglo devuelve un índice vacío, nunca un error: un catálogo caído
// degrada a "sin precios de referencia".
//
// Entradas sin identificador o con precio no numérico se omiten del índice
// (la ausencia debe distinguirse de un precio legítimamente cero).
func BuildIndex(raw any) entity.CatalogIndex {
	idx := entity.CatalogIndex{}
	for _, e := range findEntryArray(raw, 0) {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		id := entryID(m)
		if id == "" {
			continue
		}
		price, ok := toDecimal(m["price"])
		if !ok {
			continue
		}
		idx[id] = price
	}
	return idx
}

// findEntryArray busca el arreglo de entradas: en cada nivel prueba los
// campos candidatos en orden; un arreglo se acepta, un objeto se explora un
// nivel más (acotado a 2 niveles extra para garantizar terminación).
func findEntryArray(raw any, depth int) []any {
	if arr, ok := raw.([]any); ok {
		return arr
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	for _, key := range catalogContainerKeys {
		v, ok := m[key]
		if !ok {
			continue
		}
		if arr, ok := v.([]any); ok {
			return arr
		}
		if depth < 2 {
			if nested, ok := v.(map[string]any); ok {
				if arr := findEntryArray(nested, depth+1); arr != nil {
					return arr
				}
			}
		}
	}
	return nil
}

// entryID extrae el identificador de una entrada: _id, id, o cualquier campo
// de dominio con sufijo _id (accessory_id, option_id, ...). Los sufijos se
// recorren en orden alfabético para que el resultado no dependa del orden de
// iteración del map.
func entryID(m map[string]any) string {
	if id := asString(m["_id"]); id != "" {
		return id
	}
	if id := asString(m["id"]); id != "" {
		return id
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		if strings.HasSuffix(k, "_id") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if id := asString(m[k]); id != "" {
			return id
		}
	}
	return ""
}
