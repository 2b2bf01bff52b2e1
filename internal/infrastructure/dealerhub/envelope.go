package dealerhub

import "encoding/json"

// Los servicios del dealer-hub no fijaron nunca un sobre de respuesta: según
// la versión devuelven el recurso pelado, {data:...}, {quotation:...} o
// {data:{quotes:[...], pagination:{...}}}. Este normalizador acepta las
// formas conocidas con una búsqueda acotada y ordenada de campos candidatos
// (determinista y con terminación garantizada; nada de recorrer todo el árbol).

// Campos candidatos que contienen el arreglo de un listado, en orden de prueba.
var listContainerKeys = []string{"quotes", "data", "items", "results", "list"}

// ExtractRecord extrae el registro de una respuesta de recurso único.
// Acepta el registro pelado, {data: registro} y {quotation: registro},
// con hasta dos niveles de desenvoltura. ok=false cuando no hay un objeto
// utilizable (el caller degrada, no lanza).
func ExtractRecord(raw any) (map[string]any, bool) {
	return extractRecord(raw, 0)
}

func extractRecord(raw any, depth int) (map[string]any, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}
	if depth < 2 {
		for _, key := range []string{"data", "quotation"} {
			if inner, ok := m[key].(map[string]any); ok {
				return extractRecord(inner, depth+1)
			}
		}
	}
	return m, true
}

// ExtractList extrae el arreglo de registros de una respuesta de listado y
// el total reportado por la paginación del sobre (o el largo del arreglo si
// el sobre no pagina). ok=false significa respuesta malformada: el caller
// la registra y sigue con lista vacía.
func ExtractList(raw any) (items []any, total int, ok bool) {
	if arr, isArr := raw.([]any); isArr {
		return arr, len(arr), true
	}
	m, isMap := raw.(map[string]any)
	if !isMap {
		return nil, 0, false
	}
	if arr, n, found := listFrom(m); found {
		return arr, n, true
	}
	// Un nivel más abajo de data: {data:{quotes:[...], pagination:{...}}}
	if inner, isMap := m["data"].(map[string]any); isMap {
		if arr, n, found := listFrom(inner); found {
			return arr, n, true
		}
	}
	return nil, 0, false
}

func listFrom(m map[string]any) ([]any, int, bool) {
	for _, key := range listContainerKeys {
		if arr, ok := m[key].([]any); ok {
			return arr, paginationTotal(m, len(arr)), true
		}
	}
	return nil, 0, false
}

// paginationTotal busca pagination.total (o total directo) en el mismo nivel
// del arreglo; si el sobre no lo trae se usa el largo del arreglo.
func paginationTotal(m map[string]any, fallback int) int {
	if p, ok := m["pagination"].(map[string]any); ok {
		if n, ok := asInt(p["total"]); ok {
			return n
		}
	}
	if n, ok := asInt(m["total"]); ok {
		return n
	}
	return fallback
}

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		return int(x), true
	case int:
		return x, true
	case int64:
		return int(x), true
	case json.Number:
		n, err := x.Int64()
		return int(n), err == nil
	default:
		return 0, false
	}
}
