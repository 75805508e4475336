package model

// ResolveDefaultValue follows v's default-mode value through references
// until a concrete value is reached. Each hop uses the referenced variable's
// own collection default mode, so chains may cross collections.
func ResolveDefaultValue(index Index, v *Variable) (Value, error) {
	return resolveDefault(index, v, make(map[string]bool), nil)
}

func resolveDefault(index Index, v *Variable, visited map[string]bool, chain []string) (Value, error) {
	chain = append(chain, v.Key)
	if visited[v.Key] {
		return nil, &CycleError{Chain: chain}
	}
	visited[v.Key] = true

	mv, ok := v.ValueForMode(v.Collection.DefaultMode)
	if !ok {
		return nil, &LookupError{Kind: ErrMissingMode, ID: v.Collection.DefaultMode, Context: v.Key}
	}

	switch val := mv.(type) {
	case Reference:
		target, ok := index[val.TargetKey]
		if !ok {
			return nil, &LookupError{Kind: ErrMissingVariable, ID: val.TargetKey, Context: v.Key}
		}
		return resolveDefault(index, target, visited, chain)
	case Value:
		return val, nil
	default:
		return nil, &ValueError{Variable: v.Key, Mode: v.Collection.DefaultMode, Reason: "unknown value kind"}
	}
}
