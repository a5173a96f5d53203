package features

import "flightfare/internal/domain"

// CheckSchema compares assembled columns against the names a model declares.
// An empty expected list means the model does not publish names and the check
// is skipped. A name listed twice on either side is a mismatch.
func CheckSchema(expected, assembled []string) error {
	if len(expected) == 0 {
		return nil
	}
	want := toSet(expected)
	have := toSet(assembled)

	var mismatch domain.SchemaMismatchError
	for _, c := range expected {
		if _, ok := have[c]; !ok {
			mismatch.Missing = append(mismatch.Missing, c)
		}
	}
	for _, c := range assembled {
		if _, ok := want[c]; !ok {
			mismatch.Extra = append(mismatch.Extra, c)
		}
	}
	mismatch.Duplicated = append(duplicates(expected), duplicates(assembled)...)
	if len(mismatch.Missing) > 0 || len(mismatch.Extra) > 0 || len(mismatch.Duplicated) > 0 {
		return mismatch
	}
	return nil
}

// CheckWidth is used for models that publish a feature count but no names.
func CheckWidth(want, got int) error {
	if want > 0 && want != got {
		return domain.SchemaMismatchError{Want: want, Got: got}
	}
	return nil
}

func toSet(cols []string) map[string]struct{} {
	out := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		out[c] = struct{}{}
	}
	return out
}

func duplicates(cols []string) []string {
	seen := make(map[string]int, len(cols))
	var out []string
	for _, c := range cols {
		seen[c]++
		if seen[c] == 2 {
			out = append(out, c)
		}
	}
	return out
}
