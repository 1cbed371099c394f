package core

// Deduplicate keeps the first record for each Key, preserving input order.
// Later records with a key already seen are returned in dropped.
func Deduplicate(records []Record) (unique, dropped []Record) {
	seen := make(map[Key]struct{}, len(records))
	unique = make([]Record, 0, len(records))

	for _, r := range records {
		k := r.Key()
		if _, ok := seen[k]; ok {
			dropped = append(dropped, r)
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, r)
	}
	return unique, dropped
}
