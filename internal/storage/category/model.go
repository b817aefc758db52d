package category

import (
	"sort"
	"strings"

	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
)

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// sortNames orders names case-insensitively, falling back to byte order so
// the result is stable.
func sortNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
}

func find(categories []ledgerfile.Category, name string, categoryType ledgerfile.TransactionType) int {
	for i, c := range categories {
		if c.Type == categoryType && sameName(c.Name, name) {
			return i
		}
	}
	return -1
}
