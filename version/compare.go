package version

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Compare orders two "MAJOR.MINOR.PATCH" versions, with or without a "v" prefix.
// It returns 1 if a is newer, -1 if b is newer and 0 if they are equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	return slices.Compare(av, bv), nil
}

func parse(s string) ([]int, error) {
	v := make([]int, 3)
	if _, err := fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d", &v[0], &v[1], &v[2]); err != nil {
		return nil, fmt.Errorf("parse version %q: %w", s, err)
	}
	return v, nil
}
