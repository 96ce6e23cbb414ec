package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRange parses a list of 1-based residue numbers like "1-4,9,12-13"
// into the numbers it names, in the order given. Ranges are inclusive. An
// empty string yields nil.
func ParseRange(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, nil
	}

	var nums []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		bounds := strings.SplitN(field, "-", 2)
		start, err := parsePositive(bounds[0])
		if err != nil {
			return nil, fmt.Errorf("bad range '%s': %s", field, err)
		}
		end := start
		if len(bounds) == 2 {
			end, err = parsePositive(bounds[1])
			if err != nil {
				return nil, fmt.Errorf("bad range '%s': %s", field, err)
			}
		}
		if end < start {
			return nil, fmt.Errorf("bad range '%s': %d comes before %d",
				field, end, start)
		}
		for n := start; n <= end; n++ {
			nums = append(nums, n)
		}
	}
	return nums, nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%d is not a positive number", n)
	}
	return n, nil
}
