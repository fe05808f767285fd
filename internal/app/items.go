package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rojanmagar2001/primeprobe/internal/domain"
)

// LoadItems picks the probe list: positional args first, then the
// comma-separated list, then the input file. Nil means "use the defaults".
func LoadItems(args []string, numbers, inputPath string) ([]domain.Item, error) {
	switch {
	case len(args) > 0:
		return domain.ItemsFrom(args), nil
	case strings.TrimSpace(numbers) != "":
		return splitList(numbers), nil
	case inputPath != "":
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()

		items, err := ReadItems(f)
		if err != nil {
			return nil, fmt.Errorf("read input %s: %w", inputPath, err)
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("input %s has no numbers", inputPath)
		}
		return items, nil
	}
	return nil, nil
}

// ReadItems reads one item per line. Blank lines and lines starting
// with # are skipped.
func ReadItems(r io.Reader) ([]domain.Item, error) {
	var out []domain.Item

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, domain.Item(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func splitList(s string) []domain.Item {
	var out []domain.Item
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, domain.Item(p))
		}
	}
	return out
}
