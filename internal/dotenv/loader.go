package dotenv

import (
	"fmt"

	"github.com/joho/godotenv"
)

// Load parses each file with godotenv, which also expands ${VAR} references
// against keys of the same parsed set, and folds the per-file results in
// order: a key appearing in a later file overwrites the same key from an
// earlier one. The first read or parse failure aborts the remaining merge and
// is returned as a recoverable error; the caller decides whether to log it.
func Load(files []string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, file := range files {
		parsed, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		for key, value := range parsed {
			merged[key] = value
		}
	}
	return merged, nil
}

// Filter applies the include/exclude key lists to the merged map and returns
// the retained subset. A set include list wins outright: only its keys are
// kept and exclude is ignored even when both are configured. Otherwise a set
// exclude list drops its keys. With neither set the input is returned as-is.
func Filter(merged map[string]string, include, exclude []string) map[string]string {
	if include != nil {
		keep := keySet(include)
		retained := make(map[string]string, len(keep))
		for key, value := range merged {
			if _, ok := keep[key]; ok {
				retained[key] = value
			}
		}
		return retained
	}

	if exclude != nil {
		drop := keySet(exclude)
		retained := make(map[string]string, len(merged))
		for key, value := range merged {
			if _, ok := drop[key]; !ok {
				retained[key] = value
			}
		}
		return retained
	}

	return merged
}

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}
