// Package names hands out readable labels for shapes that arrive without one,
// so CLI output and rendered images can refer to "BraveOtter" instead of
// "polygon 7".
package names

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

var (
	mu   sync.Mutex
	memo = make(map[string]string)
	used = make(map[string]struct{})
)

func init() {
	// Labels are handed out in order of demand, so the same label would mean
	// different shapes between runs anyway. Make that obvious.
	petname.NonDeterministicMode()
}

// Label returns the label for key, generating one on first use. The same key
// always gets the same label within a process, and distinct keys never share
// one. Labels are not stable between runs.
func Label(key string) string {
	mu.Lock()
	defer mu.Unlock()

	if label, ok := memo[key]; ok {
		return label
	}
	label := generate()
	for attempt := 2; ; attempt++ {
		if _, taken := used[label]; !taken {
			break
		}
		label = fmt.Sprintf("%s%d", generate(), attempt)
	}
	memo[key] = label
	used[label] = struct{}{}
	return label
}

// Index is Label for the i-th shape of an input.
func Index(i int) string {
	return Label(fmt.Sprintf("#%d", i))
}

func generate() string {
	return title(petname.Adjective()) + title(petname.Name())
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
