// Package words supplies the random words that fall in the game.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/lixenwraith/wordfall/game"
)

//go:embed default_words.txt
var embeddedWords string

// CommentPrefixes identify comment lines in word files
var CommentPrefixes = []string{"#", "//"}

// Default returns the embedded word list
func Default() []string {
	list, _ := Parse(strings.NewReader(embeddedWords))
	return list
}

// LoadFile reads a word list from path
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("words", len(list)).Msg("loaded word list")
	return list, nil
}

// Parse reads one word per line, skipping blanks and comments, lowercasing,
// dropping anything that is not purely alphabetic, and removing duplicates
func Parse(r io.Reader) ([]string, error) {
	var raw []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := sanitizeLine(scanner.Text())
		if line == "" || isCommentLine(line) {
			continue
		}
		raw = append(raw, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	valid := lo.Filter(raw, func(w string, _ int) bool {
		if !game.ValidWord(w) {
			log.Debug().Str("word", w).Msg("skipping non-alphabetic word")
			return false
		}
		return true
	})
	return lo.Uniq(valid), nil
}

func sanitizeLine(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

func isCommentLine(line string) bool {
	for _, prefix := range CommentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
