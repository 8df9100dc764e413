package words

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/wordfall/game"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Plain words",
			input:    "cat\ndog\n",
			expected: []string{"cat", "dog"},
		},
		{
			name:     "Comments and blanks skipped",
			input:    "# header\n\ncat\n// note\n  dog  \n",
			expected: []string{"cat", "dog"},
		},
		{
			name:     "Lowercased and de-duplicated",
			input:    "Cat\ncat\nDOG\n",
			expected: []string{"cat", "dog"},
		},
		{
			name:     "Non-alphabetic dropped",
			input:    "ice cream\nr2d2\nco-op\nowl\n",
			expected: []string{"owl"},
		},
		{
			name:     "Non-ASCII letters dropped",
			input:    "café\nnaïve\nzoo\n",
			expected: []string{"zoo"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(test.input))
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if strings.Join(got, ",") != strings.Join(test.expected, ",") {
				t.Errorf("Expected %v, got %v", test.expected, got)
			}
		})
	}
}

// TestParsedWordsFitPool verifies the loader keeps only words the pool accepts
func TestParsedWordsFitPool(t *testing.T) {
	for _, w := range Default() {
		if !game.ValidWord(w) {
			t.Fatalf("Default list word %q would be rejected by the pool", w)
		}
	}
}

func TestDefaultListCoversAlphabet(t *testing.T) {
	src, err := NewSource(Default(), 8, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if got := len(src.Letters()); got != 26 {
		t.Errorf("Expected default list to start words with all 26 letters, got %d", got)
	}
}

func TestSourceRespectsMaxLength(t *testing.T) {
	src, err := NewSource([]string{"a", "cat", "elephant", "hippopotamus"}, 8, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if src.Len() != 3 {
		t.Errorf("Expected 3 candidate words, got %d", src.Len())
	}
	for i := 0; i < 200; i++ {
		if w := src.Next(); len(w) > 8 || len(w) == 0 {
			t.Fatalf("Word %q violates length bound", w)
		}
	}
}

func TestSourceEmptyList(t *testing.T) {
	if _, err := NewSource([]string{"hippopotamus"}, 5, nil); !errors.Is(err, ErrEmptyList) {
		t.Errorf("Expected ErrEmptyList, got %v", err)
	}
	if _, err := NewSource(nil, 5, nil); !errors.Is(err, ErrEmptyList) {
		t.Errorf("Expected ErrEmptyList for nil list, got %v", err)
	}
}

func TestSourceDeterministicWithSeed(t *testing.T) {
	list := Default()
	a, _ := NewSource(list, 8, rand.New(rand.NewSource(99)))
	b, _ := NewSource(list, 8, rand.New(rand.NewSource(99)))
	for i := 0; i < 50; i++ {
		if a.Next() != b.Next() {
			t.Fatal("Sources with the same seed diverged")
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("# mine\nzest\nyak\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	list, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(list) != 2 || list[0] != "zest" || list[1] != "yak" {
		t.Errorf("Unexpected list %v", list)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for a missing file")
	}
}
