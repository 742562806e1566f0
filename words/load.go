package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadList reads one word per line. Blank lines and lines starting with '#'
// are skipped.
func ReadList(r io.Reader) ([]string, error) {
	var list []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return list, nil
}

func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list file: %w", err)
	}
	defer file.Close()

	return ReadList(file)
}

// Load reads both lists and builds a Store. An empty guessesPath means the
// secrets are the only legal guesses.
func Load(secretsPath, guessesPath string) (*Store, error) {
	secrets, err := ReadFile(secretsPath)
	if err != nil {
		return nil, err
	}
	var guesses []string
	if guessesPath != "" {
		if guesses, err = ReadFile(guessesPath); err != nil {
			return nil, err
		}
	}
	return NewStore(secrets, guesses)
}
