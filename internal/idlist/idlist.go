package idlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"fplthreats/internal/player"
)

// Source loads the held and unwanted id lists.
type Source interface {
	Load(ctx context.Context) (player.ExclusionSet, error)
}

// FileSource reads both lists from newline-delimited text files.
type FileSource struct {
	HeldPath     string
	UnwantedPath string
	logger       zerolog.Logger
}

// NewFileSource builds a file-backed id list source.
func NewFileSource(heldPath, unwantedPath string, logger zerolog.Logger) *FileSource {
	return &FileSource{
		HeldPath:     heldPath,
		UnwantedPath: unwantedPath,
		logger:       logger.With().Str("component", "idlist").Logger(),
	}
}

// Load reads both files. A missing file yields an empty list and a warning.
func (s *FileSource) Load(_ context.Context) (player.ExclusionSet, error) {
	held, unwanted, err := s.Lists()
	if err != nil {
		return player.ExclusionSet{}, err
	}
	return player.NewExclusionSet(held, unwanted), nil
}

// Lists returns the held and unwanted ids in file order.
func (s *FileSource) Lists() (held, unwanted []int, err error) {
	if held, err = s.readFile(s.HeldPath); err != nil {
		return nil, nil, err
	}
	if unwanted, err = s.readFile(s.UnwantedPath); err != nil {
		return nil, nil, err
	}
	return held, unwanted, nil
}

func (s *FileSource) readFile(path string) ([]int, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Warn().Str("path", path).Msg("id list file not found; using empty list")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open id list: %w", err)
	}
	defer f.Close()

	ids, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read id list %s: %w", path, err)
	}
	s.logger.Debug().Str("path", path).Int("ids", len(ids)).Msg("id list loaded")
	return ids, nil
}

// Parse reads one id per line. Lines that are blank or not made purely of
// digits are skipped.
func Parse(r io.Reader) ([]int, error) {
	var ids []int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !isDigits(line) {
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, scanner.Err()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var _ Source = (*FileSource)(nil)
