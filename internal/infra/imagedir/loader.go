// Package imagedir builds an image bank from two folders, one holding
// AI-generated images and one holding human-made ones.
package imagedir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"human-or-ai/internal/domain"
)

// Loader serves a single bank ID from an AI folder and a Human folder.
type Loader struct {
	bankID   string
	aiDir    string
	humanDir string
}

func NewLoader(bankID, aiDir, humanDir string) *Loader {
	return &Loader{bankID: bankID, aiDir: aiDir, humanDir: humanDir}
}

// LoadBank lists both folders. Every file in the AI folder is labeled AI and
// every file in the Human folder is labeled Human; the statement text is the path.
func (l *Loader) LoadBank(_ context.Context, bankID string) (domain.Bank, error) {
	if bankID != l.bankID {
		return domain.Bank{}, domain.ErrBankNotFound
	}
	ai, err := listImages(l.aiDir)
	if err != nil {
		return domain.Bank{}, err
	}
	human, err := listImages(l.humanDir)
	if err != nil {
		return domain.Bank{}, err
	}

	statements := make([]domain.Statement, 0, len(ai)+len(human))
	for _, p := range ai {
		statements = append(statements, domain.Statement{Text: p, Author: domain.AI})
	}
	for _, p := range human {
		statements = append(statements, domain.Statement{Text: p, Author: domain.Human})
	}
	return domain.Bank{ID: l.bankID, Kind: domain.BankImage, Statements: statements}, nil
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list images in %s: %w", dir, err)
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
