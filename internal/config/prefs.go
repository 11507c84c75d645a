package config

import (
	"os"
	"path/filepath"
	"strings"
)

const prefDirName = "waterdrop"
const difficultyFile = "difficulty"

// Prefs reads and writes the single persisted preference: the selected
// difficulty name. All failures degrade to defaults; a broken config dir
// must never keep the game from starting.
type Prefs struct {
	dir string
}

// DefaultPrefs stores under the user's config directory
// (e.g. ~/.config/waterdrop). The directory may not exist yet; it is
// created on first save.
func DefaultPrefs() Prefs {
	base, err := os.UserConfigDir()
	if err != nil {
		return Prefs{}
	}
	return Prefs{dir: filepath.Join(base, prefDirName)}
}

// PrefsAt stores under an explicit directory.
func PrefsAt(dir string) Prefs {
	return Prefs{dir: dir}
}

// Difficulty returns the stored difficulty name, or "" when nothing usable
// is stored.
func (p Prefs) Difficulty() string {
	if p.dir == "" {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(p.dir, difficultyFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveDifficulty stores the difficulty name for the next session.
func (p Prefs) SaveDifficulty(name string) error {
	if p.dir == "" {
		return nil
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(p.dir, difficultyFile), []byte(name+"\n"), 0o644)
}
