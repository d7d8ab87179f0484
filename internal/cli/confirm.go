package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/shelftools/shelf/internal/backup"
)

// confirmer returns the Confirmer a destructive command should consult:
// an auto-yes when --yes was passed, a terminal y/N prompt otherwise.
func (a *App) confirmer(assumeYes bool) backup.Confirmer {
	if assumeYes {
		return backup.ConfirmerFunc(func(string) (bool, error) { return true, nil })
	}

	return backup.ConfirmerFunc(func(prompt string) (bool, error) {
		fmt.Fprintf(a.Out, "%s [y/N]: ", prompt)

		line, err := bufio.NewReader(a.In).ReadString('\n')
		if err != nil {
			return false, fmt.Errorf("read confirmation: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	})
}
