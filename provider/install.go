// Package provider manages built-in and custom scheme providers.
package provider

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/network"
	"github.com/swatch-cli/swatch/where"
)

// RepoRawURL is the community scheme repository all scripts are fetched from.
const RepoRawURL = "https://raw.githubusercontent.com/swatch-cli/swatch/main/config/schemes/"

// SchemesUpdatedMsg is dispatched to the Bubbletea event loop when scheme
// updates complete successfully.
type SchemesUpdatedMsg struct{}

// UpdateCustoms spawns a non-blocking background task that refreshes every
// installed custom scheme script, plus the shared helpers file when present.
// SHA-256 hash checks avoid redundant disk writes.
func UpdateCustoms() tea.Cmd {
	return func() tea.Msg {
		var filenames []string

		if exists, _ := filesystem.API().Exists(filepath.Join(where.Schemes(), "common.lua")); exists {
			filenames = append(filenames, "common.lua")
		}

		for _, p := range Customs() {
			filenames = append(filenames, p.Name+CustomProviderExtension)
		}

		if len(filenames) == 0 {
			return nil
		}

		// Timeout to prevent the goroutine from leaking during DNS failures
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		updated := false
		for _, filename := range filenames {
			body, err := fetch(ctx, filename)
			if err != nil {
				log.Warnf("scheme update failed for %s: %v", filename, err)
				continue
			}

			swapped, err := swap(filename, body)
			if err != nil {
				log.Warnf("scheme update failed for %s: %v", filename, err)
				continue
			}

			if swapped {
				log.Infof("updated scheme script: %s", filename)
				updated = true
			}
		}

		if updated {
			log.Info("scheme updates completed successfully, emitting reload event")
			return SchemesUpdatedMsg{}
		}

		log.Info("scheme update check completed, no updates available")
		return nil
	}
}

// Install fetches a named scheme script from the community repository and
// places it into the schemes directory.
func Install(ctx context.Context, name string) error {
	filename := name + CustomProviderExtension

	body, err := fetch(ctx, filename)
	if err != nil {
		return err
	}

	_, err = swap(filename, body)
	return err
}

func fetch(ctx context.Context, filename string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, RepoRawURL+filename, nil)
	if err != nil {
		return nil, err
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s%s returned %s", RepoRawURL, filename, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// swap writes body into the schemes directory only when its hash differs
// from the local copy, using an atomic rename.
func swap(filename string, body []byte) (bool, error) {
	localPath := filepath.Join(where.Schemes(), filename)

	remoteHash := sha256.Sum256(body)
	if localBytes, err := filesystem.API().ReadFile(localPath); err == nil {
		if sha256.Sum256(localBytes) == remoteHash {
			return false, nil
		}
	}

	tmpPath := localPath + ".tmp"
	if err := filesystem.API().WriteFile(tmpPath, body, 0644); err != nil {
		return false, err
	}

	// Atomic swap prevents a partially written script from being loaded.
	if err := filesystem.API().Rename(tmpPath, localPath); err != nil {
		_ = filesystem.API().Remove(tmpPath)
		return false, err
	}

	return true, nil
}
