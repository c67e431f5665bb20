package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type ConfigDeployer struct {
	fs      afero.Fs
	logChan chan<- string
	now     func() time.Time
}

type DeploymentResult struct {
	Path       string
	BackupPath string
	Deployed   bool
	Error      error
}

func NewConfigDeployer(fs afero.Fs, logChan chan<- string) *ConfigDeployer {
	return &ConfigDeployer{
		fs:      fs,
		logChan: logChan,
		now:     time.Now,
	}
}

func (cd *ConfigDeployer) log(message string) {
	if cd.logChan != nil {
		cd.logChan <- message
	}
}

// Deploy writes the default config to path. An existing file is left alone
// unless replace is set, in which case it is backed up first.
func (cd *ConfigDeployer) Deploy(ctx context.Context, path string, replace bool) (DeploymentResult, error) {
	result := DeploymentResult{Path: path}

	if err := ctx.Err(); err != nil {
		result.Error = err
		return result, err
	}

	if err := cd.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		result.Error = fmt.Errorf("failed to create config directory: %w", err)
		return result, result.Error
	}

	exists, err := afero.Exists(cd.fs, path)
	if err != nil {
		result.Error = fmt.Errorf("failed to stat existing config: %w", err)
		return result, result.Error
	}

	if exists {
		if !replace {
			cd.log(fmt.Sprintf("Config already present at %s, leaving it untouched", path))
			return result, nil
		}

		existingData, err := afero.ReadFile(cd.fs, path)
		if err != nil {
			result.Error = fmt.Errorf("failed to read existing config: %w", err)
			return result, result.Error
		}

		timestamp := cd.now().Format("2006-01-02_15-04-05")
		result.BackupPath = path + ".backup." + timestamp
		if err := afero.WriteFile(cd.fs, result.BackupPath, existingData, 0644); err != nil {
			result.Error = fmt.Errorf("failed to create backup: %w", err)
			return result, result.Error
		}
		cd.log(fmt.Sprintf("Backed up existing config to %s", result.BackupPath))
	}

	// the template must stay loadable
	var probe Config
	if err := yaml.Unmarshal([]byte(DefaultConfigYAML), &probe); err != nil {
		result.Error = fmt.Errorf("default config template is invalid: %w", err)
		return result, result.Error
	}

	if err := afero.WriteFile(cd.fs, path, []byte(DefaultConfigYAML), 0644); err != nil {
		result.Error = fmt.Errorf("failed to write config: %w", err)
		return result, result.Error
	}

	result.Deployed = true
	cd.log(fmt.Sprintf("Wrote config to %s", path))
	return result, nil
}
