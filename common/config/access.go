package config

import (
	"fmt"
	"os"
	"path"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var Path = "media-canvas.yaml"

var instance *MainConfig
var singletonLock = &sync.Once{}

func reloadConfig() (*MainConfig, error) {
	c := NewDefaultMainConfig()

	// Write a default config if the one given doesn't exist
	info, err := os.Stat(Path)
	exists := err == nil || !os.IsNotExist(err)
	if !exists {
		fmt.Fprintln(os.Stderr, "Generating new configuration...")
		configBytes, err := yaml.Marshal(c)
		if err != nil {
			return nil, err
		}

		if err = os.WriteFile(Path, configBytes, 0644); err != nil {
			return nil, err
		}
	}

	// Get new info about the possible directory after creating
	info, err = os.Stat(Path)
	if err != nil {
		return nil, err
	}

	pathsOrdered := make([]string, 0)
	if info.IsDir() {
		logrus.Info("Config is a directory - loading all files over top of each other")

		files, err := os.ReadDir(Path)
		if err != nil {
			return nil, err
		}

		for _, f := range files {
			pathsOrdered = append(pathsOrdered, path.Join(Path, f.Name()))
		}

		sort.Strings(pathsOrdered)
	} else {
		pathsOrdered = append(pathsOrdered, Path)
	}

	for _, p := range pathsOrdered {
		logrus.Debug("Loading config file: ", p)
		buffer, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}

		err = yaml.Unmarshal(buffer, &c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	return &c, nil
}

func Get() *MainConfig {
	if instance == nil {
		singletonLock.Do(func() {
			c, err := reloadConfig()
			if err != nil {
				logrus.Fatal(err)
			}
			instance = c
		})
	}
	return instance
}

// Load reads the configuration at Path, replacing any cached instance.
func Load() (*MainConfig, error) {
	c, err := reloadConfig()
	if err != nil {
		return nil, err
	}
	instance = c
	return c, nil
}

func SetForTesting(c MainConfig) {
	instance = &c
}
