// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// envPrefix selects the environment variables layered over the bundle file.
const envPrefix = "STYLEGUARD_"

// bundleNames are the file names tried by [LoadDir], in order.
var bundleNames = []string{"styleguard.yml", "styleguard.yaml"}

// Load reads the bundle file at path, layers matching environment variables
// over it, and validates all referenced names against the catalog.
func Load(path string) (*Bundle, error) {
	return load(file.Provider(path), path)
}

// LoadDir looks for styleguard.yml or styleguard.yaml in dir and loads it.
// When neither exists the returned bundle holds the defaults, still layered
// with matching environment variables.
func LoadDir(dir string) (*Bundle, error) {
	for _, name := range bundleNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return load(nil, "")
}

// load layers defaults, the optional bundle file and the environment into a
// validated [Bundle].
func load(f *file.File, path string) (*Bundle, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"name": DefaultName,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("bundle defaults: %w", err)
	}

	if f != nil {
		if err := k.Load(f, yaml.Parser()); err != nil {
			return nil, fmt.Errorf("bundle %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("bundle environment: %w", err)
	}

	b := &Bundle{path: path}
	if err := k.Unmarshal("", b); err != nil {
		return nil, fmt.Errorf("bundle %s: %w", path, err)
	}

	b.Groups = cleanNames(b.Groups)
	b.SkipRules = cleanNames(b.SkipRules)

	// The rule list is either a comma separated scalar, from the
	// environment or a terse bundle file, or the file's structured
	// sequence, which koanf's flat key-value model cannot represent.
	switch v := k.Get("rules").(type) {
	case nil:

	case string:
		for _, name := range splitNames(v) {
			b.Rules = append(b.Rules, Selection{Name: name})
		}

	default:
		sels, err := fileSelections(f)
		if err != nil {
			return nil, fmt.Errorf("bundle %s: %w", path, err)
		}

		b.Rules = sels
	}

	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("bundle %s: %w", path, err)
	}

	return b, nil
}

// fileSelections decodes the bundle file's rules sequence, preserving entry
// order and source lines.
func fileSelections(f *file.File) ([]Selection, error) {
	raw, err := f.ReadBytes()
	if err != nil {
		return nil, err
	}

	var doc struct {
		Rules []Selection `yaml:"rules"`
	}
	if err := yamlv3.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	return doc.Rules, nil
}

// envKey maps an environment variable name to its bundle key,
// STYLEGUARD_SKIP_RULES to skip-rules.
func envKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, envPrefix)), "_", "-")
}

// splitNames splits a comma separated name list, dropping surrounding
// whitespace and empty entries.
func splitNames(list string) []string {
	var names []string
	for name := range strings.SplitSeq(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	return names
}

// cleanNames trims the entries of a name list, dropping empty ones. The
// environment layer splits lists on bare commas, so entries may carry
// whitespace.
func cleanNames(names []string) []string {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			cleaned = append(cleaned, name)
		}
	}

	if len(cleaned) == 0 {
		return nil
	}

	return cleaned
}
