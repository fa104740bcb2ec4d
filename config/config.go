/*
Copyright © 2013 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package config loads the ambient settings a distributed run needs
// before a single cell is simulated: how many ranks to expect, where
// the partition-exchange hub lives, and which partitioning backend and
// SIGMA window to use.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the top-level run configuration, loaded from a TOML file.
type Config struct {
	Run       RunConfig       `toml:"run"`
	Partition PartitionConfig `toml:"partition"`
	Reorder   ReorderConfig   `toml:"reorder"`
}

// RunConfig covers ranks and the RPC exchange hub.
type RunConfig struct {
	NumRanks int    `toml:"num_ranks"`
	HubAddr  string `toml:"hub_addr"`
	ListenAt string `toml:"listen_at"`
}

// PartitionConfig selects and tunes a partition.Backend.
type PartitionConfig struct {
	Backend      string  `toml:"backend"` // "linear" or "greedy"
	GhostWidth   int     `toml:"ghost_width"`
	MaxImbalance float64 `toml:"max_imbalance"`
}

// ReorderConfig tunes ReorderingUnstructuredGrid.
type ReorderConfig struct {
	Sigma int `toml:"sigma"`
}

// Default returns a Config with reasonable out-of-the-box values for a
// single-process run.
func Default() Config {
	return Config{
		Run: RunConfig{
			NumRanks: 1,
			HubAddr:  "localhost:7070",
			ListenAt: ":7070",
		},
		Partition: PartitionConfig{
			Backend:      "greedy",
			GhostWidth:   1,
			MaxImbalance: 1.25,
		},
		Reorder: ReorderConfig{
			Sigma: 64,
		},
	}
}

// Load reads and decodes a TOML config file at path, starting from
// Default() so unspecified fields keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config from %s: %w", path, err)
	}
	return cfg, nil
}
