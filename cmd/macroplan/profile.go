package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lg/calorie-banking-go-api/internal/tdee"
)

// loadProfile reads a body profile from a YAML file:
//
//	age: 30
//	height_cm: 180
//	weight_kg: 80
//	sex: male
//	activity_level: moderate
//	protein_per_kg: 1.8   # optional
//	carb_split_pct: 50    # optional
//
// Unknown keys are rejected so a typo doesn't silently fall back to a default.
func loadProfile(path string) (tdee.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return tdee.Profile{}, fmt.Errorf("read profile: %w", err)
	}

	var p tdee.Profile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return tdee.Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}
