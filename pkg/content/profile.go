// Package content maps a business profile onto the placeholder role keys
// used by frames and template layouts.
package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BusinessProfile is the record supplied by the profile collaborator.
type BusinessProfile struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Category    string   `yaml:"category" json:"category"`
	Address     string   `yaml:"address" json:"address"`
	Phone       string   `yaml:"phone" json:"phone"`
	Email       string   `yaml:"email" json:"email"`
	Website     string   `yaml:"website" json:"website"`
	Logo        string   `yaml:"logo" json:"logo"`
	CompanyLogo string   `yaml:"companyLogo" json:"companyLogo"`
	Services    []string `yaml:"services" json:"services"`
}

// LoadProfile reads a YAML (or JSON) profile file.
func LoadProfile(path string) (BusinessProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BusinessProfile{}, fmt.Errorf("read profile: %w", err)
	}

	var p BusinessProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return BusinessProfile{}, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// ExampleProfile returns the sample written by `posterstencil init`.
func ExampleProfile() string {
	return `# Business profile used to fill frame placeholders.
name: Acme Bakery
description: Fresh bread and pastries every morning
category: Bakery
address: 12 Market Street, Springfield
phone: "+1 555 0100"
email: hello@acme.example
website: acme.example
logo: logo.png
services:
  - Custom cakes
  - Catering
  - Coffee bar
`
}
