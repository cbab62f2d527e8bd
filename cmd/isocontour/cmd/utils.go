package cmd

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// fileExists returns nil if path exists, or an error if it doesn't or can't
// be stat'ed.
func fileExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no such file '%v'", path)
		}
		return err
	}
	return nil
}

func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}

func marshalYAMLFile(path string, in interface{}) error {
	buf, err := yaml.Marshal(in)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
