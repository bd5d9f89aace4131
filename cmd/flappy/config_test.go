package main

import (
	"bytes"
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/face-flappy/internal/config"
)

func TestRunConfig(t *testing.T) {
	tests := []struct {
		name     string
		defaults bool
	}{
		{"effective config", false},
		{"built-in defaults", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagConfigDefaults = tc.defaults
			flagConfig = ""
			t.Cleanup(func() { flagConfigDefaults = false })
			t.Setenv("HOME", t.TempDir())
			wd, err := os.Getwd()
			if err != nil {
				t.Fatal(err)
			}
			if err := os.Chdir(t.TempDir()); err != nil {
				t.Fatal(err)
			}
			t.Cleanup(func() { _ = os.Chdir(wd) })

			var out bytes.Buffer
			cmd := testCommand()
			cmd.SetOut(&out)
			if err := runConfig(cmd, nil); err != nil {
				t.Fatalf("runConfig() failed: %v", err)
			}

			if tc.defaults && !bytes.Equal(out.Bytes(), config.DefaultYAML()) {
				t.Error("--defaults should print the embedded file unchanged")
			}
			cfg, err := config.LoadFlappy("")
			if err != nil {
				t.Fatalf("LoadFlappy() failed: %v", err)
			}
			var printed config.FlappyConfig
			if err := yaml.Unmarshal(out.Bytes(), &printed); err != nil {
				t.Fatalf("output is not a valid config: %v", err)
			}
			if printed.Physics != cfg.Physics || printed.World != cfg.World {
				t.Errorf("printed config differs from the loaded one: %+v", printed)
			}
		})
	}
}
