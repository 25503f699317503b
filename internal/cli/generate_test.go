package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MassiveBattlebotsFan/TaliForth2/internal/wordlist"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		config     *GenerateConfig
		wantErr    bool
	}{
		{
			name:       "no config file",
			configPath: "",
			config:     &GenerateConfig{},
			wantErr:    false,
		},
		{
			name:       "nonexistent config file",
			configPath: "/nonexistent/config.yml",
			config:     &GenerateConfig{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.ConfigPath = tt.configPath
			err := loadConfigFile(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("loadConfigFile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFileWithValidYAML(t *testing.T) {
	configContent := `
wordlist:
  source: "custom_words.asm"
  labels: "custom-labelmap.txt"
  output: "CUSTOM.md"
`
	configFile := writeTestFile(t, t.TempDir(), "config.yml", configContent)

	config := &GenerateConfig{
		SourcePath: wordlist.DefaultSource,
		LabelsPath: wordlist.DefaultLabels,
		OutputPath: "-",
		ConfigPath: configFile,
	}

	if err := loadConfigFile(config); err != nil {
		t.Fatalf("loadConfigFile() failed: %v", err)
	}

	if config.SourcePath != "custom_words.asm" {
		t.Errorf("SourcePath: got %s, want custom_words.asm", config.SourcePath)
	}
	if config.LabelsPath != "custom-labelmap.txt" {
		t.Errorf("LabelsPath: got %s, want custom-labelmap.txt", config.LabelsPath)
	}
	if config.OutputPath != "CUSTOM.md" {
		t.Errorf("OutputPath: got %s, want CUSTOM.md", config.OutputPath)
	}
}

func TestLoadConfigFileFlagsWin(t *testing.T) {
	configContent := `
wordlist:
  source: "from_config.asm"
  output: "from_config.md"
`
	configFile := writeTestFile(t, t.TempDir(), "config.yml", configContent)

	// Values differing from the defaults came from explicit flags and
	// must survive the merge.
	config := &GenerateConfig{
		SourcePath: "from_flag.asm",
		LabelsPath: wordlist.DefaultLabels,
		OutputPath: "from_flag.md",
		ConfigPath: configFile,
	}

	if err := loadConfigFile(config); err != nil {
		t.Fatalf("loadConfigFile() failed: %v", err)
	}

	if config.SourcePath != "from_flag.asm" {
		t.Errorf("SourcePath: got %s, want from_flag.asm", config.SourcePath)
	}
	if config.OutputPath != "from_flag.md" {
		t.Errorf("OutputPath: got %s, want from_flag.md", config.OutputPath)
	}
}

func TestLoadConfigFileInvalidYAML(t *testing.T) {
	configFile := writeTestFile(t, t.TempDir(), "config.yml", "wordlist: [not a mapping")

	config := &GenerateConfig{ConfigPath: configFile}
	if err := loadConfigFile(config); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestGenerateWordlistValidation(t *testing.T) {
	config := &GenerateConfig{
		SourcePath: "",
		LabelsPath: wordlist.DefaultLabels,
		OutputPath: "-",
	}

	err := GenerateWordlist(config)
	if err == nil {
		t.Fatal("expected validation error for empty source path")
	}
	if !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerateWordlistToFile(t *testing.T) {
	dir := t.TempDir()

	source := writeTestFile(t, dir, "native_words.asm", `; ## COLD ( -- ) "Reset the Forth system"
; ## "cold"  tested  Tali Forth
`)
	labels := writeTestFile(t, dir, "labelmap.txt", `$0300 | xt_cold | definitions.asm:90
$0310 | z_cold  | definitions.asm:95
`)
	output := filepath.Join(dir, "WORDLIST.md")

	config := &GenerateConfig{
		SourcePath: source,
		LabelsPath: labels,
		OutputPath: output,
	}

	if err := GenerateWordlist(config); err != nil {
		t.Fatalf("GenerateWordlist() failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "| COLD | `cold` | Tali Forth | 16 | **tested** |") {
		t.Errorf("output missing expected row:\n%s", data)
	}
}

func TestGenerateWordlistFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()

	// Odd number of marker lines aborts the run before output.
	source := writeTestFile(t, dir, "native_words.asm", `; ## COLD ( -- ) "Reset the Forth system"
`)
	labels := writeTestFile(t, dir, "labelmap.txt", `$0300 | xt_cold | definitions.asm:90
`)
	output := filepath.Join(dir, "WORDLIST.md")

	config := &GenerateConfig{
		SourcePath: source,
		LabelsPath: labels,
		OutputPath: output,
	}

	if err := GenerateWordlist(config); err == nil {
		t.Fatal("expected error for odd marker line count")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("output file must not exist after a failed run")
	}
}
