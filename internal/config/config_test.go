package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv blanks every SEEDLING_ key so the outer environment cannot
// leak into Load tests. Viper treats empty env values as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv("SEEDLING_"+strings.ToUpper(key), "")
	}
}

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		got := GlobalPath()
		want := "/custom/config/seedling/seedling.yml"
		if got != want {
			t.Errorf("GlobalPath() = %v, want %v", got, want)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		// GlobalPath treats an empty value as unset.
		t.Setenv("XDG_CONFIG_HOME", "")

		got := GlobalPath()
		if !filepath.IsAbs(got) {
			t.Errorf("GlobalPath() should return absolute path, got %v", got)
		}
		if filepath.Base(got) != "seedling.yml" {
			t.Errorf("GlobalPath() should end with seedling.yml, got %v", got)
		}
		if !strings.Contains(got, filepath.Join(".config", "seedling")) {
			t.Errorf("GlobalPath() should fall back to .config/seedling, got %v", got)
		}
	})
}

func TestProjectPath(t *testing.T) {
	if got := ProjectPath(); got != "seedling.yml" {
		t.Errorf("ProjectPath() = %v, want seedling.yml", got)
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	t.Run("no config exists", func(t *testing.T) {
		if Exists() {
			t.Error("Exists() = true, want false when no config files exist")
		}
	})

	t.Run("global config exists", func(t *testing.T) {
		globalPath := GlobalPath()
		if err := os.MkdirAll(filepath.Dir(globalPath), 0755); err != nil {
			t.Fatalf("failed to create global config dir: %v", err)
		}
		if err := os.WriteFile(globalPath, []byte("name: test\n"), 0644); err != nil {
			t.Fatalf("failed to write global config: %v", err)
		}
		defer func() { _ = os.Remove(globalPath) }()

		if !Exists() {
			t.Error("Exists() = false, want true when global config exists")
		}
	})

	t.Run("project config exists", func(t *testing.T) {
		_ = os.Remove(GlobalPath())

		if err := os.WriteFile(ProjectPath(), []byte("name: test\n"), 0644); err != nil {
			t.Fatalf("failed to write project config: %v", err)
		}
		defer func() { _ = os.Remove(ProjectPath()) }()

		if !Exists() {
			t.Error("Exists() = false, want true when project config exists")
		}
	})
}

func TestWriteGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	cfg := &Config{
		Name:      "Gopher",
		Precision: 3,
		LogLevel:  "debug",
		LogFile:   "/tmp/seedling.log",
	}

	if err := WriteGlobal(cfg); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	data, err := os.ReadFile(GlobalPath())
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}

	content := string(data)
	expectedFields := []string{
		"name: Gopher",
		"precision: 3",
		"log_level: debug",
		"log_file: /tmp/seedling.log",
	}
	for _, field := range expectedFields {
		if !strings.Contains(content, field) {
			t.Errorf("config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}

func TestWriteProject(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := &Config{
		Name:      "Project",
		Precision: 0,
		LogLevel:  "info",
		LogFile:   "",
	}

	if err := WriteProject(cfg); err != nil {
		t.Fatalf("WriteProject() error = %v", err)
	}

	data, err := os.ReadFile(ProjectPath())
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}

	content := string(data)
	for _, field := range []string{"name: Project", "precision: 0", "log_level: info"} {
		if !strings.Contains(content, field) {
			t.Errorf("config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}

func TestLoad_NoConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Name != "World" {
		t.Errorf("Load() default Name = %v, want World", cfg.Name)
	}
	if cfg.Precision != 1 {
		t.Errorf("Load() default Precision = %v, want 1", cfg.Precision)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Load() default LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogFile != "" {
		t.Errorf("Load() default LogFile = %v, want empty", cfg.LogFile)
	}
}

func TestLoad_WithGlobalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	clearEnv(t)

	globalCfg := &Config{
		Name:      "Global",
		Precision: 2,
		LogLevel:  "warn",
	}
	if err := WriteGlobal(globalCfg); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Name != "Global" {
		t.Errorf("Load() Name = %v, want Global", cfg.Name)
	}
	if cfg.Precision != 2 {
		t.Errorf("Load() Precision = %v, want 2", cfg.Precision)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Load() LogLevel = %v, want warn", cfg.LogLevel)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	clearEnv(t)

	if err := WriteGlobal(&Config{Name: "Global", Precision: 2, LogLevel: "warn"}); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}
	// Project file only overrides name; precision stays global.
	if err := os.WriteFile(ProjectPath(), []byte("name: Project\n"), 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Name != "Project" {
		t.Errorf("Load() Name = %v, want Project (project wins)", cfg.Name)
	}
	if cfg.Precision != 2 {
		t.Errorf("Load() Precision = %v, want 2 (from global)", cfg.Precision)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	clearEnv(t)

	if err := os.WriteFile(ProjectPath(), []byte("name: Project\nprecision: 4\n"), 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}
	t.Setenv("SEEDLING_NAME", "FromEnv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Name != "FromEnv" {
		t.Errorf("Load() Name = %v, want FromEnv (env wins)", cfg.Name)
	}
	if cfg.Precision != 4 {
		t.Errorf("Load() Precision = %v, want 4 (from project)", cfg.Precision)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid defaults",
			config:  &Config{Name: "World", Precision: 1, LogLevel: "info"},
			wantErr: false,
		},
		{
			name:    "empty name is allowed",
			config:  &Config{Name: "", Precision: 0, LogLevel: "debug"},
			wantErr: false,
		},
		{
			name:    "invalid log level",
			config:  &Config{Name: "World", Precision: 1, LogLevel: "loud"},
			wantErr: true,
		},
		{
			name:    "negative precision",
			config:  &Config{Name: "World", Precision: -1, LogLevel: "info"},
			wantErr: true,
		},
		{
			name:    "precision too large",
			config:  &Config{Name: "World", Precision: 11, LogLevel: "info"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
