package ebitools

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseParticleConfigOverDefaults(t *testing.T) {
	cfg, err := ParseParticleConfig([]byte(`
location: {x: 400, y: 240}
maximumParticles: 6
textures: [dot, star]
color: {r: 255, g: 128, b: 0}
randomizeColor: true
randomColorThreshold: 40
blend: add
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Location != (Vec2{400, 240}) || cfg.MaximumParticles != 6 {
		t.Errorf("location/max = %v/%d", cfg.Location, cfg.MaximumParticles)
	}
	if len(cfg.Textures) != 2 || cfg.Textures[1] != "star" {
		t.Errorf("Textures = %v", cfg.Textures)
	}
	if cfg.Color != (RGB{255, 128, 0}) || !cfg.RandomizeColor || cfg.RandomColorThreshold != 40 {
		t.Errorf("color settings = %+v", cfg)
	}
	if cfg.BlendMode != BlendAdd {
		t.Errorf("BlendMode = %d, want add", cfg.BlendMode)
	}
	// Unset fields keep their defaults.
	def := DefaultParticleConfig()
	if cfg.LifeSpan != def.LifeSpan || cfg.Spread != def.Spread || cfg.AngularVelocity != def.AngularVelocity {
		t.Errorf("defaults lost: lifeSpan=%d spread=%v angular=%v", cfg.LifeSpan, cfg.Spread, cfg.AngularVelocity)
	}
}

func TestParseParticleConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"syntax", "location: [", "parse particle config"},
		{"blend", "blend: multiply", "unknown blend mode"},
		{"negative count", "maximumParticles: -1", "maximumParticles"},
		{"negative threshold", "randomColorThreshold: -2", "randomColorThreshold"},
		{"size range", "randomizeSize: true\nsize: 3\nrandomMaximumSize: 2", "randomMaximumSize"},
		{"lifespan range", "randomizeLifeSpan: true\nrandomMaximumLifeSpan: -5", "randomMaximumLifeSpan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseParticleConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultParticleConfig()
	cfg.MaximumParticles = -1
	cfg.RandomColorThreshold = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "maximumParticles") || !strings.Contains(err.Error(), "randomColorThreshold") {
		t.Errorf("error %q should report both problems", err)
	}
}

func TestMouseButtonUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    MouseButton
		wantErr bool
	}{
		{"left", MouseButtonLeft, false},
		{"Right", MouseButtonRight, false},
		{"MIDDLE", MouseButtonMiddle, false},
		{"back", MouseButtonBack, false},
		{"forward", MouseButtonForward, false},
		{"thumb", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var v struct {
				Button MouseButton `yaml:"button"`
			}
			err := yaml.Unmarshal([]byte("button: "+tt.in), &v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && v.Button != tt.want {
				t.Errorf("button = %d, want %d", v.Button, tt.want)
			}
		})
	}
}

func TestLoadParticleConfigMissingFile(t *testing.T) {
	_, err := LoadParticleConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestLoadRunConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	cfg, err := LoadRunConfig(write("run.yaml", "title: demo\nwidth: 320\nshowFPS: true\ntestScript: script.yaml\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "demo" || cfg.Width != 320 || !cfg.ShowFPS || cfg.TestScript != "script.yaml" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Height != 600 || cfg.ScreenshotDir != "screenshots" {
		t.Errorf("defaults lost: height=%d dir=%q", cfg.Height, cfg.ScreenshotDir)
	}

	if _, err := LoadRunConfig(write("bad.yaml", "width: 0\n")); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := LoadRunConfig(write("broken.yaml", "width: [")); err == nil {
		t.Error("expected parse error")
	}
}
