package ebitools

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changed YAML files under a set of directories. Events
// for the same file within 100ms are collapsed into one.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching dirs.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes Events and Errors. Safe to call more
// than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isConfigFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// ParticleReloader re-reads a particle config file whenever it changes on
// disk and applies it to an engine. Call Update once per tick; reloads
// happen on the game goroutine.
type ParticleReloader struct {
	engine  *ParticleEngine
	content *Content
	path    string
	watcher *Watcher
}

// NewParticleReloader watches the directory holding path. Textures named
// by reloaded configs are resolved through content; a nil content keeps
// the engine's current textures.
func NewParticleReloader(engine *ParticleEngine, content *Content, path string) (*ParticleReloader, error) {
	w, err := NewWatcher(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return &ParticleReloader{
		engine:  engine,
		content: content,
		path:    filepath.Clean(path),
		watcher: w,
	}, nil
}

// Update applies any pending change without blocking. Invalid configs are
// logged and the engine keeps its previous config.
func (r *ParticleReloader) Update() {
	for {
		select {
		case name, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(name) != r.path {
				continue
			}
			if err := r.Reload(); err != nil {
				log.Printf("[ParticleReloader] %v", err)
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[ParticleReloader] watch: %v", err)
		default:
			return
		}
	}
}

// Reload reads the config file and applies it immediately.
func (r *ParticleReloader) Reload() error {
	cfg, err := LoadParticleConfig(r.path)
	if err != nil {
		return err
	}
	if r.content != nil {
		textures, err := loadTextures(r.content, cfg.Textures)
		if err != nil {
			return err
		}
		r.engine.SetTextures(textures)
	}
	r.engine.SetConfig(*cfg)
	return nil
}

// Close stops watching.
func (r *ParticleReloader) Close() error {
	return r.watcher.Close()
}
